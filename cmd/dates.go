/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"fmt"
	"time"
)

// parseDueDate accepts a date in 2006-01-02 form or the keywords "today" and
// "tomorrow". Due dates are date-granular by convention; the time component
// is midnight local.
func parseDueDate(value string, now time.Time) (time.Time, error) {
	switch value {
	case "today":
		return startOfDay(now), nil
	case "tomorrow":
		return startOfDay(now.AddDate(0, 0, 1)), nil
	}
	t, err := time.ParseInLocation("2006-01-02", value, now.Location())
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid due date %q (want YYYY-MM-DD, today, or tomorrow)", value)
	}
	return t, nil
}

// parseReminderTime accepts a precise moment in "2006-01-02 15:04" or
// RFC3339 form.
func parseReminderTime(value string, now time.Time) (time.Time, error) {
	if t, err := time.ParseInLocation("2006-01-02 15:04", value, now.Location()); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("invalid reminder time %q (want \"YYYY-MM-DD HH:MM\" or RFC3339)", value)
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
