/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package tasks

import (
	"testing"
	"time"

	"github.com/josephgoksu/TaskDeck/models"
)

func TestPriority(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name string
		due  time.Time
		want models.TaskPriority
	}{
		{"overdue", now.AddDate(0, 0, -2), models.PriorityHigh},
		{"due right now", now, models.PriorityHigh},
		{"due in 3 days", now.Add(72 * time.Hour), models.PriorityHigh},
		{"just under 4 days", now.Add(95 * time.Hour), models.PriorityHigh},
		{"due in 4 days", now.Add(96 * time.Hour), models.PriorityMedium},
		{"due in 7 days", now.Add(7 * 24 * time.Hour), models.PriorityMedium},
		{"just under 8 days", now.Add(7*24*time.Hour + 23*time.Hour), models.PriorityMedium},
		{"due in 8 days", now.Add(8 * 24 * time.Hour), models.PriorityLow},
		{"due in a month", now.AddDate(0, 1, 0), models.PriorityLow},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Priority(tc.due, now); got != tc.want {
				t.Errorf("Priority(%v) = %s, want %s", tc.due, got, tc.want)
			}
		})
	}
}
