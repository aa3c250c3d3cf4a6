/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDueDate(t *testing.T) {
	now := time.Date(2026, 3, 10, 14, 30, 0, 0, time.UTC)

	got, err := parseDueDate("today", now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), got)

	got, err = parseDueDate("tomorrow", now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC), got)

	got, err = parseDueDate("2026-04-01", now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC), got)

	_, err = parseDueDate("next week", now)
	assert.Error(t, err)

	_, err = parseDueDate("04/01/2026", now)
	assert.Error(t, err)
}

func TestParseReminderTime(t *testing.T) {
	now := time.Date(2026, 3, 10, 14, 30, 0, 0, time.UTC)

	got, err := parseReminderTime("2026-03-10 16:00", now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 10, 16, 0, 0, 0, time.UTC), got)

	got, err = parseReminderTime("2026-03-10T16:00:00Z", now)
	require.NoError(t, err)
	assert.True(t, got.Equal(time.Date(2026, 3, 10, 16, 0, 0, 0, time.UTC)))

	_, err = parseReminderTime("16:00", now)
	assert.Error(t, err)
}
