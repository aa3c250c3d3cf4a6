/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package notify

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/josephgoksu/TaskDeck/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeNotifier records delivered notifications.
type fakeNotifier struct {
	mu         sync.Mutex
	permission Permission
	bodies     []string
}

func (f *fakeNotifier) Permission() Permission        { return f.permission }
func (f *fakeNotifier) RequestPermission() Permission { return f.permission }

func (f *fakeNotifier) Notify(title, body string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.bodies = append(f.bodies, body)
	return nil
}

func (f *fakeNotifier) delivered() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.bodies...)
}

func newTestScheduler(notifier *fakeNotifier, now time.Time) *Scheduler {
	s := NewScheduler(notifier, NewMemoryThrottle(), nil)
	s.now = func() time.Time { return now }
	return s
}

func pendingTask(id, title string, due time.Time, reminder *time.Time) models.Task {
	return models.Task{
		ID: id, Title: title, DueDate: due,
		ReminderTime: reminder, Priority: models.PriorityHigh,
	}
}

func TestSchedulerReminderWindow(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	notifier := &fakeNotifier{permission: PermissionGranted}
	s := newTestScheduler(notifier, now)

	in10 := now.Add(10 * time.Minute)
	in20 := now.Add(20 * time.Minute)
	s.OnViewChange([]models.Task{
		pendingTask("near", "standup", now, &in10),
		pendingTask("far", "review", now, &in20),
	})

	bodies := notifier.delivered()
	require.Len(t, bodies, 1)
	assert.Contains(t, bodies[0], "standup")
	assert.Contains(t, bodies[0], in10.Format("15:04"))
}

func TestSchedulerReminderWindowEdges(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	cases := []struct {
		name     string
		reminder time.Time
		fires    bool
	}{
		{"exactly now", now, true},
		{"seconds in the past still minute zero", now.Add(-30 * time.Second), true},
		{"exactly fifteen minutes out", now.Add(15 * time.Minute), true},
		{"sixteen minutes out", now.Add(16 * time.Minute), false},
		{"a minute past the window", now.Add(-time.Minute), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			notifier := &fakeNotifier{permission: PermissionGranted}
			s := newTestScheduler(notifier, now)
			reminder := tc.reminder
			s.OnViewChange([]models.Task{pendingTask("r", "edge", now, &reminder)})
			if tc.fires {
				assert.Len(t, notifier.delivered(), 1)
			} else {
				assert.Empty(t, notifier.delivered())
			}
		})
	}
}

func TestSchedulerDueTodayAllDay(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	notifier := &fakeNotifier{permission: PermissionGranted}
	s := newTestScheduler(notifier, now)

	s.OnViewChange([]models.Task{
		pendingTask("today", "pay rent", now.Truncate(24*time.Hour), nil),
		pendingTask("tomorrow", "not yet", now.AddDate(0, 0, 1), nil),
	})

	bodies := notifier.delivered()
	require.Len(t, bodies, 1)
	assert.Contains(t, bodies[0], "pay rent")
	assert.Contains(t, bodies[0], "all day")
}

func TestSchedulerThrottlesPerClockHour(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	notifier := &fakeNotifier{permission: PermissionGranted}
	s := newTestScheduler(notifier, now)

	tasks := []models.Task{pendingTask("t", "pay rent", now, nil)}

	s.OnViewChange(tasks)
	s.OnViewChange(tasks)
	s.Evaluate()
	assert.Len(t, notifier.delivered(), 1, "same clock-hour must notify at most once")

	// The next clock-hour gets a fresh key.
	s.now = func() time.Time { return now.Add(time.Hour) }
	s.Evaluate()
	assert.Len(t, notifier.delivered(), 2)
}

func TestSchedulerSkipsCompletedTasks(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	notifier := &fakeNotifier{permission: PermissionGranted}
	s := newTestScheduler(notifier, now)

	done := pendingTask("d", "already done", now, nil)
	done.IsCompleted = true
	s.OnViewChange([]models.Task{done})

	assert.Empty(t, notifier.delivered())
}

func TestSchedulerInertWithoutPermission(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	for _, perm := range []Permission{PermissionDefault, PermissionDenied} {
		notifier := &fakeNotifier{permission: perm}
		s := newTestScheduler(notifier, now)
		s.OnViewChange([]models.Task{pendingTask("t", "due today", now, nil)})
		assert.Empty(t, notifier.delivered(), "permission %v must suppress delivery", perm)
	}
}

func TestThrottleKeyFormat(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 42, 0, 0, time.UTC)
	want := fmt.Sprintf("notified-%s-2026-03-10-09", "abc")
	assert.Equal(t, want, throttleKey("abc", now))
}
