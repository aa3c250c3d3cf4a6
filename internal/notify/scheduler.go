/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package notify

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/josephgoksu/TaskDeck/models"
)

const (
	// checkInterval is the fixed evaluation cadence.
	checkInterval = 15 * time.Minute

	// reminderLookahead is the eligibility window before a precise
	// reminder, in whole minutes. A reminder whose window passed while the
	// process was down stays missed; delivery is best-effort.
	reminderLookahead = 15
)

// Scheduler evaluates the pending view on a fixed cadence, plus immediately
// on every view change, and emits at most one notification per task per
// clock-hour. Entirely best-effort: when permission is not granted or the
// capability fails, the scheduler is inert.
type Scheduler struct {
	notifier Notifier
	throttle ThrottleStore
	log      *slog.Logger
	now      func() time.Time
	interval time.Duration

	mu      sync.Mutex
	pending []models.Task

	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewScheduler creates a Scheduler wired to the given capability and
// throttle store.
func NewScheduler(n Notifier, t ThrottleStore, log *slog.Logger) *Scheduler {
	if log == nil {
		log = slog.Default()
	}
	return &Scheduler{
		notifier: n,
		throttle: t,
		log:      log,
		now:      time.Now,
		interval: checkInterval,
		stopCh:   make(chan struct{}),
	}
}

// Start runs the evaluation timer until ctx is cancelled or Stop is called.
func (s *Scheduler) Start(ctx context.Context) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				s.Evaluate()
			case <-ctx.Done():
				return
			case <-s.stopCh:
				return
			}
		}
	}()
}

// Stop cancels the timer. Must be called when the input view is torn down.
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() { close(s.stopCh) })
	s.wg.Wait()
}

// OnViewChange replaces the scheduler's pending-task input and evaluates
// immediately.
func (s *Scheduler) OnViewChange(tasks []models.Task) {
	s.mu.Lock()
	s.pending = append([]models.Task(nil), tasks...)
	s.mu.Unlock()
	s.Evaluate()
}

// Evaluate runs one pass over the pending tasks, notifying the eligible ones
// that have not fired in the current clock-hour.
func (s *Scheduler) Evaluate() {
	if s.notifier.Permission() != PermissionGranted {
		return
	}

	s.mu.Lock()
	tasks := append([]models.Task(nil), s.pending...)
	s.mu.Unlock()

	now := s.now()
	for _, task := range tasks {
		if task.IsCompleted {
			continue
		}

		key := throttleKey(task.ID, now)
		seen, err := s.throttle.Seen(key)
		if err != nil {
			s.log.Debug("throttle lookup failed", "key", key, "error", err)
			continue
		}
		if seen {
			continue
		}

		body, eligible := s.eligibility(task, now)
		if !eligible {
			continue
		}

		if err := s.notifier.Notify("TaskDeck", body); err != nil {
			s.log.Debug("notification delivery failed", "task", task.ID, "error", err)
			continue
		}
		if err := s.throttle.Mark(key); err != nil {
			s.log.Debug("throttle mark failed", "key", key, "error", err)
		}
	}
}

// eligibility decides whether the task should notify now and with what body.
// With a reminder time, the task is eligible within the 0-15 minute lookahead
// window (minute difference truncated toward zero, so a reminder seconds in
// the past still counts as minute zero). Without one, the task is eligible
// all day on its due date, throttled only by the hourly key.
func (s *Scheduler) eligibility(task models.Task, now time.Time) (string, bool) {
	if task.ReminderTime != nil {
		diffMinutes := int(task.ReminderTime.Sub(now).Minutes())
		if diffMinutes >= 0 && diffMinutes <= reminderLookahead {
			return fmt.Sprintf("Reminder: %q is at %s", task.Title, task.ReminderTime.Format("15:04")), true
		}
		return "", false
	}
	if sameDay(task.DueDate, now) {
		return fmt.Sprintf("Due today (all day): %q", task.Title), true
	}
	return "", false
}

// throttleKey composes the per-task, per-clock-hour dedup token.
func throttleKey(id string, now time.Time) string {
	return fmt.Sprintf("notified-%s-%s", id, now.Format("2006-01-02-15"))
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
