/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package tasks

import (
	"github.com/josephgoksu/TaskDeck/models"
)

// completedRetentionMonths is how long completed tasks are kept before the
// cleanup sweep purges them. Fixed retention policy, not configurable.
const completedRetentionMonths = 6

// RecalculateAllPriorities re-derives the priority of every pending task from
// the current wall clock and batch-updates only the tasks whose stored
// priority disagrees. Priority is a function of time: a task created as
// medium ages into high even if nobody edits it. No write is issued when
// every task already agrees. Returns the number of corrected tasks.
func (r *Repository) RecalculateAllPriorities() (int, error) {
	pending, err := r.store.ListTasks(func(t models.Task) bool { return !t.IsCompleted }, nil)
	if err != nil {
		return 0, err
	}

	now := r.now()
	batch := r.store.NewBatch()
	updated := 0
	for _, t := range pending {
		want := Priority(t.DueDate, now)
		if t.Priority != want {
			batch.Update(t.ID, map[string]interface{}{"priority": want})
			updated++
		}
	}
	if updated == 0 {
		return 0, nil
	}
	if err := batch.Commit(); err != nil {
		return 0, err
	}
	r.log.Debug("priority sweep corrected tasks", "count", updated)
	return updated, nil
}

// CleanupOldTasks deletes, in one batched operation, every completed task
// whose completion is older than the retention window. No-op when none
// qualify. Returns the number of purged tasks.
func (r *Repository) CleanupOldTasks() (int, error) {
	cutoff := r.now().AddDate(0, -completedRetentionMonths, 0)
	old, err := r.store.ListTasks(func(t models.Task) bool {
		return t.IsCompleted && t.CompletedAt != nil && t.CompletedAt.Before(cutoff)
	}, nil)
	if err != nil {
		return 0, err
	}
	if len(old) == 0 {
		return 0, nil
	}

	batch := r.store.NewBatch()
	for _, t := range old {
		batch.Delete(t.ID)
	}
	if err := batch.Commit(); err != nil {
		return 0, err
	}
	r.log.Debug("cleanup sweep removed old tasks", "count", len(old))
	return len(old), nil
}
