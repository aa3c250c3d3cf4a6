/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com

Package views maintains the two live, continuously updated task views:
pending (pinned first, then due date ascending) and completed (most recently
completed first). Each incoming snapshot replaces the view in full; no
incremental diffing.
*/
package views

import (
	"log/slog"
	"sort"

	"github.com/josephgoksu/TaskDeck/models"
	"github.com/josephgoksu/TaskDeck/store"
)

// PendingView is one full replacement of the pending-task view. Offline
// reports whether the snapshot was served from the local cache rather than a
// confirmed round-trip. Consumers must treat Tasks as read-only.
type PendingView struct {
	Tasks   []models.Task
	Offline bool
}

// Synchronizer subscribes to the store's change-streams and keeps the two
// ordered views current.
type Synchronizer struct {
	store store.TaskStore
	log   *slog.Logger
}

// New creates a Synchronizer over the given store.
func New(s store.TaskStore, log *slog.Logger) *Synchronizer {
	if log == nil {
		log = slog.Default()
	}
	return &Synchronizer{store: s, log: log}
}

// SubscribePending delivers the pending view on every snapshot: tasks with
// isCompleted == false, pinned tasks first, then due date ascending. Errors
// go to onError and never cross the subscription boundary; the returned
// disposer stops delivery and must be called on teardown.
func (s *Synchronizer) SubscribePending(onChange func(PendingView), onError func(error)) (store.Unsubscribe, error) {
	return s.store.Subscribe(
		func(t models.Task) bool { return !t.IsCompleted },
		func(snap store.Snapshot) {
			tasks := append([]models.Task(nil), snap.Tasks...)
			SortPending(tasks)
			onChange(PendingView{Tasks: tasks, Offline: snap.FromCache})
		},
		onError,
	)
}

// SubscribeCompleted delivers the completed view on every snapshot: tasks
// with isCompleted == true, ordered by completion time descending.
func (s *Synchronizer) SubscribeCompleted(onChange func([]models.Task), onError func(error)) (store.Unsubscribe, error) {
	return s.store.Subscribe(
		func(t models.Task) bool { return t.IsCompleted },
		func(snap store.Snapshot) {
			tasks := append([]models.Task(nil), snap.Tasks...)
			SortCompleted(tasks)
			onChange(tasks)
		},
		onError,
	)
}

// SortPending orders tasks in place: pinned before unpinned regardless of
// date, then due date ascending within each group.
func SortPending(tasks []models.Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		a, b := tasks[i], tasks[j]
		if a.IsPinned != b.IsPinned {
			return a.IsPinned
		}
		return a.DueDate.Before(b.DueDate)
	})
}

// SortCompleted orders tasks in place by completion time, newest first.
// Tasks without a completion time sort last.
func SortCompleted(tasks []models.Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		a, b := tasks[i], tasks[j]
		if a.CompletedAt == nil {
			return false
		}
		if b.CompletedAt == nil {
			return true
		}
		return a.CompletedAt.After(*b.CompletedAt)
	})
}
