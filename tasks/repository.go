/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package tasks

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/josephgoksu/TaskDeck/models"
	"github.com/josephgoksu/TaskDeck/store"
	"github.com/josephgoksu/TaskDeck/types"
)

// createAckTimeout is how long AddTask waits for the store to acknowledge a
// create before reporting the result as uncertain. The write is not
// retracted; it may still land.
const createAckTimeout = 30 * time.Second

// Repository wraps the document store with the task lifecycle rules:
// validation, absent-field stripping, priority derivation, and the one-way
// completion transition.
type Repository struct {
	store      store.TaskStore
	log        *slog.Logger
	now        func() time.Time
	ackTimeout time.Duration
}

// NewRepository creates a Repository over the given store.
func NewRepository(s store.TaskStore, log *slog.Logger) *Repository {
	if log == nil {
		log = slog.Default()
	}
	return &Repository{
		store:      s,
		log:        log,
		now:        time.Now,
		ackTimeout: createAckTimeout,
	}
}

// AddTask validates the input, derives the priority from the due date, and
// issues the create. If the store has not acknowledged within the ack
// timeout, a slow-network error is returned without retracting the write.
// Returns the new task's identifier on success.
func (r *Repository) AddTask(ctx context.Context, input models.NewTaskInput) (string, error) {
	if err := models.ValidateStruct(input); err != nil {
		return "", types.NewTaskError(types.CodeValidation, "invalid task input", err)
	}

	now := r.now()
	task := models.Task{
		Title:        input.Title,
		Description:  input.Description,
		DueDate:      input.DueDate,
		ReminderTime: input.ReminderTime,
		Priority:     Priority(input.DueDate, now),
		IsPinned:     input.IsPinned,
		IsCompleted:  false,
		CreatedAt:    now,
	}

	type createResult struct {
		id  string
		err error
	}
	ch := make(chan createResult, 1)
	go func() {
		created, err := r.store.CreateTask(task)
		ch <- createResult{id: created.ID, err: err}
	}()

	timer := time.NewTimer(r.ackTimeout)
	defer timer.Stop()

	select {
	case res := <-ch:
		if res.err != nil {
			return "", types.NewTaskError(types.CodeConnectivity, "failed to save task", res.err)
		}
		r.log.Debug("task created", "id", res.id, "priority", task.Priority)
		return res.id, nil
	case <-ctx.Done():
		return "", ctx.Err()
	case <-timer.C:
		r.log.Warn("store did not acknowledge create in time", "title", input.Title)
		return "", types.NewTaskError(types.CodeSlowNetwork,
			"the server took too long to respond; the task may still have been saved", nil)
	}
}

// UpdateTask applies a partial update. Absent (nil) fields are stripped
// before the write; a field can only be cleared through a dedicated removal
// capability, which this system does not use. A new due date always
// recomputes the priority. Completion fields are owned by CompleteTask and
// rejected here, keeping isCompleted monotonic.
func (r *Repository) UpdateTask(id string, updates map[string]interface{}) error {
	clean := make(map[string]interface{}, len(updates))
	for key, value := range updates {
		if value == nil {
			continue
		}
		switch key {
		case "isCompleted", "completedAt", "completionNote":
			return types.NewTaskError(types.CodeValidation,
				fmt.Sprintf("field '%s' cannot be set through update; use CompleteTask", key), nil)
		}
		clean[key] = value
	}

	if due, ok := clean["dueDate"]; ok {
		d, ok := due.(time.Time)
		if !ok {
			return types.NewTaskError(types.CodeValidation, "dueDate must be a time value", nil)
		}
		clean["priority"] = Priority(d, r.now())
	}

	if len(clean) == 0 {
		return nil
	}

	_, err := r.store.UpdateTask(id, clean)
	return err
}

// CompleteTask marks a task completed, recording the completion instant and
// note (empty string when no note is given). The transition is one-way; no
// un-complete operation exists.
func (r *Repository) CompleteTask(id string, note string) error {
	_, err := r.store.UpdateTask(id, map[string]interface{}{
		"isCompleted":    true,
		"completedAt":    r.now(),
		"completionNote": note,
	})
	if err == nil {
		r.log.Debug("task completed", "id", id)
	}
	return err
}

// DeleteTask unconditionally hard-deletes the task with the given id.
func (r *Repository) DeleteTask(id string) error {
	return r.store.DeleteTask(id)
}

// Store exposes the underlying document store for view subscriptions.
func (r *Repository) Store() store.TaskStore {
	return r.store
}
