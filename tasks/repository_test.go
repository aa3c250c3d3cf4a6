/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package tasks

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/josephgoksu/TaskDeck/models"
	"github.com/josephgoksu/TaskDeck/store"
	"github.com/josephgoksu/TaskDeck/types"
)

func newTestRepository(t *testing.T) (*Repository, string) {
	t.Helper()
	dataFile := filepath.Join(t.TempDir(), "tasks.json")
	s := store.NewFileTaskStore()
	if err := s.Initialize(map[string]string{"dataFile": dataFile}); err != nil {
		t.Fatalf("failed to initialize store: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return NewRepository(s, slog.Default()), dataFile
}

func TestAddTask(t *testing.T) {
	repo, dataFile := newTestRepository(t)
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	repo.now = func() time.Time { return now }

	id, err := repo.AddTask(context.Background(), models.NewTaskInput{
		Title:   "Pay rent",
		DueDate: now.AddDate(0, 0, 1),
	})
	if err != nil {
		t.Fatalf("AddTask failed: %v", err)
	}

	task, err := repo.store.GetTask(id)
	if err != nil {
		t.Fatalf("GetTask failed: %v", err)
	}
	if task.Priority != models.PriorityHigh {
		t.Errorf("expected derived priority high, got %s", task.Priority)
	}
	if task.IsCompleted {
		t.Error("new task must not be completed")
	}
	if !task.CreatedAt.Equal(now) {
		t.Errorf("expected createdAt %v, got %v", now, task.CreatedAt)
	}

	// Absent optional fields must not appear in the persisted form at all.
	raw, err := os.ReadFile(dataFile)
	if err != nil {
		t.Fatalf("failed to read data file: %v", err)
	}
	if strings.Contains(string(raw), `"description"`) {
		t.Error("empty description must be omitted from the persisted task")
	}
	if strings.Contains(string(raw), `"reminderTime"`) {
		t.Error("unset reminderTime must be omitted from the persisted task")
	}
}

func TestAddTaskValidation(t *testing.T) {
	repo, _ := newTestRepository(t)

	_, err := repo.AddTask(context.Background(), models.NewTaskInput{
		Title: "missing due date",
	})
	if err == nil {
		t.Fatal("expected validation error for missing due date")
	}
	if !types.IsCode(err, types.CodeValidation) {
		t.Errorf("expected validation error code, got %v", err)
	}

	_, err = repo.AddTask(context.Background(), models.NewTaskInput{
		DueDate: time.Now().AddDate(0, 0, 1),
	})
	if !types.IsCode(err, types.CodeValidation) {
		t.Errorf("expected validation error for empty title, got %v", err)
	}
}

// slowStore blocks CreateTask longer than the repository's ack timeout.
type slowStore struct {
	store.TaskStore
	delay time.Duration
}

func (s *slowStore) CreateTask(task models.Task) (models.Task, error) {
	time.Sleep(s.delay)
	return s.TaskStore.CreateTask(task)
}

func TestAddTaskSlowAcknowledgement(t *testing.T) {
	repo, _ := newTestRepository(t)
	repo.store = &slowStore{TaskStore: repo.store, delay: 200 * time.Millisecond}
	repo.ackTimeout = 20 * time.Millisecond

	_, err := repo.AddTask(context.Background(), models.NewTaskInput{
		Title:   "slow save",
		DueDate: time.Now().AddDate(0, 0, 1),
	})
	if !types.IsCode(err, types.CodeSlowNetwork) {
		t.Fatalf("expected slow-network error, got %v", err)
	}
	// The write is not retracted; once the store catches up the task exists.
	time.Sleep(300 * time.Millisecond)
	list, err := repo.store.ListTasks(nil, nil)
	if err != nil {
		t.Fatalf("ListTasks failed: %v", err)
	}
	if len(list) != 1 {
		t.Errorf("expected the delayed write to land, found %d tasks", len(list))
	}
}

func TestUpdateTaskRecomputesPriority(t *testing.T) {
	repo, _ := newTestRepository(t)
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	repo.now = func() time.Time { return now }

	id, err := repo.AddTask(context.Background(), models.NewTaskInput{
		Title:   "far away",
		DueDate: now.AddDate(0, 1, 0),
	})
	if err != nil {
		t.Fatalf("AddTask failed: %v", err)
	}

	if err := repo.UpdateTask(id, map[string]interface{}{
		"dueDate": now.AddDate(0, 0, 1),
	}); err != nil {
		t.Fatalf("UpdateTask failed: %v", err)
	}

	task, err := repo.store.GetTask(id)
	if err != nil {
		t.Fatalf("GetTask failed: %v", err)
	}
	if task.Priority != models.PriorityHigh {
		t.Errorf("expected priority recomputed to high, got %s", task.Priority)
	}
}

func TestUpdateTaskStripsNilValues(t *testing.T) {
	repo, _ := newTestRepository(t)
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	repo.now = func() time.Time { return now }

	id, err := repo.AddTask(context.Background(), models.NewTaskInput{
		Title:       "keep my description",
		Description: "important context",
		DueDate:     now.AddDate(0, 0, 5),
	})
	if err != nil {
		t.Fatalf("AddTask failed: %v", err)
	}

	if err := repo.UpdateTask(id, map[string]interface{}{
		"title":       "renamed",
		"description": nil,
	}); err != nil {
		t.Fatalf("UpdateTask failed: %v", err)
	}

	task, _ := repo.store.GetTask(id)
	if task.Title != "renamed" {
		t.Errorf("expected title renamed, got %q", task.Title)
	}
	if task.Description != "important context" {
		t.Errorf("nil value must leave the field untouched, got %q", task.Description)
	}
}

func TestUpdateTaskRejectsCompletionFields(t *testing.T) {
	repo, _ := newTestRepository(t)

	for _, field := range []string{"isCompleted", "completedAt", "completionNote"} {
		err := repo.UpdateTask("some-id", map[string]interface{}{field: true})
		if !types.IsCode(err, types.CodeValidation) {
			t.Errorf("expected validation error for field %s, got %v", field, err)
		}
	}
}

func TestCompleteTask(t *testing.T) {
	repo, _ := newTestRepository(t)
	created := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	completed := created.Add(2 * time.Hour)
	repo.now = func() time.Time { return created }

	id, err := repo.AddTask(context.Background(), models.NewTaskInput{
		Title:   "finish the report",
		DueDate: created.AddDate(0, 0, 2),
	})
	if err != nil {
		t.Fatalf("AddTask failed: %v", err)
	}

	repo.now = func() time.Time { return completed }
	if err := repo.CompleteTask(id, "done well"); err != nil {
		t.Fatalf("CompleteTask failed: %v", err)
	}

	task, _ := repo.store.GetTask(id)
	if !task.IsCompleted {
		t.Error("expected task to be completed")
	}
	if task.CompletedAt == nil || !task.CompletedAt.Equal(completed) {
		t.Errorf("expected completedAt %v, got %v", completed, task.CompletedAt)
	}
	if task.CompletionNote != "done well" {
		t.Errorf("expected note 'done well', got %q", task.CompletionNote)
	}
	if task.CompletedAt.Before(task.CreatedAt) {
		t.Error("completedAt must not precede createdAt")
	}
}

func TestCompleteTaskWithoutNote(t *testing.T) {
	repo, _ := newTestRepository(t)
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	repo.now = func() time.Time { return now }

	id, err := repo.AddTask(context.Background(), models.NewTaskInput{
		Title:   "quick one",
		DueDate: now,
	})
	if err != nil {
		t.Fatalf("AddTask failed: %v", err)
	}
	if err := repo.CompleteTask(id, ""); err != nil {
		t.Fatalf("CompleteTask failed: %v", err)
	}
	task, _ := repo.store.GetTask(id)
	if task.CompletionNote != "" {
		t.Errorf("expected empty note, got %q", task.CompletionNote)
	}
	if !task.IsCompleted {
		t.Error("expected task to be completed")
	}
}

func TestDeleteTask(t *testing.T) {
	repo, _ := newTestRepository(t)
	now := time.Now()

	id, err := repo.AddTask(context.Background(), models.NewTaskInput{
		Title:   "throwaway",
		DueDate: now.AddDate(0, 0, 1),
	})
	if err != nil {
		t.Fatalf("AddTask failed: %v", err)
	}
	if err := repo.DeleteTask(id); err != nil {
		t.Fatalf("DeleteTask failed: %v", err)
	}
	if _, err := repo.store.GetTask(id); !types.IsCode(err, types.CodeNotFound) {
		t.Errorf("expected not-found after delete, got %v", err)
	}
	if err := repo.DeleteTask(id); !types.IsCode(err, types.CodeNotFound) {
		t.Errorf("expected not-found for second delete, got %v", err)
	}
}
