/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// TaskPriority represents the priority tier of a task. It is derived from
// due-date proximity and never set directly by the user.
type TaskPriority string

const (
	PriorityHigh   TaskPriority = "high"   // due within 3 days or overdue
	PriorityMedium TaskPriority = "medium" // due in 4-7 days
	PriorityLow    TaskPriority = "low"    // due in more than 7 days
)

// Task represents a single tracked task.
//
// Optional fields carry omitempty so an absent value is omitted from the
// persisted form entirely; the store has no encoding for an explicit
// "field absent" marker.
type Task struct {
	ID             string       `json:"id" yaml:"id" toml:"id" validate:"required,uuid4"`
	Title          string       `json:"title" yaml:"title" toml:"title" validate:"required,min=1,max=255"`
	Description    string       `json:"description,omitempty" yaml:"description,omitempty" toml:"description,omitempty"`
	DueDate        time.Time    `json:"dueDate" yaml:"dueDate" toml:"dueDate" validate:"required"`
	ReminderTime   *time.Time   `json:"reminderTime,omitempty" yaml:"reminderTime,omitempty" toml:"reminderTime,omitempty"`
	Priority       TaskPriority `json:"priority" yaml:"priority" toml:"priority" validate:"required,oneof=high medium low"`
	IsPinned       bool         `json:"isPinned" yaml:"isPinned" toml:"isPinned"`
	IsCompleted    bool         `json:"isCompleted" yaml:"isCompleted" toml:"isCompleted"`
	CompletedAt    *time.Time   `json:"completedAt,omitempty" yaml:"completedAt,omitempty" toml:"completedAt,omitempty"`
	CompletionNote string       `json:"completionNote,omitempty" yaml:"completionNote,omitempty" toml:"completionNote,omitempty"`
	CreatedAt      time.Time    `json:"createdAt" yaml:"createdAt" toml:"createdAt" validate:"required"`
}

// NewTaskInput carries the user-settable fields for task creation.
// ID, priority, completion state and createdAt are assigned on write.
type NewTaskInput struct {
	Title        string     `json:"title" validate:"required,min=1,max=255"`
	Description  string     `json:"description,omitempty"`
	DueDate      time.Time  `json:"dueDate" validate:"required"`
	ReminderTime *time.Time `json:"reminderTime,omitempty"`
	IsPinned     bool       `json:"isPinned"`
}

// TaskList represents a collection of tasks as persisted by the store.
type TaskList struct {
	Tasks      []Task `json:"tasks" yaml:"tasks" toml:"tasks" validate:"dive"`
	TotalCount int    `json:"totalCount" yaml:"totalCount" toml:"totalCount"`
}

// GroupedTasks maps year -> month name -> tasks, preserving the order of the
// source sequence within each month. A transient display aggregation, never
// persisted.
type GroupedTasks map[string]map[string][]Task

// global validator instance
var validate *validator.Validate

func init() {
	validate = validator.New()
}

// ValidateStruct performs validation on any struct that has validation tags.
func ValidateStruct(s interface{}) error {
	if validate == nil {
		validate = validator.New()
	}
	err := validate.Struct(s)
	if err != nil {
		validationErrors := err.(validator.ValidationErrors)
		var msgs []string
		for _, e := range validationErrors {
			msgs = append(msgs, fmt.Sprintf("field '%s' failed rule '%s' (value: '%v')", e.StructNamespace(), e.Tag(), e.Value()))
		}
		return fmt.Errorf("%s", strings.Join(msgs, "; "))
	}
	return nil
}
