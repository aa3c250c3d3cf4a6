/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com

Package tasks implements the task lifecycle: creation, updates, one-way
completion, due-date-driven priority classification, maintenance sweeps, and
the pure filtering/grouping transforms.
*/
package tasks

import (
	"time"

	"github.com/josephgoksu/TaskDeck/models"
)

// Priority classifies a due date against the given instant. The whole-day
// difference is truncated toward zero, so overdue and due-today both land at
// or below zero and classify as high.
func Priority(dueDate, now time.Time) models.TaskPriority {
	diffDays := int(dueDate.Sub(now).Hours() / 24)
	switch {
	case diffDays <= 3:
		return models.PriorityHigh
	case diffDays <= 7:
		return models.PriorityMedium
	default:
		return models.PriorityLow
	}
}
