/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package tasks

import (
	"testing"
	"time"

	"github.com/josephgoksu/TaskDeck/models"
	"golang.org/x/text/language"
)

func TestFilterTasks(t *testing.T) {
	tasks := []models.Task{
		{ID: "1", Title: "Buy groceries"},
		{ID: "2", Title: "Call dentist", Description: "about the groceries bill"},
		{ID: "3", Title: "Write report"},
	}

	t.Run("empty term returns input unchanged", func(t *testing.T) {
		got := FilterTasks(tasks, "")
		if len(got) != len(tasks) {
			t.Fatalf("expected %d tasks, got %d", len(tasks), len(got))
		}
		for i := range tasks {
			if got[i].ID != tasks[i].ID {
				t.Errorf("order changed at index %d", i)
			}
		}
	})

	t.Run("matches title and description case-insensitively", func(t *testing.T) {
		got := FilterTasks(tasks, "GROCERIES")
		if len(got) != 2 {
			t.Fatalf("expected 2 matches, got %d", len(got))
		}
		if got[0].ID != "1" || got[1].ID != "2" {
			t.Errorf("unexpected matches: %v, %v", got[0].ID, got[1].ID)
		}
	})

	t.Run("no matches", func(t *testing.T) {
		if got := FilterTasks(tasks, "xyzzy"); len(got) != 0 {
			t.Errorf("expected no matches, got %d", len(got))
		}
	})
}

func TestMonthName(t *testing.T) {
	if got := MonthName(time.March, language.English); got != "March" {
		t.Errorf("expected March, got %s", got)
	}
	if got := MonthName(time.March, language.BrazilianPortuguese); got != "março" {
		t.Errorf("expected março, got %s", got)
	}
	// Unsupported tags fall back to the matcher default.
	if got := MonthName(time.March, language.German); got != "March" {
		t.Errorf("expected English fallback, got %s", got)
	}
}

func TestGroupTasksByDate(t *testing.T) {
	at := func(y int, m time.Month, d int) *time.Time {
		ts := time.Date(y, m, d, 10, 0, 0, 0, time.UTC)
		return &ts
	}

	tasks := []models.Task{
		{ID: "a", Title: "a", CompletedAt: at(2024, time.March, 5)},
		{ID: "b", Title: "b", CompletedAt: at(2024, time.March, 20)},
		{ID: "c", Title: "c", CompletedAt: at(2024, time.April, 1)},
		{ID: "d", Title: "still pending"},
	}

	grouped := GroupTasksByDate(tasks, language.English)
	if len(grouped) != 1 {
		t.Fatalf("expected 1 year bucket, got %d", len(grouped))
	}
	march := grouped["2024"]["March"]
	if len(march) != 2 {
		t.Fatalf("expected 2 tasks in March, got %d", len(march))
	}
	if march[0].ID != "a" || march[1].ID != "b" {
		t.Errorf("input order not preserved in bucket: %s, %s", march[0].ID, march[1].ID)
	}
	if len(grouped["2024"]["April"]) != 1 {
		t.Errorf("expected 1 task in April")
	}

	ptGrouped := GroupTasksByDate(tasks, language.BrazilianPortuguese)
	if len(ptGrouped["2024"]["março"]) != 2 {
		t.Errorf("expected localized month bucket março")
	}
}
