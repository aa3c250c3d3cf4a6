/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"fmt"

	"github.com/josephgoksu/TaskDeck/internal/ui"
	"github.com/josephgoksu/TaskDeck/internal/views"
	"github.com/josephgoksu/TaskDeck/models"
	"github.com/josephgoksu/TaskDeck/tasks"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
)

// historyCmd represents the history command
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show completed tasks",
	Long: `Show completed tasks, most recent first, grouped by year and month.
Month names follow the configured locale.`,
	RunE: runHistory,
}

var historySearch string

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().StringVarP(&historySearch, "search", "s", "", "filter by title or description")
}

func runHistory(cmd *cobra.Command, args []string) error {
	taskStore, err := GetStore()
	if err != nil {
		return err
	}
	defer func() { _ = taskStore.Close() }()

	completed, err := taskStore.ListTasks(
		func(t models.Task) bool { return t.IsCompleted },
		func(ts []models.Task) []models.Task {
			views.SortCompleted(ts)
			return ts
		},
	)
	if err != nil {
		return err
	}

	completed = tasks.FilterTasks(completed, historySearch)
	if len(completed) == 0 {
		if historySearch != "" {
			fmt.Println(ui.StyleSubtle.Render("No completed tasks match your search."))
		} else {
			fmt.Println(ui.StyleSubtle.Render("Nothing completed yet."))
		}
		return nil
	}

	tag, err := language.Parse(GetConfig().Locale.Tag)
	if err != nil {
		tag = language.English
	}

	// Walk the descending-sorted list and open a new section whenever the
	// year or month changes. This keeps sections in recency order without
	// sorting map keys.
	grouped := tasks.GroupTasksByDate(completed, tag)
	var curYear, curMonth string
	for _, t := range completed {
		if t.CompletedAt == nil {
			continue
		}
		year := fmt.Sprintf("%d", t.CompletedAt.Year())
		month := tasks.MonthName(t.CompletedAt.Month(), tag)
		if year != curYear {
			curYear = year
			curMonth = ""
			fmt.Println(ui.StyleSectionTitle.Render(year))
		}
		if month != curMonth {
			curMonth = month
			fmt.Println(ui.StyleSubtle.Render(fmt.Sprintf("  %s (%d)", month, len(grouped[year][month]))))
		}
		fmt.Println(ui.CompletedRow(t))
	}
	return nil
}
