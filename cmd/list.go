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
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List pending tasks",
	Long: `List pending tasks, pinned first and then by due date. Use --search
to filter by a case-insensitive substring of the title or description.`,
	RunE: runList,
}

var listSearch string

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().StringVarP(&listSearch, "search", "s", "", "filter by title or description")
}

func runList(cmd *cobra.Command, args []string) error {
	taskStore, err := GetStore()
	if err != nil {
		return err
	}
	defer func() { _ = taskStore.Close() }()

	pending, err := taskStore.ListTasks(
		func(t models.Task) bool { return !t.IsCompleted },
		func(ts []models.Task) []models.Task {
			views.SortPending(ts)
			return ts
		},
	)
	if err != nil {
		return err
	}

	pending = tasks.FilterTasks(pending, listSearch)
	if len(pending) == 0 {
		if listSearch != "" {
			fmt.Println(ui.StyleSubtle.Render("No tasks match your search."))
		} else {
			fmt.Println(ui.StyleSubtle.Render("All clear. Nothing pending."))
		}
		return nil
	}

	fmt.Println(ui.StyleSectionTitle.Render(fmt.Sprintf("Pending (%d)", len(pending))))
	for _, t := range pending {
		fmt.Println(ui.TaskRow(t))
	}
	return nil
}
