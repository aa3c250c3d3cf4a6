/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"fmt"
	"time"

	"github.com/josephgoksu/TaskDeck/models"
	"github.com/spf13/cobra"
)

// editCmd represents the edit command
var editCmd = &cobra.Command{
	Use:   "edit [id]",
	Short: "Edit a task's fields",
	Long: `Apply a partial update to a task. Only fields whose flags are given
are written; changing the due date recomputes the priority automatically.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runEdit,
}

var (
	editTitle  string
	editDesc   string
	editDue    string
	editRemind string
)

func init() {
	rootCmd.AddCommand(editCmd)
	editCmd.Flags().StringVar(&editTitle, "title", "", "new title")
	editCmd.Flags().StringVar(&editDesc, "desc", "", "new description")
	editCmd.Flags().StringVar(&editDue, "due", "", "new due date (YYYY-MM-DD, today, tomorrow)")
	editCmd.Flags().StringVar(&editRemind, "remind", "", "new reminder moment (\"YYYY-MM-DD HH:MM\")")
}

func runEdit(cmd *cobra.Command, args []string) error {
	taskStore, err := GetStore()
	if err != nil {
		return err
	}
	defer func() { _ = taskStore.Close() }()

	task, err := resolveTask(taskStore, args,
		func(t models.Task) bool { return !t.IsCompleted },
		"Select a task to edit")
	if err != nil {
		return err
	}

	now := time.Now()
	updates := map[string]interface{}{}
	if cmd.Flags().Changed("title") {
		updates["title"] = editTitle
	}
	if cmd.Flags().Changed("desc") {
		updates["description"] = editDesc
	}
	if cmd.Flags().Changed("due") {
		due, err := parseDueDate(editDue, now)
		if err != nil {
			return err
		}
		updates["dueDate"] = due
	}
	if cmd.Flags().Changed("remind") {
		remind, err := parseReminderTime(editRemind, now)
		if err != nil {
			return err
		}
		updates["reminderTime"] = remind
	}
	if len(updates) == 0 {
		return fmt.Errorf("nothing to change; pass at least one of --title, --desc, --due, --remind")
	}

	repo := GetRepository(taskStore)
	if err := repo.UpdateTask(task.ID, updates); err != nil {
		return err
	}
	fmt.Printf("Updated %q\n", task.Title)
	return nil
}
