/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/josephgoksu/TaskDeck/models"
	"github.com/spf13/cobra"
)

// doneCmd represents the done command
var doneCmd = &cobra.Command{
	Use:   "done [id]",
	Short: "Complete a task",
	Long: `Mark a task as completed, optionally recording a completion note.
Completion is one-way; there is no un-complete.

With --follow-up a new pinned task referencing this one is created, due
tomorrow.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDone,
}

var (
	doneNote     string
	doneFollowUp bool
)

func init() {
	rootCmd.AddCommand(doneCmd)
	doneCmd.Flags().StringVarP(&doneNote, "note", "n", "", "completion note")
	doneCmd.Flags().BoolVar(&doneFollowUp, "follow-up", false, "create a pinned follow-up task")
}

func runDone(cmd *cobra.Command, args []string) error {
	taskStore, err := GetStore()
	if err != nil {
		return err
	}
	defer func() { _ = taskStore.Close() }()

	task, err := resolveTask(taskStore, args,
		func(t models.Task) bool { return !t.IsCompleted },
		"Select a task to complete")
	if err != nil {
		return err
	}

	repo := GetRepository(taskStore)
	if err := repo.CompleteTask(task.ID, doneNote); err != nil {
		return err
	}
	fmt.Printf("Completed %q\n", task.Title)

	if doneFollowUp {
		now := time.Now()
		desc := fmt.Sprintf("Ref: %q completed on %s.", task.Title, now.Format("Jan 2, 2006"))
		if doneNote != "" {
			desc += " " + doneNote
		}
		due, _ := parseDueDate("tomorrow", now)
		id, err := repo.AddTask(cmd.Context(), models.NewTaskInput{
			Title:       "Follow-up: " + task.Title,
			Description: desc,
			DueDate:     due,
			IsPinned:    true,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "⚠ could not create follow-up: %v\n", err)
			return nil
		}
		fmt.Printf("Created follow-up task (%s)\n", id)
	}
	return nil
}
