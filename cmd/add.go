/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/josephgoksu/TaskDeck/models"
	"github.com/josephgoksu/TaskDeck/types"
	"github.com/spf13/cobra"
)

// addCmd represents the add command
var addCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Add a new task",
	Long: `Add a new task with a due date. Priority is derived from the due
date automatically: due within 3 days (or overdue) is high, 4-7 days is
medium, beyond that is low.

Examples:
  taskdeck add "Renew passport" --due 2026-09-15
  taskdeck add "Water the plants" --due today
  taskdeck add "Call the bank" --due tomorrow --remind "2026-08-31 09:45" --pin`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAdd,
}

var (
	addDue    string
	addDesc   string
	addRemind string
	addPin    bool
)

func init() {
	rootCmd.AddCommand(addCmd)

	addCmd.Flags().StringVar(&addDue, "due", "", "due date (YYYY-MM-DD, today, tomorrow)")
	addCmd.Flags().StringVar(&addDesc, "desc", "", "task description")
	addCmd.Flags().StringVar(&addRemind, "remind", "", "precise reminder moment (\"YYYY-MM-DD HH:MM\")")
	addCmd.Flags().BoolVar(&addPin, "pin", false, "pin the task to the top of the pending view")
	_ = addCmd.MarkFlagRequired("due")
}

func runAdd(cmd *cobra.Command, args []string) error {
	title := strings.TrimSpace(strings.Join(args, " "))
	now := time.Now()

	due, err := parseDueDate(addDue, now)
	if err != nil {
		return err
	}

	input := models.NewTaskInput{
		Title:       title,
		Description: addDesc,
		DueDate:     due,
		IsPinned:    addPin,
	}
	if addRemind != "" {
		remind, err := parseReminderTime(addRemind, now)
		if err != nil {
			return err
		}
		input.ReminderTime = &remind
	}

	taskStore, err := GetStore()
	if err != nil {
		return err
	}
	defer func() { _ = taskStore.Close() }()

	repo := GetRepository(taskStore)
	id, err := repo.AddTask(cmd.Context(), input)
	if err != nil {
		// A slow acknowledgement is uncertainty, not failure: the write
		// may still land once the store catches up.
		if types.IsCode(err, types.CodeSlowNetwork) {
			fmt.Fprintf(os.Stderr, "⚠ %v\n", err)
			return nil
		}
		return err
	}

	fmt.Printf("Added %q (%s)\n", title, id)
	return nil
}
