/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"fmt"

	"github.com/josephgoksu/TaskDeck/models"
	"github.com/spf13/cobra"
)

// pinCmd represents the pin command
var pinCmd = &cobra.Command{
	Use:   "pin [id]",
	Short: "Pin or unpin a task",
	Long:  `Pin a task to the top of the pending view, or unpin it with --remove. Pinning affects display order only.`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runPin,
}

var pinRemove bool

func init() {
	rootCmd.AddCommand(pinCmd)
	pinCmd.Flags().BoolVar(&pinRemove, "remove", false, "unpin instead of pin")
}

func runPin(cmd *cobra.Command, args []string) error {
	taskStore, err := GetStore()
	if err != nil {
		return err
	}
	defer func() { _ = taskStore.Close() }()

	label := "Select a task to pin"
	if pinRemove {
		label = "Select a task to unpin"
	}
	task, err := resolveTask(taskStore, args,
		func(t models.Task) bool { return !t.IsCompleted && t.IsPinned == pinRemove },
		label)
	if err != nil {
		return err
	}

	repo := GetRepository(taskStore)
	if err := repo.UpdateTask(task.ID, map[string]interface{}{"isPinned": !pinRemove}); err != nil {
		return err
	}
	if pinRemove {
		fmt.Printf("Unpinned %q\n", task.Title)
	} else {
		fmt.Printf("Pinned %q\n", task.Title)
	}
	return nil
}
