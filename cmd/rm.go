/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"errors"
	"fmt"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
)

// rmCmd represents the rm command
var rmCmd = &cobra.Command{
	Use:     "rm [id]",
	Aliases: []string{"delete"},
	Short:   "Delete a task",
	Long:    `Unconditionally hard-delete a task by id. Asks for confirmation unless --yes is given.`,
	Args:    cobra.MaximumNArgs(1),
	RunE:    runRm,
}

var rmYes bool

func init() {
	rootCmd.AddCommand(rmCmd)
	rmCmd.Flags().BoolVarP(&rmYes, "yes", "y", false, "skip the confirmation prompt")
}

func runRm(cmd *cobra.Command, args []string) error {
	taskStore, err := GetStore()
	if err != nil {
		return err
	}
	defer func() { _ = taskStore.Close() }()

	task, err := resolveTask(taskStore, args, nil, "Select a task to delete")
	if err != nil {
		return err
	}

	if !rmYes {
		prompt := promptui.Prompt{
			Label:     fmt.Sprintf("Delete %q", task.Title),
			IsConfirm: true,
		}
		if _, err := prompt.Run(); err != nil {
			if errors.Is(err, promptui.ErrAbort) {
				fmt.Println("Cancelled.")
				return nil
			}
			return err
		}
	}

	repo := GetRepository(taskStore)
	if err := repo.DeleteTask(task.ID); err != nil {
		return err
	}
	fmt.Printf("Deleted %q\n", task.Title)
	return nil
}
