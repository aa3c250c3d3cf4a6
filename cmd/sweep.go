/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// sweepCmd represents the sweep command
var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Run maintenance on the task file",
	Long: `Recompute priorities for all pending tasks from today's date and purge
completed tasks older than six months. Both passes are idempotent; running
sweep twice in a row changes nothing the second time.`,
	RunE: runSweep,
}

func init() {
	rootCmd.AddCommand(sweepCmd)
}

func runSweep(cmd *cobra.Command, args []string) error {
	taskStore, err := GetStore()
	if err != nil {
		return err
	}
	defer func() { _ = taskStore.Close() }()

	repo := GetRepository(taskStore)

	recalculated, err := repo.RecalculateAllPriorities()
	if err != nil {
		return fmt.Errorf("priority sweep failed: %w", err)
	}
	fmt.Printf("Priorities corrected: %d\n", recalculated)

	purged, err := repo.CleanupOldTasks()
	if err != nil {
		return fmt.Errorf("cleanup sweep failed: %w", err)
	}
	fmt.Printf("Old completed tasks purged: %d\n", purged)
	return nil
}
