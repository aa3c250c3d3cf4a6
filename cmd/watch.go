/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/josephgoksu/TaskDeck/internal/notify"
	"github.com/josephgoksu/TaskDeck/internal/ui"
	"github.com/josephgoksu/TaskDeck/internal/views"
	"github.com/josephgoksu/TaskDeck/models"
	"github.com/spf13/cobra"
)

// watchCmd represents the watch command
var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch tasks and deliver reminders",
	Long: `Run in the foreground: keep the pending view live, re-render it on
every change, and deliver desktop reminders for tasks that are due. On
startup a maintenance sweep corrects stale priorities and purges old
completed tasks. Stop with Ctrl-C.`,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	logger := slog.Default()
	config := GetConfig()

	taskStore, err := GetStore()
	if err != nil {
		return err
	}
	defer func() { _ = taskStore.Close() }()

	repo := GetRepository(taskStore)

	// Sweeps run once on startup so a long-lived watcher starts from a
	// consistent file.
	if n, err := repo.RecalculateAllPriorities(); err != nil {
		logger.Warn("priority sweep failed", "error", err)
	} else if n > 0 {
		logger.Info("priorities corrected", "count", n)
	}
	if n, err := repo.CleanupOldTasks(); err != nil {
		logger.Warn("cleanup sweep failed", "error", err)
	} else if n > 0 {
		logger.Info("old completed tasks purged", "count", n)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var sched *notify.Scheduler
	if config.Notify.Enabled {
		notifier := notify.NewDesktopNotifier("")
		if notifier.RequestPermission() != notify.PermissionGranted {
			logger.Info("notification permission not granted; reminders disabled")
		}

		var throttle notify.ThrottleStore
		throttle, err = notify.NewSQLiteThrottle(GetThrottleDBPath())
		if err != nil {
			logger.Warn("throttle database unavailable, falling back to in-memory throttle", "error", err)
			throttle = notify.NewMemoryThrottle()
		}
		defer func() { _ = throttle.Close() }()

		sched = notify.NewScheduler(notifier, throttle, logger)
		sched.Start(ctx)
		defer sched.Stop()
	} else {
		logger.Info("notifications disabled by config")
	}

	syncer := views.New(taskStore, logger)

	disposePending, err := syncer.SubscribePending(
		func(view views.PendingView) {
			renderPending(view)
			if sched != nil {
				sched.OnViewChange(view.Tasks)
			}
		},
		func(err error) {
			logger.Error("pending view stream failed", "error", err)
		},
	)
	if err != nil {
		return err
	}
	defer disposePending()

	disposeCompleted, err := syncer.SubscribeCompleted(
		func(completed []models.Task) {
			logger.Debug("completed view updated", "count", len(completed))
		},
		func(err error) {
			logger.Error("completed view stream failed", "error", err)
		},
	)
	if err != nil {
		return err
	}
	defer disposeCompleted()

	logger.Info("watching", "file", GetTaskFilePath())
	<-ctx.Done()
	fmt.Fprintln(os.Stderr, "shutting down")
	return nil
}

// renderPending clears the terminal and prints the current pending view.
func renderPending(view views.PendingView) {
	fmt.Print("\033[H\033[2J")
	if view.Offline {
		fmt.Println(ui.OfflineBadge())
	}
	fmt.Println(ui.StyleSectionTitle.Render(fmt.Sprintf("Pending (%d)", len(view.Tasks))))
	if len(view.Tasks) == 0 {
		fmt.Println(ui.StyleSubtle.Render("All clear. Nothing pending."))
		return
	}
	for _, t := range view.Tasks {
		fmt.Println(ui.TaskRow(t))
	}
}
