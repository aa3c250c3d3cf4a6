/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/josephgoksu/TaskDeck/models"
	"github.com/josephgoksu/TaskDeck/store"
	"github.com/josephgoksu/TaskDeck/tasks"
	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	// cfgFile is the path to the configuration file.
	cfgFile string
	// verbose enables verbose output.
	verbose bool
	// ErrNoTasksFound is returned when an interactive selection is attempted but no tasks are available.
	ErrNoTasksFound = errors.New("no tasks found matching your criteria")
	// version is the application version.
	version = "0.1.0"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "taskdeck",
	Short: "TaskDeck tracks your tasks with due-date-driven priorities.",
	Long: `TaskDeck is a personal task tracker for the command line.
It derives each task's priority from its due date, keeps pending and
completed views live, and reminds you about tasks that are due.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			_ = cmd.Help()
			os.Exit(0)
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(InitConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default is ./.taskdeck/.taskdeck.yaml or $HOME/.taskdeck.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

// GetTaskFilePath returns the full path to the tasks file.
func GetTaskFilePath() string {
	config := GetConfig()
	return filepath.Join(config.Project.RootDir, config.Data.File)
}

// GetThrottleDBPath returns the full path to the notification throttle
// database.
func GetThrottleDBPath() string {
	config := GetConfig()
	path := config.Notify.ThrottleDB
	if path == "" {
		path = "notify.db"
	}
	if !filepath.IsAbs(path) {
		path = filepath.Join(config.Project.RootDir, path)
	}
	return path
}

// GetStore initializes and returns the task store from the app config.
func GetStore() (store.TaskStore, error) {
	s := store.NewFileTaskStore()
	config := GetConfig()

	err := s.Initialize(map[string]string{
		"dataFile":       GetTaskFilePath(),
		"dataFileFormat": config.Data.Format,
	})
	if err != nil {
		return nil, err
	}
	return s, nil
}

// GetRepository wraps the store with the task lifecycle rules.
func GetRepository(s store.TaskStore) *tasks.Repository {
	return tasks.NewRepository(s, slog.Default())
}

// selectTaskInteractive presents a prompt to the user to select a task from a
// list, filtered by the provided filter function.
func selectTaskInteractive(taskStore store.TaskStore, filterFn func(models.Task) bool, label string) (models.Task, error) {
	list, err := taskStore.ListTasks(filterFn, nil)
	if err != nil {
		return models.Task{}, err
	}
	if len(list) == 0 {
		return models.Task{}, ErrNoTasksFound
	}

	templates := &promptui.SelectTemplates{
		Label:    "{{ . }}?",
		Active:   `> {{ .Title | cyan }} (due {{ .DueDate.Format "Jan 2" }}, {{ .Priority }})`,
		Inactive: `  {{ .Title | faint }} (due {{ .DueDate.Format "Jan 2" }}, {{ .Priority }})`,
		Selected: `{{ "✔" | green }} {{ .Title | faint }}`,
	}

	searcher := func(input string, index int) bool {
		task := list[index]
		name := strings.ToLower(task.Title)
		input = strings.ToLower(input)
		return strings.Contains(name, input) || strings.Contains(task.ID, input)
	}

	prompt := promptui.Select{
		Label:     label,
		Items:     list,
		Templates: templates,
		Searcher:  searcher,
	}

	i, _, err := prompt.Run()
	if err != nil {
		return models.Task{}, err
	}
	return list[i], nil
}

// resolveTask finds a task by full or shortened id, falling back to an
// interactive picker when no id was given.
func resolveTask(taskStore store.TaskStore, args []string, filterFn func(models.Task) bool, label string) (models.Task, error) {
	if len(args) == 0 {
		return selectTaskInteractive(taskStore, filterFn, label)
	}
	id := args[0]
	if task, err := taskStore.GetTask(id); err == nil {
		return task, nil
	}
	// Shortened ids from list output are a prefix of the uuid.
	matches, err := taskStore.ListTasks(func(t models.Task) bool {
		return strings.HasPrefix(t.ID, id)
	}, nil)
	if err != nil {
		return models.Task{}, err
	}
	if len(matches) == 1 {
		return matches[0], nil
	}
	if len(matches) > 1 {
		return models.Task{}, errors.New("id prefix matches more than one task; use the full id")
	}
	return models.Task{}, ErrNoTasksFound
}
