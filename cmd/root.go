package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/hugoduncan/mcp-tasks/models"
	"github.com/hugoduncan/mcp-tasks/store"
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
	version = "0.3.0"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "mcp-tasks",
	Short: "mcp-tasks manages a shared task file and serves it over MCP.",
	Long: `mcp-tasks is a task-tracking backend. Tasks live in a shared line-per-record
file; every mutation is serialized by an exclusive advisory file lock and
persisted with an atomic whole-file replace.

Run 'mcp-tasks mcp' to expose the store to AI tools over the Model Context
Protocol, or use the add/list/done/reopen/delete subcommands directly.`,
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
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(InitConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default is ./.mcp-tasks/.mcp-tasks.yaml or $HOME/.mcp-tasks.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

// GetStore builds the task store from the resolved configuration.
func GetStore() store.TaskStore {
	config := GetConfig()
	return store.NewFileTaskStore(store.Config{
		BaseDir:     config.Project.RootDir,
		DataFile:    config.Data.File,
		LockTimeout: time.Duration(config.Lock.TimeoutMs) * time.Millisecond,
	})
}

// selectTaskInteractive presents a prompt to the user to select a task from a
// list, optionally filtered.
func selectTaskInteractive(taskStore store.TaskStore, filter store.TaskFilter, label string) (models.Task, error) {
	tasks, err := taskStore.SelectTasks(filter)
	if err != nil {
		return models.Task{}, fmt.Errorf("failed to list tasks for selection: %w", err)
	}
	if len(tasks) == 0 {
		return models.Task{}, ErrNoTasksFound
	}

	templates := &promptui.SelectTemplates{
		Label:    "{{ . }}?",
		Active:   `> {{ .Title | cyan }} (ID: {{ .ID }}, Status: {{ .Status }})`,
		Inactive: `  {{ .Title | faint }} (ID: {{ .ID }}, Status: {{ .Status }})`,
		Selected: `{{ "✔" | green }} {{ .Title | faint }} (ID: {{ .ID }})`,
		Details: `
--------- Task Details ----------
{{ "ID:\t" | faint }} {{ .ID }}
{{ "Title:\t" | faint }} {{ .Title }}
{{ "Category:\t" | faint }} {{ .Category }}
{{ "Status:\t" | faint }} {{ .Status }}`,
	}

	searcher := func(input string, index int) bool {
		task := tasks[index]
		input = strings.ToLower(input)
		return strings.Contains(strings.ToLower(task.Title), input) || strings.Contains(task.ID, input)
	}

	prompt := promptui.Select{
		Label:     label,
		Items:     tasks,
		Templates: templates,
		Searcher:  searcher,
	}

	i, _, err := prompt.Run()
	if err != nil {
		return models.Task{}, err
	}
	return tasks[i], nil
}
