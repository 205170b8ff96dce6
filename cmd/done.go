package cmd

import (
	"errors"
	"fmt"

	"github.com/hugoduncan/mcp-tasks/models"
	"github.com/hugoduncan/mcp-tasks/store"
	"github.com/spf13/cobra"
)

// doneCmd represents the done command
var doneCmd = &cobra.Command{
	Use:   "done [task-id]",
	Short: "Mark a task as closed",
	Long: `Mark a task as closed. Without an id, presents an interactive picker over
the open tasks. Completing an already-closed task is a no-op.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDone,
}

func init() {
	rootCmd.AddCommand(doneCmd)
}

func runDone(cmd *cobra.Command, args []string) error {
	taskStore := GetStore()

	id, err := resolveTaskID(taskStore, args, store.TaskFilter{Status: models.StatusOpen}, "Select a task to complete")
	if err != nil {
		return err
	}

	task, err := taskStore.CompleteTask(id)
	if err != nil {
		return err
	}
	fmt.Printf("Completed task '%s' (ID: %s)\n", task.Title, task.ID)
	return nil
}

// resolveTaskID returns the explicit id argument, or prompts interactively
// over the filtered tasks when no argument was given.
func resolveTaskID(taskStore store.TaskStore, args []string, filter store.TaskFilter, label string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	task, err := selectTaskInteractive(taskStore, filter, label)
	if err != nil {
		if errors.Is(err, ErrNoTasksFound) {
			return "", fmt.Errorf("nothing to select: %w", err)
		}
		return "", err
	}
	return task.ID, nil
}
