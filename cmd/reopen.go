package cmd

import (
	"fmt"

	"github.com/hugoduncan/mcp-tasks/models"
	"github.com/hugoduncan/mcp-tasks/store"
	"github.com/spf13/cobra"
)

// reopenCmd represents the reopen command
var reopenCmd = &cobra.Command{
	Use:   "reopen [task-id]",
	Short: "Reopen a closed task",
	Long: `Set a closed task's status back to open. Without an id, presents an
interactive picker over the closed tasks. Reopening an open task is a no-op.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runReopen,
}

func init() {
	rootCmd.AddCommand(reopenCmd)
}

func runReopen(cmd *cobra.Command, args []string) error {
	taskStore := GetStore()

	id, err := resolveTaskID(taskStore, args, store.TaskFilter{Status: models.StatusClosed}, "Select a task to reopen")
	if err != nil {
		return err
	}

	task, err := taskStore.ReopenTask(id)
	if err != nil {
		return err
	}
	fmt.Printf("Reopened task '%s' (ID: %s)\n", task.Title, task.ID)
	return nil
}
