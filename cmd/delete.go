package cmd

import (
	"fmt"

	"github.com/hugoduncan/mcp-tasks/store"
	"github.com/spf13/cobra"
)

// deleteCmd represents the delete command
var deleteCmd = &cobra.Command{
	Use:   "delete [task-id]",
	Short: "Delete a task",
	Long: `Remove a task from the store entirely. Without an id, presents an
interactive picker over all tasks.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDelete,
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}

func runDelete(cmd *cobra.Command, args []string) error {
	taskStore := GetStore()

	id, err := resolveTaskID(taskStore, args, store.TaskFilter{}, "Select a task to delete")
	if err != nil {
		return err
	}

	if err := taskStore.DeleteTask(id); err != nil {
		return err
	}
	fmt.Printf("Deleted task %s\n", id)
	return nil
}
