package cmd

import (
	"fmt"
	"strings"

	"github.com/hugoduncan/mcp-tasks/models"
	"github.com/hugoduncan/mcp-tasks/store"
	"github.com/spf13/cobra"
)

// addCmd represents the add command
var addCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Add a new task",
	Long: `Add a new task to the store. The task starts with status open.

Examples:
  mcp-tasks add "Fix login redirect"
  mcp-tasks add "Ship billing revamp" --category large --type story
  mcp-tasks add "Tighten lock timeout" --description "See incident notes" --design "Poll at 25ms"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAdd,
}

var (
	addDescription string
	addDesign      string
	addCategory    string
	addTaskType    string
)

func init() {
	rootCmd.AddCommand(addCmd)

	addCmd.Flags().StringVar(&addDescription, "description", "", "Task description")
	addCmd.Flags().StringVar(&addDesign, "design", "", "Design notes attached to the task")
	addCmd.Flags().StringVar(&addCategory, "category", "", "Workflow category (simple, medium, large)")
	addCmd.Flags().StringVar(&addTaskType, "type", "task", "Task type (task, story)")
}

func runAdd(cmd *cobra.Command, args []string) error {
	title := strings.TrimSpace(strings.Join(args, " "))

	taskStore := GetStore()
	task, err := taskStore.CreateTask(store.NewTaskFields{
		Title:       title,
		Description: addDescription,
		Design:      addDesign,
		Category:    addCategory,
		Type:        models.TaskType(addTaskType),
	})
	if err != nil {
		return err
	}

	fmt.Printf("Created task '%s' (ID: %s)\n", task.Title, task.ID)
	return nil
}
