package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/hugoduncan/mcp-tasks/models"
	"github.com/hugoduncan/mcp-tasks/store"
	"github.com/spf13/cobra"
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks",
	Long: `List tasks in stored order, optionally filtered.

Examples:
  mcp-tasks list
  mcp-tasks list --status open
  mcp-tasks list --category medium --search login`,
	RunE: runList,
}

var (
	listStatus   string
	listCategory string
	listTaskType string
	listSearch   string
)

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().StringVar(&listStatus, "status", "", "Filter by status (open, closed)")
	listCmd.Flags().StringVar(&listCategory, "category", "", "Filter by workflow category")
	listCmd.Flags().StringVar(&listTaskType, "type", "", "Filter by type (task, story)")
	listCmd.Flags().StringVar(&listSearch, "search", "", "Substring match on title and description")
}

func runList(cmd *cobra.Command, args []string) error {
	taskStore := GetStore()
	tasks, err := taskStore.SelectTasks(store.TaskFilter{
		Status:   models.TaskStatus(listStatus),
		Category: listCategory,
		Type:     models.TaskType(listTaskType),
		Search:   listSearch,
	})
	if err != nil {
		return err
	}

	if len(tasks) == 0 {
		fmt.Println("No tasks found.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSTATUS\tCATEGORY\tTYPE\tTITLE")
	for _, task := range tasks {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", task.ID, task.Status, task.Category, task.Type, task.Title)
	}
	return w.Flush()
}
