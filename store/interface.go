package store

import "github.com/hugoduncan/mcp-tasks/models"

// TaskStore defines the contract consumed by the protocol layer and the CLI.
// Every operation is atomic end to end: it acquires the exclusive lock, loads
// the current collection from disk, applies its change, persists, and
// releases the lock. Expected failures (lock timeout, validation, not-found)
// come back as *types.TaskError values; anything else is a fault.
type TaskStore interface {
	// CreateTask assigns a fresh id, sets status open, and persists the task.
	// An empty title is a validation error with no side effect.
	CreateTask(fields NewTaskFields) (models.Task, error)

	// GetTask retrieves a task by its unique identifier.
	GetTask(id string) (models.Task, error)

	// ListTasks returns all tasks in stored (insertion) order.
	ListTasks() ([]models.Task, error)

	// SelectTasks returns the tasks matching the filter, in stored order.
	SelectTasks(filter TaskFilter) ([]models.Task, error)

	// UpdateTask applies a field-level patch to the task with the given id.
	// The id itself is immutable and rejected if present in the patch.
	UpdateTask(id string, updates map[string]any) (models.Task, error)

	// CompleteTask sets the task's status to closed. Completing a closed task
	// is a no-op success.
	CompleteTask(id string) (models.Task, error)

	// ReopenTask sets the task's status to open. Reopening an open task is a
	// no-op success.
	ReopenTask(id string) (models.Task, error)

	// DeleteTask removes the task with the given id.
	DeleteTask(id string) error

	// DeleteAllTasks removes every task. Destructive; the command layer is
	// expected to have confirmed with the user.
	DeleteAllTasks() error
}
