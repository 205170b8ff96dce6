package mcp

// MCP tools: add, list, select, get, update, complete, reopen, delete

import (
	"context"
	"fmt"
	"strings"

	"github.com/hugoduncan/mcp-tasks/models"
	"github.com/hugoduncan/mcp-tasks/store"
	"github.com/hugoduncan/mcp-tasks/types"
	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
)

// addTaskHandler creates a new task
func addTaskHandler(taskStore store.TaskStore) mcpsdk.ToolHandlerFor[types.AddTaskParams, types.TaskResponse] {
	return func(ctx context.Context, ss *mcpsdk.ServerSession, params *mcpsdk.CallToolParamsFor[types.AddTaskParams]) (*mcpsdk.CallToolResultFor[types.TaskResponse], error) {
		args := params.Arguments

		created, err := taskStore.CreateTask(store.NewTaskFields{
			Title:       args.Title,
			Description: args.Description,
			Design:      args.Design,
			Category:    args.Category,
			Type:        models.TaskType(args.Type),
			Meta:        args.Meta,
			Relations:   paramsToRelations(args.Relations),
		})
		if err != nil {
			return storeErrorResult[types.TaskResponse](err)
		}

		logInfo(fmt.Sprintf("Created task: %s", created.ID))
		return textResult(fmt.Sprintf("Created task '%s' with ID: %s", created.Title, created.ID), taskToResponse(created))
	}
}

// listTasksHandler lists every task in stored order
func listTasksHandler(taskStore store.TaskStore) mcpsdk.ToolHandlerFor[types.ListTasksParams, types.TaskListResponse] {
	return func(ctx context.Context, ss *mcpsdk.ServerSession, params *mcpsdk.CallToolParamsFor[types.ListTasksParams]) (*mcpsdk.CallToolResultFor[types.TaskListResponse], error) {
		tasks, err := taskStore.ListTasks()
		if err != nil {
			return storeErrorResult[types.TaskListResponse](err)
		}
		return textResult(fmt.Sprintf("Found %d tasks", len(tasks)), taskListResponse(tasks))
	}
}

// selectTasksHandler lists tasks matching caller-supplied criteria
func selectTasksHandler(taskStore store.TaskStore) mcpsdk.ToolHandlerFor[types.SelectTasksParams, types.TaskListResponse] {
	return func(ctx context.Context, ss *mcpsdk.ServerSession, params *mcpsdk.CallToolParamsFor[types.SelectTasksParams]) (*mcpsdk.CallToolResultFor[types.TaskListResponse], error) {
		args := params.Arguments

		if args.Status != "" && args.Status != string(models.StatusOpen) && args.Status != string(models.StatusClosed) {
			return storeErrorResult[types.TaskListResponse](
				types.NewValidationError("status", fmt.Sprintf("invalid status %q: must be open or closed", args.Status)))
		}

		tasks, err := taskStore.SelectTasks(store.TaskFilter{
			Status:   models.TaskStatus(args.Status),
			Category: args.Category,
			Type:     models.TaskType(args.Type),
			Search:   args.Search,
		})
		if err != nil {
			return storeErrorResult[types.TaskListResponse](err)
		}
		return textResult(fmt.Sprintf("Found %d matching tasks", len(tasks)), taskListResponse(tasks))
	}
}

// getTaskHandler retrieves a single task by id
func getTaskHandler(taskStore store.TaskStore) mcpsdk.ToolHandlerFor[types.GetTaskParams, types.TaskResponse] {
	return func(ctx context.Context, ss *mcpsdk.ServerSession, params *mcpsdk.CallToolParamsFor[types.GetTaskParams]) (*mcpsdk.CallToolResultFor[types.TaskResponse], error) {
		if strings.TrimSpace(params.Arguments.ID) == "" {
			return storeErrorResult[types.TaskResponse](types.NewValidationError("id", "task id is required"))
		}
		task, err := taskStore.GetTask(params.Arguments.ID)
		if err != nil {
			return storeErrorResult[types.TaskResponse](err)
		}
		return textResult(fmt.Sprintf("Task '%s' (%s)", task.Title, task.Status), taskToResponse(task))
	}
}

// updateTaskHandler applies a field-level patch to an existing task
func updateTaskHandler(taskStore store.TaskStore) mcpsdk.ToolHandlerFor[types.UpdateTaskParams, types.TaskResponse] {
	return func(ctx context.Context, ss *mcpsdk.ServerSession, params *mcpsdk.CallToolParamsFor[types.UpdateTaskParams]) (*mcpsdk.CallToolResultFor[types.TaskResponse], error) {
		args := params.Arguments
		if strings.TrimSpace(args.ID) == "" {
			return storeErrorResult[types.TaskResponse](types.NewValidationError("id", "task id is required"))
		}

		updates := make(map[string]any)
		if args.Title != "" {
			updates["title"] = args.Title
		}
		if args.Description != nil {
			updates["description"] = *args.Description
		}
		if args.Design != nil {
			updates["design"] = *args.Design
		}
		if args.Category != "" {
			updates["category"] = args.Category
		}
		if args.Type != "" {
			updates["type"] = args.Type
		}
		if args.Meta != nil {
			updates["meta"] = args.Meta
		}
		if args.Relations != nil {
			updates["relations"] = paramsToRelations(args.Relations)
		}
		if len(updates) == 0 {
			return storeErrorResult[types.TaskResponse](types.NewValidationError("updates", "no fields to update"))
		}

		updated, err := taskStore.UpdateTask(args.ID, updates)
		if err != nil {
			return storeErrorResult[types.TaskResponse](err)
		}

		logInfo(fmt.Sprintf("Updated task: %s", updated.ID))
		return textResult(fmt.Sprintf("Updated task '%s'", updated.Title), taskToResponse(updated))
	}
}

// completeTaskHandler marks a task closed
func completeTaskHandler(taskStore store.TaskStore) mcpsdk.ToolHandlerFor[types.CompleteTaskParams, types.TaskResponse] {
	return func(ctx context.Context, ss *mcpsdk.ServerSession, params *mcpsdk.CallToolParamsFor[types.CompleteTaskParams]) (*mcpsdk.CallToolResultFor[types.TaskResponse], error) {
		if strings.TrimSpace(params.Arguments.ID) == "" {
			return storeErrorResult[types.TaskResponse](types.NewValidationError("id", "task id is required"))
		}
		task, err := taskStore.CompleteTask(params.Arguments.ID)
		if err != nil {
			return storeErrorResult[types.TaskResponse](err)
		}
		logInfo(fmt.Sprintf("Completed task: %s", task.ID))
		return textResult(fmt.Sprintf("Completed task '%s'", task.Title), taskToResponse(task))
	}
}

// reopenTaskHandler marks a task open again
func reopenTaskHandler(taskStore store.TaskStore) mcpsdk.ToolHandlerFor[types.ReopenTaskParams, types.TaskResponse] {
	return func(ctx context.Context, ss *mcpsdk.ServerSession, params *mcpsdk.CallToolParamsFor[types.ReopenTaskParams]) (*mcpsdk.CallToolResultFor[types.TaskResponse], error) {
		if strings.TrimSpace(params.Arguments.ID) == "" {
			return storeErrorResult[types.TaskResponse](types.NewValidationError("id", "task id is required"))
		}
		task, err := taskStore.ReopenTask(params.Arguments.ID)
		if err != nil {
			return storeErrorResult[types.TaskResponse](err)
		}
		logInfo(fmt.Sprintf("Reopened task: %s", task.ID))
		return textResult(fmt.Sprintf("Reopened task '%s'", task.Title), taskToResponse(task))
	}
}

// deleteTaskHandler removes a task
func deleteTaskHandler(taskStore store.TaskStore) mcpsdk.ToolHandlerFor[types.DeleteTaskParams, types.DeleteResponse] {
	return func(ctx context.Context, ss *mcpsdk.ServerSession, params *mcpsdk.CallToolParamsFor[types.DeleteTaskParams]) (*mcpsdk.CallToolResultFor[types.DeleteResponse], error) {
		id := strings.TrimSpace(params.Arguments.ID)
		if id == "" {
			return storeErrorResult[types.DeleteResponse](types.NewValidationError("id", "task id is required"))
		}
		if err := taskStore.DeleteTask(id); err != nil {
			return storeErrorResult[types.DeleteResponse](err)
		}
		logInfo(fmt.Sprintf("Deleted task: %s", id))
		return textResult(fmt.Sprintf("Deleted task %s", id), types.DeleteResponse{ID: id, Deleted: true})
	}
}

func taskListResponse(tasks []models.Task) types.TaskListResponse {
	responses := make([]types.TaskResponse, len(tasks))
	for i, task := range tasks {
		responses[i] = taskToResponse(task)
	}
	return types.TaskListResponse{Tasks: responses, Count: len(responses)}
}

// RegisterTools registers every task tool on the server.
func RegisterTools(server *mcpsdk.Server, taskStore store.TaskStore) {
	mcpsdk.AddTool(server, &mcpsdk.Tool{
		Name:        "add-task",
		Description: "Create a new task with title, description, design notes, category, type, meta, and relations",
	}, addTaskHandler(taskStore))

	mcpsdk.AddTool(server, &mcpsdk.Tool{
		Name:        "list-tasks",
		Description: "List all tasks in stored order",
	}, listTasksHandler(taskStore))

	mcpsdk.AddTool(server, &mcpsdk.Tool{
		Name:        "select-tasks",
		Description: "List tasks matching criteria: status, category, type, title/description substring",
	}, selectTasksHandler(taskStore))

	mcpsdk.AddTool(server, &mcpsdk.Tool{
		Name:        "get-task",
		Description: "Retrieve a single task by ID",
	}, getTaskHandler(taskStore))

	mcpsdk.AddTool(server, &mcpsdk.Tool{
		Name:        "update-task",
		Description: "Patch fields of an existing task. The task ID is immutable; status changes via complete-task/reopen-task",
	}, updateTaskHandler(taskStore))

	mcpsdk.AddTool(server, &mcpsdk.Tool{
		Name:        "complete-task",
		Description: "Mark a task closed. Completing an already-closed task is a no-op success",
	}, completeTaskHandler(taskStore))

	mcpsdk.AddTool(server, &mcpsdk.Tool{
		Name:        "reopen-task",
		Description: "Mark a closed task open again. Reopening an open task is a no-op success",
	}, reopenTaskHandler(taskStore))

	mcpsdk.AddTool(server, &mcpsdk.Tool{
		Name:        "delete-task",
		Description: "Delete a task by ID",
	}, deleteTaskHandler(taskStore))
}
