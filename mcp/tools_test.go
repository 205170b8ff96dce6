package mcp

import (
	"context"
	"strings"
	"testing"

	"github.com/hugoduncan/mcp-tasks/store"
	"github.com/hugoduncan/mcp-tasks/types"
	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
)

func setupTestStore(t *testing.T) store.TaskStore {
	t.Helper()
	return store.NewFileTaskStore(store.Config{BaseDir: t.TempDir()})
}

func TestAddTaskHandler(t *testing.T) {
	taskStore := setupTestStore(t)
	handler := addTaskHandler(taskStore)

	result, err := handler(context.Background(), nil, &mcpsdk.CallToolParamsFor[types.AddTaskParams]{
		Arguments: types.AddTaskParams{Title: "Handler task", Category: "simple"},
	})
	if err != nil {
		t.Fatalf("handler failed: %v", err)
	}
	if result.IsError {
		t.Fatalf("unexpected error result: %+v", result.Content)
	}
	if result.StructuredContent.ID == "" {
		t.Error("response missing task id")
	}
	if result.StructuredContent.Status != "open" {
		t.Errorf("response status = %q, want open", result.StructuredContent.Status)
	}

	tasks, err := taskStore.ListTasks()
	if err != nil {
		t.Fatalf("ListTasks failed: %v", err)
	}
	if len(tasks) != 1 || tasks[0].Title != "Handler task" {
		t.Errorf("stored tasks wrong: %+v", tasks)
	}
}

func TestAddTaskHandlerEmptyTitle(t *testing.T) {
	handler := addTaskHandler(setupTestStore(t))

	result, err := handler(context.Background(), nil, &mcpsdk.CallToolParamsFor[types.AddTaskParams]{
		Arguments: types.AddTaskParams{Title: " "},
	})
	if err != nil {
		t.Fatalf("expected error result, not transport error: %v", err)
	}
	if !result.IsError {
		t.Fatal("validation failure must produce an error result")
	}
}

func TestGetTaskHandlerNotFound(t *testing.T) {
	handler := getTaskHandler(setupTestStore(t))

	result, err := handler(context.Background(), nil, &mcpsdk.CallToolParamsFor[types.GetTaskParams]{
		Arguments: types.GetTaskParams{ID: "f47ac10b-58cc-4372-a567-0e02b2c3d479"},
	})
	if err != nil {
		t.Fatalf("expected error result, not transport error: %v", err)
	}
	if !result.IsError {
		t.Fatal("not-found must produce an error result")
	}
	text, ok := result.Content[0].(*mcpsdk.TextContent)
	if !ok {
		t.Fatalf("content[0] is %T, want *TextContent", result.Content[0])
	}
	if !strings.Contains(text.Text, types.CodeNotFound) {
		t.Errorf("error text %q does not carry the NOT_FOUND code", text.Text)
	}
}

func TestUpdateTaskHandler(t *testing.T) {
	taskStore := setupTestStore(t)
	created, err := taskStore.CreateTask(store.NewTaskFields{Title: "Before"})
	if err != nil {
		t.Fatalf("CreateTask failed: %v", err)
	}
	handler := updateTaskHandler(taskStore)

	desc := "fresh description"
	result, err := handler(context.Background(), nil, &mcpsdk.CallToolParamsFor[types.UpdateTaskParams]{
		Arguments: types.UpdateTaskParams{ID: created.ID, Title: "After", Description: &desc},
	})
	if err != nil {
		t.Fatalf("handler failed: %v", err)
	}
	if result.IsError {
		t.Fatalf("unexpected error result: %+v", result.Content)
	}
	if result.StructuredContent.Title != "After" || result.StructuredContent.Description != desc {
		t.Errorf("patch not reflected in response: %+v", result.StructuredContent)
	}
}

func TestUpdateTaskHandlerNoFields(t *testing.T) {
	taskStore := setupTestStore(t)
	created, err := taskStore.CreateTask(store.NewTaskFields{Title: "Untouched"})
	if err != nil {
		t.Fatalf("CreateTask failed: %v", err)
	}
	handler := updateTaskHandler(taskStore)

	result, err := handler(context.Background(), nil, &mcpsdk.CallToolParamsFor[types.UpdateTaskParams]{
		Arguments: types.UpdateTaskParams{ID: created.ID},
	})
	if err != nil {
		t.Fatalf("expected error result, not transport error: %v", err)
	}
	if !result.IsError {
		t.Fatal("empty patch must produce an error result")
	}
}

func TestSelectTasksHandlerInvalidStatus(t *testing.T) {
	handler := selectTasksHandler(setupTestStore(t))

	result, err := handler(context.Background(), nil, &mcpsdk.CallToolParamsFor[types.SelectTasksParams]{
		Arguments: types.SelectTasksParams{Status: "archived"},
	})
	if err != nil {
		t.Fatalf("expected error result, not transport error: %v", err)
	}
	if !result.IsError {
		t.Fatal("invalid status must produce an error result")
	}
}

func TestCompleteThenReopenHandlers(t *testing.T) {
	taskStore := setupTestStore(t)
	created, err := taskStore.CreateTask(store.NewTaskFields{Title: "Lifecycle"})
	if err != nil {
		t.Fatalf("CreateTask failed: %v", err)
	}

	complete := completeTaskHandler(taskStore)
	result, err := complete(context.Background(), nil, &mcpsdk.CallToolParamsFor[types.CompleteTaskParams]{
		Arguments: types.CompleteTaskParams{ID: created.ID},
	})
	if err != nil || result.IsError {
		t.Fatalf("complete failed: err=%v result=%+v", err, result)
	}
	if result.StructuredContent.Status != "closed" {
		t.Errorf("status after complete = %q, want closed", result.StructuredContent.Status)
	}

	reopen := reopenTaskHandler(taskStore)
	result2, err := reopen(context.Background(), nil, &mcpsdk.CallToolParamsFor[types.ReopenTaskParams]{
		Arguments: types.ReopenTaskParams{ID: created.ID},
	})
	if err != nil || result2.IsError {
		t.Fatalf("reopen failed: err=%v result=%+v", err, result2)
	}
	if result2.StructuredContent.Status != "open" {
		t.Errorf("status after reopen = %q, want open", result2.StructuredContent.Status)
	}
}

func TestDeleteTaskHandler(t *testing.T) {
	taskStore := setupTestStore(t)
	created, err := taskStore.CreateTask(store.NewTaskFields{Title: "Doomed"})
	if err != nil {
		t.Fatalf("CreateTask failed: %v", err)
	}
	handler := deleteTaskHandler(taskStore)

	result, err := handler(context.Background(), nil, &mcpsdk.CallToolParamsFor[types.DeleteTaskParams]{
		Arguments: types.DeleteTaskParams{ID: created.ID},
	})
	if err != nil || result.IsError {
		t.Fatalf("delete failed: err=%v result=%+v", err, result)
	}
	if !result.StructuredContent.Deleted {
		t.Error("response must report the task as deleted")
	}

	// A second delete reports not-found as an error result.
	result2, err := handler(context.Background(), nil, &mcpsdk.CallToolParamsFor[types.DeleteTaskParams]{
		Arguments: types.DeleteTaskParams{ID: created.ID},
	})
	if err != nil {
		t.Fatalf("expected error result, not transport error: %v", err)
	}
	if !result2.IsError {
		t.Fatal("deleting a missing task must produce an error result")
	}
}
