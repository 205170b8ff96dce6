package types

// MCP tool parameter and response types.

// RelationParam names a relation to another task.
type RelationParam struct {
	Type string `json:"type" mcp:"Relation kind, e.g. blocked-by, parent, related"`
	ID   string `json:"id" mcp:"Target task ID"`
}

// AddTaskParams for creating a new task
type AddTaskParams struct {
	Title       string          `json:"title" mcp:"Task title (required)"`
	Description string          `json:"description,omitempty" mcp:"Task description"`
	Design      string          `json:"design,omitempty" mcp:"Design notes attached to the task"`
	Category    string          `json:"category,omitempty" mcp:"Workflow category: simple, medium, large"`
	Type        string          `json:"type,omitempty" mcp:"Task type: task or story (default task)"`
	Meta        map[string]any  `json:"meta,omitempty" mcp:"Caller-defined annotations"`
	Relations   []RelationParam `json:"relations,omitempty" mcp:"Relations to other tasks"`
}

// ListTasksParams for listing tasks (no filtering)
type ListTasksParams struct{}

// SelectTasksParams for filtering tasks
type SelectTasksParams struct {
	Status   string `json:"status,omitempty" mcp:"Filter by status: open, closed"`
	Category string `json:"category,omitempty" mcp:"Filter by workflow category"`
	Type     string `json:"type,omitempty" mcp:"Filter by type: task, story"`
	Search   string `json:"search,omitempty" mcp:"Substring match on title and description"`
}

// GetTaskParams for retrieving a specific task
type GetTaskParams struct {
	ID string `json:"id" mcp:"Task ID to retrieve (required)"`
}

// UpdateTaskParams for updating an existing task
type UpdateTaskParams struct {
	ID          string          `json:"id" mcp:"Task ID to update (required)"`
	Title       string          `json:"title,omitempty" mcp:"New task title"`
	Description *string         `json:"description,omitempty" mcp:"New task description"`
	Design      *string         `json:"design,omitempty" mcp:"New design notes"`
	Category    string          `json:"category,omitempty" mcp:"New workflow category"`
	Type        string          `json:"type,omitempty" mcp:"New task type"`
	Meta        map[string]any  `json:"meta,omitempty" mcp:"Replacement meta mapping"`
	Relations   []RelationParam `json:"relations,omitempty" mcp:"Replacement relations list"`
}

// CompleteTaskParams for marking a task closed
type CompleteTaskParams struct {
	ID string `json:"id" mcp:"Task ID to complete (required)"`
}

// ReopenTaskParams for marking a task open again
type ReopenTaskParams struct {
	ID string `json:"id" mcp:"Task ID to reopen (required)"`
}

// DeleteTaskParams for deleting a task
type DeleteTaskParams struct {
	ID string `json:"id" mcp:"Task ID to delete (required)"`
}

// TaskResponse is the structured task shape returned by tools.
type TaskResponse struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description,omitempty"`
	Design      string          `json:"design,omitempty"`
	Category    string          `json:"category,omitempty"`
	Type        string          `json:"type"`
	Status      string          `json:"status"`
	Meta        map[string]any  `json:"meta,omitempty"`
	Relations   []RelationParam `json:"relations,omitempty"`
}

// TaskListResponse wraps a list of tasks.
type TaskListResponse struct {
	Tasks []TaskResponse `json:"tasks"`
	Count int            `json:"count"`
}

// DeleteResponse confirms a deletion.
type DeleteResponse struct {
	ID      string `json:"id"`
	Deleted bool   `json:"deleted"`
}
