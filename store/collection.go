package store

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/hugoduncan/mcp-tasks/models"
	"github.com/hugoduncan/mcp-tasks/types"
)

// Collection is the in-memory task collection operated on inside a critical
// section. It is loaded fresh from disk at the start of every locked
// operation and discarded at the end; it is never shared across operations.
// Insertion order is preserved and is the order tasks persist in.
type Collection struct {
	tasks []models.Task
}

// NewCollection wraps loaded tasks in a collection.
func NewCollection(tasks []models.Task) *Collection {
	return &Collection{tasks: tasks}
}

// Tasks returns a copy of the collection in stored order.
func (c *Collection) Tasks() []models.Task {
	out := make([]models.Task, len(c.tasks))
	copy(out, c.tasks)
	return out
}

// NewTaskFields carries caller-supplied fields for a new task. The id and
// status are assigned by Add.
type NewTaskFields struct {
	Title       string
	Description string
	Design      string
	Category    string
	Type        models.TaskType
	Meta        map[string]any
	Relations   []models.Relation
}

// TaskFilter selects tasks by caller-supplied criteria. Zero-valued fields
// match everything.
type TaskFilter struct {
	Status   models.TaskStatus
	Category string
	Type     models.TaskType
	Search   string // substring match on title and description
}

// Add assigns a fresh id, sets status open, and appends the task. An empty
// title is a validation error and leaves the collection untouched.
func (c *Collection) Add(fields NewTaskFields) (models.Task, error) {
	title := strings.TrimSpace(fields.Title)
	if title == "" {
		return models.Task{}, types.NewValidationError("title", "task title is required")
	}

	taskType := fields.Type
	if taskType == "" {
		taskType = models.TypeTask
	}
	if taskType != models.TypeTask && taskType != models.TypeStory {
		return models.Task{}, types.NewValidationError("type",
			fmt.Sprintf("invalid task type %q: must be one of task, story", fields.Type))
	}

	task := models.Task{
		ID:          uuid.NewString(),
		Title:       title,
		Description: fields.Description,
		Design:      fields.Design,
		Category:    fields.Category,
		Type:        taskType,
		Status:      models.StatusOpen,
		Meta:        fields.Meta,
		Relations:   fields.Relations,
	}
	if err := models.ValidateStruct(task); err != nil {
		return models.Task{}, types.NewValidationError("task", err.Error())
	}

	c.tasks = append(c.tasks, task)
	return task, nil
}

// Get returns the task with the given id.
func (c *Collection) Get(id string) (models.Task, error) {
	i := c.indexOf(id)
	if i < 0 {
		return models.Task{}, types.NewNotFoundError(id)
	}
	return c.tasks[i], nil
}

// Select returns the tasks matching the filter, in stored order.
func (c *Collection) Select(filter TaskFilter) []models.Task {
	matched := []models.Task{}
	for _, task := range c.tasks {
		if filter.Status != "" && task.Status != filter.Status {
			continue
		}
		if filter.Category != "" && task.Category != filter.Category {
			continue
		}
		if filter.Type != "" && task.Type != filter.Type {
			continue
		}
		if filter.Search != "" {
			search := strings.ToLower(filter.Search)
			title := strings.ToLower(task.Title)
			description := strings.ToLower(task.Description)
			if !strings.Contains(title, search) && !strings.Contains(description, search) {
				continue
			}
		}
		matched = append(matched, task)
	}
	return matched
}

// Update applies a field-level patch to the task with the given id. The id is
// immutable and rejected if present in the patch; status changes go through
// Complete and Reopen, never through a patch. On any validation error the
// collection is left untouched.
func (c *Collection) Update(id string, updates map[string]any) (models.Task, error) {
	i := c.indexOf(id)
	if i < 0 {
		return models.Task{}, types.NewNotFoundError(id)
	}

	task := c.tasks[i]
	for key, value := range updates {
		switch key {
		case "id":
			return models.Task{}, types.NewValidationError("id", "task id is immutable and cannot be patched")
		case "status":
			return models.Task{}, types.NewValidationError("status", "status changes only via complete-task and reopen-task")
		case "title":
			s, err := stringPatch(key, value)
			if err != nil {
				return models.Task{}, err
			}
			if strings.TrimSpace(s) == "" {
				return models.Task{}, types.NewValidationError("title", "task title cannot be empty")
			}
			task.Title = strings.TrimSpace(s)
		case "description":
			s, err := stringPatch(key, value)
			if err != nil {
				return models.Task{}, err
			}
			task.Description = s
		case "design":
			s, err := stringPatch(key, value)
			if err != nil {
				return models.Task{}, err
			}
			task.Design = s
		case "category":
			s, err := stringPatch(key, value)
			if err != nil {
				return models.Task{}, err
			}
			task.Category = s
		case "type":
			s, err := stringPatch(key, value)
			if err != nil {
				return models.Task{}, err
			}
			if s != string(models.TypeTask) && s != string(models.TypeStory) {
				return models.Task{}, types.NewValidationError("type",
					fmt.Sprintf("invalid task type %q: must be one of task, story", s))
			}
			task.Type = models.TaskType(s)
		case "meta":
			m, ok := value.(map[string]any)
			if !ok && value != nil {
				return models.Task{}, types.NewValidationError("meta", "meta must be a mapping of string keys to values")
			}
			task.Meta = m
		case "relations":
			r, err := relationsPatch(value)
			if err != nil {
				return models.Task{}, err
			}
			task.Relations = r
		default:
			return models.Task{}, types.NewValidationError(key, fmt.Sprintf("unknown patch field %q", key))
		}
	}

	if err := models.ValidateStruct(task); err != nil {
		return models.Task{}, types.NewValidationError("task", err.Error())
	}

	c.tasks[i] = task
	return task, nil
}

// Complete sets status closed. Completing an already-closed task is a no-op
// success.
func (c *Collection) Complete(id string) (models.Task, error) {
	return c.setStatus(id, models.StatusClosed)
}

// Reopen sets status open. Reopening an already-open task is a no-op success.
func (c *Collection) Reopen(id string) (models.Task, error) {
	return c.setStatus(id, models.StatusOpen)
}

// Delete removes the task with the given id.
func (c *Collection) Delete(id string) error {
	i := c.indexOf(id)
	if i < 0 {
		return types.NewNotFoundError(id)
	}
	c.tasks = append(c.tasks[:i], c.tasks[i+1:]...)
	return nil
}

func (c *Collection) setStatus(id string, status models.TaskStatus) (models.Task, error) {
	i := c.indexOf(id)
	if i < 0 {
		return models.Task{}, types.NewNotFoundError(id)
	}
	c.tasks[i].Status = status
	return c.tasks[i], nil
}

func (c *Collection) indexOf(id string) int {
	for i, task := range c.tasks {
		if task.ID == id {
			return i
		}
	}
	return -1
}

func stringPatch(field string, value any) (string, error) {
	s, ok := value.(string)
	if !ok {
		return "", types.NewValidationError(field, fmt.Sprintf("%s must be a string", field))
	}
	return s, nil
}

func relationsPatch(value any) ([]models.Relation, error) {
	switch v := value.(type) {
	case nil:
		return nil, nil
	case []models.Relation:
		return v, nil
	case []any:
		relations := make([]models.Relation, 0, len(v))
		for _, item := range v {
			m, ok := item.(map[string]any)
			if !ok {
				return nil, types.NewValidationError("relations", "each relation must be an object with type and id")
			}
			relType, _ := m["type"].(string)
			relID, _ := m["id"].(string)
			if relType == "" || relID == "" {
				return nil, types.NewValidationError("relations", "each relation requires a type and an id")
			}
			relations = append(relations, models.Relation{Type: relType, ID: relID})
		}
		return relations, nil
	default:
		return nil, types.NewValidationError("relations", "relations must be a list of relation objects")
	}
}
