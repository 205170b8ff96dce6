package models

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// TaskStatus represents the lifecycle state of a task.
type TaskStatus string

const (
	StatusOpen   TaskStatus = "open"
	StatusClosed TaskStatus = "closed"
)

// TaskType tags the kind of a task. It governs how callers interpret
// relations; the store treats all types the same way.
type TaskType string

const (
	TypeTask  TaskType = "task"
	TypeStory TaskType = "story"
)

// Relation links a task to another task by id. The store does not enforce
// referential integrity: the target id may name a task that is not present
// in the current collection.
type Relation struct {
	Type string `json:"type" validate:"required"`
	ID   string `json:"id" validate:"required"`
}

// Task is the unit of work tracked by the store.
type Task struct {
	ID          string         `json:"id" validate:"required,uuid4"`
	Title       string         `json:"title" validate:"required"`
	Description string         `json:"description,omitempty"`
	Design      string         `json:"design,omitempty"`
	Category    string         `json:"category,omitempty"` // workflow category, e.g. "simple", "medium", "large"
	Type        TaskType       `json:"type" validate:"required,oneof=task story"`
	Status      TaskStatus     `json:"status" validate:"required,oneof=open closed"`
	Meta        map[string]any `json:"meta,omitempty"`
	Relations   []Relation     `json:"relations,omitempty" validate:"dive"`
}

// global validator instance
var validate *validator.Validate

func init() {
	validate = validator.New()
}

// ValidateStruct performs validation on any struct that has validation tags.
func ValidateStruct(s interface{}) error {
	err := validate.Struct(s)
	if err != nil {
		validationErrors := err.(validator.ValidationErrors)
		var errorMessages []string
		for _, e := range validationErrors {
			errorMessages = append(errorMessages, fmt.Sprintf("validation failed on field '%s': rule '%s' (value: '%v')", e.StructNamespace(), e.Tag(), e.Value()))
		}
		return fmt.Errorf("%s", strings.Join(errorMessages, "; "))
	}
	return nil
}
