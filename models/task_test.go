package models

import (
	"strings"
	"testing"
)

func validTask() Task {
	return Task{
		ID:     "f47ac10b-58cc-4372-a567-0e02b2c3d479",
		Title:  "A valid task",
		Type:   TypeTask,
		Status: StatusOpen,
	}
}

func TestValidateStructValidTask(t *testing.T) {
	if err := ValidateStruct(validTask()); err != nil {
		t.Errorf("valid task failed validation: %v", err)
	}
}

func TestValidateStructRequiredFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Task)
		field  string
	}{
		{"missing id", func(task *Task) { task.ID = "" }, "ID"},
		{"non-uuid id", func(task *Task) { task.ID = "task-1" }, "ID"},
		{"missing title", func(task *Task) { task.Title = "" }, "Title"},
		{"unknown type", func(task *Task) { task.Type = "epic" }, "Type"},
		{"unknown status", func(task *Task) { task.Status = "paused" }, "Status"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task := validTask()
			tt.mutate(&task)
			err := ValidateStruct(task)
			if err == nil {
				t.Fatal("expected a validation error")
			}
			if !strings.Contains(err.Error(), tt.field) {
				t.Errorf("error %q does not name field %s", err, tt.field)
			}
		})
	}
}

func TestValidateStructRelations(t *testing.T) {
	task := validTask()
	task.Relations = []Relation{{Type: "blocked-by", ID: ""}}
	if err := ValidateStruct(task); err == nil {
		t.Error("expected validation error for relation with empty id")
	}

	task.Relations = []Relation{{Type: "blocked-by", ID: "9b2c1a40-0d2f-4f7a-9a1e-2b6d8c3e5f01"}}
	if err := ValidateStruct(task); err != nil {
		t.Errorf("valid relation failed validation: %v", err)
	}
}
