package store

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/hugoduncan/mcp-tasks/models"
)

// Record codec: one task per line in the task file, encoded as a single
// self-describing JSON object. encoding/json writes struct fields in
// declaration order and map keys sorted, so the encoding is canonical and a
// decoded line re-encodes to the same bytes.

// EncodeLine serializes a task to one line, without the trailing newline.
func EncodeLine(task models.Task) ([]byte, error) {
	data, err := json.Marshal(task)
	if err != nil {
		return nil, fmt.Errorf("failed to encode task %s: %w", task.ID, err)
	}
	return data, nil
}

// DecodeLine parses a single record line back into a task. A malformed line
// is a decode error; the caller treats it as fatal for the whole load.
// Unknown keys are rejected: accepting them would silently drop the extra
// data on the next save, breaking the round-trip guarantee above.
func DecodeLine(line []byte) (models.Task, error) {
	dec := json.NewDecoder(bytes.NewReader(line))
	dec.DisallowUnknownFields()
	var task models.Task
	if err := dec.Decode(&task); err != nil {
		return models.Task{}, fmt.Errorf("malformed task record: %w", err)
	}
	if task.ID == "" {
		return models.Task{}, fmt.Errorf("malformed task record: missing id")
	}
	return task, nil
}
