package store

import (
	"bytes"
	"reflect"
	"testing"

	"github.com/hugoduncan/mcp-tasks/models"
)

func sampleTask() models.Task {
	return models.Task{
		ID:          "f47ac10b-58cc-4372-a567-0e02b2c3d479",
		Title:       "Write the codec",
		Description: "One record per line",
		Design:      "JSON object per line, canonical encoding",
		Category:    "simple",
		Type:        models.TypeTask,
		Status:      models.StatusOpen,
		Meta:        map[string]any{"estimate": 3.0, "reviewer": "ana"},
		Relations: []models.Relation{
			{Type: "blocked-by", ID: "9b2d7c1e-0f3a-4d2b-8c6e-5a1f0e9d8c7b"},
		},
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	original := sampleTask()

	line, err := EncodeLine(original)
	if err != nil {
		t.Fatalf("EncodeLine failed: %v", err)
	}

	decoded, err := DecodeLine(line)
	if err != nil {
		t.Fatalf("DecodeLine failed: %v", err)
	}

	if !reflect.DeepEqual(original, decoded) {
		t.Errorf("round-trip mismatch:\n got  %+v\n want %+v", decoded, original)
	}
}

func TestDecodeEncodeByteStable(t *testing.T) {
	// Any line the codec can decode must re-encode to the same bytes.
	line, err := EncodeLine(sampleTask())
	if err != nil {
		t.Fatalf("EncodeLine failed: %v", err)
	}

	decoded, err := DecodeLine(line)
	if err != nil {
		t.Fatalf("DecodeLine failed: %v", err)
	}

	reencoded, err := EncodeLine(decoded)
	if err != nil {
		t.Fatalf("EncodeLine (second pass) failed: %v", err)
	}

	if !bytes.Equal(line, reencoded) {
		t.Errorf("encoding not byte-stable:\n got  %s\n want %s", reencoded, line)
	}
}

func TestDecodeLineMalformed(t *testing.T) {
	cases := []struct {
		name string
		line string
	}{
		{"truncated json", `{"id":"abc","title":`},
		{"not json", `open | Task 1`},
		{"missing id", `{"title":"No id","type":"task","status":"open"}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := DecodeLine([]byte(tc.line)); err == nil {
				t.Errorf("expected decode error for %q", tc.line)
			}
		})
	}
}

func TestDecodeLineRejectsUnknownFields(t *testing.T) {
	// A record with an unrecognized key must fail to decode. Dropping the
	// key would lose its data on the next save.
	line := `{"id":"f47ac10b-58cc-4372-a567-0e02b2c3d479","title":"T","type":"task","status":"open","extra":"kept?"}`
	if _, err := DecodeLine([]byte(line)); err == nil {
		t.Errorf("expected decode error for unknown field, line: %s", line)
	}
}
