package prompts

import (
	"os"
	"path/filepath"
	"testing"
)

func TestGetPromptDefaults(t *testing.T) {
	for _, name := range Names("") {
		content, err := GetPrompt(name, "")
		if err != nil {
			t.Errorf("GetPrompt(%q) failed: %v", name, err)
			continue
		}
		if content == "" {
			t.Errorf("GetPrompt(%q) returned empty default", name)
		}
	}
}

func TestGetPromptUnknownName(t *testing.T) {
	if _, err := GetPrompt("nonexistent", ""); err == nil {
		t.Error("expected an error for an unrecognized prompt name")
	}
}

func TestGetPromptCustomOverride(t *testing.T) {
	dir := t.TempDir()
	custom := "my team's simple workflow\n"
	if err := os.WriteFile(filepath.Join(dir, "simple.md"), []byte(custom), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	content, err := GetPrompt("simple", dir)
	if err != nil {
		t.Fatalf("GetPrompt failed: %v", err)
	}
	if content != custom {
		t.Errorf("got %q, want the custom override", content)
	}

	// Prompts without an override file fall back to the default.
	fallback, err := GetPrompt("medium", dir)
	if err != nil {
		t.Fatalf("GetPrompt failed: %v", err)
	}
	if fallback != MediumCategoryPrompt {
		t.Error("missing override file must fall back to the default content")
	}
}

func TestNamesByKind(t *testing.T) {
	categories := Names(KindCategory)
	if len(categories) != 3 {
		t.Errorf("got %d category prompts, want 3", len(categories))
	}
	workflows := Names(KindWorkflow)
	if len(workflows) != 2 {
		t.Errorf("got %d workflow prompts, want 2", len(workflows))
	}
	if len(Names("")) != len(categories)+len(workflows) {
		t.Error("Names(\"\") must return all prompts")
	}
}
