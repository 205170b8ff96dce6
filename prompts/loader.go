package prompts

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Kind distinguishes category prompts (selected by a task's workflow
// category) from workflow prompts (selected by name).
type Kind string

const (
	KindCategory Kind = "category"
	KindWorkflow Kind = "workflow"
)

// promptConfig defines the default content and override filename for a prompt.
type promptConfig struct {
	kind           Kind
	description    string
	defaultContent string
	filename       string
}

// promptRegistry maps a prompt name to its configuration.
var promptRegistry = map[string]promptConfig{
	"simple": {
		kind:           KindCategory,
		description:    "Workflow for simple, single-pass tasks",
		defaultContent: SimpleCategoryPrompt,
		filename:       "simple.md",
	},
	"medium": {
		kind:           KindCategory,
		description:    "Workflow for medium tasks worked in stages",
		defaultContent: MediumCategoryPrompt,
		filename:       "medium.md",
	},
	"large": {
		kind:           KindCategory,
		description:    "Workflow for large tasks broken into child tasks",
		defaultContent: LargeCategoryPrompt,
		filename:       "large.md",
	},
	"refine-task": {
		kind:           KindWorkflow,
		description:    "Rewrite a rough task into an actionable one",
		defaultContent: RefineTaskPrompt,
		filename:       "refine-task.md",
	},
	"review-task": {
		kind:           KindWorkflow,
		description:    "Review a completed task before accepting it",
		defaultContent: ReviewTaskPrompt,
		filename:       "review-task.md",
	},
}

// Names returns the registered prompt names of the given kind, or all names
// when kind is empty. Order is fixed.
func Names(kind Kind) []string {
	ordered := []string{"simple", "medium", "large", "refine-task", "review-task"}
	if kind == "" {
		return ordered
	}
	var names []string
	for _, name := range ordered {
		if promptRegistry[name].kind == kind {
			names = append(names, name)
		}
	}
	return names
}

// Description returns the one-line description for a registered prompt name.
func Description(name string) string {
	return promptRegistry[name].description
}

// GetPrompt resolves a prompt by name. A user-provided <name>.md in
// templatesDir takes precedence over the built-in default; an empty
// templatesDir always yields the default.
func GetPrompt(name, templatesDir string) (string, error) {
	config, ok := promptRegistry[name]
	if !ok {
		return "", fmt.Errorf("unrecognized prompt name: %s", name)
	}

	if strings.TrimSpace(templatesDir) == "" {
		return config.defaultContent, nil
	}

	customPromptPath := filepath.Join(templatesDir, config.filename)
	content, err := os.ReadFile(customPromptPath)
	if err == nil {
		return string(content), nil
	}
	if !os.IsNotExist(err) {
		return "", fmt.Errorf("failed to read custom prompt file at %s: %w", customPromptPath, err)
	}
	return config.defaultContent, nil
}
