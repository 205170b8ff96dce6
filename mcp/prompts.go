package mcp

import (
	"context"
	"fmt"

	"github.com/hugoduncan/mcp-tasks/prompts"
	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
)

// promptHandler resolves a registered prompt through the prompts loader, so
// user overrides in templatesDir win over the built-in defaults.
func promptHandler(name, templatesDir string) func(context.Context, *mcpsdk.ServerSession, *mcpsdk.GetPromptParams) (*mcpsdk.GetPromptResult, error) {
	return func(ctx context.Context, ss *mcpsdk.ServerSession, params *mcpsdk.GetPromptParams) (*mcpsdk.GetPromptResult, error) {
		content, err := prompts.GetPrompt(name, templatesDir)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve prompt %s: %w", name, err)
		}
		logInfo(fmt.Sprintf("Resolved prompt: %s", name))
		return &mcpsdk.GetPromptResult{
			Description: prompts.Description(name),
			Messages: []*mcpsdk.PromptMessage{
				{
					Role:    "user",
					Content: &mcpsdk.TextContent{Text: content},
				},
			},
		}, nil
	}
}

// RegisterPrompts registers the category and workflow prompts on the server.
func RegisterPrompts(server *mcpsdk.Server, templatesDir string) {
	for _, name := range prompts.Names("") {
		server.AddPrompt(&mcpsdk.Prompt{
			Name:        name,
			Description: prompts.Description(name),
		}, promptHandler(name, templatesDir))
	}
}
