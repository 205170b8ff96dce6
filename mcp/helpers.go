package mcp

// Shared helpers for MCP tools (response conversion, error mapping, logging)

import (
	"fmt"
	"os"

	"github.com/hugoduncan/mcp-tasks/models"
	"github.com/hugoduncan/mcp-tasks/types"
	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/viper"
)

// taskToResponse converts a model task to its tool response shape.
func taskToResponse(task models.Task) types.TaskResponse {
	return types.TaskResponse{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Design:      task.Design,
		Category:    task.Category,
		Type:        string(task.Type),
		Status:      string(task.Status),
		Meta:        task.Meta,
		Relations:   relationsToParams(task.Relations),
	}
}

func relationsToParams(relations []models.Relation) []types.RelationParam {
	if len(relations) == 0 {
		return nil
	}
	params := make([]types.RelationParam, len(relations))
	for i, r := range relations {
		params[i] = types.RelationParam{Type: r.Type, ID: r.ID}
	}
	return params
}

func paramsToRelations(params []types.RelationParam) []models.Relation {
	if len(params) == 0 {
		return nil
	}
	relations := make([]models.Relation, len(params))
	for i, p := range params {
		relations[i] = models.Relation{Type: p.Type, ID: p.ID}
	}
	return relations
}

// textResult wraps a success message and structured payload in a tool result.
func textResult[Out any](text string, out Out) (*mcpsdk.CallToolResultFor[Out], error) {
	return &mcpsdk.CallToolResultFor[Out]{
		Content:           []mcpsdk.Content{&mcpsdk.TextContent{Text: text}},
		StructuredContent: out,
	}, nil
}

// storeErrorResult maps a store error to a tool result. Expected failures
// (lock timeout, validation, not-found) become IsError results so the client
// model can see them and self-correct; faults propagate as protocol errors.
func storeErrorResult[Out any](err error) (*mcpsdk.CallToolResultFor[Out], error) {
	if !types.IsExpected(err) {
		return nil, err
	}
	return &mcpsdk.CallToolResultFor[Out]{
		Content: []mcpsdk.Content{&mcpsdk.TextContent{Text: err.Error()}},
		IsError: true,
	}, nil
}

// logInfo writes a diagnostic line to stderr when verbose is enabled.
// stdout is reserved for JSON-RPC while the MCP server runs.
func logInfo(msg string) {
	if viper.GetBool("verbose") {
		fmt.Fprintf(os.Stderr, "[INFO] %s\n", msg)
	}
}
