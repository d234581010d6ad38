package obsidian

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/entrhq/obsidian-mcp/pkg/tools"
	"github.com/entrhq/obsidian-mcp/pkg/vault"
)

// AppendContentTool appends content to a new or existing vault file.
type AppendContentTool struct {
	client *vault.Client
}

// NewAppendContentTool creates a new append-content tool.
func NewAppendContentTool(client *vault.Client) *AppendContentTool {
	return &AppendContentTool{client: client}
}

// Name returns the tool's identifier.
func (t *AppendContentTool) Name() string {
	return "obsidian_append_content"
}

// Description returns a description of what this tool does.
func (t *AppendContentTool) Description() string {
	return "Append content to a new or existing file in the vault."
}

// Schema returns the JSON schema for the tool's arguments.
func (t *AppendContentTool) Schema() map[string]interface{} {
	return tools.BaseToolSchema(
		map[string]interface{}{
			"filepath": map[string]interface{}{
				"type":        "string",
				"description": "File path relative to the vault root",
			},
			"content": map[string]interface{}{
				"type":        "string",
				"description": "The content to append",
			},
		},
		[]string{"filepath", "content"},
	)
}

// Execute appends the content.
func (t *AppendContentTool) Execute(ctx context.Context, args json.RawMessage) (string, map[string]interface{}, error) {
	var input struct {
		Filepath string `json:"filepath"`
		Content  string `json:"content"`
	}
	if err := tools.DecodeArgs(args, &input); err != nil {
		return "", nil, fmt.Errorf("invalid arguments: %w", err)
	}
	if input.Filepath == "" {
		return "", nil, fmt.Errorf("missing required parameter: filepath")
	}

	if err := t.client.AppendContent(ctx, input.Filepath, input.Content); err != nil {
		return "", nil, err
	}
	return fmt.Sprintf("Successfully appended content to %s", input.Filepath),
		map[string]interface{}{"filepath": input.Filepath}, nil
}
