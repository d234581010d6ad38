package obsidian

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/entrhq/obsidian-mcp/pkg/tools"
	"github.com/entrhq/obsidian-mcp/pkg/vault"
)

// PutContentTool creates a vault file or replaces an existing one.
type PutContentTool struct {
	client *vault.Client
}

// NewPutContentTool creates a new put-content tool.
func NewPutContentTool(client *vault.Client) *PutContentTool {
	return &PutContentTool{client: client}
}

// Name returns the tool's identifier.
func (t *PutContentTool) Name() string {
	return "obsidian_put_content"
}

// Description returns a description of what this tool does.
func (t *PutContentTool) Description() string {
	return "Create a new file in your vault or update the content of an existing one in your vault."
}

// Schema returns the JSON schema for the tool's arguments.
func (t *PutContentTool) Schema() map[string]interface{} {
	return tools.BaseToolSchema(
		map[string]interface{}{
			"filepath": map[string]interface{}{
				"type":        "string",
				"description": "File path relative to the vault root",
			},
			"content": map[string]interface{}{
				"type":        "string",
				"description": "The content to write",
			},
		},
		[]string{"filepath", "content"},
	)
}

// Execute writes the file.
func (t *PutContentTool) Execute(ctx context.Context, args json.RawMessage) (string, map[string]interface{}, error) {
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

	if err := t.client.PutContent(ctx, input.Filepath, input.Content); err != nil {
		return "", nil, err
	}
	return fmt.Sprintf("Successfully wrote %s", input.Filepath),
		map[string]interface{}{"filepath": input.Filepath, "size": len(input.Content)}, nil
}
