package obsidian

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/entrhq/obsidian-mcp/pkg/tools"
	"github.com/entrhq/obsidian-mcp/pkg/vault"
)

// GetFileContentsTool returns the content of a single vault file.
type GetFileContentsTool struct {
	client *vault.Client
}

// NewGetFileContentsTool creates a new get-file-contents tool.
func NewGetFileContentsTool(client *vault.Client) *GetFileContentsTool {
	return &GetFileContentsTool{client: client}
}

// Name returns the tool's identifier.
func (t *GetFileContentsTool) Name() string {
	return "obsidian_get_file_contents"
}

// Description returns a description of what this tool does.
func (t *GetFileContentsTool) Description() string {
	return "Return the content of a single file in your vault."
}

// Schema returns the JSON schema for the tool's arguments.
func (t *GetFileContentsTool) Schema() map[string]interface{} {
	return tools.BaseToolSchema(
		map[string]interface{}{
			"filepath": map[string]interface{}{
				"type":        "string",
				"description": "File path relative to the vault root",
			},
		},
		[]string{"filepath"},
	)
}

// Execute fetches the file.
func (t *GetFileContentsTool) Execute(ctx context.Context, args json.RawMessage) (string, map[string]interface{}, error) {
	var input struct {
		Filepath string `json:"filepath"`
	}
	if err := tools.DecodeArgs(args, &input); err != nil {
		return "", nil, fmt.Errorf("invalid arguments: %w", err)
	}
	if input.Filepath == "" {
		return "", nil, fmt.Errorf("missing required parameter: filepath")
	}

	content, err := t.client.GetFileContents(ctx, input.Filepath)
	if err != nil {
		return "", nil, err
	}
	return content, map[string]interface{}{"filepath": input.Filepath, "size": len(content)}, nil
}
