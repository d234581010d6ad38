package obsidian

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/entrhq/obsidian-mcp/pkg/tools"
	"github.com/entrhq/obsidian-mcp/pkg/vault"
)

// DeleteFileTool deletes a file or directory from the vault. Deletion
// requires an explicit confirm flag so an agent cannot delete by accident.
type DeleteFileTool struct {
	client *vault.Client
}

// NewDeleteFileTool creates a new delete-file tool.
func NewDeleteFileTool(client *vault.Client) *DeleteFileTool {
	return &DeleteFileTool{client: client}
}

// Name returns the tool's identifier.
func (t *DeleteFileTool) Name() string {
	return "obsidian_delete_file"
}

// Description returns a description of what this tool does.
func (t *DeleteFileTool) Description() string {
	return "Delete a file or directory from the vault."
}

// Schema returns the JSON schema for the tool's arguments.
func (t *DeleteFileTool) Schema() map[string]interface{} {
	return tools.BaseToolSchema(
		map[string]interface{}{
			"filepath": map[string]interface{}{
				"type":        "string",
				"description": "Path to the file to delete (relative to vault root)",
			},
			"confirm": map[string]interface{}{
				"type":        "boolean",
				"description": "Must be set to true to delete a file",
			},
		},
		[]string{"filepath"},
	)
}

// Execute deletes the file after checking the confirm flag.
func (t *DeleteFileTool) Execute(ctx context.Context, args json.RawMessage) (string, map[string]interface{}, error) {
	var input struct {
		Filepath string `json:"filepath"`
		Confirm  bool   `json:"confirm"`
	}
	if err := tools.DecodeArgs(args, &input); err != nil {
		return "", nil, fmt.Errorf("invalid arguments: %w", err)
	}
	if input.Filepath == "" {
		return "", nil, fmt.Errorf("missing required parameter: filepath")
	}
	if !input.Confirm {
		return "", nil, fmt.Errorf("confirm must be set to true to delete a file")
	}

	if err := t.client.DeleteFile(ctx, input.Filepath); err != nil {
		return "", nil, err
	}
	return fmt.Sprintf("Successfully deleted %s", input.Filepath),
		map[string]interface{}{"filepath": input.Filepath}, nil
}
