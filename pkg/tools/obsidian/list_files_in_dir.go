package obsidian

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/entrhq/obsidian-mcp/pkg/tools"
	"github.com/entrhq/obsidian-mcp/pkg/vault"
)

// ListFilesInDirTool lists the files and directories under one vault
// directory.
type ListFilesInDirTool struct {
	client *vault.Client
}

// NewListFilesInDirTool creates a new list-files-in-dir tool.
func NewListFilesInDirTool(client *vault.Client) *ListFilesInDirTool {
	return &ListFilesInDirTool{client: client}
}

// Name returns the tool's identifier.
func (t *ListFilesInDirTool) Name() string {
	return "obsidian_list_files_in_dir"
}

// Description returns a description of what this tool does.
func (t *ListFilesInDirTool) Description() string {
	return "Lists all files and directories that exist in a specific Obsidian directory."
}

// Schema returns the JSON schema for the tool's arguments.
func (t *ListFilesInDirTool) Schema() map[string]interface{} {
	return tools.BaseToolSchema(
		map[string]interface{}{
			"dirpath": map[string]interface{}{
				"type":        "string",
				"description": "Directory path relative to the vault root",
			},
		},
		[]string{"dirpath"},
	)
}

// Execute lists the requested directory.
func (t *ListFilesInDirTool) Execute(ctx context.Context, args json.RawMessage) (string, map[string]interface{}, error) {
	var input struct {
		Dirpath string `json:"dirpath"`
	}
	if err := tools.DecodeArgs(args, &input); err != nil {
		return "", nil, fmt.Errorf("invalid arguments: %w", err)
	}
	if input.Dirpath == "" {
		return "", nil, fmt.Errorf("missing required parameter: dirpath")
	}

	files, err := t.client.ListFilesInDir(ctx, input.Dirpath)
	if err != nil {
		return "", nil, err
	}
	result, err := marshalResult(files)
	if err != nil {
		return "", nil, err
	}
	return result, map[string]interface{}{"dirpath": input.Dirpath, "file_count": len(files)}, nil
}
