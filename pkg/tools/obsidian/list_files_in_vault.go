package obsidian

import (
	"context"
	"encoding/json"

	"github.com/entrhq/obsidian-mcp/pkg/tools"
	"github.com/entrhq/obsidian-mcp/pkg/vault"
)

// ListFilesInVaultTool lists the files and directories at the vault root.
type ListFilesInVaultTool struct {
	client *vault.Client
}

// NewListFilesInVaultTool creates a new list-files-in-vault tool.
func NewListFilesInVaultTool(client *vault.Client) *ListFilesInVaultTool {
	return &ListFilesInVaultTool{client: client}
}

// Name returns the tool's identifier.
func (t *ListFilesInVaultTool) Name() string {
	return "obsidian_list_files_in_vault"
}

// Description returns a description of what this tool does.
func (t *ListFilesInVaultTool) Description() string {
	return "Lists all files and directories in the root directory of your Obsidian vault."
}

// Schema returns the JSON schema for the tool's arguments.
func (t *ListFilesInVaultTool) Schema() map[string]interface{} {
	return tools.BaseToolSchema(map[string]interface{}{}, nil)
}

// Execute lists the vault root.
func (t *ListFilesInVaultTool) Execute(ctx context.Context, args json.RawMessage) (string, map[string]interface{}, error) {
	files, err := t.client.ListFilesInVault(ctx)
	if err != nil {
		return "", nil, err
	}
	result, err := marshalResult(files)
	if err != nil {
		return "", nil, err
	}
	return result, map[string]interface{}{"file_count": len(files)}, nil
}
