package obsidian

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/entrhq/obsidian-mcp/pkg/tools"
	"github.com/entrhq/obsidian-mcp/pkg/vault"
)

// BatchGetFileContentsTool returns the contents of several files at once,
// concatenated with per-file headers.
type BatchGetFileContentsTool struct {
	client *vault.Client
}

// NewBatchGetFileContentsTool creates a new batch-get-file-contents tool.
func NewBatchGetFileContentsTool(client *vault.Client) *BatchGetFileContentsTool {
	return &BatchGetFileContentsTool{client: client}
}

// Name returns the tool's identifier.
func (t *BatchGetFileContentsTool) Name() string {
	return "obsidian_batch_get_file_contents"
}

// Description returns a description of what this tool does.
func (t *BatchGetFileContentsTool) Description() string {
	return "Return the contents of multiple files in your vault, concatenated with headers."
}

// Schema returns the JSON schema for the tool's arguments.
func (t *BatchGetFileContentsTool) Schema() map[string]interface{} {
	return tools.BaseToolSchema(
		map[string]interface{}{
			"filepaths": map[string]interface{}{
				"type":        "array",
				"description": "List of file paths to read, relative to the vault root",
				"items": map[string]interface{}{
					"type": "string",
				},
			},
		},
		[]string{"filepaths"},
	)
}

// Execute reads every requested file; unreadable files are reported inline
// rather than failing the batch.
func (t *BatchGetFileContentsTool) Execute(ctx context.Context, args json.RawMessage) (string, map[string]interface{}, error) {
	var input struct {
		Filepaths []string `json:"filepaths"`
	}
	if err := tools.DecodeArgs(args, &input); err != nil {
		return "", nil, fmt.Errorf("invalid arguments: %w", err)
	}
	if len(input.Filepaths) == 0 {
		return "", nil, fmt.Errorf("missing required parameter: filepaths")
	}

	content, err := t.client.BatchFileContents(ctx, input.Filepaths)
	if err != nil {
		return "", nil, err
	}
	return content, map[string]interface{}{"file_count": len(input.Filepaths)}, nil
}
