// Package obsidian provides the vault tool set: file listing and reading,
// content modification, full-text and complex search, and periodic notes.
// Every tool is a thin adapter from JSON arguments onto the vault REST
// client; the complex search tool additionally runs the query evaluator
// over the whole vault.
package obsidian

import (
	"encoding/json"
	"fmt"

	"github.com/entrhq/obsidian-mcp/pkg/search"
	"github.com/entrhq/obsidian-mcp/pkg/tools"
	"github.com/entrhq/obsidian-mcp/pkg/vault"
)

// RegisterTools creates the full vault tool set bound to the given client.
// searchOpts tunes the complex-search runner; logger may be nil.
func RegisterTools(client *vault.Client, searchOpts search.Options, logger search.Logger) []tools.Tool {
	return []tools.Tool{
		NewListFilesInVaultTool(client),
		NewListFilesInDirTool(client),
		NewGetFileContentsTool(client),
		NewBatchGetFileContentsTool(client),
		NewSimpleSearchTool(client),
		NewComplexSearchTool(client, searchOpts, logger),
		NewAppendContentTool(client),
		NewPatchContentTool(client),
		NewPutContentTool(client),
		NewDeleteFileTool(client),
		NewGetPeriodicNoteTool(client),
		NewGetRecentPeriodicNotesTool(client),
		NewGetRecentChangesTool(client),
	}
}

// marshalResult renders a tool result as indented JSON.
func marshalResult(v interface{}) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode result: %w", err)
	}
	return string(data), nil
}
