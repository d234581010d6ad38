package obsidian

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/entrhq/obsidian-mcp/pkg/tools"
	"github.com/entrhq/obsidian-mcp/pkg/vault"
)

var (
	validPatchOperations = []string{"append", "prepend", "replace"}
	validTargetTypes     = []string{"heading", "block", "frontmatter"}
)

// PatchContentTool inserts content into an existing note relative to a
// heading, block reference, or frontmatter field.
type PatchContentTool struct {
	client *vault.Client
}

// NewPatchContentTool creates a new patch-content tool.
func NewPatchContentTool(client *vault.Client) *PatchContentTool {
	return &PatchContentTool{client: client}
}

// Name returns the tool's identifier.
func (t *PatchContentTool) Name() string {
	return "obsidian_patch_content"
}

// Description returns a description of what this tool does.
func (t *PatchContentTool) Description() string {
	return "Insert content into an existing note relative to a heading, block reference, or frontmatter field."
}

// Schema returns the JSON schema for the tool's arguments.
func (t *PatchContentTool) Schema() map[string]interface{} {
	return tools.BaseToolSchema(
		map[string]interface{}{
			"filepath": map[string]interface{}{
				"type":        "string",
				"description": "File path relative to the vault root",
			},
			"operation": map[string]interface{}{
				"type":        "string",
				"description": "The patch operation to perform",
				"enum":        validPatchOperations,
			},
			"target_type": map[string]interface{}{
				"type":        "string",
				"description": "The type of the target to patch",
				"enum":        validTargetTypes,
			},
			"target": map[string]interface{}{
				"type":        "string",
				"description": "The target to patch",
			},
			"content": map[string]interface{}{
				"type":        "string",
				"description": "The content to insert",
			},
		},
		[]string{"filepath", "operation", "target_type", "target", "content"},
	)
}

// Execute patches the note.
func (t *PatchContentTool) Execute(ctx context.Context, args json.RawMessage) (string, map[string]interface{}, error) {
	var input struct {
		Filepath   string `json:"filepath"`
		Operation  string `json:"operation"`
		TargetType string `json:"target_type"`
		Target     string `json:"target"`
		Content    string `json:"content"`
	}
	if err := tools.DecodeArgs(args, &input); err != nil {
		return "", nil, fmt.Errorf("invalid arguments: %w", err)
	}
	if input.Filepath == "" {
		return "", nil, fmt.Errorf("missing required parameter: filepath")
	}
	if !contains(validPatchOperations, input.Operation) {
		return "", nil, fmt.Errorf("invalid operation: %s. Must be one of: %s",
			input.Operation, strings.Join(validPatchOperations, ", "))
	}
	if !contains(validTargetTypes, input.TargetType) {
		return "", nil, fmt.Errorf("invalid target_type: %s. Must be one of: %s",
			input.TargetType, strings.Join(validTargetTypes, ", "))
	}

	err := t.client.PatchContent(ctx, input.Filepath, input.Operation, input.TargetType, input.Target, input.Content)
	if err != nil {
		return "", nil, err
	}
	return fmt.Sprintf("Successfully patched %s", input.Filepath),
		map[string]interface{}{"filepath": input.Filepath, "operation": input.Operation}, nil
}

func contains(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}
