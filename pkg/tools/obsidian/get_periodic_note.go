package obsidian

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/entrhq/obsidian-mcp/pkg/tools"
	"github.com/entrhq/obsidian-mcp/pkg/vault"
)

// GetPeriodicNoteTool returns the current periodic note for a period,
// either its raw content or its structured metadata.
type GetPeriodicNoteTool struct {
	client *vault.Client
}

// NewGetPeriodicNoteTool creates a new get-periodic-note tool.
func NewGetPeriodicNoteTool(client *vault.Client) *GetPeriodicNoteTool {
	return &GetPeriodicNoteTool{client: client}
}

// Name returns the tool's identifier.
func (t *GetPeriodicNoteTool) Name() string {
	return "obsidian_get_periodic_note"
}

// Description returns a description of what this tool does.
func (t *GetPeriodicNoteTool) Description() string {
	return "Get current periodic note for the specified period."
}

// Schema returns the JSON schema for the tool's arguments.
func (t *GetPeriodicNoteTool) Schema() map[string]interface{} {
	return tools.BaseToolSchema(
		map[string]interface{}{
			"period": map[string]interface{}{
				"type":        "string",
				"description": "The period type (daily, weekly, monthly, quarterly, yearly)",
				"enum":        vault.ValidPeriods,
			},
			"type": map[string]interface{}{
				"type":        "string",
				"description": "Type of the data to get ('content' or 'metadata')",
				"enum":        []string{"content", "metadata"},
			},
		},
		[]string{"period"},
	)
}

// Execute fetches the periodic note.
func (t *GetPeriodicNoteTool) Execute(ctx context.Context, args json.RawMessage) (string, map[string]interface{}, error) {
	var input struct {
		Period string `json:"period"`
		Type   string `json:"type"`
	}
	if err := tools.DecodeArgs(args, &input); err != nil {
		return "", nil, fmt.Errorf("invalid arguments: %w", err)
	}
	if !vault.IsValidPeriod(input.Period) {
		return "", nil, fmt.Errorf("invalid period: %s. Must be one of: %s",
			input.Period, strings.Join(vault.ValidPeriods, ", "))
	}
	if input.Type == "" {
		input.Type = "content"
	}

	switch input.Type {
	case "content":
		content, err := t.client.GetPeriodicNote(ctx, input.Period)
		if err != nil {
			return "", nil, err
		}
		return content, map[string]interface{}{"period": input.Period}, nil
	case "metadata":
		note, err := t.client.GetPeriodicNoteMetadata(ctx, input.Period)
		if err != nil {
			return "", nil, err
		}
		encoded, err := marshalResult(note)
		if err != nil {
			return "", nil, err
		}
		return encoded, map[string]interface{}{"period": input.Period, "path": note.Path}, nil
	default:
		return "", nil, fmt.Errorf("invalid type: %s. Must be one of: content, metadata", input.Type)
	}
}
