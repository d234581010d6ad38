package obsidian

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/entrhq/obsidian-mcp/pkg/tools"
	"github.com/entrhq/obsidian-mcp/pkg/vault"
)

const defaultRecentNotesLimit = 5

// GetRecentPeriodicNotesTool returns the most recent periodic notes for a
// period type.
type GetRecentPeriodicNotesTool struct {
	client *vault.Client
}

// NewGetRecentPeriodicNotesTool creates a new get-recent-periodic-notes
// tool.
func NewGetRecentPeriodicNotesTool(client *vault.Client) *GetRecentPeriodicNotesTool {
	return &GetRecentPeriodicNotesTool{client: client}
}

// Name returns the tool's identifier.
func (t *GetRecentPeriodicNotesTool) Name() string {
	return "obsidian_get_recent_periodic_notes"
}

// Description returns a description of what this tool does.
func (t *GetRecentPeriodicNotesTool) Description() string {
	return "Get most recent periodic notes for the specified period type."
}

// Schema returns the JSON schema for the tool's arguments.
func (t *GetRecentPeriodicNotesTool) Schema() map[string]interface{} {
	return tools.BaseToolSchema(
		map[string]interface{}{
			"period": map[string]interface{}{
				"type":        "string",
				"description": "The period type (daily, weekly, monthly, quarterly, yearly)",
				"enum":        vault.ValidPeriods,
			},
			"limit": map[string]interface{}{
				"type":        "integer",
				"description": "Maximum number of notes to return (default: 5)",
			},
			"include_content": map[string]interface{}{
				"type":        "boolean",
				"description": "Whether to include note content (default: false)",
			},
		},
		[]string{"period"},
	)
}

// Execute collects the recent notes.
func (t *GetRecentPeriodicNotesTool) Execute(ctx context.Context, args json.RawMessage) (string, map[string]interface{}, error) {
	var input struct {
		Period         string `json:"period"`
		Limit          *int   `json:"limit"`
		IncludeContent bool   `json:"include_content"`
	}
	if err := tools.DecodeArgs(args, &input); err != nil {
		return "", nil, fmt.Errorf("invalid arguments: %w", err)
	}
	if !vault.IsValidPeriod(input.Period) {
		return "", nil, fmt.Errorf("invalid period: %s. Must be one of: %s",
			input.Period, strings.Join(vault.ValidPeriods, ", "))
	}
	limit := defaultRecentNotesLimit
	if input.Limit != nil {
		if *input.Limit < 1 {
			return "", nil, fmt.Errorf("invalid limit: %d. Must be a positive integer", *input.Limit)
		}
		limit = *input.Limit
	}

	notes, err := t.client.GetRecentPeriodicNotes(ctx, input.Period, limit, input.IncludeContent)
	if err != nil {
		return "", nil, err
	}
	encoded, err := marshalResult(notes)
	if err != nil {
		return "", nil, err
	}
	return encoded, map[string]interface{}{"period": input.Period, "note_count": len(notes)}, nil
}
