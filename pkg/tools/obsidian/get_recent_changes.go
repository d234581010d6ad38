package obsidian

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/entrhq/obsidian-mcp/pkg/tools"
	"github.com/entrhq/obsidian-mcp/pkg/vault"
)

const (
	defaultRecentChangesLimit = 10
	defaultRecentChangesDays  = 90
)

// GetRecentChangesTool returns recently modified vault files, most recent
// first. Requires the Dataview plugin on the vault server.
type GetRecentChangesTool struct {
	client *vault.Client
}

// NewGetRecentChangesTool creates a new get-recent-changes tool.
func NewGetRecentChangesTool(client *vault.Client) *GetRecentChangesTool {
	return &GetRecentChangesTool{client: client}
}

// Name returns the tool's identifier.
func (t *GetRecentChangesTool) Name() string {
	return "obsidian_get_recent_changes"
}

// Description returns a description of what this tool does.
func (t *GetRecentChangesTool) Description() string {
	return "Get recently modified files in the vault."
}

// Schema returns the JSON schema for the tool's arguments.
func (t *GetRecentChangesTool) Schema() map[string]interface{} {
	return tools.BaseToolSchema(
		map[string]interface{}{
			"limit": map[string]interface{}{
				"type":        "integer",
				"description": "Maximum number of files to return (default: 10)",
			},
			"days": map[string]interface{}{
				"type":        "integer",
				"description": "Only include files modified within this many days (default: 90)",
			},
		},
		nil,
	)
}

// Execute queries the recent changes.
func (t *GetRecentChangesTool) Execute(ctx context.Context, args json.RawMessage) (string, map[string]interface{}, error) {
	var input struct {
		Limit *int `json:"limit"`
		Days  *int `json:"days"`
	}
	if err := tools.DecodeArgs(args, &input); err != nil {
		return "", nil, fmt.Errorf("invalid arguments: %w", err)
	}

	limit := defaultRecentChangesLimit
	if input.Limit != nil {
		if *input.Limit < 1 {
			return "", nil, fmt.Errorf("invalid limit: %d. Must be a positive integer", *input.Limit)
		}
		limit = *input.Limit
	}
	days := defaultRecentChangesDays
	if input.Days != nil {
		if *input.Days < 1 {
			return "", nil, fmt.Errorf("invalid days: %d. Must be a positive integer", *input.Days)
		}
		days = *input.Days
	}

	changes, err := t.client.GetRecentChanges(ctx, limit, days)
	if err != nil {
		return "", nil, err
	}
	encoded, err := marshalResult(changes)
	if err != nil {
		return "", nil, err
	}
	return encoded, map[string]interface{}{"change_count": len(changes)}, nil
}
