package obsidian

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/entrhq/obsidian-mcp/pkg/tools"
	"github.com/entrhq/obsidian-mcp/pkg/vault"
)

const defaultContextLength = 100

// SimpleSearchTool runs the server's full-text search across the vault.
type SimpleSearchTool struct {
	client *vault.Client
}

// NewSimpleSearchTool creates a new simple-search tool.
func NewSimpleSearchTool(client *vault.Client) *SimpleSearchTool {
	return &SimpleSearchTool{client: client}
}

// Name returns the tool's identifier.
func (t *SimpleSearchTool) Name() string {
	return "obsidian_simple_search"
}

// Description returns a description of what this tool does.
func (t *SimpleSearchTool) Description() string {
	return "Simple search for documents matching a specified text query across all files in the vault. " +
		"Use this tool when you want to do a simple text search."
}

// Schema returns the JSON schema for the tool's arguments.
func (t *SimpleSearchTool) Schema() map[string]interface{} {
	return tools.BaseToolSchema(
		map[string]interface{}{
			"query": map[string]interface{}{
				"type":        "string",
				"description": "The search query",
			},
			"context_length": map[string]interface{}{
				"type":        "integer",
				"description": "Length of the context to return around each match (default: 100)",
			},
		},
		[]string{"query"},
	)
}

// formattedMatch mirrors the result shape of the reference tool.
type formattedMatch struct {
	Context       string `json:"context"`
	MatchPosition struct {
		Start int `json:"start"`
		End   int `json:"end"`
	} `json:"match_position"`
}

type formattedResult struct {
	Filename string           `json:"filename"`
	Score    float64          `json:"score"`
	Matches  []formattedMatch `json:"matches"`
}

// Execute runs the search and reshapes the server's response.
func (t *SimpleSearchTool) Execute(ctx context.Context, args json.RawMessage) (string, map[string]interface{}, error) {
	var input struct {
		Query         string `json:"query"`
		ContextLength int    `json:"context_length"`
	}
	if err := tools.DecodeArgs(args, &input); err != nil {
		return "", nil, fmt.Errorf("invalid arguments: %w", err)
	}
	if input.Query == "" {
		return "", nil, fmt.Errorf("missing required parameter: query")
	}
	if input.ContextLength <= 0 {
		input.ContextLength = defaultContextLength
	}

	results, err := t.client.Search(ctx, input.Query, input.ContextLength)
	if err != nil {
		return "", nil, err
	}

	formatted := make([]formattedResult, 0, len(results))
	for _, result := range results {
		entry := formattedResult{
			Filename: result.Filename,
			Score:    result.Score,
			Matches:  make([]formattedMatch, 0, len(result.Matches)),
		}
		for _, match := range result.Matches {
			var fm formattedMatch
			fm.Context = match.Context
			fm.MatchPosition.Start = match.Match.Start
			fm.MatchPosition.End = match.Match.End
			entry.Matches = append(entry.Matches, fm)
		}
		formatted = append(formatted, entry)
	}

	encoded, err := marshalResult(formatted)
	if err != nil {
		return "", nil, err
	}
	return encoded, map[string]interface{}{"result_count": len(formatted)}, nil
}
