package obsidian

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/entrhq/obsidian-mcp/pkg/jsonlogic"
	"github.com/entrhq/obsidian-mcp/pkg/search"
	"github.com/entrhq/obsidian-mcp/pkg/tools"
	"github.com/entrhq/obsidian-mcp/pkg/vault"
)

// ComplexSearchTool evaluates a JsonLogic-style query against every file in
// the vault and returns the matching paths in enumeration order.
type ComplexSearchTool struct {
	runner *search.Runner
}

// NewComplexSearchTool creates a new complex-search tool scanning through
// the given client.
func NewComplexSearchTool(client *vault.Client, opts search.Options, logger search.Logger) *ComplexSearchTool {
	return &ComplexSearchTool{runner: search.NewRunner(client, opts, logger)}
}

// Name returns the tool's identifier.
func (t *ComplexSearchTool) Name() string {
	return "obsidian_complex_search"
}

// Description returns a description of what this tool does.
func (t *ComplexSearchTool) Description() string {
	return `Complex search for documents using a JsonLogic query.
Supports standard JsonLogic operators plus 'glob' and 'regexp' for pattern matching. Results must be non-falsy.

Use this tool when you want to do a complex search, e.g. for all documents with certain tags etc.
ALWAYS follow query syntax in examples.

Examples
  1. Match all markdown files
  {"glob": ["*.md", {"var": "path"}]}

  2. Match all markdown files with 1221 substring inside them
  {
    "and": [
      { "glob": ["*.md", {"var": "path"}] },
      { "regexp": [".*1221.*", {"var": "content"}] }
    ]
  }

  3. Match all markdown files in Work folder containing name Keaton
  {
    "and": [
      { "glob": ["*.md", {"var": "path"}] },
      { "regexp": [".*Work.*", {"var": "path"}] },
      { "regexp": ["Keaton", {"var": "content"}] }
    ]
  }`
}

// Schema returns the JSON schema for the tool's arguments.
func (t *ComplexSearchTool) Schema() map[string]interface{} {
	return tools.BaseToolSchema(
		map[string]interface{}{
			"query": map[string]interface{}{
				"type":        "object",
				"description": "The JsonLogic query to execute",
			},
		},
		[]string{"query"},
	)
}

// Execute parses the query, scans the vault, and returns the ordered
// matches. A malformed query fails the whole call before any file is read;
// evaluator errors abort the scan with no partial results.
func (t *ComplexSearchTool) Execute(ctx context.Context, args json.RawMessage) (string, map[string]interface{}, error) {
	var input struct {
		Query json.RawMessage `json:"query"`
	}
	if err := tools.DecodeArgs(args, &input); err != nil {
		return "", nil, fmt.Errorf("invalid arguments: %w", err)
	}
	if len(input.Query) == 0 {
		return "", nil, fmt.Errorf("missing required parameter: query")
	}

	expr, err := jsonlogic.Parse(input.Query)
	if err != nil {
		return "", nil, err
	}

	matches, err := t.runner.Run(ctx, expr)
	if err != nil {
		return "", nil, err
	}

	encoded, err := marshalResult(matches)
	if err != nil {
		return "", nil, err
	}
	return encoded, map[string]interface{}{"match_count": len(matches)}, nil
}
