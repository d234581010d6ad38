// Package tools defines the tool abstraction the server exposes to agents.
// Each tool is a named, schema-described operation that parses its own JSON
// arguments and executes against the vault.
package tools

import (
	"bytes"
	"context"
	"encoding/json"
)

// Tool represents one operation an agent can invoke.
type Tool interface {
	// Name returns the unique identifier for this tool
	// (e.g., "obsidian_complex_search").
	Name() string

	// Description returns a human-readable description of what this tool
	// does, shown to the agent in the tool catalog.
	Description() string

	// Schema returns the JSON Schema object describing the tool's
	// arguments.
	Schema() map[string]interface{}

	// Execute runs the tool with the given JSON arguments.
	// Returns: (result string, metadata map, error). Metadata is optional
	// and may be nil. A non-nil error means the call failed as a whole;
	// there is no partial success state.
	Execute(ctx context.Context, args json.RawMessage) (string, map[string]interface{}, error)
}

// BaseToolSchema creates a common JSON schema structure for a tool with the
// given properties and required fields.
func BaseToolSchema(properties map[string]interface{}, required []string) map[string]interface{} {
	schema := map[string]interface{}{
		"type":       "object",
		"properties": properties,
	}
	if len(required) > 0 {
		schema["required"] = required
	}
	return schema
}

// DecodeArgs unmarshals a tool's JSON arguments into v. Empty or absent
// arguments decode as an empty object so tools with all-optional parameters
// work without special-casing.
func DecodeArgs(args json.RawMessage, v interface{}) error {
	trimmed := bytes.TrimSpace(args)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil
	}
	return json.Unmarshal(trimmed, v)
}
