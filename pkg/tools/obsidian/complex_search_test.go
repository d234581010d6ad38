package obsidian

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/entrhq/obsidian-mcp/pkg/jsonlogic"
	"github.com/entrhq/obsidian-mcp/pkg/search"
)

func TestComplexSearchTool_KeatonQuery(t *testing.T) {
	client := newVaultClient(t, keatonVaultHandler(t))
	tool := NewComplexSearchTool(client, search.Options{}, nil)

	args := `{"query": {
		"and": [
			{"glob": ["*.md", {"var": "path"}]},
			{"regexp": [".*Work.*", {"var": "path"}]},
			{"regexp": ["Keaton", {"var": "content"}]}
		]
	}}`

	result, metadata, err := tool.Execute(context.Background(), json.RawMessage(args))
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	var matches []search.Match
	if err := json.Unmarshal([]byte(result), &matches); err != nil {
		t.Fatalf("result is not valid JSON: %v", err)
	}
	if len(matches) != 1 {
		t.Fatalf("expected exactly 1 match, got %d: %v", len(matches), matches)
	}
	if matches[0].Path != "Work/Keaton.md" {
		t.Errorf("expected Work/Keaton.md, got %s", matches[0].Path)
	}
	if metadata["match_count"].(int) != 1 {
		t.Errorf("expected match_count=1, got %v", metadata["match_count"])
	}
}

func TestComplexSearchTool_GlobOnly(t *testing.T) {
	client := newVaultClient(t, keatonVaultHandler(t))
	tool := NewComplexSearchTool(client, search.Options{}, nil)

	result, _, err := tool.Execute(context.Background(),
		json.RawMessage(`{"query": {"glob": ["*.md", {"var": "path"}]}}`))
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	var matches []search.Match
	if err := json.Unmarshal([]byte(result), &matches); err != nil {
		t.Fatalf("result is not valid JSON: %v", err)
	}
	// Enumeration order: Personal/ before Work/.
	want := []string{"Personal/Keaton.md", "Work/Keaton.md"}
	if len(matches) != len(want) {
		t.Fatalf("expected %d matches, got %d", len(want), len(matches))
	}
	for i, path := range want {
		if matches[i].Path != path {
			t.Errorf("match %d: expected %s, got %s", i, path, matches[i].Path)
		}
	}
}

func TestComplexSearchTool_UnsupportedOperator(t *testing.T) {
	client := newVaultClient(t, keatonVaultHandler(t))
	tool := NewComplexSearchTool(client, search.Options{}, nil)

	_, _, err := tool.Execute(context.Background(),
		json.RawMessage(`{"query": {"xor": [true, false]}}`))
	var opErr *jsonlogic.UnsupportedOperatorError
	if !errors.As(err, &opErr) {
		t.Fatalf("expected UnsupportedOperatorError, got %v", err)
	}
	if opErr.Operator != "xor" {
		t.Errorf("expected operator xor, got %s", opErr.Operator)
	}
}

func TestComplexSearchTool_MissingQuery(t *testing.T) {
	client := newVaultClient(t, keatonVaultHandler(t))
	tool := NewComplexSearchTool(client, search.Options{}, nil)

	_, _, err := tool.Execute(context.Background(), json.RawMessage(`{}`))
	if err == nil || !strings.Contains(err.Error(), "query") {
		t.Fatalf("expected missing-query error, got %v", err)
	}
}

func TestComplexSearchTool_MalformedQuery(t *testing.T) {
	client := newVaultClient(t, keatonVaultHandler(t))
	tool := NewComplexSearchTool(client, search.Options{}, nil)

	_, _, err := tool.Execute(context.Background(),
		json.RawMessage(`{"query": {"glob": ["*.md"]}}`))
	var malformed *jsonlogic.MalformedExpressionError
	if !errors.As(err, &malformed) {
		t.Fatalf("expected MalformedExpressionError, got %v", err)
	}
}

func TestComplexSearchTool_IncludeContent(t *testing.T) {
	client := newVaultClient(t, keatonVaultHandler(t))
	tool := NewComplexSearchTool(client, search.Options{IncludeContent: true}, nil)

	result, _, err := tool.Execute(context.Background(),
		json.RawMessage(`{"query": {"glob": ["Work/*.md", {"var": "path"}]}}`))
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	var matches []search.Match
	if err := json.Unmarshal([]byte(result), &matches); err != nil {
		t.Fatalf("result is not valid JSON: %v", err)
	}
	if len(matches) != 1 {
		t.Fatalf("expected 1 match, got %d", len(matches))
	}
	if matches[0].Content != "met with Keaton about the launch" {
		t.Errorf("expected content to be included, got %q", matches[0].Content)
	}
}
