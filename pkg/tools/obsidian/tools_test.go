package obsidian

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/entrhq/obsidian-mcp/pkg/search"
)

func TestRegisterTools(t *testing.T) {
	client := newVaultClient(t, keatonVaultHandler(t))
	registered := RegisterTools(client, search.Options{}, nil)

	if len(registered) != 13 {
		t.Fatalf("expected 13 tools, got %d", len(registered))
	}

	seen := make(map[string]bool)
	for _, tool := range registered {
		name := tool.Name()
		if !strings.HasPrefix(name, "obsidian_") {
			t.Errorf("tool name %q is missing the obsidian_ prefix", name)
		}
		if seen[name] {
			t.Errorf("duplicate tool name %q", name)
		}
		seen[name] = true

		if tool.Description() == "" {
			t.Errorf("tool %q has an empty description", name)
		}
		schema := tool.Schema()
		if schema["type"] != "object" {
			t.Errorf("tool %q schema is not an object schema", name)
		}
	}
}

func TestListFilesInVaultTool(t *testing.T) {
	client := newVaultClient(t, keatonVaultHandler(t))
	tool := NewListFilesInVaultTool(client)

	result, metadata, err := tool.Execute(context.Background(), nil)
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if !strings.Contains(result, "Work/") {
		t.Errorf("expected result to contain Work/, got %s", result)
	}
	if metadata["file_count"].(int) != 2 {
		t.Errorf("expected file_count=2, got %v", metadata["file_count"])
	}
}

func TestListFilesInDirTool_MissingDirpath(t *testing.T) {
	client := newVaultClient(t, keatonVaultHandler(t))
	tool := NewListFilesInDirTool(client)

	_, _, err := tool.Execute(context.Background(), json.RawMessage(`{}`))
	if err == nil || !strings.Contains(err.Error(), "dirpath") {
		t.Fatalf("expected missing-dirpath error, got %v", err)
	}
}

func TestGetFileContentsTool(t *testing.T) {
	client := newVaultClient(t, keatonVaultHandler(t))
	tool := NewGetFileContentsTool(client)

	result, _, err := tool.Execute(context.Background(),
		json.RawMessage(`{"filepath": "Work/Keaton.md"}`))
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if result != "met with Keaton about the launch" {
		t.Errorf("unexpected content: %q", result)
	}
}

func TestDeleteFileTool_RequiresConfirm(t *testing.T) {
	var deleted bool
	client := newVaultClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodDelete {
			deleted = true
		}
		w.WriteHeader(http.StatusNoContent)
	})
	tool := NewDeleteFileTool(client)

	_, _, err := tool.Execute(context.Background(),
		json.RawMessage(`{"filepath": "old.md"}`))
	if err == nil || !strings.Contains(err.Error(), "confirm") {
		t.Fatalf("expected confirm error, got %v", err)
	}
	if deleted {
		t.Fatal("file was deleted without confirmation")
	}

	_, _, err = tool.Execute(context.Background(),
		json.RawMessage(`{"filepath": "old.md", "confirm": true}`))
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if !deleted {
		t.Fatal("expected DELETE request")
	}
}

func TestGetPeriodicNoteTool_Validation(t *testing.T) {
	client := newVaultClient(t, keatonVaultHandler(t))
	tool := NewGetPeriodicNoteTool(client)

	_, _, err := tool.Execute(context.Background(),
		json.RawMessage(`{"period": "hourly"}`))
	if err == nil || !strings.Contains(err.Error(), "invalid period") {
		t.Fatalf("expected invalid-period error, got %v", err)
	}

	_, _, err = tool.Execute(context.Background(),
		json.RawMessage(`{"period": "daily", "type": "sizes"}`))
	if err == nil || !strings.Contains(err.Error(), "invalid type") {
		t.Fatalf("expected invalid-type error, got %v", err)
	}
}

func TestGetRecentChangesTool_Validation(t *testing.T) {
	client := newVaultClient(t, keatonVaultHandler(t))
	tool := NewGetRecentChangesTool(client)

	_, _, err := tool.Execute(context.Background(), json.RawMessage(`{"limit": 0}`))
	if err == nil || !strings.Contains(err.Error(), "limit") {
		t.Fatalf("expected invalid-limit error, got %v", err)
	}

	_, _, err = tool.Execute(context.Background(), json.RawMessage(`{"days": -1}`))
	if err == nil || !strings.Contains(err.Error(), "days") {
		t.Fatalf("expected invalid-days error, got %v", err)
	}
}

func TestPatchContentTool_Validation(t *testing.T) {
	client := newVaultClient(t, keatonVaultHandler(t))
	tool := NewPatchContentTool(client)

	args := `{"filepath": "a.md", "operation": "merge", "target_type": "heading", "target": "H", "content": "x"}`
	_, _, err := tool.Execute(context.Background(), json.RawMessage(args))
	if err == nil || !strings.Contains(err.Error(), "invalid operation") {
		t.Fatalf("expected invalid-operation error, got %v", err)
	}

	args = `{"filepath": "a.md", "operation": "append", "target_type": "line", "target": "H", "content": "x"}`
	_, _, err = tool.Execute(context.Background(), json.RawMessage(args))
	if err == nil || !strings.Contains(err.Error(), "invalid target_type") {
		t.Fatalf("expected invalid-target_type error, got %v", err)
	}
}

func TestSimpleSearchTool_FormatsMatches(t *testing.T) {
	client := newVaultClient(t, func(w http.ResponseWriter, r *http.Request) {
		respondJSON(t, w, []map[string]any{
			{
				"filename": "Work/Keaton.md",
				"score":    2.0,
				"matches": []map[string]any{
					{"context": "met Keaton", "match": map[string]int{"start": 4, "end": 10}},
				},
			},
		})
	})
	tool := NewSimpleSearchTool(client)

	result, metadata, err := tool.Execute(context.Background(),
		json.RawMessage(`{"query": "Keaton"}`))
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	var formatted []map[string]any
	if err := json.Unmarshal([]byte(result), &formatted); err != nil {
		t.Fatalf("result is not valid JSON: %v", err)
	}
	if len(formatted) != 1 {
		t.Fatalf("expected 1 result, got %d", len(formatted))
	}
	if formatted[0]["filename"] != "Work/Keaton.md" {
		t.Errorf("unexpected filename %v", formatted[0]["filename"])
	}
	matches := formatted[0]["matches"].([]any)
	position := matches[0].(map[string]any)["match_position"].(map[string]any)
	if position["start"].(float64) != 4 {
		t.Errorf("unexpected match position %v", position)
	}
	if metadata["result_count"].(int) != 1 {
		t.Errorf("expected result_count=1, got %v", metadata["result_count"])
	}
}
