package obsidian

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/entrhq/obsidian-mcp/pkg/vault"
)

// newVaultClient points a client at an httptest server standing in for the
// Obsidian REST API.
func newVaultClient(t *testing.T, handler http.HandlerFunc) *vault.Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := vault.New(
		vault.WithBaseURL(server.URL),
		vault.WithHTTPClient(server.Client()),
		vault.WithAPIKey("test-key"),
	)
	if err != nil {
		t.Fatalf("vault.New: %v", err)
	}
	return client
}

func respondJSON(t *testing.T, w http.ResponseWriter, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		t.Fatalf("encode json: %v", err)
	}
}

// keatonVaultHandler serves a small vault with one Keaton note under Work/,
// one under Personal/, and a non-markdown file.
func keatonVaultHandler(t *testing.T) http.HandlerFunc {
	t.Helper()
	contents := map[string]string{
		"/vault/Personal/Keaton.md": "family stuff about Keaton",
		"/vault/Work/Keaton.md":     "met with Keaton about the launch",
		"/vault/Work/notes.txt":     "Keaton in plain text",
	}
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/vault/":
			respondJSON(t, w, map[string]any{"files": []string{"Personal/", "Work/"}})
		case "/vault/Personal/":
			respondJSON(t, w, map[string]any{"files": []string{"Keaton.md"}})
		case "/vault/Work/":
			respondJSON(t, w, map[string]any{"files": []string{"Keaton.md", "notes.txt"}})
		default:
			content, ok := contents[r.URL.Path]
			if !ok {
				w.WriteHeader(http.StatusNotFound)
				respondJSON(t, w, map[string]any{"errorCode": 40400, "message": "File does not exist"})
				return
			}
			if _, err := w.Write([]byte(content)); err != nil {
				t.Errorf("write response: %v", err)
			}
		}
	}
}
