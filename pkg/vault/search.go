package vault

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// SimpleSearchMatch is one match inside a file, with surrounding context.
type SimpleSearchMatch struct {
	Context string `json:"context"`
	Match   struct {
		Start int `json:"start"`
		End   int `json:"end"`
	} `json:"match"`
}

// SimpleSearchResult is one file returned by the full-text search, ranked
// by the server's relevance score.
type SimpleSearchResult struct {
	Filename string              `json:"filename"`
	Score    float64             `json:"score"`
	Matches  []SimpleSearchMatch `json:"matches"`
}

// Search runs the server's full-text search. contextLength controls how
// much surrounding text each match carries.
func (c *Client) Search(ctx context.Context, query string, contextLength int) ([]SimpleSearchResult, error) {
	params := url.Values{}
	params.Set("query", query)
	params.Set("contextLength", strconv.Itoa(contextLength))

	req, err := c.newRequest(ctx, http.MethodPost, "/search/simple/", params, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var results []SimpleSearchResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return nil, err
	}
	return results, nil
}

// DQLResult is one row of a Dataview DQL query run through the search
// endpoint.
type DQLResult struct {
	Filename string `json:"filename"`
	Result   any    `json:"result"`
}

// RecentChange describes a recently modified file.
type RecentChange struct {
	Path  string `json:"path"`
	Mtime string `json:"mtime"`
}

// GetRecentChanges returns up to limit files modified within the last days
// days, most recent first. Requires the Dataview plugin on the server.
func (c *Client) GetRecentChanges(ctx context.Context, limit, days int) ([]RecentChange, error) {
	query := fmt.Sprintf(
		"TABLE file.mtime\nWHERE file.mtime >= date(today) - dur(%d days)\nSORT file.mtime DESC\nLIMIT %d",
		days, limit,
	)

	req, err := c.newRequest(ctx, http.MethodPost, "/search/", nil, strings.NewReader(query))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/vnd.olrapi.dataview.dql+txt")

	resp, err := c.do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var rows []DQLResult
	if err := json.NewDecoder(resp.Body).Decode(&rows); err != nil {
		return nil, err
	}

	changes := make([]RecentChange, 0, len(rows))
	for _, row := range rows {
		change := RecentChange{Path: row.Filename}
		// The single TABLE column comes back keyed by its Dataview name.
		if fields, ok := row.Result.(map[string]any); ok {
			if mtime, ok := fields["file.mtime"].(string); ok {
				change.Mtime = mtime
			}
		}
		changes = append(changes, change)
	}
	return changes, nil
}
