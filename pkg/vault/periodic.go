package vault

import (
	"context"
	"fmt"
	"time"
)

// Period names accepted by the periodic-note endpoints.
var ValidPeriods = []string{"daily", "weekly", "monthly", "quarterly", "yearly"}

// IsValidPeriod reports whether period names a supported periodic-note
// period.
func IsValidPeriod(period string) bool {
	for _, p := range ValidPeriods {
		if p == period {
			return true
		}
	}
	return false
}

// NoteStat carries a note's filesystem metadata.
type NoteStat struct {
	Ctime int64 `json:"ctime"`
	Mtime int64 `json:"mtime"`
	Size  int64 `json:"size"`
}

// NoteJSON is the structured note representation served under the
// vnd.olrapi.note+json media type.
type NoteJSON struct {
	Content     string         `json:"content"`
	Frontmatter map[string]any `json:"frontmatter"`
	Path        string         `json:"path"`
	Stat        NoteStat       `json:"stat"`
	Tags        []string       `json:"tags"`
}

// GetPeriodicNote returns the content of the current periodic note for the
// given period.
func (c *Client) GetPeriodicNote(ctx context.Context, period string) (string, error) {
	return c.getText(ctx, fmt.Sprintf("/periodic/%s/", period))
}

// GetPeriodicNoteMetadata returns the current periodic note with its
// metadata instead of raw content.
func (c *Client) GetPeriodicNoteMetadata(ctx context.Context, period string) (*NoteJSON, error) {
	var note NoteJSON
	endpoint := fmt.Sprintf("/periodic/%s/", period)
	if err := c.getJSON(ctx, endpoint, "application/vnd.olrapi.note+json", &note); err != nil {
		return nil, err
	}
	return &note, nil
}

// PeriodicNote is one entry returned by GetRecentPeriodicNotes.
type PeriodicNote struct {
	Period  string `json:"period"`
	Date    string `json:"date"`
	Path    string `json:"path"`
	Content string `json:"content,omitempty"`
}

// GetRecentPeriodicNotes walks backwards from today through the dated
// periodic-note endpoints and collects up to limit notes that exist.
// Periods without a note are skipped; the walk gives up after a bounded
// number of probes so sparse vaults terminate.
func (c *Client) GetRecentPeriodicNotes(ctx context.Context, period string, limit int, includeContent bool) ([]PeriodicNote, error) {
	if !IsValidPeriod(period) {
		return nil, fmt.Errorf("vault: invalid period %q", period)
	}
	if limit < 1 {
		return nil, fmt.Errorf("vault: invalid limit %d", limit)
	}

	maxProbes := limit * 5
	if maxProbes < 30 {
		maxProbes = 30
	}

	notes := make([]PeriodicNote, 0, limit)
	date := time.Now()
	for probe := 0; probe < maxProbes && len(notes) < limit; probe++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		endpoint := fmt.Sprintf("/periodic/%s/%d/%02d/%02d/",
			period, date.Year(), int(date.Month()), date.Day())
		var note NoteJSON
		err := c.getJSON(ctx, endpoint, "application/vnd.olrapi.note+json", &note)
		switch {
		case err == nil:
			entry := PeriodicNote{
				Period: period,
				Date:   date.Format("2006-01-02"),
				Path:   note.Path,
			}
			if includeContent {
				entry.Content = note.Content
			}
			notes = append(notes, entry)
		case IsNotFound(err):
			// No note for this period; keep walking.
		default:
			return nil, err
		}

		date = previousPeriod(date, period)
	}
	return notes, nil
}

func previousPeriod(date time.Time, period string) time.Time {
	switch period {
	case "daily":
		return date.AddDate(0, 0, -1)
	case "weekly":
		return date.AddDate(0, 0, -7)
	case "monthly":
		return date.AddDate(0, -1, 0)
	case "quarterly":
		return date.AddDate(0, -3, 0)
	case "yearly":
		return date.AddDate(-1, 0, 0)
	default:
		return date.AddDate(0, 0, -1)
	}
}
