// Package search implements the complex vault search: it enumerates every
// file in the vault, fetches each file's content, and evaluates a parsed
// query expression against the per-file record, collecting the files whose
// result is truthy.
//
// Matches are returned in vault enumeration order, not ranked; complex
// search has no relevance score. Each run is a fresh, self-contained scan
// with no cross-call caching, so results always reflect the current vault
// state.
package search

import (
	"context"
	"sync"

	"github.com/entrhq/obsidian-mcp/pkg/jsonlogic"
)

const defaultWorkers = 8

// Vault is the collaborator the runner scans. Implemented by vault.Client.
type Vault interface {
	// ListAll enumerates every file path in the vault, recursively, in
	// the vault's listing order.
	ListAll(ctx context.Context) ([]string, error)

	// GetFileContents returns the full text of a single file.
	GetFileContents(ctx context.Context, path string) (string, error)
}

// Logger is the minimal logging interface the runner needs.
type Logger interface {
	Debugf(format string, v ...interface{})
	Warnf(format string, v ...interface{})
}

// Match is one file whose record evaluated truthy. Content is populated
// only when the runner is configured to include it.
type Match struct {
	Path    string `json:"path"`
	Content string `json:"content,omitempty"`
}

// Options tunes a Runner.
type Options struct {
	// Workers bounds the concurrent fetch-and-evaluate pool. 1 reproduces
	// the sequential reference behavior; 0 selects the default.
	Workers int

	// AbortOnFetchError makes a single unreadable file fail the whole
	// scan. The default treats it as a non-match and keeps scanning.
	AbortOnFetchError bool

	// IncludeContent copies each matched file's content into its Match.
	IncludeContent bool
}

// Runner executes query expressions against a vault. Runners hold no
// per-call state and are safe for concurrent use.
type Runner struct {
	vault  Vault
	opts   Options
	logger Logger
}

// NewRunner creates a runner over the given vault.
func NewRunner(vault Vault, opts Options, logger Logger) *Runner {
	if opts.Workers <= 0 {
		opts.Workers = defaultWorkers
	}
	return &Runner{vault: vault, opts: opts, logger: logger}
}

// outcome records the result for one enumerated path, slotted by index so
// ordering survives the worker pool.
type outcome struct {
	matched bool
	content string
}

// Run evaluates the expression against every file in the vault and returns
// the matches in enumeration order.
//
// Evaluator errors (unsupported operator, malformed expression, invalid
// pattern) indicate an invalid request: they cancel in-flight work and fail
// the whole call with no partial results. A per-file fetch failure is local:
// the file is skipped unless AbortOnFetchError is set.
func (r *Runner) Run(ctx context.Context, expr jsonlogic.Expr) ([]Match, error) {
	paths, err := r.vault.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		failOnce sync.Once
		runErr   error
	)
	fail := func(err error) {
		failOnce.Do(func() {
			runErr = err
			cancel()
		})
	}

	outcomes := make([]outcome, len(paths))
	jobs := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < r.opts.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				r.scanFile(ctx, expr, paths[idx], &outcomes[idx], fail)
			}
		}()
	}

feed:
	for idx := range paths {
		select {
		case jobs <- idx:
		case <-ctx.Done():
			break feed
		}
	}
	close(jobs)
	wg.Wait()

	if runErr != nil {
		return nil, runErr
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	matches := make([]Match, 0, len(paths))
	for idx, out := range outcomes {
		if !out.matched {
			continue
		}
		match := Match{Path: paths[idx]}
		if r.opts.IncludeContent {
			match.Content = out.content
		}
		matches = append(matches, match)
	}
	return matches, nil
}

func (r *Runner) scanFile(ctx context.Context, expr jsonlogic.Expr, path string, out *outcome, fail func(error)) {
	if ctx.Err() != nil {
		return
	}

	content, err := r.vault.GetFileContents(ctx, path)
	if err != nil {
		if r.opts.AbortOnFetchError {
			fail(err)
			return
		}
		if r.logger != nil {
			r.logger.Warnf("skipping unreadable file %s: %v", path, err)
		}
		return
	}

	val, err := jsonlogic.Evaluate(expr, jsonlogic.Record{Path: path, Content: content})
	if err != nil {
		fail(err)
		return
	}
	if jsonlogic.Truthy(val) {
		out.matched = true
		out.content = content
	}
}
