package vault

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// listing is the wire shape of the vault directory listings. Directory
// entries carry a trailing slash.
type listing struct {
	Files []string `json:"files"`
}

// ListFilesInVault lists the files and directories at the vault root.
func (c *Client) ListFilesInVault(ctx context.Context) ([]string, error) {
	var result listing
	if err := c.getJSON(ctx, "/vault/", "application/json", &result); err != nil {
		return nil, err
	}
	return result.Files, nil
}

// ListFilesInDir lists the files and directories under a vault directory.
func (c *Client) ListFilesInDir(ctx context.Context, dirpath string) ([]string, error) {
	dirpath = strings.Trim(dirpath, "/")
	var result listing
	endpoint := fmt.Sprintf("/vault/%s/", vaultPath(dirpath))
	if err := c.getJSON(ctx, endpoint, "application/json", &result); err != nil {
		return nil, err
	}
	return result.Files, nil
}

// ListAll enumerates every file in the vault recursively, depth-first,
// preserving the server's listing order within each directory. The returned
// paths are vault-relative with no leading slash.
func (c *Client) ListAll(ctx context.Context) ([]string, error) {
	root, err := c.ListFilesInVault(ctx)
	if err != nil {
		return nil, err
	}
	return c.expand(ctx, "", root)
}

func (c *Client) expand(ctx context.Context, prefix string, entries []string) ([]string, error) {
	var paths []string
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		full := prefix + entry
		if !strings.HasSuffix(entry, "/") {
			paths = append(paths, full)
			continue
		}
		children, err := c.ListFilesInDir(ctx, full)
		if err != nil {
			return nil, err
		}
		nested, err := c.expand(ctx, full, children)
		if err != nil {
			return nil, err
		}
		paths = append(paths, nested...)
	}
	return paths, nil
}

// GetFileContents returns the full text of a single file.
func (c *Client) GetFileContents(ctx context.Context, filepath string) (string, error) {
	return c.getText(ctx, "/vault/"+vaultPath(filepath))
}

// BatchFileContents returns the concatenated contents of several files,
// each prefixed with a path header. A file that cannot be read is recorded
// inline and does not abort the remaining reads.
func (c *Client) BatchFileContents(ctx context.Context, filepaths []string) (string, error) {
	var b strings.Builder
	for _, filepath := range filepaths {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		fmt.Fprintf(&b, "# %s\n\n", filepath)
		content, err := c.GetFileContents(ctx, filepath)
		if err != nil {
			fmt.Fprintf(&b, "Error reading file: %v\n\n---\n\n", err)
			continue
		}
		fmt.Fprintf(&b, "%s\n\n---\n\n", content)
	}
	return b.String(), nil
}

// PutContent creates a file or replaces an existing file's content.
func (c *Client) PutContent(ctx context.Context, filepath, content string) error {
	headers := http.Header{}
	headers.Set("Content-Type", "text/markdown")
	return c.send(ctx, http.MethodPut, "/vault/"+vaultPath(filepath), headers, content)
}

// AppendContent appends to a file, creating it when missing.
func (c *Client) AppendContent(ctx context.Context, filepath, content string) error {
	headers := http.Header{}
	headers.Set("Content-Type", "text/markdown")
	return c.send(ctx, http.MethodPost, "/vault/"+vaultPath(filepath), headers, content)
}

// PatchContent inserts content relative to a heading, block reference, or
// frontmatter field of an existing note. operation is one of append,
// prepend, or replace; targetType is heading, block, or frontmatter.
func (c *Client) PatchContent(ctx context.Context, filepath, operation, targetType, target, content string) error {
	headers := http.Header{}
	headers.Set("Content-Type", "text/markdown")
	headers.Set("Operation", operation)
	headers.Set("Target-Type", targetType)
	headers.Set("Target", url.QueryEscape(target))
	headers.Set("Create-Target-If-Missing", "true")
	return c.send(ctx, http.MethodPatch, "/vault/"+vaultPath(filepath), headers, content)
}

// DeleteFile deletes a file or directory from the vault.
func (c *Client) DeleteFile(ctx context.Context, filepath string) error {
	return c.send(ctx, http.MethodDelete, "/vault/"+vaultPath(filepath), nil, "")
}
