// Package vault is a client for the Obsidian Local REST API. It exposes the
// vault's file, search, and periodic-note operations as typed methods and
// maps HTTP failures onto typed errors.
package vault

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// Logger is the minimal logging interface the client uses for request
// lifecycle events.
type Logger interface {
	Debugf(format string, v ...interface{})
	Errorf(format string, v ...interface{})
}

// Client talks to a single Obsidian Local REST API server. All methods are
// safe for concurrent use.
type Client struct {
	httpClient     *http.Client
	baseURL        *url.URL
	defaultHeaders http.Header
	logger         Logger
}

// New constructs a Client with the provided options. A base URL and API key
// are required in practice; the server rejects unauthenticated requests.
func New(opts ...ClientOption) (*Client, error) {
	c := &Client{
		httpClient:     &http.Client{},
		defaultHeaders: make(http.Header),
	}
	c.defaultHeaders.Set("User-Agent", "obsidian-mcp/0.1")

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	if c.baseURL == nil {
		return nil, ErrInvalidBaseURL
	}
	return c, nil
}

// vaultPath percent-encodes a vault-relative file path segment by segment,
// preserving the separators.
func vaultPath(path string) string {
	segments := strings.Split(path, "/")
	for i, segment := range segments {
		segments[i] = url.PathEscape(segment)
	}
	return strings.Join(segments, "/")
}

func (c *Client) buildURL(endpoint string, query url.Values) string {
	u := *c.baseURL
	u.Path = strings.TrimSuffix(u.Path, "/")
	u.RawPath = ""
	joined := u.String() + endpoint
	if len(query) > 0 {
		joined += "?" + query.Encode()
	}
	return joined
}

func (c *Client) newRequest(ctx context.Context, method, endpoint string, query url.Values, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.buildURL(endpoint, query), body)
	if err != nil {
		return nil, err
	}
	for key, values := range c.defaultHeaders {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}
	return req, nil
}

// do executes a request and returns the response body after status
// checking. The caller owns closing the body.
func (c *Client) do(req *http.Request) (*http.Response, error) {
	if c.logger != nil {
		c.logger.Debugf("%s %s", req.Method, req.URL.Path)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	if err := checkResponse(resp); err != nil {
		resp.Body.Close()
		if c.logger != nil {
			c.logger.Errorf("%s %s failed: %v", req.Method, req.URL.Path, err)
		}
		return nil, err
	}
	return resp, nil
}

// getJSON performs a GET and decodes the JSON response into out.
func (c *Client) getJSON(ctx context.Context, endpoint string, accept string, out any) error {
	req, err := c.newRequest(ctx, http.MethodGet, endpoint, nil, nil)
	if err != nil {
		return err
	}
	if accept != "" {
		req.Header.Set("Accept", accept)
	}
	resp, err := c.do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	return json.NewDecoder(resp.Body).Decode(out)
}

// getText performs a GET and returns the raw response body as a string.
func (c *Client) getText(ctx context.Context, endpoint string) (string, error) {
	req, err := c.newRequest(ctx, http.MethodGet, endpoint, nil, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Accept", "text/markdown")
	resp, err := c.do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &TransportError{Err: err}
	}
	return string(data), nil
}

// send performs a body-carrying request (PUT, POST, PATCH, DELETE) and
// discards any response payload.
func (c *Client) send(ctx context.Context, method, endpoint string, headers http.Header, body string) error {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req, err := c.newRequest(ctx, method, endpoint, nil, reader)
	if err != nil {
		return err
	}
	for key, values := range headers {
		for _, value := range values {
			req.Header.Set(key, value)
		}
	}
	resp, err := c.do(req)
	if err != nil {
		return err
	}
	resp.Body.Close()
	return nil
}

// checkResponse maps non-2xx statuses onto typed errors, decoding the
// server's JSON error body when present.
func checkResponse(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	var payload struct {
		ErrorCode int    `json:"errorCode"`
		Message   string `json:"message"`
	}
	data, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	_ = json.Unmarshal(data, &payload)

	if resp.StatusCode == http.StatusNotFound {
		return &NotFoundError{
			Path:    resp.Request.URL.Path,
			Message: payload.Message,
		}
	}
	if payload.Message == "" {
		payload.Message = fmt.Sprintf("unexpected status %d", resp.StatusCode)
	}
	return &APIError{
		Status:    resp.StatusCode,
		ErrorCode: payload.ErrorCode,
		Message:   payload.Message,
	}
}
