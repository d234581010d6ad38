package vault

import (
	"crypto/tls"
	"net/http"
	"net/url"
	"time"
)

// ClientOption configures a Client during construction.
type ClientOption func(*Client) error

// WithBaseURL sets the REST API base URL, e.g. "https://127.0.0.1:27124".
func WithBaseURL(raw string) ClientOption {
	return func(c *Client) error {
		if raw == "" {
			return ErrInvalidBaseURL
		}
		u, err := url.Parse(raw)
		if err != nil {
			return err
		}
		if !u.IsAbs() {
			return ErrInvalidBaseURL
		}
		c.baseURL = u
		return nil
	}
}

// WithAPIKey wires the vault API key into every request as a bearer token.
func WithAPIKey(key string) ClientOption {
	return func(c *Client) error {
		if key == "" {
			return ErrMissingAPIKey
		}
		c.httpClient.Transport = &apiKeyTransport{
			key:  key,
			base: c.httpClient.Transport,
		}
		return nil
	}
}

// WithHTTPClient injects a custom http.Client. Apply before WithAPIKey so
// the auth transport wraps the injected client's transport.
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) error {
		if httpClient == nil {
			return ErrNilHTTPClient
		}
		c.httpClient = httpClient
		return nil
	}
}

// WithTimeout sets a per-request timeout on the underlying http.Client.
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) error {
		if timeout > 0 {
			c.httpClient.Timeout = timeout
		}
		return nil
	}
}

// WithInsecureTLS skips certificate verification. The Local REST API ships
// with a self-signed certificate, so this is on for the default config.
// Apply before WithAPIKey so the auth transport stays outermost.
func WithInsecureTLS(insecure bool) ClientOption {
	return func(c *Client) error {
		if !insecure {
			return nil
		}
		transport, ok := c.httpClient.Transport.(*http.Transport)
		if !ok {
			transport = http.DefaultTransport.(*http.Transport).Clone()
		}
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true}
		c.httpClient.Transport = transport
		return nil
	}
}

// WithLogger registers a logger for request lifecycle events.
func WithLogger(logger Logger) ClientOption {
	return func(c *Client) error {
		c.logger = logger
		return nil
	}
}
