package vault

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidBaseURL is returned when the base URL option is missing
	// or not absolute.
	ErrInvalidBaseURL = errors.New("vault: invalid base URL")
	// ErrMissingAPIKey indicates an empty API key was provided.
	ErrMissingAPIKey = errors.New("vault: API key cannot be empty")
	// ErrNilHTTPClient indicates a nil HTTP client was provided.
	ErrNilHTTPClient = errors.New("vault: http client cannot be nil")
)

// NotFoundError indicates the requested file or note does not exist.
type NotFoundError struct {
	Path    string
	Message string
}

func (e *NotFoundError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("vault: %s not found: %s", e.Path, e.Message)
	}
	return fmt.Sprintf("vault: %s not found", e.Path)
}

// APIError represents a non-2xx response from the REST API other than 404.
// ErrorCode carries the server's five-digit error code when the body could
// be decoded.
type APIError struct {
	Status    int
	ErrorCode int
	Message   string
}

func (e *APIError) Error() string {
	if e.ErrorCode != 0 {
		return fmt.Sprintf("vault: api error %d (status %d): %s", e.ErrorCode, e.Status, e.Message)
	}
	return fmt.Sprintf("vault: api error (status %d): %s", e.Status, e.Message)
}

// TransportError wraps a network-level failure reaching the server. It
// always aborts the whole call; there is no automatic retry.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("vault: transport error: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var notFound *NotFoundError
	return errors.As(err, &notFound)
}
