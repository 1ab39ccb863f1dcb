package api

import (
	"errors"
	"fmt"
)

// Sentinel errors shared across layers.
var (
	// ErrAuthRequired means the action needs a resolved identity that is
	// absent. No request is issued when it is returned.
	ErrAuthRequired = errors.New("login required")
	// ErrNotFound is returned for 404 responses.
	ErrNotFound = errors.New("not found")
)

// StatusError is a non-2xx response carrying the server's structured
// error message.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("server error %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("server error %d", e.StatusCode)
}

// ParseError means a response body failed to decode as JSON when JSON
// was expected. It is a distinct failure kind, never silently coerced
// into a server error.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid JSON response: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
