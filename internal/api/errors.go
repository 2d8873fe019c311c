package api

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrUnexpectedShape indicates a response that decoded but lacks what the operation needs.
var ErrUnexpectedShape = errors.New("unexpected response shape")

// ErrNotFound matches (via errors.Is) an APIError for a missing resource.
var ErrNotFound = errors.New("not found")

// ErrEmptyKey is returned when a lookup key is blank after trimming.
var ErrEmptyKey = errors.New("empty word key")

// TransportError is a network level failure: DNS, refused connection, timeout, cancelled context.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: request failed: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// APIError is a response from the service with success=false or a non-2xx status.
type APIError struct {
	Op         string
	StatusCode int
	Message    string // server supplied, may be empty
	// NotFound marks a success=false envelope that the operation reads as a
	// missing resource even though the status was not 404.
	NotFound bool
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: %s (HTTP %d)", e.Op, e.Message, e.StatusCode)
	}
	return fmt.Sprintf("%s: API error (HTTP %d)", e.Op, e.StatusCode)
}

func (e *APIError) Is(target error) bool {
	return target == ErrNotFound && (e.NotFound || e.StatusCode == http.StatusNotFound)
}

// ServerMessage extracts the server supplied message from err, if any.
func ServerMessage(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return ""
}

func shapeError(op, detail string) error {
	return fmt.Errorf("%s: %w: %s", op, ErrUnexpectedShape, detail)
}
