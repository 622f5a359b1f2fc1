// ABOUTME: Request failure error type for the REST client.
// ABOUTME: Non-2xx responses and transport errors both match ErrRequestFailed.
package api

import (
	"errors"
	"fmt"
)

var (
	// ErrRequestFailed matches every failed backend call via errors.Is.
	ErrRequestFailed = errors.New("request failed")
	// ErrNotFound is returned when the backend answers an entity lookup with null.
	ErrNotFound = errors.New("not found")
)

// Error describes one failed backend call.
type Error struct {
	Op         string
	Method     string
	Path       string
	StatusCode int
	Status     string
	Body       string
	Err        error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s %s: %v", e.Method, e.Path, e.Err)
	}
	if e.Body != "" {
		return fmt.Sprintf("%s %s: %s - %s", e.Method, e.Path, e.Status, e.Body)
	}
	return fmt.Sprintf("%s %s: %s", e.Method, e.Path, e.Status)
}

// Is reports whether target is ErrRequestFailed.
func (e *Error) Is(target error) bool {
	return target == ErrRequestFailed
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsStatus reports whether err is an *Error carrying the given HTTP status code.
func IsStatus(err error, code int) bool {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == code
	}
	return false
}
