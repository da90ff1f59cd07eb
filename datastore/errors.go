package datastore

import (
	"errors"
	"fmt"
)

// Sentinel errors for the two caller-visible failure categories that do not
// originate in the fetch port. Wrap them with context and match with
// errors.Is.
var (
	// ErrNotFound reports that the backing source has no record for the
	// requested key.
	ErrNotFound = errors.New("record not found")

	// ErrInvalidArgument reports caller misuse, such as a zero page size.
	// Calls failing with it are never retried.
	ErrInvalidArgument = errors.New("invalid argument")
)

// NetworkError reports a transport-level fetch failure: the request never
// produced a response.
type NetworkError struct {
	URL string
	Err error
}

// Error implements the error interface.
func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error fetching %s: %v", e.URL, e.Err)
}

// Unwrap exposes the transport cause for errors.Is/errors.As matching.
func (e *NetworkError) Unwrap() error {
	return e.Err
}

// ServerError reports a response the source answered with a failure status.
type ServerError struct {
	URL        string
	StatusCode int
}

// Error implements the error interface.
func (e *ServerError) Error() string {
	return fmt.Sprintf("server returned status %d for %s", e.StatusCode, e.URL)
}
