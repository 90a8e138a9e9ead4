package cluster

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingMasters means no master addresses could be resolved from the
	// configuration. Fatal: no connection attempt is possible without them.
	ErrMissingMasters = errors.New("master addresses not configured")
	// ErrConnect wraps a construction or connection failure from the
	// underlying client transport.
	ErrConnect = errors.New("failed to connect to cluster")
)

// Error wraps a sentinel error with additional context
type Error struct {
	Err     error  // The underlying sentinel error
	Context string // Additional error context
}

// Error satisfies the error interface
func (e *Error) Error() string {
	if e.Context == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %s", e.Err.Error(), e.Context)
}

// Unwrap implements the errors.Unwrap interface for compatibility with errors.Is/As
func (e *Error) Unwrap() error {
	return e.Err
}

// newError creates a new cluster error with context
func newError(err error, format string, args ...interface{}) *Error {
	return &Error{
		Err:     err,
		Context: fmt.Sprintf(format, args...),
	}
}
