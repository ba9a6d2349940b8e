package activity

import (
	"errors"
	"strings"
)

// ErrNoPendingAction is returned by Confirm when nothing awaits confirmation.
var ErrNoPendingAction = errors.New("no pending action")

// LoadError reports that the stored collection could not be read or decoded.
// The manager's collection is empty after a LoadError.
type LoadError struct {
	Err error
}

func (e *LoadError) Error() string { return "load activities: " + e.Err.Error() }
func (e *LoadError) Unwrap() error { return e.Err }

// SaveError reports that a write-through failed. The in-memory mutation that
// triggered the write has already been applied and is not rolled back.
type SaveError struct {
	Err error
}

func (e *SaveError) Error() string { return "save activities: " + e.Err.Error() }
func (e *SaveError) Unwrap() error { return e.Err }

// ValidationError reports form input that fails the validity predicate.
type ValidationError struct {
	Hints []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Hints, "; ")
}
