package core

import "errors"

// ErrNotFound is a sentinel error for "not found" cases
var ErrNotFound = errors.New("not found")

// ErrNotConfigured is a sentinel error for collaborators that are not set up.
// It is distinct from an empty result: "no tasks" and "no task tracker" must
// never be conflated.
var ErrNotConfigured = errors.New("not configured")

// IsNotConfiguredError checks if an error is a "not configured" error
func IsNotConfiguredError(err error) bool {
	return err != nil && errors.Is(err, ErrNotConfigured)
}
