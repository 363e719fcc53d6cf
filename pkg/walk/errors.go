// SPDX-License-Identifier: MPL-2.0

package walk

import (
	"errors"
	"fmt"
)

var (
	// ErrLevelNotFound is matched by LevelNotFoundError.
	ErrLevelNotFound = errors.New("level not found")
	// ErrTraversal is matched by TraversalError.
	ErrTraversal = errors.New("level traversal failed")
)

type (
	// LevelNotFoundError is returned when a requested level does not resolve
	// to an existing directory. It is fatal for the whole walk.
	LevelNotFoundError struct {
		// Level is the level identifier as supplied by the caller.
		Level string
		// Err is the filesystem error, nil when the path exists but is not a directory.
		Err error
	}

	// TraversalError is returned when a filesystem request other than the
	// level lookup fails (e.g. permission denied while listing a directory).
	TraversalError struct {
		Level string
		Path  string
		Op    string
		Err   error
	}
)

// Error implements the error interface.
func (e *LevelNotFoundError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("level %q not found: %v", e.Level, e.Err)
	}
	return fmt.Sprintf("level %q not found: not a directory", e.Level)
}

// Is reports whether target is ErrLevelNotFound.
func (e *LevelNotFoundError) Is(target error) bool { return target == ErrLevelNotFound }

// Unwrap returns the underlying filesystem error.
func (e *LevelNotFoundError) Unwrap() error { return e.Err }

// Error implements the error interface.
func (e *TraversalError) Error() string {
	return fmt.Sprintf("level %q: %s %s: %v", e.Level, e.Op, e.Path, e.Err)
}

// Is reports whether target is ErrTraversal.
func (e *TraversalError) Is(target error) bool { return target == ErrTraversal }

// Unwrap returns the underlying filesystem error.
func (e *TraversalError) Unwrap() error { return e.Err }
