package tokens

import (
	"errors"
	"fmt"
)

// Sentinel errors for token store operations.
var (
	// ErrInvalidPath indicates an empty token path was passed to Get, Set or Clear.
	ErrInvalidPath = errors.New("invalid token path")

	// ErrNoSnapshotStore indicates a snapshot operation was called without a store.
	ErrNoSnapshotStore = errors.New("snapshot store is nil")
)

// PathError wraps errors from path-addressed store operations.
type PathError struct {
	// Op is the operation that failed ("get", "set", "clear").
	Op string
	// Path is the token path as passed by the caller.
	Path string
	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *PathError) Error() string {
	return fmt.Sprintf("token %s %q: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *PathError) Unwrap() error {
	return e.Err
}

// SnapshotError wraps errors from snapshot persistence.
type SnapshotError struct {
	// Name is the snapshot name.
	Name string
	// Op is the operation that failed ("encode", "save", "load", "decode").
	Op string
	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *SnapshotError) Error() string {
	return fmt.Sprintf("snapshot %s %q: %v", e.Op, e.Name, e.Err)
}

// Unwrap returns the underlying error.
func (e *SnapshotError) Unwrap() error {
	return e.Err
}
