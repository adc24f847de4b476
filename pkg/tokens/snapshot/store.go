// Package snapshot persists token tree snapshots so token state can outlive
// a process.
package snapshot

import (
	"errors"
	"time"
)

// Store persists serialized token trees keyed by session and name.
// Implementations must be safe for concurrent use.
type Store interface {
	// Save stores a snapshot for a session under a name.
	// Overwrites if a snapshot for (sessionID, name) already exists.
	Save(sessionID, name string, data []byte) error

	// Load retrieves a snapshot.
	// Returns ErrNotFound if the snapshot doesn't exist.
	Load(sessionID, name string) ([]byte, error)

	// List returns all snapshots for a session, ordered by sequence.
	// Returns empty slice (not error) if the session has no snapshots.
	List(sessionID string) ([]Info, error)

	// Delete removes a specific snapshot.
	// Returns nil if the snapshot doesn't exist.
	Delete(sessionID, name string) error

	// DeleteSession removes all snapshots for a session.
	DeleteSession(sessionID string) error

	// Close releases any resources (connections, files).
	Close() error
}

// Info provides metadata without loading the snapshot.
type Info struct {
	SessionID string
	Name      string
	Sequence  int
	Timestamp time.Time
	Size      int64
}

// Sentinel errors for snapshot operations.
var (
	// ErrNotFound indicates a snapshot doesn't exist.
	ErrNotFound = errors.New("snapshot not found")

	// ErrStoreClosed indicates the store has been closed.
	ErrStoreClosed = errors.New("snapshot store closed")
)
