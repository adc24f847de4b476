package tokens

import (
	"context"
	"encoding/json"

	"github.com/randalmurphal/tokens/pkg/tokens/observability"
	"github.com/randalmurphal/tokens/pkg/tokens/snapshot"
)

// SaveSnapshot persists the current tree under name for this store's
// session. Undefined values are kept, so cleared keys survive a restore.
func (s *Store) SaveSnapshot(ctx context.Context, ss snapshot.Store, name string) error {
	if ss == nil {
		return ErrNoSnapshotStore
	}

	data, err := json.Marshal(s.Snapshot())
	if err != nil {
		observability.LogSnapshotError(s.logger, name, "encode", err)
		return &SnapshotError{Name: name, Op: "encode", Err: err}
	}

	if err := ss.Save(s.sessionID, name, data); err != nil {
		observability.LogSnapshotError(s.logger, name, "save", err)
		return &SnapshotError{Name: name, Op: "save", Err: err}
	}

	s.metrics.RecordSnapshot(ctx, name, int64(len(data)))
	observability.LogSnapshotSaved(s.logger, name, len(data))
	return nil
}

// RestoreSnapshot replaces the current tree with the snapshot saved under
// name. The defaults are not touched: the next Reset discards the restored
// values like any other change. Returns an error wrapping
// snapshot.ErrNotFound when no such snapshot exists.
func (s *Store) RestoreSnapshot(_ context.Context, ss snapshot.Store, name string) error {
	if ss == nil {
		return ErrNoSnapshotStore
	}

	data, err := ss.Load(s.sessionID, name)
	if err != nil {
		observability.LogSnapshotError(s.logger, name, "load", err)
		return &SnapshotError{Name: name, Op: "load", Err: err}
	}

	var tree Tree
	if err := json.Unmarshal(data, &tree); err != nil {
		observability.LogSnapshotError(s.logger, name, "decode", err)
		return &SnapshotError{Name: name, Op: "decode", Err: err}
	}
	if tree == nil {
		tree = Tree{}
	}

	s.mu.Lock()
	s.tree = tree
	s.mu.Unlock()

	observability.LogSnapshotRestored(s.logger, name)
	return nil
}

// ListSnapshots returns the snapshots saved for this store's session.
func (s *Store) ListSnapshots(ss snapshot.Store) ([]snapshot.Info, error) {
	if ss == nil {
		return nil, ErrNoSnapshotStore
	}
	return ss.List(s.sessionID)
}
