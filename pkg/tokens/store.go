package tokens

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/randalmurphal/tokens/pkg/tokens/observability"
)

// NavigationSource delivers navigation-start signals. The returned function
// removes the registration.
type NavigationSource interface {
	OnNavigationStart(fn func()) (unsubscribe func())
}

// Source supplies the token tree a Replacer reads when no explicit tree or
// replacements are given.
type Source interface {
	// Snapshot returns a copy of the current tree.
	Snapshot() Tree
	// Delimiter returns the path delimiter used to build placeholders.
	Delimiter() string
}

// Store holds the current token tree, addressed by delimiter-joined paths.
//
// A Store starts empty; Init loads the defaults the first time it is called.
// Store is safe for concurrent use.
type Store struct {
	delimiter string
	defaults  Tree
	sessionID string
	logger    *slog.Logger
	metrics   observability.MetricsRecorder
	tracing   bool

	mu   sync.RWMutex
	tree Tree

	initOnce    sync.Once
	unsubscribe func()
}

// NewStore creates a store with the given options. When WithNavigation is
// given the store subscribes immediately; call Close to unsubscribe.
//
// Example:
//
//	store := tokens.NewStore(tokens.WithDefaults(tokens.Tree{
//	    "site": tokens.Mapping(tokens.Tree{"name": tokens.String("Acme")}),
//	}))
//	_ = store.Init(ctx)
func NewStore(opts ...StoreOption) *Store {
	cfg := defaultStoreConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.sessionID == "" {
		cfg.sessionID = uuid.NewString()
	}

	s := &Store{
		delimiter: cfg.delimiter,
		defaults:  cfg.defaults,
		sessionID: cfg.sessionID,
		logger:    observability.EnrichLogger(cfg.logger, cfg.sessionID, cfg.delimiter),
		metrics:   cfg.metrics,
		tracing:   cfg.tracing,
	}

	if cfg.navigation != nil {
		s.unsubscribe = cfg.navigation.OnNavigationStart(func() {
			s.reset(context.Background(), "navigation")
		})
	}
	return s
}

// Init resets the store to its defaults the first time it is called.
// Later calls do nothing. Init never fails; the error return keeps the
// signature uniform with other lifecycle hooks.
func (s *Store) Init(ctx context.Context) error {
	s.initOnce.Do(func() {
		s.reset(ctx, "init")
		observability.LogStoreInit(s.logger, len(s.defaults))
	})
	return nil
}

// Reset replaces the tree with a fresh copy of the defaults, discarding every
// change made since the last reset.
func (s *Store) Reset() {
	s.reset(context.Background(), "manual")
}

func (s *Store) reset(ctx context.Context, reason string) {
	fresh := s.defaults.Clone()

	s.mu.Lock()
	s.tree = fresh
	s.mu.Unlock()

	s.metrics.RecordReset(ctx, reason)
	observability.LogStoreReset(s.logger, reason)
}

// Get returns the value at path, or def when a segment is missing, an
// intermediate value is not a mapping, or the value is undefined.
// Returns ErrInvalidPath for an empty path.
func (s *Store) Get(path string, def Value) (Value, error) {
	segments, err := SplitPath(path, s.delimiter)
	if err != nil {
		observability.LogPathError(s.logger, "get", err)
		return def, &PathError{Op: "get", Path: path, Err: err}
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := lookup(s.tree, segments)
	if !ok || v.IsUndefined() {
		return def, nil
	}
	return v, nil
}

// Lookup is Get without a default: ok is false when Get would return the
// default.
func (s *Store) Lookup(path string) (v Value, ok bool, err error) {
	v, err = s.Get(path, Undefined())
	return v, err == nil && !v.IsUndefined(), err
}

// GetAll returns the live tree. It is not a copy: later Set, Clear and
// Reset calls are visible through it, and callers must not modify it while
// other goroutines use the store. Use Snapshot for an isolated copy.
func (s *Store) GetAll() Tree {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tree
}

// Snapshot returns a deep copy of the current tree.
func (s *Store) Snapshot() Tree {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tree.Clone()
}

// Set assigns value at path, creating intermediate mappings as needed and
// replacing any non-mapping value found on the way. value is converted with
// FromAny. Returns the updated root tree.
func (s *Store) Set(path string, value any) (Tree, error) {
	return s.set(context.Background(), "set", path, FromAny(value))
}

// Clear sets the value at path to Undefined. The key stays in the tree, so
// flattening still yields a placeholder for it (replaced with "").
func (s *Store) Clear(path string) (Tree, error) {
	return s.set(context.Background(), "clear", path, Undefined())
}

func (s *Store) set(ctx context.Context, op, path string, v Value) (Tree, error) {
	segments, err := SplitPath(path, s.delimiter)
	if err != nil {
		s.metrics.RecordWrite(ctx, op, err)
		observability.LogPathError(s.logger, op, err)
		return nil, &PathError{Op: op, Path: path, Err: err}
	}

	s.mu.Lock()
	if s.tree == nil {
		s.tree = Tree{}
	}
	node := s.tree
	last := len(segments) - 1
	for _, seg := range segments[:last] {
		next, ok := node[seg]
		if !ok || next.Kind() != KindMapping {
			next = Mapping(Tree{})
			node[seg] = next
		}
		node = next.tree
	}
	node[segments[last]] = v
	root := s.tree
	s.mu.Unlock()

	s.metrics.RecordWrite(ctx, op, nil)
	if op == "clear" {
		observability.LogTokenCleared(s.logger, path)
	} else {
		observability.LogTokenSet(s.logger, path, v.Kind().String())
	}
	return root, nil
}

// Delimiter returns the path delimiter.
func (s *Store) Delimiter() string {
	return s.delimiter
}

// SessionID returns the identifier used to key this store's snapshots.
func (s *Store) SessionID() string {
	return s.sessionID
}

// Replacer returns a Replacer that reads this store's tree. It shares the
// store's logger, metrics recorder and tracing setting; opts override them.
func (s *Store) Replacer(opts ...ReplacerOption) *Replacer {
	base := []ReplacerOption{
		WithSource(s),
		WithReplacerLogger(s.logger),
		WithReplacerMetrics(s.metrics),
		WithTracing(s.tracing),
	}
	return NewReplacer(append(base, opts...)...)
}

// Close removes the navigation subscription, if any. The store remains
// usable but no longer resets on navigation.
func (s *Store) Close() error {
	s.mu.Lock()
	unsubscribe := s.unsubscribe
	s.unsubscribe = nil
	s.mu.Unlock()

	if unsubscribe != nil {
		unsubscribe()
	}
	return nil
}

// lookup walks segments from root.
func lookup(root Tree, segments []string) (Value, bool) {
	node := root
	for i, seg := range segments {
		v, ok := node[seg]
		if !ok {
			return Value{}, false
		}
		if i == len(segments)-1 {
			return v, true
		}
		if v.Kind() != KindMapping {
			return Value{}, false
		}
		node = v.tree
	}
	return Value{}, false
}

// Compile-time interface check.
var _ Source = (*Store)(nil)
