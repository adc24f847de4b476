package tokens

import (
	"log/slog"

	"github.com/randalmurphal/tokens/pkg/tokens/config"
	"github.com/randalmurphal/tokens/pkg/tokens/observability"
)

// DefaultDefaults returns the tree a store resets to when no defaults are
// configured: site name and slogan, both undefined.
func DefaultDefaults() Tree {
	return Tree{
		"site": Mapping(Tree{
			"name":   Undefined(),
			"slogan": Undefined(),
		}),
	}
}

// storeConfig holds configuration for a Store.
type storeConfig struct {
	delimiter  string
	defaults   Tree
	navigation NavigationSource
	sessionID  string
	logger     *slog.Logger
	metrics    observability.MetricsRecorder
	tracing    bool
}

// defaultStoreConfig returns the default store configuration.
func defaultStoreConfig() storeConfig {
	return storeConfig{
		delimiter: DefaultDelimiter,
		defaults:  DefaultDefaults(),
		metrics:   observability.NoopMetrics{},
	}
}

// StoreOption configures a Store.
type StoreOption func(*storeConfig)

// WithDelimiter sets the token path delimiter.
// Default: ":"
//
// An empty delimiter is ignored.
//
// Example:
//
//	store := tokens.NewStore(tokens.WithDelimiter("."))
//	store.Set("site.name", "Acme")
func WithDelimiter(delimiter string) StoreOption {
	return func(c *storeConfig) {
		if delimiter != "" {
			c.delimiter = delimiter
		}
	}
}

// WithDefaults sets the tree the store resets to. The tree is cloned, so
// later changes to the argument do not affect the store.
// Default: DefaultDefaults()
func WithDefaults(defaults Tree) StoreOption {
	return func(c *storeConfig) {
		if defaults == nil {
			defaults = Tree{}
		}
		c.defaults = defaults.Clone()
	}
}

// WithConfig applies the keys of cfg: delimiter, defaults, session_id and
// the observability section. Missing keys keep their current values;
// observability.metrics installs the OpenTelemetry recorder and
// observability.tracing enables tracing on replacers built by Store.Replacer.
//
// Example:
//
//	cfg, _ := config.FromFile("tokens.yaml")
//	store := tokens.NewStore(tokens.WithConfig(cfg))
func WithConfig(cfg config.Config) StoreOption {
	return func(c *storeConfig) {
		c.delimiter = cfg.Delimiter(c.delimiter)
		if cfg.Has(config.KeyDefaults) {
			c.defaults = TreeFromMap(cfg.Defaults())
		}
		if id := cfg.SessionID(); id != "" {
			c.sessionID = id
		}
		if cfg.Metrics() {
			c.metrics = observability.NewMetricsRecorder()
		}
		if cfg.Tracing() {
			c.tracing = true
		}
	}
}

// WithNavigation subscribes the store to navigation signals; every
// navigation start resets the store to its defaults.
func WithNavigation(src NavigationSource) StoreOption {
	return func(c *storeConfig) {
		c.navigation = src
	}
}

// WithSessionID sets the session identifier used to key snapshots.
// Default: a random UUID.
func WithSessionID(id string) StoreOption {
	return func(c *storeConfig) {
		c.sessionID = id
	}
}

// WithLogger sets the structured logger. A nil logger disables logging.
func WithLogger(logger *slog.Logger) StoreOption {
	return func(c *storeConfig) {
		c.logger = logger
	}
}

// WithMetrics sets the metrics recorder.
// Default: observability.NoopMetrics{}
func WithMetrics(m observability.MetricsRecorder) StoreOption {
	return func(c *storeConfig) {
		if m != nil {
			c.metrics = m
		}
	}
}

// replacerConfig holds configuration for a Replacer.
type replacerConfig struct {
	delimiter string
	source    Source
	format    FormatFunc
	logger    *slog.Logger
	metrics   observability.MetricsRecorder
	spans     observability.SpanManager
}

func defaultReplacerConfig() replacerConfig {
	return replacerConfig{
		format:  DefaultFormat,
		metrics: observability.NoopMetrics{},
		spans:   observability.NoopSpanManager{},
	}
}

// ReplacerOption configures a Replacer.
type ReplacerOption func(*replacerConfig)

// WithSource sets the token source used by Replace when no tree or
// replacements are given. The source's delimiter becomes the replacer's
// delimiter unless WithReplacerDelimiter is also given.
func WithSource(src Source) ReplacerOption {
	return func(c *replacerConfig) {
		c.source = src
	}
}

// WithReplacerDelimiter sets the delimiter used to build placeholders.
// Default: the source's delimiter, or ":" without a source.
func WithReplacerDelimiter(delimiter string) ReplacerOption {
	return func(c *replacerConfig) {
		c.delimiter = delimiter
	}
}

// WithFormat sets the hook that renders replacement values.
// Default: DefaultFormat
//
// Example:
//
//	r := store.Replacer(tokens.WithFormat(tokens.LocalizedFormat(language.German)))
func WithFormat(fn FormatFunc) ReplacerOption {
	return func(c *replacerConfig) {
		if fn != nil {
			c.format = fn
		}
	}
}

// WithReplacerLogger sets the structured logger for replace calls.
func WithReplacerLogger(logger *slog.Logger) ReplacerOption {
	return func(c *replacerConfig) {
		c.logger = logger
	}
}

// WithReplacerMetrics sets the metrics recorder for replace calls.
func WithReplacerMetrics(m observability.MetricsRecorder) ReplacerOption {
	return func(c *replacerConfig) {
		if m != nil {
			c.metrics = m
		}
	}
}

// WithTracing enables an OpenTelemetry span per replace call using the
// global tracer provider.
func WithTracing(enabled bool) ReplacerOption {
	return func(c *replacerConfig) {
		if enabled {
			c.spans = observability.NewSpanManager()
		} else {
			c.spans = observability.NoopSpanManager{}
		}
	}
}
