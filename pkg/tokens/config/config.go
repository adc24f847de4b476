package config

// Keys read by token stores.
const (
	KeyDelimiter     = "delimiter"
	KeyDefaults      = "defaults"
	KeySessionID     = "session_id"
	KeyObservability = "observability"
	KeyMetrics       = "metrics"
	KeyTracing       = "tracing"
)

// Config wraps a map[string]any for type-safe value extraction.
// All accessor methods return default values if the key is missing
// or the value cannot be converted to the requested type.
type Config struct {
	data map[string]any
}

// New creates a Config from the given map.
// If data is nil, an empty Config is returned.
func New(data map[string]any) Config {
	if data == nil {
		data = make(map[string]any)
	}
	return Config{data: data}
}

// String returns the string value for key, or defaultVal if missing or not a string.
func (c Config) String(key, defaultVal string) string {
	if s, ok := c.data[key].(string); ok {
		return s
	}
	return defaultVal
}

// Bool returns the boolean value for key, or defaultVal if missing or not a bool.
func (c Config) Bool(key string, defaultVal bool) bool {
	if b, ok := c.data[key].(bool); ok {
		return b
	}
	return defaultVal
}

// Map returns the nested map for key, or nil if missing or not a map.
// YAML documents decoded with map[any]any keys are normalized.
func (c Config) Map(key string) map[string]any {
	return normalizeMap(c.data[key])
}

// Sub returns the nested map for key wrapped as a Config.
func (c Config) Sub(key string) Config {
	return New(c.Map(key))
}

// Has returns true if the key exists in the config.
func (c Config) Has(key string) bool {
	_, ok := c.data[key]
	return ok
}

// Delimiter returns the configured token path delimiter, or defaultVal.
// An empty string is treated as unset.
func (c Config) Delimiter(defaultVal string) string {
	if d := c.String(KeyDelimiter, ""); d != "" {
		return d
	}
	return defaultVal
}

// Defaults returns the configured defaults tree as native data, or nil.
func (c Config) Defaults() map[string]any {
	return c.Map(KeyDefaults)
}

// SessionID returns the configured snapshot session, or "".
func (c Config) SessionID() string {
	return c.String(KeySessionID, "")
}

// Metrics reports whether observability.metrics is enabled.
func (c Config) Metrics() bool {
	return c.Sub(KeyObservability).Bool(KeyMetrics, false)
}

// Tracing reports whether observability.tracing is enabled.
func (c Config) Tracing() bool {
	return c.Sub(KeyObservability).Bool(KeyTracing, false)
}

func normalizeMap(v any) map[string]any {
	switch m := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(m))
		for k, e := range m {
			out[k] = normalizeValue(e)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, e := range m {
			if ks, ok := k.(string); ok {
				out[ks] = normalizeValue(e)
			}
		}
		return out
	}
	return nil
}

func normalizeValue(v any) any {
	switch val := v.(type) {
	case map[string]any, map[any]any:
		return normalizeMap(val)
	case []any:
		out := make([]any, len(val))
		for i, e := range val {
			out[i] = normalizeValue(e)
		}
		return out
	default:
		return v
	}
}
