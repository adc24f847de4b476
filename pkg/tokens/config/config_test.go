package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/randalmurphal/tokens/pkg/tokens/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestString verifies string extraction with defaults.
func TestString(t *testing.T) {
	tests := []struct {
		name       string
		data       map[string]any
		key        string
		defaultVal string
		want       string
	}{
		{"key exists", map[string]any{"name": "alice"}, "name", "default", "alice"},
		{"key missing", map[string]any{"other": "value"}, "name", "default", "default"},
		{"empty string", map[string]any{"name": ""}, "name", "default", ""},
		{"wrong type int", map[string]any{"name": 123}, "name", "default", "default"},
		{"nil map", nil, "name", "default", "default"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New(tt.data)
			assert.Equal(t, tt.want, cfg.String(tt.key, tt.defaultVal))
		})
	}
}

// TestBool verifies boolean extraction with defaults.
func TestBool(t *testing.T) {
	tests := []struct {
		name       string
		data       map[string]any
		defaultVal bool
		want       bool
	}{
		{"true", map[string]any{"on": true}, false, true},
		{"false", map[string]any{"on": false}, true, false},
		{"missing", map[string]any{}, true, true},
		{"wrong type string", map[string]any{"on": "yes"}, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, config.New(tt.data).Bool("on", tt.defaultVal))
		})
	}
}

// TestObservabilitySettings verifies the nested observability switches.
func TestObservabilitySettings(t *testing.T) {
	cfg, err := config.FromYAML([]byte(`
session_id: checkout
observability:
  metrics: true
  tracing: false
`))
	require.NoError(t, err)

	assert.Equal(t, "checkout", cfg.SessionID())
	assert.True(t, cfg.Metrics())
	assert.False(t, cfg.Tracing())

	empty := config.New(nil)
	assert.Empty(t, empty.SessionID())
	assert.False(t, empty.Metrics())
	assert.False(t, empty.Tracing())

	// A scalar where a section is expected reads as unset.
	flat := config.New(map[string]any{"observability": true})
	assert.False(t, flat.Tracing())
}

// TestTokenSettings verifies delimiter and defaults extraction.
func TestTokenSettings(t *testing.T) {
	t.Run("configured", func(t *testing.T) {
		cfg := config.New(map[string]any{
			"delimiter": ".",
			"defaults": map[string]any{
				"site": map[any]any{"name": "Acme", "tags": []any{map[any]any{"k": "v"}}},
			},
		})

		assert.Equal(t, ".", cfg.Delimiter(":"))
		assert.Equal(t, map[string]any{
			"site": map[string]any{
				"name": "Acme",
				"tags": []any{map[string]any{"k": "v"}},
			},
		}, cfg.Defaults())
		assert.Equal(t, "Acme", cfg.Sub("defaults").Sub("site").String("name", ""))
	})

	t.Run("unset", func(t *testing.T) {
		cfg := config.New(map[string]any{"delimiter": ""})

		assert.Equal(t, ":", cfg.Delimiter(":"))
		assert.Nil(t, cfg.Defaults())
		assert.True(t, cfg.Has("delimiter"))
		assert.False(t, cfg.Has("defaults"))
	})
}

func TestFromYAML(t *testing.T) {
	cfg, err := config.FromYAML([]byte(`
delimiter: "|"
defaults:
  site:
    name: Acme
    slogan: ~
`))
	require.NoError(t, err)

	assert.Equal(t, "|", cfg.Delimiter(":"))
	site := cfg.Sub("defaults").Map("site")
	assert.Equal(t, "Acme", site["name"])
	assert.Contains(t, site, "slogan")
	assert.Nil(t, site["slogan"])
}

func TestFromYAML_Invalid(t *testing.T) {
	_, err := config.FromYAML([]byte("delimiter: [unclosed"))
	assert.Error(t, err)
}

func TestFromJSON(t *testing.T) {
	cfg, err := config.FromJSON([]byte(`{"delimiter": "/", "defaults": {"a": {"b": 1}}}`))
	require.NoError(t, err)

	assert.Equal(t, "/", cfg.Delimiter(":"))
	assert.Equal(t, map[string]any{"a": map[string]any{"b": 1.0}}, cfg.Defaults())
}

func TestFromFile(t *testing.T) {
	dir := t.TempDir()

	yamlPath := filepath.Join(dir, "tokens.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte("delimiter: ':'\n"), 0o600))
	cfg, err := config.FromFile(yamlPath)
	require.NoError(t, err)
	assert.Equal(t, ":", cfg.Delimiter("."))

	jsonPath := filepath.Join(dir, "tokens.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(`{"delimiter": "."}`), 0o600))
	cfg, err = config.FromFile(jsonPath)
	require.NoError(t, err)
	assert.Equal(t, ".", cfg.Delimiter(":"))

	txtPath := filepath.Join(dir, "tokens.txt")
	require.NoError(t, os.WriteFile(txtPath, []byte("x"), 0o600))
	_, err = config.FromFile(txtPath)
	assert.ErrorContains(t, err, "unsupported config file extension")

	_, err = config.FromFile(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
