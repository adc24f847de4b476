package tokens

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitPath(t *testing.T) {
	tests := []struct {
		name      string
		path      string
		delimiter string
		want      []string
	}{
		{"single segment", "site", ":", []string{"site"}},
		{"nested", "site:name", ":", []string{"site", "name"}},
		{"custom delimiter", "site.name", ".", []string{"site", "name"}},
		{"other delimiter untouched", "site.name", ":", []string{"site.name"}},
		{"multi-char delimiter", "a::b", "::", []string{"a", "b"}},
		{"empty delimiter", "a:b", "", []string{"a:b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SplitPath(tt.path, tt.delimiter)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSplitPath_Empty(t *testing.T) {
	_, err := SplitPath("", ":")
	assert.ErrorIs(t, err, ErrInvalidPath)
}

func TestPlaceholder(t *testing.T) {
	assert.Equal(t, "[site:name]", Placeholder(":", "site", "name"))
	assert.Equal(t, "[a.b.c]", Placeholder(".", "a", "b", "c"))
	assert.Equal(t, "site:name", JoinPath(":", "site", "name"))
}
