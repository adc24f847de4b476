package tokens

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestDefaultFormat(t *testing.T) {
	assert.Equal(t, "", DefaultFormat(Undefined()))
	assert.Equal(t, "Acme", DefaultFormat(String("Acme")))
	assert.Equal(t, "1234567", DefaultFormat(Scalar(1234567)))
}

func TestLocalizedFormat(t *testing.T) {
	tests := []struct {
		name string
		tag  language.Tag
		v    Value
		want string
	}{
		{"english int", language.English, Scalar(1234567), "1,234,567"},
		{"german int", language.German, Scalar(int64(1234567)), "1.234.567"},
		{"small int", language.English, Scalar(42), "42"},
		{"string untouched", language.English, String("1234567"), "1234567"},
		{"undefined", language.English, Undefined(), ""},
		{"bool", language.German, Scalar(true), "true"},
		{"english float", language.English, Scalar(1234.5), "1,234.5"},
		{"german float", language.German, Scalar(1234.5), "1.234,5"},
		{"whole float", language.English, Scalar(3.0), "3"},
		{"large float", language.English, Scalar(1e21), "1,000,000,000,000,000,000,000"},
		{"small float", language.English, Scalar(0.125), "0.125"},
		{"float32", language.English, Scalar(float32(2.5)), "2.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LocalizedFormat(tt.tag)(tt.v))
		})
	}
}

func TestLocalizedFormat_Replacer(t *testing.T) {
	store := newInitializedStore(t, WithDefaults(Tree{"stats": Mapping(Tree{"users": Scalar(10000)})}))
	r := store.Replacer(WithFormat(LocalizedFormat(language.English)))

	assert.Equal(t, "10,000 users", r.ReplaceString(context.Background(), "[stats:users] users"))
}
