package tokens

import (
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// FormatFunc turns a replacement value into the text substituted for its
// placeholder.
type FormatFunc func(Value) string

// DefaultFormat returns v.String(): undefined values become the empty string.
func DefaultFormat(v Value) string {
	return v.String()
}

// LocalizedFormat returns a FormatFunc that renders numeric scalars with the
// digit grouping and decimal separator of tag (1234567 -> "1,234,567" for
// English, "1.234.567" for German). Floats keep the fraction digits of their
// shortest form and are never written in exponent notation. Other values use
// DefaultFormat.
func LocalizedFormat(tag language.Tag) FormatFunc {
	p := message.NewPrinter(tag)
	return func(v Value) string {
		switch n := v.Raw().(type) {
		case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
			return p.Sprintf("%d", n)
		case float32:
			return p.Sprintf(floatVerb(float64(n), 32), n)
		case float64:
			return p.Sprintf(floatVerb(n, 64), n)
		default:
			return DefaultFormat(v)
		}
	}
}

// floatVerb returns a %f verb with as many fraction digits as the shortest
// decimal form of f.
func floatVerb(f float64, bitSize int) string {
	s := strconv.FormatFloat(f, 'f', -1, bitSize)
	digits := 0
	if i := strings.IndexByte(s, '.'); i >= 0 {
		digits = len(s) - i - 1
	}
	return "%." + strconv.Itoa(digits) + "f"
}
