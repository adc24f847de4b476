package tokens

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/randalmurphal/tokens/pkg/tokens/observability"
)

// Replacements maps placeholders ("[site:name]") to the values substituted
// for them.
type Replacements map[string]Value

// Placeholders returns the placeholders in the order they are applied.
func (r Replacements) Placeholders() []string {
	keys := make([]string, 0, len(r))
	for k := range r {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Replacer substitutes placeholders in strings and nested values.
//
// Create with NewReplacer or Store.Replacer. Replacer is safe for concurrent
// use after construction; it keeps no reference to a tree between calls.
type Replacer struct {
	delimiter string
	source    Source
	format    FormatFunc
	logger    *slog.Logger
	metrics   observability.MetricsRecorder
	spans     observability.SpanManager
}

// NewReplacer creates a Replacer with the given options.
//
// Default configuration:
//   - Delimiter: the source's, or ":" without a source
//   - Format: DefaultFormat
//   - Source: none (Replace substitutes nothing)
func NewReplacer(opts ...ReplacerOption) *Replacer {
	cfg := defaultReplacerConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	delimiter := cfg.delimiter
	if delimiter == "" && cfg.source != nil {
		delimiter = cfg.source.Delimiter()
	}
	if delimiter == "" {
		delimiter = DefaultDelimiter
	}

	return &Replacer{
		delimiter: delimiter,
		source:    cfg.source,
		format:    cfg.format,
		logger:    cfg.logger,
		metrics:   cfg.metrics,
		spans:     cfg.spans,
	}
}

// Delimiter returns the delimiter used to build placeholders.
func (r *Replacer) Delimiter() string {
	return r.delimiter
}

// Generate flattens tree into placeholder/value pairs.
//
// Mappings are descended with the key appended to the path. Every other
// value (scalar, undefined, or sequence) yields one entry keyed by
// "[" + path + "]". Sequences are not descended, so no index placeholders
// exist. If two paths join to the same placeholder, the one visited last in
// sorted key order wins.
//
// Example:
//
//	r.Generate(tokens.Tree{"a": tokens.Mapping(tokens.Tree{"b": tokens.String("X")})})
//	// Replacements{"[a:b]": "X"}
func (r *Replacer) Generate(tree Tree) Replacements {
	out := make(Replacements)
	r.flatten(out, tree, nil)
	return out
}

func (r *Replacer) flatten(out Replacements, tree Tree, path []string) {
	for _, key := range tree.Keys() {
		v := tree[key]
		p := append(path[:len(path):len(path)], key)
		switch v.Kind() {
		case KindMapping:
			r.flatten(out, v.tree, p)
		case KindUndefined, KindScalar, KindSequence:
			out[Placeholder(r.delimiter, p...)] = v
		}
	}
}

// Replace substitutes placeholders in input using a snapshot of the
// replacer's source. Without a source, strings are returned unchanged apart
// from scalar-to-string conversion.
//
// Rules, shared by every Replace variant:
//   - An undefined input is returned unchanged, also as a member of a composite.
//   - Mappings and sequences are replaced member by member in place and the
//     same container is returned; the caller's data is mutated.
//   - Any other input is converted to its string form, then every occurrence
//     of every placeholder is replaced, in sorted placeholder order, with the
//     formatted value (undefined values format to "").
func (r *Replacer) Replace(ctx context.Context, input Value) Value {
	var tree Tree
	if r.source != nil {
		tree = r.source.Snapshot()
	}
	return r.ReplaceWith(ctx, input, r.Generate(tree))
}

// ReplaceTree substitutes placeholders in input using the flattened tree.
func (r *Replacer) ReplaceTree(ctx context.Context, input Value, tree Tree) Value {
	return r.ReplaceWith(ctx, input, r.Generate(tree))
}

// ReplaceWith substitutes placeholders in input using repl directly.
func (r *Replacer) ReplaceWith(ctx context.Context, input Value, repl Replacements) Value {
	if input.IsUndefined() {
		return input
	}

	var out Value
	r.instrument(ctx, input.Kind().String(), repl, func(sub *substitution) {
		out = sub.value(input)
	})
	return out
}

// ReplaceString substitutes placeholders in s using the replacer's source.
func (r *Replacer) ReplaceString(ctx context.Context, s string) string {
	return r.Replace(ctx, String(s)).String()
}

// ReplaceAny substitutes placeholders in native Go data using the
// replacer's source. Maps and slices of any, string or Value, and Trees,
// are mutated in place and returned; nil is returned unchanged; any other
// value is returned as a string.
func (r *Replacer) ReplaceAny(ctx context.Context, input any) any {
	if input == nil {
		return nil
	}
	var tree Tree
	if r.source != nil {
		tree = r.source.Snapshot()
	}

	var out any
	r.instrument(ctx, "native", r.Generate(tree), func(sub *substitution) {
		out = sub.native(input)
	})
	return out
}

// instrument runs apply inside a replace span and records the call.
func (r *Replacer) instrument(ctx context.Context, inputKind string, repl Replacements, apply func(*substitution)) {
	done := observability.TimedOperation()
	ctx, span := r.spans.StartReplaceSpan(ctx, inputKind, len(repl))

	sub := &substitution{pairs: r.pairs(repl)}
	apply(sub)
	r.spans.AddSpanEvent(ctx, "tokens.substituted", attribute.Int("substitutions", sub.hits))

	r.spans.EndSpanWithError(span, nil)
	durationMs := done()
	r.metrics.RecordReplace(ctx, len(repl), time.Duration(durationMs*float64(time.Millisecond)))
	observability.LogReplace(r.logger, len(repl), durationMs)
}

// pair is a placeholder and its formatted replacement.
type pair struct {
	placeholder string
	text        string
}

func (r *Replacer) pairs(repl Replacements) []pair {
	pairs := make([]pair, 0, len(repl))
	for _, ph := range repl.Placeholders() {
		pairs = append(pairs, pair{placeholder: ph, text: r.format(repl[ph])})
	}
	return pairs
}

// substitution applies pairs to one input and counts replaced occurrences.
type substitution struct {
	pairs []pair
	hits  int
}

func (s *substitution) value(v Value) Value {
	switch v.Kind() {
	case KindUndefined:
		return v
	case KindMapping:
		s.tree(v.tree)
		return v
	case KindSequence:
		s.values(v.items)
		return v
	default:
		return String(s.text(v.String()))
	}
}

func (s *substitution) tree(t Tree) {
	for k, member := range t {
		t[k] = s.value(member)
	}
}

func (s *substitution) values(items []Value) {
	for i, member := range items {
		items[i] = s.value(member)
	}
}

func (s *substitution) native(v any) any {
	switch val := v.(type) {
	case nil:
		return nil
	case map[string]any:
		for k, member := range val {
			val[k] = s.native(member)
		}
		return val
	case []any:
		for i, member := range val {
			val[i] = s.native(member)
		}
		return val
	case map[string]string:
		for k, member := range val {
			val[k] = s.text(member)
		}
		return val
	case []string:
		for i, member := range val {
			val[i] = s.text(member)
		}
		return val
	case Tree:
		s.tree(val)
		return val
	case []Value:
		s.values(val)
		return val
	case Value:
		return s.value(val)
	default:
		return s.text(Scalar(val).String())
	}
}

// text replaces every occurrence of each placeholder in turn.
func (s *substitution) text(str string) string {
	for _, p := range s.pairs {
		if n := strings.Count(str, p.placeholder); n > 0 {
			s.hits += n
			str = strings.ReplaceAll(str, p.placeholder, p.text)
		}
	}
	return str
}
