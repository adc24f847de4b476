package tokens

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Kind identifies which variant a Value holds.
type Kind uint8

const (
	// KindUndefined marks the absence of a value. The zero Value is undefined.
	KindUndefined Kind = iota
	// KindScalar holds a string, bool, integer, or float.
	KindScalar
	// KindSequence holds an ordered list of values. Sequences are leaves
	// when flattening a token tree.
	KindSequence
	// KindMapping holds a nested Tree.
	KindMapping
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindUndefined:
		return "undefined"
	case KindScalar:
		return "scalar"
	case KindSequence:
		return "sequence"
	case KindMapping:
		return "mapping"
	default:
		return "unknown"
	}
}

// Tree is a nested mapping from string keys to values.
// Trees are plain data and must not contain cycles.
type Tree map[string]Value

// Value is a token value: undefined, a scalar, a sequence, or a mapping.
//
// Sequences and mappings share their backing storage when a Value is copied,
// so replacing members of a composite Value mutates the caller's data.
type Value struct {
	kind   Kind
	scalar any
	items  []Value
	tree   Tree
}

// Undefined returns the undefined value.
func Undefined() Value {
	return Value{}
}

// String returns a scalar string value.
func String(s string) Value {
	return Value{kind: KindScalar, scalar: s}
}

// Scalar wraps a string, bool, integer, or float. A nil argument yields
// Undefined. Any other type is stored as-is and formatted with fmt.
func Scalar(v any) Value {
	if v == nil {
		return Undefined()
	}
	return Value{kind: KindScalar, scalar: v}
}

// Sequence returns a sequence of the given items.
func Sequence(items ...Value) Value {
	if items == nil {
		items = []Value{}
	}
	return Value{kind: KindSequence, items: items}
}

// Mapping wraps a tree. A nil tree is replaced by an empty one.
func Mapping(t Tree) Value {
	if t == nil {
		t = Tree{}
	}
	return Value{kind: KindMapping, tree: t}
}

// FromAny converts native Go data into a Value.
//
// Conversion rules:
//   - nil: Undefined
//   - Value: returned as-is
//   - Tree, map[string]any, map[string]string: Mapping (copied into a new Tree)
//   - []Value: Sequence sharing the slice
//   - []any, []string: Sequence (copied)
//   - anything else: Scalar
func FromAny(v any) Value {
	switch val := v.(type) {
	case nil:
		return Undefined()
	case Value:
		return val
	case Tree:
		return Mapping(val)
	case map[string]any:
		t := make(Tree, len(val))
		for k, e := range val {
			t[k] = FromAny(e)
		}
		return Mapping(t)
	case map[string]string:
		t := make(Tree, len(val))
		for k, e := range val {
			t[k] = String(e)
		}
		return Mapping(t)
	case []Value:
		return Sequence(val...)
	case []any:
		items := make([]Value, len(val))
		for i, e := range val {
			items[i] = FromAny(e)
		}
		return Sequence(items...)
	case []string:
		items := make([]Value, len(val))
		for i, e := range val {
			items[i] = String(e)
		}
		return Sequence(items...)
	default:
		return Scalar(val)
	}
}

// TreeFromMap converts a map[string]any into a Tree.
func TreeFromMap(m map[string]any) Tree {
	if m == nil {
		return Tree{}
	}
	return FromAny(m).tree
}

// Kind returns the variant held by v.
func (v Value) Kind() Kind {
	return v.kind
}

// IsUndefined reports whether v holds no value.
func (v Value) IsUndefined() bool {
	return v.kind == KindUndefined
}

// Raw returns the scalar payload, or nil for non-scalars.
func (v Value) Raw() any {
	if v.kind != KindScalar {
		return nil
	}
	return v.scalar
}

// Items returns the members of a sequence, or nil.
func (v Value) Items() []Value {
	if v.kind != KindSequence {
		return nil
	}
	return v.items
}

// Tree returns the nested tree of a mapping, or nil.
func (v Value) Tree() Tree {
	if v.kind != KindMapping {
		return nil
	}
	return v.tree
}

// Any converts v back into native Go data: map[string]any, []any, the
// scalar payload, or nil for undefined.
func (v Value) Any() any {
	switch v.kind {
	case KindScalar:
		return v.scalar
	case KindSequence:
		out := make([]any, len(v.items))
		for i, item := range v.items {
			out[i] = item.Any()
		}
		return out
	case KindMapping:
		return v.tree.Any()
	default:
		return nil
	}
}

// Clone returns a deep copy of v.
func (v Value) Clone() Value {
	switch v.kind {
	case KindSequence:
		items := make([]Value, len(v.items))
		for i, item := range v.items {
			items[i] = item.Clone()
		}
		return Value{kind: KindSequence, items: items}
	case KindMapping:
		return Value{kind: KindMapping, tree: v.tree.Clone()}
	default:
		return v
	}
}

// String returns the canonical string form of v.
//
// Undefined is the empty string, floats use the shortest representation
// ("1.5", "3"), sequences are joined with "," and mappings render as JSON.
func (v Value) String() string {
	switch v.kind {
	case KindScalar:
		return scalarString(v.scalar)
	case KindSequence:
		parts := make([]string, len(v.items))
		for i, item := range v.items {
			parts[i] = item.String()
		}
		return strings.Join(parts, ",")
	case KindMapping:
		data, err := json.Marshal(v.tree)
		if err != nil {
			return ""
		}
		return string(data)
	default:
		return ""
	}
}

func scalarString(s any) string {
	switch val := s.(type) {
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(val), 'f', -1, 32)
	case fmt.Stringer:
		return val.String()
	default:
		return fmt.Sprintf("%v", val)
	}
}

// MarshalJSON encodes v. Undefined encodes as null.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindScalar:
		return json.Marshal(v.scalar)
	case KindSequence:
		return json.Marshal(v.items)
	case KindMapping:
		return json.Marshal(v.tree)
	default:
		return []byte("null"), nil
	}
}

// UnmarshalJSON decodes v. null decodes as Undefined; integral numbers
// decode as int64 and other numbers as float64.
func (v *Value) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var raw any
	if err := dec.Decode(&raw); err != nil {
		return err
	}
	*v = fromJSON(raw)
	return nil
}

func fromJSON(raw any) Value {
	switch val := raw.(type) {
	case nil:
		return Undefined()
	case json.Number:
		if i, err := val.Int64(); err == nil {
			return Scalar(i)
		}
		f, _ := val.Float64()
		return Scalar(f)
	case map[string]any:
		t := make(Tree, len(val))
		for k, e := range val {
			t[k] = fromJSON(e)
		}
		return Mapping(t)
	case []any:
		items := make([]Value, len(val))
		for i, e := range val {
			items[i] = fromJSON(e)
		}
		return Sequence(items...)
	default:
		return Scalar(val)
	}
}

// Clone returns a deep copy of t. A nil tree clones to nil.
func (t Tree) Clone() Tree {
	if t == nil {
		return nil
	}
	out := make(Tree, len(t))
	for k, v := range t {
		out[k] = v.Clone()
	}
	return out
}

// Any converts t into a map[string]any.
func (t Tree) Any() map[string]any {
	out := make(map[string]any, len(t))
	for k, v := range t {
		out[k] = v.Any()
	}
	return out
}

// Keys returns the keys of t in sorted order.
func (t Tree) Keys() []string {
	keys := make([]string, 0, len(t))
	for k := range t {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
