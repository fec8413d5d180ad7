// Package document models scorecard documents as trees of tagged values.
// A document is an ordered mapping of sections to nested mappings, sequences,
// and scalars. The tagged Value variant lets the merge engine pattern-match
// exhaustively on node shape instead of relying on ad-hoc type assertions,
// and the ordered Mapping preserves the key order of the uploaded files.
package document

import (
	"sort"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"
)

// Kind identifies the shape of a Value.
type Kind int

// Value kinds, covering every node shape a scorecard document can contain.
const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindSequence
	KindMapping
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindSequence:
		return "sequence"
	case KindMapping:
		return "mapping"
	default:
		return "unknown"
	}
}

// Value is one node of a scorecard document: a scalar, a sequence, or an
// ordered mapping. The zero Value is null.
type Value struct {
	kind Kind
	b    bool
	num  float64
	str  string
	seq  []Value
	m    *Mapping
}

// Null returns the null value.
func Null() Value {
	return Value{kind: KindNull}
}

// Bool returns a boolean value.
func Bool(b bool) Value {
	return Value{kind: KindBool, b: b}
}

// Number returns a numeric value.
func Number(n float64) Value {
	return Value{kind: KindNumber, num: n}
}

// String returns a string value.
func String(s string) Value {
	return Value{kind: KindString, str: s}
}

// Sequence returns a sequence value holding the given items.
func Sequence(items ...Value) Value {
	return Value{kind: KindSequence, seq: items}
}

// FromMapping wraps an ordered mapping as a value.
func FromMapping(m *Mapping) Value {
	if m == nil {
		m = NewMapping()
	}
	return Value{kind: KindMapping, m: m}
}

// Kind returns the shape tag of the value.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether the value is null.
func (v Value) IsNull() bool { return v.kind == KindNull }

// Bool returns the boolean payload. Valid only for KindBool.
func (v Value) Bool() bool { return v.b }

// Number returns the numeric payload. Valid only for KindNumber.
func (v Value) Number() float64 { return v.num }

// Text returns the string payload. Valid only for KindString.
func (v Value) Text() string { return v.str }

// Items returns the sequence payload. Valid only for KindSequence.
// The returned slice must not be mutated.
func (v Value) Items() []Value { return v.seq }

// Mapping returns the mapping payload. Valid only for KindMapping.
func (v Value) Mapping() *Mapping { return v.m }

// Equal reports deep structural equality. Values of different kinds are
// never equal: the number 100000 and the string "100000" are distinct,
// which keeps genuine unit mismatches visible as conflicts.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindNull:
		return true
	case KindBool:
		return v.b == o.b
	case KindNumber:
		return v.num == o.num
	case KindString:
		return v.str == o.str
	case KindSequence:
		if len(v.seq) != len(o.seq) {
			return false
		}
		for i := range v.seq {
			if !v.seq[i].Equal(o.seq[i]) {
				return false
			}
		}
		return true
	case KindMapping:
		return v.m.Equal(o.m)
	default:
		return false
	}
}

// Clone returns a deep copy sharing no nested structure with the receiver.
func (v Value) Clone() Value {
	switch v.kind {
	case KindSequence:
		items := make([]Value, len(v.seq))
		for i := range v.seq {
			items[i] = v.seq[i].Clone()
		}
		return Value{kind: KindSequence, seq: items}
	case KindMapping:
		return Value{kind: KindMapping, m: v.m.Clone()}
	default:
		return v
	}
}

// String renders the value for display in conflict reports and logs.
// Integral numbers render without a fractional part.
func (v Value) String() string {
	switch v.kind {
	case KindNull:
		return "null"
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindNumber:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	case KindString:
		return v.str
	case KindSequence:
		parts := make([]string, len(v.seq))
		for i := range v.seq {
			parts[i] = v.seq[i].String()
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case KindMapping:
		parts := make([]string, 0, v.m.Len())
		for _, key := range v.m.keys {
			val := v.m.values[key]
			parts = append(parts, key+": "+val.String())
		}
		return "{" + strings.Join(parts, ", ") + "}"
	default:
		return ""
	}
}

// Interface converts the value back to plain Go data for serialization.
// Mappings become yaml.MapSlice so key order survives marshaling, and
// integral numbers become int64 so they round-trip without a decimal point.
func (v Value) Interface() any {
	switch v.kind {
	case KindNull:
		return nil
	case KindBool:
		return v.b
	case KindNumber:
		if v.num == float64(int64(v.num)) {
			return int64(v.num)
		}
		return v.num
	case KindString:
		return v.str
	case KindSequence:
		items := make([]any, len(v.seq))
		for i := range v.seq {
			items[i] = v.seq[i].Interface()
		}
		return items
	case KindMapping:
		return v.m.Interface()
	default:
		return nil
	}
}

// FromInterface converts decoded YAML/JSON data into a tagged Value.
// yaml.MapSlice inputs keep their key order; plain map inputs are ordered
// by sorted key as a deterministic fallback.
func FromInterface(x any) Value {
	switch t := x.(type) {
	case nil:
		return Null()
	case bool:
		return Bool(t)
	case int:
		return Number(float64(t))
	case int64:
		return Number(float64(t))
	case uint64:
		return Number(float64(t))
	case float32:
		return Number(float64(t))
	case float64:
		return Number(t)
	case string:
		return String(t)
	case []any:
		items := make([]Value, len(t))
		for i := range t {
			items[i] = FromInterface(t[i])
		}
		return Sequence(items...)
	case yaml.MapSlice:
		m := NewMapping()
		for _, item := range t {
			key, ok := item.Key.(string)
			if !ok {
				continue
			}
			m.Set(key, FromInterface(item.Value))
		}
		return FromMapping(m)
	case map[string]any:
		keys := make([]string, 0, len(t))
		for key := range t {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		m := NewMapping()
		for _, key := range keys {
			m.Set(key, FromInterface(t[key]))
		}
		return FromMapping(m)
	default:
		return Null()
	}
}
