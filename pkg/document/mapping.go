package document

import "github.com/goccy/go-yaml"

// Mapping is a string-keyed map that remembers insertion order. Merge output
// ordering rules (first source's keys first, then new keys in later sources'
// order) depend on this ordering being stable.
type Mapping struct {
	keys   []string
	values map[string]Value
}

// NewMapping returns an empty ordered mapping.
func NewMapping() *Mapping {
	return &Mapping{values: make(map[string]Value)}
}

// Len returns the number of keys.
func (m *Mapping) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// Keys returns the keys in insertion order. The slice is a copy.
func (m *Mapping) Keys() []string {
	if m == nil {
		return nil
	}
	keys := make([]string, len(m.keys))
	copy(keys, m.keys)
	return keys
}

// Get returns the value stored under key.
func (m *Mapping) Get(key string) (Value, bool) {
	if m == nil {
		return Null(), false
	}
	v, ok := m.values[key]
	return v, ok
}

// Set stores a value, appending the key to the order if it is new.
func (m *Mapping) Set(key string, v Value) {
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = v
}

// Equal reports deep structural equality. Key order is ignored: the same
// entries serialized in a different order are still the same mapping, so
// reordered exports never read as disagreement.
func (m *Mapping) Equal(o *Mapping) bool {
	if m.Len() != o.Len() {
		return false
	}
	for _, key := range m.keys {
		ov, ok := o.Get(key)
		if !ok || !m.values[key].Equal(ov) {
			return false
		}
	}
	return true
}

// Clone returns a deep copy sharing no structure with the receiver.
func (m *Mapping) Clone() *Mapping {
	if m == nil {
		return NewMapping()
	}
	out := &Mapping{
		keys:   make([]string, len(m.keys)),
		values: make(map[string]Value, len(m.values)),
	}
	copy(out.keys, m.keys)
	for key, v := range m.values {
		out.values[key] = v.Clone()
	}
	return out
}

// Interface converts the mapping to yaml.MapSlice, preserving key order.
func (m *Mapping) Interface() yaml.MapSlice {
	if m == nil {
		return nil
	}
	out := make(yaml.MapSlice, 0, len(m.keys))
	for _, key := range m.keys {
		out = append(out, yaml.MapItem{Key: key, Value: m.values[key].Interface()})
	}
	return out
}
