package style

import (
	"strings"
)

// Property is a raw value for a style property. For example, with
//
//	max-height:120px
//
// a property value of "120px" is set.
type Property string

// NullStyle is an empty property value.
const NullStyle Property = ""

func (p Property) String() string {
	return string(p)
}

// IsEmpty checks wether a property is empty, i.e. the null-string.
func (p Property) IsEmpty() bool {
	return p == ""
}

// KeyValue is a container for a style property, the unit of an inline
// style string.
type KeyValue struct {
	Key   string
	Value Property
}

func (kv KeyValue) String() string {
	return kv.Key + ":" + string(kv.Value)
}

// --- Property maps ---------------------------------------------------------

// Map is an ordered collection of style properties. Setting a key twice
// overwrites the value but keeps the position of the first insertion.
//
// The zero value is an empty map ready to use.
type Map struct {
	keys  []string
	props map[string]Property
}

// NewMap creates a map pre-filled with properties, in order.
func NewMap(kv ...KeyValue) *Map {
	m := &Map{}
	for _, p := range kv {
		m.Set(p.Key, p.Value)
	}
	return m
}

// Set a property's value. Overwrites an existing value, if present.
func (m *Map) Set(key string, p Property) {
	if m.props == nil {
		m.props = make(map[string]Property)
	}
	if _, exists := m.props[key]; !exists {
		m.keys = append(m.keys, key)
	}
	m.props[key] = p
}

// Add a property's value. Does not overwrite an existing value, i.e., does nothing
// if a value is already set.
func (m *Map) Add(key string, p Property) {
	if _, exists := m.props[key]; exists {
		return
	}
	m.Set(key, p)
}

// Get a property's value.
func (m *Map) Get(key string) (Property, bool) {
	if m == nil || m.props == nil {
		return NullStyle, false
	}
	p, ok := m.props[key]
	return p, ok
}

// Len returns the number of properties in m.
func (m *Map) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// Properties returns all properties of m in insertion order.
func (m *Map) Properties() []KeyValue {
	if m == nil {
		return nil
	}
	r := make([]KeyValue, len(m.keys))
	for i, k := range m.keys {
		r[i] = KeyValue{k, m.props[k]}
	}
	return r
}

// Clear removes all properties.
func (m *Map) Clear() {
	m.keys = m.keys[:0]
	m.props = nil
}

// String serializes m as an inline style, i.e. "name:value;name:value".
// An empty map yields the empty string.
func (m *Map) String() string {
	if m.Len() == 0 {
		return ""
	}
	var b strings.Builder
	for i, k := range m.keys {
		if i > 0 {
			b.WriteByte(';')
		}
		b.WriteString(k)
		b.WriteByte(':')
		b.WriteString(string(m.props[k]))
	}
	return b.String()
}
