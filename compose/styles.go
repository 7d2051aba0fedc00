package compose

import (
	"strings"

	"github.com/npillmayer/cssattr/style"
)

// Styles accumulates the style entries of one component for one rendering
// pass. The last write for a name wins, the first write determines its
// position. String serializes and resets the accumulator.
type Styles struct {
	m style.Map
}

// NewStyles creates an empty style accumulator.
func NewStyles() *Styles {
	return &Styles{}
}

// Add sets a style entry. Entries with a blank name are dropped.
func (s *Styles) Add(name, value string) *Styles {
	if strings.TrimSpace(name) != "" {
		s.m.Set(name, style.Property(value))
	}
	return s
}

// AddIf sets a style entry if condition holds.
func (s *Styles) AddIf(condition bool, name, value string) *Styles {
	if condition {
		s.Add(name, value)
	}
	return s
}

// Put sets resolved style entries.
func (s *Styles) Put(entries ...style.KeyValue) *Styles {
	for _, kv := range entries {
		s.Add(kv.Key, string(kv.Value))
	}
	return s
}

// Merge sets all entries of m. A nil map fails with ErrInvalidArgument.
func (s *Styles) Merge(m *style.Map) error {
	if m == nil {
		return ErrInvalidArgument
	}
	s.Put(m.Properties()...)
	return nil
}

// Empty is true if nothing has been accumulated since the last call to
// String.
func (s *Styles) Empty() bool {
	return s.m.Len() == 0
}

// Map copies the accumulated entries into a style map, without resetting
// the accumulator.
func (s *Styles) Map() *style.Map {
	return style.NewMap(s.m.Properties()...)
}

// Reset clears the accumulator.
func (s *Styles) Reset() {
	s.m.Clear()
}

// String returns "name:value" pairs separated by ';'. The accumulator is
// reset as a side effect.
func (s *Styles) String() string {
	r := s.m.String()
	s.Reset()
	return r
}
