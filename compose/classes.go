package compose

import (
	"sort"
	"strings"
)

// Token is a resolved CSS class name together with its sort order.
type Token struct {
	Name  string
	Order int
}

// Classes accumulates the class tokens of one component for one rendering
// pass.
//
// Tokens put with Put are computed tokens: a name put twice keeps its first
// position but takes the order of the later Put. Names added with Add are
// supplementary and follow the computed tokens. String serializes and
// resets the accumulator, so every pass starts from scratch.
type Classes struct {
	tokens []Token
	index  map[string]int // position of a name in tokens
	extra  []string
}

// NewClasses creates an empty class accumulator.
func NewClasses() *Classes {
	return &Classes{}
}

// Put accumulates computed tokens. Blank names are dropped.
func (c *Classes) Put(tokens ...Token) *Classes {
	for _, t := range tokens {
		if strings.TrimSpace(t.Name) == "" {
			continue
		}
		if c.index == nil {
			c.index = make(map[string]int)
		}
		if i, ok := c.index[t.Name]; ok {
			c.tokens[i].Order = t.Order
			continue
		}
		c.index[t.Name] = len(c.tokens)
		c.tokens = append(c.tokens, t)
	}
	return c
}

// Add appends supplementary class names. Blank names are dropped.
func (c *Classes) Add(names ...string) *Classes {
	for _, n := range names {
		if strings.TrimSpace(n) != "" {
			c.extra = append(c.extra, n)
		}
	}
	return c
}

// AddIf appends supplementary class names if condition holds.
func (c *Classes) AddIf(condition bool, names ...string) *Classes {
	if condition {
		c.Add(names...)
	}
	return c
}

// AddList appends all names of a class list as supplementary names.
func (c *Classes) AddList(l ClassList) *Classes {
	return c.Add(l...)
}

// Empty is true if nothing has been accumulated since the last call to
// String.
func (c *Classes) Empty() bool {
	return len(c.tokens) == 0 && len(c.extra) == 0
}

// List converts the accumulated names to a class list, in output order.
// In contrast to String, List does not reset the accumulator.
func (c *Classes) List() ClassList {
	return ClassList(c.names())
}

// Reset clears the accumulator.
func (c *Classes) Reset() {
	c.tokens = c.tokens[:0]
	c.index = nil
	c.extra = c.extra[:0]
}

// String returns the space separated class names: computed tokens sorted
// by order (stable), then supplementary names, each name at most once.
// The accumulator is reset as a side effect; a second call without
// intervening additions yields the empty string.
func (c *Classes) String() string {
	s := strings.Join(c.names(), " ")
	c.Reset()
	return s
}

func (c *Classes) names() []string {
	sorted := make([]Token, len(c.tokens))
	copy(sorted, c.tokens)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Order < sorted[j].Order
	})
	names := make([]string, 0, len(sorted)+len(c.extra))
	seen := make(map[string]struct{}, cap(names))
	add := func(n string) {
		if _, dup := seen[n]; !dup {
			seen[n] = struct{}{}
			names = append(names, n)
		}
	}
	for _, t := range sorted {
		add(t.Name)
	}
	for _, n := range c.extra {
		add(n)
	}
	return names
}
