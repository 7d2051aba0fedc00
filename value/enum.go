package value

import (
	"fmt"
	"strings"
)

// Member describes one member of an enumeration.
//
// Token is the CSS token attached to the member. Members without a token
// are rendered as their lower-cased name.
type Member struct {
	Name  string
	Token string
}

// CSSToken returns the token of the member, falling back to the
// lower-cased member name.
func (m Member) CSSToken() string {
	if m.Token != "" {
		return m.Token
	}
	return strings.ToLower(m.Name)
}

// Enumerated is implemented by enumeration types whose members carry
// presentation tokens.
type Enumerated interface {
	EnumMember() Member
}

// Tokens is implemented by multi-valued token collections.
type Tokens interface {
	TokenList() []string
}

// Enumeration is a member table for an integer-based enumeration type.
// Entry i describes the member with value i. It is the usual way to
// implement Enumerated:
//
//	type Size int
//	const ( SM Size = iota; LG )
//	var sizes = value.Enumeration[Size]{{Name: "SM", Token: "sm"}, {Name: "LG"}}
//	func (s Size) EnumMember() value.Member { return sizes.Member(s) }
type Enumeration[T ~int | ~int8 | ~int16 | ~int32 | ~uint | ~uint8 | ~uint16] []Member

// Member returns the table entry for x, or the zero member if x is out of
// range.
func (e Enumeration[T]) Member(x T) Member {
	i := int(x)
	if i < 0 || i >= len(e) {
		return Member{}
	}
	return e[i]
}

// Lookup finds a member by name, ignoring case.
func (e Enumeration[T]) Lookup(name string) (T, bool) {
	for i, m := range e {
		if strings.EqualFold(m.Name, name) {
			return T(i), true
		}
	}
	return T(0), false
}

// --- Class ----------------------------------------------------------------

// Class wraps a single CSS class, given either as a string or as an
// enumeration member. Types embedding Class inherit its String method:
//
//	type Color struct{ value.Class }
//	var Primary = Color{value.NewClass("primary")}
type Class struct {
	name any
}

// NewClass wraps x as a CSS class.
func NewClass(x any) Class {
	return Class{name: x}
}

// String returns the class name. Enumeration members are rendered by their
// token.
func (c Class) String() string {
	switch n := c.name.(type) {
	case nil:
		return ""
	case string:
		return n
	case Enumerated:
		return n.EnumMember().CSSToken()
	case fmt.Stringer:
		return n.String()
	}
	return fmt.Sprint(c.name)
}
