/*
Package rule holds the declarative units components use to map parameter
values to CSS class tokens and inline style entries.

A Rule is attached to exactly one construct: a component type (class level),
a capability shared by several components (interface level), a single
property, or an enumeration member. Rules are plain values and are never
mutated once they have been declared.

	rule.Prefix("m-")                   // Margin=1      => "m-1"
	rule.Suffix("-lg")                  // Size="btn"    => "btn-lg"
	rule.Bool("text", "text-0")         // Text=false    => "text-0"
	rule.Prefix("m-", rule.Null("m-0")) // Margin=nil    => "m-0"
	rule.Style("max-height")            // MaxHeight=120 => "max-height:120"

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package rule

import (
	"fmt"
	"strings"
)

// Source tells which kind of construct a rule has been attached to.
type Source int8

const (
	PropertyLevel  Source = iota // rule on a single property
	ClassLevel                   // rule on a component type as a whole
	InterfaceLevel               // rule on a capability as a whole
	EnumMember                   // rule on an enumeration member
)

func (s Source) String() string {
	switch s {
	case PropertyLevel:
		return "property"
	case ClassLevel:
		return "class"
	case InterfaceLevel:
		return "interface"
	case EnumMember:
		return "enum"
	}
	return fmt.Sprintf("Source(%d)", int8(s))
}

// Kind is the artifact a rule contributes to.
type Kind int8

const (
	KindCSS   Kind = iota // rule produces class tokens
	KindStyle             // rule produces a style entry
)

// Rule is a declarative unit describing how a value maps to a CSS class
// token or to a style entry.
//
// Empty optional tokens (TrueToken, FalseToken, NullToken) count as "not
// declared".
type Rule struct {
	Token      string // base token, prefix or suffix of the value
	Order      int    // sort key within the class string
	Suffix     bool   // combine as value+Token instead of Token+value
	Source     Source // construct the rule is attached to
	TrueToken  string // token for boolean true; falls back to Token
	FalseToken string // token for boolean false
	NullToken  string // token for absent values
	StyleName  string // style property name; non-empty makes this a style rule
}

// Kind returns KindStyle for rules naming a style property, KindCSS
// otherwise.
func (r Rule) Kind() Kind {
	if r.StyleName != "" {
		return KindStyle
	}
	return KindCSS
}

// Combine joins the base token with a stringified value, respecting the
// prefix/suffix setting.
func (r Rule) Combine(v string) string {
	if r.Suffix {
		return v + r.Token
	}
	return r.Token + v
}

// IsZero is true for a rule which declares nothing at all.
func (r Rule) IsZero() bool {
	return r == Rule{}
}

func (r Rule) String() string {
	if r.Kind() == KindStyle {
		return fmt.Sprintf("style %q", r.StyleName)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s %q", r.Source, r.Token)
	if r.Suffix {
		b.WriteString(" suffix")
	}
	if r.Order != 0 {
		fmt.Fprintf(&b, " order=%d", r.Order)
	}
	if r.TrueToken != "" || r.FalseToken != "" {
		fmt.Fprintf(&b, " bool=%q/%q", r.TrueToken, r.FalseToken)
	}
	if r.NullToken != "" {
		fmt.Fprintf(&b, " null=%q", r.NullToken)
	}
	return b.String()
}

// --- Constructors ----------------------------------------------------------

// Option modifies a rule during construction.
type Option func(*Rule)

// Order sets the sort key of a rule.
func Order(n int) Option {
	return func(r *Rule) {
		r.Order = n
	}
}

// AsSuffix makes the base token a suffix of the value.
func AsSuffix() Option {
	return func(r *Rule) {
		r.Suffix = true
	}
}

// Null declares the token to emit for absent values.
func Null(token string) Option {
	return func(r *Rule) {
		r.NullToken = token
	}
}

// WithBool declares the tokens to emit for boolean values.
func WithBool(trueToken, falseToken string) Option {
	return func(r *Rule) {
		r.TrueToken = trueToken
		r.FalseToken = falseToken
	}
}

func build(r Rule, opts []Option) Rule {
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// Prefix creates a property rule which prepends token to the value.
func Prefix(token string, opts ...Option) Rule {
	return build(Rule{Token: token, Source: PropertyLevel}, opts)
}

// Suffix creates a property rule which appends token to the value.
func Suffix(token string, opts ...Option) Rule {
	return build(Rule{Token: token, Suffix: true, Source: PropertyLevel}, opts)
}

// Bool creates a property rule for boolean values.
// An empty falseToken lets false values contribute nothing.
func Bool(trueToken, falseToken string, opts ...Option) Rule {
	r := Rule{
		Token:      trueToken,
		TrueToken:  trueToken,
		FalseToken: falseToken,
		Source:     PropertyLevel,
	}
	return build(r, opts)
}

// Construct creates a rule which contributes token unconditionally.
// The source is set when the rule is attached to a component type or
// capability.
func Construct(token string, opts ...Option) Rule {
	return build(Rule{Token: token, Source: ClassLevel}, opts)
}

// Style creates a property rule producing the style entry name:value.
func Style(name string) Rule {
	return Rule{StyleName: name, Source: PropertyLevel}
}
