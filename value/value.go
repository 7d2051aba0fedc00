package value

import (
	"fmt"
	"reflect"
	"strings"
)

// Kind classifies a live parameter value.
type Kind int8

const (
	Null       Kind = iota // absent value: nil, nil pointer, nil slice
	Bool                   // bool or a type with underlying bool
	Enum                   // an enumeration member
	Collection             // a multi-valued token collection
	Scalar                 // anything else, stringified
)

func (k Kind) String() string {
	switch k {
	case Null:
		return "Null"
	case Bool:
		return "Bool"
	case Enum:
		return "Enum"
	case Collection:
		return "Collection"
	case Scalar:
		return "Scalar"
	}
	return fmt.Sprintf("Kind(%d)", int8(k))
}

/*
type Value
	= Null
	| Bool bool
	| Enum Member
	| Collection []string
	| Scalar string
*/

// Value is an option type for the live value of a component parameter.
type Value struct {
	kind   Kind
	flag   bool
	member Member
	items  []string
	text   string
}

// Of classifies x.
//
// Pointers are followed, enumeration members are recognized by interface
// Enumerated, collections by interface Tokens or as []string. Types with
// underlying type bool are Bool, even if they implement fmt.Stringer. Other
// values implementing fmt.Stringer are stringified with String(), everything
// else with fmt.Sprint.
func Of(x any) Value {
	if isNil(x) {
		return Value{kind: Null}
	}
	switch v := x.(type) {
	case Enumerated:
		return Value{kind: Enum, member: v.EnumMember()}
	case Tokens:
		return Value{kind: Collection, items: v.TokenList()}
	case []string:
		return Value{kind: Collection, items: v}
	case bool:
		return Value{kind: Bool, flag: v}
	case string:
		return Value{kind: Scalar, text: v}
	}
	rv := reflect.ValueOf(x)
	// named bools are flags, even if they implement fmt.Stringer
	switch {
	case rv.Kind() == reflect.Bool:
		return Value{kind: Bool, flag: rv.Bool()}
	case rv.Kind() == reflect.Pointer && rv.Elem().Kind() == reflect.Bool:
		return Value{kind: Bool, flag: rv.Elem().Bool()}
	}
	if s, ok := x.(fmt.Stringer); ok {
		return Value{kind: Scalar, text: s.String()}
	}
	switch rv.Kind() {
	case reflect.Pointer:
		return Of(rv.Elem().Interface())
	case reflect.Slice:
		if rv.Type().Elem().Kind() == reflect.String {
			items := make([]string, rv.Len())
			for i := range items {
				items[i] = rv.Index(i).String()
			}
			return Value{kind: Collection, items: items}
		}
	}
	return Value{kind: Scalar, text: fmt.Sprint(x)}
}

func isNil(x any) bool {
	if x == nil {
		return true
	}
	rv := reflect.ValueOf(x)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

// Kind returns the classification of v.
func (v Value) Kind() Kind {
	return v.kind
}

func (v Value) String() string {
	switch v.kind {
	case Null:
		return "Null"
	case Bool:
		return fmt.Sprintf("Bool(%v)", v.flag)
	case Enum:
		return fmt.Sprintf("Enum(%s)", v.member.Name)
	case Collection:
		return fmt.Sprintf("Collection(%s)", strings.Join(v.items, " "))
	}
	return fmt.Sprintf("Scalar(%s)", v.text)
}

// --- Matching --------------------------------------------------------------

// Match returns a matcher for v. Clients use it as
//
//	var flag bool
//	switch m := v.Match(); m {
//	case m.Null():
//	    …
//	case m.Bool(&flag):
//	    …
//	}
func (v Value) Match() *Matcher {
	return &Matcher{v: v}
}

// Matcher destructures a Value. Every method returns the matcher itself if
// the value is of the requested kind, and nil otherwise.
type Matcher struct {
	v Value
}

// Null matches absent values.
func (m *Matcher) Null() *Matcher {
	if m.v.kind == Null {
		return m
	}
	return nil
}

// Bool matches booleans and stores the flag in b, if b is non-nil.
func (m *Matcher) Bool(b *bool) *Matcher {
	if m.v.kind == Bool {
		if b != nil {
			*b = m.v.flag
		}
		return m
	}
	return nil
}

// Enum matches enumeration members.
func (m *Matcher) Enum(member *Member) *Matcher {
	if m.v.kind == Enum {
		if member != nil {
			*member = m.v.member
		}
		return m
	}
	return nil
}

// Collection matches token collections.
func (m *Matcher) Collection(items *[]string) *Matcher {
	if m.v.kind == Collection {
		if items != nil {
			*items = m.v.items
		}
		return m
	}
	return nil
}

// Scalar matches every other non-null value and stores its string form.
func (m *Matcher) Scalar(s *string) *Matcher {
	if m.v.kind == Scalar {
		if s != nil {
			*s = m.v.text
		}
		return m
	}
	return nil
}
