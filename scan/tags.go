package scan

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/npillmayer/cssattr/rule"
)

// Struct tags understood by FromStruct:
//
//	css:"m-,order=1,suffix,null=m-0"  class rule; options are optional
//	cssbool:"text,text-0"             boolean tokens for true/false
//	cssnull:"m-0"                     token for absent values
//	style:"max-height"                style rule
//	html:"title"                      HTML attribute binding ("" = lower-cased field name)
//
// A blank field carries the rules of the type itself:
//
//	_ struct{} `css:"btn" html:"button"`
//
// declares a class-level rule "btn" and the tag name "button".
// Embedded structs carrying any rules are capabilities; `css:"-"` on an
// embedded field excludes it.
const (
	tagCSS     = "css"
	tagBool    = "cssbool"
	tagNull    = "cssnull"
	tagStyle   = "style"
	tagHTML    = "html"
	blankField = "_"
)

type cacheKey struct {
	t     reflect.Type
	level rule.Source
}

var descriptors sync.Map // cacheKey -> *Descriptor

// FromStruct builds the descriptor of a component type from the struct tags
// of its fields. t may be a struct type or a pointer to one. Descriptors
// are cached per type.
//
// Malformed tags are reported as errors. A struct without any tags yields
// an empty descriptor.
//
// Embedded structs which are already being scanned further up, e.g. a type
// embedding a pointer to itself, are skipped. Descriptors of such cyclic
// types are not cached.
func FromStruct(t reflect.Type) (*Descriptor, error) {
	s := &scanner{active: make(map[reflect.Type]bool)}
	return s.fromStruct(t, rule.ClassLevel)
}

// MustFromStruct is like FromStruct but panics on errors.
func MustFromStruct(t reflect.Type) *Descriptor {
	d, err := FromStruct(t)
	if err != nil {
		panic(err)
	}
	return d
}

// Of is a shortcut for FromStruct(reflect.TypeOf(x)).
func Of(x any) (*Descriptor, error) {
	if x == nil {
		return nil, fmt.Errorf("scan: cannot scan nil")
	}
	return FromStruct(reflect.TypeOf(x))
}

// scanner holds the state of one FromStruct call.
type scanner struct {
	active map[reflect.Type]bool // types on the current embedding path
	cuts   int                   // number of embeddings skipped as cyclic
}

func (s *scanner) fromStruct(t reflect.Type, level rule.Source) (*Descriptor, error) {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("scan: type %s is not a struct", t)
	}
	key := cacheKey{t, level}
	if d, ok := descriptors.Load(key); ok {
		return d.(*Descriptor), nil
	}
	s.active[t] = true
	defer delete(s.active, t)
	cuts := s.cuts
	b := Declare(t.Name())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		var err error
		switch {
		case f.Name == blankField:
			err = typeTags(b, f)
		case f.Anonymous:
			err = s.embedded(b, f)
		case !f.IsExported():
			continue
		default:
			err = fieldTags(b, f)
		}
		if err != nil {
			return nil, fmt.Errorf("scan: %s.%s: %w", t.Name(), f.Name, err)
		}
	}
	var d *Descriptor
	if level == rule.InterfaceLevel {
		d = b.Capability()
	} else {
		d = b.Build()
	}
	tracer().P("type", t.Name()).Debugf("scan: built descriptor from struct tags")
	if s.cuts > cuts {
		return d, nil
	}
	actual, _ := descriptors.LoadOrStore(key, d)
	return actual.(*Descriptor), nil
}

func typeTags(b *Builder, f reflect.StructField) error {
	if tag, ok := f.Tag.Lookup(tagCSS); ok {
		r, err := parseCSS(tag)
		if err != nil {
			return err
		}
		b.d.rule = &r
	}
	if tag, ok := f.Tag.Lookup(tagHTML); ok {
		b.Tag(tag)
	}
	return nil
}

func (s *scanner) embedded(b *Builder, f reflect.StructField) error {
	if f.Tag.Get(tagCSS) == "-" {
		return nil
	}
	t := f.Type
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil
	}
	if s.active[t] {
		tracer().P("type", t.Name()).Debugf("scan: skipping cyclic embedding")
		s.cuts++
		return nil
	}
	c, err := s.fromStruct(t, rule.InterfaceLevel)
	if err != nil {
		return err
	}
	if !c.IsEmpty() {
		b.Implements(c)
	}
	return nil
}

func fieldTags(b *Builder, f reflect.StructField) error {
	b.Prop(f.Name)
	var css *rule.Rule
	if tag, ok := f.Tag.Lookup(tagCSS); ok {
		r, err := parseCSS(tag)
		if err != nil {
			return err
		}
		css = &r
	}
	if tag, ok := f.Tag.Lookup(tagBool); ok {
		parts := strings.Split(tag, ",")
		if len(parts) < 2 {
			return fmt.Errorf("tag %s needs true and false tokens, has %q", tagBool, tag)
		}
		if css == nil {
			r := rule.Bool(parts[0], parts[1])
			css = &r
		} else {
			css.TrueToken, css.FalseToken = parts[0], parts[1]
		}
		if err := applyOptions(css, parts[2:]); err != nil {
			return err
		}
	}
	if tag, ok := f.Tag.Lookup(tagNull); ok {
		if css == nil {
			r := rule.Prefix("")
			css = &r
		}
		css.NullToken = tag
	}
	if css != nil {
		b.Prop(f.Name, *css)
	}
	if tag, ok := f.Tag.Lookup(tagStyle); ok {
		if tag == "" {
			return fmt.Errorf("tag %s needs a style property name", tagStyle)
		}
		b.Style(f.Name, tag)
	}
	if tag, ok := f.Tag.Lookup(tagHTML); ok {
		b.Attr(f.Name, tag)
	}
	return nil
}

// parseCSS reads "token,option,option…".
func parseCSS(tag string) (rule.Rule, error) {
	parts := strings.Split(tag, ",")
	r := rule.Prefix(parts[0])
	err := applyOptions(&r, parts[1:])
	return r, err
}

func applyOptions(r *rule.Rule, options []string) error {
	for _, opt := range options {
		key, val, _ := strings.Cut(strings.TrimSpace(opt), "=")
		switch key {
		case "order":
			n, err := strconv.Atoi(val)
			if err != nil {
				return fmt.Errorf("illegal order %q: %w", val, err)
			}
			r.Order = n
		case "suffix":
			r.Suffix = true
		case "null":
			r.NullToken = val
		case "true":
			r.TrueToken = val
		case "false":
			r.FalseToken = val
		case "":
		default:
			return fmt.Errorf("unknown rule option %q", key)
		}
	}
	return nil
}
