package style

import (
	"errors"
	"fmt"
	"strings"

	"github.com/aymerick/douceur/parser"
)

// ErrInvalidFormat is the error class for malformed inline style strings.
var ErrInvalidFormat = errors.New("style: invalid format")

// FormatError reports the fragment of an inline style string which could not
// be parsed.
type FormatError struct {
	Fragment string
	Err      error // underlying parser error, if any
}

func (e *FormatError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("style: %q does not match 'name:value': %v", e.Fragment, e.Err)
	}
	return fmt.Sprintf("style: %q does not match 'name:value'", e.Fragment)
}

// Unwrap makes FormatError match ErrInvalidFormat with errors.Is.
func (e *FormatError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrInvalidFormat, e.Err}
	}
	return []error{ErrInvalidFormat}
}

// Parse reads an inline style string of the form
//
//	name:value;name:value;...
//
// into a Map. Declarations are parsed with the douceur CSS parser; a
// fragment without a ':' separator fails with a *FormatError.
// Empty fragments, e.g. from a trailing ';', are ignored.
func Parse(text string) (*Map, error) {
	m := &Map{}
	for _, fragment := range strings.Split(text, ";") {
		if strings.TrimSpace(fragment) == "" {
			continue
		}
		if !strings.Contains(fragment, ":") {
			tracer().Debugf("style: missing separator in %q", fragment)
			return nil, &FormatError{Fragment: fragment}
		}
		decls, err := parser.ParseDeclarations(fragment + ";")
		if err != nil {
			return nil, &FormatError{Fragment: fragment, Err: err}
		}
		if len(decls) != 1 || decls[0].Property == "" {
			return nil, &FormatError{Fragment: fragment}
		}
		d := decls[0]
		v := d.Value
		if d.Important {
			v += " !important"
		}
		m.Set(d.Property, Property(v))
	}
	return m, nil
}

// MustParse is like Parse but panics on malformed input. It simplifies the
// declaration of static style tables.
func MustParse(text string) *Map {
	m, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return m
}
