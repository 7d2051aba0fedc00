package compose

import (
	"errors"
	"fmt"
	"strings"

	"github.com/npillmayer/cssattr/value"
)

// ErrInvalidArgument flags nil arguments to constructors and merge
// operations.
var ErrInvalidArgument = errors.New("compose: invalid argument")

// ClassList is an explicitly supplied collection of CSS class names.
// As a component parameter it either overrides the computed class string
// completely or supplements it.
type ClassList []string

// NewClassList creates a class list from strings, enumeration members or any
// other values implementing fmt.Stringer (e.g. value.Class). A nil item
// fails with ErrInvalidArgument.
func NewClassList(items ...any) (ClassList, error) {
	l := make(ClassList, 0, len(items))
	for i, x := range items {
		if value.Of(x).Kind() == value.Null {
			return nil, fmt.Errorf("%w: class list item #%d is nil", ErrInvalidArgument, i)
		}
		l = append(l, value.NewClass(x).String())
	}
	return l, nil
}

// ParseClassList splits a class attribute value at white space.
func ParseClassList(s string) ClassList {
	return ClassList(strings.Fields(s))
}

// TokenList makes a class list usable as a collection-valued parameter.
func (l ClassList) TokenList() []string {
	return l
}

// Len returns the number of names in l.
func (l ClassList) Len() int {
	return len(l)
}

// String joins the names of l with a single space.
func (l ClassList) String() string {
	return strings.Join(l, " ")
}

var _ value.Tokens = ClassList{}
