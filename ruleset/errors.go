package ruleset

import (
	"fmt"
)

// ParseError is a YAML decoding failure.
type ParseError struct {
	Path string // file name, if any
	Line int    // 0 if unknown
	Err  error
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}
	path := e.Path
	if path == "" {
		path = "<input>"
	}
	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %v", path, e.Line, e.Err)
	}
	return fmt.Sprintf("parse error: %s: %v", path, e.Err)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError is a rule set violating the schema or referencing
// undeclared names.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

func newValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
