package input

import (
	"errors"
	"fmt"
	"strings"

	"input-object-generator/value"
)

// TypeMismatchError reports a value whose shape disagrees with the expected
// input type.
type TypeMismatchError struct {
	// Expected is the qualified expected type, e.g. "Limited!".
	Expected string
	// Found is the offending value; an absent value is reported as Null.
	Found value.Value
	// Reason optionally narrows the mismatch, e.g. an integer range.
	Reason string
}

func (e *TypeMismatchError) Error() string {
	msg := fmt.Sprintf("expected input type %q, found %s", e.Expected, value.Render(e.Found))
	if e.Reason != "" {
		msg += ": " + e.Reason
	}

	return msg
}

// ExpectedType builds a TypeMismatchError for found.
func ExpectedType(expected string, found value.Value) error {
	return &TypeMismatchError{Expected: expected, Found: value.OrNull(found)}
}

// FieldError wraps the error of a field, or of a flattened nested type, with
// the enclosing field's name.
type FieldError struct {
	Field string
	Err   error
}

// PropagateField tags err with field.
func PropagateField(field string, err error) error {
	return &FieldError{Field: field, Err: err}
}

func (e *FieldError) Error() string {
	path := e.Path()

	var leaf error = e
	for {
		var fe *FieldError
		if !errors.As(leaf, &fe) {
			break
		}

		leaf = fe.Err
	}

	return strings.Join(path, ".") + ": " + leaf.Error()
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// Path returns the field names from the outermost field to the innermost,
// e.g. ["a", "b", "c"].
func (e *FieldError) Path() []string {
	path := []string{e.Field}

	inner := e.Err
	for {
		var fe *FieldError
		if !errors.As(inner, &fe) {
			return path
		}

		path = append(path, fe.Field)
		inner = fe.Err
	}
}
