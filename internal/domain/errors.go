package domain

import (
	"errors"
	"fmt"
)

var (
	ErrMissingField = errors.New("missing field")
	ErrFieldType    = errors.New("invalid field type")
	ErrInvalidTime  = errors.New("invalid time value")
)

// MissingFieldError reports a required field absent from a raw object.
type MissingFieldError struct {
	Entity string
	Field  string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s: missing required field %q", e.Entity, e.Field)
}

func (e *MissingFieldError) Is(target error) bool { return target == ErrMissingField }

// FieldTypeError reports a field whose JSON type does not match the schema.
type FieldTypeError struct {
	Entity string
	Field  string
	Want   string
	Got    any
}

func (e *FieldTypeError) Error() string {
	return fmt.Sprintf("%s: field %q: want %s, got %T", e.Entity, e.Field, e.Want, e.Got)
}

func (e *FieldTypeError) Is(target error) bool { return target == ErrFieldType }

// InvalidTimeError reports a timestamp that is not RFC 3339.
type InvalidTimeError struct {
	Entity string
	Field  string
	Value  string
	Err    error
}

func (e *InvalidTimeError) Error() string {
	return fmt.Sprintf("%s: field %q: invalid time %q: %v", e.Entity, e.Field, e.Value, e.Err)
}

func (e *InvalidTimeError) Is(target error) bool { return target == ErrInvalidTime }

func (e *InvalidTimeError) Unwrap() error { return e.Err }
