package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// ErrNotFound marks a lookup miss. A miss is an expected outcome,
	// callers branch on it with errors.Is rather than treating it as a
	// failure.
	ErrNotFound         = errors.New("resource not found")
	ErrProtocolNotFound = fmt.Errorf("%w: protocol", ErrNotFound)

	// ErrSchema marks a record that does not satisfy the protocol
	// record shape. Detected at load time, never deferred to render.
	ErrSchema = errors.New("schema violation")
)

// SchemaError reports a malformed or incomplete protocol record,
// identifying the offending slug and field.
type SchemaError struct {
	Slug  string
	Field string
	Msg   string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("schema violation in record %q, field %q: %s", e.Slug, e.Field, e.Msg)
}

func (e *SchemaError) Unwrap() error {
	return ErrSchema
}

// NewSchemaError constructs a SchemaError for the given record field.
func NewSchemaError(slug, field, format string, args ...interface{}) *SchemaError {
	return &SchemaError{Slug: slug, Field: field, Msg: fmt.Sprintf(format, args...)}
}

// NewNotFoundError reports a missing protocol by slug.
func NewNotFoundError(slug Slug) error {
	return fmt.Errorf("%w with slug %s", ErrProtocolNotFound, slug)
}

// IsNotFoundError checks whether err is a lookup miss.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsSchemaError checks whether err is a record shape violation.
func IsSchemaError(err error) bool {
	return errors.Is(err, ErrSchema)
}
