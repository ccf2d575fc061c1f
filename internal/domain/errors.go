package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for schema conformance failures.
var (
	ErrUnknownTag          = errors.New("unknown tag")
	ErrStructuralViolation = errors.New("structural violation")
	ErrValidation          = errors.New("validation error")
)

// TagError reports an element that the grammar does not allow under its parent.
type TagError struct {
	Parent string
	Tag    string
}

func (e *TagError) Error() string {
	return fmt.Sprintf("unknown tag in <%s>: <%s>", e.Parent, e.Tag)
}

func (e *TagError) Unwrap() error { return ErrUnknownTag }

// StructureError reports a scalar field that holds nested markup or no text.
type StructureError struct {
	Tag    string
	Reason string
}

func (e *StructureError) Error() string {
	return fmt.Sprintf("structural violation in <%s>: %s", e.Tag, e.Reason)
}

func (e *StructureError) Unwrap() error { return ErrStructuralViolation }

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

// EntryError locates a failure at a zero-based position under the document root.
// Seq holds the entry's ent_seq when it could be read, otherwise it is empty.
type EntryError struct {
	Index int
	Seq   string
	Err   error
}

func (e *EntryError) Error() string {
	if e.Seq != "" {
		return fmt.Sprintf("entry %d (ent_seq %s): %v", e.Index, e.Seq, e.Err)
	}
	return fmt.Sprintf("entry %d: %v", e.Index, e.Err)
}

func (e *EntryError) Unwrap() error { return e.Err }
