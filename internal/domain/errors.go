package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrDocumentNotFound signals a missing document.
	ErrDocumentNotFound = errors.New("document not found")
	// ErrDuplicateID signals two documents sharing one identifier.
	ErrDuplicateID = errors.New("duplicate document id")
	// ErrInvalidDocument signals a document that fails validation.
	ErrInvalidDocument = errors.New("invalid document")
	// ErrInvalidArguments signals tool arguments that fail schema validation.
	ErrInvalidArguments = errors.New("invalid arguments")
)

// ArgumentError wraps ErrInvalidArguments with the offending field.
type ArgumentError struct {
	Field  string
	Reason string
}

func (e *ArgumentError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s: %s", ErrInvalidArguments.Error(), e.Reason)
	}
	return fmt.Sprintf("%s: %s: %s", ErrInvalidArguments.Error(), e.Field, e.Reason)
}

func (e *ArgumentError) Unwrap() error { return ErrInvalidArguments }

// NewArgumentError creates an argument validation error.
func NewArgumentError(field, reason string) error {
	return &ArgumentError{Field: field, Reason: reason}
}
