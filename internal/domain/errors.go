package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for common error conditions.
var (
	// ErrNoIdentifier indicates that a paper has no valid identifier.
	ErrNoIdentifier = errors.New("no identifier")

	// ErrUnsupportedDocument indicates a document root the requested operation cannot handle.
	ErrUnsupportedDocument = errors.New("unsupported document")
)

// UnsupportedDocumentError names the root element an operation could not handle.
type UnsupportedDocumentError struct {
	Operation string
	Root      string
}

// Error implements the error interface.
func (e *UnsupportedDocumentError) Error() string {
	return fmt.Sprintf("%s: unsupported document <%s>", e.Operation, e.Root)
}

// Unwrap returns the underlying sentinel error for use with errors.Is.
func (e *UnsupportedDocumentError) Unwrap() error {
	return ErrUnsupportedDocument
}

// NewUnsupportedDocumentError creates a new UnsupportedDocumentError.
func NewUnsupportedDocumentError(operation, root string) *UnsupportedDocumentError {
	return &UnsupportedDocumentError{
		Operation: operation,
		Root:      root,
	}
}
