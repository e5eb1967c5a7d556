package medline

import (
	"errors"
	"fmt"
)

// Sentinel errors for the record contract.
var (
	// ErrMalformedXML indicates the input is not well-formed XML or has the wrong root element.
	ErrMalformedXML = errors.New("malformed xml")

	// ErrMissingRequiredField indicates a required element or attribute is absent.
	ErrMissingRequiredField = errors.New("missing required field")

	// ErrInvalidEnumValue indicates an attribute value outside its closed set.
	ErrInvalidEnumValue = errors.New("invalid enum value")

	// ErrIndexOutOfRange indicates a list index outside the current child count.
	ErrIndexOutOfRange = errors.New("index out of range")
)

// MalformedXMLError wraps an error reported by the XML layer.
type MalformedXMLError struct {
	Cause error
}

// Error implements the error interface.
func (e *MalformedXMLError) Error() string {
	return fmt.Sprintf("malformed xml: %v", e.Cause)
}

// Unwrap exposes both the sentinel and the XML layer's error.
func (e *MalformedXMLError) Unwrap() []error {
	return []error{ErrMalformedXML, e.Cause}
}

// MissingRequiredFieldError names the absent field and the element that should contain it.
type MissingRequiredFieldError struct {
	// Type is the enclosing element name.
	Type string
	// Field is the missing element or attribute name.
	Field string
	// Path locates the field from the document root, e.g.
	// PubmedArticleSet.PubmedArticle[1].MedlineCitation.PMID.
	Path string
}

// Error implements the error interface.
func (e *MissingRequiredFieldError) Error() string {
	return fmt.Sprintf("%s: missing required field %s (%s)", e.Type, e.Field, e.Path)
}

// Unwrap returns the underlying sentinel error for use with errors.Is.
func (e *MissingRequiredFieldError) Unwrap() error {
	return ErrMissingRequiredField
}

// InvalidEnumValueError reports an attribute value outside its closed set.
type InvalidEnumValueError struct {
	Type      string
	Attribute string
	Value     string
	Path      string
}

// Error implements the error interface.
func (e *InvalidEnumValueError) Error() string {
	return fmt.Sprintf("%s: invalid value %q for attribute %s (%s)", e.Type, e.Value, e.Attribute, e.Path)
}

// Unwrap returns the underlying sentinel error for use with errors.Is.
func (e *InvalidEnumValueError) Unwrap() error {
	return ErrInvalidEnumValue
}

// IndexOutOfRangeError reports a list access outside [0, Len).
type IndexOutOfRangeError struct {
	Index int
	Len   int
}

// Error implements the error interface.
func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("index %d out of range [0, %d)", e.Index, e.Len)
}

// Unwrap returns the underlying sentinel error for use with errors.Is.
func (e *IndexOutOfRangeError) Unwrap() error {
	return ErrIndexOutOfRange
}
