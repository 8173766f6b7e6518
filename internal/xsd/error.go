package xsd

import (
	"errors"
	"fmt"

	"aqwari.net/xml/xmltree"
)

type ErrorKind string

const (
	IOError             ErrorKind = "IOError"
	MalformedDocument   ErrorKind = "MalformedDocument"
	MissingAttribute    ErrorKind = "MissingAttribute"
	StructuralMismatch  ErrorKind = "StructuralMismatch"
	UnsupportedBaseType ErrorKind = "UnsupportedBaseType"
	UnsupportedFacet    ErrorKind = "UnsupportedFacet"
	InvalidNumericFacet ErrorKind = "InvalidNumericFacet"
)

// Error is returned for every failure while loading or classifying a
// schema document. None of them are recoverable.
type Error struct {
	Kind    ErrorKind
	Message string

	// Construct is the tag of the node that was being classified.
	Construct string
	// Name is the missing attribute, the expected construct, the
	// unsupported base type or the facet tag, depending on Kind.
	Name string
	// Value holds the offending facet value for InvalidNumericFacet.
	Value string

	Err error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsKind reports whether err is, or wraps, an *Error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}

func ioError(path string, err error) *Error {
	return &Error{
		Kind:    IOError,
		Message: fmt.Sprintf(`failed to read schema file "%s": %s`, path, err),
		Name:    path,
		Err:     err,
	}
}

func malformedDocument(err error) *Error {
	return &Error{
		Kind:    MalformedDocument,
		Message: fmt.Sprintf(`malformed schema document: %s`, err),
		Err:     err,
	}
}

func missingAttribute(el *xmltree.Element, attribute string) *Error {
	return &Error{
		Kind:      MissingAttribute,
		Message:   fmt.Sprintf(`%s is missing the required attribute "%s"`, describe(el), attribute),
		Construct: el.Name.Local,
		Name:      attribute,
	}
}

func structuralMismatch(el *xmltree.Element, expected string) *Error {
	return &Error{
		Kind:      StructuralMismatch,
		Message:   fmt.Sprintf(`%s does not contain a %s`, describe(el), expected),
		Construct: el.Name.Local,
		Name:      expected,
	}
}

func unsupportedBaseType(name string) *Error {
	return &Error{
		Kind:    UnsupportedBaseType,
		Message: fmt.Sprintf(`unsupported base type "%s"`, name),
		Name:    name,
	}
}

func unsupportedFacet(tag string) *Error {
	return &Error{
		Kind:      UnsupportedFacet,
		Message:   fmt.Sprintf(`unsupported facet "%s"`, tag),
		Construct: "restriction",
		Name:      tag,
	}
}

func invalidNumericFacet(tag, value string, err error) *Error {
	return &Error{
		Kind:      InvalidNumericFacet,
		Message:   fmt.Sprintf(`facet "%s" has a non-integer value "%s"`, tag, value),
		Construct: tag,
		Name:      tag,
		Value:     value,
		Err:       err,
	}
}
