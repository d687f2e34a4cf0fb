package parser

import (
	"fmt"
)

// ErrUnsupportedElement indicates an element name outside the supported
// GML 2.1.1 geometry vocabulary, or an element in the wrong namespace.
type ErrUnsupportedElement struct {
	Name string
}

func (e *ErrUnsupportedElement) Error() string {
	return fmt.Sprintf("unsupported GML element: %s", e.Name)
}

// ErrTruncatedElement indicates the document ended before an element's
// expected terminating end tag was seen. Err holds the tokenizer error
// that cut the document short, io.EOF for clean truncation.
type ErrTruncatedElement struct {
	Element string
	Err     error
}

func (e *ErrTruncatedElement) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("document ended inside %s element: %v", e.Element, e.Err)
	}
	return fmt.Sprintf("document ended inside %s element", e.Element)
}

func (e *ErrTruncatedElement) Unwrap() error {
	return e.Err
}

// ErrInvalidCoordinateText indicates coordinate text that cannot be
// parsed as a number.
type ErrInvalidCoordinateText struct {
	Text string
	Err  error
}

func (e *ErrInvalidCoordinateText) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid coordinate value %q: %v", e.Text, e.Err)
	}
	return fmt.Sprintf("invalid coordinate value %q", e.Text)
}

func (e *ErrInvalidCoordinateText) Unwrap() error {
	return e.Err
}

// ErrDepthExceeded indicates geometry nesting beyond the configured
// limit. Deeply nested collections in untrusted input fail here instead
// of exhausting the call stack.
type ErrDepthExceeded struct {
	Limit int
}

func (e *ErrDepthExceeded) Error() string {
	return fmt.Sprintf("geometry nesting exceeds limit of %d", e.Limit)
}
