package diagnostic

import (
	"errors"
	"fmt"
)

// Kind classifies why a conversion failed
type Kind int

const (
	// UnsupportedConstruct is valid input outside the translated subset
	UnsupportedConstruct Kind = iota
	// MalformedInput is a shape a well-formed front end should not produce
	MalformedInput
	// RejectedRecursion is a recursion shape the emitter cannot encode
	RejectedRecursion
)

// String returns the string representation of the kind
func (k Kind) String() string {
	switch k {
	case UnsupportedConstruct:
		return "unsupported"
	case MalformedInput:
		return "malformed"
	case RejectedRecursion:
		return "rejected recursion"
	default:
		return "unknown"
	}
}

// ConvError is the error returned by every conversion function
type ConvError struct {
	Kind        Kind
	Description string
	Line        int
	Column      int
}

func (e *ConvError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s (line %d, col %d): %s", e.Kind, e.Line, e.Column, e.Description)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Description)
}

// Unsupported reports a construct outside the supported subset
func Unsupported(description string) *ConvError {
	return &ConvError{Kind: UnsupportedConstruct, Description: description}
}

// Malformed reports internally inconsistent input
func Malformed(description string) *ConvError {
	return &ConvError{Kind: MalformedInput, Description: description}
}

// Rejected reports a recursion shape that cannot be encoded
func Rejected(description string) *ConvError {
	return &ConvError{Kind: RejectedRecursion, Description: description}
}

// At attaches a source position to the error, keeping any position it
// already has
func (e *ConvError) At(line, col int) *ConvError {
	if e.Line == 0 {
		e.Line, e.Column = line, col
	}
	return e
}

// KindOf extracts the conversion error kind from err, if any
func KindOf(err error) (Kind, bool) {
	var ce *ConvError
	if errors.As(err, &ce) {
		return ce.Kind, true
	}
	return 0, false
}

// Is reports whether err is a conversion error of the given kind and
// description
func Is(err error, kind Kind, description string) bool {
	var ce *ConvError
	if !errors.As(err, &ce) {
		return false
	}
	return ce.Kind == kind && ce.Description == description
}
