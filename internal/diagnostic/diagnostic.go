package diagnostic

import (
	"errors"
	"fmt"
	"strings"
)

// Severity represents the severity level of a diagnostic message
type Severity int

const (
	Error Severity = iota
	Warning
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case Error:
		return "error"
	case Warning:
		return "warning"
	default:
		return "unknown"
	}
}

// Diagnostic is a single message produced while translating a module
type Diagnostic struct {
	Severity Severity
	Message  string
	Line     int
	Column   int
	Subject  string // declaration the message is about, if any
	Hint     string // optional suggestion
}

// Diagnostics manages a collection of diagnostic messages
type Diagnostics struct {
	items []Diagnostic
}

// New creates a new empty Diagnostics collection
func New() *Diagnostics {
	return &Diagnostics{
		items: make([]Diagnostic, 0),
	}
}

// Recovered records a conversion failure that was replaced by a stub.
// A conversion error contributes its position to the diagnostic and only
// its kind and description to the message.
func (d *Diagnostics) Recovered(subject string, err error) {
	item := Diagnostic{
		Severity: Warning,
		Message:  err.Error(),
		Subject:  subject,
		Hint:     "translated as an axiom",
	}
	var ce *ConvError
	if errors.As(err, &ce) {
		item.Message = ce.Kind.String() + ": " + ce.Description
		item.Line, item.Column = ce.Line, ce.Column
	}
	d.items = append(d.items, item)
}

// All returns all diagnostics regardless of severity
func (d *Diagnostics) All() []Diagnostic {
	return d.items
}

// WarningCount returns the number of warning-level diagnostics
func (d *Diagnostics) WarningCount() int {
	count := 0
	for _, item := range d.items {
		if item.Severity == Warning {
			count++
		}
	}
	return count
}

// Format returns human-readable messages
// Output format:
//
//	warning[module:3:10]: foo: unsupported: binary operators
//	  hint: translated as an axiom
func (d *Diagnostics) Format(module string) string {
	if len(d.items) == 0 {
		return ""
	}

	var builder strings.Builder
	for i, item := range d.items {
		builder.WriteString(fmt.Sprintf("%s[%s:%d:%d]: ",
			item.Severity.String(),
			module,
			item.Line,
			item.Column,
		))
		if item.Subject != "" {
			builder.WriteString(item.Subject + ": ")
		}
		builder.WriteString(item.Message)

		if item.Hint != "" {
			builder.WriteString(fmt.Sprintf("\n  hint: %s", item.Hint))
		}

		// Add newline unless it's the last item
		if i < len(d.items)-1 {
			builder.WriteString("\n")
		}
	}

	return builder.String()
}
