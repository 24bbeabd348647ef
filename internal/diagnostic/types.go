package diagnostic

import (
	"errors"
	"fmt"
	"strings"
)

// Diagnostics holds everything collected during one load.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity Severity
	// Code is a unique identifier for this type of diagnostic.
	Code string
	// Message is the human-readable description.
	Message string
	// File is the input file the diagnostic relates to (if any).
	File string
	// Row is the 1-based data row within File, 0 when not row-specific.
	Row int
	// Name is the entity the row belongs to, when known.
	Name string
}

// Severity represents the severity level of a diagnostic.
type Severity int

const (
	SeverityWarning Severity = iota
	SeverityError
)

// String returns a human-readable severity name.
func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// AddError adds an error diagnostic.
func (d *Diagnostics) AddError(code, message, file string, row int, name string) {
	d.Errors = append(d.Errors, Diagnostic{
		Severity: SeverityError,
		Code:     code,
		Message:  message,
		File:     file,
		Row:      row,
		Name:     name,
	})
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code, message, file string, row int, name string) {
	d.Warnings = append(d.Warnings, Diagnostic{
		Severity: SeverityWarning,
		Code:     code,
		Message:  message,
		File:     file,
		Row:      row,
		Name:     name,
	})
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// Merge merges another Diagnostics instance into this one.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
}

// Error returns a combined error from all error diagnostics, or nil.
func (d *Diagnostics) Error() error {
	if !d.HasErrors() {
		return nil
	}

	var parts []string
	for _, e := range d.Errors {
		parts = append(parts, e.String())
	}

	return errors.New(strings.Join(parts, "; "))
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	var prefix []string
	if d.File != "" {
		loc := d.File
		if d.Row > 0 {
			loc = fmt.Sprintf("%s:%d", d.File, d.Row)
		}
		prefix = append(prefix, loc)
	}

	if d.Name != "" {
		prefix = append(prefix, d.Name)
	}

	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if len(prefix) > 0 {
		return strings.Join(prefix, " ") + ": " + msg
	}

	return msg
}
