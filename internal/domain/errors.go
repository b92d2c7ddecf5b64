package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for common failure conditions. Anomalies inside the core
// pipeline never surface as errors; they degrade to exclusion plus a counter.
// Errors are reserved for caller mistakes and collaborator IO.
var (
	// ErrInvalidOptions indicates that pipeline options failed validation.
	ErrInvalidOptions = errors.New("invalid options")

	// ErrNoRecords indicates that a report was requested for an empty
	// result set.
	ErrNoRecords = errors.New("no records to export")

	// ErrUnsupportedFormat indicates a tabular file with an extension the
	// loader does not understand.
	ErrUnsupportedFormat = errors.New("unsupported file format")
)

// OptionError describes a single invalid pipeline option.
type OptionError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *OptionError) Error() string {
	return fmt.Sprintf("invalid options: %s: %s", e.Field, e.Message)
}

// Unwrap returns the underlying sentinel error for use with errors.Is.
func (e *OptionError) Unwrap() error {
	return ErrInvalidOptions
}

// ExportError describes a report-writing failure, carrying the destination
// path so the caller can render it without parsing the message.
type ExportError struct {
	Path string
	Err  error
}

// Error implements the error interface.
func (e *ExportError) Error() string {
	return fmt.Sprintf("exporting report to %s: %v", e.Path, e.Err)
}

// Unwrap returns the wrapped error.
func (e *ExportError) Unwrap() error {
	return e.Err
}
