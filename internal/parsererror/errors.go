// Package parsererror defines the error taxonomy shared by the loader, the date
// parser and the report queries.
package parsererror

import (
	"errors"
	"fmt"
)

var (
	// ErrFileNotReadable marks an input file that is missing or cannot be read.
	ErrFileNotReadable = errors.New("file not readable")

	// ErrMalformedInput marks an input file that is not valid training JSON.
	ErrMalformedInput = errors.New("malformed input")

	// ErrInvalidDateFormat marks a date string that does not match its expected layout.
	ErrInvalidDateFormat = errors.New("invalid date format")

	// ErrInvalidFiscalYear marks a fiscal year that is not a usable integer year.
	ErrInvalidFiscalYear = errors.New("invalid fiscal year")
)

// InvalidDateFormatError represents a date value that could not be parsed
type InvalidDateFormatError struct {
	Field  string
	Value  string
	Layout string
	Err    error
}

func (e *InvalidDateFormatError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid date format for %s='%s' (expected %s): %v",
			e.Field, e.Value, e.Layout, e.Err)
	}
	return fmt.Sprintf("invalid date format for %s='%s' (expected %s)",
		e.Field, e.Value, e.Layout)
}

// Is reports a match against ErrInvalidDateFormat so callers can use errors.Is
// without knowing the concrete type.
func (e *InvalidDateFormatError) Is(target error) bool {
	return target == ErrInvalidDateFormat
}

func (e *InvalidDateFormatError) Unwrap() error {
	return e.Err
}

// InvalidFiscalYearError represents a fiscal year input that was rejected
type InvalidFiscalYearError struct {
	Value  string
	Reason string
}

func (e *InvalidFiscalYearError) Error() string {
	return fmt.Sprintf("invalid fiscal year '%s': %s", e.Value, e.Reason)
}

func (e *InvalidFiscalYearError) Unwrap() error {
	return ErrInvalidFiscalYear
}

// LoadError represents a failure to load the record file. Kind is either
// ErrFileNotReadable or ErrMalformedInput.
type LoadError struct {
	FilePath string
	Kind     error
	Err      error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("%v: %s: %v", e.Kind, e.FilePath, e.Err)
}

// Unwrap exposes both the taxonomy sentinel and the underlying cause.
func (e *LoadError) Unwrap() []error {
	return []error{e.Kind, e.Err}
}
