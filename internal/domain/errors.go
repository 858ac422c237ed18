package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput is returned by Mean when there is nothing to average.
	ErrEmptyInput = errors.New("empty input")

	// ErrEmptyTable is returned when an overview is requested for a table with no rows.
	ErrEmptyTable = errors.New("weather table is empty")

	// ErrNotFinite is wrapped by a FormatError when a reading parses as NaN or ±Inf.
	ErrNotFinite = errors.New("not a finite number")
)

// FormatError reports a malformed numeric or date string at the input boundary.
type FormatError struct {
	Field string // "date", "min" or "max"
	Value string
	Line  int // 1-based source line, 0 when unknown
	Err   error
}

func (e *FormatError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: invalid %s %q: %v", e.Line, e.Field, e.Value, e.Err)
	}
	return fmt.Sprintf("invalid %s %q: %v", e.Field, e.Value, e.Err)
}

func (e *FormatError) Unwrap() error { return e.Err }
