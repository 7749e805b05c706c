package roster

import (
	"errors"
	"fmt"
)

var (
	// ErrIO marks failures to retrieve the raw source text.
	ErrIO = errors.New("source unavailable")

	// ErrNoHeader is returned when the input has no header line.
	ErrNoHeader = errors.New("no header")

	// ErrInconsistentDelimiter is returned when no candidate delimiter
	// splits the sampled lines into a consistent column count.
	ErrInconsistentDelimiter = errors.New("no consistent delimiter")

	// ErrUnknownWeightClass is returned for selectors outside WeightClasses.
	ErrUnknownWeightClass = errors.New("unknown weight class")
)

// ParseError reports input that could not be tokenized into rows.
type ParseError struct {
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("parse error on line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("parse error: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ValidationError describes a row that could not become a Fighter.
// Normalize drops such rows; the error is only ever logged.
type ValidationError struct {
	Position int
	Reason   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("row %d: %s", e.Position, e.Reason)
}
