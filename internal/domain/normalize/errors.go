package normalize

import (
	"errors"
	"fmt"
)

// Sentinel error kinds for this package. These allow errors.Is/As from callers.
var (
	ErrMissingColumn = errors.New("missing required column")
	ErrEmptyField    = errors.New("required field is empty")
)

// RowError reports a skipped input row. The row is dropped and the run
// continues; nothing here is fatal.
type RowError struct {
	Line   int
	Column string
	Err    error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("row %d: column %q: %v", e.Line, e.Column, e.Err)
}

func (e *RowError) Unwrap() error {
	return e.Err
}
