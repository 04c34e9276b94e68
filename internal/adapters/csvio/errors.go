package csvio

import "errors"

// Sentinel error kinds for this package. These allow errors.Is/As from callers.
var (
	ErrEmptyInput = errors.New("input file is empty")
	ErrNoRows     = errors.New("input has a header but no data rows")
)
