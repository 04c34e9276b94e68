package app

import "errors"

// Sentinel error kinds for this package. These allow errors.Is/As from callers.
var (
	// ErrNoTeams means every input row was skipped; there is nothing to
	// schedule.
	ErrNoTeams = errors.New("no valid team data found in the input")
)
