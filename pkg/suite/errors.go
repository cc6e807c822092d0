package suite

import "errors"

// Package-specific errors
var (
	// ErrInvalidSuite is returned when a suite file cannot be parsed.
	ErrInvalidSuite = errors.New("invalid suite definition")

	// ErrNoChecks is returned when a suite enables no checks at all.
	ErrNoChecks = errors.New("suite enables no checks")

	// ErrInvalidBound is returned when a range bound has min greater than max.
	ErrInvalidBound = errors.New("invalid bound: min greater than max")

	// ErrInvalidCheck is returned when a check's configuration is malformed.
	ErrInvalidCheck = errors.New("invalid check configuration")
)
