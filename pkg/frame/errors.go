package frame

import "errors"

// Package-specific errors
var (
	// ErrNilSeries is returned when a nil series is passed to a constructor.
	ErrNilSeries = errors.New("nil series")

	// ErrLengthMismatch is returned when series lengths disagree with the index length.
	ErrLengthMismatch = errors.New("series length does not match index length")

	// ErrDuplicateColumn is returned when two series share a name.
	ErrDuplicateColumn = errors.New("duplicate column name")

	// ErrColumnNotFound is returned when a named column does not exist in the frame.
	ErrColumnNotFound = errors.New("column not found")

	// ErrColumnType is returned when an operation targets a column of the wrong dtype.
	ErrColumnType = errors.New("column has wrong dtype")

	// ErrSchemaMismatch is returned when two frames cannot be combined because
	// their columns differ in name, order, or dtype.
	ErrSchemaMismatch = errors.New("frame schemas do not match")

	// ErrNoHeader is returned when CSV input has no header row.
	ErrNoHeader = errors.New("csv input has no header row")

	// ErrUnknownDType is returned when a dtype name cannot be parsed.
	ErrUnknownDType = errors.New("unknown dtype")
)
