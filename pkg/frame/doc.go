// Package frame provides the minimal column-oriented table the checks
// package validates: ordered rows addressed by string labels, holding named
// Float or String columns with explicit missing-cell tracking.
//
// The frame is deliberately small. It exists so checkpoint validation has a
// concrete structure to run against, not to be a general dataframe - there is
// no query surface, no grouping, no arithmetic beyond MapFloat. The few
// transforms it does carry (Concat, InnerJoin, MapFloat) are the ones that
// commonly introduce the defects the checks catch: row growth from a join on
// a non-unique key, and NaN or -inf cells from numeric transforms.
//
// # Usage
//
//	f, err := frame.New(
//	    []string{"a", "b", "c"},
//	    frame.FloatCol("age", 23, 72, 45),
//	    frame.StringCol("city", "Oslo", "Lima", "Pune"),
//	)
//
// CSV ingestion sniffs column dtypes and maps common missing-value markers
// ("", "NA", "NaN", ...) to missing cells:
//
//	f, err := frame.ReadCSV(file, frame.WithIndexColumn("id"))
//
// # Error Handling
//
// Constructors and transforms return sentinel errors (ErrLengthMismatch,
// ErrColumnNotFound, ...) wrapped with context; use errors.Is to classify.
// Accessors on a built frame never fail.
package frame
