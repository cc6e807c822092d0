// Package checks provides composable predicate checks over tabular data:
// index uniqueness, shape assertions, missing and non-finite value scans,
// range and set membership bounds, dtype assertions, and frame comparison.
//
// Every check constructs a Rule, a named lazy predicate that either passes
// or produces a Violation pointing at the first offending (row label, column)
// pair. Rules carry no hidden state; the package is stateless and
// goroutine-safe, and a rule only reads the frame when evaluated.
//
// Two evaluation modes are offered. Verify fails fast, returning the first
// violation so a data pipeline halts at the exact checkpoint where bad data
// was introduced - this is the intended default. Apply evaluates every rule
// and aggregates all violations into a single error for full reports.
//
//	err := checks.Verify(
//	    checks.UniqueIndex(f),
//	    checks.IsShape(f, 3, checks.Any),
//	    checks.HasNoNaNs(f, "feature1"),
//	    checks.WithinRange(f, map[string]checks.Range{"age": {Min: 1, Max: 125}}),
//	)
//	if vs := checks.Extract(err); vs != nil {
//	    for _, v := range vs {
//	        log.Println(v)
//	    }
//	}
//
// # Error Handling
//
// Failures are reported as the Violations error type. Each Violation is
// classified as a value violation (acceptable type, unacceptable value) or a
// type violation (e.g. a string column targeted by a numeric bound). Checks
// never panic on malformed targets; a missing column is itself a violation.
package checks
