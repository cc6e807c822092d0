// Package bulwark is checkpoint validation for tabular data in Go.
//
// Data pipelines fail quietly: a join on a non-unique key grows the row
// count, a logarithm of zero plants a -inf, a bad source file leaves NaN
// holes. Bulwark provides small, composable predicate checks that run at
// chosen checkpoints and fail fast with the exact (row, column) at fault,
// so a violation stops the pipeline where the bad data was introduced
// rather than surfacing as a confusing downstream symptom.
//
// The module is organised as independent packages:
//
//   - pkg/frame    - the minimal column-oriented table the checks run over
//   - pkg/checks   - the check rules and the Verify/Apply evaluators
//   - pkg/suite    - YAML-declared check suites
//   - pkg/pipeline - transform steps bracketed by pre/post checks
//   - pkg/config   - env-based configuration
//   - pkg/logger   - slog factory
//
// The bulwark CLI (cmd/bulwark) validates a CSV file against a suite file:
//
//	bulwark check --data events.csv --suite contract.yaml --index-col id
//
// Library use starts with a frame and a handful of rules:
//
//	f, _ := frame.ReadCSVFile("events.csv", frame.WithIndexColumn("id"))
//	err := checks.Verify(
//	    checks.UniqueIndex(f),
//	    checks.HasNoNaNs(f, "feature1"),
//	    checks.WithinRange(f, map[string]checks.Range{"age": {Min: 1, Max: 125}}),
//	)
package bulwark
