// Package suite loads declarative validation profiles from YAML and turns
// them into checks rules, so a dataset contract can live next to the data
// instead of in code.
//
//	fail_fast: true
//	checks:
//	  unique_index: true
//	  shape: {rows: 100}
//	  no_nans: {columns: [feature1, feature2]}
//	  no_neg_infs: {columns: [log_income]}
//	  within_range:
//	    age: {min: 1, max: 125}
//	  within_set:
//	    segment: [retail, wholesale]
//
// Unknown keys are rejected at load time, so a typoed check name fails
// loudly rather than silently disabling validation. Run evaluates the suite
// against a frame, failing fast by default; set fail_fast: false to collect
// every violation in one pass.
package suite
