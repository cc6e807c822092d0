package checks

import (
	"errors"
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// Kind classifies a violation: the value broke a constraint, or the value's
// type was wrong in the first place.
type Kind int

const (
	// KindValue marks an acceptable type holding an unacceptable value
	// (out of range, duplicate, non-finite).
	KindValue Kind = iota
	// KindType marks a datum whose type is wrong for the check, such as a
	// string column targeted by a numeric bound.
	KindType
)

func (k Kind) String() string {
	if k == KindType {
		return "type"
	}
	return "value"
}

// Violation describes a single failed check, pointing at the offending
// location where one exists. Row is the index label, not a position.
type Violation struct {
	Check   string
	Column  string
	Row     string
	Value   any
	Kind    Kind
	Message string
}

func (v Violation) String() string {
	s := v.Message
	switch {
	case v.Row != "" && v.Column != "":
		s += fmt.Sprintf(" (row %q, column %q)", v.Row, v.Column)
	case v.Column != "":
		s += fmt.Sprintf(" (column %q)", v.Column)
	case v.Row != "":
		s += fmt.Sprintf(" (row %q)", v.Row)
	}
	return v.Check + ": " + s
}

// Violations is a collection of violations that satisfies the error
// interface, so a failed run can be returned from any error-shaped API.
type Violations []Violation

func (vs Violations) Error() string {
	if len(vs) == 0 {
		return "data validation failed"
	}
	parts := lo.Map(vs, func(v Violation, _ int) string { return v.String() })
	return "data validation failed: " + strings.Join(parts, "; ")
}

func (vs Violations) IsEmpty() bool { return len(vs) == 0 }

// Has reports whether any violation concerns the named column.
func (vs Violations) Has(column string) bool {
	return lo.ContainsBy(vs, func(v Violation) bool { return v.Column == column })
}

// Get returns all violations for the named column.
func (vs Violations) Get(column string) []Violation {
	return lo.Filter(vs, func(v Violation, _ int) bool { return v.Column == column })
}

// Columns returns the distinct columns mentioned by the violations, in order
// of first appearance. Violations without a column are skipped.
func (vs Violations) Columns() []string {
	cols := lo.FilterMap(vs, func(v Violation, _ int) (string, bool) {
		return v.Column, v.Column != ""
	})
	return lo.Uniq(cols)
}

// Rule couples a check name with a lazily evaluated predicate. Check returns
// nil on pass, or the first violation found. Rules are cheap to build and
// only touch the frame when evaluated.
type Rule struct {
	Name  string
	Check func() *Violation
}

// Custom wraps an arbitrary predicate into a Rule, the escape hatch for
// dataset-specific invariants the built-in checks do not cover.
func Custom(name string, check func() *Violation) Rule {
	return Rule{Name: name, Check: check}
}

// Verify evaluates rules in order and fails fast: the first violation is
// returned immediately as a single-element Violations, so a broken invariant
// stops a pipeline at the precise checkpoint where the bad data appeared.
func Verify(rules ...Rule) error {
	for _, rule := range rules {
		if v := rule.Check(); v != nil {
			return Violations{*v}
		}
	}
	return nil
}

// Apply evaluates every rule and aggregates all violations, for callers that
// want a full report rather than the first failure.
func Apply(rules ...Rule) error {
	var vs Violations
	for _, rule := range rules {
		if v := rule.Check(); v != nil {
			vs = append(vs, *v)
		}
	}
	if vs.IsEmpty() {
		return nil
	}
	return vs
}

// Extract pulls Violations out of an error, or nil if the error carries none.
func Extract(err error) Violations {
	if err == nil {
		return nil
	}
	var vs Violations
	if errors.As(err, &vs) {
		return vs
	}
	return nil
}

// IsViolation reports whether err carries validation violations.
func IsViolation(err error) bool {
	var vs Violations
	return errors.As(err, &vs)
}
