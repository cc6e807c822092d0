package checks

import (
	"fmt"
	"maps"
	"math"
	"slices"

	"github.com/ianozsvald/bulwark/pkg/frame"
)

// HasNoNaNs fails on the first missing cell in any targeted column, checking
// every column when none are named. Float NaN and explicit NA cells both
// count as missing.
func HasNoNaNs(f *frame.Frame, columns ...string) Rule {
	cols := targetColumns(f, columns)
	return Rule{
		Name: "has_no_nans",
		Check: func() *Violation {
			for _, name := range cols {
				s, err := f.Column(name)
				if err != nil {
					return missingColumn("has_no_nans", name)
				}
				for i := 0; i < s.Len(); i++ {
					if s.IsNA(i) {
						return &Violation{
							Check:   "has_no_nans",
							Column:  name,
							Row:     f.Label(i),
							Kind:    KindValue,
							Message: "missing value",
						}
					}
				}
			}
			return nil
		},
	}
}

// HasNoInfs fails on the first infinite value of either sign in any targeted
// float column. String columns are skipped when checking the whole frame but
// rejected as a type violation when named explicitly.
func HasNoInfs(f *frame.Frame, columns ...string) Rule {
	return nonFiniteRule("has_no_infs", f, columns, 0, "infinite value")
}

// HasNoNegInfs is HasNoInfs restricted to negative infinity, the usual
// residue of taking a logarithm of zero or dividing by zero.
func HasNoNegInfs(f *frame.Frame, columns ...string) Rule {
	return nonFiniteRule("has_no_neg_infs", f, columns, -1, "negative infinite value")
}

func nonFiniteRule(check string, f *frame.Frame, columns []string, sign int, message string) Rule {
	explicit := len(columns) > 0
	cols := targetColumns(f, columns)
	return Rule{
		Name: check,
		Check: func() *Violation {
			for _, name := range cols {
				s, err := f.Column(name)
				if err != nil {
					return missingColumn(check, name)
				}
				if s.DType() != frame.Float {
					if explicit {
						return wrongDType(check, s, frame.Float)
					}
					continue
				}
				for i := 0; i < s.Len(); i++ {
					if s.IsNA(i) {
						continue
					}
					if v := s.Float(i); math.IsInf(v, sign) {
						return &Violation{
							Check:   check,
							Column:  name,
							Row:     f.Label(i),
							Value:   v,
							Kind:    KindValue,
							Message: message,
						}
					}
				}
			}
			return nil
		},
	}
}

// Range is an inclusive [Min, Max] bound.
type Range struct {
	Min float64
	Max float64
}

// WithinRange fails on the first value outside the inclusive bound declared
// for its column. Missing cells are skipped; columns are checked in name
// order so the first reported violation is deterministic.
func WithinRange(f *frame.Frame, bounds map[string]Range) Rule {
	return Rule{
		Name: "within_range",
		Check: func() *Violation {
			for _, name := range slices.Sorted(maps.Keys(bounds)) {
				s, err := f.Column(name)
				if err != nil {
					return missingColumn("within_range", name)
				}
				if s.DType() != frame.Float {
					return wrongDType("within_range", s, frame.Float)
				}
				b := bounds[name]
				for i := 0; i < s.Len(); i++ {
					if s.IsNA(i) {
						continue
					}
					if v := s.Float(i); v < b.Min || v > b.Max {
						return &Violation{
							Check:   "within_range",
							Column:  name,
							Row:     f.Label(i),
							Value:   v,
							Kind:    KindValue,
							Message: fmt.Sprintf("value %v outside [%v, %v]", v, b.Min, b.Max),
						}
					}
				}
			}
			return nil
		},
	}
}

// WithinSet fails on the first value not contained in the allowed set for
// its column. Numeric set members may be ints (YAML scalars decode that
// way); missing cells are skipped.
func WithinSet(f *frame.Frame, allowed map[string][]any) Rule {
	return Rule{
		Name: "within_set",
		Check: func() *Violation {
			for _, name := range slices.Sorted(maps.Keys(allowed)) {
				s, err := f.Column(name)
				if err != nil {
					return missingColumn("within_set", name)
				}
				members := allowed[name]
				for i := 0; i < s.Len(); i++ {
					if s.IsNA(i) {
						continue
					}
					if !setContains(members, s, i) {
						return &Violation{
							Check:   "within_set",
							Column:  name,
							Row:     f.Label(i),
							Value:   s.Value(i),
							Kind:    KindValue,
							Message: fmt.Sprintf("value %v not in allowed set", s.Value(i)),
						}
					}
				}
			}
			return nil
		},
	}
}

func setContains(members []any, s *frame.Series, i int) bool {
	for _, m := range members {
		if s.DType() == frame.Float {
			if mv, ok := asFloat(m); ok && mv == s.Float(i) {
				return true
			}
			continue
		}
		if mv, ok := m.(string); ok && mv == s.Str(i) {
			return true
		}
	}
	return false
}

// WithinNStd fails on the first value further than n standard deviations
// from its column mean. Mean and deviation are computed over the non-missing
// cells of each targeted float column.
func WithinNStd(f *frame.Frame, n float64, columns ...string) Rule {
	explicit := len(columns) > 0
	cols := targetColumns(f, columns)
	return Rule{
		Name: "within_n_std",
		Check: func() *Violation {
			for _, name := range cols {
				s, err := f.Column(name)
				if err != nil {
					return missingColumn("within_n_std", name)
				}
				if s.DType() != frame.Float {
					if explicit {
						return wrongDType("within_n_std", s, frame.Float)
					}
					continue
				}
				mean, std := meanStd(s)
				for i := 0; i < s.Len(); i++ {
					if s.IsNA(i) {
						continue
					}
					if v := s.Float(i); math.Abs(v-mean) > n*std {
						return &Violation{
							Check:   "within_n_std",
							Column:  name,
							Row:     f.Label(i),
							Value:   v,
							Kind:    KindValue,
							Message: fmt.Sprintf("value %v further than %v std devs from mean %v", v, n, mean),
						}
					}
				}
			}
			return nil
		},
	}
}

func meanStd(s *frame.Series) (mean, std float64) {
	var sum float64
	var count int
	for i := 0; i < s.Len(); i++ {
		if !s.IsNA(i) {
			sum += s.Float(i)
			count++
		}
	}
	if count == 0 {
		return 0, 0
	}
	mean = sum / float64(count)
	var sq float64
	for i := 0; i < s.Len(); i++ {
		if !s.IsNA(i) {
			d := s.Float(i) - mean
			sq += d * d
		}
	}
	return mean, math.Sqrt(sq / float64(count))
}
