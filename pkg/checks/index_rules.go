package checks

import (
	"fmt"

	"github.com/samber/lo"

	"github.com/ianozsvald/bulwark/pkg/frame"
)

// UniqueIndex fails when any row label appears more than once, reporting the
// first duplicated label in index order. Joins and concatenations are the
// usual culprits.
func UniqueIndex(f *frame.Frame) Rule {
	return Rule{
		Name: "unique_index",
		Check: func() *Violation {
			counts := lo.CountValues(f.Index())
			for _, label := range f.Index() {
				if counts[label] > 1 {
					return &Violation{
						Check:   "unique_index",
						Row:     label,
						Value:   label,
						Kind:    KindValue,
						Message: fmt.Sprintf("index label %q occurs %d times", label, counts[label]),
					}
				}
			}
			return nil
		},
	}
}

// Unique fails when a value repeats within any targeted column, reporting
// the row of the second occurrence. Missing cells are ignored.
func Unique(f *frame.Frame, columns ...string) Rule {
	cols := targetColumns(f, columns)
	return Rule{
		Name: "unique",
		Check: func() *Violation {
			for _, name := range cols {
				s, err := f.Column(name)
				if err != nil {
					return missingColumn("unique", name)
				}
				seen := make(map[any]string, s.Len())
				for i := 0; i < s.Len(); i++ {
					if s.IsNA(i) {
						continue
					}
					v := s.Value(i)
					if first, dup := seen[v]; dup {
						return &Violation{
							Check:   "unique",
							Column:  name,
							Row:     f.Label(i),
							Value:   v,
							Kind:    KindValue,
							Message: fmt.Sprintf("value %v repeats (first seen at row %q)", v, first),
						}
					}
					seen[v] = f.Label(i)
				}
			}
			return nil
		},
	}
}

// Monotonic fails when successive non-missing values of a float column break
// the requested ordering. With strict set, equal neighbours also fail.
func Monotonic(f *frame.Frame, column string, increasing, strict bool) Rule {
	return Rule{
		Name: "monotonic",
		Check: func() *Violation {
			s, err := f.Column(column)
			if err != nil {
				return missingColumn("monotonic", column)
			}
			if s.DType() != frame.Float {
				return wrongDType("monotonic", s, frame.Float)
			}
			prev, prevSet := 0.0, false
			for i := 0; i < s.Len(); i++ {
				if s.IsNA(i) {
					continue
				}
				v := s.Float(i)
				if prevSet && !ordered(prev, v, increasing, strict) {
					return &Violation{
						Check:   "monotonic",
						Column:  column,
						Row:     f.Label(i),
						Value:   v,
						Kind:    KindValue,
						Message: fmt.Sprintf("value %v breaks %s order after %v", v, direction(increasing, strict), prev),
					}
				}
				prev, prevSet = v, true
			}
			return nil
		},
	}
}

func ordered(prev, v float64, increasing, strict bool) bool {
	if increasing {
		if strict {
			return v > prev
		}
		return v >= prev
	}
	if strict {
		return v < prev
	}
	return v <= prev
}

func direction(increasing, strict bool) string {
	dir := "non-decreasing"
	if increasing && strict {
		dir = "strictly increasing"
	} else if !increasing {
		dir = "non-increasing"
		if strict {
			dir = "strictly decreasing"
		}
	}
	return dir
}
