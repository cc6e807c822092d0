package checks

import (
	"fmt"
	"maps"
	"slices"

	"github.com/ianozsvald/bulwark/pkg/frame"
)

// HasDtypes fails when a column's dtype differs from the declared one,
// checking columns in name order.
func HasDtypes(f *frame.Frame, dtypes map[string]frame.DType) Rule {
	return Rule{
		Name: "has_dtypes",
		Check: func() *Violation {
			for _, name := range slices.Sorted(maps.Keys(dtypes)) {
				s, err := f.Column(name)
				if err != nil {
					return missingColumn("has_dtypes", name)
				}
				if want := dtypes[name]; s.DType() != want {
					return wrongDType("has_dtypes", s, want)
				}
			}
			return nil
		},
	}
}

// SameAs fails unless the frame equals the reference frame in index,
// columns, and values. Useful for asserting a transform left untouched
// columns untouched.
func SameAs(f, reference *frame.Frame) Rule {
	return Rule{
		Name: "same_as",
		Check: func() *Violation {
			if f.Equal(reference) {
				return nil
			}
			return &Violation{
				Check: "same_as",
				Kind:  KindValue,
				Message: fmt.Sprintf("frame (%d, %d) differs from reference (%d, %d)",
					f.Len(), f.Width(), reference.Len(), reference.Width()),
			}
		},
	}
}
