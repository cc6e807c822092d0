package checks

import (
	"fmt"

	"github.com/ianozsvald/bulwark/pkg/frame"
)

// targetColumns resolves the columns a value rule operates on: the explicit
// list when given, every column of the frame otherwise.
func targetColumns(f *frame.Frame, columns []string) []string {
	if len(columns) > 0 {
		return columns
	}
	return f.Columns()
}

func missingColumn(check, column string) *Violation {
	return &Violation{
		Check:   check,
		Column:  column,
		Kind:    KindValue,
		Message: "column does not exist",
	}
}

func wrongDType(check string, s *frame.Series, want frame.DType) *Violation {
	return &Violation{
		Check:   check,
		Column:  s.Name(),
		Kind:    KindType,
		Message: fmt.Sprintf("column is %s, want %s", s.DType(), want),
	}
}

// asFloat normalizes numeric values that may arrive untyped, e.g. YAML
// scalars decoded as int.
func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	default:
		return 0, false
	}
}
