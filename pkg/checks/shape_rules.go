package checks

import (
	"fmt"
	"strconv"

	"github.com/samber/lo"

	"github.com/ianozsvald/bulwark/pkg/frame"
)

// Any is the wildcard dimension for IsShape: that dimension is not checked.
const Any = -1

// IsShape fails when the frame's (rows, cols) differ from the expected
// shape. Either dimension may be Any.
func IsShape(f *frame.Frame, rows, cols int) Rule {
	return Rule{
		Name: "is_shape",
		Check: func() *Violation {
			rowsOK := rows == Any || f.Len() == rows
			colsOK := cols == Any || f.Width() == cols
			if rowsOK && colsOK {
				return nil
			}
			return &Violation{
				Check: "is_shape",
				Kind:  KindValue,
				Message: fmt.Sprintf("expected shape (%s, %s), got (%d, %d)",
					dim(rows), dim(cols), f.Len(), f.Width()),
			}
		},
	}
}

func dim(d int) string {
	if d == Any {
		return "*"
	}
	return strconv.Itoa(d)
}

// HasColumns fails when any named column is absent. With exclusive set, a
// column present in the frame but not in the list also fails.
func HasColumns(f *frame.Frame, columns []string, exclusive bool) Rule {
	return Rule{
		Name: "has_columns",
		Check: func() *Violation {
			for _, name := range columns {
				if !f.HasColumn(name) {
					return missingColumn("has_columns", name)
				}
			}
			if exclusive {
				for _, name := range f.Columns() {
					if !lo.Contains(columns, name) {
						return &Violation{
							Check:   "has_columns",
							Column:  name,
							Kind:    KindValue,
							Message: "unexpected column",
						}
					}
				}
			}
			return nil
		},
	}
}
