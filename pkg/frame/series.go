package frame

import (
	"fmt"
	"math"
	"strconv"
)

// DType identifies the value type held by a Series.
type DType int

const (
	// Float holds float64 values. NaN cells are treated as missing.
	Float DType = iota
	// String holds string values. Missing cells are tracked explicitly.
	String
)

func (d DType) String() string {
	switch d {
	case Float:
		return "float"
	case String:
		return "string"
	default:
		return fmt.Sprintf("dtype(%d)", int(d))
	}
}

// ParseDType maps a dtype name ("float", "string") to its DType.
func ParseDType(s string) (DType, error) {
	switch s {
	case "float":
		return Float, nil
	case "string":
		return String, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownDType, s)
	}
}

// Series is a single named column. A Series is only useful as part of a
// Frame; construct one with FloatCol or StringCol and hand it to New.
type Series struct {
	name   string
	dtype  DType
	floats []float64
	strs   []string
	na     []bool
}

// FloatCol builds a float column. NaN values count as missing.
func FloatCol(name string, vals ...float64) *Series {
	return &Series{
		name:   name,
		dtype:  Float,
		floats: append([]float64(nil), vals...),
		na:     make([]bool, len(vals)),
	}
}

// StringCol builds a string column with no missing cells.
func StringCol(name string, vals ...string) *Series {
	return &Series{
		name:  name,
		dtype: String,
		strs:  append([]string(nil), vals...),
		na:    make([]bool, len(vals)),
	}
}

func (s *Series) Name() string { return s.name }

func (s *Series) DType() DType { return s.dtype }

func (s *Series) Len() int {
	if s.dtype == Float {
		return len(s.floats)
	}
	return len(s.strs)
}

// SetNA marks cell i as missing.
func (s *Series) SetNA(i int) {
	s.na[i] = true
	if s.dtype == Float {
		s.floats[i] = math.NaN()
	}
}

// IsNA reports whether cell i is missing. Float NaN cells are missing
// regardless of how they were produced.
func (s *Series) IsNA(i int) bool {
	if s.na[i] {
		return true
	}
	return s.dtype == Float && math.IsNaN(s.floats[i])
}

// Float returns cell i as float64. Calling it on a String series returns NaN;
// callers are expected to check DType first.
func (s *Series) Float(i int) float64 {
	if s.dtype != Float {
		return math.NaN()
	}
	return s.floats[i]
}

// Str returns cell i as string; empty for non-string series.
func (s *Series) Str(i int) string {
	if s.dtype != String {
		return ""
	}
	return s.strs[i]
}

// Value returns cell i boxed as any, or nil when the cell is missing.
func (s *Series) Value(i int) any {
	if s.IsNA(i) {
		return nil
	}
	if s.dtype == Float {
		return s.floats[i]
	}
	return s.strs[i]
}

// key renders cell i as a join/grouping key. Missing cells all map to the
// same sentinel so they never match a real value.
func (s *Series) key(i int) string {
	if s.IsNA(i) {
		return "\x00na"
	}
	if s.dtype == Float {
		return strconv.FormatFloat(s.floats[i], 'g', -1, 64)
	}
	return s.strs[i]
}

func (s *Series) clone() *Series {
	return &Series{
		name:   s.name,
		dtype:  s.dtype,
		floats: append([]float64(nil), s.floats...),
		strs:   append([]string(nil), s.strs...),
		na:     append([]bool(nil), s.na...),
	}
}

func (s *Series) rename(name string) *Series {
	c := s.clone()
	c.name = name
	return c
}

// take builds a new series from the given row positions.
func (s *Series) take(rows []int) *Series {
	out := &Series{name: s.name, dtype: s.dtype, na: make([]bool, len(rows))}
	if s.dtype == Float {
		out.floats = make([]float64, len(rows))
	} else {
		out.strs = make([]string, len(rows))
	}
	for i, r := range rows {
		out.na[i] = s.na[r]
		if s.dtype == Float {
			out.floats[i] = s.floats[r]
		} else {
			out.strs[i] = s.strs[r]
		}
	}
	return out
}

func (s *Series) equal(o *Series) bool {
	if s.name != o.name || s.dtype != o.dtype || s.Len() != o.Len() {
		return false
	}
	for i := range s.na {
		if s.IsNA(i) != o.IsNA(i) {
			return false
		}
		if s.IsNA(i) {
			continue
		}
		if s.dtype == Float && s.floats[i] != o.floats[i] {
			return false
		}
		if s.dtype == String && s.strs[i] != o.strs[i] {
			return false
		}
	}
	return true
}
