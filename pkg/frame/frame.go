package frame

import (
	"fmt"
	"strconv"

	"github.com/samber/lo"
)

// Frame is an ordered collection of rows addressed by string index labels,
// holding named typed columns. Index labels are not required to be unique;
// detecting duplicates is the job of the checks package.
type Frame struct {
	index  []string
	series []*Series
	byName map[string]int
}

// New builds a frame from an index and columns. Every series must match the
// index length and column names must be unique.
func New(index []string, series ...*Series) (*Frame, error) {
	f := &Frame{
		index:  append([]string(nil), index...),
		series: make([]*Series, 0, len(series)),
		byName: make(map[string]int, len(series)),
	}
	for _, s := range series {
		if s == nil {
			return nil, ErrNilSeries
		}
		if s.Len() != len(index) {
			return nil, fmt.Errorf("%w: column %q has %d values, index has %d",
				ErrLengthMismatch, s.name, s.Len(), len(index))
		}
		if _, dup := f.byName[s.name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateColumn, s.name)
		}
		f.byName[s.name] = len(f.series)
		f.series = append(f.series, s.clone())
	}
	return f, nil
}

// FromSeries builds a frame with a default positional index ("0", "1", ...).
func FromSeries(series ...*Series) (*Frame, error) {
	n := 0
	if len(series) > 0 && series[0] != nil {
		n = series[0].Len()
	}
	index := make([]string, n)
	for i := range index {
		index[i] = strconv.Itoa(i)
	}
	return New(index, series...)
}

// Len returns the number of rows.
func (f *Frame) Len() int { return len(f.index) }

// Width returns the number of columns.
func (f *Frame) Width() int { return len(f.series) }

// Columns returns column names in frame order.
func (f *Frame) Columns() []string {
	return lo.Map(f.series, func(s *Series, _ int) string { return s.name })
}

// HasColumn reports whether a column with the given name exists.
func (f *Frame) HasColumn(name string) bool {
	_, ok := f.byName[name]
	return ok
}

// Column returns the named series.
func (f *Frame) Column(name string) (*Series, error) {
	i, ok := f.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrColumnNotFound, name)
	}
	return f.series[i], nil
}

// Index returns a copy of the row labels.
func (f *Frame) Index() []string {
	return append([]string(nil), f.index...)
}

// Label returns the label of row i.
func (f *Frame) Label(i int) string { return f.index[i] }

// Equal reports whether two frames hold the same index, columns, and values.
// Missing cells compare equal to each other.
func (f *Frame) Equal(o *Frame) bool {
	if o == nil || f.Len() != o.Len() || f.Width() != o.Width() {
		return false
	}
	for i, label := range f.index {
		if label != o.index[i] {
			return false
		}
	}
	for i, s := range f.series {
		if !s.equal(o.series[i]) {
			return false
		}
	}
	return true
}

// Concat appends the rows of o to f. Both frames must carry the same columns
// in the same order with the same dtypes.
func (f *Frame) Concat(o *Frame) (*Frame, error) {
	if f.Width() != o.Width() {
		return nil, fmt.Errorf("%w: %d vs %d columns", ErrSchemaMismatch, f.Width(), o.Width())
	}
	for i, s := range f.series {
		if s.name != o.series[i].name || s.dtype != o.series[i].dtype {
			return nil, fmt.Errorf("%w: column %d is %s %s vs %s %s",
				ErrSchemaMismatch, i, s.dtype, s.name, o.series[i].dtype, o.series[i].name)
		}
	}
	out := &Frame{
		index:  append(f.Index(), o.index...),
		byName: make(map[string]int, f.Width()),
	}
	for i, s := range f.series {
		c := s.clone()
		c.floats = append(c.floats, o.series[i].floats...)
		c.strs = append(c.strs, o.series[i].strs...)
		c.na = append(c.na, o.series[i].na...)
		out.byName[c.name] = len(out.series)
		out.series = append(out.series, c)
	}
	return out, nil
}

// InnerJoin matches rows of f against rows of o on the named key column.
// A duplicated key on either side fans out into multiple result rows, which
// is exactly the silent row-growth the shape check exists to catch. Result
// rows keep the left frame's labels; right-side columns whose name collides
// with a left column are suffixed with "_right". The key column appears once.
func (f *Frame) InnerJoin(o *Frame, on string) (*Frame, error) {
	leftKey, err := f.Column(on)
	if err != nil {
		return nil, err
	}
	rightKey, err := o.Column(on)
	if err != nil {
		return nil, err
	}

	rightRows := make(map[string][]int, o.Len())
	for i := 0; i < o.Len(); i++ {
		if rightKey.IsNA(i) {
			continue
		}
		k := rightKey.key(i)
		rightRows[k] = append(rightRows[k], i)
	}

	var leftTake, rightTake []int
	var labels []string
	for i := 0; i < f.Len(); i++ {
		if leftKey.IsNA(i) {
			continue
		}
		for _, j := range rightRows[leftKey.key(i)] {
			leftTake = append(leftTake, i)
			rightTake = append(rightTake, j)
			labels = append(labels, f.index[i])
		}
	}

	out := &Frame{index: labels, byName: make(map[string]int)}
	for _, s := range f.series {
		out.byName[s.name] = len(out.series)
		out.series = append(out.series, s.take(leftTake))
	}
	for _, s := range o.series {
		if s.name == on {
			continue
		}
		name := s.name
		if _, taken := out.byName[name]; taken {
			name += "_right"
		}
		out.byName[name] = len(out.series)
		out.series = append(out.series, s.take(rightTake).rename(name))
	}
	return out, nil
}

// MapFloat returns a new frame with fn applied to every non-missing value of
// the named float column. This is where NaN and -inf cells typically enter a
// pipeline (log of zero, division by zero), so the result is exactly what the
// non-finite checks are meant to police.
func (f *Frame) MapFloat(column string, fn func(float64) float64) (*Frame, error) {
	s, err := f.Column(column)
	if err != nil {
		return nil, err
	}
	if s.dtype != Float {
		return nil, fmt.Errorf("%w: %q is %s, want float", ErrColumnType, column, s.dtype)
	}
	out := &Frame{index: f.Index(), byName: make(map[string]int, f.Width())}
	for _, col := range f.series {
		c := col.clone()
		if col.name == column {
			for i := range c.floats {
				if !c.IsNA(i) {
					c.floats[i] = fn(c.floats[i])
				}
			}
		}
		out.byName[c.name] = len(out.series)
		out.series = append(out.series, c)
	}
	return out, nil
}
