package suite

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ianozsvald/bulwark/pkg/checks"
	"github.com/ianozsvald/bulwark/pkg/frame"
)

// Suite is a declarative validation profile loaded from YAML. A check is
// enabled by its presence under "checks"; fail_fast defaults to true.
type Suite struct {
	FailFast *bool  `yaml:"fail_fast"`
	Checks   Checks `yaml:"checks"`
}

// Checks holds the per-check configuration blocks.
type Checks struct {
	UniqueIndex bool              `yaml:"unique_index"`
	Shape       *ShapeCheck       `yaml:"shape"`
	HasColumns  *HasColumnsCheck  `yaml:"has_columns"`
	Dtypes      map[string]string `yaml:"dtypes"`
	Unique      *ColumnsCheck     `yaml:"unique"`
	Monotonic   []MonotonicCheck  `yaml:"monotonic"`
	NoNaNs      *ColumnsCheck     `yaml:"no_nans"`
	NoInfs      *ColumnsCheck     `yaml:"no_infs"`
	NoNegInfs   *ColumnsCheck     `yaml:"no_neg_infs"`
	WithinRange map[string]Bounds `yaml:"within_range"`
	WithinSet   map[string][]any  `yaml:"within_set"`
	WithinNStd  *NStdCheck        `yaml:"within_n_std"`
}

// ShapeCheck declares an expected (rows, cols) shape. An omitted dimension
// is a wildcard.
type ShapeCheck struct {
	Rows *int `yaml:"rows"`
	Cols *int `yaml:"cols"`
}

// ColumnsCheck targets a set of columns; an empty list means every column.
type ColumnsCheck struct {
	Columns []string `yaml:"columns"`
}

// Bounds is an inclusive range. An omitted side is unbounded.
type Bounds struct {
	Min *float64 `yaml:"min"`
	Max *float64 `yaml:"max"`
}

// NStdCheck bounds values to n standard deviations around the column mean.
type NStdCheck struct {
	N       float64  `yaml:"n"`
	Columns []string `yaml:"columns"`
}

// MonotonicCheck requires ordering on a column. Increasing defaults to true.
type MonotonicCheck struct {
	Column     string `yaml:"column"`
	Increasing *bool  `yaml:"increasing"`
	Strict     bool   `yaml:"strict"`
}

// HasColumnsCheck requires the listed columns to exist; with exclusive set,
// no others may.
type HasColumnsCheck struct {
	Columns   []string `yaml:"columns"`
	Exclusive bool     `yaml:"exclusive"`
}

// Load parses and validates a YAML suite definition. Unknown keys are
// rejected so a typoed check name cannot silently disable validation.
func Load(r io.Reader) (*Suite, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var s Suite
	if err := dec.Decode(&s); err != nil {
		return nil, errors.Join(ErrInvalidSuite, err)
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// LoadFile is a convenience wrapper around Load.
func LoadFile(path string) (*Suite, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()
	return Load(file)
}

func (s *Suite) validate() error {
	c := s.Checks
	enabled := c.UniqueIndex || c.Shape != nil || c.HasColumns != nil ||
		len(c.Dtypes) > 0 || c.Unique != nil || len(c.Monotonic) > 0 ||
		c.NoNaNs != nil || c.NoInfs != nil || c.NoNegInfs != nil ||
		len(c.WithinRange) > 0 || len(c.WithinSet) > 0 || c.WithinNStd != nil
	if !enabled {
		return ErrNoChecks
	}

	for name, dtype := range c.Dtypes {
		if _, err := frame.ParseDType(dtype); err != nil {
			return fmt.Errorf("%w: dtypes[%s]: %v", ErrInvalidCheck, name, err)
		}
	}
	for name, b := range c.WithinRange {
		if b.Min != nil && b.Max != nil && *b.Min > *b.Max {
			return fmt.Errorf("%w: within_range[%s]: [%v, %v]", ErrInvalidBound, name, *b.Min, *b.Max)
		}
	}
	for i, m := range c.Monotonic {
		if m.Column == "" {
			return fmt.Errorf("%w: monotonic[%d]: column is required", ErrInvalidCheck, i)
		}
	}
	if c.WithinNStd != nil && c.WithinNStd.N <= 0 {
		return fmt.Errorf("%w: within_n_std: n must be positive, got %v", ErrInvalidCheck, c.WithinNStd.N)
	}
	if c.HasColumns != nil && len(c.HasColumns.Columns) == 0 {
		return fmt.Errorf("%w: has_columns: columns list is empty", ErrInvalidCheck)
	}
	return nil
}

// Rules builds the enabled checks against a frame, structural checks first
// so a schema problem is reported before the value scans it would confuse.
func (s *Suite) Rules(f *frame.Frame) []checks.Rule {
	c := s.Checks
	var rules []checks.Rule

	if c.HasColumns != nil {
		rules = append(rules, checks.HasColumns(f, c.HasColumns.Columns, c.HasColumns.Exclusive))
	}
	if len(c.Dtypes) > 0 {
		dtypes := make(map[string]frame.DType, len(c.Dtypes))
		for name, raw := range c.Dtypes {
			dt, _ := frame.ParseDType(raw) // validated at load time
			dtypes[name] = dt
		}
		rules = append(rules, checks.HasDtypes(f, dtypes))
	}
	if c.Shape != nil {
		rules = append(rules, checks.IsShape(f, dimOrAny(c.Shape.Rows), dimOrAny(c.Shape.Cols)))
	}
	if c.UniqueIndex {
		rules = append(rules, checks.UniqueIndex(f))
	}
	if c.Unique != nil {
		rules = append(rules, checks.Unique(f, c.Unique.Columns...))
	}
	for _, m := range c.Monotonic {
		increasing := m.Increasing == nil || *m.Increasing
		rules = append(rules, checks.Monotonic(f, m.Column, increasing, m.Strict))
	}
	if c.NoNaNs != nil {
		rules = append(rules, checks.HasNoNaNs(f, c.NoNaNs.Columns...))
	}
	if c.NoInfs != nil {
		rules = append(rules, checks.HasNoInfs(f, c.NoInfs.Columns...))
	}
	if c.NoNegInfs != nil {
		rules = append(rules, checks.HasNoNegInfs(f, c.NoNegInfs.Columns...))
	}
	if len(c.WithinRange) > 0 {
		bounds := make(map[string]checks.Range, len(c.WithinRange))
		for name, b := range c.WithinRange {
			bounds[name] = checks.Range{Min: lowerOrInf(b.Min), Max: upperOrInf(b.Max)}
		}
		rules = append(rules, checks.WithinRange(f, bounds))
	}
	if len(c.WithinSet) > 0 {
		rules = append(rules, checks.WithinSet(f, c.WithinSet))
	}
	if c.WithinNStd != nil {
		rules = append(rules, checks.WithinNStd(f, c.WithinNStd.N, c.WithinNStd.Columns...))
	}
	return rules
}

// Run evaluates the suite against a frame, failing fast unless fail_fast is
// explicitly false.
func (s *Suite) Run(f *frame.Frame) error {
	rules := s.Rules(f)
	if s.FailFast == nil || *s.FailFast {
		return checks.Verify(rules...)
	}
	return checks.Apply(rules...)
}

func dimOrAny(d *int) int {
	if d == nil {
		return checks.Any
	}
	return *d
}

func lowerOrInf(v *float64) float64 {
	if v == nil {
		return math.Inf(-1)
	}
	return *v
}

func upperOrInf(v *float64) float64 {
	if v == nil {
		return math.Inf(1)
	}
	return *v
}
