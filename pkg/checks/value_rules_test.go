package checks_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ianozsvald/bulwark/pkg/checks"
	"github.com/ianozsvald/bulwark/pkg/frame"
)

func TestHasNoNaNs(t *testing.T) {
	t.Parallel()

	t.Run("passes for complete frame", func(t *testing.T) {
		f := mustFrame(t, []string{"0", "1"},
			frame.FloatCol("x", 1, 2),
			frame.StringCol("name", "a", "b"),
		)
		assert.Nil(t, checks.HasNoNaNs(f).Check())
	})

	t.Run("reports first offending row and column", func(t *testing.T) {
		f := mustFrame(t, []string{"0", "1", "2", "3"},
			frame.FloatCol("feature1", 1, 2, 3, math.NaN()),
			frame.FloatCol("feature2", 5, 6, 7, 8),
		)
		v := firstViolation(t, checks.HasNoNaNs(f))
		assert.Equal(t, "3", v.Row)
		assert.Equal(t, "feature1", v.Column)
		assert.Equal(t, "missing value", v.Message)
		assert.Equal(t, checks.KindValue, v.Kind)
	})

	t.Run("only targeted columns are scanned", func(t *testing.T) {
		f := mustFrame(t, []string{"0"},
			frame.FloatCol("dirty", math.NaN()),
			frame.FloatCol("clean", 1),
		)
		assert.Nil(t, checks.HasNoNaNs(f, "clean").Check())
		v := firstViolation(t, checks.HasNoNaNs(f, "dirty"))
		assert.Equal(t, "dirty", v.Column)
	})

	t.Run("string NA cells count as missing", func(t *testing.T) {
		col := frame.StringCol("name", "a", "b")
		col.SetNA(1)
		f := mustFrame(t, []string{"0", "1"}, col)
		v := firstViolation(t, checks.HasNoNaNs(f))
		assert.Equal(t, "1", v.Row)
	})

	t.Run("fails for unknown column", func(t *testing.T) {
		f := mustFrame(t, []string{"0"}, frame.FloatCol("x", 1))
		v := firstViolation(t, checks.HasNoNaNs(f, "ghost"))
		assert.Equal(t, "column does not exist", v.Message)
	})
}

func TestHasNoInfs(t *testing.T) {
	t.Parallel()

	t.Run("catches infinity of either sign", func(t *testing.T) {
		f := mustFrame(t, []string{"0", "1"}, frame.FloatCol("x", math.Inf(1), 2))
		v := firstViolation(t, checks.HasNoInfs(f))
		assert.Equal(t, "0", v.Row)
		assert.Equal(t, "infinite value", v.Message)
	})

	t.Run("skips string columns when unscoped", func(t *testing.T) {
		f := mustFrame(t, []string{"0"},
			frame.StringCol("name", "a"),
			frame.FloatCol("x", 1),
		)
		assert.Nil(t, checks.HasNoInfs(f).Check())
	})

	t.Run("type violation when a string column is named", func(t *testing.T) {
		f := mustFrame(t, []string{"0"}, frame.StringCol("name", "a"))
		v := firstViolation(t, checks.HasNoInfs(f, "name"))
		assert.Equal(t, checks.KindType, v.Kind)
	})
}

func TestHasNoNegInfs(t *testing.T) {
	t.Parallel()

	t.Run("log of zero triggers failure at that entry", func(t *testing.T) {
		f := mustFrame(t, []string{"a", "b", "c"}, frame.FloatCol("income", 100, 0, 50))
		logged, err := f.MapFloat("income", math.Log)
		require.NoError(t, err)

		v := firstViolation(t, checks.HasNoNegInfs(logged, "income"))
		assert.Equal(t, "b", v.Row)
		assert.Equal(t, "income", v.Column)
		assert.Equal(t, "negative infinite value", v.Message)
	})

	t.Run("positive infinity passes", func(t *testing.T) {
		f := mustFrame(t, []string{"0"}, frame.FloatCol("x", math.Inf(1)))
		assert.Nil(t, checks.HasNoNegInfs(f).Check())
	})
}

func TestWithinRange(t *testing.T) {
	t.Parallel()

	ages := func(t *testing.T, vals ...float64) *frame.Frame {
		t.Helper()
		return mustFrame(t, []string{"0", "1", "2"}[:len(vals)], frame.FloatCol("age", vals...))
	}

	t.Run("ages 23 72 0 fail bound [1, 125]", func(t *testing.T) {
		f := ages(t, 23, 72, 0)
		v := firstViolation(t, checks.WithinRange(f, map[string]checks.Range{"age": {Min: 1, Max: 125}}))
		assert.Equal(t, "2", v.Row)
		assert.Equal(t, "age", v.Column)
		assert.Equal(t, 0.0, v.Value)
	})

	t.Run("ages 23 72 0 pass bound [0, 125]", func(t *testing.T) {
		f := ages(t, 23, 72, 0)
		assert.Nil(t, checks.WithinRange(f, map[string]checks.Range{"age": {Min: 0, Max: 125}}).Check())
	})

	t.Run("bounds are inclusive", func(t *testing.T) {
		f := ages(t, 1, 125)
		assert.Nil(t, checks.WithinRange(f, map[string]checks.Range{"age": {Min: 1, Max: 125}}).Check())
	})

	t.Run("upper bound violation", func(t *testing.T) {
		f := ages(t, 23, 130)
		v := firstViolation(t, checks.WithinRange(f, map[string]checks.Range{"age": {Min: 1, Max: 125}}))
		assert.Contains(t, v.Message, "value 130 outside [1, 125]")
	})

	t.Run("missing cells are skipped", func(t *testing.T) {
		f := ages(t, 23, math.NaN())
		assert.Nil(t, checks.WithinRange(f, map[string]checks.Range{"age": {Min: 1, Max: 125}}).Check())
	})

	t.Run("type violation for string column", func(t *testing.T) {
		f := mustFrame(t, []string{"0"}, frame.StringCol("age", "old"))
		v := firstViolation(t, checks.WithinRange(f, map[string]checks.Range{"age": {Min: 1, Max: 125}}))
		assert.Equal(t, checks.KindType, v.Kind)
	})

	t.Run("fails for unknown column", func(t *testing.T) {
		f := mustFrame(t, []string{"0"}, frame.FloatCol("x", 1))
		v := firstViolation(t, checks.WithinRange(f, map[string]checks.Range{"ghost": {Min: 0, Max: 1}}))
		assert.Equal(t, "ghost", v.Column)
	})
}

func TestWithinSet(t *testing.T) {
	t.Parallel()

	t.Run("passes when every value is allowed", func(t *testing.T) {
		f := mustFrame(t, []string{"0", "1"}, frame.StringCol("segment", "retail", "wholesale"))
		rule := checks.WithinSet(f, map[string][]any{"segment": {"retail", "wholesale"}})
		assert.Nil(t, rule.Check())
	})

	t.Run("fails on a value outside the set", func(t *testing.T) {
		f := mustFrame(t, []string{"0", "1"}, frame.StringCol("segment", "retail", "internal"))
		v := firstViolation(t, checks.WithinSet(f, map[string][]any{"segment": {"retail", "wholesale"}}))
		assert.Equal(t, "1", v.Row)
		assert.Equal(t, "internal", v.Value)
	})

	t.Run("int set members match float columns", func(t *testing.T) {
		f := mustFrame(t, []string{"0", "1"}, frame.FloatCol("rating", 1, 5))
		rule := checks.WithinSet(f, map[string][]any{"rating": {1, 2, 3, 4, 5}})
		assert.Nil(t, rule.Check())
	})

	t.Run("missing cells are skipped", func(t *testing.T) {
		col := frame.StringCol("segment", "retail", "x")
		col.SetNA(1)
		f := mustFrame(t, []string{"0", "1"}, col)
		rule := checks.WithinSet(f, map[string][]any{"segment": {"retail"}})
		assert.Nil(t, rule.Check())
	})
}

func TestWithinNStd(t *testing.T) {
	t.Parallel()

	t.Run("passes for tight data", func(t *testing.T) {
		f := mustFrame(t, []string{"0", "1", "2", "3"}, frame.FloatCol("x", 10, 11, 9, 10))
		assert.Nil(t, checks.WithinNStd(f, 3, "x").Check())
	})

	t.Run("fails on an outlier", func(t *testing.T) {
		f := mustFrame(t, []string{"0", "1", "2", "3", "4"}, frame.FloatCol("x", 10, 11, 9, 10, 1000))
		v := firstViolation(t, checks.WithinNStd(f, 2, "x"))
		assert.Equal(t, "4", v.Row)
		assert.Equal(t, 1000.0, v.Value)
	})

	t.Run("skips string columns when unscoped", func(t *testing.T) {
		f := mustFrame(t, []string{"0"},
			frame.StringCol("name", "a"),
			frame.FloatCol("x", 1),
		)
		assert.Nil(t, checks.WithinNStd(f, 3).Check())
	})

	t.Run("constant column never fails", func(t *testing.T) {
		f := mustFrame(t, []string{"0", "1"}, frame.FloatCol("x", 5, 5))
		assert.Nil(t, checks.WithinNStd(f, 1, "x").Check())
	})
}
