package checks_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ianozsvald/bulwark/pkg/checks"
	"github.com/ianozsvald/bulwark/pkg/frame"
)

func mustFrame(t *testing.T, index []string, series ...*frame.Series) *frame.Frame {
	t.Helper()
	f, err := frame.New(index, series...)
	require.NoError(t, err)
	return f
}

func firstViolation(t *testing.T, rule checks.Rule) checks.Violation {
	t.Helper()
	v := rule.Check()
	require.NotNil(t, v)
	return *v
}

func TestUniqueIndex(t *testing.T) {
	t.Parallel()

	t.Run("passes for unique labels", func(t *testing.T) {
		f := mustFrame(t, []string{"a", "b", "c"}, frame.FloatCol("x", 1, 2, 3))
		assert.Nil(t, checks.UniqueIndex(f).Check())
	})

	t.Run("fails on the first duplicated label", func(t *testing.T) {
		f := mustFrame(t, []string{"a", "b", "a", "b"}, frame.FloatCol("x", 1, 2, 3, 4))
		v := firstViolation(t, checks.UniqueIndex(f))
		assert.Equal(t, "a", v.Row)
		assert.Equal(t, checks.KindValue, v.Kind)
		assert.Contains(t, v.Message, `index label "a" occurs 2 times`)
	})

	t.Run("passes for empty frame", func(t *testing.T) {
		f := mustFrame(t, nil)
		assert.Nil(t, checks.UniqueIndex(f).Check())
	})
}

func TestUnique(t *testing.T) {
	t.Parallel()

	t.Run("passes for distinct column values", func(t *testing.T) {
		f := mustFrame(t, []string{"a", "b"}, frame.StringCol("id", "u1", "u2"))
		assert.Nil(t, checks.Unique(f, "id").Check())
	})

	t.Run("reports the second occurrence", func(t *testing.T) {
		f := mustFrame(t, []string{"a", "b", "c"}, frame.StringCol("id", "u1", "u2", "u1"))
		v := firstViolation(t, checks.Unique(f, "id"))
		assert.Equal(t, "id", v.Column)
		assert.Equal(t, "c", v.Row)
		assert.Contains(t, v.Message, `first seen at row "a"`)
	})

	t.Run("ignores missing cells", func(t *testing.T) {
		col := frame.StringCol("id", "u1", "x", "x")
		col.SetNA(1)
		col.SetNA(2)
		f := mustFrame(t, []string{"a", "b", "c"}, col)
		assert.Nil(t, checks.Unique(f, "id").Check())
	})

	t.Run("fails for unknown column", func(t *testing.T) {
		f := mustFrame(t, []string{"a"}, frame.FloatCol("x", 1))
		v := firstViolation(t, checks.Unique(f, "id"))
		assert.Equal(t, "id", v.Column)
		assert.Equal(t, "column does not exist", v.Message)
	})

	t.Run("defaults to every column", func(t *testing.T) {
		f := mustFrame(t, []string{"a", "b"},
			frame.FloatCol("x", 1, 2),
			frame.StringCol("id", "u1", "u1"),
		)
		v := firstViolation(t, checks.Unique(f))
		assert.Equal(t, "id", v.Column)
	})
}

func TestMonotonic(t *testing.T) {
	t.Parallel()

	t.Run("passes for non-decreasing values", func(t *testing.T) {
		f := mustFrame(t, []string{"a", "b", "c"}, frame.FloatCol("ts", 1, 1, 3))
		assert.Nil(t, checks.Monotonic(f, "ts", true, false).Check())
	})

	t.Run("strict rejects ties", func(t *testing.T) {
		f := mustFrame(t, []string{"a", "b", "c"}, frame.FloatCol("ts", 1, 1, 3))
		v := firstViolation(t, checks.Monotonic(f, "ts", true, true))
		assert.Equal(t, "b", v.Row)
		assert.Contains(t, v.Message, "strictly increasing")
	})

	t.Run("fails where decreasing order breaks", func(t *testing.T) {
		f := mustFrame(t, []string{"a", "b", "c"}, frame.FloatCol("ts", 3, 2, 4))
		v := firstViolation(t, checks.Monotonic(f, "ts", false, false))
		assert.Equal(t, "c", v.Row)
	})

	t.Run("skips missing cells", func(t *testing.T) {
		col := frame.FloatCol("ts", 1, 99, 3)
		col.SetNA(1)
		f := mustFrame(t, []string{"a", "b", "c"}, col)
		assert.Nil(t, checks.Monotonic(f, "ts", true, false).Check())
	})

	t.Run("type violation for string column", func(t *testing.T) {
		f := mustFrame(t, []string{"a"}, frame.StringCol("ts", "x"))
		v := firstViolation(t, checks.Monotonic(f, "ts", true, false))
		assert.Equal(t, checks.KindType, v.Kind)
	})
}
