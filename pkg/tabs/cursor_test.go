package tabs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRejectsEmptyLabelList(t *testing.T) {
	_, err := New()
	assert.ErrorIs(t, err, ErrNoTabs)
}

func TestNextWrapsFullCircle(t *testing.T) {
	for _, labels := range [][]string{
		{"analytics"},
		{"analytics", "listings", "billing"},
		{"overview", "pending", "approved", "marketplace", "locations", "analytics"},
	} {
		c := MustNew(labels...)
		for start := 0; start < len(labels); start++ {
			require.NoError(t, c.JumpTo(start))
			for i := 0; i < len(labels); i++ {
				c.Next()
			}
			assert.Equal(t, start, c.Index(), "next composed len times from %d", start)
		}
	}
}

func TestPrevUndoesNext(t *testing.T) {
	c := MustNew("overview", "pending", "approved", "marketplace")
	for start := 0; start < c.Len(); start++ {
		require.NoError(t, c.JumpTo(start))
		c.Next()
		c.Prev()
		assert.Equal(t, start, c.Index())
	}
}

func TestPrevWrapsToLast(t *testing.T) {
	c := MustNew("analytics", "listings", "billing")
	c.Prev()
	assert.Equal(t, 2, c.Index())
	assert.Equal(t, "billing", c.Current())
}

func TestJumpToOutOfRangeLeavesCursorIntact(t *testing.T) {
	c := MustNew("analytics", "listings", "billing")
	require.NoError(t, c.JumpTo(1))

	for _, i := range []int{-1, 3, 100} {
		err := c.JumpTo(i)
		assert.ErrorIs(t, err, ErrIndexOutOfRange)
		assert.Equal(t, 1, c.Index())
		assert.Equal(t, "listings", c.Current())
	}
}

func TestCursorsAreIndependent(t *testing.T) {
	a := MustNew("analytics", "listings", "billing")
	b := MustNew("analytics", "listings", "billing")
	a.Next()
	assert.Equal(t, 1, a.Index())
	assert.Equal(t, 0, b.Index())
}
