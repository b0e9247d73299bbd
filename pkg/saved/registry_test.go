package saved

import (
	"testing"

	"github.com/stretchr/testify/assert"

	v1 "github.com/preferreddeals/prefdeals/pkg/types/v1"
)

func TestToggleIsAnInvolution(t *testing.T) {
	r := NewRegistry()
	r.Toggle("biz-1")
	r.Toggle("biz-2")

	before := r.Contains("biz-1")
	r.Toggle("biz-1")
	r.Toggle("biz-1")
	assert.Equal(t, before, r.Contains("biz-1"))

	before = r.Contains("biz-3")
	r.Toggle("biz-3")
	r.Toggle("biz-3")
	assert.Equal(t, before, r.Contains("biz-3"))
}

func TestListPreservesInsertionOrder(t *testing.T) {
	r := NewRegistry()
	r.Toggle("c")
	r.Toggle("a")
	r.Toggle("b")
	assert.Equal(t, []v1.ID{"c", "a", "b"}, r.List())

	// Removing from the middle keeps the rest in order.
	r.Toggle("a")
	assert.Equal(t, []v1.ID{"c", "b"}, r.List())

	// Re-saving appends at the end.
	r.Toggle("a")
	assert.Equal(t, []v1.ID{"c", "b", "a"}, r.List())
}

func TestClear(t *testing.T) {
	r := NewRegistry()
	r.Toggle("x")
	r.Toggle("y")
	r.Clear()
	assert.Zero(t, r.Len())
	assert.False(t, r.Contains("x"))
	assert.Empty(t, r.List())
}
