// Package tabs provides the wrap-around cursor that drives sub-navigation
// inside the dashboard pages. Each page owns an independent Cursor over its
// own fixed label list; instances never share state.
package tabs

import "fmt"

var (
	ErrNoTabs          = fmt.Errorf("cursor requires at least one tab")
	ErrIndexOutOfRange = fmt.Errorf("tab index out of range")
)

type Cursor struct {
	labels []string
	index  int
}

func New(labels ...string) (*Cursor, error) {
	if len(labels) == 0 {
		return nil, ErrNoTabs
	}
	ls := make([]string, len(labels))
	copy(ls, labels)
	return &Cursor{labels: ls}, nil
}

// MustNew panics on an empty label list. Pages with compile-time label lists
// use this in their constructors.
func MustNew(labels ...string) *Cursor {
	c, err := New(labels...)
	if err != nil {
		panic(err)
	}
	return c
}

// Next advances the cursor, wrapping from the last tab to the first.
func (c *Cursor) Next() {
	c.index = (c.index + 1) % len(c.labels)
}

// Prev moves the cursor back, wrapping from the first tab to the last.
func (c *Cursor) Prev() {
	c.index = (c.index - 1 + len(c.labels)) % len(c.labels)
}

// JumpTo moves directly to index i. Out-of-range indexes are rejected and
// leave the cursor where it was.
func (c *Cursor) JumpTo(i int) error {
	if i < 0 || i >= len(c.labels) {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrIndexOutOfRange, i, len(c.labels))
	}
	c.index = i
	return nil
}

func (c *Cursor) Current() string {
	return c.labels[c.index]
}

func (c *Cursor) Index() int {
	return c.index
}

func (c *Cursor) Len() int {
	return len(c.labels)
}

// Labels returns a copy of the tab labels in display order.
func (c *Cursor) Labels() []string {
	ls := make([]string, len(c.labels))
	copy(ls, c.labels)
	return ls
}
