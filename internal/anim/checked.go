package anim

import "marquee/internal/surface"

// Checked guards a widget against lifecycle misuse by a host: ticking after
// the widget reported done, with no reset in between, panics with a
// *SequenceError. Wrap only the top-level driven widget; containers are
// licensed to tick completed children and would trip the guard.
type Checked struct {
	child    Widget
	lastDone bool
}

var _ Widget = (*Checked)(nil)

// NewChecked wraps child in a lifecycle guard.
func NewChecked(child Widget) *Checked {
	return &Checked{child: child}
}

func (c *Checked) Surface() *surface.Surface { return c.child.Surface() }

func (c *Checked) Tick() {
	if c.lastDone {
		panic(&SequenceError{Widget: "Checked"})
	}
	c.child.Tick()
}

func (c *Checked) Done() bool {
	c.lastDone = c.child.Done()
	return c.lastDone
}

func (c *Checked) Reset() {
	c.child.Reset()
	c.lastDone = false
}
