package anim

import "marquee/internal/surface"

// Forever replays its child indefinitely. Each time the child finishes a run,
// Done resets it and reports false; a Forever widget is never done. Like
// Repeat, Done carries that reset side effect at the run boundary.
type Forever struct {
	child Widget
}

var _ Widget = (*Forever)(nil)

// NewForever wraps child in unbounded repetition.
func NewForever(child Widget) (*Forever, error) {
	if child == nil {
		return nil, &ConfigError{Widget: "Forever", Reason: "child must not be nil"}
	}
	return &Forever{child: child}, nil
}

func (f *Forever) Surface() *surface.Surface { return f.child.Surface() }

func (f *Forever) Tick() { f.child.Tick() }

func (f *Forever) Done() bool {
	if f.child.Done() {
		f.child.Reset()
	}
	return false
}

func (f *Forever) Reset() { f.child.Reset() }
