package anim

import "marquee/internal/surface"

// DefaultPadding is the margin, in cells, that scene files use when a
// padded node gives no explicit size.
const DefaultPadding = 1

// Padded decorates its child's surface with a fixed margin on all sides.
// It changes nothing about the state machine: Tick, Done, and Reset are
// explicit pass-throughs to the child. Writing them out matters; a Padded
// built on Static defaults would silently stop forwarding lifecycle calls
// to an animated child.
type Padded struct {
	child Widget
	surf  *surface.Surface
}

var _ Widget = (*Padded)(nil)

// NewPadded wraps child in cells of padding on every side.
func NewPadded(child Widget, cells int) (*Padded, error) {
	if child == nil {
		return nil, &ConfigError{Widget: "Padded", Reason: "child must not be nil"}
	}
	if cells < 0 {
		return nil, &ConfigError{Widget: "Padded", Reason: "padding must not be negative"}
	}
	surf := surface.New(surface.WithPadding(cells))
	surf.Attach(child.Surface())
	return &Padded{child: child, surf: surf}, nil
}

func (p *Padded) Surface() *surface.Surface { return p.surf }

func (p *Padded) Tick() { p.child.Tick() }

func (p *Padded) Done() bool { return p.child.Done() }

func (p *Padded) Reset() { p.child.Reset() }
