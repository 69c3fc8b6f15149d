package anim

import "marquee/internal/surface"

// Sequence plays its children one after another. A cursor marks the active
// child; Done advances the cursor past any children that report done, so a
// finished child never receives another tick. Only the active child is
// ticked.
//
// Done must be queried before each Tick; Tick alone cannot know the active
// child has finished. The driver guarantees that ordering.
type Sequence struct {
	children []Widget
	cursor   int
	surf     *surface.Surface
}

var _ Widget = (*Sequence)(nil)

// NewSequence builds a sequential composite over a non-empty child list.
// All child surfaces are attached to the container at construction, in
// play order.
func NewSequence(children ...Widget) (*Sequence, error) {
	if len(children) == 0 {
		return nil, &ConfigError{Widget: "Sequence", Reason: "child list must be non-empty"}
	}
	surf := surface.New()
	for _, c := range children {
		if c == nil {
			return nil, &ConfigError{Widget: "Sequence", Reason: "child must not be nil"}
		}
		surf.Attach(c.Surface())
	}
	return &Sequence{children: children, surf: surf}, nil
}

func (s *Sequence) Surface() *surface.Surface { return s.surf }

// Tick advances only the child under the cursor. Once the cursor has moved
// past the last child this is a no-op.
func (s *Sequence) Tick() {
	if s.cursor < len(s.children) {
		s.children[s.cursor].Tick()
	}
}

// Done skips the cursor past completed children, then reports whether any
// remain.
func (s *Sequence) Done() bool {
	for s.cursor < len(s.children) && s.children[s.cursor].Done() {
		s.cursor++
	}
	return s.cursor >= len(s.children)
}

func (s *Sequence) Reset() {
	for _, c := range s.children {
		c.Reset()
	}
	s.cursor = 0
}
