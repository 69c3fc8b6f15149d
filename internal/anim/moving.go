package anim

import "marquee/internal/surface"

// PositionFunc maps elapsed ticks to a position offset in cells. It must be
// pure: the same elapsed value always yields the same offset.
type PositionFunc func(elapsed int) (left, top int)

// Moving repositions its child over time. Each tick advances an elapsed
// counter, applies the position for the new elapsed value, and then ticks
// the child, in that order. Moving is done once elapsed reaches maxTime,
// independent of the child's own completion.
type Moving struct {
	child   Widget
	surf    *surface.Surface
	at      PositionFunc
	maxTime int
	elapsed int
}

var _ Widget = (*Moving)(nil)

// NewMoving wraps child in a positioned container that follows at for
// maxTime ticks. The position for elapsed 0 is applied immediately.
func NewMoving(child Widget, maxTime int, at PositionFunc) (*Moving, error) {
	if child == nil {
		return nil, &ConfigError{Widget: "Moving", Reason: "child must not be nil"}
	}
	if at == nil {
		return nil, &ConfigError{Widget: "Moving", Reason: "position function must not be nil"}
	}
	if maxTime <= 0 {
		return nil, &ConfigError{Widget: "Moving", Reason: "maxTime must be positive"}
	}
	surf := surface.New()
	surf.Attach(child.Surface())
	m := &Moving{child: child, surf: surf, at: at, maxTime: maxTime}
	m.surf.SetOffset(at(0))
	return m, nil
}

func (m *Moving) Surface() *surface.Surface { return m.surf }

func (m *Moving) Tick() {
	if m.elapsed >= m.maxTime {
		return
	}
	m.elapsed++
	m.surf.SetOffset(m.at(m.elapsed))
	m.child.Tick()
}

func (m *Moving) Done() bool {
	return m.elapsed >= m.maxTime
}

// Reset restores both the child and the motion: elapsed returns to zero and
// the starting position is re-applied, so a Moving nested under Repeat or
// Sequence restarts its path on every run.
func (m *Moving) Reset() {
	m.child.Reset()
	m.elapsed = 0
	m.surf.SetOffset(m.at(0))
}

// Elapsed reports how many ticks of motion have occurred.
func (m *Moving) Elapsed() int { return m.elapsed }
