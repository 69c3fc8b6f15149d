package anim

import "marquee/internal/surface"

// Repeat plays its child to completion a fixed number of times.
//
// Done is NOT a pure query here: when the child finishes a run with runs
// still remaining, Done consumes one run, resets the child, and reports
// false so the driver keeps ticking. The run transition happens exactly at
// the done-check boundary, never mid-tick. On the final run Done reports
// true without resetting the child, so the child's last frame stays on
// screen and the child receives no tick beyond its runs.
type Repeat struct {
	child     Widget
	times     int
	remaining int
}

var _ Widget = (*Repeat)(nil)

// NewRepeat wraps child to play times complete runs. A count of zero is
// valid and produces an immediately-done widget that never ticks the child.
func NewRepeat(child Widget, times int) (*Repeat, error) {
	if child == nil {
		return nil, &ConfigError{Widget: "Repeat", Reason: "child must not be nil"}
	}
	if times < 0 {
		return nil, &ConfigError{Widget: "Repeat", Reason: "times must not be negative"}
	}
	return &Repeat{child: child, times: times, remaining: times}, nil
}

func (r *Repeat) Surface() *surface.Surface { return r.child.Surface() }

func (r *Repeat) Tick() { r.child.Tick() }

func (r *Repeat) Done() bool {
	if r.remaining <= 0 {
		return true
	}
	if r.child.Done() {
		r.remaining--
		if r.remaining <= 0 {
			return true
		}
		r.child.Reset()
	}
	return false
}

func (r *Repeat) Reset() {
	r.remaining = r.times
	r.child.Reset()
}
