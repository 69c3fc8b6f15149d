package anim

import "marquee/internal/surface"

// Widget is the unit of animatable, renderable state.
//
// A widget owns a surface, advances its visible state one discrete step per
// Tick, reports completion of its current run via Done, and returns to its
// initial state on Reset. Drivers must never Tick a widget whose Done has
// already returned true without an intervening Reset; see the driver package
// for the enforced ordering.
type Widget interface {
	// Surface returns the handle representing this widget visually.
	// The same handle is returned on every call.
	Surface() *surface.Surface

	// Tick advances internal state by exactly one step. It may mutate the
	// surface's visible content or offset, and nothing else.
	Tick()

	// Done reports whether the current run has completed. It is a pure
	// query for every widget except the auto-repeat combinators (Repeat,
	// Forever), which reset their child as a side effect at the run
	// boundary; those cases are called out on the types themselves.
	Done() bool

	// Reset returns the widget, and recursively anything it wraps, to its
	// initial state. It never replaces the surface handle.
	Reset()
}

// Static is a widget with no animation: it exists only to put a surface on
// screen. Done is unconditionally true, Tick and Reset are no-ops.
type Static struct {
	surf *surface.Surface
}

var _ Widget = Static{}

// NewStatic wraps an already-rendered surface in a completed widget.
func NewStatic(surf *surface.Surface) Static {
	return Static{surf: surf}
}

func (s Static) Surface() *surface.Surface { return s.surf }

func (Static) Tick() {}

func (Static) Done() bool { return true }

func (Static) Reset() {}
