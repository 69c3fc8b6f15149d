package anim

import "marquee/internal/surface"

// Row plays its children in parallel, rendered side by side in list order.
// Every tick reaches every child, including children that are already done;
// leaf widgets keep extra ticks harmless, and auto-repeat children use the
// done query to roll over into their next run.
type Row struct {
	children []Widget
	surf     *surface.Surface
}

var _ Widget = (*Row)(nil)

// NewRow builds a parallel composite over a non-empty child list. The
// container surface is assembled once here; child order fixes the visual
// left-to-right order for the life of the composite.
func NewRow(children ...Widget) (*Row, error) {
	if len(children) == 0 {
		return nil, &ConfigError{Widget: "Row", Reason: "child list must be non-empty"}
	}
	surf := surface.New()
	for _, c := range children {
		if c == nil {
			return nil, &ConfigError{Widget: "Row", Reason: "child must not be nil"}
		}
		surf.Attach(c.Surface())
	}
	return &Row{children: children, surf: surf}, nil
}

func (r *Row) Surface() *surface.Surface { return r.surf }

func (r *Row) Tick() {
	for _, c := range r.children {
		c.Tick()
	}
}

// Done is true once every child is done. Children are queried left to right
// and every child is queried on every call, even after one reports not done,
// so that auto-repeat children can take their run-boundary side effects.
func (r *Row) Done() bool {
	done := true
	for _, c := range r.children {
		if !c.Done() {
			done = false
		}
	}
	return done
}

func (r *Row) Reset() {
	for _, c := range r.children {
		c.Reset()
	}
}
