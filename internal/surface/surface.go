// Package surface provides the drawable handle that animation widgets own.
//
// A Surface is deliberately opaque to the animation core: widgets hold one,
// mutate its content or offset, and attach child surfaces at construction
// time, but only hosts ever resolve a surface to terminal output via Render.
package surface

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Surface is a handle to a rectangular drawable region. A surface either
// carries its own content (leaf) or an ordered list of attached children
// rendered side by side. The handle identity is fixed at construction;
// only content and offset change afterwards, and only through the widget
// that owns the surface.
type Surface struct {
	style    lipgloss.Style
	content  string
	children []*Surface
	left     int
	top      int
	padding  int
}

// Option configures a surface at construction.
type Option func(*Surface)

// WithStyle sets the lipgloss style applied when the surface renders.
func WithStyle(style lipgloss.Style) Option {
	return func(s *Surface) { s.style = style }
}

// WithPadding adds a fixed margin of the given number of cells on every side.
func WithPadding(cells int) Option {
	return func(s *Surface) { s.padding = cells }
}

// New creates an empty surface.
func New(opts ...Option) *Surface {
	s := &Surface{style: lipgloss.NewStyle()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Attach appends child to this surface. Attachment order determines
// left-to-right render order and is fixed for the life of the parent.
func (s *Surface) Attach(child *Surface) {
	s.children = append(s.children, child)
}

// SetContent replaces the surface's visible lines. Children, if any,
// take precedence over content at render time.
func (s *Surface) SetContent(lines []string) {
	s.content = strings.Join(lines, "\n")
}

// SetText replaces the surface's visible content with a single string.
func (s *Surface) SetText(text string) {
	s.content = text
}

// SetOffset positions the surface left cells from the left edge and top
// cells below the top edge of its parent.
func (s *Surface) SetOffset(left, top int) {
	s.left = left
	s.top = top
}

// Offset reports the current position offset.
func (s *Surface) Offset() (left, top int) {
	return s.left, s.top
}

// Render resolves the surface tree to a string frame. Children are joined
// horizontally in attachment order, top-aligned. The animation core never
// calls Render; hosts do, once per displayed frame.
func (s *Surface) Render() string {
	body := s.content
	if len(s.children) > 0 {
		parts := make([]string, len(s.children))
		for i, c := range s.children {
			parts[i] = c.Render()
		}
		body = lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	}

	style := s.style
	if s.padding > 0 {
		style = style.Padding(s.padding)
	}
	if s.left > 0 {
		style = style.MarginLeft(s.left)
	}
	if s.top > 0 {
		style = style.MarginTop(s.top)
	}
	return style.Render(body)
}
