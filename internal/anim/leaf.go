package anim

import (
	"github.com/charmbracelet/lipgloss"

	"marquee/internal/surface"
)

// Box returns a static widget drawing lines inside a rounded border with
// the given style. The content is rendered once at construction.
func Box(lines []string, style lipgloss.Style) Static {
	boxed := style.Border(lipgloss.RoundedBorder()).Padding(0, 1)
	surf := surface.New(surface.WithStyle(boxed))
	surf.SetContent(lines)
	return NewStatic(surf)
}

// Text returns a static widget showing a single styled string.
func Text(text string, style lipgloss.Style) Static {
	surf := surface.New(surface.WithStyle(style))
	surf.SetText(text)
	return NewStatic(surf)
}
