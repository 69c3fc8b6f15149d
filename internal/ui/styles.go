package ui

import "github.com/charmbracelet/lipgloss"

// Theme colors used by the player chrome.
const (
	ColorAccent = "86"  // cyan/green - title
	ColorMuted  = "241" // gray - hints, status
	ColorWarn   = "208" // orange - paused indicator
)

// Styles contains shared style definitions for the player view.
var Styles = struct {
	Title  lipgloss.Style // bold accent - header line
	Status lipgloss.Style // muted - tick counter and state
	Paused lipgloss.Style // warning color - paused state
	Stage  lipgloss.Style // breathing room around the animation surface
}{
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	Status: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Paused: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorWarn)),
	Stage: lipgloss.NewStyle().
		Padding(1, 2),
}
