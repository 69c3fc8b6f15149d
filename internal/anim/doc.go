// Package anim implements composable, tick-driven terminal animations.
//
// The unit of composition is the Widget: it owns a surface, advances one
// discrete step per Tick, reports completion via Done, and restarts via
// Reset. Leaves (Sprite, Box, Text) put content on screen; combinators
// (Repeat, Forever, Row, Sequence, Padded, Moving) wrap widgets to derive
// composite behavior without knowing what they wrap.
//
// A typical composition:
//
//	wave, _ := anim.NewSprite(frames)
//	twice, _ := anim.NewRepeat(wave, 2)
//	label := anim.Text("loading", lipgloss.NewStyle().Bold(true))
//	root, _ := anim.NewRow(twice, label)
//
// The driver package advances a composition on a fixed period; the ui
// package hosts one inside a Bubble Tea program.
//
// Lifecycle contract: Done must be queried before each Tick, and a widget
// whose Done returned true must be Reset before it is ticked again. The
// auto-repeat combinators rely on that done-check boundary to roll a
// finished child over into its next run.
package anim
