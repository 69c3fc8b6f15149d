package anim

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"

	"marquee/internal/surface"
)

// SpriteFromSpinner adapts a bubbles spinner frame set into a Sprite,
// returning the period the spinner was designed for. The sprite plays one
// cycle; wrap it in Forever for the usual endless spin.
func SpriteFromSpinner(sp spinner.Spinner, opts ...surface.Option) (*Sprite, time.Duration, error) {
	frames := make([]Frame, len(sp.Frames))
	for i, f := range sp.Frames {
		frames[i] = Frame{f}
	}
	s, err := NewSprite(frames, opts...)
	if err != nil {
		return nil, 0, err
	}
	return s, sp.FPS, nil
}
