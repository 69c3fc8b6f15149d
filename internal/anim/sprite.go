package anim

import "marquee/internal/surface"

// Frame is one sprite frame: an ordered list of text lines.
type Frame []string

// Sprite plays an ordered sequence of frames, one per tick. Frame 0 is
// rendered into the surface at construction. Ticking past the last frame
// leaves the last rendered frame on screen; there is no wraparound.
type Sprite struct {
	frames []Frame
	index  int
	surf   *surface.Surface
}

var _ Widget = (*Sprite)(nil)

// NewSprite creates a sprite from a non-empty frame sequence.
func NewSprite(frames []Frame, opts ...surface.Option) (*Sprite, error) {
	if len(frames) == 0 {
		return nil, &ConfigError{Widget: "Sprite", Reason: "frame sequence must be non-empty"}
	}
	s := &Sprite{frames: frames, surf: surface.New(opts...)}
	s.surf.SetContent(frames[0])
	return s, nil
}

func (s *Sprite) Surface() *surface.Surface { return s.surf }

// Tick advances to the next frame. Once past the end it is a no-op, which
// keeps sprites safe to tick inside containers that tick every child.
func (s *Sprite) Tick() {
	s.index++
	if s.index < len(s.frames) {
		s.surf.SetContent(s.frames[s.index])
	}
}

func (s *Sprite) Done() bool {
	return s.index >= len(s.frames)
}

func (s *Sprite) Reset() {
	s.index = 0
	s.surf.SetContent(s.frames[0])
}

// FrameIndex reports the current frame cursor. It can sit one past the last
// frame when the sprite is done.
func (s *Sprite) FrameIndex() int { return s.index }
