package ui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"marquee/internal/anim"
)

func keyMsg(s string) tea.KeyMsg {
	if s == "space" {
		return tea.KeyMsg{Type: tea.KeySpace}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func testSprite(t *testing.T) *anim.Sprite {
	t.Helper()
	s, err := anim.NewSprite([]anim.Frame{{"one"}, {"two"}, {"three"}})
	if err != nil {
		t.Fatalf("NewSprite: %v", err)
	}
	return s
}

// step delivers one frame message, returning the follow-up command.
func step(p *PlayerView) tea.Cmd {
	_, cmd := p.Update(frameMsg(time.Now()))
	return cmd
}

func TestPlayer_AdvancesOneTickPerFrame(t *testing.T) {
	sprite := testSprite(t)
	p := NewPlayerView(sprite, 50*time.Millisecond)

	if cmd := p.Init(); cmd == nil {
		t.Fatal("Init should schedule the first frame")
	}

	if cmd := step(p); cmd == nil {
		t.Fatal("mid-animation frame should schedule the next one")
	}
	if p.Ticks() != 1 {
		t.Errorf("ticks = %d after one frame, want 1", p.Ticks())
	}
	if !strings.Contains(p.View(), "two") {
		t.Errorf("view not showing advanced frame:\n%s", p.View())
	}
}

func TestPlayer_FrameChainEndsWhenDone(t *testing.T) {
	p := NewPlayerView(testSprite(t), 50*time.Millisecond)
	p.Init()

	var cmd tea.Cmd
	for i := 0; i < 3; i++ {
		cmd = step(p)
	}
	if cmd != nil {
		t.Error("finishing frame should not schedule another")
	}
	if !p.Finished() {
		t.Error("player not finished after the sprite completed")
	}
	if p.Ticks() != 3 {
		t.Errorf("ticks = %d, want 3", p.Ticks())
	}

	// A stray frame after completion stays quiet.
	if cmd := step(p); cmd != nil {
		t.Error("frame after completion restarted the chain")
	}
	if p.Ticks() != 3 {
		t.Errorf("stray frame advanced the widget: ticks = %d", p.Ticks())
	}
}

func TestPlayer_AlreadyDoneWidgetNeverTicks(t *testing.T) {
	sprite := testSprite(t)
	zero, err := anim.NewRepeat(sprite, 0)
	if err != nil {
		t.Fatalf("NewRepeat: %v", err)
	}
	p := NewPlayerView(zero, 50*time.Millisecond)

	if cmd := p.Init(); cmd != nil {
		t.Error("Init scheduled a frame for a completed widget")
	}
	if !p.Finished() {
		t.Error("player should start finished for a completed widget")
	}
	if sprite.FrameIndex() != 0 {
		t.Errorf("sprite was ticked: index %d", sprite.FrameIndex())
	}
}

func TestPlayer_PauseHoldsStateButKeepsChain(t *testing.T) {
	p := NewPlayerView(testSprite(t), 50*time.Millisecond)
	p.Init()
	step(p)

	p.Update(keyMsg("space"))
	if cmd := step(p); cmd == nil {
		t.Fatal("paused frame should keep the chain alive")
	}
	if p.Ticks() != 1 {
		t.Errorf("paused frame advanced the widget: ticks = %d", p.Ticks())
	}

	p.Update(keyMsg("space"))
	step(p)
	if p.Ticks() != 2 {
		t.Errorf("resume did not advance: ticks = %d", p.Ticks())
	}
}

func TestPlayer_RestartAfterFinish(t *testing.T) {
	p := NewPlayerView(testSprite(t), 50*time.Millisecond)
	p.Init()
	for i := 0; i < 3; i++ {
		step(p)
	}
	if !p.Finished() {
		t.Fatal("player should be finished")
	}

	_, cmd := p.Update(keyMsg("r"))
	if cmd == nil {
		t.Fatal("restart after finish should reschedule frames")
	}
	if p.Finished() || p.Ticks() != 0 {
		t.Errorf("restart left finished=%v ticks=%d", p.Finished(), p.Ticks())
	}
	if !strings.Contains(p.View(), "one") {
		t.Errorf("restart did not re-render the first frame:\n%s", p.View())
	}
}

func TestPlayer_RestartWhileRunningKeepsSingleChain(t *testing.T) {
	p := NewPlayerView(testSprite(t), 50*time.Millisecond)
	p.Init()
	step(p)

	// The in-flight frame keeps the chain going; restart must not start a
	// second one.
	_, cmd := p.Update(keyMsg("r"))
	if cmd != nil {
		t.Error("restart while running scheduled a duplicate frame chain")
	}
	if p.Ticks() != 0 {
		t.Errorf("restart did not clear ticks: %d", p.Ticks())
	}
}

func TestPlayer_QuitKey(t *testing.T) {
	p := NewPlayerView(testSprite(t), 50*time.Millisecond)
	_, cmd := p.Update(keyMsg("q"))
	if cmd == nil {
		t.Fatal("q should quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("q produced %T, want tea.QuitMsg", cmd())
	}
}

func TestPlayer_ViewShowsState(t *testing.T) {
	p := NewPlayerView(testSprite(t), 50*time.Millisecond)
	p.Init()

	if !strings.Contains(p.View(), "playing") {
		t.Errorf("view missing playing state:\n%s", p.View())
	}
	p.Update(keyMsg("space"))
	if !strings.Contains(p.View(), "paused") {
		t.Errorf("view missing paused state:\n%s", p.View())
	}
	p.Update(keyMsg("space"))
	for i := 0; i < 3; i++ {
		step(p)
	}
	if !strings.Contains(p.View(), "done") {
		t.Errorf("view missing done state:\n%s", p.View())
	}
}
