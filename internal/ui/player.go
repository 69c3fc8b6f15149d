// Package ui hosts an animation composition inside a Bubble Tea program.
//
// The player is the synchronous twin of driver.Drive: it advances the
// widget on tea.Tick messages at the scene period, preserving the same
// tick-then-done ordering, and renders the widget's surface each frame.
package ui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"marquee/internal/anim"
)

// frameMsg advances the animation by one tick.
type frameMsg time.Time

type keyMap struct {
	Quit    key.Binding
	Restart key.Binding
	Pause   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Pause: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "pause/resume"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Pause, k.Restart, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Pause, k.Restart, k.Quit}}
}

// PlayerView plays one widget composition.
type PlayerView struct {
	widget anim.Widget
	period time.Duration
	keys   keyMap
	help   help.Model

	ticks    int
	paused   bool
	finished bool
	width    int
}

var _ tea.Model = (*PlayerView)(nil)

// NewPlayerView creates a player for the given composition and tick period.
func NewPlayerView(widget anim.Widget, period time.Duration) *PlayerView {
	return &PlayerView{
		widget: widget,
		period: period,
		keys:   defaultKeyMap(),
		help:   help.New(),
	}
}

// Init implements tea.Model. A composition that is already done is never
// ticked at all.
func (p *PlayerView) Init() tea.Cmd {
	if p.widget.Done() {
		p.finished = true
		return nil
	}
	return p.frame()
}

// frame schedules the next frameMsg one period out. Exactly one frame is in
// flight while the player is live; the chain ends when the widget finishes.
func (p *PlayerView) frame() tea.Cmd {
	return tea.Tick(p.period, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// Update implements tea.Model.
func (p *PlayerView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case frameMsg:
		if p.finished {
			return p, nil
		}
		if !p.paused {
			p.widget.Tick()
			p.ticks++
			if p.widget.Done() {
				p.finished = true
				return p, nil
			}
		}
		return p, p.frame()

	case tea.WindowSizeMsg:
		p.width = msg.Width
		p.help.Width = msg.Width
		return p, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, p.keys.Quit):
			return p, tea.Quit
		case key.Matches(msg, p.keys.Restart):
			p.widget.Reset()
			p.ticks = 0
			if p.finished {
				// The frame chain died when the run finished; restart it.
				p.finished = false
				if !p.paused {
					return p, p.frame()
				}
			}
			return p, nil
		case key.Matches(msg, p.keys.Pause):
			p.paused = !p.paused
			return p, nil
		}
	}
	return p, nil
}

// View implements tea.Model.
func (p *PlayerView) View() string {
	state := "playing"
	stateStyle := Styles.Status
	switch {
	case p.finished:
		state = "done"
	case p.paused:
		state = "paused"
		stateStyle = Styles.Paused
	}

	header := lipgloss.JoinHorizontal(lipgloss.Top,
		Styles.Title.Render("marquee"),
		Styles.Status.Render(fmt.Sprintf("  %d ticks · ", p.ticks)),
		stateStyle.Render(state),
	)
	stage := Styles.Stage.Render(p.widget.Surface().Render())
	return header + "\n" + stage + "\n" + p.help.View(p.keys) + "\n"
}

// Ticks reports how many animation steps have run since the last restart.
func (p *PlayerView) Ticks() int { return p.ticks }

// Finished reports whether the composition has completed.
func (p *PlayerView) Finished() bool { return p.finished }
