// Package scene loads declarative animation definitions from YAML.
//
// A scene file names its sprites, gives a tick period, and describes one
// composition tree:
//
//	period: 120ms
//	sprites:
//	  wave:
//	    frames:
//	      - [" o ", "/|\\"]
//	      - ["\\o/", " | "]
//	root:
//	  sequence:
//	    - repeat: {times: 2, child: {sprite: wave}}
//	    - moving:
//	        over: 6
//	        from: {left: 0, top: 0}
//	        to: {left: 12, top: 0}
//	        child: {text: ">>"}
package scene

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"marquee/internal/anim"
)

// DefaultPeriod applies when a scene file gives no period.
const DefaultPeriod = 100 * time.Millisecond

// Scene is a built, playable composition.
type Scene struct {
	Root   anim.Widget
	Period time.Duration
}

// File mirrors the YAML document structure.
type File struct {
	Period  string               `yaml:"period,omitempty"`
	Sprites map[string]SpriteDef `yaml:"sprites,omitempty"`
	Root    Node                 `yaml:"root"`
}

// SpriteDef is a named frame sequence.
type SpriteDef struct {
	Frames [][]string `yaml:"frames"`
}

// Node is one widget in the composition tree. Exactly one field may be set.
type Node struct {
	Sprite   string      `yaml:"sprite,omitempty"`
	Text     string      `yaml:"text,omitempty"`
	Box      []string    `yaml:"box,omitempty"`
	Repeat   *RepeatNode `yaml:"repeat,omitempty"`
	Forever  *Node       `yaml:"forever,omitempty"`
	Row      []Node      `yaml:"row,omitempty"`
	Sequence []Node      `yaml:"sequence,omitempty"`
	Padded   *PaddedNode `yaml:"padded,omitempty"`
	Moving   *MovingNode `yaml:"moving,omitempty"`
}

// RepeatNode plays its child a fixed number of times.
type RepeatNode struct {
	Times int  `yaml:"times"`
	Child Node `yaml:"child"`
}

// PaddedNode adds margin around its child. Cells defaults to
// anim.DefaultPadding when omitted.
type PaddedNode struct {
	Cells *int `yaml:"cells,omitempty"`
	Child Node `yaml:"child"`
}

// MovingNode moves its child along a straight line over a number of ticks.
type MovingNode struct {
	Over  int    `yaml:"over"`
	From  Offset `yaml:"from"`
	To    Offset `yaml:"to"`
	Child Node   `yaml:"child"`
}

// Offset is a position in cells.
type Offset struct {
	Left int `yaml:"left"`
	Top  int `yaml:"top"`
}

// Load reads and builds a scene file.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene: %w", err)
	}
	return Parse(data)
}

// Parse builds a scene from YAML bytes.
func Parse(data []byte) (*Scene, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse scene: %w", err)
	}

	period := DefaultPeriod
	if f.Period != "" {
		d, err := time.ParseDuration(f.Period)
		if err != nil {
			return nil, fmt.Errorf("invalid period %q: %w", f.Period, err)
		}
		if d <= 0 {
			return nil, fmt.Errorf("invalid period %q: must be positive", f.Period)
		}
		period = d
	}

	root, err := build(f.Root, f.Sprites)
	if err != nil {
		return nil, err
	}
	return &Scene{Root: root, Period: period}, nil
}

// build recursively turns a node into a widget.
func build(n Node, sprites map[string]SpriteDef) (anim.Widget, error) {
	if err := checkOneKind(n); err != nil {
		return nil, err
	}

	switch {
	case n.Sprite != "":
		def, ok := sprites[n.Sprite]
		if !ok {
			return nil, fmt.Errorf("unknown sprite %q", n.Sprite)
		}
		frames := make([]anim.Frame, len(def.Frames))
		for i, lines := range def.Frames {
			frames[i] = anim.Frame(lines)
		}
		return anim.NewSprite(frames)

	case n.Text != "":
		return anim.Text(n.Text, lipgloss.NewStyle()), nil

	case len(n.Box) > 0:
		return anim.Box(n.Box, lipgloss.NewStyle()), nil

	case n.Repeat != nil:
		child, err := build(n.Repeat.Child, sprites)
		if err != nil {
			return nil, err
		}
		return anim.NewRepeat(child, n.Repeat.Times)

	case n.Forever != nil:
		child, err := build(*n.Forever, sprites)
		if err != nil {
			return nil, err
		}
		return anim.NewForever(child)

	case len(n.Row) > 0:
		children, err := buildAll(n.Row, sprites)
		if err != nil {
			return nil, err
		}
		return anim.NewRow(children...)

	case len(n.Sequence) > 0:
		children, err := buildAll(n.Sequence, sprites)
		if err != nil {
			return nil, err
		}
		return anim.NewSequence(children...)

	case n.Padded != nil:
		child, err := build(n.Padded.Child, sprites)
		if err != nil {
			return nil, err
		}
		cells := anim.DefaultPadding
		if n.Padded.Cells != nil {
			cells = *n.Padded.Cells
		}
		return anim.NewPadded(child, cells)

	case n.Moving != nil:
		child, err := build(n.Moving.Child, sprites)
		if err != nil {
			return nil, err
		}
		return anim.NewMoving(child, n.Moving.Over, linearPath(n.Moving.From, n.Moving.To, n.Moving.Over))

	default:
		return nil, fmt.Errorf("empty scene node: expected one of sprite, text, box, repeat, forever, row, sequence, padded, moving")
	}
}

func buildAll(nodes []Node, sprites map[string]SpriteDef) ([]anim.Widget, error) {
	children := make([]anim.Widget, len(nodes))
	for i, n := range nodes {
		c, err := build(n, sprites)
		if err != nil {
			return nil, err
		}
		children[i] = c
	}
	return children, nil
}

// linearPath interpolates from -> to in cell steps over the given tick span.
func linearPath(from, to Offset, over int) anim.PositionFunc {
	return func(elapsed int) (int, int) {
		if over <= 0 {
			return from.Left, from.Top
		}
		if elapsed > over {
			elapsed = over
		}
		left := from.Left + (to.Left-from.Left)*elapsed/over
		top := from.Top + (to.Top-from.Top)*elapsed/over
		return left, top
	}
}

// checkOneKind rejects nodes that set more than one widget kind; a silent
// precedence order would hide authoring mistakes.
func checkOneKind(n Node) error {
	kinds := 0
	for _, set := range []bool{
		n.Sprite != "",
		n.Text != "",
		len(n.Box) > 0,
		n.Repeat != nil,
		n.Forever != nil,
		len(n.Row) > 0,
		len(n.Sequence) > 0,
		n.Padded != nil,
		n.Moving != nil,
	} {
		if set {
			kinds++
		}
	}
	if kinds > 1 {
		return fmt.Errorf("scene node sets %d widget kinds; exactly one is allowed", kinds)
	}
	return nil
}
