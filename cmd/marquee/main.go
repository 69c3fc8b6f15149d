package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"marquee/internal/anim"
	"marquee/internal/driver"
	"marquee/internal/scene"
	"marquee/internal/telemetry"
	"marquee/internal/ui"
)

func main() {
	scenePath := flag.String("scene", "", "path to a YAML scene file (default: built-in demo)")
	period := flag.Duration("period", 0, "override the tick period")
	headless := flag.Bool("headless", false, "drive the composition without the TUI and print a summary")
	flag.Parse()

	ctx := context.Background()
	shutdown, traced, err := telemetry.Setup(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "telemetry: %v\n", err)
		os.Exit(1)
	}
	defer shutdown(ctx)

	root, tick, err := buildScene(*scenePath, *headless)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if *period > 0 {
		tick = *period
	}

	if *headless {
		if err := runHeadless(root, tick, traced); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	p := tea.NewProgram(ui.NewPlayerView(root, tick), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

// buildScene loads the named scene file, or the built-in demo when none is
// given. Headless runs get the finite demo so they terminate on their own.
func buildScene(path string, finite bool) (anim.Widget, time.Duration, error) {
	if path != "" {
		s, err := scene.Load(path)
		if err != nil {
			return nil, 0, err
		}
		return s.Root, s.Period, nil
	}
	return demo(finite)
}

// runHeadless drives the composition with the timer-based driver, waits for
// completion, and prints the final frame and tick count.
func runHeadless(root anim.Widget, period time.Duration, traced bool) error {
	var opts []driver.Option
	if traced {
		opts = append(opts, driver.WithTracer(telemetry.Tracer()))
	}
	run, err := driver.Drive(root, period, opts...)
	if err != nil {
		return err
	}
	<-run.Done()
	fmt.Println(run.Surface().Render())
	fmt.Printf("finished after %d ticks\n", run.Ticks())
	return nil
}

// demo builds the built-in composition. The finite variant exercises Repeat,
// Sequence, and Moving and runs to completion; the full variant adds a
// Forever spinner and a static box alongside it in a Row.
func demo(finite bool) (anim.Widget, time.Duration, error) {
	wave, err := anim.NewSprite([]anim.Frame{
		{` o `, `/|\`, `/ \`},
		{`\o/`, ` | `, `/ \`},
		{` o `, `/|\`, `/ \`},
		{`_o_`, ` | `, `/ \`},
	})
	if err != nil {
		return nil, 0, err
	}
	twice, err := anim.NewRepeat(wave, 2)
	if err != nil {
		return nil, 0, err
	}

	comet := anim.Text("*=>", lipgloss.NewStyle().Foreground(lipgloss.Color(ui.ColorAccent)))
	flight, err := anim.NewMoving(comet, 16, func(elapsed int) (int, int) {
		return elapsed, 0
	})
	if err != nil {
		return nil, 0, err
	}

	show, err := anim.NewSequence(twice, flight)
	if err != nil {
		return nil, 0, err
	}
	if finite {
		return show, 120 * time.Millisecond, nil
	}

	spin, _, err := anim.SpriteFromSpinner(spinner.Dot)
	if err != nil {
		return nil, 0, err
	}
	endless, err := anim.NewForever(spin)
	if err != nil {
		return nil, 0, err
	}
	padded, err := anim.NewPadded(endless, anim.DefaultPadding)
	if err != nil {
		return nil, 0, err
	}

	banner := anim.Box([]string{"marquee", "q quits"}, lipgloss.NewStyle().Foreground(lipgloss.Color(ui.ColorMuted)))

	root, err := anim.NewRow(padded, show, banner)
	if err != nil {
		return nil, 0, err
	}
	return root, 120 * time.Millisecond, nil
}
