// Package driver advances an animation widget on a fixed period until it
// reports done.
//
// Drive returns immediately; stepping happens on one-shot timer callbacks,
// with exactly one outstanding timer per run and no overlapping steps. Each
// step runs Tick and then checks Done, so the run-boundary side effects of
// the auto-repeat combinators land exactly between steps.
package driver

import (
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"marquee/internal/anim"
	"marquee/internal/surface"
)

// Option configures a Run before it starts.
type Option func(*Run)

// WithTimer substitutes the scheduling primitive. Tests use a manual timer
// to step runs deterministically.
func WithTimer(t Timer) Option {
	return func(r *Run) { r.timer = t }
}

// WithTracer records a span covering the run, ended with the tick count
// when the run finishes or is stopped.
func WithTracer(tr trace.Tracer) Option {
	return func(r *Run) { r.tracer = tr }
}

// Run is one driven animation. It finishes on its own when the widget
// reports done, or early via Stop.
type Run struct {
	widget anim.Widget
	period time.Duration
	timer  Timer
	tracer trace.Tracer
	span   trace.Span

	mu       sync.Mutex
	cancel   func() bool
	ticks    int
	finished bool
	done     chan struct{}
}

// Drive schedules widget to tick once per period until done. It returns
// immediately; the widget's surface is available for rendering the whole
// time. A widget that is already done finishes with zero ticks and is
// never ticked.
func Drive(widget anim.Widget, period time.Duration, opts ...Option) (*Run, error) {
	if widget == nil {
		return nil, &anim.ConfigError{Widget: "Drive", Reason: "widget must not be nil"}
	}
	if period <= 0 {
		return nil, &anim.ConfigError{Widget: "Drive", Reason: "period must be positive"}
	}

	r := &Run{
		widget: widget,
		period: period,
		timer:  SystemTimer{},
		done:   make(chan struct{}),
	}
	for _, opt := range opts {
		opt(r)
	}

	if r.tracer != nil {
		_, r.span = r.tracer.Start(context.Background(), "drive",
			trace.WithAttributes(attribute.Int64("period_ms", period.Milliseconds())))
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.widget.Done() {
		r.finishLocked("done")
		return r, nil
	}
	r.cancel = r.timer.After(r.period, r.step)
	return r, nil
}

// step runs one tick/done pair and reschedules itself while the widget has
// more to do.
func (r *Run) step() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.finished {
		return
	}
	r.widget.Tick()
	r.ticks++
	if r.widget.Done() {
		r.finishLocked("done")
		return
	}
	r.cancel = r.timer.After(r.period, r.step)
}

func (r *Run) finishLocked(outcome string) {
	r.finished = true
	r.cancel = nil
	if r.span != nil {
		r.span.SetAttributes(
			attribute.Int("ticks", r.ticks),
			attribute.String("outcome", outcome),
		)
		r.span.End()
	}
	close(r.done)
}

// Stop ends the run early, cancelling any pending step. Stopping a finished
// run is a no-op. The widget is left in whatever state it reached.
func (r *Run) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.finished {
		return
	}
	if r.cancel != nil {
		r.cancel()
	}
	r.finishLocked("stopped")
}

// Done is closed when the run finishes or is stopped.
func (r *Run) Done() <-chan struct{} { return r.done }

// Surface returns the driven widget's surface, available for rendering
// from the moment Drive returns.
func (r *Run) Surface() *surface.Surface { return r.widget.Surface() }

// Ticks reports how many steps have executed so far.
func (r *Run) Ticks() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.ticks
}
