package anim

import (
	"errors"
	"testing"
)

func TestRepeat_PlaysExactlyNRuns(t *testing.T) {
	child := newFake(3)
	r, err := NewRepeat(child, 2)
	if err != nil {
		t.Fatalf("NewRepeat: %v", err)
	}

	ticks := play(t, r, 100)
	if ticks != 6 {
		t.Errorf("expected 6 ticks for 2 runs of 3, got %d", ticks)
	}
	if child.totalTicks != 6 {
		t.Errorf("child saw %d ticks, want 6", child.totalTicks)
	}
	// One reset rolls run 1 into run 2; the final run ends without one so
	// the child's last frame stays visible.
	if child.resets != 1 {
		t.Errorf("child reset %d times, want 1", child.resets)
	}
	if !r.Done() {
		t.Error("repeat not done after both runs")
	}
}

func TestRepeat_RunTransitionHappensAtDoneCheck(t *testing.T) {
	child := newFake(2)
	r, err := NewRepeat(child, 2)
	if err != nil {
		t.Fatalf("NewRepeat: %v", err)
	}

	r.Tick()
	r.Tick()
	if child.resets != 0 {
		t.Fatal("child reset mid-run; transitions belong at the done check")
	}
	if r.Done() {
		t.Fatal("repeat done with a run remaining")
	}
	if child.resets != 1 {
		t.Errorf("done check should have rolled the child over, resets=%d", child.resets)
	}
	if child.ticks != 0 {
		t.Errorf("child not back at start of run, ticks=%d", child.ticks)
	}
}

func TestRepeat_ZeroTimesIsImmediatelyDone(t *testing.T) {
	child := newFake(3)
	r, err := NewRepeat(child, 0)
	if err != nil {
		t.Fatalf("NewRepeat: %v", err)
	}
	if !r.Done() {
		t.Fatal("Repeat(w, 0) should be done immediately")
	}
	if ticks := play(t, r, 10); ticks != 0 {
		t.Errorf("Repeat(w, 0) took %d ticks, want 0", ticks)
	}
	if child.totalTicks != 0 || child.resets != 0 {
		t.Errorf("child touched by Repeat(w, 0): ticks=%d resets=%d", child.totalTicks, child.resets)
	}
}

func TestRepeat_ResetRestoresRunCount(t *testing.T) {
	child := newFake(2)
	r, err := NewRepeat(child, 2)
	if err != nil {
		t.Fatalf("NewRepeat: %v", err)
	}

	if ticks := play(t, r, 100); ticks != 4 {
		t.Fatalf("first playthrough took %d ticks, want 4", ticks)
	}
	r.Reset()
	if r.Done() {
		t.Fatal("repeat still done after reset")
	}
	if ticks := play(t, r, 100); ticks != 4 {
		t.Errorf("replay took %d ticks, want 4", ticks)
	}
}

func TestRepeat_SurfaceIsChildSurface(t *testing.T) {
	child := newFake(1)
	r, err := NewRepeat(child, 1)
	if err != nil {
		t.Fatalf("NewRepeat: %v", err)
	}
	if r.Surface() != child.Surface() {
		t.Error("repeat should forward the child's surface handle")
	}
}

func TestRepeat_Validation(t *testing.T) {
	if _, err := NewRepeat(nil, 1); err == nil {
		t.Error("expected error for nil child")
	}
	_, err := NewRepeat(newFake(1), -1)
	if err == nil {
		t.Fatal("expected error for negative times")
	}
	var cfg *ConfigError
	if !errors.As(err, &cfg) {
		t.Errorf("expected *ConfigError, got %T", err)
	}
}
