package anim

import "testing"

func TestForever_NeverDone(t *testing.T) {
	child := newFake(2)
	f, err := NewForever(child)
	if err != nil {
		t.Fatalf("NewForever: %v", err)
	}

	for i := 0; i < 20; i++ {
		if f.Done() {
			t.Fatalf("forever reported done at step %d", i)
		}
		f.Tick()
	}
	if f.Done() {
		t.Fatal("forever reported done after 20 steps")
	}
}

func TestForever_ResetsChildOncePerRun(t *testing.T) {
	child := newFake(2)
	f, err := NewForever(child)
	if err != nil {
		t.Fatalf("NewForever: %v", err)
	}

	// 10 ticks of a 2-tick run: 5 completed runs, each rolled over by one
	// reset at the done check.
	for i := 0; i < 10; i++ {
		f.Tick()
		if f.Done() {
			t.Fatal("forever reported done")
		}
	}
	if child.resets != 5 {
		t.Errorf("child reset %d times over 5 runs, want 5", child.resets)
	}

	// Repeated done queries between ticks must not double-reset: the
	// rollover leaves the child mid-run, so the next query sees not-done.
	f.Done()
	f.Done()
	if child.resets != 5 {
		t.Errorf("idle done queries reset the child: resets=%d", child.resets)
	}
}

func TestForever_Validation(t *testing.T) {
	if _, err := NewForever(nil); err == nil {
		t.Error("expected error for nil child")
	}
}
