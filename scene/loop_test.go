package scene

import (
	"testing"
	"time"
)

func TestLoopFirstTickRuns(t *testing.T) {
	l := NewLoop(30)
	if !l.Tick(time.Now()) {
		t.Error("first tick must run a frame")
	}
}

func TestLoopSkipsWithinInterval(t *testing.T) {
	l := NewLoop(30)
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	if !l.Tick(base) {
		t.Fatal("first tick must run")
	}
	if l.Tick(base.Add(10 * time.Millisecond)) {
		t.Error("tick inside the 33ms interval should skip")
	}
	if !l.Tick(base.Add(40 * time.Millisecond)) {
		t.Error("tick past the interval should run")
	}
	// The skipped call must not have advanced the reference time.
	if l.Tick(base.Add(50 * time.Millisecond)) {
		t.Error("only 10ms since the last frame, should skip")
	}
}

func TestLoopCancelIsPermanent(t *testing.T) {
	l := NewLoop(30)
	l.Cancel()
	if !l.Cancelled() {
		t.Error("Cancelled should report true after Cancel")
	}
	if l.Tick(time.Now()) {
		t.Error("cancelled loop must never run a frame")
	}
	if l.Tick(time.Now().Add(time.Hour)) {
		t.Error("cancelled loop must stay stopped")
	}
}

func TestLoopDefaultCap(t *testing.T) {
	l := NewLoop(0)
	if l.interval != time.Second/30 {
		t.Errorf("zero cap should default to 30 FPS, interval %v", l.interval)
	}
}
