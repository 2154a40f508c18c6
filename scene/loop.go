package scene

import "time"

// Loop paces the repeating frame task. Calls arriving before the frame
// interval has elapsed are skipped; Cancel stops the loop for good so a
// torn-down surface is never touched again.
type Loop struct {
	interval  time.Duration
	last      time.Time
	cancelled bool
}

// NewLoop creates a loop capped at maxFPS frames per second.
func NewLoop(maxFPS int) *Loop {
	if maxFPS <= 0 {
		maxFPS = 30
	}
	return &Loop{interval: time.Second / time.Duration(maxFPS)}
}

// Tick reports whether a frame should run at now. The first call always
// runs a frame.
func (l *Loop) Tick(now time.Time) bool {
	if l.cancelled {
		return false
	}
	if !l.last.IsZero() && now.Sub(l.last) < l.interval {
		return false
	}
	l.last = now
	return true
}

// Cancel permanently stops the loop.
func (l *Loop) Cancel() {
	l.cancelled = true
}

// Cancelled reports whether Cancel was called.
func (l *Loop) Cancelled() bool {
	return l.cancelled
}
