package term

import "time"

// RenderThrottle allows at most one unforced render per interval. A refused
// render is remembered as pending until Flush lets it through.
type RenderThrottle struct {
	interval time.Duration
	clock    func() time.Time

	last    time.Time
	drawn   bool
	pending bool
}

// NewRenderThrottle creates a throttle. A nil clock means time.Now; an
// interval of zero or less disables throttling.
func NewRenderThrottle(interval time.Duration, clock func() time.Time) *RenderThrottle {
	if clock == nil {
		clock = time.Now
	}
	return &RenderThrottle{interval: interval, clock: clock}
}

// Allow reports whether a render may happen now and records it if so.
func (t *RenderThrottle) Allow(forced bool) bool {
	now := t.clock()
	if forced || t.interval <= 0 || !t.drawn || now.Sub(t.last) >= t.interval {
		t.last = now
		t.drawn = true
		t.pending = false
		return true
	}
	t.pending = true
	return false
}

// Pending reports whether a refused render is waiting.
func (t *RenderThrottle) Pending() bool {
	return t.pending
}

// Remaining returns how long until a pending render is due.
func (t *RenderThrottle) Remaining() time.Duration {
	if !t.drawn {
		return 0
	}
	return max(t.interval-t.clock().Sub(t.last), 0)
}

// Flush reports whether a pending render is due now and records it if so.
func (t *RenderThrottle) Flush() bool {
	if !t.pending {
		return false
	}
	return t.Allow(false)
}
