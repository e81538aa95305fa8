package tui

import "time"

// FrameClock implements platform.Clock from the timestamps of frame ticks.
type FrameClock struct {
	maxDelta float64
	last     time.Time
	delta    float64
}

// NewFrameClock clamps every delta to maxDelta seconds so a stalled terminal
// does not drop a piece several rows at once. A non-positive maxDelta
// disables the clamp.
func NewFrameClock(maxDelta float64) *FrameClock {
	return &FrameClock{maxDelta: maxDelta}
}

// Tick records a frame at now and returns the elapsed seconds since the
// previous one. The first tick returns 0.
func (c *FrameClock) Tick(now time.Time) float64 {
	c.delta = 0
	if !c.last.IsZero() {
		c.delta = max(0, now.Sub(c.last).Seconds())
	}
	if c.maxDelta > 0 {
		c.delta = min(c.delta, c.maxDelta)
	}
	c.last = now
	return c.delta
}

func (c *FrameClock) ElapsedSinceLastFrame() float64 { return c.delta }
