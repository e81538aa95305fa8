package game

import "riktris/internal/platform"

// Held-key timing, in seconds.
const (
	KeyRepeatDelay = 0.15
	KeyRepeatRate  = 0.05
)

// keyRepeat turns held keys into repeated actions. Timers live per game so
// two games never share them.
type keyRepeat struct {
	timers [platform.NumActions]float64
}

// step reports whether action a fires this frame. A press fires at once and
// arms the initial delay; while held it fires again every KeyRepeatRate.
func (r *keyRepeat) step(in platform.Input, a platform.Action, dt float64) bool {
	if in.IsKeyPressed(a) {
		r.timers[a] = KeyRepeatDelay
		return true
	}
	if !in.IsKeyDown(a) {
		r.timers[a] = 0
		return false
	}

	r.timers[a] -= dt
	if r.timers[a] <= 0 {
		r.timers[a] = KeyRepeatRate
		return true
	}
	return false
}
