package core

// DefaultWindowDamping scales raw window deltas before they reach the physics.
const DefaultWindowDamping = 0.3

// WindowTracker turns successive window positions into the damped
// window-velocity vector consumed by the simulation.
//
// Hosts call Observe once per tick with the window's current position,
// in playfield units. The first observation only primes the tracker.
type WindowTracker struct {
	damping float64
	last    Vec2
	primed  bool
}

// NewWindowTracker creates a tracker with the given damping factor.
// A non-positive damping falls back to DefaultWindowDamping.
func NewWindowTracker(damping float64) *WindowTracker {
	if damping <= 0 {
		damping = DefaultWindowDamping
	}
	return &WindowTracker{damping: damping}
}

// Observe records the current window position and returns the velocity
// since the previous observation, scaled by the damping factor.
func (t *WindowTracker) Observe(pos Vec2) Vec2 {
	if !t.primed {
		t.last = pos
		t.primed = true
		return Vec2{}
	}
	v := pos.Sub(t.last).Scale(t.damping)
	t.last = pos
	return v
}

// Reset forgets the last position; the next Observe returns zero velocity.
func (t *WindowTracker) Reset() {
	t.primed = false
	t.last = Vec2{}
}
