// Package sim is the physics and collision core: a ball pushed around by
// gravity and window motion, and square hazards that kill it on contact.
//
// The package is pure. Hosts own a *State, call Step once per tick with the
// elapsed time and the damped window-velocity vector, and read the state back
// for drawing between ticks.
package sim

import (
	"math"

	"github.com/vovakirdan/bouncy/internal/core"
)

// Ball is the player-controlled body. X, Y is the top-left corner of its
// bounding square; velocities are in units per tick.
type Ball struct {
	X, Y   float64
	VX, VY float64
	Size   float64
	Trail  []core.Vec2 // oldest first
	Alive  bool
}

// NewBall creates a live ball at rest.
func NewBall(x, y, size float64) Ball {
	return Ball{X: x, Y: y, Size: size, Alive: true}
}

// Bounds returns the ball's bounding square.
func (b *Ball) Bounds() core.Box {
	return core.Box{X: b.X, Y: b.Y, W: b.Size, H: b.Size}
}

// Center returns the center of the ball's bounding square.
func (b *Ball) Center() core.Vec2 {
	return core.Vec2{X: b.X + b.Size/2, Y: b.Y + b.Size/2}
}

// Update advances the ball one tick. Dead balls do not move.
func (b *Ball) Update(wv core.Vec2, t Tuning) {
	if !b.Alive {
		return
	}

	b.pushTrail(t.TrailLength)

	b.VX += wv.X * t.WindowCoupling
	// Only upward window motion lifts the ball in flight.
	if wv.Y < 0 {
		b.VY += wv.Y * t.WindowCoupling
	}

	b.VY += t.Gravity

	b.X += b.VX
	b.Y += b.VY

	b.VX *= t.HorizontalDamping
}

// pushTrail appends the current position, evicting the oldest beyond limit.
// Eviction builds a new slice, so copies of the ball keep their trail.
func (b *Ball) pushTrail(limit int) {
	if limit <= 0 {
		b.Trail = nil
		return
	}
	p := core.Vec2{X: b.X, Y: b.Y}
	if len(b.Trail) < limit {
		b.Trail = append(b.Trail[:len(b.Trail):len(b.Trail)], p)
		return
	}
	trail := make([]core.Vec2, 0, limit)
	trail = append(trail, b.Trail[len(b.Trail)-limit+1:]...)
	b.Trail = append(trail, p)
}

// Bounce clamps the ball to the playfield and reflects its velocity on
// contact. Edges are checked independently (bottom, top, right, left), so a
// corner hit corrects both axes in the same call.
func (b *Ball) Bounce(width, height float64, wv core.Vec2, t Tuning) {
	if !b.Alive {
		return
	}

	force := 1 + math.Abs(wv.Y)*t.ImpactFactor

	if b.Y+b.Size > height {
		b.Y = height - b.Size
		bounce := -b.VY * t.Restitution * force
		b.VY = math.Min(bounce, t.MinBounce*force)
	}

	if b.Y < t.HeaderBand {
		b.Y = t.HeaderBand
		b.VY = -b.VY * t.Restitution
	}

	if b.X+b.Size > width {
		b.X = width - b.Size
		b.VX = -b.VX * t.Restitution
	}

	if b.X < 0 {
		b.X = 0
		b.VX = -b.VX * t.Restitution
	}
}
