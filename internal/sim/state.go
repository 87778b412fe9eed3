package sim

import (
	"math/rand"
)

// State is the whole simulation: one ball, the live hazards, and the spawn
// timers. The host owns it and must not call Restart while Step is running.
type State struct {
	Width, Height float64

	Ball    Ball
	Hazards []Hazard

	// Tuning may be adjusted between ticks (difficulty progression).
	Tuning Tuning

	Spawner Spawner
	Gate    Gate

	// Elapsed is simulated seconds the ball has been alive since (re)start.
	Elapsed float64
	// Ticks counts steps since (re)start.
	Ticks int

	rng *rand.Rand
}

// NewState creates a playfield of the given size with a fresh ball.
func NewState(width, height float64, t Tuning, seed int64) *State {
	s := &State{
		Width:   width,
		Height:  height,
		Tuning:  t,
		Hazards: make([]Hazard, 0, 16),
		rng:     rand.New(rand.NewSource(seed)),
	}
	s.Restart()
	return s
}

// Restart puts a new ball at the start position, drops every hazard, and
// re-arms the spawn gate. The RNG stream continues.
func (s *State) Restart() {
	s.Ball = NewBall(s.startX(), s.Tuning.BallStartY, s.Tuning.BallSize)
	s.Hazards = s.Hazards[:0]
	s.Spawner.Reset()
	s.Gate = NewGate(s.Tuning.SpawnDelay)
	s.Elapsed = 0
	s.Ticks = 0
}

// Reseed replaces the RNG used for spawn sites.
func (s *State) Reseed(seed int64) {
	s.rng = rand.New(rand.NewSource(seed))
}

// startX mirrors the reference integer division of the width.
func (s *State) startX() float64 {
	return float64(int(s.Width) / 2)
}

// HazardsEnabled reports whether the warm-up gate has opened.
func (s *State) HazardsEnabled() bool {
	return s.Gate.IsOpen()
}

// GateRemaining returns seconds until hazards start spawning.
func (s *State) GateRemaining() float64 {
	return s.Gate.Remaining()
}

// Score is the number of whole seconds the ball has survived.
func (s *State) Score() int {
	return int(s.Elapsed)
}
