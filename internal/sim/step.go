package sim

import "github.com/vovakirdan/bouncy/internal/core"

// Events reports what happened during one Step.
type Events struct {
	GateOpened bool // the warm-up gate opened this tick
	Spawned    bool // a hazard was created
	Expired    int  // hazards that left the playfield
	Killed     bool // the ball died this tick
}

// Step advances the simulation by one tick. dt is the elapsed wall time in
// seconds and drives only the spawn timers and the score; motion is per tick.
// wv is the damped window-velocity vector.
//
// Order: spawn timers, hazard motion and collisions, compaction, ball motion,
// ball bounce.
func Step(s *State, dt float64, wv core.Vec2) Events {
	var ev Events
	s.Ticks++

	// Only ticks that start with the gate open feed the spawner.
	wasOpen := s.Gate.IsOpen()
	ev.GateOpened = s.Gate.Advance(dt)
	if wasOpen && s.Spawner.Tick(dt, s.Tuning.SpawnInterval) {
		s.Hazards = append(s.Hazards, SpawnHazard(s.rng, s.Width, s.Height, s.Tuning))
		ev.Spawned = true
	}

	for i := range s.Hazards {
		h := &s.Hazards[i]
		if !h.Active {
			continue
		}

		h.Advance()
		if h.Offscreen(s.Width, s.Height) {
			h.Active = false
			ev.Expired++
		}

		if s.Ball.Alive && h.Active && Collides(&s.Ball, h) {
			s.Ball.Alive = false
			ev.Killed = true
		}
	}
	s.compact()

	s.Ball.Update(wv, s.Tuning)
	s.Ball.Bounce(s.Width, s.Height, wv, s.Tuning)

	if s.Ball.Alive {
		s.Elapsed += dt
	}

	return ev
}

// compact drops inactive hazards in place, keeping the order of the rest.
func (s *State) compact() {
	live := s.Hazards[:0]
	for _, h := range s.Hazards {
		if h.Active {
			live = append(live, h)
		}
	}
	s.Hazards = live
}
