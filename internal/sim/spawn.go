package sim

import "math/rand"

// Gate is the one-shot warm-up timer that holds hazards back after a
// (re)start. It is advanced by simulated time, so pausing stops it too.
type Gate struct {
	delay   float64
	elapsed float64
	open    bool
}

// NewGate arms a gate that opens after delay seconds.
func NewGate(delay float64) Gate {
	g := Gate{delay: delay}
	g.Rearm()
	return g
}

// Rearm closes the gate and restarts its countdown.
func (g *Gate) Rearm() {
	g.elapsed = 0
	g.open = g.delay <= 0
}

// Advance adds dt to the countdown. It returns true on the call that opens
// the gate and false otherwise.
func (g *Gate) Advance(dt float64) bool {
	if g.open {
		return false
	}
	g.elapsed += dt
	if g.elapsed >= g.delay {
		g.open = true
		return true
	}
	return false
}

// IsOpen reports whether hazards may spawn.
func (g *Gate) IsOpen() bool {
	return g.open
}

// Remaining returns the seconds left before the gate opens.
func (g *Gate) Remaining() float64 {
	if g.open {
		return 0
	}
	return g.delay - g.elapsed
}

// Site is where a new hazard enters the playfield.
type Site int

const (
	SiteLeft Site = iota
	SiteRight
	SiteTop
)

// Spawner accumulates simulated time and emits a hazard each time the
// accumulator exceeds the interval. The accumulator resets to zero after a
// spawn rather than subtracting the interval, so slow ticks drift.
type Spawner struct {
	Accum float64
}

// Tick adds dt and reports whether a hazard is due. A due spawn resets the
// accumulator.
func (s *Spawner) Tick(dt, interval float64) bool {
	s.Accum += dt
	if s.Accum > interval {
		s.Accum = 0
		return true
	}
	return false
}

// Reset zeroes the accumulator.
func (s *Spawner) Reset() {
	s.Accum = 0
}

// SpawnHazard picks a site uniformly and builds a hazard for it. Positions
// are whole units drawn inclusively, like the reference randint.
func SpawnHazard(rng *rand.Rand, width, height float64, t Tuning) Hazard {
	size := t.HazardSize

	switch Site(rng.Intn(3)) {
	case SiteLeft:
		y := randInt(rng, int(t.SpawnMinY), int(height-size))
		return NewHazard(-size, float64(y), size, t.HazardSpeed, DirRight)
	case SiteRight:
		y := randInt(rng, int(t.SpawnMinY), int(height-size))
		return NewHazard(width, float64(y), size, t.HazardSpeed, DirLeft)
	default:
		x := randInt(rng, 0, int(width-size))
		return NewHazard(float64(x), t.HeaderBand, size, t.HazardSpeed, DirDown)
	}
}

// randInt returns an integer in [lo, hi]. An empty range yields lo.
func randInt(rng *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.Intn(hi-lo+1)
}
