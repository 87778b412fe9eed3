package sim

import (
	"math"
	"math/rand"
	"testing"

	"github.com/vovakirdan/bouncy/internal/core"
)

func TestGateHoldsHazardsBack(t *testing.T) {
	tun := DefaultTuning()
	tun.SpawnDelay = 1e9
	s := NewState(600, 370, tun, 1)

	// 100 simulated seconds, far beyond the spawn interval many times over.
	for i := 0; i < 1000; i++ {
		ev := Step(s, 0.1, core.Vec2{})
		if ev.Spawned {
			t.Fatalf("tick %d: hazard spawned while gate closed", i)
		}
	}

	if len(s.Hazards) != 0 {
		t.Errorf("expected no hazards, got %d", len(s.Hazards))
	}
	if s.HazardsEnabled() {
		t.Error("gate should still be closed")
	}
	if s.Spawner.Accum != 0 {
		t.Errorf("spawn accumulator grew to %f while gate closed", s.Spawner.Accum)
	}
}

func TestGateOpensThenSpawns(t *testing.T) {
	s := NewState(600, 370, DefaultTuning(), 7)
	s.Ball.Alive = false // keep the ball out of the way

	var openedAt, firstSpawnAt int
	for tick := 1; tick <= 10; tick++ {
		ev := Step(s, 1.0, core.Vec2{})
		if ev.GateOpened {
			openedAt = tick
		}
		if ev.Spawned && firstSpawnAt == 0 {
			firstSpawnAt = tick
		}
	}

	if openedAt != 5 {
		t.Errorf("gate opened on tick %d, expected 5", openedAt)
	}
	// The opening tick feeds nothing; ticks 6 and 7 reach 2s > 1.5s.
	if firstSpawnAt != 7 {
		t.Errorf("first spawn on tick %d, expected 7", firstSpawnAt)
	}
}

func TestGateOpeningTickDoesNotFeedSpawner(t *testing.T) {
	s := NewState(600, 370, DefaultTuning(), 7)
	s.Ball.Alive = false

	ev := Step(s, 5, core.Vec2{})

	if !ev.GateOpened {
		t.Fatal("a 5s step should open the gate")
	}
	if ev.Spawned || len(s.Hazards) != 0 {
		t.Error("hazard spawned on the tick the gate opened")
	}
	if s.Spawner.Accum != 0 {
		t.Errorf("accumulator = %f, time before the gate opened should not count", s.Spawner.Accum)
	}

	Step(s, 1, core.Vec2{})
	if s.Spawner.Accum != 1 {
		t.Errorf("accumulator = %f after one open tick, expected 1", s.Spawner.Accum)
	}
}

func TestGateRemaining(t *testing.T) {
	g := NewGate(5)
	g.Advance(2)

	if math.Abs(g.Remaining()-3) > eps {
		t.Errorf("Remaining() = %f, expected 3", g.Remaining())
	}

	if !g.Advance(3) {
		t.Error("Advance reaching the delay should report opening")
	}
	if !g.IsOpen() || g.Remaining() != 0 {
		t.Error("gate should be open once the delay has elapsed")
	}
	if g.Advance(1) {
		t.Error("Advance on an open gate should not report opening again")
	}

	g.Rearm()
	if g.IsOpen() {
		t.Error("Rearm should close the gate")
	}

	if z := NewGate(0); !z.IsOpen() {
		t.Error("zero delay gate should start open")
	}
}

func TestSpawnerResetsInsteadOfSubtracting(t *testing.T) {
	var sp Spawner

	if sp.Tick(1.4, 1.5) {
		t.Fatal("1.4s should not spawn")
	}
	if !sp.Tick(1.4, 1.5) {
		t.Fatal("2.8s should spawn")
	}
	if sp.Accum != 0 {
		t.Errorf("accumulator = %f after spawn, expected 0 (overshoot dropped)", sp.Accum)
	}
}

func TestSpawnerStrictlyGreater(t *testing.T) {
	var sp Spawner
	if sp.Tick(1.5, 1.5) {
		t.Error("reaching exactly the interval should not spawn")
	}
	if !sp.Tick(0.01, 1.5) {
		t.Error("exceeding the interval should spawn")
	}
}

func TestSpawnHazardSites(t *testing.T) {
	tun := DefaultTuning()
	const w, h = 600.0, 370.0
	rng := rand.New(rand.NewSource(42))

	seen := map[Direction]int{}
	for i := 0; i < 600; i++ {
		hz := SpawnHazard(rng, w, h, tun)
		seen[hz.Direction]++

		if hz.Size != 30 || !hz.Active {
			t.Fatalf("bad hazard %+v", hz)
		}

		switch hz.Direction {
		case DirRight:
			if hz.X != -30 || hz.VX != 3 || hz.VY != 0 {
				t.Fatalf("left-site hazard wrong: %+v", hz)
			}
			checkRange(t, "left-site y", hz.Y, 50, h-30)
		case DirLeft:
			if hz.X != w || hz.VX != -3 || hz.VY != 0 {
				t.Fatalf("right-site hazard wrong: %+v", hz)
			}
			checkRange(t, "right-site y", hz.Y, 50, h-30)
		case DirDown:
			if hz.Y != 30 || hz.VX != 0 || hz.VY != 3 {
				t.Fatalf("top-site hazard wrong: %+v", hz)
			}
			checkRange(t, "top-site x", hz.X, 0, w-30)
		}
	}

	for _, d := range []Direction{DirRight, DirLeft, DirDown} {
		if seen[d] < 100 {
			t.Errorf("direction %s chosen %d/600 times, expected roughly uniform", d, seen[d])
		}
	}
}

func checkRange(t *testing.T, what string, v, lo, hi float64) {
	t.Helper()
	if v < lo || v > hi || v != math.Trunc(v) {
		t.Fatalf("%s = %f, expected whole number in [%f, %f]", what, v, lo, hi)
	}
}

func TestSpawnHazardTinyPlayfield(t *testing.T) {
	tun := DefaultTuning()
	rng := rand.New(rand.NewSource(3))

	// Height too small for a valid side range: y collapses to the minimum.
	for i := 0; i < 50; i++ {
		hz := SpawnHazard(rng, 20, 60, tun)
		if hz.Direction != DirDown && hz.Y != tun.SpawnMinY {
			t.Fatalf("side spawn y = %f, expected %f", hz.Y, tun.SpawnMinY)
		}
		if hz.Direction == DirDown && hz.X != 0 {
			t.Fatalf("top spawn x = %f, expected 0", hz.X)
		}
	}
}
