// Package bouncy implements the bouncing ball toy on top of the sim core.
// The player keeps the ball alive by shaking the window it lives in while
// square hazards sweep across the playfield.
package bouncy

import (
	"time"

	"github.com/vovakirdan/bouncy/internal/config"
	"github.com/vovakirdan/bouncy/internal/core"
	"github.com/vovakirdan/bouncy/internal/sim"
)

// MaxDelta caps the wall time a single tick may account for. Hosts that
// stall (suspended laptop, slow SSH link) must not skip the warm-up gate.
const MaxDelta = 250 * time.Millisecond

// Game adapts the physics core to the host loop: pause, restart, difficulty
// progression and rendering.
type Game struct {
	cfg     config.Config
	base    sim.Tuning
	diff    *config.DifficultyManager
	state   *sim.State
	paused  bool
	runtime core.RuntimeConfig
	events  sim.Events
}

// New creates a game from a validated configuration. Call Reset before Step.
func New(cfg config.Config) *Game {
	return &Game{
		cfg:  cfg,
		base: cfg.Tuning(),
		diff: config.NewDifficultyManager(cfg.Difficulty),
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "bouncy"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Bouncy"
}

// Reset initializes or restarts the game with a fresh simulation.
// The playfield size comes from the config, not from the terminal.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.runtime = rc
	g.paused = false
	g.events = sim.Events{}
	g.state = sim.NewState(g.cfg.Playfield.Width, g.cfg.Playfield.Height, g.base, rc.Seed)
	g.applyDifficulty()
}

// Restart drops the current run and starts a new ball. The pause state is
// kept. The RNG stream continues unless the runtime asks for replays.
func (g *Game) Restart() {
	g.state.Restart()
	if g.runtime.Replay {
		g.state.Reseed(g.runtime.Seed)
	}
	g.events = sim.Events{}
	g.applyDifficulty()
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionRestart) {
		g.Restart()
		return core.StepResult{State: g.State(), Restarted: true}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}

	if g.paused {
		g.events = sim.Events{}
		return core.StepResult{State: g.State()}
	}

	g.applyDifficulty()
	g.events = sim.Step(g.state, g.delta(in.Delta), in.WindowVelocity)

	return core.StepResult{State: g.State(), Died: g.events.Killed}
}

// delta converts the host's wall time into seconds for the sim timers.
// A missing delta falls back to one tick at the configured rate.
func (g *Game) delta(d time.Duration) float64 {
	if d <= 0 {
		rate := g.runtime.TickRate
		if rate <= 0 {
			rate = 60
		}
		return 1.0 / float64(rate)
	}
	if d > MaxDelta {
		d = MaxDelta
	}
	return d.Seconds()
}

// applyDifficulty rescales hazard speed and spawn interval for the current score.
func (g *Game) applyDifficulty() {
	score, ticks := g.state.Score(), g.state.Ticks
	g.state.Tuning.HazardSpeed = g.diff.Speed(g.base.HazardSpeed, score, ticks)
	g.state.Tuning.SpawnInterval = g.diff.SpawnInterval(g.base.SpawnInterval, score, ticks)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.state.Score(),
		GameOver: !g.state.Ball.Alive,
		Paused:   g.paused,
	}
}

// Sim exposes the simulation for hosts that draw it themselves.
func (g *Game) Sim() *sim.State {
	return g.state
}

// Events returns what happened during the last Step.
func (g *Game) Events() sim.Events {
	return g.events
}

// Config returns the configuration the game was built with.
func (g *Game) Config() config.Config {
	return g.cfg
}

// Progressive reports whether difficulty rises during a run.
func (g *Game) Progressive() bool {
	return g.diff.IsEnabled()
}

// Level returns the current difficulty level (0.0 to 1.0).
func (g *Game) Level() float64 {
	return g.diff.Level(g.state.Score(), g.state.Ticks)
}
