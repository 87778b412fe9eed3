// Package config provides YAML-based game configuration loading and
// difficulty management for bouncy.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/bouncy/internal/sim"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Config contains all configuration for the game.
type Config struct {
	Playfield  Playfield        `yaml:"playfield"`
	Ball       BallConfig       `yaml:"ball"`
	Physics    Physics          `yaml:"physics"`
	Hazards    Hazards          `yaml:"hazards"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// Playfield defines the simulated area and how it maps onto terminal cells.
type Playfield struct {
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	HeaderBand float64 `yaml:"header_band"`
	CellWidth  float64 `yaml:"cell_width"`
	CellHeight float64 `yaml:"cell_height"`
}

// BallConfig defines the ball.
type BallConfig struct {
	Size        float64 `yaml:"size"`
	StartY      float64 `yaml:"start_y"`
	TrailLength int     `yaml:"trail_length"`
}

// Physics defines per-tick physics constants.
type Physics struct {
	Gravity           float64 `yaml:"gravity"`
	WindowCoupling    float64 `yaml:"window_coupling"`
	HorizontalDamping float64 `yaml:"horizontal_damping"`
	Restitution       float64 `yaml:"restitution"`
	MinBounce         float64 `yaml:"min_bounce"`
	ImpactFactor      float64 `yaml:"impact_factor"`
	WindowDamping     float64 `yaml:"window_damping"`
}

// Hazards defines hazard size, speed and spawn timing.
type Hazards struct {
	Size          float64       `yaml:"size"`
	Speed         float64       `yaml:"speed"`
	SpawnInterval float64       `yaml:"spawn_interval"` // seconds
	SpawnDelay    time.Duration `yaml:"spawn_delay"`
	SpawnMinY     float64       `yaml:"spawn_min_y"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score (seconds) or ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier        float64 `yaml:"speed_multiplier"`         // Added to hazard speed multiplier at max difficulty
	SpawnIntervalReduction float64 `yaml:"spawn_interval_reduction"` // Seconds removed from the spawn interval at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI string into a preset. Empty means "use the file".
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("%w: unknown difficulty %q (want easy, normal, hard or fixed)", ErrInvalid, s)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
// An empty preset leaves the config untouched.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	switch preset {
	case "":
		return
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	default:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}
}

// Validate checks that the config describes a playable field.
func (c Config) Validate() error {
	pf := c.Playfield
	switch {
	case pf.Width <= 0 || pf.Height <= 0:
		return fmt.Errorf("%w: playfield %gx%g must be positive", ErrInvalid, pf.Width, pf.Height)
	case pf.CellWidth <= 0 || pf.CellHeight <= 0:
		return fmt.Errorf("%w: cell size %gx%g must be positive", ErrInvalid, pf.CellWidth, pf.CellHeight)
	case c.Ball.Size <= 0 || c.Ball.Size >= pf.Width || c.Ball.Size >= pf.Height-pf.HeaderBand:
		return fmt.Errorf("%w: ball size %g does not fit the playfield", ErrInvalid, c.Ball.Size)
	case c.Ball.TrailLength < 0:
		return fmt.Errorf("%w: trail_length %d is negative", ErrInvalid, c.Ball.TrailLength)
	case c.Hazards.Size <= 0:
		return fmt.Errorf("%w: hazard size %g must be positive", ErrInvalid, c.Hazards.Size)
	case c.Hazards.SpawnInterval < 0 || c.Hazards.SpawnDelay < 0:
		return fmt.Errorf("%w: spawn timings must not be negative", ErrInvalid)
	case c.Physics.WindowDamping < 0:
		return fmt.Errorf("%w: window_damping %g is negative", ErrInvalid, c.Physics.WindowDamping)
	}
	switch c.Difficulty.Progression.Type {
	case "", "score", "time", "none":
	default:
		return fmt.Errorf("%w: progression type %q", ErrInvalid, c.Difficulty.Progression.Type)
	}
	return nil
}

// Tuning converts the config into simulation constants.
func (c Config) Tuning() sim.Tuning {
	return sim.Tuning{
		BallSize:          c.Ball.Size,
		BallStartY:        c.Ball.StartY,
		TrailLength:       c.Ball.TrailLength,
		WindowCoupling:    c.Physics.WindowCoupling,
		Gravity:           c.Physics.Gravity,
		HorizontalDamping: c.Physics.HorizontalDamping,
		Restitution:       c.Physics.Restitution,
		MinBounce:         c.Physics.MinBounce,
		ImpactFactor:      c.Physics.ImpactFactor,
		HeaderBand:        c.Playfield.HeaderBand,

		HazardSize:    c.Hazards.Size,
		HazardSpeed:   c.Hazards.Speed,
		SpawnInterval: c.Hazards.SpawnInterval,
		SpawnDelay:    c.Hazards.SpawnDelay.Seconds(),
		SpawnMinY:     c.Hazards.SpawnMinY,
	}
}
