package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/bouncy.yaml
var defaultYAML []byte

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	out := make([]byte, len(defaultYAML))
	copy(out, defaultYAML)
	return out
}

// Default returns the built-in configuration. It matches defaults/bouncy.yaml.
func Default() Config {
	return Config{
		Playfield: Playfield{
			Width:      600,
			Height:     370,
			HeaderBand: 30,
			CellWidth:  8,
			CellHeight: 16,
		},
		Ball: BallConfig{
			Size:        25,
			StartY:      50,
			TrailLength: 3,
		},
		Physics: Physics{
			Gravity:           0.75,
			WindowCoupling:    0.15,
			HorizontalDamping: 0.99,
			Restitution:       0.86,
			MinBounce:         -10,
			ImpactFactor:      0.1,
			WindowDamping:     0.3,
		},
		Hazards: Hazards{
			Size:          30,
			Speed:         3,
			SpawnInterval: 1.5,
			SpawnDelay:    5 * time.Second,
			SpawnMinY:     50,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 120,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:        1.0,
				SpawnIntervalReduction: 0.9,
			},
		},
	}
}
