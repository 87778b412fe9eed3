package config

import (
	"math"
	"testing"
)

func progressive(level float64) DifficultyConfig {
	cfg := Default().Difficulty
	cfg.Enabled = true
	cfg.InitialLevel = level
	return cfg
}

func TestDifficultyDisabledPassesThrough(t *testing.T) {
	d := NewDifficultyManager(Default().Difficulty)

	if d.IsEnabled() {
		t.Error("default difficulty should be disabled")
	}
	for _, score := range []int{0, 60, 1000} {
		if got := d.Speed(3, score, 0); got != 3 {
			t.Errorf("Speed at score %d = %f, expected 3", score, got)
		}
		if got := d.SpawnInterval(1.5, score, 0); got != 1.5 {
			t.Errorf("SpawnInterval at score %d = %f, expected 1.5", score, got)
		}
	}
}

func TestDifficultyLevelProgression(t *testing.T) {
	d := NewDifficultyManager(progressive(0.3))

	tests := []struct {
		score int
		want  float64
	}{
		{0, 0.3},
		{60, 0.65},
		{120, 1.0},
		{500, 1.0},
	}

	for _, tc := range tests {
		if got := d.Level(tc.score, 0); math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("Level(%d) = %f, expected %f", tc.score, got, tc.want)
		}
	}
}

func TestDifficultyTimeProgression(t *testing.T) {
	cfg := progressive(0)
	cfg.Progression = ProgressionConfig{Type: "time", MaxAt: 600}
	d := NewDifficultyManager(cfg)

	if got := d.Level(0, 300); math.Abs(got-0.5) > 1e-9 {
		t.Errorf("Level at 300 ticks = %f, expected 0.5", got)
	}
}

func TestDifficultyScaling(t *testing.T) {
	d := NewDifficultyManager(progressive(0))

	if got := d.Speed(3, 120, 0); math.Abs(got-6) > 1e-9 {
		t.Errorf("Speed at max = %f, expected 6", got)
	}
	if got := d.SpawnInterval(1.5, 120, 0); math.Abs(got-0.6) > 1e-9 {
		t.Errorf("SpawnInterval at max = %f, expected 0.6", got)
	}
}

func TestDifficultySpawnIntervalFloor(t *testing.T) {
	cfg := progressive(1)
	cfg.Scaling.SpawnIntervalReduction = 5
	d := NewDifficultyManager(cfg)

	if got := d.SpawnInterval(1.5, 0, 0); got != MinSpawnInterval {
		t.Errorf("SpawnInterval = %f, expected floor %f", got, MinSpawnInterval)
	}
	if got := d.SpawnInterval(0.2, 0, 0); got != 0.2 {
		t.Errorf("SpawnInterval below floor = %f, expected base 0.2", got)
	}
}

func TestDifficultyNoneHoldsInitialLevel(t *testing.T) {
	cfg := progressive(0.7)
	cfg.Progression.Type = "none"
	d := NewDifficultyManager(cfg)

	if d.IsEnabled() {
		t.Error("progression type none should report disabled")
	}
	if got := d.Level(1000, 1000); got != 0.7 {
		t.Errorf("Level = %f, expected 0.7", got)
	}
}
