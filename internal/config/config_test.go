package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/vovakirdan/bouncy/internal/sim"
)

func TestEmbeddedDefaultsMatchBuiltin(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) error: %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Errorf("embedded YAML and Default() differ:\n%+v\n%+v", cfg, Default())
	}
}

func TestDefaultTuningMatchesSimulation(t *testing.T) {
	if got, want := Default().Tuning(), sim.DefaultTuning(); got != want {
		t.Errorf("Default().Tuning() = %+v, expected %+v", got, want)
	}
}

func TestParsePartialOverride(t *testing.T) {
	cfg, err := Parse([]byte("hazards:\n  speed: 5\n  spawn_delay: 2500ms\n"))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if cfg.Hazards.Speed != 5 {
		t.Errorf("Speed = %f, expected 5", cfg.Hazards.Speed)
	}
	if cfg.Hazards.SpawnDelay != 2500*time.Millisecond {
		t.Errorf("SpawnDelay = %v, expected 2.5s", cfg.Hazards.SpawnDelay)
	}
	if cfg.Ball.Size != 25 || cfg.Playfield.Width != 600 {
		t.Error("unspecified keys should keep their defaults")
	}
	if cfg.Tuning().SpawnDelay != 2.5 {
		t.Errorf("Tuning().SpawnDelay = %f, expected 2.5", cfg.Tuning().SpawnDelay)
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	if err := os.WriteFile(path, []byte("ball:\n  size: 40\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, src, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if src != path {
		t.Errorf("source = %q, expected %q", src, path)
	}
	if cfg.Ball.Size != 40 {
		t.Errorf("Ball.Size = %f, expected 40", cfg.Ball.Size)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}

	broken := filepath.Join(dir, "broken.yaml")
	if err := os.WriteFile(broken, []byte("ball: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, _, err := Load(broken); err == nil {
		t.Error("expected parse error")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("playfield:\n  width: -1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, _, err := Load(invalid); !errors.Is(err, ErrInvalid) {
		t.Errorf("Load(invalid) error = %v, expected ErrInvalid", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"defaults", func(*Config) {}, true},
		{"zero width", func(c *Config) { c.Playfield.Width = 0 }, false},
		{"zero cell", func(c *Config) { c.Playfield.CellHeight = 0 }, false},
		{"ball wider than field", func(c *Config) { c.Ball.Size = 600 }, false},
		{"ball taller than play band", func(c *Config) { c.Playfield.Height = 50 }, false},
		{"negative trail", func(c *Config) { c.Ball.TrailLength = -1 }, false},
		{"zero trail", func(c *Config) { c.Ball.TrailLength = 0 }, true},
		{"zero hazard", func(c *Config) { c.Hazards.Size = 0 }, false},
		{"negative delay", func(c *Config) { c.Hazards.SpawnDelay = -time.Second }, false},
		{"negative damping", func(c *Config) { c.Physics.WindowDamping = -0.1 }, false},
		{"unknown progression", func(c *Config) { c.Difficulty.Progression.Type = "level" }, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.ok && err != nil {
				t.Errorf("Validate() = %v, expected nil", err)
			}
			if !tc.ok && !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() = %v, expected ErrInvalid", err)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	for _, s := range []string{"", "easy", "normal", "hard", "fixed"} {
		if _, err := ParsePreset(s); err != nil {
			t.Errorf("ParsePreset(%q) error: %v", s, err)
		}
	}
	if _, err := ParsePreset("nightmare"); !errors.Is(err, ErrInvalid) {
		t.Errorf("ParsePreset(nightmare) error = %v, expected ErrInvalid", err)
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset      DifficultyPreset
		wantEnabled bool
		wantLevel   float64
	}{
		{DifficultyEasy, true, 0.0},
		{DifficultyNormal, true, 0.3},
		{DifficultyHard, true, 0.7},
		{DifficultyFixed, false, 0.0},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := Default()
			ApplyPreset(&cfg, tc.preset)
			if cfg.Difficulty.Enabled != tc.wantEnabled {
				t.Errorf("Enabled = %v, expected %v", cfg.Difficulty.Enabled, tc.wantEnabled)
			}
			if tc.wantEnabled && cfg.Difficulty.InitialLevel != tc.wantLevel {
				t.Errorf("InitialLevel = %f, expected %f", cfg.Difficulty.InitialLevel, tc.wantLevel)
			}
		})
	}

	cfg := Default()
	cfg.Difficulty.Enabled = true
	ApplyPreset(&cfg, "")
	if !cfg.Difficulty.Enabled {
		t.Error("empty preset should leave the config untouched")
	}
}

func TestMarshalRoundTripKeepsDuration(t *testing.T) {
	data, err := Marshal(Default())
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if cfg.Hazards.SpawnDelay != 5*time.Second {
		t.Errorf("SpawnDelay = %v after round trip", cfg.Hazards.SpawnDelay)
	}
}
