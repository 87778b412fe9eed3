package bouncy

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/bouncy/internal/config"
	"github.com/vovakirdan/bouncy/internal/core"
	"github.com/vovakirdan/bouncy/internal/sim"
)

func TestRenderHeader(t *testing.T) {
	g := newTestGame(t, 1)
	dst := core.NewScreen(75, 23)
	g.Render(dst)

	header := dst.Row(0)
	if !strings.Contains(header, "Score: 0") {
		t.Errorf("header %q missing score", header)
	}
	if !strings.Contains(header, "hazards in 5") {
		t.Errorf("header %q missing warm-up countdown", header)
	}

	// Button centers at x = 520, 550, 580 map to columns 65, 68, 72.
	wantCols := map[Button]int{ButtonPause: 65, ButtonRestart: 68, ButtonQuit: 72}
	for b, col := range wantCols {
		cell := dst.GetCell(col, 0)
		if cell.Rune != ButtonChar || cell.Color != b.Color() {
			t.Errorf("%s button cell = %+v, expected %q in color %d", b, cell, ButtonChar, b.Color())
		}
	}

	if dst.Get(0, 1) != HeaderChar {
		t.Errorf("expected header line on row 1, got %q", dst.Row(1))
	}
	if strings.Contains(header, "Lv ") {
		t.Errorf("header %q shows a level without progression", header)
	}
}

func TestRenderHeaderLevel(t *testing.T) {
	cfg := config.Default()
	config.ApplyPreset(&cfg, config.DifficultyHard)
	g := New(cfg)
	g.Reset(core.DefaultConfig())

	dst := core.NewScreen(75, 23)
	g.Render(dst)

	if header := dst.Row(0); !strings.Contains(header, "Score: 0 Lv 70%") {
		t.Errorf("header %q missing difficulty level", header)
	}
}

func TestLevelLabel(t *testing.T) {
	tests := []struct {
		level float64
		want  string
	}{
		{0, "Lv 0% "},
		{0.3, "Lv 30% "},
		{0.456, "Lv 46% "},
		{1, "Lv 100% "},
	}

	for _, tc := range tests {
		if got := LevelLabel(tc.level); got != tc.want {
			t.Errorf("LevelLabel(%v) = %q, expected %q", tc.level, got, tc.want)
		}
	}
}

func TestRenderEntities(t *testing.T) {
	g := newTestGame(t, 1)
	g.Sim().Hazards = append(g.Sim().Hazards, sim.NewHazard(0, 200, 30, 3, sim.DirRight))

	dst := core.NewScreen(75, 23)
	g.Render(dst)

	// Ball at (300, 50): columns 38..40, rows 3..4.
	if cell := dst.GetCell(38, 3); cell.Rune != BallChar || cell.Color != core.ColorSalmon {
		t.Errorf("ball cell = %+v", cell)
	}
	// Hazard at (0, 200): columns 0..3, rows 12..13.
	if cell := dst.GetCell(1, 12); cell.Rune != HazardChar || cell.Color != core.ColorOrange {
		t.Errorf("hazard cell = %+v", cell)
	}
	if dst.Get(5, 12) == HazardChar {
		t.Error("hazard drawn wider than its bounds")
	}
}

func TestRenderOverlays(t *testing.T) {
	g := newTestGame(t, 1)
	dst := core.NewScreen(75, 23)

	in := core.NewInputFrame()
	in.Set(core.ActionPause)
	g.Step(in)
	g.Render(dst)
	if !strings.Contains(dst.String(), "PAUSED") {
		t.Error("paused overlay missing")
	}

	g.Restart()
	g.Sim().Ball.Alive = false
	g.Step(tickFrame(16 * time.Millisecond))
	g.Render(dst)
	out := dst.String()
	if !strings.Contains(out, "GAME OVER") {
		t.Error("game over overlay missing")
	}
	if dst.Get(38, 3) != DeadBallChar {
		t.Error("dead ball should use the dead glyph")
	}
}

func TestRenderTinyScreen(t *testing.T) {
	g := newTestGame(t, 1)
	for _, size := range [][2]int{{0, 0}, {1, 1}, {10, 3}} {
		dst := core.NewScreen(size[0], size[1])
		g.Render(dst) // must not panic
	}
}

func TestTrailAlpha(t *testing.T) {
	tests := []struct {
		i, n int
		want float64
	}{
		{0, 3, 0.1},
		{1, 3, 0.2},
		{2, 3, 0.3},
		{0, 1, 0.3},
		{3, 3, 0},
		{0, 0, 0},
		{-1, 3, 0},
	}

	for _, tc := range tests {
		if got := TrailAlpha(tc.i, tc.n); math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("TrailAlpha(%d, %d) = %f, expected %f", tc.i, tc.n, got, tc.want)
		}
	}
}
