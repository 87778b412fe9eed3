package bouncy

import (
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/vovakirdan/bouncy/internal/core"
)

// Visual characters for rendering
const (
	BallChar     = '●'
	DeadBallChar = '✕'
	TrailChar    = '•'
	HazardChar   = '█'
	ButtonChar   = '●'
	HeaderChar   = '─'
)

// viewport maps playfield units onto the cells of a screen.
type viewport struct {
	sx, sy float64
}

func newViewport(dst *core.Screen, w, h float64) viewport {
	if w <= 0 || h <= 0 {
		return viewport{}
	}
	return viewport{
		sx: float64(dst.Width()) / w,
		sy: float64(dst.Height()) / h,
	}
}

// col and row convert a playfield coordinate to a cell index.
func (v viewport) col(x float64) int { return int(math.Floor(x * v.sx)) }
func (v viewport) row(y float64) int { return int(math.Floor(y * v.sy)) }

// rect returns the cells covered by a box; never smaller than one cell.
func (v viewport) rect(b core.Box) core.Rect {
	x0 := int(math.Round(b.X * v.sx))
	y0 := int(math.Round(b.Y * v.sy))
	w := int(math.Round(b.Right()*v.sx)) - x0
	h := int(math.Round(b.Bottom()*v.sy)) - y0
	return core.NewRect(x0, y0, max(w, 1), max(h, 1))
}

// Render draws the playfield scaled to fit dst.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	s := g.state
	v := newViewport(dst, s.Width, s.Height)

	g.drawHeader(dst, v)

	for i := range s.Hazards {
		dst.DrawRect(v.rect(s.Hazards[i].Bounds()), HazardChar, core.ColorOrange)
	}

	ball := &s.Ball
	half := ball.Size / 2
	if ball.Alive {
		for _, p := range ball.Trail {
			dst.SetColored(v.col(p.X+half), v.row(p.Y+half), TrailChar, core.ColorDimGray)
		}
		dst.DrawRect(v.rect(ball.Bounds()), BallChar, core.ColorSalmon)
	} else {
		dst.DrawRect(v.rect(ball.Bounds()), DeadBallChar, core.ColorGray)
	}

	switch {
	case g.paused:
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	case !ball.Alive:
		drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", s.Score()))
	}
}

// drawHeader renders the drag band: score, warm-up countdown and buttons.
func (g *Game) drawHeader(dst *core.Screen, v viewport) {
	s := g.state
	line := v.row(s.Tuning.HeaderBand)
	dst.DrawHLine(0, line, dst.Width(), HeaderChar, core.ColorDimGray)

	score := fmt.Sprintf(" Score: %d ", s.Score())
	dst.DrawText(1, 0, score, core.ColorBrightWhite)
	if g.Progressive() {
		dst.DrawText(1+len(score), 0, LevelLabel(g.Level()), core.ColorGray)
	}

	if s.Ball.Alive && !s.HazardsEnabled() {
		remaining := int(math.Ceil(s.GateRemaining()))
		dst.DrawTextCentered(0, fmt.Sprintf(" hazards in %d ", remaining), core.ColorYellow)
	}

	for _, b := range Buttons {
		c := ButtonBounds(b, s.Width).Center()
		dst.SetColored(v.col(c.X), 0, ButtonChar, b.Color())
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	titleLen := utf8.RuneCountInString(title)
	subtitleLen := utf8.RuneCountInString(subtitle)

	boxW := max(titleLen, subtitleLen) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorWhite)

	dst.DrawText(boxX+(boxW-titleLen)/2, boxY+1, title, core.ColorBrightWhite)
	dst.DrawText(boxX+(boxW-subtitleLen)/2, boxY+3, subtitle, core.ColorWhite)
}

// TrailAlpha returns the opacity (0..1) of trail entry i out of n, oldest first.
// Newer entries are more opaque, capped at 30%.
func TrailAlpha(i, n int) float64 {
	if n <= 0 || i < 0 || i >= n {
		return 0
	}
	return float64(i+1) / float64(n) * 0.3
}

// LevelLabel formats a difficulty level for the header.
func LevelLabel(level float64) string {
	return fmt.Sprintf("Lv %d%% ", int(math.Round(level*100)))
}
