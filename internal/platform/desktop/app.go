// Package desktop hosts bouncy in a frameless, always-on-top OS window.
// The real window position drives the physics: drag the header band to
// shake the ball around.
package desktop

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/vovakirdan/bouncy/internal/core"
	"github.com/vovakirdan/bouncy/internal/games/bouncy"
	"github.com/vovakirdan/bouncy/internal/storage"
)

// Death fade of the ball.
const (
	fadeFrom     = 1.0
	fadeTo       = 0.35
	fadeDuration = 0.6 // seconds
)

var (
	bgTop        = color.NRGBA{40, 40, 60, 235}
	bgBottom     = color.NRGBA{20, 20, 30, 235}
	headerTop    = color.NRGBA{60, 60, 80, 255}
	headerBottom = color.NRGBA{50, 50, 70, 255}
	hazardColor  = color.NRGBA{255, 140, 0, 255}
	overlayColor = color.NRGBA{0, 0, 0, 140}

	buttonColors = map[bouncy.Button]color.NRGBA{
		bouncy.ButtonPause:   {50, 200, 50, 255},
		bouncy.ButtonRestart: {255, 255, 0, 255},
		bouncy.ButtonQuit:    {200, 50, 50, 255},
	}
)

// Options configures an App beyond the game itself.
type Options struct {
	Store      *storage.Store
	Logger     *log.Logger
	Difficulty string // recorded with saved scores
}

// App implements ebiten.Game for one bouncy session.
type App struct {
	game    *bouncy.Game
	config  core.RuntimeConfig
	tracker *core.WindowTracker
	store   *storage.Store
	logger  *log.Logger
	diff    string

	last time.Time

	dragging     bool
	grabX, grabY int

	fade      *gween.Tween
	ballAlpha float32

	scoreSaved bool
}

// NewApp creates the ebiten game for the given bouncy game and resets it.
func NewApp(game *bouncy.Game, cfg core.RuntimeConfig, opts Options) *App {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	game.Reset(cfg)

	return &App{
		game:      game,
		config:    cfg,
		tracker:   core.NewWindowTracker(game.Config().Physics.WindowDamping),
		store:     opts.Store,
		logger:    logger,
		diff:      opts.Difficulty,
		ballAlpha: fadeFrom,
	}
}

// Update advances the game by one ebiten tick.
func (a *App) Update() error {
	now := time.Now()
	in := core.NewInputFrame()
	if !a.last.IsZero() {
		in.Delta = now.Sub(a.last)
	}
	a.last = now

	a.readKeys(&in)
	a.readMouse(&in)

	if in.Has(core.ActionQuit) {
		a.saveScore()
		return ebiten.Termination
	}

	wx, wy := ebiten.WindowPosition()
	in.WindowVelocity = a.tracker.Observe(core.Vec2{X: float64(wx), Y: float64(wy)})

	res := a.game.Step(in)
	switch {
	case res.Restarted:
		a.fade = nil
		a.ballAlpha = fadeFrom
		a.scoreSaved = false
		a.logger.Info("run restarted")
	case res.Died:
		a.fade = gween.New(fadeFrom, fadeTo, fadeDuration, ease.OutQuad)
		a.logger.Info("ball died", "score", res.State.Score)
		if !a.scoreSaved {
			a.saveScore()
			a.scoreSaved = true
		}
	}

	if a.fade != nil {
		v, done := a.fade.Update(float32(in.Delta.Seconds()))
		a.ballAlpha = v
		if done {
			a.fade = nil
		}
	}
	return nil
}

func (a *App) readKeys(in *core.InputFrame) {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyP), inpututil.IsKeyJustPressed(ebiten.KeySpace):
		in.Set(core.ActionPause)
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		in.Set(core.ActionRestart)
	case inpututil.IsKeyJustPressed(ebiten.KeyQ), inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		in.Set(core.ActionQuit)
	}
}

// readMouse handles header presses and moves the OS window while dragging.
// The cursor is window-relative, so keeping it at the grab offset means
// shifting the window by the cursor's drift.
func (a *App) readMouse(in *core.InputFrame) {
	st := a.game.Sim()

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		cx, cy := ebiten.CursorPosition()
		b, drag := bouncy.HitTest(core.Vec2{X: float64(cx), Y: float64(cy)}, st.Width, st.Tuning.HeaderBand)
		switch {
		case b != bouncy.ButtonNone:
			in.Set(b.Action())
		case drag:
			a.dragging = true
			a.grabX, a.grabY = cx, cy
		}
	}

	if !a.dragging {
		return
	}
	if !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		a.dragging = false
		return
	}
	cx, cy := ebiten.CursorPosition()
	if cx == a.grabX && cy == a.grabY {
		return
	}
	wx, wy := ebiten.WindowPosition()
	ebiten.SetWindowPosition(wx+cx-a.grabX, wy+cy-a.grabY)
}

// saveScore persists a finished run. Failures are logged and play goes on.
func (a *App) saveScore() {
	score := a.game.State().Score
	if a.store == nil || score <= 0 || a.scoreSaved {
		return
	}
	if _, err := a.store.SaveScore(a.config.Player, score, a.diff); err != nil {
		a.logger.Error("could not save score", "error", err)
	}
}

// Draw renders the playfield.
func (a *App) Draw(screen *ebiten.Image) {
	st := a.game.Sim()
	w, h := float32(st.Width), float32(st.Height)
	band := float32(st.Tuning.HeaderBand)

	fillGradient(screen, 0, h, w, bgTop, bgBottom)
	fillGradient(screen, 0, band, w, headerTop, headerBottom)

	for _, b := range bouncy.Buttons {
		box := bouncy.ButtonBounds(b, st.Width)
		c := box.Center()
		vector.DrawFilledCircle(screen, float32(c.X), float32(c.Y), float32(box.W/2), buttonColors[b], true)
	}

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Score: %d", st.Score()), 10, 8)
	if a.game.Progressive() {
		ebitenutil.DebugPrintAt(screen, bouncy.LevelLabel(a.game.Level()), 90, 8)
	}
	if st.Ball.Alive && !st.HazardsEnabled() {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("hazards in %d", int(math.Ceil(st.GateRemaining()))), int(w/2)-45, 8)
	}

	for _, hz := range st.Hazards {
		if hz.Active {
			vector.DrawFilledRect(screen, float32(hz.X), float32(hz.Y), float32(hz.Size), float32(hz.Size), hazardColor, false)
		}
	}

	r := float32(st.Ball.Size / 2)
	if st.Ball.Alive {
		n := len(st.Ball.Trail)
		for i, p := range st.Ball.Trail {
			alpha := uint8(255 * bouncy.TrailAlpha(i, n))
			vector.DrawFilledCircle(screen, float32(p.X)+r, float32(p.Y)+r, r, color.NRGBA{255, 100, 100, alpha}, true)
		}
	}

	ball := color.NRGBA{255, 100, 100, 255}
	if !st.Ball.Alive {
		ball = color.NRGBA{100, 100, 100, uint8(255 * a.ballAlpha)}
	}
	vector.DrawFilledCircle(screen, float32(st.Ball.X)+r, float32(st.Ball.Y)+r, r, ball, true)

	switch gs := a.game.State(); {
	case gs.GameOver:
		drawBanner(screen, w, h, "GAME OVER", fmt.Sprintf("score %d - R to restart, Q to quit", gs.Score))
	case gs.Paused:
		drawBanner(screen, w, h, "PAUSED", "P to resume")
	}
}

// Layout keeps the logical screen at the playfield size.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	st := a.game.Sim()
	return int(st.Width), int(st.Height)
}

// fillGradient paints a vertical gradient one pixel row at a time.
func fillGradient(dst *ebiten.Image, y0, y1, w float32, from, to color.NRGBA) {
	span := y1 - y0
	if span <= 0 {
		return
	}
	for y := y0; y < y1; y++ {
		t := (y - y0) / span
		c := color.NRGBA{
			R: lerp8(from.R, to.R, t),
			G: lerp8(from.G, to.G, t),
			B: lerp8(from.B, to.B, t),
			A: lerp8(from.A, to.A, t),
		}
		vector.DrawFilledRect(dst, 0, y, w, 1, c, false)
	}
}

func lerp8(a, b uint8, t float32) uint8 {
	return uint8(float32(a) + (float32(b)-float32(a))*t)
}

// drawBanner dims the playfield and prints two centered lines.
// The debug font is 6x16 pixels per glyph.
func drawBanner(dst *ebiten.Image, w, h float32, title, sub string) {
	vector.DrawFilledRect(dst, 0, h/2-28, w, 56, overlayColor, false)
	ebitenutil.DebugPrintAt(dst, title, int(w/2)-len(title)*3, int(h/2)-20)
	ebitenutil.DebugPrintAt(dst, sub, int(w/2)-len(sub)*3, int(h/2))
}

// Run opens the window and blocks until the player quits or closes it.
func Run(game *bouncy.Game, cfg core.RuntimeConfig, opts Options) error {
	app := NewApp(game, cfg, opts)
	pf := game.Config().Playfield

	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowSize(int(pf.Width), int(pf.Height))
	ebiten.SetWindowDecorated(false)
	ebiten.SetWindowFloating(true)
	ebiten.SetTPS(app.config.TickRate)

	return ebiten.RunGameWithOptions(app, &ebiten.RunGameOptions{
		ScreenTransparent: true,
	})
}
