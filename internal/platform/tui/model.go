package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/bouncy/internal/core"
	"github.com/vovakirdan/bouncy/internal/games/bouncy"
	"github.com/vovakirdan/bouncy/internal/storage"
)

// Options configures a Model beyond the game itself.
type Options struct {
	Store      *storage.Store
	Logger     *log.Logger
	Difficulty string // recorded with saved scores
}

// Model is the Bubble Tea model that hosts one bouncy session.
type Model struct {
	game       *bouncy.Game
	screen     *core.Screen // whole terminal, minus the help line
	field      *core.Screen // playfield inside the virtual window
	window     *VirtualWindow
	tracker    *core.WindowTracker
	clock      *tickClock
	keys       *KeyMapper
	help       help.Model
	store      *storage.Store
	logger     *log.Logger
	difficulty string
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	board      *ScoreboardModel
	quitting   bool
	scoreSaved bool // Whether score has been saved for current game over
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game *bouncy.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	gc := game.Config()
	win := NewVirtualWindow(gc.Playfield.Width, gc.Playfield.Height, gc.Playfield.CellWidth, gc.Playfield.CellHeight)
	win.SetTerminal(cfg.ScreenW, cfg.ScreenH-1)

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-1, 0)),
		field:      core.NewScreen(win.Cols, win.Rows),
		window:     win,
		tracker:    core.NewWindowTracker(gc.Physics.WindowDamping),
		clock:      &tickClock{},
		keys:       NewKeyMapper(),
		help:       h,
		store:      opts.Store,
		logger:     logger,
		difficulty: opts.Difficulty,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Info("run started", "player", m.config.Player, "seed", m.config.Seed, "difficulty", m.difficulty)

	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.board != nil {
		return m.updateBoard(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	if dx, dy, ok := m.keys.MapNudge(msg); ok {
		m.window.Nudge(dx, dy)
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	switch {
	case isQuit:
		return m.quit()
	case action == core.ActionScoreboard:
		m.openScoreboard()
		return m, nil
	case action != core.ActionNone:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleMouse implements header buttons and window dragging.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		if m.window.OnTitleBar(msg.X, msg.Y) {
			m.window.BeginDrag(msg.X, msg.Y)
			return m, nil
		}
		s := m.game.Sim()
		p, ok := m.window.FieldPoint(msg.X, msg.Y, s.Width, s.Height)
		if !ok {
			return m, nil
		}
		button, drag := bouncy.HitTest(p, s.Width, s.Tuning.HeaderBand)
		switch {
		case button == bouncy.ButtonQuit:
			return m.quit()
		case button != bouncy.ButtonNone:
			m.inputFrame.Set(button.Action())
		case drag:
			m.window.BeginDrag(msg.X, msg.Y)
		}

	case tea.MouseActionMotion:
		m.window.DragTo(msg.X, msg.Y)

	case tea.MouseActionRelease:
		m.window.EndDrag()
	}

	return m, nil
}

// handleResize keeps the virtual window on screen. The playfield itself has
// a fixed size, so the run continues.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-1, 0))
	m.window.SetTerminal(msg.Width, max(msg.Height-1, 0))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	m.inputFrame.Delta = m.clock.Advance(now)
	m.inputFrame.WindowVelocity = m.tracker.Observe(m.window.Position())

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if result.Restarted {
		m.scoreSaved = false
		m.logger.Info("run restarted", "player", m.config.Player)
	}
	if result.Died {
		m.logger.Info("ball died", "player", m.config.Player, "score", m.gameState.Score)
	}

	// Save score on game over (once)
	if m.gameState.GameOver && !m.scoreSaved {
		m.saveScore()
		m.scoreSaved = true
	}

	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// saveScore persists a finished run. Failures are logged and play goes on.
func (m *Model) saveScore() {
	if m.store == nil || m.gameState.Score <= 0 {
		return
	}
	if _, err := m.store.SaveScore(m.config.Player, m.gameState.Score, m.difficulty); err != nil {
		m.logger.Error("could not save score", "error", err)
	}
}

// openScoreboard pauses the game and shows the high scores.
func (m *Model) openScoreboard() {
	if !m.gameState.Paused && !m.gameState.GameOver {
		pause := core.NewInputFrame()
		pause.Set(core.ActionPause)
		m.gameState = m.game.Step(pause).State
	}
	board := NewScoreboardModel(m.store, m.config.Player, m.config.ScreenW, m.config.ScreenH)
	board.embedded = true
	m.board = &board
}

// closeScoreboard returns to the game. The clock and tracker start over so
// the time and window motion spent on the scoreboard never reach the ball.
func (m *Model) closeScoreboard() {
	m.board = nil
	m.clock.Reset()
	m.tracker.Reset()
}

// updateBoard forwards messages to the scoreboard while it is open. Ticks
// keep arriving but do not step the game.
func (m Model) updateBoard(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TickMsg:
		return m, tickCmd(m.config.TickRate)
	case tea.WindowSizeMsg:
		next, _ := m.handleResize(msg)
		m = next.(Model)
	}

	updated, cmd := m.board.Update(msg)
	board := updated.(ScoreboardModel)
	m.board = &board

	if board.IsQuitting() {
		return m.quit()
	}
	if board.IsGoingBack() {
		m.closeScoreboard()
	}
	return m, cmd
}

// quit ends the program, saving a pending score first.
func (m Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	if !m.scoreSaved {
		m.saveScore()
		m.scoreSaved = true
	}
	m.logger.Info("quit", "player", m.config.Player, "score", m.gameState.Score)
	return m, tea.Quit
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.compose()

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}
	dir := filepath.Join(home, ".bouncy", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// compose draws the window frame and the playfield onto the terminal screen.
func (m *Model) compose() {
	m.screen.Clear()
	m.game.Render(m.field)

	frame := core.ColorDimGray
	if m.window.Dragging() {
		frame = core.ColorWhite
	}
	outer := m.window.Outer()
	m.screen.DrawBox(outer, frame)
	m.screen.DrawText(outer.X+2, outer.Y, " "+m.game.Title()+" ", frame)

	inner := m.window.Inner()
	m.screen.Blit(m.field, inner.X, inner.Y)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.board != nil {
		return m.board.View()
	}

	m.compose()
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys.Keys))
}

// GameState returns the state observed on the last tick.
func (m Model) GameState() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program with the given game.
func Run(game *bouncy.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Drag the window and press header buttons
	)

	_, err := p.Run()
	return err
}
