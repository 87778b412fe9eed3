package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/bouncy/internal/config"
	"github.com/vovakirdan/bouncy/internal/core"
	"github.com/vovakirdan/bouncy/internal/games/bouncy"
	"github.com/vovakirdan/bouncy/internal/platform/tui"
	"github.com/vovakirdan/bouncy/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagName       string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start playing in the terminal. The playfield sits in a box you can drag
around with the mouse; the box's motion shakes the ball.

Controls:
  Drag header     - Move the window (and shake the ball)
  Arrows/hjkl     - Nudge the window
  P/Space         - Pause
  R               - Restart
  Tab             - High scores
  Ctrl+S          - Screenshot
  Q/Ctrl+C        - Quit

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, plays with the configured constants

Examples:
  bouncy play
  bouncy play --difficulty hard
  bouncy play --name alice
  bouncy play --config ./my-bouncy.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	for _, c := range []*cobra.Command{playCmd, windowCmd} {
		c.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
		c.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
		c.Flags().StringVar(&flagName, "name", defaultPlayer(), "Player name recorded with scores")
	}
}

func defaultPlayer() string {
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return "player"
}

// loadGame resolves the config file and difficulty preset into a game.
// It returns the preset name recorded with scores.
func loadGame() (*bouncy.Game, string, string, error) {
	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		return nil, "", "", err
	}

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return nil, "", "", err
	}
	config.ApplyPreset(&cfg, preset)
	if err := cfg.Validate(); err != nil {
		return nil, "", "", fmt.Errorf("%s: %w", source, err)
	}

	if preset == "" {
		preset = config.DifficultyFixed
		if cfg.Difficulty.Enabled {
			preset = "custom"
		}
	}
	return bouncy.New(cfg), string(preset), source, nil
}

// openStore opens the scores database. Callers keep playing without
// persistence when it fails.
func openStore() (*storage.Store, error) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return nil, fmt.Errorf("could not open scores database: %w", err)
	}
	return store, nil
}

func runPlay(cmd *cobra.Command, args []string) {
	logger, closeLog := mustLogger(io.Discard, "bouncy")
	defer closeLog()

	game, difficulty, source, err := loadGame()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
		Player:   flagName,
		Replay:   flagSeed != 0,
	}

	store, err := openStore()
	if err != nil {
		// Continue without storage - game still works
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}

	logger.Info("starting run", "host", "terminal", "config", source, "difficulty", difficulty, "player", flagName)

	runErr := tui.Run(game, cfg, tui.Options{
		Store:      store,
		Logger:     logger,
		Difficulty: difficulty,
	})

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
