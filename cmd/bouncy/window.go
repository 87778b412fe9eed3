package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/bouncy/internal/core"
	"github.com/vovakirdan/bouncy/internal/platform/desktop"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a frameless desktop window",
	Long: `Open bouncy in a small always-on-top window without decorations.
Drag the header band to move the window; the ball feels every shake.

Controls:
  Drag header     - Move the window
  Green button/P  - Pause
  Yellow button/R - Restart
  Red button/Q    - Quit

Accepts the same --config, --difficulty and --name flags as play.`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func runWindow(cmd *cobra.Command, args []string) {
	logger, closeLog := mustLogger(os.Stderr, "bouncy")
	defer closeLog()

	game, difficulty, source, err := loadGame()
	if err != nil {
		logger.Fatal("could not load config", "error", err)
	}

	store, err := openStore()
	if err != nil {
		logger.Warn("playing without scores", "error", err)
	} else {
		defer store.Close()
	}

	logger.Info("starting run", "host", "desktop", "config", source, "difficulty", difficulty, "player", flagName)

	cfg := core.RuntimeConfig{
		TickRate: flagFPS,
		Seed:     flagSeed,
		Player:   flagName,
		Replay:   flagSeed != 0,
	}
	if err := desktop.Run(game, cfg, desktop.Options{
		Store:      store,
		Logger:     logger,
		Difficulty: difficulty,
	}); err != nil {
		logger.Error("window closed with error", "error", err)
		os.Exit(1)
	}
}
