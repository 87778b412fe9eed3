package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/bouncy/internal/platform/tui"
	"github.com/vovakirdan/bouncy/internal/storage"
)

var (
	flagLimit       int
	flagClear       bool
	flagScorePlayer string
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the best runs. In a terminal this opens the interactive
scoreboard; when piped it prints a plain table.

Examples:
  bouncy scores
  bouncy scores --player alice
  bouncy scores --limit 20 | less
  bouncy scores --clear --player alice`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete recorded scores (all, or --player only)")
	scoresCmd.Flags().StringVar(&flagScorePlayer, "player", "", "Only show this player's scores")
}

func runScores(cmd *cobra.Command, args []string) {
	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		n, err := store.ClearScores(flagScorePlayer)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Deleted %d score(s).\n", n)
		return
	}

	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(fd); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunScoreboard(store, flagScorePlayer, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error running scoreboard: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := printScores(store); err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}
}

// printScores writes a plain table for non-interactive output.
func printScores(store *storage.Store) error {
	var (
		scores []storage.ScoreEntry
		err    error
	)
	if flagScorePlayer != "" {
		scores, err = store.PlayerScores(flagScorePlayer, flagLimit)
	} else {
		scores, err = store.TopScores(flagLimit)
	}
	if err != nil {
		return err
	}

	// Display scores
	if flagScorePlayer != "" {
		fmt.Printf("High Scores - %s\n", flagScorePlayer)
	} else {
		fmt.Println("High Scores")
	}
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'bouncy play' to set the first high score!")
		return nil
	}

	// Print header
	fmt.Printf("  %-4s  %-12s  %-6s  %-10s  %s\n", "Rank", "Player", "Score", "Difficulty", "Date")
	fmt.Printf("  %-4s  %-12s  %-6s  %-10s  %s\n", "----", "------", "-----", "----------", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-12s  %-6d  %-10s  %s\n", i+1, entry.Player, entry.Score, entry.Difficulty, dateStr)
	}

	stats, err := store.GetStats(flagScorePlayer)
	if err == nil && stats.GamesCount > 0 {
		fmt.Println()
		fmt.Printf("Best: %d   Runs: %d   Average: %.1f\n", stats.HighScore, stats.GamesCount, stats.AvgScore)
	}
	return nil
}
