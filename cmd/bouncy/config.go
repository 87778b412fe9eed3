package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/bouncy/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration bouncy would play with, as YAML.

The file is looked up in this order:
  --config <path>
  ~/.bouncy/configs/bouncy.yaml
  ./configs/bouncy.yaml
  built-in defaults

Examples:
  bouncy config
  bouncy config --difficulty hard
  bouncy config > ~/.bouncy/configs/bouncy.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	configCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runConfig(cmd *cobra.Command, args []string) {
	game, _, source, err := loadGame()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	data, err := config.Marshal(game.Config())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "# source: %s\n", source)
	fmt.Print(string(data))
}
