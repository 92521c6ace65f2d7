package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-dave/internal/config"
	"github.com/vovakirdan/tui-dave/internal/games/dave"
	"github.com/vovakirdan/tui-dave/internal/platform/tui"
	"github.com/vovakirdan/tui-dave/internal/registry"
	"github.com/vovakirdan/tui-dave/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagLevel      int
	flagPractice   bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a run",
	Long: `Start a run of Dangerous Dave.

Controls:
  Left/Right, A/D   - Walk
  Up/W              - Jump (or fly up with the jetpack)
  Down/S            - Fly down with the jetpack
  Space/F           - Fire the gun
  J                 - Toggle the jetpack
  P                 - Pause
  R                 - Restart (after game over)
  Esc/B             - Back (when paused or over)
  Ctrl+S            - Save a screenshot
  Q/Ctrl+C          - Quit

Difficulty options:
  easy   - At least 5 lives, full jetpack, longer key holds
  normal - The loaded configuration as is
  hard   - One life, less jetpack fuel, no immortality

Examples:
  dave play
  dave play --level 4
  dave play --practice --level 10
  dave play --difficulty hard
  dave play --config ./my-dave.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	playCmd.Flags().IntVar(&flagLevel, "level", 0, "Start at this level (1-10, default from config)")
	playCmd.Flags().BoolVar(&flagPractice, "practice", false, "Practice mode: unlimited lives, scored separately")
}

// applyGameFlags passes the play flags to the Dave package before a game
// is created.
func applyGameFlags() error {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return err
	}
	if flagLevel < 0 || flagLevel > 10 {
		return fmt.Errorf("--level must be between 1 and 10, got %d", flagLevel)
	}

	dave.SetConfigPath(flagConfig)
	dave.SetDifficultyPreset(preset)
	dave.SetStartLevel(flagLevel)
	return nil
}

func runPlay(cmd *cobra.Command, _ []string) {
	if err := applyGameFlags(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	gameID := dave.GameID
	if flagPractice {
		gameID = dave.PracticeID
	}
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	_, runErr := tui.Run(game, store, runtimeConfig(cmd))

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
	if err := startErr(game); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// startErr reports why a game could not start its run, for games that
// track it.
func startErr(game registry.Game) error {
	if f, ok := game.(interface{ Err() error }); ok {
		return f.Err()
	}
	return nil
}
