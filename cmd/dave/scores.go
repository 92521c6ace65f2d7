package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-dave/internal/games/dave"
	"github.com/vovakirdan/tui-dave/internal/registry"
	"github.com/vovakirdan/tui-dave/internal/storage"
)

var (
	flagClearScores bool
	flagAllScores   bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show high scores and recent runs",
	Long: `Display the top 10 high scores (or all with --all), run statistics and the most recent runs.
The game defaults to "dave"; use "dave_practice" for practice runs.

Examples:
  dave scores
  dave scores dave_practice
  dave scores --all
  dave scores --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClearScores, "clear", false, "Delete all scores and runs for the game")
	scoresCmd.Flags().BoolVar(&flagAllScores, "all", false, "List every recorded score instead of the top 10")
}

func runScores(_ *cobra.Command, args []string) {
	gameID := dave.GameID
	if len(args) == 1 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q (want %s or %s)\n", gameID, dave.GameID, dave.PracticeID)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClearScores {
		if err := store.ClearGame(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			return
		}
		fmt.Printf("Cleared scores for %s.\n", registry.Title(gameID))
		return
	}

	limit := 10
	if flagAllScores {
		limit = 0
	}
	scores, err := store.TopScores(gameID, limit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		return
	}

	fmt.Printf("High Scores - %s\n", registry.Title(gameID))
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Run 'dave play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-10s  %-5s  %s\n", "Rank", "Score", "Level", "Date")
	fmt.Printf("  %-4s  %-10s  %-5s  %s\n", "----", "-----", "-----", "----")
	for i, entry := range scores {
		level := "-"
		if entry.Level > 0 {
			level = fmt.Sprint(entry.Level)
		}
		fmt.Printf("  %-4d  %-10d  %-5s  %s\n", i+1, entry.Score, level, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	if stats, err := store.Stats(gameID); err == nil && stats.Runs > 0 {
		fmt.Println()
		fmt.Printf("Runs: %d  Best: %d  Average: %.0f  Wins: %d  Furthest level: %d  Last played: %s\n",
			stats.Runs, stats.HighScore, stats.AvgScore, stats.Wins, stats.BestLevel,
			stats.LastPlayed.Format("2006-01-02"))
	}

	runs, err := store.RecentRuns(gameID, 5)
	if err != nil || len(runs) == 0 {
		return
	}
	fmt.Println()
	fmt.Println("Recent runs:")
	for _, r := range runs {
		result := "lost on"
		if r.Won {
			result = "won at"
		}
		fmt.Printf("  %-10d  %s level %-2d  %s\n", r.Score, result, r.Level, r.CreatedAt.Format("2006-01-02 15:04"))
	}
}
