// dave plays Dangerous Dave in the terminal.
//
// Usage:
//
//	dave play                - Play a run (optionally from --level N)
//	dave menu                - Start menu with level select and scoreboard
//	dave levels              - List the levels in the current set
//	dave levels export       - Write the level set as YAML or .dat files
//	dave scores [game]       - Show high scores and recent runs
//	dave serve               - Start SSH server for remote play
//	dave config              - Print the effective or default configuration
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: tick_rate from the config, 30)
//	--db <path>          - Set database path (default: ~/.arcade/scores.db)
//	--levels-dir <dir>   - Load levels from a directory instead of the built-in set
//	--log <path>         - Write gameplay events to a log file
//	--log-level <level>  - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-dave/internal/config"
	"github.com/vovakirdan/tui-dave/internal/core"
	"github.com/vovakirdan/tui-dave/internal/games/dave"
)

var (
	// Global flags
	flagFPS       int
	flagDBPath    string
	flagLevelsDir string
	flagLogPath   string
	flagLogLevel  string

	logFile io.Closer
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dave",
	Short: "Dangerous Dave in your terminal",
	Long: `Dangerous Dave is a side-scrolling platformer: grab the trophy in each of
ten levels and reach the door, dodging fire, water and monsters.

Available commands:
  play     - Play a run directly
  menu     - Interactive menu with level select and scoreboard
  levels   - List or export the level set
  scores   - View high scores and recent runs
  serve    - Start SSH server for remote play
  config   - Print the game configuration

Examples:
  dave play
  dave play --level 5 --difficulty easy
  dave menu
  dave levels export --format dat --out ./levels
  dave serve --ssh :2222`,
	SilenceUsage:       true,
	PersistentPreRunE:  setupLogging,
	PersistentPostRunE: closeLogging,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", core.DefaultConfig().TickRate, "Tick rate in ticks per second (default: tick_rate from the config)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLevelsDir, "levels-dir", "", "Directory with level files (default: built-in levels)")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write gameplay events to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// setupLogging applies the global flags shared by every command.
func setupLogging(_ *cobra.Command, _ []string) error {
	dave.SetLevelsDir(flagLevelsDir)

	if flagLogPath == "" {
		return nil
	}

	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}
	f, err := os.OpenFile(flagLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}
	logFile = f

	dave.SetLogger(log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "dave",
		Level:           level,
	}))
	return nil
}

func closeLogging(_ *cobra.Command, _ []string) error {
	if logFile == nil {
		return nil
	}
	dave.SetLogger(nil)
	return logFile.Close()
}

// runtimeConfig sizes the game to the terminal.
func runtimeConfig(cmd *cobra.Command) core.RuntimeConfig {
	cfg := core.DefaultConfig()
	cfg.TickRate = tickRate(cmd)
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW, cfg.ScreenH = w, h
	}
	return cfg
}

// tickRate returns --fps when it was given on the command line and the
// configured tick_rate otherwise.
func tickRate(cmd *cobra.Command) int {
	if f := cmd.Flag("fps"); f != nil && f.Changed {
		return flagFPS
	}
	return configuredTickRate(flagConfig, flagFPS)
}

// configuredTickRate loads the config at path (or the search path when
// empty) and returns its tick_rate, or fallback when nothing loads.
func configuredTickRate(path string, fallback int) int {
	cfg, err := config.LoadDave(path)
	if err != nil || cfg.TickRate <= 0 {
		return fallback
	}
	return cfg.TickRate
}
