package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-dave/internal/config"
	"github.com/vovakirdan/tui-dave/internal/games/dave"
)

var flagConfigDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the game configuration",
	Long: `Print the configuration a run would use, after the config search path
and the difficulty preset are applied. With --defaults, print the built-in
defaults with comments, ready to copy to ~/.arcade/configs/dave.yaml.

Examples:
  dave config
  dave config --difficulty hard
  dave config --config ./my-dave.yaml
  dave config --defaults > ~/.arcade/configs/dave.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	configCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	configCmd.Flags().BoolVar(&flagConfigDefaults, "defaults", false, "Print the built-in defaults")
}

func runConfig(cmd *cobra.Command, _ []string) {
	if err := writeConfig(cmd.OutOrStdout()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func writeConfig(w io.Writer) error {
	if flagConfigDefaults {
		_, err := w.Write(config.GetDefaultYAML(dave.GameID))
		return err
	}

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return err
	}
	cfg, err := config.LoadDave(flagConfig)
	if err != nil {
		return err
	}
	config.ApplyDavePreset(&cfg, preset)

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	return enc.Close()
}
