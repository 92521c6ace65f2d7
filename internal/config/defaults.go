package config

import (
	_ "embed"
)

//go:embed defaults/dave.yaml
var defaultDaveYAML []byte

// DefaultDaveConfig returns the built-in configuration. It matches
// defaults/dave.yaml and is used when that file cannot be parsed.
func DefaultDaveConfig() DaveConfig {
	return DaveConfig{
		Gameplay: DaveGameplay{
			Lives:      3,
			StartLevel: 1,
		},
		Jetpack: DaveJetpack{
			Fuel: 255,
		},
		Scoring: DaveScoring{
			LevelBonus:     2000,
			MonsterKill:    300,
			ExtraLifeEvery: 20000,
			MaxScore:       99999,
		},
		Input: DaveInput{
			HoldTicks: 4,
		},
		TickRate: 30,
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "dave", "dave_practice":
		return defaultDaveYAML
	default:
		return nil
	}
}
