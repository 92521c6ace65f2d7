package config

import (
	"fmt"
	"strings"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// Presets lists the presets in menu order.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard}
}

// ParsePreset parses a preset name. The empty string means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(strings.ToLower(strings.TrimSpace(s))); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// ApplyDavePreset adjusts lives and jetpack fuel for a preset. Normal
// leaves the loaded configuration untouched.
func ApplyDavePreset(cfg *DaveConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = max(cfg.Gameplay.Lives, 5)
		cfg.Jetpack.Fuel = 255
		cfg.Input.HoldTicks = max(cfg.Input.HoldTicks, 6)
	case DifficultyHard:
		cfg.Gameplay.Lives = min(cfg.Gameplay.Lives, 1)
		cfg.Jetpack.Fuel = min(cfg.Jetpack.Fuel, 160)
		cfg.Gameplay.Immortal = false
	}
}
