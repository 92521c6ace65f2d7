// Package config provides YAML-based configuration loading and difficulty
// presets for Dangerous Dave.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned when a loaded configuration is out of range.
var ErrInvalidConfig = errors.New("invalid config")

// DaveConfig contains all tunable settings for a run.
type DaveConfig struct {
	Gameplay DaveGameplay `yaml:"gameplay"`
	Jetpack  DaveJetpack  `yaml:"jetpack"`
	Scoring  DaveScoring  `yaml:"scoring"`
	Input    DaveInput    `yaml:"input"`
	TickRate int          `yaml:"tick_rate"` // Simulation ticks per second
}

// DaveGameplay defines run-level rules.
type DaveGameplay struct {
	Lives      int  `yaml:"lives"`       // Spare lives at the start of a run
	Immortal   bool `yaml:"immortal"`    // Deaths never consume lives
	StartLevel int  `yaml:"start_level"` // One-based level number
}

// DaveJetpack defines jetpack parameters.
type DaveJetpack struct {
	Fuel int `yaml:"fuel"` // Ticks of flight per pickup, at most 255
}

// DaveScoring defines point values and score limits.
type DaveScoring struct {
	LevelBonus     int `yaml:"level_bonus"`
	MonsterKill    int `yaml:"monster_kill"`
	ExtraLifeEvery int `yaml:"extra_life_every"`
	MaxScore       int `yaml:"max_score"`
}

// DaveInput defines how key presses become held input.
type DaveInput struct {
	// HoldTicks is how long a single key press keeps an action held.
	// Terminals report presses and auto-repeat but never releases.
	HoldTicks int `yaml:"hold_ticks"`
}

// Validate checks that every field is in a playable range.
func (c DaveConfig) Validate() error {
	checks := []struct {
		name     string
		val      int
		min, max int
	}{
		{"gameplay.lives", c.Gameplay.Lives, 0, 9},
		{"gameplay.start_level", c.Gameplay.StartLevel, 1, 10},
		{"jetpack.fuel", c.Jetpack.Fuel, 1, 255},
		{"scoring.level_bonus", c.Scoring.LevelBonus, 0, 99999},
		{"scoring.monster_kill", c.Scoring.MonsterKill, 0, 99999},
		{"scoring.extra_life_every", c.Scoring.ExtraLifeEvery, 1, 99999},
		{"scoring.max_score", c.Scoring.MaxScore, 1, 99999},
		{"input.hold_ticks", c.Input.HoldTicks, 1, 30},
		{"tick_rate", c.TickRate, 1, 120},
	}
	for _, ch := range checks {
		if ch.val < ch.min || ch.val > ch.max {
			return fmt.Errorf("%w: %s = %d, want %d..%d", ErrInvalidConfig, ch.name, ch.val, ch.min, ch.max)
		}
	}
	return nil
}
