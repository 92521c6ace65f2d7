package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path, body string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
}

// isolate points HOME and the working directory at empty temp dirs so the
// user and local search paths are controlled by the test.
func isolate(t *testing.T) (home, work string) {
	t.Helper()
	home, work = t.TempDir(), t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)
	return home, work
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := parseDave(defaultDaveYAML)
	if err != nil {
		t.Fatalf("embedded defaults do not parse: %v", err)
	}
	if cfg != DefaultDaveConfig() {
		t.Errorf("embedded defaults = %+v, hardcoded = %+v", cfg, DefaultDaveConfig())
	}
	if GetDefaultYAML("dave_practice") == nil || GetDefaultYAML("snake") != nil {
		t.Error("GetDefaultYAML should only know Dave ids")
	}
}

func TestLoadDaveFallsBackToEmbedded(t *testing.T) {
	isolate(t)

	cfg, err := LoadDave("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg != DefaultDaveConfig() {
		t.Errorf("LoadDave() = %+v, expected defaults", cfg)
	}
}

func TestLoadDaveSearchOrder(t *testing.T) {
	home, work := isolate(t)

	writeFile(t, filepath.Join(work, "configs", "dave.yaml"), "gameplay:\n  lives: 7\n")
	cfg, err := LoadDave("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Gameplay.Lives != 7 {
		t.Errorf("local config ignored: lives = %d", cfg.Gameplay.Lives)
	}

	writeFile(t, filepath.Join(home, ".arcade", "configs", "dave.yaml"), "gameplay:\n  lives: 2\n")
	cfg, err = LoadDave("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Gameplay.Lives != 2 {
		t.Errorf("user config should win over local: lives = %d", cfg.Gameplay.Lives)
	}
}

func TestLoadDaveSkipsBrokenSearchFiles(t *testing.T) {
	home, _ := isolate(t)
	writeFile(t, filepath.Join(home, ".arcade", "configs", "dave.yaml"), "jetpack:\n  fuel: 9000\n")

	cfg, err := LoadDave("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Jetpack.Fuel != 255 {
		t.Errorf("out-of-range user config should be skipped, fuel = %d", cfg.Jetpack.Fuel)
	}
}

func TestLoadDaveCustomPath(t *testing.T) {
	isolate(t)
	dir := t.TempDir()

	tests := []struct {
		name    string
		body    string
		check   func(DaveConfig) bool
		wantErr error
	}{
		{
			name:  "partial file keeps defaults",
			body:  "input:\n  hold_ticks: 2\n",
			check: func(c DaveConfig) bool { return c.Input.HoldTicks == 2 && c.Gameplay.Lives == 3 },
		},
		{
			name:  "immortal",
			body:  "gameplay:\n  immortal: true\n  start_level: 4\n",
			check: func(c DaveConfig) bool { return c.Gameplay.Immortal && c.Gameplay.StartLevel == 4 },
		},
		{
			name:    "start level out of range",
			body:    "gameplay:\n  start_level: 11\n",
			wantErr: ErrInvalidConfig,
		},
		{
			name:    "zero tick rate",
			body:    "tick_rate: 0\n",
			wantErr: ErrInvalidConfig,
		},
		{
			name: "malformed yaml",
			body: "gameplay: [\n",
		},
	}

	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, "cfg"+string(rune('a'+i))+".yaml")
			writeFile(t, path, tt.body)

			cfg, err := LoadDave(path)
			if tt.check == nil {
				if err == nil {
					t.Fatal("expected an error")
				}
				if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
					t.Errorf("error = %v, expected %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if !tt.check(cfg) {
				t.Errorf("unexpected config %+v", cfg)
			}
		})
	}
}

func TestLoadDaveMissingCustomPath(t *testing.T) {
	if _, err := LoadDave(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected an error for a missing custom config")
	}
}

func TestPresets(t *testing.T) {
	tests := []struct {
		preset    DifficultyPreset
		lives     int
		fuel      int
		holdTicks int
	}{
		{DifficultyEasy, 5, 255, 6},
		{DifficultyNormal, 3, 255, 4},
		{DifficultyHard, 1, 160, 4},
	}

	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			cfg := DefaultDaveConfig()
			ApplyDavePreset(&cfg, tt.preset)
			if cfg.Gameplay.Lives != tt.lives || cfg.Jetpack.Fuel != tt.fuel || cfg.Input.HoldTicks != tt.holdTicks {
				t.Errorf("%s: lives=%d fuel=%d hold=%d", tt.preset, cfg.Gameplay.Lives, cfg.Jetpack.Fuel, cfg.Input.HoldTicks)
			}
			if err := cfg.Validate(); err != nil {
				t.Errorf("preset produced an invalid config: %v", err)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	for in, want := range map[string]DifficultyPreset{
		"":       DifficultyNormal,
		"easy":   DifficultyEasy,
		" HARD ": DifficultyHard,
	} {
		got, err := ParsePreset(in)
		if err != nil || got != want {
			t.Errorf("ParsePreset(%q) = %q, %v", in, got, err)
		}
	}
	if _, err := ParsePreset("nightmare"); err == nil {
		t.Error("expected an error for an unknown preset")
	}
}
