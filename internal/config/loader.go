package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadDave loads the Dangerous Dave configuration.
// Search order: customPath -> ~/.arcade/configs/dave.yaml -> ./configs/dave.yaml -> embedded default.
// Fields missing from a file keep their default values.
func LoadDave(customPath string) (DaveConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DaveConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parseDave(data)
		if err != nil {
			return DaveConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	candidates := []string{userConfigPath("dave.yaml"), filepath.Join("configs", "dave.yaml")}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := parseDave(data); err == nil {
			return cfg, nil
		}
	}

	cfg, err := parseDave(defaultDaveYAML)
	if err != nil {
		return DefaultDaveConfig(), nil
	}
	return cfg, nil
}

func parseDave(data []byte) (DaveConfig, error) {
	cfg := DefaultDaveConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DaveConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return DaveConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}
