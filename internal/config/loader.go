package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadParanoid loads the game configuration.
// Search order: customPath -> ~/.paranoid/config.yaml -> ./configs/paranoid.yaml -> embedded default
func LoadParanoid(customPath string) (*ParanoidConfig, error) {
	cfg := DefaultParanoidConfig()

	// A custom path is explicit, so its errors are reported
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, cfg); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/paranoid.yaml"); err == nil {
		if err := yaml.Unmarshal(data, cfg); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultParanoidYAML, cfg); err != nil {
		return DefaultParanoidConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home
// is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".paranoid", filename)
}

// ApplyParanoidPreset modifies the config based on a difficulty preset.
// Unknown presets leave the config untouched.
func ApplyParanoidPreset(cfg *ParanoidConfig, preset string) {
	switch DifficultyPreset(preset) {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
	}
}
