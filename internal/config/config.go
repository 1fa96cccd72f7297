// Package config provides YAML-based game configuration loading and
// difficulty presets.
package config

// ParanoidConfig contains the tunable gameplay configuration. The physics
// constants are not configurable: the levels were designed against them
// and changing them breaks the campaign balance.
type ParanoidConfig struct {
	Gameplay ParanoidGameplay `yaml:"gameplay"`
}

// ParanoidGameplay defines the campaign parameters.
type ParanoidGameplay struct {
	Lives      int `yaml:"lives"`
	StartLevel int `yaml:"start_level"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)
