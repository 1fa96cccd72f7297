package config

import (
	_ "embed"
)

//go:embed defaults/paranoid.yaml
var defaultParanoidYAML []byte

// DefaultParanoidConfig returns the default configuration.
func DefaultParanoidConfig() *ParanoidConfig {
	return &ParanoidConfig{
		Gameplay: ParanoidGameplay{
			Lives:      3,
			StartLevel: 1,
		},
	}
}
