package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultParanoidConfig()

	if cfg.Gameplay.Lives != 3 {
		t.Errorf("Lives = %d, want 3", cfg.Gameplay.Lives)
	}
	if cfg.Gameplay.StartLevel != 1 {
		t.Errorf("StartLevel = %d, want 1", cfg.Gameplay.StartLevel)
	}
}

func TestLoadCustomConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "gameplay:\n  lives: 7\n  start_level: 4\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadParanoid(path)
	if err != nil {
		t.Fatalf("LoadParanoid() failed: %v", err)
	}

	if cfg.Gameplay.Lives != 7 {
		t.Errorf("Lives = %d, want 7", cfg.Gameplay.Lives)
	}
	if cfg.Gameplay.StartLevel != 4 {
		t.Errorf("StartLevel = %d, want 4", cfg.Gameplay.StartLevel)
	}
}

func TestLoadMissingCustomConfigErrors(t *testing.T) {
	cfg, err := LoadParanoid(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Error("Missing explicit config should report an error")
	}
	// The defaults still come back so play can continue
	if cfg == nil || cfg.Gameplay.Lives != 3 {
		t.Error("Error path should still return usable defaults")
	}
}

func TestLoadMalformedCustomConfigErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("gameplay: ["), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadParanoid(path); err == nil {
		t.Error("Malformed config should report an error")
	}
}

func TestApplyPreset(t *testing.T) {
	cases := []struct {
		preset string
		lives  int
	}{
		{"easy", 5},
		{"normal", 3},
		{"hard", 2},
		{"", 3},
		{"nightmare", 3}, // Unknown presets leave the config alone
	}

	for _, c := range cases {
		cfg := DefaultParanoidConfig()
		ApplyParanoidPreset(cfg, c.preset)
		if cfg.Gameplay.Lives != c.lives {
			t.Errorf("Preset %q: Lives = %d, want %d", c.preset, cfg.Gameplay.Lives, c.lives)
		}
	}
}
