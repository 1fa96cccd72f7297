package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/paranoid/internal/config"
	"github.com/vovakirdan/paranoid/internal/core"
	"github.com/vovakirdan/paranoid/internal/game"
	"github.com/vovakirdan/paranoid/internal/platform/tui"
	"github.com/vovakirdan/paranoid/internal/registry"
	"github.com/vovakirdan/paranoid/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagLevel      int
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the campaign",
	Long: `Start a campaign run. Move the paddle with a/d or the arrow keys,
fire with space, pause with p, restart with r.

Examples:
  paranoid play
  paranoid play --level 12
  paranoid play --difficulty hard --seed 42
  paranoid play --config ./my-config.yaml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGame("paranoid")
	},
}

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Watch the attract-mode demo",
	Long: `Watch the game play itself on a dedicated demo level. The demo
ends on its own after a short while; any key returns to the terminal.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGame("paranoid_demo")
	},
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config file")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	playCmd.Flags().IntVar(&flagLevel, "level", 1, "Level to start from (1-30)")
}

// runGame starts a single game by registry ID, standalone (no menu).
func runGame(id string) error {
	if !registry.Exists(id) {
		fmt.Fprintf(os.Stderr, "Unknown game: %s\n", id)
		os.Exit(1)
	}

	if id == "paranoid" {
		applyPlayFlags()
	}

	// Get terminal size
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		width, height = 80, 24
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	g, err := registry.Create(id)
	if err != nil {
		return err
	}

	store, scores := openStorage()
	if store != nil {
		defer store.Close()
	}

	return tui.Run(g, store, scores, cfg)
}

// applyPlayFlags pushes the play-only flags into the game package.
// A broken custom config is reported here; the game falls back to
// defaults on its own.
func applyPlayFlags() {
	if flagConfig != "" {
		if _, err := config.LoadParanoid(flagConfig); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: cannot load config %s (%v), using defaults\n", flagConfig, err)
		}
		game.SetConfigPath(flagConfig)
	}

	if flagDifficulty != "" {
		switch flagDifficulty {
		case string(config.DifficultyEasy), string(config.DifficultyNormal), string(config.DifficultyHard):
			game.SetDifficultyPreset(flagDifficulty)
		default:
			fmt.Fprintf(os.Stderr, "Warning: unknown difficulty %q, using normal\n", flagDifficulty)
		}
	}

	if flagLevel < 1 || flagLevel > game.LevelCount() {
		fmt.Fprintf(os.Stderr, "Warning: level %d out of range (1-%d), starting at 1\n", flagLevel, game.LevelCount())
		flagLevel = 1
	}
	game.SetStartLevel(flagLevel)
}

// openStorage opens both persistence backends. Play continues without
// either one; a missing database only disables run history, a missing
// score file only disables the high-score table.
func openStorage() (*storage.Store, *storage.HighScoreTable) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: run history disabled (%v)\n", err)
		store = nil
	}

	scores, err := storage.OpenHighScores(flagScoresPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: high scores disabled (%v)\n", err)
		scores = nil
	}

	return store, scores
}
