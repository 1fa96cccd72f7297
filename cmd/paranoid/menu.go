package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/paranoid/internal/core"
	"github.com/vovakirdan/paranoid/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Interactive menu",
	Long: `Open the interactive menu with a bouncing-ball screensaver behind
it. Play, watch the demo, or browse the high-score table without
leaving the program.`,
	RunE: func(cmd *cobra.Command, args []string) error {
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

		store, scores := openStorage()
		if store != nil {
			defer store.Close()
		}

		return tui.RunSession(store, scores, cfg)
	},
}
