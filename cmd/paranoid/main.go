// paranoid is a terminal brick-breaker with 30 levels, falling power-up
// icons, and a persistent high-score table.
//
// Usage:
//
//	paranoid play            - Play the campaign
//	paranoid demo            - Watch the attract-mode demo
//	paranoid menu            - Interactive menu (play, demo, scores)
//	paranoid levels          - List the campaign levels
//	paranoid scores          - Show the high-score table
//	paranoid history         - Show recent runs
//	paranoid serve           - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>      - Set tick rate (default: 60)
//	--seed <value>    - Set RNG seed for reproducible gameplay
//	--db <path>       - Run-history database (default: ~/.paranoid/history.db)
//	--scores <path>   - High-score CSV file (default: ~/.paranoid/highscores.csv)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game to register it
	_ "github.com/vovakirdan/paranoid/internal/game"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagScoresPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "paranoid",
	Short: "Paranoid - a brick-breaker for your terminal",
	Long: `Paranoid is a terminal brick-breaker. Work through 30 levels of
bricks, catch falling icons for power-ups, collect the BONUS letters in
order, and fight for a place in the high-score table.

Available commands:
  play     - Play the campaign
  demo     - Watch the attract-mode demo
  menu     - Interactive menu
  levels   - List the campaign levels
  scores   - View the high-score table
  history  - View recent runs
  serve    - Start SSH server for remote play

Examples:
  paranoid play
  paranoid play --level 7 --difficulty hard
  paranoid menu
  paranoid serve --ssh :2222
  paranoid scores`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.paranoid/history.db", "Path to run-history database")
	rootCmd.PersistentFlags().StringVar(&flagScoresPath, "scores", "~/.paranoid/highscores.csv", "Path to high-score CSV file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(serveCmd)
}
