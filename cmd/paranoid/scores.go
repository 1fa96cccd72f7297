package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/paranoid/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "View the high-score table",
	Long:  `Print the top 10 high scores with names, levels, and dates.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		scores, err := storage.OpenHighScores(flagScoresPath)
		if err != nil {
			return fmt.Errorf("cannot open high-score table: %w", err)
		}

		entries := scores.Top()
		if len(entries) == 0 {
			fmt.Println("No high scores recorded yet. Play a game!")
			return nil
		}

		fmt.Println("High scores:")
		fmt.Println()
		fmt.Printf("  %-5s %-16s %-6s %-8s %s\n", "RANK", "NAME", "LEVEL", "SCORE", "DATE")
		fmt.Printf("  %-5s %-16s %-6s %-8s %s\n", "----", "----", "-----", "-----", "----")
		for i, e := range entries {
			fmt.Printf("  #%-4d %-16s %-6d %-8d %s\n",
				i+1, e.Name, e.Level, e.Score, e.When.Format("2006-01-02 15:04"))
		}

		// The named table is shared; the run history also knows this
		// machine's best, named or not.
		if store, err := storage.Open(flagDBPath); err == nil {
			if best, err := store.HighScore("paranoid"); err == nil && best > 0 {
				fmt.Println()
				fmt.Printf("Personal best on this machine: %d\n", best)
			}
			store.Close()
		}

		return nil
	},
}

var (
	historyClear bool
	historyBest  bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "View recent runs",
	Long: `Print the most recent campaign runs and aggregate statistics from
the run-history database.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := storage.Open(flagDBPath)
		if err != nil {
			return fmt.Errorf("cannot open history database: %w", err)
		}
		defer store.Close()

		if historyClear {
			if err := store.ClearRuns("paranoid"); err != nil {
				return fmt.Errorf("cannot clear run history: %w", err)
			}
			fmt.Println("Run history cleared.")
			return nil
		}

		var runs []storage.Run
		if historyBest {
			runs, err = store.TopRuns("paranoid", 10)
		} else {
			runs, err = store.RecentRuns("paranoid", 10)
		}
		if err != nil {
			return fmt.Errorf("cannot read run history: %w", err)
		}

		if len(runs) == 0 {
			fmt.Println("No runs recorded yet. Play a game!")
			return nil
		}

		if historyBest {
			fmt.Println("Best runs:")
		} else {
			fmt.Println("Recent runs:")
		}
		fmt.Println()
		fmt.Printf("  %-6s %-8s %-10s %s\n", "LEVEL", "SCORE", "DURATION", "DATE")
		fmt.Printf("  %-6s %-8s %-10s %s\n", "-----", "-----", "--------", "----")
		for _, r := range runs {
			fmt.Printf("  %-6d %-8d %-10s %s\n",
				r.LevelReached, r.Score,
				fmt.Sprintf("%dm%02ds", r.Duration/60, r.Duration%60),
				r.CreatedAt.Format("2006-01-02 15:04"))
		}

		stats, err := store.GetRunStats("paranoid")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: cannot read stats: %v\n", err)
			return nil
		}
		if stats.RunsCount > 0 {
			fmt.Println()
			fmt.Printf("Total runs: %d   Best score: %d   Average: %.0f   Deepest level: %d\n",
				stats.RunsCount, stats.HighScore, stats.AvgScore, stats.DeepestLevel)
		}

		return nil
	},
}

func init() {
	historyCmd.Flags().BoolVar(&historyClear, "clear", false, "Clear the run history")
	historyCmd.Flags().BoolVar(&historyBest, "best", false, "Show the best runs by score instead of the most recent")
}
