package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/paranoid/internal/game"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List the campaign levels",
	Long:  `List every campaign level with its brick and icon counts.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("Campaign levels:")
		fmt.Println()
		fmt.Printf("  %-7s %-8s %s\n", "LEVEL", "BRICKS", "ICONS")
		fmt.Printf("  %-7s %-8s %s\n", "-----", "------", "-----")

		for n := 1; n <= game.LevelCount(); n++ {
			def, ok := game.GetLevel(n)
			if !ok {
				continue
			}

			grid, err := game.ParseGrid(def.Grid)
			if err != nil {
				return fmt.Errorf("level %d: %w", n, err)
			}

			bricks := 0
			for _, row := range grid {
				for _, kind := range row {
					if kind != game.BrickNone {
						bricks++
					}
				}
			}

			fmt.Printf("  %-7d %-8d %d\n", n, bricks, len(def.Icons))
		}

		fmt.Println()
		fmt.Printf("Start at a specific level with: paranoid play --level <n>\n")
		return nil
	},
}
