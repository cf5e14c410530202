package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/milk9111/puzzlepath/levels"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List the built-in levels",
	RunE:  runLevels,
}

func runLevels(cmd *cobra.Command, args []string) error {
	names, err := levels.Names()
	if err != nil {
		return err
	}
	if len(names) == 0 {
		fmt.Println("No levels available.")
		return nil
	}

	fmt.Printf("  %-24s  %-6s  %-8s  %s\n", "Level", "Par", "Attempts", "Treasures")
	fmt.Printf("  %-24s  %-6s  %-8s  %s\n", "-----", "---", "--------", "---------")
	for _, name := range names {
		lvl, err := levels.Load(name)
		if err != nil {
			fmt.Printf("  %-24s  invalid: %v\n", name, err)
			continue
		}
		fmt.Printf("  %-24s  %-6.1f  %-8d  %d\n", name, lvl.ParTime, lvl.Attempts, lvl.TreasureCount())
	}
	fmt.Println()
	fmt.Println("Run 'puzzlepath play <level>' to play a level.")
	return nil
}
