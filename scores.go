package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/milk9111/puzzlepath/profile"
)

var scoresCmd = &cobra.Command{
	Use:   "scores <level>",
	Short: "Show best runs for a level",
	Long: `Display the best stored progress and the top 10 runs for a level.

Examples:
  puzzlepath scores first_steps`,
	Args: cobra.ExactArgs(1),
	RunE: runScores,
}

func runScores(cmd *cobra.Command, args []string) error {
	level := args[0]

	store, err := profile.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	runs, err := store.TopRuns(level, 10)
	if err != nil {
		return err
	}

	fmt.Printf("Runs - %s\n\n", level)
	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		return nil
	}

	fmt.Printf("  %-4s  %-7s  %-8s  %-9s  %s\n", "Rank", "Score", "Time", "Completed", "Date")
	fmt.Printf("  %-4s  %-7s  %-8s  %-9s  %s\n", "----", "-----", "----", "---------", "----")
	for i, r := range runs {
		fmt.Printf("  %-4d  %-7d  %-8.2f  %-9v  %s\n", i+1, r.Score, r.TimeSpent, r.Completed, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	p, err := store.Progress(level)
	if err != nil {
		return err
	}
	if p != nil {
		fmt.Printf("\nBest: %d in %.2fs (%d runs)\n", p.BestScore, p.BestTime, p.Runs)
	}
	return nil
}
