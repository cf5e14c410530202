package main

import (
	"context"
	"fmt"
	"math"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/milk9111/puzzlepath/config"
	"github.com/milk9111/puzzlepath/levels"
	"github.com/milk9111/puzzlepath/profile"
	"github.com/milk9111/puzzlepath/system"
)

var (
	flagAngle     float64
	flagMagnitude float64
	flagMaxTime   float64
	flagSave      bool
)

var runCmd = &cobra.Command{
	Use:   "run <level>",
	Short: "Simulate a launch headlessly and print the result",
	Long: `Fire the ball with a fixed aim, relaunching after every lost ball, and
report how the level ended. Useful while authoring levels.

Examples:
  puzzlepath run 01_first_steps --angle 45 --magnitude 6
  puzzlepath run levels/draft.yaml --angle 30 --save`,
	Args: cobra.ExactArgs(1),
	RunE: runAutoplay,
}

func init() {
	runCmd.Flags().Float64Var(&flagAngle, "angle", 45, "Launch angle in degrees, counter-clockwise from the right")
	runCmd.Flags().Float64Var(&flagMagnitude, "magnitude", 6, "Launch speed in m/s")
	runCmd.Flags().Float64Var(&flagMaxTime, "max-time", 30, "Simulated seconds before giving up")
	runCmd.Flags().BoolVar(&flagSave, "save", false, "Store the result in the profile database")
}

func runAutoplay(cmd *cobra.Command, args []string) error {
	logger, err := newLogger()
	if err != nil {
		return err
	}
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	lvl, err := levels.Load(args[0])
	if err != nil {
		return err
	}

	sim, err := system.New(lvl, cfg, system.WithLogger(logger))
	if err != nil {
		return err
	}
	defer sim.Destroy()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	res, err := system.Autoplay(ctx, sim, system.AutoplayOptions{
		Angle:     flagAngle * math.Pi / 180,
		Magnitude: flagMagnitude,
		MaxTime:   flagMaxTime,
	})
	if err != nil {
		return err
	}

	outcome := "abandoned"
	switch {
	case res.Completed:
		outcome = "completed"
	case res.AttemptsLeft == 0:
		outcome = "failed"
	}
	fmt.Printf("Level:     %s\n", res.LevelName)
	fmt.Printf("Outcome:   %s\n", outcome)
	fmt.Printf("Score:     %d\n", res.Score)
	fmt.Printf("Time:      %.2fs (par %.2fs, met: %v)\n", res.TimeSpent, res.ParTime, res.ParMet)
	fmt.Printf("Treasures: %d/%d\n", res.TreasuresCollected, res.TreasuresInLevel)
	fmt.Printf("Attempts:  %d left\n", res.AttemptsLeft)

	if !flagSave {
		return nil
	}
	store, err := profile.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()
	id, newBest, err := store.SaveResult(res)
	if err != nil {
		return err
	}
	logger.Info("run saved", "id", id, "new_best", newBest)
	return nil
}
