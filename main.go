// puzzlepath is a physics puzzle game: aim the launcher, fire the ball, and
// bounce it past death traps into the goal.
//
// Usage:
//
//	puzzlepath play [level]      - Play from the first level, or from level
//	puzzlepath run <level>       - Simulate a launch headlessly and print the result
//	puzzlepath scores <level>    - Show best runs for a level
//	puzzlepath levels            - List the built-in levels
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/milk9111/puzzlepath/config"
	"github.com/milk9111/puzzlepath/profile"
)

var (
	flagConfig   string
	flagDBPath   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:          "puzzlepath",
	Short:        "A physics puzzle game",
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a config file (default: ./"+config.LocalPath+" or built-in)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", profile.DefaultPath, "Path to the profile database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(levelsCmd)
}

func newLogger() (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("log level %q: %w", flagLogLevel, err)
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "puzzlepath",
		Level:           level,
	})
	return logger, nil
}

// configPath is where preference changes are written back.
func configPath() string {
	if flagConfig != "" {
		return flagConfig
	}
	return config.LocalPath
}
