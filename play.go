package main

import (
	"errors"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/milk9111/puzzlepath/common"
	"github.com/milk9111/puzzlepath/config"
	"github.com/milk9111/puzzlepath/levels"
	"github.com/milk9111/puzzlepath/profile"
)

var (
	flagWatch bool
	flagDebug bool
)

var playCmd = &cobra.Command{
	Use:   "play [level]",
	Short: "Play the game",
	Long: `Open the game window, starting at the first built-in level or at the
given level. Levels in ./levels override the built-in ones and are reloaded
when they change on disk.

Controls:
  Left/Right or A/D   aim
  Up/Down or W/S      launch power
  Space/Enter         launch, continue
  R                   restart the level
  Esc                 quit`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagWatch, "watch", true, "Reload levels from ./levels when they change")
	playCmd.Flags().BoolVar(&flagDebug, "debug", false, "Show physics debug information")
}

func runPlay(cmd *cobra.Command, args []string) error {
	logger, err := newLogger()
	if err != nil {
		return err
	}
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	playlist, err := levels.Names()
	if err != nil {
		return err
	}
	start := 0
	if len(args) == 1 {
		start = -1
		for i, name := range playlist {
			if name == args[0] {
				start = i
			}
		}
		if start < 0 {
			playlist = []string{args[0]}
			start = 0
		}
	}

	store, err := profile.Open(flagDBPath)
	if err != nil {
		logger.Warn("progress will not be saved", "error", err)
	}
	if store != nil {
		defer store.Close()
	}

	var watcher *levels.Watcher
	if flagWatch {
		if info, err := os.Stat(levels.Dir); err == nil && info.IsDir() {
			if watcher, err = levels.NewWatcher(levels.Dir); err != nil {
				logger.Warn("level hot reload disabled", "error", err)
			}
		}
	}
	if watcher != nil {
		defer watcher.Close()
	}

	game, err := NewGame(GameOptions{
		Config:     cfg,
		ConfigPath: configPath(),
		Logger:     logger,
		Store:      store,
		Watcher:    watcher,
		Playlist:   playlist,
		Start:      start,
		Debug:      flagDebug,
	})
	if err != nil {
		return err
	}
	defer game.Close()

	ebiten.SetWindowSize(common.BaseWidth, common.BaseHeight)
	ebiten.SetWindowTitle("puzzlepath")
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
