package main

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/puzzlepath/assets"
	"github.com/milk9111/puzzlepath/common"
	"github.com/milk9111/puzzlepath/config"
	"github.com/milk9111/puzzlepath/input"
	"github.com/milk9111/puzzlepath/levels"
	"github.com/milk9111/puzzlepath/obj"
	"github.com/milk9111/puzzlepath/profile"
	"github.com/milk9111/puzzlepath/system"
)

type GameOptions struct {
	Config     config.Config
	ConfigPath string
	Logger     *log.Logger
	Store      *profile.Store
	Watcher    *levels.Watcher
	Playlist   []string
	Start      int
	Debug      bool
}

// Game is the ebiten shell around a system.Simulation. It turns input into
// simulation calls, draws the entities and shows the result overlay.
type Game struct {
	cfg        config.Config
	configPath string
	logger     *log.Logger
	store      *profile.Store
	watcher    *levels.Watcher
	input      *input.Reader
	sounds     *assets.Sounds
	debug      bool

	playlist []string
	index    int
	sim      *system.Simulation

	// last seen simulation counters, used to pick sound cues
	counters counters

	overlay *ebitenui.UI
	result  system.Result
	newBest bool
	best    *profile.Progress
	quit    bool
}

func NewGame(opts GameOptions) (*Game, error) {
	if len(opts.Playlist) == 0 {
		return nil, errors.New("no levels to play")
	}
	g := &Game{
		cfg:        opts.Config,
		configPath: opts.ConfigPath,
		logger:     opts.Logger,
		store:      opts.Store,
		watcher:    opts.Watcher,
		input:      input.NewReader(opts.Config.Preferences.Controller),
		sounds:     assets.NewSounds(opts.Config.Preferences.PlaySounds),
		debug:      opts.Debug,
		playlist:   opts.Playlist,
		index:      opts.Start,
	}
	if err := g.loadLevel(g.index); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *Game) Close() {
	if g.sim != nil {
		g.sim.Destroy()
	}
}

func (g *Game) levelName() string {
	return g.playlist[g.index]
}

func (g *Game) loadLevel(index int) error {
	name := g.playlist[index]
	lvl, err := levels.Load(name)
	if err != nil {
		return err
	}
	sim, err := system.New(lvl, g.cfg, system.WithLogger(g.logger))
	if err != nil {
		return err
	}
	if g.sim != nil {
		g.sim.Destroy()
	}
	g.sim = sim
	g.index = index
	g.overlay = nil
	g.syncCounters()
	if g.store != nil {
		if g.best, err = g.store.Progress(lvl.Name); err != nil {
			g.logger.Warn("cannot read progress", "level", lvl.Name, "error", err)
		}
	}
	g.logger.Info("level loaded", "level", lvl.Name, "attempts", lvl.Attempts, "par", lvl.ParTime)
	return nil
}

type counters struct {
	state    system.State
	attempts int
	score    int
}

func (g *Game) syncCounters() {
	g.counters = counters{state: g.sim.State(), attempts: g.sim.Attempts(), score: g.sim.Score()}
}

// reloadChanged drains the level watcher. A change to the level being played
// restarts it from the new file; a broken file keeps the current level.
func (g *Game) reloadChanged() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			if name != g.levelName() {
				continue
			}
			if err := g.loadLevel(g.index); err != nil {
				g.logger.Error("level reload failed", "level", name, "error", err)
				continue
			}
			g.logger.Info("level reloaded", "level", name)
		case err, ok := <-g.watcher.Errors:
			if ok {
				g.logger.Warn("level watcher", "error", err)
			}
		default:
			return
		}
	}
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}
	g.reloadChanged()

	cmd := g.input.Read(g.cfg.Launcher)
	if cmd.Back {
		return ebiten.Termination
	}

	if g.overlay != nil {
		g.overlay.Update()
		if cmd.Confirm {
			g.advance()
		} else if cmd.Restart {
			g.retry()
		}
		return nil
	}

	if cmd.Restart {
		if err := g.sim.Restart(); err != nil {
			return fmt.Errorf("restart: %w", err)
		}
		g.syncCounters()
		return nil
	}

	g.sim.Aim(cmd.AngleDelta, cmd.MagnitudeDelta)
	if cmd.Confirm {
		if _, err := g.sim.HandleConfirm(); err != nil && !errors.Is(err, obj.ErrAlreadyLaunched) {
			return err
		}
	}

	if err := g.sim.Step(1 / float64(ebiten.TPS())); err != nil &&
		!errors.Is(err, system.ErrCompleted) && !errors.Is(err, system.ErrFailed) {
		return err
	}
	g.cue()

	if g.sim.State().Terminal() {
		g.finish()
	}
	return nil
}

// cue plays a sound for everything that changed during the last step.
func (g *Game) cue() {
	prev := g.counters
	g.syncCounters()
	for _, snd := range cues(prev, g.counters) {
		g.sounds.Play(snd)
	}
}

// cues lists the sound for each event between two counter snapshots. Several
// events in one frame each get their cue.
func cues(prev, cur counters) []assets.Sound {
	var out []assets.Sound
	if cur.state == system.StateLaunched && prev.state != system.StateLaunched {
		out = append(out, assets.SoundLaunch)
	}
	if cur.score > prev.score && cur.state != system.StateCompleted {
		out = append(out, assets.SoundTreasure)
	}
	if cur.attempts < prev.attempts && cur.state != system.StateFailed {
		out = append(out, assets.SoundTrap)
	}
	if cur.state != prev.state {
		switch cur.state {
		case system.StateCompleted:
			out = append(out, assets.SoundComplete)
		case system.StateFailed:
			out = append(out, assets.SoundFail)
		}
	}
	return out
}

func (g *Game) finish() {
	if g.overlay != nil {
		return
	}
	g.result = g.sim.Result()
	g.newBest = false
	if g.store != nil {
		id, newBest, err := g.store.SaveResult(g.result)
		if err != nil {
			g.logger.Error("cannot save result", "level", g.result.LevelName, "error", err)
		} else {
			g.newBest = newBest
			g.logger.Info("result saved", "id", id, "level", g.result.LevelName, "score", g.result.Score, "new_best", newBest)
		}
	}
	g.overlay = NewResultUI(g)
}

// advance moves to the next level after a completion, or retries after a
// failure. Completing the last level ends the game.
func (g *Game) advance() {
	if !g.result.Completed {
		g.retry()
		return
	}
	next := g.index + 1
	if next >= len(g.playlist) {
		g.quit = true
		return
	}
	if err := g.loadLevel(next); err != nil {
		g.logger.Error("cannot load next level", "level", g.playlist[next], "error", err)
		g.quit = true
	}
}

func (g *Game) retry() {
	if err := g.sim.Restart(); err != nil {
		g.logger.Error("restart failed", "error", err)
		g.quit = true
		return
	}
	g.overlay = nil
	g.syncCounters()
}

// toggleSounds flips the sound preference and persists it.
func (g *Game) toggleSounds() {
	g.cfg.Preferences.PlaySounds = !g.cfg.Preferences.PlaySounds
	g.sounds.SetEnabled(g.cfg.Preferences.PlaySounds)
	if err := config.Save(g.configPath, g.cfg); err != nil {
		g.logger.Warn("cannot save preferences", "error", err)
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.drawWorld(screen)
	if g.debug {
		drawPhysics(screen, g.sim.World())
	}
	g.drawHUD(screen)
	if g.overlay != nil {
		g.overlay.Draw(screen)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return common.BaseWidth, common.BaseHeight
}
