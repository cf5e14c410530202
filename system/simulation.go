package system

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/milk9111/puzzlepath/common"
	"github.com/milk9111/puzzlepath/config"
	"github.com/milk9111/puzzlepath/levels"
	"github.com/milk9111/puzzlepath/obj"
	"github.com/milk9111/puzzlepath/physics"
)

// tickEpsilon absorbs rounding when the accumulator holds a whole number of
// fixed steps.
const tickEpsilon = 1e-9

type Option func(*Simulation)

// WithLogger sets the logger for gameplay events. The default discards.
func WithLogger(l *log.Logger) Option {
	return func(s *Simulation) {
		if l != nil {
			s.logger = l
		}
	}
}

// Simulation is one attempt at a level. It owns the physics world and every
// entity in it, advances the world in fixed ticks and turns sensor latches
// into gameplay state. It is not safe for concurrent use.
type Simulation struct {
	level  *levels.Level
	cfg    config.Config
	logger *log.Logger

	world     *physics.World
	ball      *obj.Ball
	launcher  *obj.Launcher
	platforms []*obj.Platform
	traps     []*obj.DeathTrap
	treasures []*obj.Treasure
	goal      *obj.Goal
	script    *platformScript

	state       State
	attempts    int
	score       int
	collected   int
	completed   bool
	elapsed     float64
	accumulator float64
}

// New builds the world and entities for level. The level is retained so
// Restart can rebuild from it.
func New(level *levels.Level, cfg config.Config, opts ...Option) (*Simulation, error) {
	if level == nil {
		return nil, errors.New("system: nil level")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := level.Validate(); err != nil {
		return nil, err
	}
	s := &Simulation{
		level:  level,
		cfg:    cfg,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}
	if err := s.build(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Simulation) build() (err error) {
	pc := s.cfg.Physics
	world := physics.NewWorld(physics.Options{
		Gravity:        pc.Gravity,
		Iterations:     pc.Iterations,
		WallElasticity: pc.WallElasticity,
	})
	defer func() {
		if err != nil {
			world.Destroy()
			err = fmt.Errorf("system: build %s: %w", s.level.Name, err)
		}
	}()

	launcher, err := s.spawnLauncher(s.level.Launcher())
	if err != nil {
		return err
	}
	ball, err := s.spawnBall(world, launcher)
	if err != nil {
		return err
	}
	platforms, err := spawnPlatforms(world, s.level.Of(levels.EntityPlatform))
	if err != nil {
		return err
	}
	traps, err := spawnDeathTraps(world, s.level.Of(levels.EntityDeathTrap))
	if err != nil {
		return err
	}
	treasures, err := spawnTreasures(world, s.level.Of(levels.EntityTreasure))
	if err != nil {
		return err
	}
	goal, err := spawnGoal(world, s.level.Goal())
	if err != nil {
		return err
	}
	var script *platformScript
	if s.level.Script != "" {
		if script, err = newPlatformScript(s.level.Script, platforms); err != nil {
			return err
		}
	}

	s.world = world
	s.launcher = launcher
	s.ball = ball
	s.platforms = platforms
	s.traps = traps
	s.treasures = treasures
	s.goal = goal
	s.script = script

	s.state = StateIdle
	s.attempts = s.level.Attempts
	s.score = 0
	s.collected = 0
	s.completed = false
	s.elapsed = 0
	s.accumulator = 0
	return nil
}

// Restart tears the world down and rebuilds every entity from the retained
// level. Restarting twice in a row is the same as restarting once.
func (s *Simulation) Restart() error {
	if s.world != nil {
		s.world.Destroy()
		s.world = nil
	}
	if err := s.build(); err != nil {
		return err
	}
	s.logger.Info("level restarted", "level", s.level.Name)
	return nil
}

// Destroy releases the physics world. The simulation is unusable afterwards.
func (s *Simulation) Destroy() {
	if s.world != nil {
		s.world.Destroy()
		s.world = nil
	}
}

// Step advances the simulation by dt seconds. dt is clamped to the configured
// maximum frame delta (NaN and infinities count as zero) and consumed in whole fixed ticks; the remainder carries
// over to the next call. Once the level is over Step changes nothing and
// reports why.
func (s *Simulation) Step(dt float64) error {
	switch s.state {
	case StateCompleted:
		return ErrCompleted
	case StateFailed:
		return ErrFailed
	}

	pc := s.cfg.Physics
	s.accumulator += common.Clamp(common.Finite(dt), 0, pc.MaxFrameDelta)
	ticks := int((s.accumulator + tickEpsilon) / pc.FixedStep)
	s.accumulator = max(s.accumulator-float64(ticks)*pc.FixedStep, 0)

	for i := 0; i < ticks; i++ {
		if err := s.tick(pc.FixedStep); err != nil {
			return err
		}
		if s.state.Terminal() {
			s.accumulator = 0
			break
		}
	}
	return nil
}

func (s *Simulation) tick(step float64) error {
	s.runScript()
	s.world.Step(step)
	s.elapsed += step
	return s.resolve()
}

func (s *Simulation) runScript() {
	if s.script == nil {
		return
	}
	if err := s.script.run(s.elapsed); err != nil {
		s.logger.Warn("platform script disabled", "level", s.level.Name, "error", err)
		s.script = nil
	}
}

// resolve turns the latches set during the last physics step into gameplay
// changes: traps first, then treasures, then the goal.
func (s *Simulation) resolve() error {
	lost, err := s.resolveTraps()
	if err != nil {
		return err
	}
	if s.state == StateFailed {
		return nil
	}
	s.resolveTreasures()
	if lost {
		// the ball is already back on the launcher
		s.goal.Reset()
		return nil
	}
	return s.resolveGoal()
}

// resolveTraps charges one attempt for every trap touched during the tick,
// then puts the ball back on the launcher once.
func (s *Simulation) resolveTraps() (bool, error) {
	hit := 0
	for _, trap := range s.traps {
		if !trap.Touched() {
			continue
		}
		trap.Reset()
		hit++
		if s.attempts > 0 {
			s.attempts--
		}
	}
	if hit == 0 {
		return false, nil
	}

	if err := s.reloadBall(); err != nil {
		return false, err
	}
	if s.attempts == 0 {
		s.state = StateFailed
		s.logger.Info("level failed", "level", s.level.Name, "elapsed", s.elapsed, "score", s.score)
		return true, nil
	}
	s.state = StateIdle
	s.logger.Info("ball lost", "level", s.level.Name, "traps", hit, "attempts", s.attempts)
	return true, nil
}

func (s *Simulation) resolveTreasures() {
	for i, t := range s.treasures {
		if !t.Account() {
			continue
		}
		s.score += s.cfg.Scoring.TreasureBonus
		s.collected++
		s.logger.Info("treasure collected", "level", s.level.Name, "treasure", i, "score", s.score)
	}
}

func (s *Simulation) resolveGoal() error {
	if s.completed || !s.goal.Reached() {
		return nil
	}
	if err := s.ball.Stop(); err != nil {
		return fmt.Errorf("system: stop ball at goal: %w", err)
	}
	s.completed = true
	s.state = StateCompleted
	s.score += completionBonus(s.cfg.Scoring, s.attempts, s.elapsed, s.level.ParTime)
	s.logger.Info("level completed", "level", s.level.Name, "elapsed", s.elapsed, "score", s.score)
	return nil
}

func (s *Simulation) reloadBall() error {
	if err := s.ball.Stop(); err != nil {
		return fmt.Errorf("system: stop ball: %w", err)
	}
	if err := s.launcher.LoadBall(s.ball); err != nil {
		return fmt.Errorf("system: reload ball: %w", err)
	}
	return nil
}

// Launch fires the loaded ball.
func (s *Simulation) Launch() error {
	switch s.state {
	case StateCompleted:
		return ErrCompleted
	case StateFailed:
		return ErrFailed
	case StateLaunched:
		return fmt.Errorf("system: launch: %w", obj.ErrAlreadyLaunched)
	}
	if err := s.launcher.Launch(); err != nil {
		return fmt.Errorf("system: launch: %w", err)
	}
	s.state = StateLaunched
	s.logger.Debug("ball launched", "level", s.level.Name,
		"angle", s.launcher.Angle(), "magnitude", s.launcher.Magnitude())
	return nil
}

// HandleConfirm maps the player's confirm input onto the current state.
func (s *Simulation) HandleConfirm() (Action, error) {
	switch s.state {
	case StateIdle:
		if err := s.Launch(); err != nil {
			return ActionNone, err
		}
		return ActionLaunched, nil
	case StateLaunched:
		return ActionNone, fmt.Errorf("system: confirm: %w", obj.ErrAlreadyLaunched)
	default:
		return ActionAcknowledged, nil
	}
}

// Aim adjusts the launcher while the ball waits on it. It does nothing once
// the ball is in flight or the level is over.
func (s *Simulation) Aim(angleDelta, magnitudeDelta float64) {
	if s.state != StateIdle {
		return
	}
	if angleDelta != 0 {
		s.launcher.AdjustAngle(angleDelta)
	}
	if magnitudeDelta != 0 {
		s.launcher.AdjustMagnitude(magnitudeDelta)
	}
}

func (s *Simulation) State() State { return s.state }

func (s *Simulation) Attempts() int { return s.attempts }

func (s *Simulation) Score() int { return s.score }

func (s *Simulation) Completed() bool { return s.completed }

// Elapsed is simulated time in seconds since the level was built.
func (s *Simulation) Elapsed() float64 { return s.elapsed }

func (s *Simulation) Level() *levels.Level { return s.level }

func (s *Simulation) Config() config.Config { return s.cfg }

func (s *Simulation) World() *physics.World { return s.world }

func (s *Simulation) Ball() *obj.Ball { return s.ball }

func (s *Simulation) Launcher() *obj.Launcher { return s.launcher }

func (s *Simulation) Platforms() []*obj.Platform { return s.platforms }

func (s *Simulation) DeathTraps() []*obj.DeathTrap { return s.traps }

func (s *Simulation) Treasures() []*obj.Treasure { return s.treasures }

func (s *Simulation) Goal() *obj.Goal { return s.goal }

// Entities lists everything the renderer should draw this frame, back to
// front. Inactive platforms and accounted treasures are left out.
func (s *Simulation) Entities() []obj.Entity {
	out := make([]obj.Entity, 0, len(s.platforms)+len(s.traps)+len(s.treasures)+3)
	for _, p := range s.platforms {
		if p.Active() {
			out = append(out, p)
		}
	}
	for _, d := range s.traps {
		out = append(out, d)
	}
	for _, t := range s.treasures {
		if t.Active() {
			out = append(out, t)
		}
	}
	out = append(out, s.goal, s.launcher, s.ball)
	return out
}
