package system

import (
	"context"
	"errors"
)

// AutoplayOptions describe a headless run used while authoring levels.
type AutoplayOptions struct {
	Angle     float64
	Magnitude float64
	// MaxTime bounds the simulated seconds before the run is abandoned.
	MaxTime float64
}

// Autoplay fires the ball with a fixed aim, relaunching after every lost
// ball, until the level is over, MaxTime elapses or ctx is cancelled. The
// returned Result reflects wherever the run stopped.
func Autoplay(ctx context.Context, s *Simulation, opts AutoplayOptions) (Result, error) {
	s.launcher.AdjustAngle(opts.Angle - s.launcher.Angle())
	s.launcher.AdjustMagnitude(opts.Magnitude - s.launcher.Magnitude())

	step := s.cfg.Physics.FixedStep
	for s.elapsed < opts.MaxTime {
		if err := ctx.Err(); err != nil {
			return s.Result(), err
		}
		if s.state == StateIdle {
			if _, err := s.HandleConfirm(); err != nil {
				return s.Result(), err
			}
		}
		if err := s.Step(step); err != nil {
			if errors.Is(err, ErrCompleted) || errors.Is(err, ErrFailed) {
				break
			}
			return s.Result(), err
		}
		if s.state.Terminal() {
			break
		}
	}
	return s.Result(), nil
}
