package config

import (
	"errors"
	"fmt"
	"math"
)

var ErrInvalid = errors.New("config: invalid value")

// Config is every tunable the simulation and the game shell read. It is
// passed explicitly into the simulation when a level attempt is created.
type Config struct {
	Physics     Physics     `yaml:"physics"`
	Launcher    Launcher    `yaml:"launcher"`
	Scoring     Scoring     `yaml:"scoring"`
	Preferences Preferences `yaml:"preferences"`
}

type Physics struct {
	Gravity    float64 `yaml:"gravity"`
	Iterations int     `yaml:"iterations"`
	// FixedStep is the duration of one physics tick, in seconds.
	FixedStep float64 `yaml:"fixed_step"`
	// MaxFrameDelta caps the time a single Step call may simulate so a
	// stalled frame cannot destabilize the world.
	MaxFrameDelta  float64 `yaml:"max_frame_delta"`
	WallElasticity float64 `yaml:"wall_elasticity"`
}

type Launcher struct {
	MinAngle       float64 `yaml:"min_angle"`
	MaxAngle       float64 `yaml:"max_angle"`
	MinMagnitude   float64 `yaml:"min_magnitude"`
	MaxMagnitude   float64 `yaml:"max_magnitude"`
	StartAngle     float64 `yaml:"start_angle"`
	StartMagnitude float64 `yaml:"start_magnitude"`
	AngleStep      float64 `yaml:"angle_step"`
	MagnitudeStep  float64 `yaml:"magnitude_step"`
	BarrelLength   float64 `yaml:"barrel_length"`
}

type Scoring struct {
	TreasureBonus int `yaml:"treasure_bonus"`
	AttemptBonus  int `yaml:"attempt_bonus"`
	ParBonus      int `yaml:"par_bonus"`
}

type Controller string

const (
	ControllerKeyboard Controller = "keyboard"
	ControllerGamepad  Controller = "gamepad"
)

type Preferences struct {
	PlaySounds bool       `yaml:"play_sounds"`
	Controller Controller `yaml:"controller"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Physics: Physics{
			Gravity:        9.8,
			Iterations:     20,
			FixedStep:      1.0 / 60.0,
			MaxFrameDelta:  3.0 / 60.0,
			WallElasticity: 1.0,
		},
		Launcher: Launcher{
			MinAngle:       0,
			MaxAngle:       math.Pi,
			MinMagnitude:   1,
			MaxMagnitude:   12,
			StartAngle:     math.Pi / 4,
			StartMagnitude: 5,
			AngleStep:      math.Pi / 64,
			MagnitudeStep:  0.25,
			BarrelLength:   30,
		},
		Scoring: Scoring{
			TreasureBonus: 500,
			AttemptBonus:  150,
			ParBonus:      100,
		},
		Preferences: Preferences{
			PlaySounds: true,
			Controller: ControllerKeyboard,
		},
	}
}

// Validate rejects settings that would make the simulation misbehave.
func (c Config) Validate() error {
	p := c.Physics
	if p.FixedStep <= 0 {
		return fmt.Errorf("physics.fixed_step %v: %w", p.FixedStep, ErrInvalid)
	}
	if p.MaxFrameDelta < p.FixedStep {
		return fmt.Errorf("physics.max_frame_delta %v below fixed_step %v: %w", p.MaxFrameDelta, p.FixedStep, ErrInvalid)
	}
	if p.Iterations <= 0 {
		return fmt.Errorf("physics.iterations %d: %w", p.Iterations, ErrInvalid)
	}

	l := c.Launcher
	if l.MinAngle > l.MaxAngle {
		return fmt.Errorf("launcher angle range [%v, %v]: %w", l.MinAngle, l.MaxAngle, ErrInvalid)
	}
	if l.MinMagnitude <= 0 || l.MinMagnitude > l.MaxMagnitude {
		return fmt.Errorf("launcher magnitude range [%v, %v]: %w", l.MinMagnitude, l.MaxMagnitude, ErrInvalid)
	}
	if l.AngleStep <= 0 || l.MagnitudeStep <= 0 {
		return fmt.Errorf("launcher steps must be positive: %w", ErrInvalid)
	}

	switch c.Preferences.Controller {
	case ControllerKeyboard, ControllerGamepad:
	default:
		return fmt.Errorf("preferences.controller %q: %w", c.Preferences.Controller, ErrInvalid)
	}
	return nil
}
