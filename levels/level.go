package levels

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

var (
	ErrUnknownEntity   = errors.New("levels: unknown entity type")
	ErrMissingLauncher = errors.New("levels: level needs exactly one launcher")
	ErrMissingGoal     = errors.New("levels: level needs exactly one goal")
	ErrTreasureCount   = errors.New("levels: treasure count does not match placements")
	ErrAttempts        = errors.New("levels: attempts must be positive")
)

type EntityType string

const (
	EntityLauncher  EntityType = "launcher"
	EntityPlatform  EntityType = "platform"
	EntityDeathTrap EntityType = "death_trap"
	EntityTreasure  EntityType = "treasure"
	EntityGoal      EntityType = "goal"
)

func (t EntityType) valid() bool {
	switch t {
	case EntityLauncher, EntityPlatform, EntityDeathTrap, EntityTreasure, EntityGoal:
		return true
	}
	return false
}

// Level is one playable puzzle. Coordinates are pixels in the 800x600
// playfield with Y pointing down.
type Level struct {
	Name string `yaml:"name"`
	// ParTime is the completion time, in seconds, that earns the par bonus.
	ParTime  float64 `yaml:"par_time"`
	Attempts int     `yaml:"attempts"`
	// Treasures, when set, must equal the number of treasure placements.
	Treasures *int   `yaml:"treasures,omitempty"`
	BallAsset string `yaml:"ball_asset,omitempty"`
	// Script is tengo source run every physics tick to toggle platforms.
	Script   string   `yaml:"script,omitempty"`
	Entities []Entity `yaml:"entities"`
}

// Entity is a placement record. X and Y are the upper-left corner, except for
// the launcher where they are the base center. Width and Height are required
// for platforms and optional elsewhere.
type Entity struct {
	Type   EntityType `yaml:"type"`
	Name   string     `yaml:"name,omitempty"`
	X      float64    `yaml:"x"`
	Y      float64    `yaml:"y"`
	Width  float64    `yaml:"width,omitempty"`
	Height float64    `yaml:"height,omitempty"`
	Asset  string     `yaml:"asset"`
	// Angle and Magnitude set the launcher's starting aim. Zero keeps the
	// configured default.
	Angle     float64 `yaml:"angle,omitempty"`
	Magnitude float64 `yaml:"magnitude,omitempty"`
}

const (
	defaultAttempts  = 3
	defaultBallAsset = "ball"
)

// Parse decodes and validates a level. A missing name falls back to fallback.
func Parse(data []byte, fallback string) (*Level, error) {
	var lvl Level
	if err := yaml.Unmarshal(data, &lvl); err != nil {
		return nil, fmt.Errorf("levels: unmarshal %s: %w", fallback, err)
	}
	if lvl.Name == "" {
		lvl.Name = fallback
	}
	if lvl.Attempts <= 0 {
		lvl.Attempts = defaultAttempts
	}
	if lvl.BallAsset == "" {
		lvl.BallAsset = defaultBallAsset
	}
	if err := lvl.Validate(); err != nil {
		return nil, err
	}
	return &lvl, nil
}

// Load reads name from disk or the embedded set and parses it.
func Load(name string) (*Level, error) {
	data, err := Read(name)
	if err != nil {
		return nil, fmt.Errorf("levels: load %s: %w", name, err)
	}
	return Parse(data, name)
}

// Validate checks the structure of the level. Placement rules of individual
// entities are enforced when they are constructed.
func (l *Level) Validate() error {
	if l.Attempts <= 0 {
		return fmt.Errorf("level %s has %d: %w", l.Name, l.Attempts, ErrAttempts)
	}
	var launchers, goals, treasures int
	for i, e := range l.Entities {
		if !e.Type.valid() {
			return fmt.Errorf("level %s entity %d %q: %w", l.Name, i, e.Type, ErrUnknownEntity)
		}
		switch e.Type {
		case EntityLauncher:
			launchers++
		case EntityGoal:
			goals++
		case EntityTreasure:
			treasures++
		}
	}
	if launchers != 1 {
		return fmt.Errorf("level %s has %d: %w", l.Name, launchers, ErrMissingLauncher)
	}
	if goals != 1 {
		return fmt.Errorf("level %s has %d: %w", l.Name, goals, ErrMissingGoal)
	}
	if l.Treasures != nil && *l.Treasures != treasures {
		return fmt.Errorf("level %s declares %d, places %d: %w", l.Name, *l.Treasures, treasures, ErrTreasureCount)
	}
	return nil
}

// Of returns the placements of type t in file order.
func (l *Level) Of(t EntityType) []Entity {
	var out []Entity
	for _, e := range l.Entities {
		if e.Type == t {
			out = append(out, e)
		}
	}
	return out
}

// Launcher returns the single launcher placement.
func (l *Level) Launcher() Entity {
	return l.Of(EntityLauncher)[0]
}

// Goal returns the single goal placement.
func (l *Level) Goal() Entity {
	return l.Of(EntityGoal)[0]
}

// TreasureCount is the number of treasure placements.
func (l *Level) TreasureCount() int {
	return len(l.Of(EntityTreasure))
}
