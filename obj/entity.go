package obj

import (
	"fmt"

	"github.com/milk9111/puzzlepath/common"
	"github.com/milk9111/puzzlepath/physics"
)

// Entity is what the presentation layer reads every frame.
type Entity interface {
	Center() common.Vec
	Bounds() common.Rect
	// Asset is an opaque handle the renderer resolves to something drawable.
	Asset() string
}

// HasBody is implemented by every entity backed by a physics body.
type HasBody interface {
	InitBody(w *physics.World) error
	Center() common.Vec
	DestroyBody()
	Initialized() bool
}

var (
	_ HasBody = (*Ball)(nil)
	_ HasBody = (*Platform)(nil)
	_ HasBody = (*DeathTrap)(nil)
	_ HasBody = (*Treasure)(nil)
	_ HasBody = (*Goal)(nil)
	_ Entity  = (*Launcher)(nil)
)

// CheckSize fails with ErrSizeMismatch when an explicit placement size
// differs from the fixed size of an entity. Zero means "not given".
func CheckSize(kind string, width, height, wantW, wantH float64) error {
	if width == 0 && height == 0 {
		return nil
	}
	if width != wantW || height != wantH {
		return fmt.Errorf("%s is %vx%v, placed as %vx%v: %w", kind, wantW, wantH, width, height, ErrSizeMismatch)
	}
	return nil
}

func checkPlacement(kind string, origin common.Vec, asset string) error {
	if asset == "" {
		return fmt.Errorf("%s at %v: %w", kind, origin, ErrMissingAsset)
	}
	if !common.InLevel(origin) {
		return fmt.Errorf("%s origin %v: %w", kind, origin, ErrOutOfBounds)
	}
	return nil
}

// sensor is the shared part of death traps, treasures and the goal: a fixed
// sensor body and a latch flipped by the collision interpreter.
type sensor struct {
	role   physics.Role
	kind   string
	origin common.Vec
	width  float64
	height float64
	round  bool
	asset  string

	body    *physics.Body
	tripped bool
}

func newSensor(role physics.Role, origin common.Vec, width, height float64, round bool, asset string) (sensor, error) {
	if err := checkPlacement(role.String(), origin, asset); err != nil {
		return sensor{}, err
	}
	return sensor{
		role:   role,
		kind:   role.String(),
		origin: origin,
		width:  width,
		height: height,
		round:  round,
		asset:  asset,
	}, nil
}

// Role implements physics.Sensor.
func (s *sensor) Role() physics.Role { return s.role }

// Trip implements physics.Sensor. It runs inside the physics step and only
// sets the latch.
func (s *sensor) Trip() { s.tripped = true }

func (s *sensor) Origin() common.Vec { return s.origin }

func (s *sensor) Center() common.Vec {
	return common.Vec{X: s.origin.X + s.width/2, Y: s.origin.Y + s.height/2}
}

func (s *sensor) Bounds() common.Rect {
	return common.Rect{X: s.origin.X, Y: s.origin.Y, Width: s.width, Height: s.height}
}

func (s *sensor) Asset() string { return s.asset }

func (s *sensor) Initialized() bool { return s.body != nil }

func (s *sensor) initBody(w *physics.World) error {
	if s.body != nil {
		return fmt.Errorf("%s: %w", s.kind, ErrAlreadyInitialized)
	}
	spec := physics.BodySpec{
		Role:   s.role,
		Kind:   physics.KindStatic,
		Center: s.Center(),
		Sensor: true,
	}
	if s.round {
		spec.Radius = s.width / 2
	} else {
		spec.Width = s.width
		spec.Height = s.height
	}
	s.body = w.CreateBody(spec)
	w.WatchSensor(s.body, s)
	return nil
}

func (s *sensor) DestroyBody() {
	if s.body == nil {
		return
	}
	s.body.Destroy()
	s.body = nil
}
