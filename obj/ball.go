package obj

import (
	"fmt"
	"math"

	"github.com/milk9111/puzzlepath/common"
	"github.com/milk9111/puzzlepath/physics"
)

// BallSize is the fixed width and height of the ball, in pixels.
const BallSize = 25

const (
	ballRestitution = 0.8
	ballFriction    = 0.0
	ballDensity     = 1.0 // kg/m^2
)

type BallState int

const (
	BallUninitialized BallState = iota
	BallResting
	BallLaunched
	BallStopped
)

func (s BallState) String() string {
	switch s {
	case BallResting:
		return "resting"
	case BallLaunched:
		return "launched"
	case BallStopped:
		return "stopped"
	default:
		return "uninitialized"
	}
}

// Ball is the player's projectile. While resting its body is kinematic and
// the launcher places it; once launched only the physics world moves it.
type Ball struct {
	asset  string
	center common.Vec
	body   *physics.Body
	state  BallState
}

// NewBall creates a ball with no body yet.
func NewBall(asset string) (*Ball, error) {
	if asset == "" {
		return nil, fmt.Errorf("ball: %w", ErrMissingAsset)
	}
	return &Ball{asset: asset}, nil
}

func (b *Ball) State() BallState { return b.state }

func (b *Ball) Asset() string { return b.asset }

func (b *Ball) Initialized() bool { return b.body != nil }

// Body exposes the physics handle for debugging and tests.
func (b *Ball) Body() *physics.Body { return b.body }

// Center returns the ball's position in pixels. Once a body exists the body
// is authoritative.
func (b *Ball) Center() common.Vec {
	if b.body != nil {
		return b.body.Position()
	}
	return b.center
}

func (b *Ball) Bounds() common.Rect {
	return common.RectAround(b.Center(), BallSize, BallSize)
}

// SetCenter moves a ball that is not in flight.
func (b *Ball) SetCenter(p common.Vec) error {
	if b.state == BallLaunched {
		return ErrBallInFlight
	}
	b.center = p
	if b.body != nil {
		b.body.SetPosition(p)
	}
	return nil
}

// InitBody creates the ball's circular body at its current center. The body
// starts kinematic and produces no contacts so the launcher can move it.
func (b *Ball) InitBody(w *physics.World) error {
	if b.body != nil {
		return fmt.Errorf("ball: %w", ErrAlreadyInitialized)
	}
	radius := BallSize / 2.0
	rm := common.ToMeters(radius)
	b.body = w.CreateBody(physics.BodySpec{
		Role:       physics.RoleBall,
		Kind:       physics.KindKinematic,
		Center:     b.center,
		Radius:     radius,
		Mass:       ballDensity * math.Pi * rm * rm,
		Elasticity: ballRestitution,
		Friction:   ballFriction,
	})
	b.body.SetCollidable(false)
	b.state = BallResting
	return nil
}

// Launch hands the ball to the physics world with velocity (vx, vy) in m/s.
func (b *Ball) Launch(vx, vy float64) error {
	if b.body == nil {
		return fmt.Errorf("ball launch: %w", ErrNotInitialized)
	}
	if b.state != BallResting {
		return fmt.Errorf("ball launch while %s: %w", b.state, ErrAlreadyLaunched)
	}
	b.body.SetKind(physics.KindDynamic)
	b.body.SetCollidable(true)
	b.body.SetVelocity(vx, vy)
	b.state = BallLaunched
	return nil
}

// Stop takes the ball out of active dynamics without destroying its body.
// The body leaves the space while its type changes and is then put back.
func (b *Ball) Stop() error {
	if b.body == nil {
		return fmt.Errorf("ball stop: %w", ErrNotInitialized)
	}
	b.center = b.body.Position()
	b.body.Disable()
	b.body.SetKind(physics.KindKinematic)
	b.body.SetVelocity(0, 0)
	b.body.SetCollidable(false)
	b.body.Enable()
	b.state = BallStopped
	return nil
}

// rest puts a stopped ball back into the resting state.
func (b *Ball) rest() {
	if b.state == BallStopped {
		b.state = BallResting
	}
}

func (b *Ball) DestroyBody() {
	if b.body == nil {
		return
	}
	b.center = b.body.Position()
	b.body.Destroy()
	b.body = nil
	b.state = BallUninitialized
}
