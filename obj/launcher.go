package obj

import (
	"fmt"
	"math"

	"github.com/milk9111/puzzlepath/common"
)

// LauncherSize is the drawn width and height of the launcher base, in pixels.
const LauncherSize = 40

// LauncherLimits bound the aim of a launcher. Angles are radians measured
// counter-clockwise from the +X axis with screen Y pointing down.
// Magnitudes are launch speeds in m/s.
type LauncherLimits struct {
	MinAngle     float64
	MaxAngle     float64
	MinMagnitude float64
	MaxMagnitude float64
	// BarrelLength is the distance from the base center to the muzzle, in pixels.
	BarrelLength float64
}

func DefaultLauncherLimits() LauncherLimits {
	return LauncherLimits{
		MinAngle:     0,
		MaxAngle:     math.Pi,
		MinMagnitude: 1,
		MaxMagnitude: 12,
		BarrelLength: 30,
	}
}

// Launcher aims and fires the ball. It places a loaded ball but never owns
// its lifetime, and it never touches the physics world directly.
type Launcher struct {
	base      common.Vec
	asset     string
	limits    LauncherLimits
	angle     float64
	magnitude float64
	ball      *Ball
}

// NewLauncher creates a launcher centered on base. The starting angle and
// magnitude are clamped to limits.
func NewLauncher(base common.Vec, asset string, limits LauncherLimits, angle, magnitude float64) (*Launcher, error) {
	if err := checkPlacement("launcher", base, asset); err != nil {
		return nil, err
	}
	if limits.MinAngle > limits.MaxAngle || limits.MinMagnitude > limits.MaxMagnitude {
		return nil, fmt.Errorf("launcher limits %+v: inverted range", limits)
	}
	l := &Launcher{base: base, asset: asset, limits: limits}
	l.angle = common.Clamp(angle, limits.MinAngle, limits.MaxAngle)
	l.magnitude = common.Clamp(magnitude, limits.MinMagnitude, limits.MaxMagnitude)
	return l, nil
}

func (l *Launcher) Angle() float64 { return l.angle }

func (l *Launcher) Magnitude() float64 { return l.magnitude }

func (l *Launcher) Limits() LauncherLimits { return l.limits }

// Ball returns the loaded ball, or nil.
func (l *Launcher) Ball() *Ball { return l.ball }

func (l *Launcher) Loaded() bool { return l.ball != nil }

func (l *Launcher) Center() common.Vec { return l.base }

func (l *Launcher) Bounds() common.Rect {
	return common.RectAround(l.base, LauncherSize, LauncherSize)
}

func (l *Launcher) Asset() string { return l.asset }

// Direction is the unit aim vector in screen space.
func (l *Launcher) Direction() common.Vec {
	return common.Vec{X: math.Cos(l.angle), Y: -math.Sin(l.angle)}
}

// Muzzle is where a loaded ball sits, in pixels.
func (l *Launcher) Muzzle() common.Vec {
	return l.base.Add(l.Direction().Scale(l.limits.BarrelLength))
}

// Velocity is the launch velocity in m/s for the current aim.
func (l *Launcher) Velocity() common.Vec {
	return l.Direction().Scale(l.magnitude)
}

// AdjustAngle rotates the aim by delta radians, clamped to the limits. A
// non-finite delta is ignored.
func (l *Launcher) AdjustAngle(delta float64) {
	l.angle = common.Clamp(l.angle+common.Finite(delta), l.limits.MinAngle, l.limits.MaxAngle)
	l.placeBall()
}

// AdjustMagnitude changes the launch speed by delta, clamped to the limits.
// A non-finite delta is ignored.
func (l *Launcher) AdjustMagnitude(delta float64) {
	l.magnitude = common.Clamp(l.magnitude+common.Finite(delta), l.limits.MinMagnitude, l.limits.MaxMagnitude)
}

// LoadBall puts ball on the launcher's muzzle. A stopped ball becomes
// resting again; a ball in flight cannot be loaded.
func (l *Launcher) LoadBall(ball *Ball) error {
	if ball == nil {
		return ErrNoBall
	}
	if ball.State() == BallLaunched {
		return fmt.Errorf("load ball: %w", ErrBallInFlight)
	}
	ball.rest()
	l.ball = ball
	l.placeBall()
	return nil
}

// Launch fires the loaded ball and unloads it.
func (l *Launcher) Launch() error {
	if l.ball == nil {
		return ErrNoBall
	}
	v := l.Velocity()
	if err := l.ball.Launch(v.X, v.Y); err != nil {
		return err
	}
	l.ball = nil
	return nil
}

func (l *Launcher) placeBall() {
	if l.ball == nil {
		return
	}
	// loaded balls are never in flight
	_ = l.ball.SetCenter(l.Muzzle())
}
