package obj

import (
	"errors"
	"math"
	"testing"

	"github.com/milk9111/puzzlepath/common"
)

func newLauncher(t *testing.T) *Launcher {
	t.Helper()
	l, err := NewLauncher(common.Vec{X: 100, Y: 500}, "launcher", DefaultLauncherLimits(), math.Pi/4, 5)
	if err != nil {
		t.Fatalf("NewLauncher: %v", err)
	}
	return l
}

func TestLauncherAngleClamps(t *testing.T) {
	l := newLauncher(t)
	limits := l.Limits()

	for i := 0; i < 500; i++ {
		l.AdjustAngle(math.Pi / 64)
	}
	if l.Angle() != limits.MaxAngle {
		t.Fatalf("expected angle clamped at %v, got %v", limits.MaxAngle, l.Angle())
	}
	l.AdjustAngle(math.Pi / 64)
	if l.Angle() != limits.MaxAngle {
		t.Fatalf("further adjustment past the arc must be a no-op, got %v", l.Angle())
	}

	for i := 0; i < 500; i++ {
		l.AdjustAngle(-math.Pi / 64)
	}
	if l.Angle() != limits.MinAngle {
		t.Fatalf("expected angle clamped at %v, got %v", limits.MinAngle, l.Angle())
	}
}

func TestLauncherIgnoresNonFiniteDeltas(t *testing.T) {
	l := newLauncher(t)
	angle, magnitude, muzzle := l.Angle(), l.Magnitude(), l.Muzzle()
	for _, d := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		l.AdjustAngle(d)
		l.AdjustMagnitude(d)
	}
	if l.Angle() != angle || l.Magnitude() != magnitude || l.Muzzle() != muzzle {
		t.Fatalf("aim changed: angle=%v magnitude=%v muzzle=%v", l.Angle(), l.Magnitude(), l.Muzzle())
	}
	v := l.Velocity()
	if math.IsNaN(v.X) || math.IsNaN(v.Y) {
		t.Fatalf("launch velocity is NaN: %v", v)
	}
}

func TestLauncherMagnitudeClamps(t *testing.T) {
	l := newLauncher(t)
	limits := l.Limits()

	cases := []struct {
		name  string
		delta float64
		want  float64
	}{
		{"up", 0.25, limits.MaxMagnitude},
		{"down", -0.25, limits.MinMagnitude},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			for i := 0; i < 200; i++ {
				l.AdjustMagnitude(c.delta)
			}
			if l.Magnitude() != c.want {
				t.Fatalf("expected %v, got %v", c.want, l.Magnitude())
			}
		})
	}
}

func TestLauncherVelocity(t *testing.T) {
	l, err := NewLauncher(common.Vec{X: 100, Y: 500}, "launcher", DefaultLauncherLimits(), math.Pi/2, 4)
	if err != nil {
		t.Fatalf("NewLauncher: %v", err)
	}
	v := l.Velocity()
	if math.Abs(v.X) > 1e-9 || math.Abs(v.Y+4) > 1e-9 {
		t.Fatalf("straight up at 4 m/s should be (0,-4), got %v", v)
	}
	m := l.Muzzle()
	if math.Abs(m.X-100) > 1e-9 || math.Abs(m.Y-(500-l.Limits().BarrelLength)) > 1e-9 {
		t.Fatalf("unexpected muzzle %v", m)
	}
}

func TestNewLauncherClampsStart(t *testing.T) {
	l, err := NewLauncher(common.Vec{X: 10, Y: 10}, "launcher", DefaultLauncherLimits(), 10, 100)
	if err != nil {
		t.Fatalf("NewLauncher: %v", err)
	}
	if l.Angle() != math.Pi || l.Magnitude() != 12 {
		t.Fatalf("expected clamped start, got angle=%v magnitude=%v", l.Angle(), l.Magnitude())
	}
}

func TestLauncherLoadAndLaunch(t *testing.T) {
	w := newWorld(t)
	l := newLauncher(t)
	b := newBall(t, w, common.Vec{})

	if err := l.Launch(); !errors.Is(err, ErrNoBall) {
		t.Fatalf("expected ErrNoBall, got %v", err)
	}
	if err := l.LoadBall(b); err != nil {
		t.Fatalf("LoadBall: %v", err)
	}
	muzzle := l.Muzzle()
	if got := b.Center(); math.Abs(got.X-muzzle.X) > 1e-9 || math.Abs(got.Y-muzzle.Y) > 1e-9 {
		t.Fatalf("ball should sit on the muzzle %v, got %v", muzzle, got)
	}

	l.AdjustAngle(math.Pi / 8)
	muzzle = l.Muzzle()
	if got := b.Center(); math.Abs(got.X-muzzle.X) > 1e-9 || math.Abs(got.Y-muzzle.Y) > 1e-9 {
		t.Fatalf("ball should follow the muzzle to %v, got %v", muzzle, got)
	}

	if err := l.Launch(); err != nil {
		t.Fatalf("Launch: %v", err)
	}
	if l.Loaded() {
		t.Fatalf("launcher should be empty after launch")
	}
	if b.State() != BallLaunched {
		t.Fatalf("expected launched ball, got %v", b.State())
	}
	if err := l.LoadBall(b); !errors.Is(err, ErrBallInFlight) {
		t.Fatalf("loading a ball in flight: expected ErrBallInFlight, got %v", err)
	}

	if err := b.Stop(); err != nil {
		t.Fatalf("Stop: %v", err)
	}
	if err := l.LoadBall(b); err != nil {
		t.Fatalf("reloading a stopped ball: %v", err)
	}
	if b.State() != BallResting {
		t.Fatalf("reloaded ball should rest, got %v", b.State())
	}
	if err := l.Launch(); err != nil {
		t.Fatalf("relaunch: %v", err)
	}
}
