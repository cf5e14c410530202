package obj

import (
	"errors"
	"testing"

	"github.com/milk9111/puzzlepath/common"
	"github.com/milk9111/puzzlepath/physics"
)

func newWorld(t *testing.T) *physics.World {
	t.Helper()
	w := physics.NewWorld(physics.DefaultOptions())
	t.Cleanup(w.Destroy)
	return w
}

func newBall(t *testing.T, w *physics.World, at common.Vec) *Ball {
	t.Helper()
	b, err := NewBall("ball")
	if err != nil {
		t.Fatalf("NewBall: %v", err)
	}
	if err := b.SetCenter(at); err != nil {
		t.Fatalf("SetCenter: %v", err)
	}
	if w != nil {
		if err := b.InitBody(w); err != nil {
			t.Fatalf("InitBody: %v", err)
		}
	}
	return b
}

func TestNewBallRequiresAsset(t *testing.T) {
	if _, err := NewBall(""); !errors.Is(err, ErrMissingAsset) {
		t.Fatalf("expected ErrMissingAsset, got %v", err)
	}
}

func TestBallLifecycle(t *testing.T) {
	w := newWorld(t)
	b := newBall(t, nil, common.Vec{X: 100, Y: 500})

	if b.State() != BallUninitialized {
		t.Fatalf("expected uninitialized, got %v", b.State())
	}
	if err := b.Launch(1, -1); !errors.Is(err, ErrNotInitialized) {
		t.Fatalf("launch before init: expected ErrNotInitialized, got %v", err)
	}
	if err := b.Stop(); !errors.Is(err, ErrNotInitialized) {
		t.Fatalf("stop before init: expected ErrNotInitialized, got %v", err)
	}

	if err := b.InitBody(w); err != nil {
		t.Fatalf("InitBody: %v", err)
	}
	if err := b.InitBody(w); !errors.Is(err, ErrAlreadyInitialized) {
		t.Fatalf("second InitBody: expected ErrAlreadyInitialized, got %v", err)
	}
	if b.State() != BallResting {
		t.Fatalf("expected resting, got %v", b.State())
	}
	if got := b.Center(); got != (common.Vec{X: 100, Y: 500}) {
		t.Fatalf("body should start at the pixel center, got %v", got)
	}

	if err := b.Launch(2, -3); err != nil {
		t.Fatalf("Launch: %v", err)
	}
	if b.State() != BallLaunched {
		t.Fatalf("expected launched, got %v", b.State())
	}
	if err := b.Launch(2, -3); !errors.Is(err, ErrAlreadyLaunched) {
		t.Fatalf("second Launch: expected ErrAlreadyLaunched, got %v", err)
	}
	if err := b.SetCenter(common.Vec{X: 1, Y: 1}); !errors.Is(err, ErrBallInFlight) {
		t.Fatalf("SetCenter in flight: expected ErrBallInFlight, got %v", err)
	}

	for i := 0; i < 10; i++ {
		w.Step(1.0 / 60.0)
	}
	moved := b.Center()
	if moved.X <= 100 || moved.Y >= 500 {
		t.Fatalf("ball should move up and right, at %v", moved)
	}

	if err := b.Stop(); err != nil {
		t.Fatalf("Stop: %v", err)
	}
	if b.State() != BallStopped {
		t.Fatalf("expected stopped, got %v", b.State())
	}
	stopped := b.Center()
	for i := 0; i < 30; i++ {
		w.Step(1.0 / 60.0)
	}
	if got := b.Center(); got != stopped {
		t.Fatalf("stopped ball moved from %v to %v", stopped, got)
	}
	if !b.Body().Enabled() {
		t.Fatalf("stopped ball must stay in the world")
	}
	if err := b.Launch(1, 1); !errors.Is(err, ErrAlreadyLaunched) {
		t.Fatalf("launching a stopped ball: expected ErrAlreadyLaunched, got %v", err)
	}
}

func TestRestingBallIgnoresGravity(t *testing.T) {
	w := newWorld(t)
	start := common.Vec{X: 300, Y: 200}
	b := newBall(t, w, start)
	for i := 0; i < 60; i++ {
		w.Step(1.0 / 60.0)
	}
	if got := b.Center(); got != start {
		t.Fatalf("resting ball moved from %v to %v", start, got)
	}
}

func TestBallDestroyBody(t *testing.T) {
	w := newWorld(t)
	b := newBall(t, w, common.Vec{X: 50, Y: 50})
	b.DestroyBody()
	if b.Initialized() || b.State() != BallUninitialized {
		t.Fatalf("expected an uninitialized ball after DestroyBody")
	}
	if err := b.InitBody(w); err != nil {
		t.Fatalf("InitBody after destroy: %v", err)
	}
}
