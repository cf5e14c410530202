package physics

import (
	"testing"

	"github.com/milk9111/puzzlepath/common"
)

type latch struct {
	role    Role
	tripped int
}

func (l *latch) Role() Role { return l.role }
func (l *latch) Trip()      { l.tripped++ }

func TestInterpret(t *testing.T) {
	cases := []struct {
		name     string
		self     Role
		a, b     Role
		touching bool
		want     bool
	}{
		{"ball_hits_trap", RoleDeathTrap, RoleBall, RoleDeathTrap, true, true},
		{"trap_hits_ball_swapped", RoleDeathTrap, RoleDeathTrap, RoleBall, true, true},
		{"not_touching", RoleDeathTrap, RoleBall, RoleDeathTrap, false, false},
		{"no_ball", RoleDeathTrap, RolePlatform, RoleDeathTrap, true, false},
		{"two_balls", RoleBall, RoleBall, RoleBall, true, false},
		{"other_sensor", RoleGoal, RoleBall, RoleTreasure, true, false},
		{"treasure", RoleTreasure, RoleTreasure, RoleBall, true, true},
		{"goal", RoleGoal, RoleBall, RoleGoal, true, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := Interpret(c.self, c.a, c.b, c.touching); got != c.want {
				t.Fatalf("Interpret(%v, %v, %v, %v) = %v, want %v", c.self, c.a, c.b, c.touching, got, c.want)
			}
		})
	}
}

func TestRoleString(t *testing.T) {
	if RoleDeathTrap.String() != "death trap" {
		t.Fatalf("unexpected role name %q", RoleDeathTrap.String())
	}
	if !RoleGoal.IsSensor() || RolePlatform.IsSensor() {
		t.Fatalf("sensor classification is wrong")
	}
}

func dropBall(w *World, at common.Vec) *Body {
	return w.CreateBody(BodySpec{
		Role:       RoleBall,
		Kind:       KindDynamic,
		Center:     at,
		Radius:     12.5,
		Mass:       1,
		Elasticity: 0.8,
	})
}

func TestSensorTripsOnBallContact(t *testing.T) {
	w := NewWorld(DefaultOptions())
	defer w.Destroy()

	trap := w.CreateBody(BodySpec{
		Role:   RoleDeathTrap,
		Kind:   KindStatic,
		Center: common.Vec{X: 400, Y: 300},
		Radius: 30,
		Sensor: true,
	})
	l := &latch{role: RoleDeathTrap}
	w.WatchSensor(trap, l)

	ball := dropBall(w, common.Vec{X: 400, Y: 100})

	for i := 0; i < 300 && l.tripped == 0; i++ {
		w.Step(1.0 / 60.0)
	}
	if l.tripped == 0 {
		t.Fatalf("expected the trap to trip, ball ended at %v", ball.Position())
	}
	// the sensor must not stop the ball
	if ball.Velocity().Y <= 0 {
		t.Fatalf("expected ball to keep falling through the sensor, velocity %v", ball.Velocity())
	}
}

func TestNonBallDoesNotTripSensor(t *testing.T) {
	w := NewWorld(DefaultOptions())
	defer w.Destroy()

	goal := w.CreateBody(BodySpec{
		Role:   RoleGoal,
		Kind:   KindStatic,
		Center: common.Vec{X: 200, Y: 300},
		Width:  60,
		Height: 60,
		Sensor: true,
	})
	l := &latch{role: RoleGoal}
	w.WatchSensor(goal, l)

	w.CreateBody(BodySpec{
		Role:   RolePlatform,
		Kind:   KindDynamic,
		Center: common.Vec{X: 200, Y: 150},
		Width:  40,
		Height: 40,
		Mass:   1,
	})
	for i := 0; i < 120; i++ {
		w.Step(1.0 / 60.0)
	}
	if l.tripped != 0 {
		t.Fatalf("expected no trip from a non-ball body, got %d", l.tripped)
	}
}

func TestStepDeterminism(t *testing.T) {
	run := func() common.Vec {
		w := NewWorld(DefaultOptions())
		defer w.Destroy()
		w.CreateBody(BodySpec{
			Role:       RolePlatform,
			Kind:       KindStatic,
			Center:     common.Vec{X: 400, Y: 400},
			Width:      300,
			Height:     20,
			Elasticity: 0.5,
		})
		b := dropBall(w, common.Vec{X: 380, Y: 120})
		b.SetVelocity(1.5, -2)
		for i := 0; i < 240; i++ {
			w.Step(1.0 / 60.0)
		}
		return b.Position()
	}

	first := run()
	second := run()
	if first != second {
		t.Fatalf("expected identical positions, got %v and %v", first, second)
	}
}

func TestKinematicBodyIgnoresGravity(t *testing.T) {
	w := NewWorld(DefaultOptions())
	defer w.Destroy()

	start := common.Vec{X: 100, Y: 100}
	b := w.CreateBody(BodySpec{Role: RoleBall, Kind: KindKinematic, Center: start, Radius: 12.5, Mass: 1})
	for i := 0; i < 60; i++ {
		w.Step(1.0 / 60.0)
	}
	if got := b.Position(); got != start {
		t.Fatalf("kinematic body moved from %v to %v", start, got)
	}

	b.SetKind(KindDynamic)
	for i := 0; i < 60; i++ {
		w.Step(1.0 / 60.0)
	}
	if got := b.Position(); got.Y <= start.Y {
		t.Fatalf("dynamic body should fall, still at %v", got)
	}
}

func TestDisableEnable(t *testing.T) {
	w := NewWorld(DefaultOptions())
	defer w.Destroy()

	start := common.Vec{X: 100, Y: 100}
	b := dropBall(w, start)
	if !b.Enabled() {
		t.Fatalf("new body should be enabled")
	}
	b.Disable()
	if b.Enabled() {
		t.Fatalf("body should report disabled")
	}
	for i := 0; i < 30; i++ {
		w.Step(1.0 / 60.0)
	}
	if got := b.Position(); got != start {
		t.Fatalf("disabled body should not be integrated, moved to %v", got)
	}

	b.Enable()
	for i := 0; i < 30; i++ {
		w.Step(1.0 / 60.0)
	}
	if got := b.Position(); got.Y <= start.Y {
		t.Fatalf("re-enabled body should fall, still at %v", got)
	}

	b.Destroy()
	if b.Enabled() {
		t.Fatalf("destroyed body should not be enabled")
	}
}
