package physics

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/puzzlepath/common"
)

// Options tune a World. Zero values fall back to DefaultOptions.
type Options struct {
	// Gravity in m/s^2. Positive points down the screen.
	Gravity        float64
	Iterations     int
	WallElasticity float64
	// NoWalls skips the static segments around the playfield.
	NoWalls bool
}

func DefaultOptions() Options {
	return Options{
		Gravity:        9.8,
		Iterations:     20,
		WallElasticity: 1.0,
	}
}

// World owns the Chipmunk space for one level attempt. It is torn down
// wholesale with Destroy and never shared between simulations.
type World struct {
	space    *cp.Space
	bodies   []*Body
	walls    []*cp.Shape
	watching map[Role]bool
	steps    uint64
}

// NewWorld creates an empty space with gravity and boundary walls.
func NewWorld(opts Options) *World {
	def := DefaultOptions()
	if opts.Iterations <= 0 {
		opts.Iterations = def.Iterations
	}

	space := cp.NewSpace()
	space.Iterations = uint(opts.Iterations)
	space.SetGravity(cp.Vector{X: 0, Y: opts.Gravity})

	w := &World{
		space:    space,
		watching: make(map[Role]bool),
	}
	if !opts.NoWalls {
		w.buildWalls(opts.WallElasticity)
	}
	return w
}

// Space returns the underlying Chipmunk space.
func (w *World) Space() *cp.Space {
	if w == nil {
		return nil
	}
	return w.space
}

// Steps returns how many times Step has advanced the space.
func (w *World) Steps() uint64 {
	if w == nil {
		return 0
	}
	return w.steps
}

// Step advances the simulation. Collision handlers run synchronously inside
// this call and have all returned when it does.
func (w *World) Step(dt float64) {
	if w == nil || w.space == nil || dt <= 0 {
		return
	}
	w.space.Step(dt)
	w.steps++
}

// Destroy removes every body and shape from the space. The world must not be
// used afterwards.
func (w *World) Destroy() {
	if w == nil || w.space == nil {
		return
	}
	for _, b := range w.bodies {
		b.destroy()
	}
	for _, shape := range w.walls {
		w.space.RemoveShape(shape)
	}
	w.bodies = nil
	w.walls = nil
	w.watching = nil
	w.space = nil
}

func (w *World) buildWalls(elasticity float64) {
	worldW := common.ToMeters(common.LevelWidth)
	worldH := common.ToMeters(common.LevelHeight)
	thickness := common.ToMeters(5)

	segments := []struct {
		a cp.Vector
		b cp.Vector
	}{
		{a: cp.Vector{X: 0, Y: 0}, b: cp.Vector{X: worldW, Y: 0}},           // top
		{a: cp.Vector{X: 0, Y: worldH}, b: cp.Vector{X: worldW, Y: worldH}}, // bottom
		{a: cp.Vector{X: 0, Y: 0}, b: cp.Vector{X: 0, Y: worldH}},           // left
		{a: cp.Vector{X: worldW, Y: 0}, b: cp.Vector{X: worldW, Y: worldH}}, // right
	}
	for _, seg := range segments {
		shape := cp.NewSegment(w.space.StaticBody, seg.a, seg.b, thickness)
		shape.SetElasticity(elasticity)
		shape.SetFriction(0)
		shape.SetCollisionType(RoleWall.collisionType())
		shape.UserData = &shapeTag{role: RoleWall}
		w.space.AddShape(shape)
		w.walls = append(w.walls, shape)
	}
}

func (w *World) track(b *Body) {
	w.bodies = append(w.bodies, b)
}

func (w *World) untrack(b *Body) {
	for i, other := range w.bodies {
		if other == b {
			w.bodies = append(w.bodies[:i], w.bodies[i+1:]...)
			return
		}
	}
}
