package physics

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/puzzlepath/common"
)

// Kind is the dynamics type of a body.
type Kind int

const (
	// KindStatic bodies never move.
	KindStatic Kind = iota
	// KindKinematic bodies ignore gravity and are positioned directly.
	KindKinematic
	// KindDynamic bodies are integrated by the space.
	KindDynamic
)

func (k Kind) cpType() int {
	switch k {
	case KindKinematic:
		return cp.BODY_KINEMATIC
	case KindDynamic:
		return cp.BODY_DYNAMIC
	default:
		return cp.BODY_STATIC
	}
}

// BodySpec describes a body in pixel units. A positive Radius makes a
// circle, otherwise Width x Height makes a box centered on Center.
type BodySpec struct {
	Role   Role
	Kind   Kind
	Center common.Vec
	Radius float64
	Width  float64
	Height float64
	Sensor bool
	// Mass in kg. Only used by bodies that can become dynamic.
	Mass       float64
	Elasticity float64
	Friction   float64
}

// Body is the physics handle an entity composes. It owns one Chipmunk body
// and its shapes inside a World.
type Body struct {
	world   *World
	body    *cp.Body
	shapes  []*cp.Shape
	role    Role
	kind    Kind
	enabled bool
}

type shapeTag struct {
	role   Role
	sensor Sensor
}

// CreateBody adds a new body described by spec to the world.
func (w *World) CreateBody(spec BodySpec) *Body {
	if w == nil || w.space == nil {
		return nil
	}

	var body *cp.Body
	switch spec.Kind {
	case KindStatic:
		body = cp.NewStaticBody()
	case KindKinematic:
		body = cp.NewKinematicBody()
	default:
		mass := spec.Mass
		if mass <= 0 {
			mass = 1
		}
		var moment float64
		if spec.Radius > 0 {
			moment = cp.MomentForCircle(mass, 0, common.ToMeters(spec.Radius), cp.Vector{})
		} else {
			moment = cp.MomentForBox(mass, common.ToMeters(spec.Width), common.ToMeters(spec.Height))
		}
		body = cp.NewBody(mass, moment)
	}
	pos := common.VecToMeters(spec.Center)
	body.SetPosition(cp.Vector{X: pos.X, Y: pos.Y})

	var shape *cp.Shape
	if spec.Radius > 0 {
		shape = cp.NewCircle(body, common.ToMeters(spec.Radius), cp.Vector{})
	} else {
		shape = cp.NewBox(body, common.ToMeters(spec.Width), common.ToMeters(spec.Height), 0)
	}
	shape.SetSensor(spec.Sensor)
	shape.SetElasticity(spec.Elasticity)
	shape.SetFriction(spec.Friction)
	shape.SetCollisionType(spec.Role.collisionType())
	shape.UserData = &shapeTag{role: spec.Role}

	b := &Body{
		world:  w,
		body:   body,
		shapes: []*cp.Shape{shape},
		role:   spec.Role,
		kind:   spec.Kind,
	}
	body.UserData = b
	b.enable()
	if spec.Kind != KindStatic && spec.Mass > 0 {
		// Kinematic bodies keep the mass on the shape so switching to dynamic
		// later picks it up.
		shape.SetMass(spec.Mass)
	}
	w.track(b)
	return b
}

func (b *Body) Role() Role {
	if b == nil {
		return RoleNone
	}
	return b.role
}

func (b *Body) Kind() Kind {
	if b == nil {
		return KindStatic
	}
	return b.kind
}

// Enabled reports whether the body currently takes part in the space.
func (b *Body) Enabled() bool {
	return b != nil && b.enabled
}

// Position returns the body center in pixels.
func (b *Body) Position() common.Vec {
	if b == nil || b.body == nil {
		return common.Vec{}
	}
	p := b.body.Position()
	return common.VecToPixels(common.Vec{X: p.X, Y: p.Y})
}

// SetPosition moves the body center, given in pixels.
func (b *Body) SetPosition(p common.Vec) {
	if b == nil || b.body == nil {
		return
	}
	m := common.VecToMeters(p)
	b.body.SetPosition(cp.Vector{X: m.X, Y: m.Y})
}

// Velocity returns the body velocity in m/s.
func (b *Body) Velocity() common.Vec {
	if b == nil || b.body == nil {
		return common.Vec{}
	}
	v := b.body.Velocity()
	return common.Vec{X: v.X, Y: v.Y}
}

// SetVelocity sets the body velocity in m/s.
func (b *Body) SetVelocity(vx, vy float64) {
	if b == nil || b.body == nil {
		return
	}
	b.body.SetVelocity(vx, vy)
}

// SetKind changes the dynamics type. The space must not be mid-step.
func (b *Body) SetKind(k Kind) {
	if b == nil || b.body == nil || b.kind == k {
		return
	}
	b.body.SetType(k.cpType())
	b.kind = k
}

// Disable takes the body and its shapes out of the space without
// destroying them.
func (b *Body) Disable() {
	if b == nil || !b.enabled || b.world == nil || b.world.space == nil {
		return
	}
	space := b.world.space
	for _, shape := range b.shapes {
		space.RemoveShape(shape)
	}
	space.RemoveBody(b.body)
	b.enabled = false
}

// Enable puts a disabled body back into the space.
func (b *Body) Enable() {
	if b == nil || b.enabled {
		return
	}
	b.enable()
}

func (b *Body) enable() {
	if b.world == nil || b.world.space == nil {
		return
	}
	space := b.world.space
	space.AddBody(b.body)
	for _, shape := range b.shapes {
		space.AddShape(shape)
	}
	b.enabled = true
}

// Destroy removes the body from its world for good.
func (b *Body) Destroy() {
	if b == nil || b.world == nil {
		return
	}
	b.destroy()
	b.world.untrack(b)
	b.world = nil
}

func (b *Body) destroy() {
	b.Disable()
	for _, shape := range b.shapes {
		shape.UserData = nil
	}
	b.body.UserData = nil
}

// SetCollidable turns contact generation for the body's shapes on or off.
// A non-collidable body stays in the space but never produces contacts.
func (b *Body) SetCollidable(on bool) {
	if b == nil {
		return
	}
	filter := cp.SHAPE_FILTER_NONE
	if on {
		filter = cp.SHAPE_FILTER_ALL
	}
	for _, shape := range b.shapes {
		shape.SetFilter(filter)
	}
}
