package physics

import "github.com/jakecoffman/cp"

// Sensor is a detector backed by a sensor shape. Trip is called from inside
// World.Step and must only flip a flag: no bodies may be created or removed
// while the space is stepping.
type Sensor interface {
	Role() Role
	Trip()
}

// Interpret decides whether a contact between shapes tagged a and b should
// trip a sensor with role self. Exactly one side must be the ball, the other
// side must be the sensor, and the contact must be touching.
func Interpret(self, a, b Role, touching bool) bool {
	if !touching {
		return false
	}
	aBall := a == RoleBall
	bBall := b == RoleBall
	if aBall == bBall {
		return false
	}
	if aBall {
		return b == self
	}
	return a == self
}

// WatchSensor attaches s to the sensor shapes of body and makes sure the
// world dispatches contacts for the body's role to it.
func (w *World) WatchSensor(body *Body, s Sensor) {
	if w == nil || w.space == nil || body == nil || s == nil {
		return
	}
	for _, shape := range body.shapes {
		shape.UserData = &shapeTag{role: body.role, sensor: s}
	}
	w.ensureHandler(body.role)
}

func (w *World) ensureHandler(role Role) {
	if w.watching[role] {
		return
	}

	handler := w.space.NewWildcardCollisionHandler(role.collisionType())
	handler.UserData = role
	handler.BeginFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
		self, ok := userData.(Role)
		if !ok {
			return false
		}
		dispatchContact(self, arb)
		// Sensors are detectors, not obstacles.
		return false
	}
	w.watching[role] = true
}

func dispatchContact(self Role, arb *cp.Arbiter) {
	shapeA, shapeB := arb.Shapes()
	tagA, _ := shapeA.UserData.(*shapeTag)
	tagB, _ := shapeB.UserData.(*shapeTag)
	if tagA == nil || tagB == nil {
		return
	}
	if !Interpret(self, tagA.role, tagB.role, arb.Count() > 0) {
		return
	}

	sensor := tagA.sensor
	if tagA.role != self {
		sensor = tagB.sensor
	}
	if sensor != nil {
		sensor.Trip()
	}
}
