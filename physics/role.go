package physics

import "github.com/jakecoffman/cp"

// Role identifies what a body stands for in the game. It is also the
// Chipmunk collision type of every shape the body owns.
type Role cp.CollisionType

const (
	RoleNone Role = iota
	RoleBall
	RolePlatform
	RoleWall
	RoleDeathTrap
	RoleTreasure
	RoleGoal
)

func (r Role) String() string {
	switch r {
	case RoleBall:
		return "ball"
	case RolePlatform:
		return "platform"
	case RoleWall:
		return "wall"
	case RoleDeathTrap:
		return "death trap"
	case RoleTreasure:
		return "treasure"
	case RoleGoal:
		return "goal"
	default:
		return "none"
	}
}

// IsSensor reports whether bodies with this role detect overlap only.
func (r Role) IsSensor() bool {
	return r == RoleDeathTrap || r == RoleTreasure || r == RoleGoal
}

func (r Role) collisionType() cp.CollisionType {
	return cp.CollisionType(r)
}

// ShapeRole returns the role of a shape created by this package, or RoleNone.
func ShapeRole(shape *cp.Shape) Role {
	if shape == nil {
		return RoleNone
	}
	if tag, ok := shape.UserData.(*shapeTag); ok {
		return tag.role
	}
	return RoleNone
}
