package obj

import (
	"github.com/milk9111/puzzlepath/common"
	"github.com/milk9111/puzzlepath/physics"
)

// GoalSize is the fixed width and height of the goal, in pixels.
const GoalSize = 60

type Goal struct {
	sensor
}

func NewGoal(origin common.Vec, asset string) (*Goal, error) {
	s, err := newSensor(physics.RoleGoal, origin, GoalSize, GoalSize, false, asset)
	if err != nil {
		return nil, err
	}
	return &Goal{sensor: s}, nil
}

// InitBody creates the goal's box sensor.
func (g *Goal) InitBody(w *physics.World) error {
	return g.initBody(w)
}

func (g *Goal) Reached() bool { return g.tripped }

func (g *Goal) Reset() { g.tripped = false }
