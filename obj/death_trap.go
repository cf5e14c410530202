package obj

import (
	"github.com/milk9111/puzzlepath/common"
	"github.com/milk9111/puzzlepath/physics"
)

// DeathTrapSize is the fixed width and height of a death trap, in pixels.
const DeathTrapSize = 60

// DeathTrap costs the player an attempt when the ball touches it.
type DeathTrap struct {
	sensor
}

// NewDeathTrap places a death trap with its upper-left corner at origin.
func NewDeathTrap(origin common.Vec, asset string) (*DeathTrap, error) {
	s, err := newSensor(physics.RoleDeathTrap, origin, DeathTrapSize, DeathTrapSize, true, asset)
	if err != nil {
		return nil, err
	}
	return &DeathTrap{sensor: s}, nil
}

// InitBody creates the trap's circular sensor.
func (d *DeathTrap) InitBody(w *physics.World) error {
	return d.initBody(w)
}

// Touched reports whether the ball has touched the trap since the last Reset.
func (d *DeathTrap) Touched() bool { return d.tripped }

func (d *DeathTrap) Reset() { d.tripped = false }
