package obj

import (
	"github.com/milk9111/puzzlepath/common"
	"github.com/milk9111/puzzlepath/physics"
)

// TreasureSize is the fixed width and height of a treasure, in pixels.
const TreasureSize = 30

// Treasure is an optional pickup worth a score bonus.
type Treasure struct {
	sensor
	accounted bool
}

func NewTreasure(origin common.Vec, asset string) (*Treasure, error) {
	s, err := newSensor(physics.RoleTreasure, origin, TreasureSize, TreasureSize, true, asset)
	if err != nil {
		return nil, err
	}
	return &Treasure{sensor: s}, nil
}

func (t *Treasure) InitBody(w *physics.World) error {
	return t.initBody(w)
}

// Collected reports whether the ball has reached the treasure.
func (t *Treasure) Collected() bool { return t.tripped }

// Accounted reports whether the treasure's bonus has been granted.
func (t *Treasure) Accounted() bool { return t.accounted }

// Active reports whether the treasure is still in play and should be drawn.
func (t *Treasure) Active() bool { return !t.accounted }

// Account marks the bonus as granted and takes the treasure out of the
// world. It returns false if the treasure was already accounted for, so the
// bonus is granted at most once. Must be called between physics steps.
func (t *Treasure) Account() bool {
	if t.accounted || !t.tripped {
		return false
	}
	t.accounted = true
	t.DestroyBody()
	return true
}

// Reset clears the collected latch.
func (t *Treasure) Reset() { t.tripped = false }
