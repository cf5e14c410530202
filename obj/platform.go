package obj

import (
	"fmt"

	"github.com/milk9111/puzzlepath/common"
	"github.com/milk9111/puzzlepath/physics"
)

// Chipmunk multiplies the elasticity of both shapes, so solids use 1 and the
// ball's restitution decides the bounce.
const platformElasticity = 1.0

// Platform is a static rectangle the ball bounces off.
type Platform struct {
	// Name lets level scripts address the platform. May be empty.
	Name string

	upperLeft  common.Vec
	lowerRight common.Vec
	asset      string
	active     bool
	body       *physics.Body
}

// NewPlatform validates and creates a platform whose upper-left corner is at
// origin and whose size is length, both in pixels.
func NewPlatform(origin, length common.Vec, asset string) (*Platform, error) {
	if err := checkPlacement("platform", origin, asset); err != nil {
		return nil, err
	}
	// A platform occupies at least one grid tile in each direction.
	if length.X < common.GridUnit {
		return nil, fmt.Errorf("platform width %v must be at least %d: %w", length.X, common.GridUnit, ErrTooSmall)
	}
	if length.Y < common.GridUnit {
		return nil, fmt.Errorf("platform height %v must be at least %d: %w", length.Y, common.GridUnit, ErrTooSmall)
	}
	return &Platform{
		upperLeft:  origin,
		lowerRight: origin.Add(length),
		asset:      asset,
		active:     true,
	}, nil
}

func (p *Platform) UpperLeft() common.Vec { return p.upperLeft }

func (p *Platform) LowerRight() common.Vec { return p.lowerRight }

func (p *Platform) Width() float64 { return p.lowerRight.X - p.upperLeft.X }

func (p *Platform) Height() float64 { return p.lowerRight.Y - p.upperLeft.Y }

func (p *Platform) Center() common.Vec {
	return common.Vec{X: p.upperLeft.X + p.Width()/2, Y: p.upperLeft.Y + p.Height()/2}
}

func (p *Platform) Bounds() common.Rect {
	return common.Rect{X: p.upperLeft.X, Y: p.upperLeft.Y, Width: p.Width(), Height: p.Height()}
}

func (p *Platform) Asset() string { return p.asset }

func (p *Platform) Initialized() bool { return p.body != nil }

func (p *Platform) Active() bool { return p.active }

// SetActive adds or removes the platform from the physics world. Must be
// called between physics steps.
func (p *Platform) SetActive(active bool) {
	if p.active == active {
		return
	}
	p.active = active
	if p.body == nil {
		return
	}
	if active {
		p.body.Enable()
	} else {
		p.body.Disable()
	}
}

// InitBody creates the platform's static box.
func (p *Platform) InitBody(w *physics.World) error {
	if p.body != nil {
		return fmt.Errorf("platform: %w", ErrAlreadyInitialized)
	}
	p.body = w.CreateBody(physics.BodySpec{
		Role:       physics.RolePlatform,
		Kind:       physics.KindStatic,
		Center:     p.Center(),
		Width:      p.Width(),
		Height:     p.Height(),
		Elasticity: platformElasticity,
	})
	if !p.active {
		p.body.Disable()
	}
	return nil
}

func (p *Platform) DestroyBody() {
	if p.body == nil {
		return
	}
	p.body.Destroy()
	p.body = nil
}
