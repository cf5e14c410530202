package main

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"

	"github.com/milk9111/puzzlepath/common"
	"github.com/milk9111/puzzlepath/physics"
)

// drawPhysics outlines every shape in the world's space on top of the
// rendered entities. Chipmunk works in meters; everything is scaled to pixels.
func drawPhysics(screen *ebiten.Image, w *physics.World) {
	if space := w.Space(); space != nil {
		cp.DrawSpace(space, &spaceDrawer{screen: screen})
	}
}

type spaceDrawer struct {
	screen *ebiten.Image
}

func px(v cp.Vector) (float32, float32) {
	return float32(common.ToPixels(v.X)), float32(common.ToPixels(v.Y))
}

func (d *spaceDrawer) line(a, b cp.Vector, c color.RGBA) {
	ax, ay := px(a)
	bx, by := px(b)
	vector.StrokeLine(d.screen, ax, ay, bx, by, 1, c, false)
}

func (d *spaceDrawer) DrawCircle(pos cp.Vector, angle, radius float64, outline, fill cp.FColor, data interface{}) {
	c := toRGBA(outline)
	x, y := px(pos)
	vector.StrokeCircle(d.screen, x, y, float32(common.ToPixels(radius)), 1, c, true)
	d.line(pos, cp.Vector{X: pos.X + math.Cos(angle)*radius, Y: pos.Y + math.Sin(angle)*radius}, c)
}

func (d *spaceDrawer) DrawSegment(a, b cp.Vector, fill cp.FColor, data interface{}) {
	d.line(a, b, toRGBA(fill))
}

func (d *spaceDrawer) DrawFatSegment(a, b cp.Vector, radius float64, outline, fill cp.FColor, data interface{}) {
	d.line(a, b, toRGBA(outline))
}

func (d *spaceDrawer) DrawPolygon(count int, verts []cp.Vector, radius float64, outline, fill cp.FColor, data interface{}) {
	c := toRGBA(outline)
	for i := 0; i < count; i++ {
		d.line(verts[i], verts[(i+1)%count], c)
	}
}

func (d *spaceDrawer) DrawDot(size float64, pos cp.Vector, fill cp.FColor, data interface{}) {
	x, y := px(pos)
	vector.FillCircle(d.screen, x, y, float32(size/2), toRGBA(fill), false)
}

func (d *spaceDrawer) Flags() uint {
	return cp.DRAW_SHAPES | cp.DRAW_COLLISION_POINTS
}

func (d *spaceDrawer) OutlineColor() cp.FColor {
	return cp.FColor{R: 0.2, G: 1.0, B: 0.2, A: 1.0}
}

// ShapeColor colors shapes by gameplay role.
func (d *spaceDrawer) ShapeColor(shape *cp.Shape, data interface{}) cp.FColor {
	switch physics.ShapeRole(shape) {
	case physics.RoleBall:
		return cp.FColor{R: 1, G: 1, B: 1, A: 1}
	case physics.RoleDeathTrap:
		return cp.FColor{R: 1, G: 0.2, B: 0.2, A: 1}
	case physics.RoleTreasure:
		return cp.FColor{R: 1, G: 0.85, B: 0.2, A: 1}
	case physics.RoleGoal:
		return cp.FColor{R: 0.2, G: 1, B: 0.4, A: 1}
	case physics.RoleWall:
		return cp.FColor{R: 0.5, G: 0.5, B: 0.5, A: 1}
	default:
		return cp.FColor{R: 0.4, G: 0.7, B: 1.0, A: 1.0}
	}
}

func (d *spaceDrawer) ConstraintColor() cp.FColor {
	return cp.FColor{R: 0.7, G: 0.7, B: 0.7, A: 1.0}
}

func (d *spaceDrawer) CollisionPointColor() cp.FColor {
	return cp.FColor{R: 1.0, G: 0.1, B: 0.1, A: 1.0}
}

func (d *spaceDrawer) Data() interface{} {
	return nil
}

func toRGBA(c cp.FColor) color.RGBA {
	clamp := func(v float32) uint8 {
		return uint8(common.Clamp(float64(v), 0, 1) * 255)
	}
	return color.RGBA{R: clamp(c.R), G: clamp(c.G), B: clamp(c.B), A: clamp(c.A)}
}
