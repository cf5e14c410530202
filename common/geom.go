package common

import "math"

// Vec is a 2D vector. Whether it holds pixels or meters depends on context.
type Vec struct {
	X, Y float64
}

func (v Vec) Add(o Vec) Vec { return Vec{X: v.X + o.X, Y: v.Y + o.Y} }

func (v Vec) Sub(o Vec) Vec { return Vec{X: v.X - o.X, Y: v.Y - o.Y} }

func (v Vec) Scale(s float64) Vec { return Vec{X: v.X * s, Y: v.Y * s} }

func (v Vec) Len() float64 { return math.Hypot(v.X, v.Y) }

// Rect is an axis-aligned rectangle in pixels, anchored at its upper-left corner.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// RectAround returns the rect of size w x h centered on c.
func RectAround(c Vec, w, h float64) Rect {
	return Rect{X: c.X - w/2, Y: c.Y - h/2, Width: w, Height: h}
}

func (r Rect) Center() Vec {
	return Vec{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

func (r Rect) Intersects(other Rect) bool {
	return r.X < other.X+other.Width &&
		r.X+r.Width > other.X &&
		r.Y < other.Y+other.Height &&
		r.Y+r.Height > other.Y
}
