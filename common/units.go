package common

// PixelsPerMeter is the one scale factor between level/render space and the
// physics space. It never changes while the process runs.
const PixelsPerMeter = 64.0

// Level geometry in pixels.
const (
	LevelWidth  = 800
	LevelHeight = 600
	GridUnit    = 20
)

// Window layout used by the game shell.
const (
	BaseWidth  = LevelWidth
	BaseHeight = LevelHeight
)

func ToMeters(pixels float64) float64 {
	return pixels / PixelsPerMeter
}

func ToPixels(meters float64) float64 {
	return meters * PixelsPerMeter
}

func VecToMeters(v Vec) Vec {
	return Vec{X: ToMeters(v.X), Y: ToMeters(v.Y)}
}

func VecToPixels(v Vec) Vec {
	return Vec{X: ToPixels(v.X), Y: ToPixels(v.Y)}
}

// InLevel reports whether p lies inside the 0..799 x 0..599 playfield.
func InLevel(p Vec) bool {
	return p.X >= 0 && p.X <= LevelWidth-1 && p.Y >= 0 && p.Y <= LevelHeight-1
}
