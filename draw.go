package main

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"github.com/milk9111/puzzlepath/assets"
	"github.com/milk9111/puzzlepath/common"
	"github.com/milk9111/puzzlepath/obj"
	"github.com/milk9111/puzzlepath/system"
)

var backgroundColor = color.RGBA{R: 0x1b, G: 0x1d, B: 0x2a, A: 0xff}

func (g *Game) drawWorld(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	for _, e := range g.sim.Entities() {
		drawEntity(screen, e)
	}
	if g.sim.State() == system.StateIdle {
		drawAim(screen, g.sim.Launcher())
	}
}

func drawEntity(screen *ebiten.Image, e obj.Entity) {
	clr := assets.Color(e.Asset())
	b := e.Bounds()
	switch e.(type) {
	case *obj.Ball, *obj.DeathTrap, *obj.Treasure:
		c := e.Center()
		vector.FillCircle(screen, float32(c.X), float32(c.Y), float32(b.Width/2), clr, true)
	case *obj.Goal:
		vector.FillRect(screen, float32(b.X), float32(b.Y), float32(b.Width), float32(b.Height), withAlpha(clr, 0x80), false)
		vector.StrokeRect(screen, float32(b.X), float32(b.Y), float32(b.Width), float32(b.Height), 2, clr, false)
	case *obj.Launcher:
		vector.FillRect(screen, float32(b.X), float32(b.Y), float32(b.Width), float32(b.Height), clr, false)
	default:
		vector.FillRect(screen, float32(b.X), float32(b.Y), float32(b.Width), float32(b.Height), clr, false)
	}
}

// drawAim shows the barrel and, scaled by launch power, the aim direction.
func drawAim(screen *ebiten.Image, l *obj.Launcher) {
	base, muzzle := l.Center(), l.Muzzle()
	vector.StrokeLine(screen, float32(base.X), float32(base.Y), float32(muzzle.X), float32(muzzle.Y), 6, colornames.Lightgrey, true)

	reach := muzzle.Add(l.Direction().Scale(l.Magnitude() * common.GridUnit))
	vector.StrokeLine(screen, float32(muzzle.X), float32(muzzle.Y), float32(reach.X), float32(reach.Y), 1, withAlpha(colornames.Lightgrey, 0x90), true)
}

func withAlpha(c color.RGBA, a uint8) color.RGBA {
	// RGBA is premultiplied
	scale := func(v uint8) uint8 { return uint8(uint16(v) * uint16(a) / 0xff) }
	return color.RGBA{R: scale(c.R), G: scale(c.G), B: scale(c.B), A: a}
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	s := g.sim
	l := s.Launcher()
	hud := fmt.Sprintf("%s   balls: %d   score: %d   time: %.1f / %.1f   angle: %.0f   power: %.2f",
		s.Level().Name, s.Attempts(), s.Score(), s.Elapsed(), s.Level().ParTime,
		l.Angle()*180/math.Pi, l.Magnitude())
	ebitenutil.DebugPrintAt(screen, hud, 8, 4)
	if g.best != nil {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("best: %d in %.1fs", g.best.BestScore, g.best.BestTime), 8, 20)
	}
	if g.debug {
		ball := s.Ball()
		v := ball.Body().Velocity()
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("ball %s at %.1f,%.1f v=%.2f,%.2f steps=%d fps=%.1f",
			ball.State(), ball.Center().X, ball.Center().Y, v.X, v.Y, s.World().Steps(), ebiten.ActualFPS()),
			8, common.BaseHeight-20)
	}
}
