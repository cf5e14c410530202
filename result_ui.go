package main

import (
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"github.com/milk9111/puzzlepath/common"
	"github.com/milk9111/puzzlepath/system"
)

// NewResultUI builds the centered panel shown when a level ends: the score
// breakdown, then buttons to continue or retry. Buttons use colored
// nine-slices and the built-in basic font so no theme assets are needed.
func NewResultUI(g *Game) *ebitenui.UI {
	panelImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 200})
	btnImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 255})
	btnHover := imageui.NewNineSliceColor(color.NRGBA{R: 0x55, G: 0x55, B: 0x55, A: 255})

	goFace := ebtext.NewGoXFace(basicfont.Face7x13)
	var face ebtext.Face = goFace

	white := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	btnTextColor := &widget.ButtonTextColor{Idle: white}
	centered := widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})

	label := func(s string) *widget.Text {
		return widget.NewText(
			widget.TextOpts.Text(s, &face, white),
			widget.TextOpts.WidgetOpts(centered),
		)
	}
	button := func(s string, onClick func()) *widget.Button {
		return widget.NewButton(
			widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Hover: btnHover, Pressed: btnImg}),
			widget.ButtonOpts.Text(s, &face, btnTextColor),
			widget.ButtonOpts.WidgetOpts(centered),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				onClick()
			}),
		)
	}

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(8),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 20, Bottom: 20, Left: 30, Right: 30}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(common.BaseWidth/2, common.BaseHeight/2),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionCenter, VerticalPosition: widget.AnchorLayoutPositionCenter}),
		),
	)

	for _, line := range resultLines(g.result, g.cfg.Scoring.TreasureBonus, g.cfg.Scoring.AttemptBonus, g.cfg.Scoring.ParBonus) {
		panel.AddChild(label(line))
	}
	if g.newBest {
		panel.AddChild(label("New best score!"))
	}

	if g.result.Completed {
		next := "Next level"
		if g.index+1 >= len(g.playlist) {
			next = "Finish"
		}
		panel.AddChild(button(next, g.advance))
	}
	panel.AddChild(button("Retry", g.retry))
	panel.AddChild(button(soundLabel(g.cfg.Preferences.PlaySounds), func() {
		g.toggleSounds()
		g.overlay = NewResultUI(g)
	}))
	panel.AddChild(button("Quit", func() { g.quit = true }))

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(panel)

	return &ebitenui.UI{Container: root}
}

// resultLines is the score breakdown shown on the result panel.
func resultLines(r system.Result, treasureBonus, attemptBonus, parBonus int) []string {
	if !r.Completed {
		return []string{
			"Out of balls",
			fmt.Sprintf("Treasures: %d/%d", r.TreasuresCollected, r.TreasuresInLevel),
			fmt.Sprintf("Score: %d", r.Score),
		}
	}
	lines := []string{
		"Level complete",
		fmt.Sprintf("Treasures: %d/%d  x%d", r.TreasuresCollected, r.TreasuresInLevel, treasureBonus),
		fmt.Sprintf("Balls left: %d  x%d", r.AttemptsLeft, attemptBonus),
		fmt.Sprintf("Time: %.2fs  (par %.2fs)", r.TimeSpent, r.ParTime),
	}
	if r.ParMet {
		lines = append(lines, fmt.Sprintf("Par bonus: %d", parBonus))
	}
	return append(lines, fmt.Sprintf("Score: %d", r.Score))
}

func soundLabel(on bool) string {
	if on {
		return "Sound: on"
	}
	return "Sound: off"
}
