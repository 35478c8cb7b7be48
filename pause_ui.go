package main

import (
	"fmt"
	"image/color"

	"github.com/milk9111/horde/common"
	"github.com/milk9111/horde/save"
	"golang.org/x/image/font/basicfont"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
)

type menuButton struct {
	label   string
	onClick func()
}

// NewPauseUI builds a simple centered pause menu with Resume, Restart and
// Quit buttons.
func NewPauseUI(g *Game) *ebitenui.UI {
	return newMenuUI([]string{"Paused"}, []menuButton{
		{label: "Resume", onClick: g.resume},
		{label: "Restart", onClick: func() { g.restartRequested = true }},
		{label: "Quit", onClick: func() { g.quit = true }},
	})
}

// NewGameOverUI shows the finished run and offers a new one.
func NewGameOverUI(g *Game, run save.BestRun, newBest bool) *ebitenui.UI {
	lines := []string{
		"Game Over",
		fmt.Sprintf("Survived %d:%02d", run.Seconds/60, run.Seconds%60),
		fmt.Sprintf("Gems %d   Kills %d", run.Gems, run.Kills),
	}
	if newBest {
		lines = append(lines, "New best run!")
	}
	return newMenuUI(lines, []menuButton{
		{label: "Play again", onClick: func() { g.restartRequested = true }},
		{label: "Quit", onClick: func() { g.quit = true }},
	})
}

func newMenuUI(lines []string, buttons []menuButton) *ebitenui.UI {
	// semi-transparent panel background
	panelImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 200})
	btnImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 255})
	btnHover := imageui.NewNineSliceColor(color.NRGBA{R: 0x55, G: 0x55, B: 0x55, A: 255})

	goFace := ebtext.NewGoXFace(basicfont.Face7x13)
	var face ebtext.Face = goFace

	white := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	btnTextColor := &widget.ButtonTextColor{Idle: white}
	center := widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})

	// Panel with vertical layout. Set MinSize to ~50% of base resolution and center in anchor layout.
	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(10),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 20, Bottom: 20, Left: 30, Right: 30}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(common.BaseWidth/2, common.BaseHeight/2),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionCenter, VerticalPosition: widget.AnchorLayoutPositionCenter}),
		),
	)

	for _, line := range lines {
		panel.AddChild(widget.NewText(
			widget.TextOpts.Text(line, &face, white),
			widget.TextOpts.WidgetOpts(center),
		))
	}

	for _, b := range buttons {
		onClick := b.onClick
		panel.AddChild(widget.NewButton(
			widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Hover: btnHover, Pressed: btnImg}),
			widget.ButtonOpts.Text(b.label, &face, btnTextColor),
			widget.ButtonOpts.WidgetOpts(center),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				onClick()
			}),
		))
	}

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(panel)

	return &ebitenui.UI{Container: root}
}
