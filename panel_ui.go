package main

import (
	"fmt"
	"image/color"

	"golang.org/x/image/font/basicfont"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
)

type panelLabels struct {
	mapName   *widget.Text
	algorithm *widget.Text
	grid      *widget.Text
	status    *widget.Text
}

// NewPanelUI builds the sidebar with the current map, algorithm and last
// search result plus buttons mirroring the keyboard shortcuts.
func NewPanelUI(g *Game) *ebitenui.UI {
	panelImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 200})
	btnImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 255})
	btnPressedImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x55, G: 0x55, B: 0x55, A: 255})

	goFace := ebtext.NewGoXFace(basicfont.Face7x13)
	var face ebtext.Face = goFace

	white := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	btnTextColor := &widget.ButtonTextColor{Idle: white}

	label := func(s string) *widget.Text {
		return widget.NewText(
			widget.TextOpts.Text(s, &face, white),
			widget.TextOpts.MaxWidth(sidebarWidth-40),
		)
	}
	button := func(s string, onClick func()) *widget.Button {
		return widget.NewButton(
			widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Pressed: btnPressedImg}),
			widget.ButtonOpts.Text(s, &face, btnTextColor),
			widget.ButtonOpts.TextPadding(&widget.Insets{Top: 4, Bottom: 4, Left: 8, Right: 8}),
			widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Stretch: true})),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				onClick()
			}),
		)
	}

	g.panelLabels = panelLabels{
		mapName:   label(""),
		algorithm: label(""),
		grid:      label(""),
		status:    label(""),
	}

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(8),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 20, Bottom: 20, Left: 20, Right: 20}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(sidebarWidth, baseHeight),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionEnd, VerticalPosition: widget.AnchorLayoutPositionStart}),
		),
	)
	panel.AddChild(g.panelLabels.mapName)
	panel.AddChild(g.panelLabels.algorithm)
	panel.AddChild(g.panelLabels.grid)
	panel.AddChild(g.panelLabels.status)
	panel.AddChild(button("Switch algorithm (Tab)", g.toggleAlgorithm))
	panel.AddChild(button("Copy waypoints (C)", g.copyWaypoints))
	panel.AddChild(button("Reload map (R)", g.reload))
	panel.AddChild(button("Hide panel (Esc)", func() { g.panelVisible = false }))
	panel.AddChild(label("left click: go here\nright click: teleport\nF1: debug overlay"))

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(panel)

	return &ebitenui.UI{Container: root}
}

func (g *Game) refreshPanel() {
	if g.panelLabels.mapName == nil {
		return
	}
	sizeX, sizeZ := g.world.Grid.Size()
	g.panelLabels.mapName.Label = fmt.Sprintf("Map: %s", g.world.Spec.Name)
	g.panelLabels.algorithm.Label = fmt.Sprintf("Algorithm: %s", g.algo)
	g.panelLabels.grid.Label = fmt.Sprintf("Grid: %dx%d, %d walkable", sizeX, sizeZ, g.world.Grid.WalkableCount())
	g.panelLabels.status.Label = g.status
}
