package main

import (
	"image/color"

	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/emberclimb/common"
	"golang.org/x/image/font/basicfont"
)

var (
	uiTextColor   = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	uiPanelColor  = color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 200}
	uiButtonIdle  = color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff}
	uiButtonHover = color.NRGBA{R: 0x8a, G: 0x3b, B: 0x12, A: 0xff}
)

// uiFace is the built-in basic font, so menus need no font assets.
func uiFace() *ebtext.Face {
	var face ebtext.Face = ebtext.NewGoXFace(basicfont.Face7x13)
	return &face
}

func newTitle(text string, face *ebtext.Face) *widget.Text {
	return widget.NewText(
		widget.TextOpts.Text(text, face, uiTextColor),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
	)
}

func newButton(label string, face *ebtext.Face, onClick func()) *widget.Button {
	idle := imageui.NewNineSliceColor(uiButtonIdle)
	hover := imageui.NewNineSliceColor(uiButtonHover)
	return widget.NewButton(
		widget.ButtonOpts.Image(&widget.ButtonImage{Idle: idle, Hover: hover, Pressed: hover}),
		widget.ButtonOpts.Text(label, face, &widget.ButtonTextColor{Idle: uiTextColor}),
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{
			Position: widget.RowLayoutPositionCenter,
			Stretch:  true,
		})),
		widget.ButtonOpts.ClickedHandler(func(*widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

// newCenteredPanel returns the root container and the vertical panel
// centered in it.
func newCenteredPanel() (root, panel *widget.Container) {
	panel = widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(imageui.NewNineSliceColor(uiPanelColor)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(10),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 20, Bottom: 20, Left: 30, Right: 30}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(common.BaseWidth/2, 0),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)
	root = widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	root.AddChild(panel)
	return root, panel
}
