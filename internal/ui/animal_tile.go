package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

// AnimalTile is a tappable image with a caption. Tapping it calls the shared
// activation handler with the tile's label, like a click on an image with alt text.
type AnimalTile struct {
	widget.BaseWidget

	label      string
	image      *canvas.Image
	caption    *widget.Label
	onActivate func(label string)
}

// NewAnimalTile creates a tile for label showing res
func NewAnimalTile(label, caption string, res fyne.Resource, onActivate func(label string)) *AnimalTile {
	img := canvas.NewImageFromResource(res)
	img.FillMode = canvas.ImageFillContain
	img.SetMinSize(fyne.NewSize(TileImageSize, TileImageSize))

	captionLabel := widget.NewLabel(caption)
	captionLabel.Alignment = fyne.TextAlignCenter

	t := &AnimalTile{
		label:      label,
		image:      img,
		caption:    captionLabel,
		onActivate: onActivate,
	}
	t.ExtendBaseWidget(t)
	return t
}

// Label returns the animal name the tile dispatches with
func (t *AnimalTile) Label() string {
	return t.label
}

// Caption returns the visible caption
func (t *AnimalTile) Caption() string {
	return t.caption.Text
}

// Tapped implements fyne.Tappable. Fyne's mobile driver delivers taps
// through this method too.
func (t *AnimalTile) Tapped(*fyne.PointEvent) {
	if t.onActivate != nil {
		t.onActivate(t.label)
	}
}

// Cursor shows a pointer over the tile on desktop
func (t *AnimalTile) Cursor() desktop.Cursor {
	return desktop.PointerCursor
}

// MinSize keeps tiles from collapsing in narrow grids
func (t *AnimalTile) MinSize() fyne.Size {
	size := t.BaseWidget.MinSize()
	if size.Width < TileMinWidth {
		size.Width = TileMinWidth
	}
	return size
}

// CreateRenderer creates the widget renderer
func (t *AnimalTile) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(container.NewBorder(nil, t.caption, nil, nil, t.image))
}
