package components

import (
	"fmt"
	"math"

	"github.com/dasdy/kle2kmk/model"
)

// KeyUnit is the size of one KLE key unit in SVG pixels.
const KeyUnit = 80

type Item struct {
	Index       int
	Legend      string
	Keycode     model.Keycode
	Label       string
	Transparent bool
	// Fallback is set when no alias matched and the legend text became the keycode.
	Fallback    bool
	Location    model.Geometry
}

type LayerView struct {
	Name  model.Layer
	Items []Item
}

type RenderContext struct {
	RowWidth int
	Layers   []LayerView
	// Selected is empty when all layers are shown.
	Selected model.Layer
}

// ToTransform places a key on the canvas. KLE rotates keys around (rotation_x, rotation_y)
// in canvas coordinates, before the key offset is applied.
func ToTransform(location *model.Geometry) string {
	translate := fmt.Sprintf("translate(%.2f, %.2f)", location.X*KeyUnit, location.Y*KeyUnit)

	if location.Rotation == 0 {
		return translate
	}

	return fmt.Sprintf("rotate(%.2f, %.2f, %.2f) %s",
		location.Rotation, location.RotationX*KeyUnit, location.RotationY*KeyUnit, translate)
}

func keySize(v float64) float64 {
	if v <= 0 {
		return 1
	}

	return v
}

// ViewBoxSize returns an SVG viewBox that fits all items of the layer.
func (l *LayerView) ViewBoxSize() string {
	maxX, maxY := 0.0, 0.0

	for _, item := range l.Items {
		maxX = math.Max(maxX, item.Location.X+keySize(item.Location.Width))
		maxY = math.Max(maxY, item.Location.Y+keySize(item.Location.Height))
	}

	return fmt.Sprintf("0 0 %.0f %.0f", maxX*KeyUnit, maxY*KeyUnit)
}
