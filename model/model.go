package model

// LegendSlots is the number of legend positions on a KLE key face.
//
// Legends are indexed as follows:
//
//	+-----------+
//	| 0 | 1 | 2 | Top row
//	| 3 | 4 | 5 | Middle row
//	| 6 | 7 | 8 | Bottom row
//	| 9 |10 |11 | Front face
//	+-----------+
const LegendSlots = 12

type Layer string

const (
	LayerBase   Layer = "base"
	LayerLower  Layer = "lower"
	LayerRaise  Layer = "raise"
	LayerAdjust Layer = "adjust"
)

// Layers lists layers in the order they appear in the generated keymap.
var Layers = []Layer{LayerBase, LayerLower, LayerRaise, LayerAdjust}

var layerSlots = map[Layer]int{
	LayerBase:   4, // center
	LayerLower:  6, // bottom-left
	LayerRaise:  2, // top-right
	LayerAdjust: 8, // bottom-right
}

// Slot returns the legend index that supplies keys for the layer, or -1 for an unknown layer.
func (l Layer) Slot() int {
	if slot, ok := layerSlots[l]; ok {
		return slot
	}

	return -1
}

// Keycode is a KMK keycode name without the "KC." prefix.
type Keycode string

const (
	KeycodeNone        Keycode = "NO"
	KeycodeTransparent Keycode = "TRNS"
)

// Geometry is the position of a key on the KLE canvas, in key units.
type Geometry struct {
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	Width     float64 `json:"width"`
	Height    float64 `json:"height"`
	Rotation  float64 `json:"rotation"`
	RotationX float64 `json:"rotation_x"`
	RotationY float64 `json:"rotation_y"`
}

type PhysicalKey struct {
	Index    int                 `json:"index"`
	Legends  [LegendSlots]string `json:"legends"`
	Geometry Geometry            `json:"geometry"`
}

// KeymapMatrix holds one keycode per key for every layer, in key order.
type KeymapMatrix map[Layer][]Keycode
