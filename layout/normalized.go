package layout

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/dasdy/kle2kmk/model"
)

// KLEKey is a key as serialized by kle-serial. Only the fields used downstream are decoded.
type KLEKey struct {
	Labels    []*string `json:"labels"`
	X         float64   `json:"x"`
	Y         float64   `json:"y"`
	Width     float64   `json:"width"`
	Height    float64   `json:"height"`
	RotationX float64   `json:"rotation_x"`
	RotationY float64   `json:"rotation_y"`
	Rotation  float64   `json:"rotation_angle"`
}

// DecodeNormalized reads the kle-serial key list and converts it into physical keys in layout order.
func DecodeNormalized(reader io.Reader) ([]model.PhysicalKey, error) {
	decoder := json.NewDecoder(reader)

	var keys []KLEKey

	if err := decoder.Decode(&keys); err != nil {
		return nil, fmt.Errorf("could not decode normalized layout JSON: %w", err)
	}

	result := make([]model.PhysicalKey, 0, len(keys))

	for i, key := range keys {
		result = append(result, model.PhysicalKey{
			Index:   i,
			Legends: PadLegends(key.Labels),
			Geometry: model.Geometry{
				X:         key.X,
				Y:         key.Y,
				Width:     key.Width,
				Height:    key.Height,
				Rotation:  key.Rotation,
				RotationX: key.RotationX,
				RotationY: key.RotationY,
			},
		})
	}

	return result, nil
}

// PadLegends fits a label list into the fixed legend grid. Missing and null labels become
// empty strings; labels past the last slot are dropped.
func PadLegends(labels []*string) [model.LegendSlots]string {
	var legends [model.LegendSlots]string

	for i, label := range labels {
		if i >= model.LegendSlots {
			break
		}

		if label != nil {
			legends[i] = *label
		}
	}

	return legends
}
