package components_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dasdy/kle2kmk/layout"
	"github.com/dasdy/kle2kmk/model"
	"github.com/dasdy/kle2kmk/web/components"
)

func TestToTransform(t *testing.T) {
	tests := []struct {
		name     string
		location model.Geometry
		want     string
	}{
		{
			name:     "zero translation",
			location: model.Geometry{X: 0, Y: 0},
			want:     "translate(0.00, 0.00)",
		},
		{
			name:     "positive translation",
			location: model.Geometry{X: 1, Y: 2},
			want:     "translate(80.00, 160.00)",
		},
		{
			name:     "rotation around origin",
			location: model.Geometry{X: 1, Y: 2, Rotation: 15, RotationX: 3, RotationY: 1},
			want:     "rotate(15.00, 240.00, 80.00) translate(80.00, 160.00)",
		},
		{
			name:     "negative values",
			location: model.Geometry{X: -1.5, Y: -2.5, Rotation: -90},
			want:     "rotate(-90.00, 0.00, 0.00) translate(-120.00, -200.00)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, components.ToTransform(&tt.location))
		})
	}
}

func TestLayerView_ViewBoxSize(t *testing.T) {
	tests := []struct {
		name     string
		layer    components.LayerView
		wantSize string
	}{
		{
			name:     "empty layer",
			layer:    components.LayerView{},
			wantSize: "0 0 0 0",
		},
		{
			name: "unit keys",
			layer: components.LayerView{Items: []components.Item{
				{Location: model.Geometry{X: 0, Y: 0, Width: 1, Height: 1}},
				{Location: model.Geometry{X: 2, Y: 1, Width: 1, Height: 1}},
			}},
			wantSize: "0 0 240 160",
		},
		{
			name: "wide key and missing size",
			layer: components.LayerView{Items: []components.Item{
				{Location: model.Geometry{X: 0, Y: 0, Width: 2.25, Height: 1}},
				{Location: model.Geometry{X: 0, Y: 1}},
			}},
			wantSize: "0 0 180 160",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantSize, tt.layer.ViewBoxSize())
		})
	}
}

func TestLayersPage(t *testing.T) {
	rc := components.RenderContext{
		RowWidth: 2,
		Selected: model.LayerLower,
		Layers: []components.LayerView{
			{
				Name: model.LayerLower,
				Items: []components.Item{
					{Index: 0, Legend: "<", Keycode: "LABK", Label: "<", Location: model.Geometry{Width: 1, Height: 1}},
					{Index: 1, Keycode: model.KeycodeTransparent, Label: "▽", Transparent: true, Location: model.Geometry{X: 1, Width: 1, Height: 1}},
				},
			},
		},
	}

	var buf bytes.Buffer

	require.NoError(t, components.LayersPage(&rc).Render(context.Background(), &buf))

	html := buf.String()
	assert.Contains(t, html, "<h2>lower</h2>")
	assert.Contains(t, html, `href="/layer?name=lower" class="selected"`)
	assert.Contains(t, html, "&lt;")
	assert.NotContains(t, html, "><</text>")
	assert.Contains(t, html, `class="key transparent"`)
	assert.Contains(t, html, "row width: 2")
}

func TestLayersPage_KeyClasses(t *testing.T) {
	tests := []struct {
		name      string
		item      components.Item
		wantClass string
	}{
		{
			name:      "aliased code without glyph",
			item:      components.Item{Legend: "!", Keycode: "EXLM", Label: layout.KeyLabel("EXLM")},
			wantClass: `class="key"`,
		},
		{
			name:      "legend used verbatim",
			item:      components.Item{Legend: "mo(3)", Keycode: "MO(3)", Label: layout.KeyLabel("MO(3)"), Fallback: true},
			wantClass: `class="key verbatim"`,
		},
		{
			name:      "empty base key",
			item:      components.Item{Keycode: model.KeycodeNone},
			wantClass: `class="key none"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rc := components.RenderContext{
				RowWidth: 1,
				Layers:   []components.LayerView{{Name: model.LayerBase, Items: []components.Item{tt.item}}},
			}

			var buf bytes.Buffer

			require.NoError(t, components.LayersPage(&rc).Render(context.Background(), &buf))
			assert.Contains(t, buf.String(), tt.wantClass+" data-index")
		})
	}
}
