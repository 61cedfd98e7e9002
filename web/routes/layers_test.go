package routes_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dasdy/kle2kmk/model"
	"github.com/dasdy/kle2kmk/web/routes"
)

func testHandler() *routes.ServerHandler {
	var esc, q [model.LegendSlots]string

	esc[model.LayerBase.Slot()] = "Esc"
	q[model.LayerBase.Slot()] = "Q"
	q[model.LayerLower.Slot()] = "1"

	return &routes.ServerHandler{
		Keys: []model.PhysicalKey{
			{Index: 0, Legends: esc, Geometry: model.Geometry{Width: 1, Height: 1}},
			{Index: 1, Legends: q, Geometry: model.Geometry{X: 1, Width: 1, Height: 1}},
		},
		Matrix: model.KeymapMatrix{
			model.LayerBase:   {"ESC", "Q"},
			model.LayerLower:  {model.KeycodeTransparent, "N1"},
			model.LayerRaise:  {model.KeycodeTransparent, model.KeycodeTransparent},
			model.LayerAdjust: {model.KeycodeTransparent, model.KeycodeTransparent},
		},
		RowWidth: 2,
	}
}

func TestBuildLayerView(t *testing.T) {
	view := testHandler().BuildLayerView(model.LayerLower)

	require.Len(t, view.Items, 2)
	assert.Equal(t, model.LayerLower, view.Name)
	assert.True(t, view.Items[0].Transparent)
	assert.Empty(t, view.Items[0].Legend)
	assert.Equal(t, "1", view.Items[1].Legend)
	assert.Equal(t, model.Keycode("N1"), view.Items[1].Keycode)
	assert.InDelta(t, 1.0, view.Items[1].Location.X, 0.0001)
}

func TestBuildLayerView_Fallback(t *testing.T) {
	var bang, word [model.LegendSlots]string

	bang[model.LayerBase.Slot()] = "!"
	word[model.LayerBase.Slot()] = "mo(3)"

	handler := &routes.ServerHandler{
		Keys:     []model.PhysicalKey{{Index: 0, Legends: bang}, {Index: 1, Legends: word}},
		Matrix:   model.KeymapMatrix{model.LayerBase: {"EXLM", "MO(3)"}},
		RowWidth: 2,
	}

	view := handler.BuildLayerView(model.LayerBase)

	require.Len(t, view.Items, 2)
	assert.False(t, view.Items[0].Fallback)
	assert.True(t, view.Items[1].Fallback)
}

func TestBuildLayerView_ShortMatrix(t *testing.T) {
	handler := testHandler()
	handler.Matrix[model.LayerAdjust] = nil

	view := handler.BuildLayerView(model.LayerAdjust)

	require.Len(t, view.Items, 2)
	assert.Equal(t, model.KeycodeNone, view.Items[0].Keycode)
}

func TestBuildRenderContext(t *testing.T) {
	handler := testHandler()

	t.Run("all layers", func(t *testing.T) {
		rc := handler.BuildRenderContext("")

		require.Len(t, rc.Layers, 4)

		for _, layer := range rc.Layers {
			assert.Len(t, layer.Items, 2, layer.Name)
		}
	})

	t.Run("one layer", func(t *testing.T) {
		rc := handler.BuildRenderContext(model.LayerRaise)

		require.Len(t, rc.Layers, 4)
		assert.Equal(t, model.LayerRaise, rc.Selected)
		assert.Empty(t, rc.Layers[0].Items)
		assert.Len(t, rc.Layers[2].Items, 2)
	})
}

func TestLayersHandle(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	testHandler().LayersHandle(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=UTF-8", rec.Header().Get("Content-Type"))

	body := rec.Body.String()
	for _, layer := range model.Layers {
		assert.Contains(t, body, "<h2>"+string(layer)+"</h2>")
	}
}

func TestLayerHandle(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		wantStatus int
		wantBody   string
		skipBody   string
	}{
		{
			name:       "known layer",
			target:     "/layer?name=lower",
			wantStatus: http.StatusOK,
			wantBody:   "<h2>lower</h2>",
			skipBody:   "<h2>base</h2>",
		},
		{
			name:       "unknown layer",
			target:     "/layer?name=fn",
			wantStatus: http.StatusNotFound,
			wantBody:   "unknown layer fn",
		},
		{
			name:       "missing name",
			target:     "/layer",
			wantStatus: http.StatusNotFound,
			wantBody:   "unknown layer",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			rec := httptest.NewRecorder()

			testHandler().LayerHandle(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)

			if tt.skipBody != "" {
				assert.NotContains(t, rec.Body.String(), tt.skipBody)
			}
		})
	}
}
