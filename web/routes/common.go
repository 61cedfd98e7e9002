package routes

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/a-h/templ"

	"github.com/dasdy/kle2kmk/keycode"
	"github.com/dasdy/kle2kmk/layout"
	"github.com/dasdy/kle2kmk/model"
	cs "github.com/dasdy/kle2kmk/web/components"
)

// ServerHandler holds the converted layout served by the preview.
type ServerHandler struct {
	Keys     []model.PhysicalKey
	Matrix   model.KeymapMatrix
	RowWidth int
}

// SafeRenderTemplate safely renders a templ component to an http.ResponseWriter.
func SafeRenderTemplate(component templ.Component, w http.ResponseWriter) error {
	// Do not write to w because it implies 200 status
	var buf bytes.Buffer

	err := component.Render(context.Background(), &buf)
	if err != nil {
		return fmt.Errorf("could not render template: %w", err)
	}

	// Template executed successfully to the buffer.
	// Now, copy it over to the ResponseWriter
	// This implies a 200 OK status code
	w.Header().Set("Content-Type", "text/html; charset=UTF-8")

	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response", "error", err)

		return fmt.Errorf("could not write to response writer: %w", err)
	}

	return nil
}

// BuildLayerView pairs every key's legend with what it resolved to on the layer.
func (s *ServerHandler) BuildLayerView(layer model.Layer) cs.LayerView {
	codes := s.Matrix[layer]
	items := make([]cs.Item, 0, len(s.Keys))

	for i, key := range s.Keys {
		code := model.KeycodeNone
		if i < len(codes) {
			code = codes[i]
		}

		legend := layout.Legend(key, layer)

		items = append(items, cs.Item{
			Index:       key.Index,
			Legend:      legend,
			Keycode:     code,
			Label:       layout.KeyLabel(code),
			Transparent: code == model.KeycodeTransparent,
			Fallback:    !keycode.Known(legend),
			Location:    key.Geometry,
		})
	}

	return cs.LayerView{Name: layer, Items: items}
}

// BuildRenderContext builds the page for one layer, or for all of them when layer is empty.
func (s *ServerHandler) BuildRenderContext(layer model.Layer) cs.RenderContext {
	rc := cs.RenderContext{RowWidth: s.RowWidth, Selected: layer}

	for _, l := range model.Layers {
		if layer != "" && l != layer {
			// still listed in the nav, without keys
			rc.Layers = append(rc.Layers, cs.LayerView{Name: l})

			continue
		}

		rc.Layers = append(rc.Layers, s.BuildLayerView(l))
	}

	return rc
}
