package routes

import (
	"log/slog"
	"net/http"
	"slices"

	"github.com/dasdy/kle2kmk/model"
	cs "github.com/dasdy/kle2kmk/web/components"
)

// LayersHandle shows all four layers.
func (s *ServerHandler) LayersHandle(w http.ResponseWriter, _ *http.Request) {
	slog.Info("Got request to layers page")

	renderContext := s.BuildRenderContext("")

	if err := SafeRenderTemplate(cs.LayersPage(&renderContext), w); err != nil {
		slog.Error("Could not render layers page", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// LayerHandle shows the layer given by the "name" query parameter.
func (s *ServerHandler) LayerHandle(w http.ResponseWriter, r *http.Request) {
	name := model.Layer(r.URL.Query().Get("name"))

	slog.Info("Got request to layer page", "layer", name)

	if !slices.Contains(model.Layers, name) {
		http.Error(w, "unknown layer "+string(name), http.StatusNotFound)

		return
	}

	renderContext := s.BuildRenderContext(name)

	if err := SafeRenderTemplate(cs.LayersPage(&renderContext), w); err != nil {
		slog.Error("Could not render layer page", "layer", name, "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
