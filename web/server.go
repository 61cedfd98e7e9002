package web

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/dasdy/kle2kmk/convert"
	"github.com/dasdy/kle2kmk/web/routes"
)

func disableCacheInDevMode(dev bool, next http.Handler) http.Handler {
	if !dev {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "no-store")
		next.ServeHTTP(w, r)
	})
}

func BuildServer(result *convert.Result, dev bool) *http.ServeMux {
	mux := http.NewServeMux()

	handler := routes.ServerHandler{
		Keys:     result.Keys,
		Matrix:   result.Matrix,
		RowWidth: result.RowWidth,
	}

	mux.Handle("/layer", disableCacheInDevMode(dev, http.HandlerFunc(handler.LayerHandle)))
	mux.Handle("/keymap.py", disableCacheInDevMode(dev, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/x-python; charset=UTF-8")

		if _, err := w.Write(result.Keymap); err != nil {
			slog.Error("Failed to write keymap", "error", err)
		}
	})))
	mux.Handle("/{$}", disableCacheInDevMode(dev, http.HandlerFunc(handler.LayersHandle)))

	return mux
}

func StartServer(port int, result *convert.Result, dev bool) error {
	slog.Info("Running preview", "url", fmt.Sprintf("http://localhost:%d/", port))

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           BuildServer(result, dev),
		ReadHeaderTimeout: 5 * time.Second,
	}

	if err := server.ListenAndServe(); err != nil {
		return fmt.Errorf("could not run server: %w", err)
	}

	return nil
}
