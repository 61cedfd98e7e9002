package web_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dasdy/kle2kmk/convert"
	"github.com/dasdy/kle2kmk/model"
	"github.com/dasdy/kle2kmk/web"
)

func testResult() *convert.Result {
	var legends [model.LegendSlots]string

	legends[model.LayerBase.Slot()] = "A"

	return &convert.Result{
		RowWidth: 1,
		Keys:     []model.PhysicalKey{{Index: 0, Legends: legends, Geometry: model.Geometry{Width: 1, Height: 1}}},
		Matrix: model.KeymapMatrix{
			model.LayerBase:   {"A"},
			model.LayerLower:  {model.KeycodeTransparent},
			model.LayerRaise:  {model.KeycodeTransparent},
			model.LayerAdjust: {model.KeycodeTransparent},
		},
		Keymap: []byte("def get_keymap():\n    return []\n"),
	}
}

func get(t *testing.T, server *httptest.Server, path string) (*http.Response, string) {
	t.Helper()

	resp, err := http.Get(server.URL + path)
	require.NoError(t, err)

	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return resp, string(body)
}

func TestBuildServer(t *testing.T) {
	server := httptest.NewServer(web.BuildServer(testResult(), false))
	defer server.Close()

	t.Run("index", func(t *testing.T) {
		resp, body := get(t, server, "/")

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Contains(t, body, "<h2>adjust</h2>")
		assert.Empty(t, resp.Header.Get("Cache-Control"))
	})

	t.Run("layer", func(t *testing.T) {
		resp, body := get(t, server, "/layer?name=base")

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Contains(t, body, "<h2>base</h2>")
		assert.NotContains(t, body, "<h2>adjust</h2>")
	})

	t.Run("keymap source", func(t *testing.T) {
		resp, body := get(t, server, "/keymap.py")

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "def get_keymap():\n    return []\n", body)
	})

	t.Run("unknown path", func(t *testing.T) {
		resp, _ := get(t, server, "/nope")

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestBuildServer_DevMode(t *testing.T) {
	server := httptest.NewServer(web.BuildServer(testResult(), true))
	defer server.Close()

	resp, _ := get(t, server, "/")

	assert.Equal(t, "no-store", resp.Header.Get("Cache-Control"))
}
