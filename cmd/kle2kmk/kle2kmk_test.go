package kle2kmk

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dasdy/kle2kmk/db"
	"github.com/dasdy/kle2kmk/keymap"
	"github.com/dasdy/kle2kmk/logging"
	"github.com/dasdy/kle2kmk/model"
	"github.com/dasdy/kle2kmk/normalize"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer

	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)

	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.ExecuteContext(context.Background())

	return out.String(), err
}

func TestHelp(t *testing.T) {
	dir := t.TempDir()
	cache := filepath.Join(dir, "cache")
	out := filepath.Join(dir, "keymap.py")

	help, err := execute(t, "--help", "--cache-dir", cache, "--out", out)

	require.NoError(t, err)
	assert.Contains(t, help, "kle2kmk [input]")
	assert.Contains(t, help, "--out")
	assert.Contains(t, help, "preview")
	assert.Contains(t, help, "lower   bottom left legend")
	assert.Contains(t, help, "adjust  bottom right legend")

	assert.NoFileExists(t, out)
	assert.NoDirExists(t, cache)
}

func TestInitLogging(t *testing.T) {
	previous := slog.Default()

	t.Cleanup(func() {
		slog.SetDefault(previous)

		verbose = false
	})

	slog.SetDefault(logging.NewLogger(io.Discard, slog.LevelInfo))

	verbose = false
	initLogging()
	assert.False(t, slog.Default().Enabled(context.Background(), slog.LevelDebug))

	verbose = true
	initLogging()
	assert.True(t, slog.Default().Enabled(context.Background(), slog.LevelDebug))
}

func TestCheck(t *testing.T) {
	matrix := model.KeymapMatrix{
		model.LayerBase:   {"A", "B", "C"},
		model.LayerLower:  {"N1", model.KeycodeTransparent, "N3"},
		model.LayerRaise:  {model.KeycodeTransparent, model.KeycodeTransparent, model.KeycodeTransparent},
		model.LayerAdjust: {"RESET", model.KeycodeTransparent, model.KeycodeTransparent},
	}

	path := filepath.Join(t.TempDir(), "keymap.py")
	require.NoError(t, keymap.WriteFile(path, keymap.Format(matrix, 3)))

	out, err := execute(t, "check", path)

	require.NoError(t, err)
	assert.Contains(t, out, "4 layers")
	assert.Contains(t, out, "lower      3 keys,   1 transparent")
	assert.Contains(t, out, "raise      3 keys,   3 transparent")
}

func TestCheck_MissingFile(t *testing.T) {
	_, err := execute(t, "check", filepath.Join(t.TempDir(), "nope.py"))

	assert.Error(t, err)
}

func TestCacheClear(t *testing.T) {
	dir := t.TempDir()

	storage, err := db.NewStorageFromPath(filepath.Join(dir, cacheFileName))
	require.NoError(t, err)
	require.NoError(t, storage.Put("digest", []byte("[]")))
	storage.Close()

	out, err := execute(t, "cache", "clear", "--cache-dir", dir)

	require.NoError(t, err)
	assert.Contains(t, out, "removed 1 cached layouts")

	out, err = execute(t, "cache", "clear", "--cache-dir", t.TempDir())

	require.NoError(t, err)
	assert.Contains(t, out, "no cache at")
}

func TestReport(t *testing.T) {
	t.Run("normalizer diagnostic", func(t *testing.T) {
		var out bytes.Buffer

		report(&out, &normalize.Error{Stage: "npm run", Stderr: "SyntaxError: bad layout", Err: errors.New("exit status 1")})

		assert.Equal(t, "SyntaxError: bad layout\n", out.String())
	})

	t.Run("plain error", func(t *testing.T) {
		var out bytes.Buffer

		report(&out, errors.New("boom"))

		assert.Empty(t, out.String())
	})
}

func TestInputArg(t *testing.T) {
	assert.Equal(t, "kle.json", inputArg(nil))
	assert.Equal(t, "board.json", inputArg([]string{"board.json"}))
}
