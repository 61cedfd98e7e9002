package logging_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/dasdy/kle2kmk/logging"
	"github.com/stretchr/testify/assert"
)

func TestAppendCtx(t *testing.T) {
	t.Run("accumulates attributes", func(t *testing.T) {
		ctx := logging.PackageCtx("convert")
		ctx = logging.AppendCtx(ctx, slog.Int("keys", 3))

		assert.Equal(t, []slog.Attr{
			slog.String(logging.PackageName, "convert"),
			slog.Int("keys", 3),
		}, logging.Attrs(ctx))
	})

	t.Run("siblings do not share attributes", func(t *testing.T) {
		parent := logging.AppendCtx(context.Background(), slog.String("a", "1"))
		parent = logging.AppendCtx(parent, slog.String("b", "2"))

		left := logging.AppendCtx(parent, slog.String("left", "x"))
		right := logging.AppendCtx(parent, slog.String("right", "y"))

		assert.Len(t, logging.Attrs(left), 3)
		assert.Equal(t, "left", logging.Attrs(left)[2].Key)
		assert.Equal(t, "right", logging.Attrs(right)[2].Key)
	})
}

func TestContextHandler(t *testing.T) {
	var buf bytes.Buffer

	logger := slog.New(logging.ContextHandler{Handler: slog.NewTextHandler(&buf, nil)})

	logger.InfoContext(logging.PackageCtx("normalize"), "hello", "keys", 8)

	assert.Contains(t, buf.String(), "package=normalize")
	assert.Contains(t, buf.String(), "keys=8")
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer

	logger := logging.NewLogger(&buf, slog.LevelInfo)

	logger.Debug("hidden")
	logger.InfoContext(logging.PackageCtx("keymap"), "shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
	assert.Contains(t, buf.String(), "keymap")
}
