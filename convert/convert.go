// Package convert runs the whole KLE to KMK pipeline: read, normalize, resolve, render, write.
package convert

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/dasdy/kle2kmk/keycode"
	"github.com/dasdy/kle2kmk/keymap"
	"github.com/dasdy/kle2kmk/layout"
	"github.com/dasdy/kle2kmk/logging"
	"github.com/dasdy/kle2kmk/model"
	"github.com/dasdy/kle2kmk/normalize"
)

var (
	ErrInputMissing = errors.New("input file does not exist")
	ErrVerify       = errors.New("rendered keymap does not match resolved layers")
)

type Options struct {
	Input  string
	Output string
	// Verify parses the rendered module back before writing it.
	Verify     bool
	Normalizer normalize.Normalizer
}

type Result struct {
	RowWidth int
	Keys     []model.PhysicalKey
	Matrix   model.KeymapMatrix
	Keymap   []byte
	// Fallbacks lists legends that had no alias and were used upper-cased.
	Fallbacks []string
}

// Load reads and normalizes the input and resolves every layer, without writing anything.
func Load(ctx context.Context, input string, normalizer normalize.Normalizer) (*Result, error) {
	ctx = logging.AppendCtx(ctx, slog.String(logging.PackageName, "convert"))

	if _, err := os.Stat(input); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrInputMissing, input)
		}

		return nil, fmt.Errorf("could not stat %s: %w", input, err)
	}

	document, err := layout.ReadDocument(input)
	if err != nil {
		return nil, err
	}

	rowWidth, err := layout.InferRowWidth(document)
	if err != nil {
		return nil, fmt.Errorf("could not read layout %s: %w", input, err)
	}

	slog.InfoContext(ctx, "Read layout", "input", input, "row_width", rowWidth)

	keys, err := normalizer.Normalize(ctx, document)
	if err != nil {
		return nil, err
	}

	matrix, fallbacks := BuildMatrix(keys, rowWidth)

	for _, legend := range fallbacks {
		slog.DebugContext(ctx, "Legend has no alias, using it verbatim", "legend", legend)
	}

	slog.InfoContext(ctx, "Resolved layers", "keys", len(keys), "layers", len(matrix), "fallbacks", len(fallbacks))

	return &Result{
		RowWidth:  rowWidth,
		Keys:      keys,
		Matrix:    matrix,
		Keymap:    keymap.Format(matrix, rowWidth),
		Fallbacks: fallbacks,
	}, nil
}

// Run converts opts.Input into opts.Output. The output is written only once everything succeeded.
func Run(ctx context.Context, opts Options) (*Result, error) {
	result, err := Load(ctx, opts.Input, opts.Normalizer)
	if err != nil {
		return nil, err
	}

	if opts.Verify {
		if err := Verify(result.Keymap, result.Matrix); err != nil {
			return nil, err
		}
	}

	if err := keymap.WriteFile(opts.Output, result.Keymap); err != nil {
		return nil, err
	}

	slog.InfoContext(logging.PackageCtx("convert"), "Wrote keymap", "output", opts.Output)

	return result, nil
}

// BuildMatrix resolves every legend of every layer. The second result holds the distinct
// legends that fell back to their upper-cased text, in first-seen order.
func BuildMatrix(keys []model.PhysicalKey, rowWidth int) (model.KeymapMatrix, []string) {
	resolver := keycode.NewResolver(rowWidth)
	legends := layout.Extract(keys)

	matrix := make(model.KeymapMatrix, len(model.Layers))
	seen := make(map[string]bool)

	var fallbacks []string

	for _, layer := range model.Layers {
		codes := make([]model.Keycode, 0, len(keys))

		for index, legend := range legends[layer] {
			if !keycode.Known(legend) && !seen[legend] {
				seen[legend] = true
				fallbacks = append(fallbacks, legend)
			}

			codes = append(codes, resolver.Resolve(legend, layer, index))
		}

		matrix[layer] = codes
	}

	return matrix, fallbacks
}

// Verify parses the rendered module and checks it holds exactly the resolved layers.
func Verify(source []byte, matrix model.KeymapMatrix) error {
	parsed, err := keymap.Parse(bytes.NewReader(source))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrVerify, err)
	}

	if len(parsed.Layers) != len(model.Layers) {
		return fmt.Errorf("%w: expected %d layers, got %d", ErrVerify, len(model.Layers), len(parsed.Layers))
	}

	for i, l := range parsed.Layers {
		expected := model.Layers[i]
		if l.Name != string(expected) {
			return fmt.Errorf("%w: layer %d is %q, expected %q", ErrVerify, i, l.Name, expected)
		}

		codes := matrix[expected]
		if len(l.Bindings) != len(codes) {
			return fmt.Errorf("%w: layer %s has %d keys, expected %d", ErrVerify, expected, len(l.Bindings), len(codes))
		}

		for j := range codes {
			if l.Bindings[j] != codes[j] {
				return fmt.Errorf("%w: layer %s key %d is %s, expected %s", ErrVerify, expected, j, l.Bindings[j], codes[j])
			}
		}
	}

	return nil
}
