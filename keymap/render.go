package keymap

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/dasdy/kle2kmk/model"
)

const (
	// columnWidth keeps keys aligned regardless of keycode length.
	columnWidth = 10
	indent      = "            "
	layerIndent = "        "

	transparentAlias = "___"
)

// Format renders the matrix as a KMK keymap.py module.
func Format(matrix model.KeymapMatrix, rowWidth int) []byte {
	var buf bytes.Buffer

	// bytes.Buffer writes do not fail
	_ = Render(&buf, matrix, rowWidth)

	return buf.Bytes()
}

// Render writes the keymap module. Layers are written in model.Layers order; each layer
// is split into rows of rowWidth keys with an extra indent between the two halves.
func Render(w io.Writer, matrix model.KeymapMatrix, rowWidth int) error {
	if rowWidth < 1 {
		return fmt.Errorf("invalid row width %d", rowWidth)
	}

	var layers strings.Builder

	layers.WriteString("\n")

	for _, layer := range model.Layers {
		writeLayer(&layers, layer, matrix[layer], rowWidth)
	}

	_, err := fmt.Fprintf(w, `
from kmk.keys import KC

%s = KC.%s

def get_keymap():
    return [
        # fmt: off
        %s
        # fmt: on
    ]
`, transparentAlias, model.KeycodeTransparent, layers.String())
	if err != nil {
		return fmt.Errorf("could not write keymap: %w", err)
	}

	return nil
}

func writeLayer(sb *strings.Builder, layer model.Layer, codes []model.Keycode, rowWidth int) {
	fmt.Fprintf(sb, "%s[ # %s\n", layerIndent, layer)

	for i, code := range codes {
		offset := i % rowWidth

		if offset == 0 {
			sb.WriteString(indent)
		}

		// odd rows have no exact middle, so they are not split
		if rowWidth%2 == 0 && offset == rowWidth/2 {
			sb.WriteString(indent)
		}

		sb.WriteString(formatKey(code))

		if offset == rowWidth-1 {
			sb.WriteString("\n")
		}
	}

	sb.WriteString(layerIndent + "],\n")
}

func formatKey(code model.Keycode) string {
	if code == model.KeycodeTransparent {
		return fmt.Sprintf("%-*s", columnWidth, transparentAlias+",")
	}

	return fmt.Sprintf("%-*s", columnWidth, "KC."+string(code)+", ")
}
