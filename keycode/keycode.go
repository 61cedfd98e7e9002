// Package keycode maps KLE legend text to KMK keycode names.
//
// Legends are matched case-sensitively against a fixed alias table. Textual names,
// common abbreviations and the usual keycap glyphs all resolve to the same keycode.
// Anything the table does not know is upper-cased and used as a keycode name as is,
// which lets a layout spell out any KMK keycode literally (e.g. "mo(3)" or "LSFT(A)").
// Numpad keys have no aliases.
package keycode

import (
	"strings"

	"github.com/dasdy/kle2kmk/model"
)

type Side string

const (
	SideLeft  Side = "L"
	SideRight Side = "R"
)

// Resolver resolves legends for a layout with a fixed row width.
type Resolver struct {
	rowWidth int
}

func NewResolver(rowWidth int) *Resolver {
	if rowWidth < 1 {
		rowWidth = 1
	}

	return &Resolver{rowWidth: rowWidth}
}

func (r *Resolver) RowWidth() int {
	return r.rowWidth
}

// Side reports which hand a key belongs to. The middle column of odd rows counts as left.
func (r *Resolver) Side(index int) Side {
	offset := index % r.rowWidth
	if offset < 0 {
		offset += r.rowWidth
	}

	if 2*offset <= r.rowWidth {
		return SideLeft
	}

	return SideRight
}

// Resolve returns the keycode for a legend on the given layer. It never fails.
func (r *Resolver) Resolve(legend string, layer model.Layer, index int) model.Keycode {
	if legend == "" {
		if layer == model.LayerBase {
			return model.KeycodeNone
		}

		return model.KeycodeTransparent
	}

	if suffix, ok := sidedAliases[legend]; ok {
		return model.Keycode(string(r.Side(index)) + suffix)
	}

	if code, ok := aliases[legend]; ok {
		return code
	}

	return model.Keycode(strings.ToUpper(legend))
}

// Known reports whether the legend has an alias, as opposed to falling back to its upper-cased text.
func Known(legend string) bool {
	if legend == "" {
		return true
	}

	if _, ok := sidedAliases[legend]; ok {
		return true
	}

	_, ok := aliases[legend]

	return ok
}
