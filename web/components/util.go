package components

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/a-h/templ"

	"github.com/dasdy/kle2kmk/model"
)

// getLinkForLayer returns the URL of the page showing a single layer.
func getLinkForLayer(layer model.Layer) templ.SafeURL {
	return templ.SafeURL(fmt.Sprintf("/layer?name=%s", url.QueryEscape(string(layer))))
}

// getKeyClass returns the CSS class of a key depending on what it resolves to.
func getKeyClass(item *Item) string {
	switch {
	case item.Transparent:
		return "key transparent"
	case item.Keycode == model.KeycodeNone:
		return "key none"
	case item.Fallback:
		return "key verbatim"
	default:
		return "key"
	}
}

func getNavClass(selected bool) string {
	if selected {
		return "selected"
	}

	return ""
}

func coord(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func keyWidth(item *Item) float64 {
	return keySize(item.Location.Width) * KeyUnit
}

func keyHeight(item *Item) float64 {
	return keySize(item.Location.Height) * KeyUnit
}

// isShown reports whether a layer is drawn on the page.
func (rc *RenderContext) isShown(layer model.Layer) bool {
	return rc.Selected == "" || rc.Selected == layer
}
