package layout

import (
	"github.com/dasdy/kle2kmk/model"
)

// Legend returns the legend that supplies the key's keycode on the given layer.
func Legend(key model.PhysicalKey, layer model.Layer) string {
	slot := layer.Slot()
	if slot < 0 {
		return ""
	}

	return key.Legends[slot]
}

// Extract collects, for every layer, the legends of all keys in layout order.
func Extract(keys []model.PhysicalKey) map[model.Layer][]string {
	result := make(map[model.Layer][]string, len(model.Layers))

	for _, layer := range model.Layers {
		legends := make([]string, 0, len(keys))

		for _, key := range keys {
			legends = append(legends, Legend(key, layer))
		}

		result[layer] = legends
	}

	return result
}

var labels = map[model.Keycode]string{
	"LSFT":  "⇧",
	"RSFT":  "R⇧",
	"LCTL":  "⌃",
	"RCTL":  "R⌃",
	"LGUI":  "⌘",
	"RGUI":  "R⌘",
	"LALT":  "⌥",
	"RALT":  "R⌥",
	"ENTER": "↵",
	"BSPC":  "⌫",
	"DEL":   "⌦",
	"SPC":   "␣",
	"TAB":   "⇥",
	"ESC":   "⎋",
	"HYPR":  "✦",
	"MEH":   "◆",

	"RIGHT": "→",
	"LEFT":  "←",
	"UP":    "↑",
	"DOWN":  "↓",
	"PGUP":  "⇞",
	"PGDN":  "⇟",
	"HOME":  "⤒",
	"END":   "⤓",
	"MO(1)": "Lower",
	"MO(2)": "Raise",
	"N1":    "1",
	"N2":    "2",
	"N3":    "3",
	"N4":    "4",
	"N5":    "5",
	"N6":    "6",
	"N7":    "7",
	"N8":    "8",
	"N9":    "9",
	"N0":    "0",
	"MINS":  "-",
	"EQL":   "=",
	"COMM":  ",",
	"LBRC":  "[",
	"RBRC":  "]",
	"DOT":   ".",
	"SCLN":  ";",
	"BSLS":  "\\",
	"SLSH":  "/",
	"QUOT":  "'",
	"GRV":   "`",

	"MUTE": "🔇",
	"VOLD": "🔉",
	"VOLU": "🔊",
	"MPLY": "⏯",

	"NO":   "",
	"TRNS": "▽",
}

// KeyLabel returns a short printable label for a keycode, used when drawing layers.
func KeyLabel(code model.Keycode) string {
	if v, ok := labels[code]; ok {
		return v
	}

	return string(code)
}
