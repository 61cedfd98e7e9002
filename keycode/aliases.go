package keycode

import "github.com/dasdy/kle2kmk/model"

// sidedAliases map modifier legends to a keycode suffix; the hand side supplies the L/R prefix.
var sidedAliases = map[string]string{
	"Ctrl":    "CTL",
	"Control": "CTL",
	"⌃":       "CTL",
	"^":       "CTL",

	"Alt":    "ALT",
	"Option": "ALT",
	"Opt":    "ALT",
	"⌥":      "ALT",

	"Shift": "SFT",
	"⇧":     "SFT",
	"⇪":     "SFT",

	"GUI": "GUI",
	"Cmd": "GUI",
	"⌘":   "GUI",
	"Win": "GUI",
	"❖":   "GUI",
}

var aliases = map[string]model.Keycode{
	// Layers
	"Lower": "MO(1)",
	"Raise": "MO(2)",

	"0": "N0",
	"1": "N1",
	"2": "N2",
	"3": "N3",
	"4": "N4",
	"5": "N5",
	"6": "N6",
	"7": "N7",
	"8": "N8",
	"9": "N9",

	"Hyper": "HYPR",
	"⌃⌥⇧⌘":  "HYPR",
	"✦":     "HYPR",
	"✧":     "HYPR",
	"Meh":   "MEH",
	"⌃⌥⇧":   "MEH",
	"◆":     "MEH",

	"App":  "APP",
	"Menu": "APP",
	"▤":    "APP",
	"☰":    "APP",

	// Editing and navigation
	"Tab":   "TAB",
	"⇥":     "TAB",
	"↹":     "TAB",
	"Bksp":  "BSPC",
	"⌫":     "BSPC",
	"Del":   "DEL",
	"⌦":     "DEL",
	"Enter": "ENTER",
	"⏎":     "ENTER",
	"↩":     "ENTER",
	"Esc":   "ESC",
	"⎋":     "ESC",
	"Space": "SPC",
	"␣":     "SPC",
	"PgUp":  "PGUP",
	"⇞":     "PGUP",
	"PgDn":  "PGDN",
	"⇟":     "PGDN",
	"Home":  "HOME",
	"↖":     "HOME",
	"⤒":     "HOME",
	"End":   "END",
	"↘":     "END",
	"⤓":     "END",
	"Left":  "LEFT",
	"←":     "LEFT",
	"⇠":     "LEFT",
	"Right": "RIGHT",
	"→":     "RIGHT",
	"⇢":     "RIGHT",
	"Up":    "UP",
	"↑":     "UP",
	"⇡":     "UP",
	"Down":  "DOWN",
	"↓":     "DOWN",
	"⇣":     "DOWN",

	// ANSI punctuation
	"-":  "MINS",
	"=":  "EQL",
	"[":  "LBRC",
	"]":  "RBRC",
	"\\": "BSLS",
	";":  "SCLN",
	"'":  "QUOT",
	",":  "COMM",
	".":  "DOT",
	"`":  "GRV",
	"/":  "SLSH",

	"PrtSc": "PSCR",
	"Reset": "RST",

	// ANSI shifted symbols
	"~":  "TILD",
	"!":  "EXLM",
	"@":  "AT",
	"#":  "HASH",
	"$":  "DLR",
	"%":  "PERC",
	"&":  "AMPR",
	"*":  "ASTR",
	"(":  "LPRN",
	")":  "RPRN",
	"_":  "UNDS",
	"+":  "PLUS",
	"{":  "LCBR",
	"}":  "RCBR",
	"|":  "PIPE",
	":":  "COLN",
	"\"": "DQUO",
	"<":  "LABK",
	">":  "RABK",
	"?":  "QUES",

	// Media
	"Mute":  "MUTE",
	"🔇":     "MUTE",
	"Vol-":  "VOLD",
	"🔉":     "VOLD",
	"Vol+":  "VOLU",
	"🔊":     "VOLU",
	"Play":  "MPLY",
	"▶":     "MPLY",
	"⏯":     "MPLY",
	"Stop":  "MSTP",
	"⏹":     "MSTP",
	"Prev":  "MPRV",
	"⏮":     "MPRV",
	"Next":  "MNXT",
	"⏭":     "MNXT",
	"Rew":   "MREW",
	"⏪":     "MREW",
	"Ffwd":  "MFFD",
	"⏩":     "MFFD",
	"Eject": "EJCT",
	"⏏":     "EJCT",
	"🔅":     "BRID",
	"🔆":     "BRIU",
}
