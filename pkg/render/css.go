package render

import "strings"

// cssNamedColors maps the CSS named colors the demo palettes use to hex.
var cssNamedColors = map[string]string{
	"black":   "#000000",
	"white":   "#ffffff",
	"gray":    "#808080",
	"tomato":  "#ff6347",
	"red":     "#ff0000",
	"orange":  "#ffa500",
	"yellow":  "#ffff00",
	"green":   "#008000",
	"lime":    "#00ff00",
	"blue":    "#0000ff",
	"navy":    "#000080",
	"cyan":    "#00ffff",
	"teal":    "#008080",
	"indigo":  "#4b0082",
	"violet":  "#ee82ee",
	"purple":  "#800080",
	"magenta": "#ff00ff",
	"pink":    "#ffc0cb",
	"brown":   "#a52a2a",
	"gold":    "#ffd700",
}

// cssHex resolves a CSS color token to "#rrggbb". It reports false for
// tokens it cannot resolve; those are drawn without a background.
func cssHex(token string) (string, bool) {
	token = strings.ToLower(strings.TrimSpace(token))
	if hex, ok := cssNamedColors[token]; ok {
		return hex, true
	}
	if !strings.HasPrefix(token, "#") {
		return "", false
	}
	digits := token[1:]
	for _, c := range digits {
		if !strings.ContainsRune("0123456789abcdef", c) {
			return "", false
		}
	}
	switch len(digits) {
	case 6:
		return token, true
	case 3:
		return "#" + string([]byte{digits[0], digits[0], digits[1], digits[1], digits[2], digits[2]}), true
	default:
		return "", false
	}
}
