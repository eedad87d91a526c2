package colors

// Rainbow is the fixed, ordered palette offered by interactive renderers.
var Rainbow = []string{
	"red",
	"orange",
	"yellow",
	"green",
	"blue",
	"indigo",
	"violet",
}

// RainbowAt returns the color at the 1-based position n, or "" if n is out
// of range.
func RainbowAt(n int) string {
	if n < 1 || n > len(Rainbow) {
		return ""
	}
	return Rainbow[n-1]
}
