package components

import "github.com/vango-dev/colorctx/pkg/vdom"

// DefaultSize is the edge length, in pixels, of a display swatch.
const DefaultSize = 50

// Square returns a size x size box filled with background.
func Square(background string, size int, args ...any) *vdom.VNode {
	if size <= 0 {
		size = DefaultSize
	}
	return vdom.Box(size, size, background, args...)
}

// Swatch renders a color over its subcolor: an outer square of subcolor
// holding a smaller square of color.
func Swatch(color, subcolor string, size int) *vdom.VNode {
	if size <= 0 {
		size = DefaultSize
	}
	return Square(subcolor, size,
		vdom.Class("swatch"),
		Square(color, max(1, size/2), vdom.Class("swatch-inner")),
	)
}
