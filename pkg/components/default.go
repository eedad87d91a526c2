package components

import (
	"github.com/vango-dev/colorctx/pkg/colors"
	"github.com/vango-dev/colorctx/pkg/vdom"
)

// DefaultSwatch renders the fallback colors. It has no scope, so it always
// shows colors.DefaultValue.
func DefaultSwatch(size int) *vdom.VNode {
	v := colors.Read(nil)
	return Swatch(v.Color(), v.Subcolor(), size)
}
