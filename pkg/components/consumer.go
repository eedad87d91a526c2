package components

import (
	"github.com/vango-dev/colorctx/pkg/colors"
	"github.com/vango-dev/colorctx/pkg/vango"
	"github.com/vango-dev/colorctx/pkg/vdom"
)

// Consumer mounts a render-function consumer under parent. fn is called with
// the current value now and again after every write to the nearest store.
func Consumer(parent *vango.Owner, fn func(colors.Value) *vdom.VNode) *vango.Mounted {
	return vango.Mount(parent, func(o *vango.Owner) *vdom.VNode {
		return fn(colors.Use(o))
	})
}

// ColorBox is the stock render function for Consumer: a swatch of the
// current colors.
func ColorBox(size int) func(colors.Value) *vdom.VNode {
	return func(v colors.Value) *vdom.VNode {
		return Swatch(v.Color(), v.Subcolor(), size)
	}
}
