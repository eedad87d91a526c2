package components

import (
	"github.com/vango-dev/colorctx/pkg/colors"
	"github.com/vango-dev/colorctx/pkg/vango"
	"github.com/vango-dev/colorctx/pkg/vdom"
)

// HookSwatch mounts a renderer that reads the colors with a hook-style call
// in its body.
func HookSwatch(parent *vango.Owner, size int) *vango.Mounted {
	return vango.Mount(parent, func(o *vango.Owner) *vdom.VNode {
		v := colors.Use(o)
		return Swatch(v.Color(), v.Subcolor(), size)
	})
}
