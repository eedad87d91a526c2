package components

import (
	"github.com/vango-dev/colorctx/pkg/colors"
	"github.com/vango-dev/colorctx/pkg/vango"
	"github.com/vango-dev/colorctx/pkg/vdom"
)

// SelectColors mounts the interactive palette: one square per
// colors.Rainbow entry. A click sets the color; a context menu sets the
// subcolor and suppresses the platform menu. The squares holding the current
// color and subcolor carry the "selected" and "subselected" classes.
func SelectColors(parent *vango.Owner, size int) *vango.Mounted {
	return vango.Mount(parent, func(o *vango.Owner) *vdom.VNode {
		v := colors.Use(o)
		return vdom.Div(vdom.Class("select-colors"),
			vdom.Range(colors.Rainbow, func(name string, _ int) *vdom.VNode {
				return paletteSquare(name, size, v)
			}),
		)
	})
}

func paletteSquare(name string, size int, v colors.Value) *vdom.VNode {
	actions := v.Actions

	var classes []string
	if name == v.Color() {
		classes = append(classes, "selected")
	}
	if name == v.Subcolor() {
		classes = append(classes, "subselected")
	}

	var class any
	if len(classes) > 0 {
		class = vdom.Class(classes...)
	}

	return Square(name, size,
		class,
		vdom.Key(name),
		vdom.Data("color", name),
		vdom.Title(name),
		vdom.OnClick(func() {
			actions.SetColor(name)
		}),
		vdom.OnContextMenu(func(e *vdom.Event) {
			e.PreventDefault()
			actions.SetSubcolor(name)
		}),
	)
}
