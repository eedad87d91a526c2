// Package demo is the composition root: it creates one store, wraps one
// provider boundary around a tree of renderers, and mounts a fallback
// renderer outside the boundary.
package demo

import (
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/vango-dev/colorctx/internal/errors"

	"github.com/vango-dev/colorctx/pkg/colors"
	"github.com/vango-dev/colorctx/pkg/components"
	"github.com/vango-dev/colorctx/pkg/vango"
	"github.com/vango-dev/colorctx/pkg/vdom"
)

// Option configures an App.
type Option func(*options)

type options struct {
	initial colors.State
	size    int
}

// WithInitial sets the state the store starts with.
func WithInitial(st colors.State) Option {
	return func(o *options) {
		o.initial = st
	}
}

// WithSwatchSize sets the edge length of display swatches.
func WithSwatchSize(px int) Option {
	return func(o *options) {
		if px > 0 {
			o.size = px
		}
	}
}

// App is a mounted composition root.
type App struct {
	root     *vango.Owner
	boundary *vango.Owner
	store    *colors.Store
	size     int

	consumer *vango.Mounted
	panel    *components.ColorPanel
	hook     *vango.Mounted
	selector *vango.Mounted

	unmounted atomic.Bool
}

// New mounts the demo tree.
func New(opts ...Option) *App {
	o := options{
		initial: colors.DefaultState(),
		size:    components.DefaultSize,
	}
	for _, opt := range opts {
		opt(&o)
	}

	a := &App{
		root:  vango.NewOwner(nil),
		store: colors.NewStore(o.initial),
		size:  o.size,
	}
	a.boundary = colors.Boundary(a.root, a.store)

	a.consumer = components.Consumer(a.boundary, components.ColorBox(a.size))
	a.panel = components.NewColorPanel(a.boundary, a.size)
	a.hook = components.HookSwatch(a.boundary, a.size)
	a.selector = components.SelectColors(a.boundary, a.size)

	return a
}

// Store returns the app's store.
func (a *App) Store() *colors.Store {
	return a.store
}

// Boundary returns the scope that provides the store.
func (a *App) Boundary() *vango.Owner {
	return a.boundary
}

// Consumer returns the render-function consumer.
func (a *App) Consumer() *vango.Mounted { return a.consumer }

// Panel returns the statically bound panel.
func (a *App) Panel() *components.ColorPanel { return a.panel }

// Hook returns the hook-style swatch.
func (a *App) Hook() *vango.Mounted { return a.hook }

// Selector returns the interactive palette.
func (a *App) Selector() *vango.Mounted { return a.selector }

// Mounted reports whether the app has not been unmounted.
func (a *App) Mounted() bool {
	return !a.unmounted.Load()
}

// Render assembles the page from each renderer's latest output.
func (a *App) Render() *vdom.VNode {
	return vdom.Main(vdom.Class("colorctx"),
		vdom.Section(vdom.Class("provided"),
			vdom.H2(vdom.Text("Provided")),
			row("consumer", a.consumer),
			row("panel", a.panel),
			row("hook", a.hook),
			row("select", a.selector),
		),
		vdom.Section(vdom.Class("fallback"),
			vdom.H2(vdom.Text("Default")),
			vdom.Div(vdom.Class("row"), vdom.Data("renderer", "default"),
				components.DefaultSwatch(a.size),
			),
		),
	)
}

func row(name string, c vdom.Component) *vdom.VNode {
	return vdom.Div(vdom.Class("row"), vdom.Data("renderer", name), vdom.Embed(c))
}

// Unmount disposes the renderer tree. The store is dropped with it; writes
// made through a retained reference reach no renderer.
func (a *App) Unmount() {
	if a.unmounted.Swap(true) {
		return
	}
	a.root.Dispose()
}

// Activate delivers an interaction of type typ ("click" or "contextmenu") to
// the palette square for color and returns the delivered event. The write,
// if any, has propagated to every renderer when Activate returns.
func (a *App) Activate(typ, color string) (*vdom.Event, error) {
	if typ != "click" && typ != "contextmenu" {
		return nil, errors.New("E202").WithDetail(fmt.Sprintf("type %q", typ))
	}

	var target *vdom.VNode
	vdom.Walk(a.selector.Render(), func(n *vdom.VNode) bool {
		if c, _ := n.Props["data-color"].(string); c == color {
			target = n
			return false
		}
		return true
	})
	if target == nil {
		return nil, errors.New("E301").
			WithDetail(fmt.Sprintf("%q is not in the palette", color)).
			WithSuggestion("Use one of: " + strings.Join(colors.Rainbow, ", "))
	}

	e := vdom.NewEvent(typ, target.HID)
	if err := vdom.Invoke(target.Handler("on"+typ), e); err != nil {
		return nil, errors.New("E201").Wrap(err)
	}
	return e, nil
}
