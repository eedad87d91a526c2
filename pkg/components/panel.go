package components

import (
	"sync"

	"github.com/vango-dev/colorctx/pkg/colors"
	"github.com/vango-dev/colorctx/pkg/vango"
	"github.com/vango-dev/colorctx/pkg/vdom"
)

// ColorPanel is a stateful renderer that declares its dependency on the
// color context once, at construction. The binding re-renders it after every
// write until it is closed.
type ColorPanel struct {
	owner *vango.Owner
	size  int

	mu      sync.Mutex
	value   colors.Value
	node    *vdom.VNode
	renders int
}

// NewColorPanel creates a panel under parent and binds it to the nearest
// store.
func NewColorPanel(parent *vango.Owner, size int) *ColorPanel {
	p := &ColorPanel{
		owner: vango.NewOwner(parent),
		size:  size,
	}
	colors.Bind(p.owner, p.update)
	return p
}

func (p *ColorPanel) update(v colors.Value) {
	node := vdom.Div(vdom.Class("panel"),
		Swatch(v.Color(), v.Subcolor(), p.size),
		vdom.P(vdom.Textf("%s on %s", v.Color(), v.Subcolor())),
	)

	p.mu.Lock()
	p.value = v
	p.node = node
	p.renders++
	p.mu.Unlock()
}

// Render implements vdom.Component. It returns the output of the last
// binding callback.
func (p *ColorPanel) Render() *vdom.VNode {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.node
}

// Value returns the value the panel last rendered.
func (p *ColorPanel) Value() colors.Value {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.value
}

// RenderCount returns how many times the panel has rendered.
func (p *ColorPanel) RenderCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.renders
}

// Close tears down the binding.
func (p *ColorPanel) Close() {
	p.owner.Dispose()
}
