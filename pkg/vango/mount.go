package vango

import (
	"sync"

	"github.com/vango-dev/colorctx/pkg/vdom"
)

// RenderFunc produces a renderer's output in the given scope.
type RenderFunc func(owner *Owner) *vdom.VNode

// Mounted is a re-rendering unit: an Owner scope plus a render function.
//
// Context.Use calls made from the render function subscribe the unit. When a
// subscribed channel changes, the unit re-runs its render function before the
// write returns. A change arriving while the unit is rendering is folded into
// one more pass after the current one finishes.
//
// Mounted implements vdom.Component, so its latest output can be placed in a
// parent tree with vdom.Embed.
type Mounted struct {
	id     uint64
	owner  *Owner
	render RenderFunc

	mu        sync.Mutex
	node      *vdom.VNode
	renders   int
	rendering bool
	dirty     bool
}

// Mount creates a child scope of parent, renders once, and returns the unit.
func Mount(parent *Owner, render RenderFunc) *Mounted {
	m := &Mounted{
		id:     nextID(),
		owner:  NewOwner(parent),
		render: render,
	}
	m.owner.listener = m
	m.rerender()
	return m
}

// ID implements Listener.
func (m *Mounted) ID() uint64 {
	return m.id
}

// Owner returns the unit's scope.
func (m *Mounted) Owner() *Owner {
	return m.owner
}

// Render returns the latest output. It does not re-run the render function.
func (m *Mounted) Render() *vdom.VNode {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.node
}

// RenderCount returns how many times the render function has run.
func (m *Mounted) RenderCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.renders
}

// IsMounted reports whether the unit has not been unmounted.
func (m *Mounted) IsMounted() bool {
	return !m.owner.IsDisposed()
}

// MarkDirty implements Listener by re-rendering synchronously.
func (m *Mounted) MarkDirty() {
	m.rerender()
}

// Unmount disposes the unit's scope, cancelling its subscriptions.
// The last output stays available from Render.
func (m *Mounted) Unmount() {
	m.owner.Dispose()
}

func (m *Mounted) rerender() {
	m.mu.Lock()
	if m.rendering {
		m.dirty = true
		m.mu.Unlock()
		return
	}
	m.rendering = true
	m.mu.Unlock()

	for {
		if m.owner.IsDisposed() {
			break
		}

		node := m.render(m.owner)

		m.mu.Lock()
		m.node = node
		m.renders++
		again := m.dirty
		m.dirty = false
		m.mu.Unlock()

		if !again {
			break
		}
	}

	m.mu.Lock()
	m.rendering = false
	m.mu.Unlock()
}
