package vango

import (
	"sync"
	"sync/atomic"
)

// Owner represents a scope in the renderer tree.
//
// Owners form a hierarchy that mirrors the renderer tree: the composition
// root creates a root Owner, each provider boundary and each mounted renderer
// gets a child Owner. Context values set on an Owner are visible to its
// descendants. When an Owner is disposed, its children are disposed first and
// then its cleanups run, which is how subscriptions are torn down.
//
// Owners are passed explicitly; there is no ambient "current owner".
type Owner struct {
	id uint64

	// parent is the parent Owner in the hierarchy.
	// nil for a root Owner.
	parent *Owner

	// children are child Owners (nested boundaries and renderers).
	children   []*Owner
	childrenMu sync.Mutex

	// cleanups are functions registered via OnCleanup.
	cleanups   []Cleanup
	cleanupsMu sync.Mutex

	// values stores context values for this scope.
	values   map[any]any
	valuesMu sync.RWMutex

	// listener is the mounted unit rendering in this scope, if any.
	listener Listener

	// uses holds the Context.Use subscription per context key.
	uses   map[any]*useClaim
	usesMu sync.Mutex

	disposed atomic.Bool
}

// NewOwner creates a new Owner with the given parent.
// The new Owner is registered as a child of the parent.
// If parent is nil, creates a root Owner.
func NewOwner(parent *Owner) *Owner {
	o := &Owner{
		id:     nextID(),
		parent: parent,
	}

	if parent != nil {
		parent.addChild(o)
	}

	return o
}

// ID returns the unique identifier for this Owner.
func (o *Owner) ID() uint64 {
	return o.id
}

// IsDisposed returns true if this Owner has been disposed.
func (o *Owner) IsDisposed() bool {
	return o.disposed.Load()
}

func (o *Owner) addChild(child *Owner) {
	o.childrenMu.Lock()
	defer o.childrenMu.Unlock()
	o.children = append(o.children, child)
}

func (o *Owner) removeChild(child *Owner) {
	o.childrenMu.Lock()
	defer o.childrenMu.Unlock()

	for i, c := range o.children {
		if c == child {
			o.children = append(o.children[:i], o.children[i+1:]...)
			return
		}
	}
}

// OnCleanup registers a cleanup function to run when this Owner is disposed.
func (o *Owner) OnCleanup(fn Cleanup) {
	if o.disposed.Load() {
		// Already disposed, run cleanup immediately
		fn()
		return
	}

	o.cleanupsMu.Lock()
	defer o.cleanupsMu.Unlock()
	o.cleanups = append(o.cleanups, fn)
}

// SetValue sets a context value on this Owner.
func (o *Owner) SetValue(key, value any) {
	o.valuesMu.Lock()
	defer o.valuesMu.Unlock()

	if o.values == nil {
		o.values = make(map[any]any)
	}
	o.values[key] = value
}

// GetValue retrieves a value from this Owner or the nearest ancestor that
// has one. Returns nil if no Owner in the chain holds key.
func (o *Owner) GetValue(key any) any {
	for cur := o; cur != nil; cur = cur.parent {
		cur.valuesMu.RLock()
		val, ok := cur.values[key]
		cur.valuesMu.RUnlock()
		if ok {
			return val
		}
	}
	return nil
}

// listenerScope returns the nearest Owner at or above o that has a listener.
func (o *Owner) listenerScope() *Owner {
	for cur := o; cur != nil; cur = cur.parent {
		if cur.listener != nil {
			return cur
		}
	}
	return nil
}

// useClaim is a scope's subscription to the channel a context resolved to.
type useClaim struct {
	ch    any
	unsub Unsubscribe
}

// trackUse keeps this scope subscribed to ch under key. A repeat call with
// the same channel does nothing; a call with a different channel cancels the
// earlier subscription before subscribing again.
func (o *Owner) trackUse(key, ch any, subscribe func() Unsubscribe) {
	o.usesMu.Lock()
	prev, ok := o.uses[key]
	if ok && prev.ch == ch {
		o.usesMu.Unlock()
		return
	}
	first := o.uses == nil
	if first {
		o.uses = make(map[any]*useClaim)
	}
	claim := &useClaim{ch: ch}
	o.uses[key] = claim
	o.usesMu.Unlock()

	if ok {
		prev.unsub()
	}
	claim.unsub = subscribe()
	if first {
		o.OnCleanup(o.releaseUses)
	}
}

// releaseUses cancels every Context.Use subscription of this scope.
func (o *Owner) releaseUses() {
	o.usesMu.Lock()
	uses := o.uses
	o.uses = nil
	o.usesMu.Unlock()

	for _, claim := range uses {
		if claim.unsub != nil {
			claim.unsub()
		}
	}
}

// Dispose disposes this Owner and all its children, then runs its cleanups.
// Children are disposed in reverse order (last created first), cleanups run
// in reverse registration order. Dispose is idempotent.
func (o *Owner) Dispose() {
	if o.disposed.Swap(true) {
		return
	}

	if o.parent != nil {
		o.parent.removeChild(o)
	}

	o.childrenMu.Lock()
	children := o.children
	o.children = nil
	o.childrenMu.Unlock()

	for i := len(children) - 1; i >= 0; i-- {
		children[i].Dispose()
	}

	o.cleanupsMu.Lock()
	cleanups := o.cleanups
	o.cleanups = nil
	o.cleanupsMu.Unlock()

	for i := len(cleanups) - 1; i >= 0; i-- {
		cleanups[i]()
	}
}
