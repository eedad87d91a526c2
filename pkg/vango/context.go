package vango

// Context scopes a Channel to an Owner subtree.
//
// A boundary is installed with Provide. Readers resolve the innermost
// boundary above their Owner; outer boundaries are shadowed, never merged.
// With no boundary above, readers get a static channel holding the default
// value, which never notifies.
//
// Example:
//
//	var ThemeContext = vango.CreateContext("light")
//
//	boundary := ThemeContext.Boundary(root, themeSignal)
//	m := vango.Mount(boundary, func(o *vango.Owner) *vdom.VNode {
//	    return vdom.Div(vdom.Class("btn-" + ThemeContext.Use(o)))
//	})
type Context[T any] struct {
	// key uniquely identifies this context in the owner value map
	key any

	// fallback is returned by Resolve when no boundary is found
	fallback Channel[T]

	defaultValue T
}

// contextKey wraps Context to create a unique key type
type contextKey[T any] struct {
	ctx *Context[T]
}

// CreateContext creates a new context with the given default value.
// The default value is what readers observe outside any boundary.
func CreateContext[T any](defaultValue T) *Context[T] {
	ctx := &Context[T]{
		defaultValue: defaultValue,
		fallback:     Static(defaultValue),
	}
	// Use the context pointer itself as the key to ensure uniqueness
	ctx.key = contextKey[T]{ctx: ctx}
	return ctx
}

// Default returns the default value for this context.
func (c *Context[T]) Default() T {
	return c.defaultValue
}

// Provide installs ch as this context's channel for owner and its
// descendants. Providing again on the same owner replaces the channel for
// readers that resolve afterwards.
func (c *Context[T]) Provide(owner *Owner, ch Channel[T]) {
	if owner == nil || ch == nil {
		return
	}
	owner.SetValue(c.key, ch)
}

// Boundary creates a child Owner of parent that provides ch.
func (c *Context[T]) Boundary(parent *Owner, ch Channel[T]) *Owner {
	boundary := NewOwner(parent)
	c.Provide(boundary, ch)
	return boundary
}

// Resolve returns the channel of the innermost boundary at or above owner,
// or the static default channel. It never returns nil.
func (c *Context[T]) Resolve(owner *Owner) Channel[T] {
	if owner == nil {
		return c.fallback
	}
	if ch, ok := owner.GetValue(c.key).(Channel[T]); ok {
		return ch
	}
	return c.fallback
}

// Read returns the current value visible from owner without subscribing.
func (c *Context[T]) Read(owner *Owner) T {
	return c.Resolve(owner).Read()
}

// Use returns the current value visible from owner and subscribes the
// nearest mounted unit to future changes, so that unit re-renders whenever
// the value changes. Repeated calls from the same unit subscribe once; if the
// resolved channel has been replaced since, the old subscription is dropped.
// Called outside a mounted unit, Use behaves like Read.
func (c *Context[T]) Use(owner *Owner) T {
	ch := c.Resolve(owner)

	if scope := owner.listenerScope(); scope != nil {
		l := scope.listener
		scope.trackUse(c.key, ch, func() Unsubscribe {
			return ch.Subscribe(func(T) { l.MarkDirty() })
		})
	}

	return ch.Read()
}

// Bind calls fn with the current value visible from owner, then again with
// each new value until owner is disposed or the returned Unsubscribe is
// called.
func (c *Context[T]) Bind(owner *Owner, fn func(T)) Unsubscribe {
	ch := c.Resolve(owner)
	fn(ch.Read())

	unsub := ch.Subscribe(fn)
	if owner != nil {
		owner.OnCleanup(Cleanup(unsub))
	}
	return unsub
}
