package colors

import "github.com/vango-dev/colorctx/pkg/vango"

// Context scopes a Store to a renderer subtree.
var Context = vango.CreateContext(DefaultValue())

// Provide makes store visible to owner and its descendants.
func Provide(owner *vango.Owner, store *Store) {
	Context.Provide(owner, store)
}

// Boundary creates a child scope of parent that provides store.
func Boundary(parent *vango.Owner, store *Store) *vango.Owner {
	return Context.Boundary(parent, store)
}

// Read returns the value visible from owner without subscribing.
func Read(owner *vango.Owner) Value {
	return Context.Read(owner)
}

// Use returns the value visible from owner and subscribes the enclosing
// mounted renderer to future writes.
func Use(owner *vango.Owner) Value {
	return Context.Use(owner)
}

// Bind calls fn now and after each write until owner is disposed.
func Bind(owner *vango.Owner, fn func(Value)) vango.Unsubscribe {
	return Context.Bind(owner, fn)
}
