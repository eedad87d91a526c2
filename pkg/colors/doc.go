// Package colors is the shared color state: a store holding a color and a
// subcolor, the context that scopes a store to a renderer subtree, and the
// palette interactive renderers pick from.
//
// Usage:
//
//	store := colors.NewDefaultStore()
//	boundary := colors.Boundary(root, store)
//
//	// Pull on demand
//	v := colors.Read(vango.NewOwner(boundary))
//
//	// Declarative binding, re-invoked on each write
//	colors.Bind(owner, func(v colors.Value) { ... })
//
//	// Hook-style read inside a mounted renderer
//	vango.Mount(boundary, func(o *vango.Owner) *vdom.VNode {
//	    v := colors.Use(o)
//	    return vdom.Box(50, 50, v.State.Color)
//	})
//
//	store.SetColor("blue")
//
// Outside any boundary readers observe DefaultValue: black on tomato, with
// actions that do nothing.
package colors
