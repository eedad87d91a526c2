// Package vango provides the reactive core for colorctx.
//
// The core is a small set of primitives for sharing one mutable value with an
// open-ended tree of renderers without wiring each renderer to the writer.
//
// # Core Types
//
// Signal[T] is an observable value container with a listener list:
//
//	count := NewSignal(0)
//	unsub := count.Subscribe(func(n int) { fmt.Println("now", n) })
//	count.Set(5)   // prints "now 5" before Set returns
//	unsub()
//
// Owner is an explicit scope in the renderer tree. Scopes carry context
// values and cleanup functions, and are disposed children-first:
//
//	root := NewOwner(nil)
//	child := NewOwner(root)
//	child.OnCleanup(func() { ... })
//	root.Dispose()
//
// Context[T] scopes a Channel[T] to an Owner subtree. Readers resolve the
// innermost boundary above them, or a static default when none exists:
//
//	var Theme = CreateContext[string]("light")
//
//	boundary := NewOwner(root)
//	Theme.Provide(boundary, themeSignal)
//
//	Theme.Read(NewOwner(boundary))  // pull, never stale
//	Theme.Bind(owner, func(v string) { ... })  // re-invoked on each change
//
// Mount creates a re-rendering unit. Context.Use calls made inside its render
// function subscribe the unit, which re-renders synchronously on change:
//
//	m := Mount(boundary, func(o *Owner) *vdom.VNode {
//	    return vdom.Text(Theme.Use(o))
//	})
//	m.Render()  // latest output
//	m.Unmount()
//
// # Scheduling
//
// Notifications are delivered synchronously on the writer's goroutine. The
// subscriber list is snapshotted before delivery and its lock released, so
// subscribing or unsubscribing from inside a callback is safe. A subscriber
// cancelled during a delivery cycle is not called again.
package vango
