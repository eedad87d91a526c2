package vango

// Listener is anything that can be notified when a dependency changes.
// Mounted units implement it; Context.Use subscribes the nearest one.
type Listener interface {
	// MarkDirty notifies the listener that one of its dependencies has changed.
	// For mounted units, this re-runs the render function.
	MarkDirty()

	// ID returns a unique identifier for this listener.
	ID() uint64
}

// Cleanup is a function registered on an Owner and run when it is disposed.
type Cleanup func()

// Unsubscribe cancels a subscription. Calling it more than once is a no-op.
type Unsubscribe func()

// Channel is a readable, observable value.
//
// Read returns the latest value synchronously; it is never stale relative to
// a completed write. Subscribe registers fn to be called with each new value
// until the returned Unsubscribe is called.
type Channel[T any] interface {
	Read() T
	Subscribe(fn func(T)) Unsubscribe
}
