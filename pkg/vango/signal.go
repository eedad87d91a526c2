package vango

import (
	"sync"
	"sync/atomic"
)

// subscription is one registered callback on a Signal.
// active is cleared on unsubscribe so an in-flight delivery skips it.
type subscription[T any] struct {
	id     uint64
	fn     func(T)
	active atomic.Bool
}

// Signal is an observable value container.
//
// Every Set or Update publishes a new version and delivers the new value to
// each current subscriber exactly once. A write made while a delivery is in
// progress, such as one from a subscriber, is queued; the write that started
// the delivery drains the queue in order before returning, so every
// subscriber sees every value in the order the writes were issued.
type Signal[T any] struct {
	id uint64

	// value and version are protected by mu.
	value   T
	version uint64

	// subs are the current subscriptions, in registration order.
	subs []*subscription[T]

	// pending holds published writes not yet delivered; delivering is set
	// while some call to Update is draining it.
	pending    []delivery[T]
	delivering bool

	mu sync.RWMutex

	// equal, if set, suppresses delivery when the new value equals the old.
	equal func(T, T) bool
}

// NewSignal creates a new signal with the given initial value.
func NewSignal[T any](initial T) *Signal[T] {
	return &Signal[T]{
		id:    nextID(),
		value: initial,
	}
}

// ID returns the unique identifier for this signal.
func (s *Signal[T]) ID() uint64 {
	return s.id
}

// Read returns the current value.
func (s *Signal[T]) Read() T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.value
}

// Version returns the number of writes that have been published.
func (s *Signal[T]) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}

// WithEquals returns the signal configured with an equality function.
// Writes for which fn(old, new) reports true are dropped without notifying.
func (s *Signal[T]) WithEquals(fn func(T, T) bool) *Signal[T] {
	s.equal = fn
	return s
}

// Set replaces the value and notifies subscribers.
func (s *Signal[T]) Set(value T) {
	s.Update(func(T) T { return value })
}

// Update atomically reads and replaces the value, then notifies subscribers.
func (s *Signal[T]) Update(fn func(T) T) {
	s.mu.Lock()
	next := fn(s.value)
	if s.equal != nil && s.equal(s.value, next) {
		s.mu.Unlock()
		return
	}
	s.value = next
	s.version++

	// Copy subscribers while holding lock
	subs := make([]*subscription[T], len(s.subs))
	copy(subs, s.subs)
	s.pending = append(s.pending, delivery[T]{value: next, subs: subs})

	if s.delivering {
		s.mu.Unlock()
		return
	}
	s.delivering = true
	s.mu.Unlock()

	s.drain()
}

// delivery is one published value and the subscribers current at the time.
type delivery[T any] struct {
	value T
	subs  []*subscription[T]
}

// drain delivers pending writes in FIFO order until the queue is empty.
// If a subscriber panics, undelivered writes are discarded.
func (s *Signal[T]) drain() {
	defer func() {
		if r := recover(); r != nil {
			s.mu.Lock()
			s.pending = nil
			s.delivering = false
			s.mu.Unlock()
			panic(r)
		}
	}()

	for {
		s.mu.Lock()
		if len(s.pending) == 0 {
			s.pending = nil
			s.delivering = false
			s.mu.Unlock()
			return
		}
		d := s.pending[0]
		s.pending = s.pending[1:]
		s.mu.Unlock()

		for _, sub := range d.subs {
			if !sub.active.Load() {
				continue
			}
			sub.fn(d.value)
		}
	}
}

// Subscribe registers fn to receive every value published after this call.
// fn is not called with the current value; use Read for that.
func (s *Signal[T]) Subscribe(fn func(T)) Unsubscribe {
	if fn == nil {
		return func() {}
	}

	sub := &subscription[T]{id: nextID(), fn: fn}
	sub.active.Store(true)

	s.mu.Lock()
	s.subs = append(s.subs, sub)
	s.mu.Unlock()

	return func() { s.unsubscribe(sub) }
}

// unsubscribe deactivates sub and removes it from the list.
func (s *Signal[T]) unsubscribe(sub *subscription[T]) {
	if !sub.active.Swap(false) {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i, existing := range s.subs {
		if existing.id == sub.id {
			// Preserve registration order for the remaining subscribers.
			s.subs = append(s.subs[:i:i], s.subs[i+1:]...)
			return
		}
	}
}

// SubscriberCount returns the number of active subscriptions.
func (s *Signal[T]) SubscriberCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.subs)
}

// staticChannel is a Channel whose value never changes.
type staticChannel[T any] struct {
	value T
}

// Static returns a Channel that always reads value and never notifies.
func Static[T any](value T) Channel[T] {
	return &staticChannel[T]{value: value}
}

func (c *staticChannel[T]) Read() T {
	return c.value
}

func (c *staticChannel[T]) Subscribe(func(T)) Unsubscribe {
	return func() {}
}
