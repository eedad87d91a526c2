package colors

import "github.com/vango-dev/colorctx/pkg/vango"

// Store owns one State and publishes a new version on every write.
//
// A Store is a vango.Channel[Value]: Read returns the latest version and
// Subscribe delivers each new version synchronously, exactly once per write,
// before the write returns.
type Store struct {
	sig     *vango.Signal[*State]
	actions Actions
}

// NewStore creates a store holding initial.
func NewStore(initial State) *Store {
	st := initial
	s := &Store{
		sig: vango.NewSignal(&st),
	}
	s.actions = Actions{
		SetColor:    s.SetColor,
		SetSubcolor: s.SetSubcolor,
	}
	return s
}

// NewDefaultStore creates a store holding DefaultState.
func NewDefaultStore() *Store {
	return NewStore(DefaultState())
}

// State returns a copy of the current state.
func (s *Store) State() State {
	return *s.sig.Read()
}

// SetColor replaces the primary color. Subcolor is left unchanged.
func (s *Store) SetColor(color string) {
	s.sig.Update(func(cur *State) *State {
		next := *cur
		next.Color = color
		return &next
	})
}

// SetSubcolor replaces the secondary color. Color is left unchanged.
func (s *Store) SetSubcolor(subcolor string) {
	s.sig.Update(func(cur *State) *State {
		next := *cur
		next.Subcolor = subcolor
		return &next
	})
}

// Actions returns the store's mutators. The result is the same on every call.
func (s *Store) Actions() Actions {
	return s.actions
}

// Version returns the number of writes published so far.
func (s *Store) Version() uint64 {
	return s.sig.Version()
}

// SubscriberCount returns the number of active subscriptions.
func (s *Store) SubscriberCount() int {
	return s.sig.SubscriberCount()
}

// Read implements vango.Channel.
func (s *Store) Read() Value {
	return Value{State: s.sig.Read(), Actions: s.actions}
}

// Subscribe implements vango.Channel.
func (s *Store) Subscribe(fn func(Value)) vango.Unsubscribe {
	if fn == nil {
		return func() {}
	}
	return s.sig.Subscribe(func(st *State) {
		fn(Value{State: st, Actions: s.actions})
	})
}
