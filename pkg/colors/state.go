package colors

const (
	// DefaultColor is the initial and fallback primary color.
	DefaultColor = "black"

	// DefaultSubcolor is the initial and fallback secondary color.
	DefaultSubcolor = "tomato"
)

// State is the shared pair of colors. Values are CSS color tokens and are
// never validated.
type State struct {
	Color    string `json:"color"`
	Subcolor string `json:"subcolor"`
}

// DefaultState returns black on tomato.
func DefaultState() State {
	return State{Color: DefaultColor, Subcolor: DefaultSubcolor}
}

// Actions are the mutators bound to one store. A store creates its Actions
// once, so callers may keep them across versions.
type Actions struct {
	SetColor    func(string)
	SetSubcolor func(string)
}

// Value is what subscribers receive: the state of one version plus the
// actions of the store that produced it. Every subscriber notified for the
// same write receives the same State pointer.
type Value struct {
	State   *State
	Actions Actions
}

// Color returns the primary color, or DefaultColor if State is nil.
func (v Value) Color() string {
	if v.State == nil {
		return DefaultColor
	}
	return v.State.Color
}

// Subcolor returns the secondary color, or DefaultSubcolor if State is nil.
func (v Value) Subcolor() string {
	if v.State == nil {
		return DefaultSubcolor
	}
	return v.State.Subcolor
}

// noopActions are bound to the fallback value.
var noopActions = Actions{
	SetColor:    func(string) {},
	SetSubcolor: func(string) {},
}

// DefaultValue returns the value observed outside any boundary. Each call
// returns a fresh State so callers cannot alter the fallback for others.
func DefaultValue() Value {
	st := DefaultState()
	return Value{State: &st, Actions: noopActions}
}
