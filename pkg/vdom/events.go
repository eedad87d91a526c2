package vdom

import "fmt"

// event creates an EventHandler with the given name and handler.
// The name is prefixed with "on" (e.g., "click" becomes "onclick").
func event(name string, handler any) EventHandler {
	return EventHandler{Event: "on" + name, Handler: handler}
}

// OnClick handles primary activation.
func OnClick(handler any) EventHandler { return event("click", handler) }

// OnContextMenu handles secondary activation (right-click).
func OnContextMenu(handler any) EventHandler { return event("contextmenu", handler) }

// Event is delivered to handlers by the host.
type Event struct {
	// Type is the event name without the "on" prefix ("click").
	Type string

	// HID is the hydration ID of the target, if the host assigned one.
	HID string

	defaultPrevented bool
}

// NewEvent creates an event of the given type.
func NewEvent(typ, hid string) *Event {
	return &Event{Type: typ, HID: hid}
}

// PreventDefault asks the host to skip the platform's default behavior.
func (e *Event) PreventDefault() {
	e.defaultPrevented = true
}

// DefaultPrevented reports whether PreventDefault was called.
func (e *Event) DefaultPrevented() bool {
	return e.defaultPrevented
}

// Invoke calls handler with e. Supported handler types are func() and
// func(*Event).
func Invoke(handler any, e *Event) error {
	switch h := handler.(type) {
	case func():
		h()
	case func(*Event):
		h(e)
	case nil:
		return fmt.Errorf("vdom: no handler for %q", e.Type)
	default:
		return fmt.Errorf("vdom: unsupported handler type %T", handler)
	}
	return nil
}

// IsHandler reports whether value can be passed to Invoke.
func IsHandler(value any) bool {
	switch value.(type) {
	case func(), func(*Event):
		return true
	default:
		return false
	}
}
