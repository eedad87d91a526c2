package vdom

import "testing"

func TestEventHandlers(t *testing.T) {
	clicked := false
	node := Div(
		OnClick(func() { clicked = true }),
		OnContextMenu(func(e *Event) { e.PreventDefault() }),
	)

	if !node.IsInteractive() {
		t.Fatal("expected interactive node")
	}

	e := NewEvent("click", "h1")
	if err := Invoke(node.Handler("onclick"), e); err != nil {
		t.Fatalf("Invoke(onclick): %v", err)
	}
	if !clicked {
		t.Error("click handler not called")
	}
	if e.DefaultPrevented() {
		t.Error("click should not prevent default")
	}

	e = NewEvent("contextmenu", "h1")
	if err := Invoke(node.Handler("oncontextmenu"), e); err != nil {
		t.Fatalf("Invoke(oncontextmenu): %v", err)
	}
	if !e.DefaultPrevented() {
		t.Error("contextmenu handler should prevent default")
	}
}

func TestInvokeErrors(t *testing.T) {
	if err := Invoke(nil, NewEvent("click", "")); err == nil {
		t.Error("expected error for nil handler")
	}
	if err := Invoke(func(int) {}, NewEvent("click", "")); err == nil {
		t.Error("expected error for unsupported handler")
	}
}

func TestIsHandler(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  bool
	}{
		{"func()", func() {}, true},
		{"func(*Event)", func(*Event) {}, true},
		{"string", "x", false},
		{"nil", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsHandler(tt.value); got != tt.want {
				t.Errorf("IsHandler = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsInteractive(t *testing.T) {
	if Div(Class("x")).IsInteractive() {
		t.Error("div without handlers should not be interactive")
	}
	if Text("x").IsInteractive() {
		t.Error("text node should not be interactive")
	}
}
