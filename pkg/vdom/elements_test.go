package vdom

import "testing"

func TestCreateElement(t *testing.T) {
	t.Run("basic element", func(t *testing.T) {
		node := Div()
		if node.Kind != KindElement {
			t.Errorf("Kind = %v, want KindElement", node.Kind)
		}
		if node.Tag != "div" {
			t.Errorf("Tag = %v, want div", node.Tag)
		}
	})

	t.Run("with multiple attributes", func(t *testing.T) {
		node := Div(Class("card", "wide"), ID("main"), Title("t"))
		if node.Props["class"] != "card wide" {
			t.Errorf("class = %v, want card wide", node.Props["class"])
		}
		if node.Props["id"] != "main" {
			t.Errorf("id = %v, want main", node.Props["id"])
		}
		if node.Props["title"] != "t" {
			t.Errorf("title = %v, want t", node.Props["title"])
		}
	})

	t.Run("with child node", func(t *testing.T) {
		node := Div(P(Text("Hello")))
		if len(node.Children) != 1 {
			t.Fatalf("Children len = %v, want 1", len(node.Children))
		}
		if node.Children[0].Tag != "p" {
			t.Errorf("Child tag = %v, want p", node.Children[0].Tag)
		}
	})

	t.Run("nil arguments are skipped", func(t *testing.T) {
		var nilNode *VNode
		node := Div(nil, nilNode, "text")
		if len(node.Children) != 1 {
			t.Fatalf("Children len = %v, want 1", len(node.Children))
		}
		if node.Children[0].Kind != KindText {
			t.Errorf("Child kind = %v, want Text", node.Children[0].Kind)
		}
	})

	t.Run("key attribute", func(t *testing.T) {
		node := Span(Key(7))
		if node.Key != "7" {
			t.Errorf("Key = %q, want 7", node.Key)
		}
	})

	t.Run("data attribute", func(t *testing.T) {
		node := Div(Data("color", "red"))
		if node.Props["data-color"] != "red" {
			t.Errorf("data-color = %v, want red", node.Props["data-color"])
		}
	})
}

func TestBox(t *testing.T) {
	node := Box(50, 25, "red", Class("swatch"), Span())

	if !node.IsBox() {
		t.Fatal("expected box")
	}
	if node.BoxWidth() != 50 || node.BoxHeight() != 25 {
		t.Errorf("size = %dx%d, want 50x25", node.BoxWidth(), node.BoxHeight())
	}
	if node.BoxBackground() != "red" {
		t.Errorf("background = %q, want red", node.BoxBackground())
	}
	if node.Props["class"] != "swatch" || len(node.Children) != 1 {
		t.Errorf("extra args not applied: %+v", node)
	}

	if Div().IsBox() {
		t.Error("plain div should not be a box")
	}
	var nilNode *VNode
	if nilNode.IsBox() || nilNode.BoxWidth() != 0 {
		t.Error("nil node should not be a box")
	}
}

func TestVKindString(t *testing.T) {
	tests := []struct {
		kind VKind
		want string
	}{
		{KindElement, "Element"},
		{KindText, "Text"},
		{KindFragment, "Fragment"},
		{KindComponent, "Component"},
		{VKind(99), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("VKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}
