package vdom

// createElement creates a new VNode with the given tag and arguments.
// Arguments can be: nil, Attr, []Attr, *VNode, []*VNode, Component, string, EventHandler.
func createElement(tag string, args []any) *VNode {
	node := &VNode{
		Kind:     KindElement,
		Tag:      tag,
		Props:    make(Props),
		Children: make([]*VNode, 0),
	}

	for _, arg := range args {
		switch v := arg.(type) {
		case nil:
			// Ignore nil (allows conditional attributes)
			continue

		case Attr:
			node.setAttr(v)

		case []Attr:
			for _, a := range v {
				node.setAttr(a)
			}

		case *VNode:
			if v != nil {
				node.Children = append(node.Children, v)
			}

		case []*VNode:
			for _, child := range v {
				if child != nil {
					node.Children = append(node.Children, child)
				}
			}

		case Component:
			node.Children = append(node.Children, Embed(v))

		case string:
			// Shorthand for text node
			node.Children = append(node.Children, Text(v))

		case EventHandler:
			node.Props[v.Event] = v.Handler
		}
	}

	return node
}

func (v *VNode) setAttr(a Attr) {
	if a.Key == "" {
		return
	}
	if a.Key == "key" {
		if s, ok := a.Value.(string); ok {
			v.Key = s
		}
	}
	v.Props[a.Key] = a.Value
}

func Main(args ...any) *VNode    { return createElement("main", args) }
func Section(args ...any) *VNode { return createElement("section", args) }
func H1(args ...any) *VNode      { return createElement("h1", args) }
func H2(args ...any) *VNode      { return createElement("h2", args) }
func Div(args ...any) *VNode     { return createElement("div", args) }
func P(args ...any) *VNode       { return createElement("p", args) }
func Span(args ...any) *VNode    { return createElement("span", args) }

// Box creates a width x height rectangle filled with background.
// Additional arguments are applied as for Div.
func Box(width, height int, background string, args ...any) *VNode {
	all := make([]any, 0, len(args)+3)
	all = append(all, Width(width), Height(height), Background(background))
	all = append(all, args...)
	return createElement("div", all)
}

// BoxWidth returns the width of a box node, or 0.
func (v *VNode) BoxWidth() int {
	n, _ := v.prop("width").(int)
	return n
}

// BoxHeight returns the height of a box node, or 0.
func (v *VNode) BoxHeight() int {
	n, _ := v.prop("height").(int)
	return n
}

// BoxBackground returns the background of a box node, or "".
func (v *VNode) BoxBackground() string {
	s, _ := v.prop("background").(string)
	return s
}

// IsBox reports whether the node carries box geometry.
func (v *VNode) IsBox() bool {
	if v == nil || v.Kind != KindElement {
		return false
	}
	_, ok := v.Props["background"]
	return ok
}

func (v *VNode) prop(key string) any {
	if v == nil || v.Props == nil {
		return nil
	}
	return v.Props[key]
}
