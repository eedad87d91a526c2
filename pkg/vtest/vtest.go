package vtest

import (
	"strings"
	"testing"

	"github.com/vango-dev/colorctx/pkg/render"
	"github.com/vango-dev/colorctx/pkg/vdom"
)

// RenderToString renders a VNode and returns the HTML string.
// This is useful for asserting on rendered output.
//
// Example:
//
//	html := vtest.RenderToString(components.Square("red", 50))
//	if !strings.Contains(html, "background:red") {
//	    t.Error("missing background")
//	}
func RenderToString(node *vdom.VNode) string {
	r := render.NewRenderer(render.RendererConfig{})
	html, err := r.RenderToString(node)
	if err != nil {
		return ""
	}
	return html
}

// ExpectContains asserts that rendered output contains expected substring.
//
// Example:
//
//	vtest.ExpectContains(t, panel.Render(), "black on tomato")
func ExpectContains(t *testing.T, node *vdom.VNode, expected string) {
	t.Helper()
	html := RenderToString(node)
	if !strings.Contains(html, expected) {
		t.Errorf("expected rendered output to contain %q, got:\n%s", expected, truncate(html, 500))
	}
}

// ExpectNotContains asserts that rendered output does not contain substring.
func ExpectNotContains(t *testing.T, node *vdom.VNode, unexpected string) {
	t.Helper()
	html := RenderToString(node)
	if strings.Contains(html, unexpected) {
		t.Errorf("expected rendered output to NOT contain %q, got:\n%s", unexpected, truncate(html, 500))
	}
}

// ExpectAttribute asserts that rendered output contains an attribute value.
//
// Example:
//
//	vtest.ExpectAttribute(t, app.Render(), "data-renderer", "panel")
func ExpectAttribute(t *testing.T, node *vdom.VNode, attr, value string) {
	t.Helper()
	html := RenderToString(node)
	needle := attr + `="` + value + `"`
	if !strings.Contains(html, needle) {
		t.Errorf("expected attribute %s=%q not found, got:\n%s", attr, value, truncate(html, 500))
	}
}

// Backgrounds returns the background of every box under node, in document
// order.
func Backgrounds(node *vdom.VNode) []string {
	boxes := vdom.Boxes(node)
	out := make([]string, len(boxes))
	for i, b := range boxes {
		out[i] = b.BoxBackground()
	}
	return out
}

// FindSwatch returns the first node under root whose data-color attribute is
// color, or nil.
func FindSwatch(root *vdom.VNode, color string) *vdom.VNode {
	var found *vdom.VNode
	vdom.Walk(root, func(n *vdom.VNode) bool {
		if v, _ := n.Props["data-color"].(string); v == color {
			found = n
			return false
		}
		return true
	})
	return found
}

// Click invokes the onclick handler of the swatch for color.
func Click(t *testing.T, root *vdom.VNode, color string) *vdom.Event {
	t.Helper()
	return fire(t, root, color, "click")
}

// ContextMenu invokes the oncontextmenu handler of the swatch for color.
func ContextMenu(t *testing.T, root *vdom.VNode, color string) *vdom.Event {
	t.Helper()
	return fire(t, root, color, "contextmenu")
}

func fire(t *testing.T, root *vdom.VNode, color, typ string) *vdom.Event {
	t.Helper()
	node := FindSwatch(root, color)
	if node == nil {
		t.Fatalf("no swatch with data-color=%q", color)
	}
	e := vdom.NewEvent(typ, node.HID)
	if err := vdom.Invoke(node.Handler("on"+typ), e); err != nil {
		t.Fatalf("%s on %q: %v", typ, color, err)
	}
	return e
}

// truncate truncates a string to max length with ellipsis.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
