// Package vdom provides the output description for colorctx renderers.
//
// Renderers do not draw pixels. They return a tree of VNodes describing
// rectangles (width, height, background) and the activation handlers a host
// should register for them. A host turns the tree into HTML or a terminal
// preview (see package render) and dispatches events back to the handlers.
//
// # Core Types
//
// VNode is the building block for elements, text, fragments, and embedded
// components. Props holds attributes and event handlers. Attr and
// EventHandler are used to build Props.
//
// # Element API
//
// Elements are created using variadic factory functions:
//
//	Div(Class("row"),
//	    Box(50, 50, "tomato", OnClick(pick)),
//	    Text("caption"),
//	)
//
// # Events
//
// Handlers receive an *Event. Secondary activation handlers call
// PreventDefault to suppress the platform behavior (a context menu):
//
//	OnContextMenu(func(e *Event) {
//	    e.PreventDefault()
//	    setSubcolor("indigo")
//	})
package vdom
