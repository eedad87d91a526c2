// Package vtest provides testing helpers for colorctx renderers.
//
// The helpers render VNode trees to HTML for substring assertions and drive
// interactions by invoking handlers directly, without a host.
//
// # Quick Start
//
//	func TestPicker(t *testing.T) {
//	    app := demo.New()
//	    defer app.Unmount()
//
//	    vtest.Click(t, app.Render(), "green")
//	    vtest.ExpectContains(t, app.Render(), "green on tomato")
//	}
//
// # Finding Swatches
//
// Palette squares carry a data-color attribute. FindSwatch returns the first
// one with the given color:
//
//	node := vtest.FindSwatch(app.Render(), "blue")
//
// # Events
//
// Click and ContextMenu return the delivered event so tests can check
// whether the handler called PreventDefault:
//
//	e := vtest.ContextMenu(t, app.Render(), "indigo")
//	if !e.DefaultPrevented() {
//	    t.Error("context menu not suppressed")
//	}
package vtest
