// Package render turns renderer output into something a host can display.
//
// Two targets are provided:
//
//   - Renderer writes HTML. Boxes become divs with inline width, height, and
//     background styles. Interactive elements receive a data-hid attribute
//     and their handlers are collected in a registry keyed "hid_onevent"
//     (e.g. "h3_onclick"), which a host uses to dispatch events.
//   - ANSI writes a terminal preview using lipgloss background colors.
//
// # Basic Usage
//
//	renderer := render.NewRenderer(render.RendererConfig{})
//	html, err := renderer.RenderToString(app.Render())
//	handlers := renderer.Handlers()
//
// To render a complete HTML document:
//
//	err := renderer.RenderPage(w, render.PageData{Title: "colors", Body: node})
//
// # Security
//
// All text content and attribute values are escaped.
package render
