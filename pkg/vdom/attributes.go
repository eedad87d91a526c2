package vdom

import "strings"

// attr creates an Attr with the given key and value.
func attr(key string, value any) Attr {
	return Attr{Key: key, Value: value}
}

// ID sets the id attribute.
func ID(id string) Attr { return attr("id", id) }

// Class sets the class attribute, joining multiple classes with spaces.
func Class(classes ...string) Attr { return attr("class", strings.Join(classes, " ")) }

// Title sets the title attribute.
func Title(title string) Attr { return attr("title", title) }

// Data creates a data-* attribute.
// Example: Data("color", "red") → data-color="red"
func Data(key, value string) Attr { return attr("data-"+key, value) }

// Width sets a box width in pixels.
func Width(px int) Attr { return attr("width", px) }

// Height sets a box height in pixels.
func Height(px int) Attr { return attr("height", px) }

// Background sets a box background. Any CSS color token is accepted as is.
func Background(color string) Attr { return attr("background", color) }
