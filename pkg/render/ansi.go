package render

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/vango-dev/colorctx/pkg/vdom"
)

// ANSIConfig configures the terminal preview.
type ANSIConfig struct {
	// CellWidth is the number of pixels per terminal column. Rows use twice
	// this many pixels, since terminal cells are about twice as tall as wide.
	// Defaults to 5.
	CellWidth int

	// Profile forces a color profile. Zero means detect from the writer.
	Profile *termenv.Profile
}

// ANSI renders VNode trees as lipgloss-styled terminal blocks.
type ANSI struct {
	config   ANSIConfig
	renderer *lipgloss.Renderer
}

// NewANSI creates a terminal renderer writing to w.
func NewANSI(w io.Writer, config ANSIConfig) *ANSI {
	if config.CellWidth <= 0 {
		config.CellWidth = 5
	}
	r := lipgloss.NewRenderer(w)
	if config.Profile != nil {
		r.SetColorProfile(*config.Profile)
	}
	return &ANSI{config: config, renderer: r}
}

// RenderToString renders node to a string of styled lines.
func (a *ANSI) RenderToString(node *vdom.VNode) string {
	return a.renderNode(node)
}

// Render writes node followed by a newline.
func (a *ANSI) Render(w io.Writer, node *vdom.VNode) error {
	_, err := io.WriteString(w, a.renderNode(node)+"\n")
	return err
}

func (a *ANSI) renderNode(node *vdom.VNode) string {
	if node == nil {
		return ""
	}

	switch node.Kind {
	case vdom.KindText:
		return node.Text
	case vdom.KindComponent:
		if node.Comp == nil {
			return ""
		}
		return a.renderNode(node.Comp.Render())
	case vdom.KindFragment:
		return a.join(node, false)
	}

	if node.IsBox() {
		return a.renderBox(node)
	}
	return a.join(node, isRow(node))
}

// renderBox draws a filled rectangle, centering any child boxes inside it.
func (a *ANSI) renderBox(node *vdom.VNode) string {
	cols := max(1, node.BoxWidth()/a.config.CellWidth)
	rows := max(1, node.BoxHeight()/(2*a.config.CellWidth))

	style := a.renderer.NewStyle().Width(cols).Height(rows)
	hex, ok := cssHex(node.BoxBackground())
	if ok {
		style = style.Background(lipgloss.Color(hex))
	}

	inner := a.join(node, true)
	if inner == "" {
		return style.Render("")
	}

	var opts []lipgloss.WhitespaceOption
	if ok {
		opts = append(opts, lipgloss.WithWhitespaceBackground(lipgloss.Color(hex)))
	}
	return a.renderer.Place(cols, rows, lipgloss.Center, lipgloss.Center, inner, opts...)
}

// join renders node's children side by side (horizontal) or stacked.
func (a *ANSI) join(node *vdom.VNode, horizontal bool) string {
	parts := make([]string, 0, len(node.Children))
	for _, child := range node.Children {
		if s := a.renderNode(child); s != "" {
			parts = append(parts, s)
		}
	}
	switch {
	case len(parts) == 0:
		return ""
	case horizontal:
		return lipgloss.JoinHorizontal(lipgloss.Top, withGaps(parts)...)
	default:
		return lipgloss.JoinVertical(lipgloss.Left, parts...)
	}
}

// withGaps puts one blank column between horizontally joined parts.
func withGaps(parts []string) []string {
	if len(parts) < 2 {
		return parts
	}
	out := make([]string, 0, 2*len(parts)-1)
	for i, p := range parts {
		if i > 0 {
			out = append(out, " ")
		}
		out = append(out, p)
	}
	return out
}

// isRow reports whether an element lays its children out horizontally.
func isRow(node *vdom.VNode) bool {
	class, _ := node.Props["class"].(string)
	for _, c := range strings.Fields(class) {
		if c == "row" || c == "select-colors" {
			return true
		}
	}
	return false
}
