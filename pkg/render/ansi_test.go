package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/vango-dev/colorctx/pkg/vdom"
)

func newTestANSI(profile termenv.Profile) *ANSI {
	var buf bytes.Buffer
	return NewANSI(&buf, ANSIConfig{Profile: &profile})
}

func TestANSIBoxSize(t *testing.T) {
	a := newTestANSI(termenv.Ascii)

	out := a.RenderToString(vdom.Box(50, 50, "red"))

	if w := lipgloss.Width(out); w != 10 {
		t.Errorf("width = %d, want 10", w)
	}
	if h := lipgloss.Height(out); h != 5 {
		t.Errorf("height = %d, want 5", h)
	}
}

func TestANSIRowJoinsHorizontally(t *testing.T) {
	a := newTestANSI(termenv.Ascii)

	row := vdom.Div(vdom.Class("row"), vdom.Box(10, 10, "red"), vdom.Box(10, 10, "blue"))
	out := a.RenderToString(row)

	// Two 2-column boxes and a one-column gap.
	if w := lipgloss.Width(out); w != 5 {
		t.Errorf("width = %d, want 5", w)
	}

	stacked := a.RenderToString(vdom.Div(vdom.Box(10, 10, "red"), vdom.Box(10, 10, "blue")))
	if h := lipgloss.Height(stacked); h != 2 {
		t.Errorf("height = %d, want 2", h)
	}
}

func TestANSIColors(t *testing.T) {
	a := newTestANSI(termenv.TrueColor)

	out := a.RenderToString(vdom.Box(10, 10, "red"))
	if !strings.Contains(out, "\x1b[") {
		t.Errorf("expected escape sequences, got %q", out)
	}

	plain := newTestANSI(termenv.Ascii).RenderToString(vdom.Box(10, 10, "red"))
	if strings.Contains(plain, "\x1b[") {
		t.Errorf("ascii profile should not emit color, got %q", plain)
	}
}

func TestANSIRender(t *testing.T) {
	a := newTestANSI(termenv.Ascii)

	var buf bytes.Buffer
	if err := a.Render(&buf, vdom.P(vdom.Text("black on tomato"))); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if buf.String() != "black on tomato\n" {
		t.Errorf("got %q", buf.String())
	}
}

func TestCSSHex(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"tomato", "#ff6347", true},
		{" Indigo ", "#4b0082", true},
		{"#abc", "#aabbcc", true},
		{"#A0B1C2", "#a0b1c2", true},
		{"#xyz", "", false},
		{"not a color", "", false},
	}
	for _, tt := range tests {
		got, ok := cssHex(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("cssHex(%q) = %q, %v; want %q, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}
