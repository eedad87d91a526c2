package errors

import (
	stderrors "errors"
	"fmt"
	"io"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	err := New("E201")

	if err.Code != "E201" {
		t.Errorf("Code = %q, want E201", err.Code)
	}
	if err.Category != CategoryHost {
		t.Errorf("Category = %q, want host", err.Category)
	}
	if err.Message != "Handler not found" {
		t.Errorf("Message = %q", err.Message)
	}
}

func TestNewUnknownCode(t *testing.T) {
	err := New("E999")
	if err.Message != "Unknown error" {
		t.Errorf("Message = %q, want Unknown error", err.Message)
	}
}

func TestRegistryCodes(t *testing.T) {
	for _, code := range []string{"E100", "E101", "E102", "E201", "E202", "E203", "E301", "E302"} {
		if _, ok := registry[code]; !ok {
			t.Errorf("code %s not registered", code)
		}
	}
}

func TestErrorString(t *testing.T) {
	err := New("E302").WithDetail(`format "svg"`)
	want := `E302: Unknown output format: format "svg"`
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}

	plain := Newf(CategoryCLI, "bad %s", "input")
	if plain.Error() != "bad input" {
		t.Errorf("Error() = %q, want bad input", plain.Error())
	}
}

func TestWrapAndHasCode(t *testing.T) {
	err := New("E100").Wrap(io.ErrUnexpectedEOF)

	if !stderrors.Is(err, io.ErrUnexpectedEOF) {
		t.Error("expected wrapped error to be reachable")
	}

	outer := fmt.Errorf("loading: %w", err)
	if !HasCode(outer, "E100") {
		t.Error("HasCode should see through wrapping")
	}
	if HasCode(outer, "E101") {
		t.Error("HasCode matched the wrong code")
	}
	if HasCode(io.EOF, "E100") || HasCode(nil, "E100") {
		t.Error("HasCode should be false for foreign errors")
	}
}

func TestFormat(t *testing.T) {
	err := New("E301").
		WithDetail(`"tomato" is not in the palette`).
		WithSuggestion("Use one of: red, orange").
		Wrap(io.EOF)

	out := err.Format()
	for _, want := range []string{"E301:", "Unknown palette color", "tomato", "Hint: Use one of", "Cause: EOF"} {
		if !strings.Contains(out, want) {
			t.Errorf("Format() missing %q:\n%s", want, out)
		}
	}
}
