package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/vango-dev/colorctx/internal/errors"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return dir
}

func TestNew(t *testing.T) {
	cfg := New()

	if cfg.Initial.Color != "black" || cfg.Initial.Subcolor != "tomato" {
		t.Errorf("Initial = %+v, want black on tomato", cfg.Initial)
	}
	if cfg.Addr() != "localhost:3000" {
		t.Errorf("Addr() = %q, want localhost:3000", cfg.Addr())
	}
	if cfg.Level() != slog.LevelInfo {
		t.Errorf("Level() = %v, want info", cfg.Level())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.SwatchSize != DefaultSwatchSize {
		t.Errorf("SwatchSize = %d, want %d", cfg.SwatchSize, DefaultSwatchSize)
	}
	if cfg.Path() != "" {
		t.Errorf("Path() = %q, want empty", cfg.Path())
	}
}

func TestLoadFile(t *testing.T) {
	dir := writeConfig(t, `{
		"initial": {"color": "blue"},
		"swatchSize": 80,
		"dev": {"port": 8080, "pretty": true},
		"logLevel": "debug"
	}`)

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Initial.Color != "blue" {
		t.Errorf("Initial.Color = %q, want blue", cfg.Initial.Color)
	}
	if cfg.Initial.Subcolor != "tomato" {
		t.Errorf("Initial.Subcolor = %q, want default tomato", cfg.Initial.Subcolor)
	}
	if cfg.SwatchSize != 80 {
		t.Errorf("SwatchSize = %d, want 80", cfg.SwatchSize)
	}
	if cfg.Addr() != "localhost:8080" {
		t.Errorf("Addr() = %q", cfg.Addr())
	}
	if !cfg.Dev.Pretty {
		t.Error("expected pretty")
	}
	if cfg.Level() != slog.LevelDebug {
		t.Errorf("Level() = %v, want debug", cfg.Level())
	}
	if cfg.Path() != filepath.Join(dir, ConfigFileName) {
		t.Errorf("Path() = %q", cfg.Path())
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		code    string
	}{
		{"invalid json", `{"initial":`, "E101"},
		{"wrong type", `{"swatchSize": "big"}`, "E101"},
		{"bad port", `{"dev": {"port": 70000}}`, "E102"},
		{"negative size", `{"swatchSize": -1}`, "E102"},
		{"bad level", `{"logLevel": "loud"}`, "E102"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			if !errors.HasCode(err, tt.code) {
				t.Errorf("err = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestLoadFileUnreadable(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.json"))
	if !errors.HasCode(err, "E100") {
		t.Errorf("err = %v, want E100", err)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"WARN", slog.LevelWarn},
		{"error", slog.LevelError},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, %v; want %v", tt.in, got, err, tt.want)
		}
	}
}
