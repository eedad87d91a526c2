package config

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/vango-dev/colorctx/internal/errors"
	"github.com/vango-dev/colorctx/pkg/colors"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "colorctx.json"

	// DefaultPort is the default development host port.
	DefaultPort = 3000

	// DefaultHost is the default development host address.
	DefaultHost = "localhost"

	// DefaultSwatchSize is the default swatch edge length in pixels.
	DefaultSwatchSize = 50

	// DefaultLogLevel is the default slog level name.
	DefaultLogLevel = "info"
)

// Config represents colorctx.json.
type Config struct {
	// Initial is the state a new store starts with.
	Initial colors.State `json:"initial"`

	// SwatchSize is the edge length of display swatches in pixels.
	SwatchSize int `json:"swatchSize,omitempty"`

	// Dev contains development host configuration.
	Dev DevConfig `json:"dev"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `json:"logLevel,omitempty"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// DevConfig contains development host configuration.
type DevConfig struct {
	// Host is the address to bind.
	Host string `json:"host,omitempty"`

	// Port is the port to bind.
	Port int `json:"port,omitempty"`

	// Pretty enables indented HTML output.
	Pretty bool `json:"pretty,omitempty"`
}

// New creates a new Config with default values.
func New() *Config {
	return &Config{
		Initial:    colors.DefaultState(),
		SwatchSize: DefaultSwatchSize,
		Dev: DevConfig{
			Host: DefaultHost,
			Port: DefaultPort,
		},
		LogLevel: DefaultLogLevel,
	}
}

// Load reads colorctx.json from dir. A missing file yields defaults.
func Load(dir string) (*Config, error) {
	path := filepath.Join(dir, ConfigFileName)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return New(), nil
	}
	return LoadFile(path)
}

// LoadFile reads configuration from the specified file path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.New("E100").
			WithDetail(path).
			Wrap(err)
	}

	cfg := New()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.New("E101").
			WithDetail(fmt.Sprintf("%s: %v", path, err)).
			WithSuggestion("Check that " + ConfigFileName + " is valid JSON")
	}

	cfg.configPath = path
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Path returns the path where the config was loaded from.
func (c *Config) Path() string {
	return c.configPath
}

// applyDefaults fills in default values for empty fields.
func (c *Config) applyDefaults() {
	if c.Initial.Color == "" {
		c.Initial.Color = colors.DefaultColor
	}
	if c.Initial.Subcolor == "" {
		c.Initial.Subcolor = colors.DefaultSubcolor
	}
	if c.SwatchSize == 0 {
		c.SwatchSize = DefaultSwatchSize
	}
	if c.Dev.Host == "" {
		c.Dev.Host = DefaultHost
	}
	if c.Dev.Port == 0 {
		c.Dev.Port = DefaultPort
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
}

// Validate checks host settings. Colors are not validated.
func (c *Config) Validate() error {
	if c.Dev.Port < 1 || c.Dev.Port > 65535 {
		return errors.New("E102").
			WithDetail(fmt.Sprintf("dev.port %d is out of range", c.Dev.Port)).
			WithSuggestion("Use a port between 1 and 65535")
	}
	if c.SwatchSize < 1 {
		return errors.New("E102").
			WithDetail(fmt.Sprintf("swatchSize %d must be positive", c.SwatchSize))
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// Addr returns host:port for the development host.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Dev.Host, c.Dev.Port)
}

// Level returns the configured slog level.
func (c *Config) Level() slog.Level {
	level, _ := ParseLevel(c.LogLevel)
	return level
}

// ParseLevel converts a level name to a slog.Level.
func ParseLevel(name string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(name))); err != nil {
		return slog.LevelInfo, errors.New("E102").
			WithDetail(fmt.Sprintf("logLevel %q is not one of debug, info, warn, error", name))
	}
	return level, nil
}
