package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/glint-ui/glint/internal/errors"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "glint.json"

	// DefaultAddress is the default server listen address.
	DefaultAddress = ":8080"
)

// Config represents the complete glint.json configuration.
type Config struct {
	// Name is the project name.
	Name string `json:"name,omitempty"`

	// Version is the project version.
	Version string `json:"version,omitempty"`

	// Server contains server settings.
	Server ServerConfig `json:"server,omitempty"`

	// Log contains logging settings.
	Log LogConfig `json:"log,omitempty"`

	// Reactive contains reactive-core tuning.
	Reactive ReactiveConfig `json:"reactive,omitempty"`

	// configPath stores the path the config was loaded from.
	configPath string
}

// ServerConfig contains server settings.
type ServerConfig struct {
	// Address is the listen address (host:port).
	Address string `json:"address,omitempty"`

	// PageTitle is the title of the generated page shell.
	PageTitle string `json:"pageTitle,omitempty"`

	// Pretty enables indented HTML output. Development only.
	Pretty bool `json:"pretty,omitempty"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	// Level is the minimum log level: debug, info, warn, or error.
	Level string `json:"level,omitempty"`

	// Format is "text" or "json".
	Format string `json:"format,omitempty"`
}

// ReactiveConfig contains reactive-core tuning.
type ReactiveConfig struct {
	// MaxEffectDepth bounds synchronous effect re-entrancy.
	MaxEffectDepth int `json:"maxEffectDepth,omitempty"`

	// ResetDependencies re-tracks effect dependencies on every run
	// instead of accumulating them.
	ResetDependencies bool `json:"resetDependencies,omitempty"`
}

// New creates a Config with default values.
func New() *Config {
	return &Config{
		Version: "0.1.0",
		Server: ServerConfig{
			Address:   DefaultAddress,
			PageTitle: "Glint App",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads glint.json from the specified directory.
func Load(dir string) (*Config, error) {
	return LoadFile(filepath.Join(dir, ConfigFileName))
}

// LoadFile reads configuration from the specified file path.
// A missing file yields the defaults, not an error.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg := New()
			cfg.configPath = path
			return cfg, nil
		}
		return nil, errors.New("C001").Wrap(err)
	}

	cfg := New()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.New("C001").
			WithDetail("parse %s: %v", path, err).
			WithSuggestion("Check that glint.json is valid JSON")
	}
	cfg.configPath = path

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration back to the path it was loaded from.
func (c *Config) Save() error {
	if c.configPath == "" {
		c.configPath = ConfigFileName
	}
	return c.SaveTo(c.configPath)
}

// SaveTo writes the configuration as indented JSON.
func (c *Config) SaveTo(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.New("C001").Wrap(err)
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}

// Path returns the path the config was loaded from.
func (c *Config) Path() string { return c.configPath }

// Validate checks field values.
func (c *Config) Validate() error {
	switch c.Log.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return errors.New("C001").
			WithDetail("unknown log level %q", c.Log.Level).
			WithSuggestion("Use debug, info, warn, or error")
	}
	switch c.Log.Format {
	case "", "text", "json":
	default:
		return errors.New("C001").
			WithDetail("unknown log format %q", c.Log.Format).
			WithSuggestion("Use text or json")
	}
	if c.Reactive.MaxEffectDepth < 0 {
		return errors.New("C001").
			WithDetail("maxEffectDepth must not be negative")
	}
	return nil
}

// Exists reports whether a glint.json is present in dir.
func Exists(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, ConfigFileName))
	return err == nil
}
