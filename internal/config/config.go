// Package config provides configuration management.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/hashicorp/hcl/v2/hclsimple"

	"interest-calc/internal/errors"
	"interest-calc/internal/logging"
)

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version"`

	// Output contains CLI output configuration
	Output OutputConfig `json:"output"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging"`

	// Server contains HTTP front-end configuration
	Server ServerConfig `json:"server"`
}

// OutputConfig contains output-related settings
type OutputConfig struct {
	// Format is the default output format (text, json)
	Format string `json:"format"`

	// NoColor disables ANSI colors in text output
	NoColor bool `json:"no_color"`
}

// ServerConfig contains HTTP server settings.
// Timeouts are Go duration strings such as "15s".
type ServerConfig struct {
	Address         string   `json:"address"`
	ReadTimeout     string   `json:"read_timeout"`
	WriteTimeout    string   `json:"write_timeout"`
	ShutdownTimeout string   `json:"shutdown_timeout"`
	AllowedOrigins  []string `json:"allowed_origins"`
}

// Default returns a default configuration
func Default() *Config {
	return &Config{
		Version: "1.0",
		Output: OutputConfig{
			Format:  "text",
			NoColor: false,
		},
		Logging: logging.DefaultConfig(),
		Server: ServerConfig{
			Address:         ":8080",
			ReadTimeout:     "15s",
			WriteTimeout:    "15s",
			ShutdownTimeout: "10s",
			AllowedOrigins:  []string{"*"},
		},
	}
}

// DefaultPath is $HOME/.interest-calc.hcl
func DefaultPath() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".interest-calc.hcl")
}

// Load loads configuration from a .hcl or .json file over the defaults.
// A missing file yields the defaults.
func Load(path string) (*Config, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, errors.Config("cannot stat config file", err)
	}

	var file fileConfig
	if err := hclsimple.DecodeFile(path, nil, &file); err != nil {
		return nil, errors.Config("cannot decode "+path, err)
	}

	cfg := Default()
	file.apply(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values that cannot be expressed in the file schema
func (c *Config) Validate() error {
	switch c.Output.Format {
	case "text", "json":
	default:
		return errors.Config("output format must be text or json, got "+c.Output.Format, nil)
	}
	for name, value := range map[string]string{
		"read_timeout":     c.Server.ReadTimeout,
		"write_timeout":    c.Server.WriteTimeout,
		"shutdown_timeout": c.Server.ShutdownTimeout,
	} {
		if _, err := time.ParseDuration(value); err != nil {
			return errors.Wrapf(errors.KindConfig, err, "invalid server.%s", name)
		}
	}
	return nil
}

// Timeouts returns the parsed server timeouts (read, write, shutdown).
// Call Validate first; unparsable values come back as zero.
func (s ServerConfig) Timeouts() (read, write, shutdown time.Duration) {
	read, _ = time.ParseDuration(s.ReadTimeout)
	write, _ = time.ParseDuration(s.WriteTimeout)
	shutdown, _ = time.ParseDuration(s.ShutdownTimeout)
	return read, write, shutdown
}

// Save saves configuration as JSON, which Load reads back
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Global configuration instance
var globalConfig = Default()

// Get returns the global configuration
func Get() *Config {
	return globalConfig
}

// Set sets the global configuration
func Set(config *Config) {
	globalConfig = config
}
