// Package config provides configuration for the chess front ends.
package config

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Config holds all program configuration.
type Config struct {
	Display DisplayConfig `yaml:"display"`
	Server  ServerConfig  `yaml:"server"`

	// LogPath names a file to append the log to. Empty means no log.
	LogPath string `yaml:"log_path"`

	// LogFile receives log output. It is set at runtime, never from a file.
	LogFile io.Writer `yaml:"-"`
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Display: *NewDisplayConfig(),
		Server:  *NewServerConfig(),
		LogFile: io.Discard,
	}
}

// Load reads a YAML configuration file. Keys missing from the file keep
// their default values.
func Load(path string) (*Config, error) {
	cfg := NewConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading config %s", path)
	}
	if err := Parse(cfg, data, path); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Parse overlays YAML data onto cfg. source names the data in errors.
func Parse(cfg *Config, data []byte, source string) error {
	if err := yaml.Unmarshal(data, cfg); err != nil {
		perr := &errors.ParseError{
			Err:    fmt.Errorf("%w: %v", errors.ErrInvalidConfig, err),
			Source: source,
		}
		var typeErr *yaml.TypeError
		if errors.As(err, &typeErr) && len(typeErr.Errors) > 0 {
			perr.Err = fmt.Errorf("%w: %s", errors.ErrInvalidConfig, typeErr.Errors[0])
		}
		return perr
	}
	return cfg.Validate()
}

// Validate checks every section of the configuration.
func (c *Config) Validate() error {
	return c.Server.Validate()
}

// SetLog sets the log writer.
func (c *Config) SetLog(w io.Writer) {
	if w == nil {
		w = io.Discard
	}
	c.LogFile = w
}

// OpenLog opens LogPath for appending and makes it the log writer. The
// caller closes the returned file. With no LogPath the log is left as is
// and the returned closer does nothing.
func (c *Config) OpenLog() (io.Closer, error) {
	if c.LogPath == "" {
		return io.NopCloser(nil), nil
	}
	file, err := os.OpenFile(c.LogPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
	if err != nil {
		return nil, errors.Wrapf(err, "opening log file %s", c.LogPath)
	}
	c.LogFile = file
	return file, nil
}

// Logf writes one line to the log.
func (c *Config) Logf(format string, args ...interface{}) {
	if c.LogFile == nil {
		return
	}
	fmt.Fprintf(c.LogFile, format+"\n", args...)
}
