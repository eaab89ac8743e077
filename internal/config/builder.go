package config

import (
	"io"
	"time"
)

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithUnicode selects glyphs (true) or letters (false).
func (b *ConfigBuilder) WithUnicode(enabled bool) *ConfigBuilder {
	b.cfg.Display.Unicode = enabled
	return b
}

// WithColour enables ANSI square colours.
func (b *ConfigBuilder) WithColour(enabled bool) *ConfigBuilder {
	b.cfg.Display.Colour = enabled
	return b
}

// WithFlip draws the board from Black's side.
func (b *ConfigBuilder) WithFlip(enabled bool) *ConfigBuilder {
	b.cfg.Display.Flip = enabled
	return b
}

// WithCoordinates enables file and rank labels.
func (b *ConfigBuilder) WithCoordinates(enabled bool) *ConfigBuilder {
	b.cfg.Display.Coordinates = enabled
	return b
}

// WithAddr sets the server listen address.
func (b *ConfigBuilder) WithAddr(addr string) *ConfigBuilder {
	b.cfg.Server.Addr = addr
	return b
}

// WithHostKeyFile sets the server host key.
func (b *ConfigBuilder) WithHostKeyFile(path string) *ConfigBuilder {
	b.cfg.Server.HostKeyFile = path
	return b
}

// WithIdleTimeout sets the server idle timeout.
func (b *ConfigBuilder) WithIdleTimeout(d time.Duration) *ConfigBuilder {
	b.cfg.Server.IdleTimeout = d
	return b
}

// WithMaxSessions caps concurrent server sessions.
func (b *ConfigBuilder) WithMaxSessions(n int) *ConfigBuilder {
	b.cfg.Server.MaxSessions = n
	return b
}

// WithLog sets the log writer.
func (b *ConfigBuilder) WithLog(w io.Writer) *ConfigBuilder {
	b.cfg.SetLog(w)
	return b
}
