package config

import (
	"fmt"
	"time"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// ServerConfig holds settings for the SSH server.
type ServerConfig struct {
	// Addr is the listen address, host:port
	Addr string `yaml:"addr"`

	// HostKeyFile is a PEM private key. Empty means a key is generated at
	// startup.
	HostKeyFile string `yaml:"host_key_file"`

	// IdleTimeout closes connections that send nothing for this long.
	// Zero disables the timeout.
	IdleTimeout time.Duration `yaml:"idle_timeout"`

	// MaxSessions caps concurrent games. Zero means no cap.
	MaxSessions int `yaml:"max_sessions"`
}

// NewServerConfig creates a ServerConfig with default values.
func NewServerConfig() *ServerConfig {
	return &ServerConfig{
		Addr:        ":2222",
		IdleTimeout: 10 * time.Minute,
		MaxSessions: 16,
	}
}

// Validate checks that the server configuration is valid.
func (s *ServerConfig) Validate() error {
	if s.Addr == "" {
		return fmt.Errorf("server addr is empty: %w", errors.ErrInvalidConfig)
	}
	if s.IdleTimeout < 0 {
		return fmt.Errorf("idle timeout (%v) is negative: %w", s.IdleTimeout, errors.ErrInvalidConfig)
	}
	if s.MaxSessions < 0 {
		return fmt.Errorf("max sessions (%d) is negative: %w", s.MaxSessions, errors.ErrInvalidConfig)
	}
	return nil
}
