// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"time"

	"github.com/lgbarn/chess-rules-go/internal/config"
)

var (
	configFile  = flag.String("config", "", "YAML configuration file")
	addr        = flag.String("addr", ":2222", "Listen address")
	hostKey     = flag.String("hostkey", "", "PEM host key file (default: generate one per run)")
	idleTimeout = flag.Duration("idle", 10*time.Minute, "Disconnect after this long without input (0 = never)")
	maxSessions = flag.Int("max-sessions", 16, "Maximum concurrent games (0 = no limit)")
	logPath     = flag.String("log", "", "Append the server log to this file (default: stderr)")
	version     = flag.Bool("version", false, "Print version and exit")
)

// applyFlags copies flags given on the command line into cfg, so that they
// override values from the configuration file.
func applyFlags(cfg *config.Config, set map[string]bool) {
	if set["addr"] {
		cfg.Server.Addr = *addr
	}
	if set["hostkey"] {
		cfg.Server.HostKeyFile = *hostKey
	}
	if set["idle"] {
		cfg.Server.IdleTimeout = *idleTimeout
	}
	if set["max-sessions"] {
		cfg.Server.MaxSessions = *maxSessions
	}
	if set["log"] {
		cfg.LogPath = *logPath
	}
}

// setFlags returns the names of flags given on the command line.
func setFlags() map[string]bool {
	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })
	return set
}
