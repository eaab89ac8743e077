package main

import (
	"testing"
	"time"

	"github.com/lgbarn/chess-rules-go/internal/config"
)

func TestApplyFlags(t *testing.T) {
	t.Run("defaults leave config alone", func(t *testing.T) {
		cfg := config.NewConfig()
		cfg.Server.Addr = "127.0.0.1:2022"
		applyFlags(cfg, map[string]bool{})
		if cfg.Server.Addr != "127.0.0.1:2022" {
			t.Errorf("Addr = %q; unset flag must not override", cfg.Server.Addr)
		}
	})

	t.Run("set flags override", func(t *testing.T) {
		oldAddr, oldKey, oldIdle, oldMax, oldLog := *addr, *hostKey, *idleTimeout, *maxSessions, *logPath
		defer func() {
			*addr, *hostKey, *idleTimeout, *maxSessions, *logPath = oldAddr, oldKey, oldIdle, oldMax, oldLog
		}()
		*addr, *hostKey, *idleTimeout, *maxSessions, *logPath = ":2200", "key.pem", time.Minute, 3, "server.log"

		cfg := config.NewConfig()
		applyFlags(cfg, map[string]bool{"addr": true, "hostkey": true, "idle": true, "max-sessions": true, "log": true})

		want := config.ServerConfig{Addr: ":2200", HostKeyFile: "key.pem", IdleTimeout: time.Minute, MaxSessions: 3}
		if cfg.Server != want {
			t.Errorf("Server = %+v; want %+v", cfg.Server, want)
		}
		if cfg.LogPath != "server.log" {
			t.Errorf("LogPath = %q; want %q", cfg.LogPath, "server.log")
		}
	})
}
