// chess-server offers chess games over SSH. Connect with any SSH client;
// each connection is a board for two players sharing the keyboard.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/server"
)

const (
	programVersion = "0.1.0"
	shutdownGrace  = 10 * time.Second
)

func main() {
	flag.Usage = usage
	flag.Parse()

	if *version {
		fmt.Printf("chess-server version %s\n", programVersion)
		os.Exit(0)
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.NewConfig()
	if *configFile != "" {
		var err error
		if cfg, err = config.Load(*configFile); err != nil {
			return err
		}
	}
	applyFlags(cfg, setFlags())
	if err := cfg.Validate(); err != nil {
		return err
	}

	cfg.SetLog(os.Stderr)
	logCloser, err := cfg.OpenLog()
	if err != nil {
		return err
	}
	defer logCloser.Close()

	srv, err := server.New(cfg)
	if err != nil {
		return err
	}

	serveErr := make(chan error, 1)
	go func() { serveErr <- srv.ListenAndServe() }()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serveErr:
		return err
	case sig := <-stop:
		cfg.Logf("received %v", sig)
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return err
	}
	if err := <-serveErr; err != nil && !errors.Is(err, server.ErrServerClosed) {
		return err
	}
	return nil
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chess-server [options]\n\n")
	fmt.Fprintf(os.Stderr, "Serve chess games over SSH.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
}
