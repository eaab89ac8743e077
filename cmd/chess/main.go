// chess plays a game between two people at one terminal.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"golang.org/x/term"

	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/session"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *version {
		fmt.Printf("chess version %s\n", programVersion)
		os.Exit(0)
	}

	cfg, err := loadConfig(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	applyFlags(cfg, setFlags())

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		cfg.Display.Colour = false
	}

	logCloser, err := cfg.OpenLog()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logCloser.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := session.New("local", cfg, os.Stdin, os.Stdout).Run(ctx); err != nil && ctx.Err() == nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig reads path, or returns defaults when path is empty.
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.NewConfig(), nil
	}
	return config.Load(path)
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chess [options]\n\n")
	fmt.Fprintf(os.Stderr, "Play chess against a friend at this terminal.\n")
	fmt.Fprintf(os.Stderr, "Enter moves as e2e4; type help for other commands.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
}
