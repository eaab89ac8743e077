// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/chess-rules-go/internal/config"
)

var (
	configFile  = flag.String("config", "", "YAML configuration file")
	unicode     = flag.Bool("unicode", true, "Draw pieces as chess glyphs instead of letters")
	colour      = flag.Bool("colour", true, "Colour the squares (off when stdout is not a terminal)")
	flip        = flag.Bool("flip", false, "Draw the board with Black at the bottom")
	coordinates = flag.Bool("coords", true, "Print file and rank labels")
	logPath     = flag.String("log", "", "Append a log of the game to this file")
	version     = flag.Bool("version", false, "Print version and exit")
)

// applyFlags copies flags given on the command line into cfg, so that they
// override values from the configuration file.
func applyFlags(cfg *config.Config, set map[string]bool) {
	if set["unicode"] {
		cfg.Display.Unicode = *unicode
	}
	if set["colour"] {
		cfg.Display.Colour = *colour
	}
	if set["flip"] {
		cfg.Display.Flip = *flip
	}
	if set["coords"] {
		cfg.Display.Coordinates = *coordinates
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
