// Shmoopland is a whimsical text adventure engine.
// Usage: shmoopland [--version] [--plain] [--serve] [--script <file>] <game_directory>
package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/nathoo/shmoopland/cli"
	"github.com/nathoo/shmoopland/config"
	"github.com/nathoo/shmoopland/engine"
	"github.com/nathoo/shmoopland/loader"
	"github.com/nathoo/shmoopland/server"
	"github.com/nathoo/shmoopland/tui"
)

// Set via -ldflags at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	plain := false
	serve := false
	var gameDir string
	var scriptFile string

	args := os.Args[1:]
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--version":
			fmt.Printf("shmoopland %s (commit %s, built %s)\n", version, commit, date)
			return
		case "--plain":
			plain = true
		case "--serve":
			serve = true
		case "--script":
			if i+1 >= len(args) {
				fmt.Fprintf(os.Stderr, "--script requires a file path\n")
				os.Exit(1)
			}
			i++
			scriptFile = args[i]
		default:
			if gameDir == "" {
				gameDir = args[i]
			}
		}
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading configuration: %v\n", err)
		os.Exit(1)
	}
	if gameDir == "" {
		gameDir = cfg.DataDir
	}
	if gameDir == "" {
		fmt.Fprintf(os.Stderr, "Usage: shmoopland [--version] [--plain] [--serve] [--script <file>] <game_directory>\n")
		os.Exit(1)
	}

	logger := newLogger(cfg.LogLevel)

	store, err := loader.Open(gameDir, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading game: %v\n", err)
		os.Exit(1)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	game := engine.NewWithCache(store, seed, cfg.CacheSize, logger)

	// HTTP mode: one session behind an API.
	if serve {
		srv := server.New(game, logger)
		if err := srv.ListenAndServe(cfg.HTTPAddr); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	// Script mode: open file, force plain, echo commands.
	if scriptFile != "" {
		f, err := os.Open(scriptFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening script: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		c := cli.New(game, cfg.SaveDir)
		c.In = f
		c.EchoInput = true
		c.Run()
		return
	}

	// Use plain CLI if --plain flag or stdout is not a terminal.
	if plain || !isTerminal() {
		c := cli.New(game, cfg.SaveDir)
		c.Run()
		return
	}

	if err := tui.Run(game, cfg.SaveDir); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newLogger builds the process logger. Interactive front ends own
// stdout, so logs go to stderr.
func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}

// isTerminal returns true if stdout is a terminal (not piped/redirected).
func isTerminal() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}
