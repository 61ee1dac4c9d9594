package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/scoreboard"
)

// newLogger builds the command logger. Without --log-file, local play
// discards logs so they never draw over the game.
func newLogger(prefix string, fallback io.Writer) (*log.Logger, func(), error) {
	w, closeFn := fallback, func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		//nolint:errcheck // Best-effort close on exit
		w, closeFn = f, func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	return logger, closeFn, nil
}

// openStore opens the configured score backend.
// An unknown --store name fails before the data directory is created.
func openStore(logger *log.Logger) (*scoreboard.Store, error) {
	if !scoreboard.Exists(flagStore) {
		return nil, fmt.Errorf("unknown store %q (available: %s)", flagStore, strings.Join(scoreboard.Backends(), ", "))
	}
	backend, err := scoreboard.OpenBackend(flagStore, flagDataDir)
	if err != nil {
		return nil, err
	}
	return scoreboard.NewStore(backend, scoreboard.WithLogger(logger)), nil
}

// loadWorld loads the world tuning, reporting problems with a custom file.
func loadWorld() config.InvadersConfig {
	cfg, err := config.LoadInvaders(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v; using defaults\n", err)
	}
	return cfg
}

// seed returns --seed, or a time-based seed when it is 0.
func seed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}

// screenshotDir is where ctrl+s writes frames.
func screenshotDir() string {
	dir, err := scoreboard.ExpandDir(flagDataDir)
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "screenshots")
}
