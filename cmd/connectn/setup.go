package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/connectn/internal/config"
	"github.com/vovakirdan/connectn/internal/storage"
)

// loadConfig loads the config or exits.
func loadConfig() config.Config {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

// newLogger creates the logger for a command. Logs go to --log-file when
// given, otherwise to fallback. The returned closer releases the file.
func newLogger(fallback io.Writer) (*log.Logger, func()) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid --log-level %q\n", flagLogLevel)
		os.Exit(1)
	}

	w, closer := fallback, func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(config.ExpandHome(flagLogFile), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: cannot open log file: %v\n", err)
			os.Exit(1)
		}
		w, closer = f, func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "connectn",
		Level:           level,
	})
	return logger, closer
}

// openStore opens the results database, or returns nil when recording is
// disabled or the database cannot be opened. Games still work without it.
func openStore(cfg config.Config, logger *log.Logger) *storage.Store {
	if !cfg.Storage.Enabled && flagDBPath == "" {
		return nil
	}
	path := cfg.Storage.Path
	if flagDBPath != "" {
		path = flagDBPath
	}

	store, err := storage.Open(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open results database: %v\n", err)
		logger.Warn("results will not be recorded", "path", path, "err", err)
		return nil
	}
	return store
}

// recorder wraps store so that a missing store stays a nil interface.
func recorder(store *storage.Store) storage.Recorder {
	if store == nil {
		return nil
	}
	return store
}

// seed returns --seed, or a time-based seed when it is not set.
func seed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}

// useColor reports whether output to f should be coloured.
func useColor(cfg config.Config, f *os.File) bool {
	if flagNoColor || !cfg.Display.Color {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// terminalSize returns the size of stdout, or 80x24 when it is not a terminal.
func terminalSize() (int, int) {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return width, height
}
