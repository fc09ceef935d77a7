package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/connectn/internal/platform/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Play in a full-screen terminal UI",
	Long: `Start a game in a full-screen terminal UI. Board size and players
come from the config file.

Controls:
  Left/Right, h/l  - Move the cursor
  Enter/Space      - Drop a token
  0-9              - Drop into that column
  R                - New game
  ?                - Toggle help
  Q/Esc/Ctrl+C     - Quit

Logs are discarded unless --log-file is given.

Examples:
  connectn tui
  connectn tui --config ./three-players.yaml
  connectn tui --log-level debug --log-file ./connectn.log`,
	Args: cobra.NoArgs,
	Run:  runTUI,
}

func runTUI(_ *cobra.Command, _ []string) {
	cfg := loadConfig()

	// The alternate screen owns the terminal; logs only go to a file
	logger, closeLog := newLogger(io.Discard)
	defer closeLog()

	store := openStore(cfg, logger)

	runErr := tui.Run(tui.Options{
		Config:   cfg,
		Seed:     seed(),
		Color:    useColor(cfg, os.Stdout),
		Recorder: recorder(store),
		Logger:   logger,
	})

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
