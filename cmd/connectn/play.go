package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/connectn/internal/platform/cli"
)

var flagQuick bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play with line prompts",
	Long: `Start a game in the terminal, one command per line.

Setup asks for the number of tokens to connect, the board size and the
players. Press Enter to accept the default shown in brackets.

Player kinds:
  human      - Moves are typed in
  random     - Picks any column
  adjacency  - Plays next to its own tokens
  lookahead  - Looks for the longest run it can make

Actions:
  #  - Drop a token into column #
  H  - Show help
  D  - Show the board again
  Q  - Quit

Examples:
  connectn play
  connectn play --quick
  connectn play --no-color --seed 42`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagQuick, "quick", false, "Skip setup prompts and use the config file")
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg := loadConfig()

	logger, closeLog := newLogger(os.Stderr)
	defer closeLog()

	store := openStore(cfg, logger)
	if store != nil {
		defer store.Close()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	session := cli.NewSession(os.Stdin, os.Stdout, cli.Options{
		Config:   cfg,
		Quick:    flagQuick,
		Color:    useColor(cfg, os.Stdout),
		Seed:     seed(),
		Recorder: recorder(store),
		Logger:   logger,
	})

	if _, err := session.Run(ctx); err != nil {
		if ctx.Err() != nil {
			return
		}
		if store != nil {
			store.Close()
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
