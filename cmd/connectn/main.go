// connectn is an N-in-a-row connection game for two or more players,
// played in the terminal.
//
// Usage:
//
//	connectn play            - Play with line prompts
//	connectn tui             - Play in a full-screen terminal UI
//	connectn history         - Show recorded games and the leaderboard
//
// Global flags:
//
//	--config <path>     - Config file (default search: ~/.connectn, ./configs)
//	--db <path>         - Results database (default from config)
//	--seed <value>      - AI random seed for reproducible games
//	--no-color          - Disable colours
//	--log-level <level> - debug, info, warn or error (default: warn)
//	--log-file <path>   - Write logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig   string
	flagDBPath   string
	flagSeed     int64
	flagNoColor  bool
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "connectn",
	Short: "Connect N - line up your tokens in the terminal",
	Long: `Connect N is a generalised Connect Four for two or more players.
Players take turns dropping tokens into the columns of a grid; the first
to line up the configured number of tokens vertically, horizontally or
diagonally wins.

Available commands:
  play     - Play with line prompts
  tui      - Play in a full-screen terminal UI
  history  - Show recorded games and the leaderboard

Examples:
  connectn play
  connectn play --quick
  connectn tui --config ./configs/connectn.yaml
  connectn history`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to results database (default from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "AI RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colours")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(historyCmd)
}
