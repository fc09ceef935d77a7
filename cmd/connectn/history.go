package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/connectn/internal/platform/tui"
	"github.com/vovakirdan/connectn/internal/storage"
)

var (
	flagLimit int
	flagPlain bool
	flagClear bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recorded games and the leaderboard",
	Long: `Display the win leaderboard and the most recent games.

On a terminal the history opens in a table view (Tab switches between the
leaderboard and recent games). Otherwise, or with --plain, it is printed
as text.

Examples:
  connectn history
  connectn history --plain --limit 5
  connectn history --db ./results.db
  connectn history --clear`,
	Args: cobra.NoArgs,
	Run:  runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of games and players to print")
	historyCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print text instead of the table view")
	historyCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded games")
}

func runHistory(_ *cobra.Command, _ []string) {
	cfg := loadConfig()

	path := cfg.Storage.Path
	if flagDBPath != "" {
		path = flagDBPath
	}

	store, err := storage.Open(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening results database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearResults(); err != nil {
			store.Close()
			fmt.Fprintf(os.Stderr, "Error clearing results: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("All recorded games deleted.")
		return
	}

	if !flagPlain && term.IsTerminal(int(os.Stdout.Fd())) {
		width, height := terminalSize()
		if err := tui.RunScoreboard(store, width, height); err != nil {
			store.Close()
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := printHistory(store, flagLimit); err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error retrieving results: %v\n", err)
		os.Exit(1)
	}
}

// printHistory writes the leaderboard and recent games as plain text.
func printHistory(store *storage.Store, limit int) error {
	standings, err := store.Leaderboard(limit)
	if err != nil {
		return err
	}
	results, err := store.RecentResults(limit)
	if err != nil {
		return err
	}

	fmt.Println("Leaderboard")
	fmt.Println()

	if len(standings) == 0 {
		fmt.Println("No games recorded yet.")
		fmt.Println()
		fmt.Println("Play 'connectn play' to get on the board!")
		return nil
	}

	// Print header
	fmt.Printf("  %-4s  %-20s  %5s  %5s  %6s\n", "Rank", "Player", "Wins", "Draws", "Played")
	fmt.Printf("  %-4s  %-20s  %5s  %5s  %6s\n", "----", "------", "----", "-----", "------")
	for i, s := range standings {
		fmt.Printf("  %-4d  %-20s  %5d  %5d  %6d\n", i+1, s.Name, s.Wins, s.Draws, s.Played)
	}

	fmt.Println()
	fmt.Println("Recent games")
	fmt.Println()
	fmt.Printf("  %-16s  %-8s  %-30s  %-16s  %s\n", "Date", "Board", "Players", "Result", "Moves")
	fmt.Printf("  %-16s  %-8s  %-30s  %-16s  %s\n", "----", "-----", "-------", "------", "-----")
	for _, r := range results {
		board := fmt.Sprintf("%dx%d/%d", r.Width, r.Height, r.TokensToConnect)
		fmt.Printf("  %-16s  %-8s  %-30s  %-16s  %d\n",
			r.CreatedAt.Format("2006-01-02 15:04"), board, tui.SeatNames(r.Players), tui.ResultText(r), r.Moves)
	}

	// Show totals
	if sum, err := store.Summary(); err == nil {
		fmt.Println()
		fmt.Printf("Games: %d  (won %d, drawn %d, abandoned %d)\n", sum.Games, sum.Won, sum.Draws, sum.Quits)
	}
	return nil
}
