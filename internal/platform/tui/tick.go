// Package tui provides the Bubble Tea screens for connectn: the game board
// and the results history.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// thinkMsg asks the model to play the automated player's move. turn guards
// against stale messages from a game that has moved on or restarted.
type thinkMsg struct {
	turn int
}

// thinkCmd returns a Bubble Tea command that fires after the AI think delay.
func thinkCmd(delay time.Duration, turn int) tea.Cmd {
	if delay <= 0 {
		return func() tea.Msg { return thinkMsg{turn: turn} }
	}
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return thinkMsg{turn: turn}
	})
}
