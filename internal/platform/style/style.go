// Package style holds the player palette and token symbols shared by the
// line and full-screen front ends.
package style

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/connectn/internal/player"
)

// PlayerColors is the palette players cycle through by id.
var PlayerColors = []lipgloss.Color{
	lipgloss.Color("1"), // Red
	lipgloss.Color("2"), // Green
	lipgloss.Color("4"), // Blue
	lipgloss.Color("5"), // Magenta
	lipgloss.Color("3"), // Yellow
	lipgloss.Color("6"), // Cyan
}

// PlayerColor returns the palette colour for p.
func PlayerColor(p player.Player) lipgloss.Color {
	id := p.ID()
	if id < 0 {
		id = -id
	}
	return PlayerColors[id%len(PlayerColors)]
}

// Symbol returns the character shown for p's tokens: the first letter of
// the player's name.
func Symbol(p player.Player) string {
	for _, r := range p.Name() {
		return string(r)
	}
	return "?"
}
