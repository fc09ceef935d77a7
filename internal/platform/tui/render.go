package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/connectn/internal/board"
	"github.com/vovakirdan/connectn/internal/game"
	"github.com/vovakirdan/connectn/internal/platform/style"
	"github.com/vovakirdan/connectn/internal/player"
)

// cellWidth is the number of terminal columns per board cell.
const cellWidth = 3

// theme holds the styles used to draw the game screen.
type theme struct {
	color   bool
	empty   string
	title   lipgloss.Style
	frame   lipgloss.Style
	dim     lipgloss.Style
	message lipgloss.Style
	winning lipgloss.Style
	last    lipgloss.Style
}

func newTheme(color bool, emptySymbol string) theme {
	t := theme{
		color:   color,
		empty:   emptySymbol,
		title:   lipgloss.NewStyle().Bold(true),
		frame:   lipgloss.NewStyle(),
		dim:     lipgloss.NewStyle(),
		message: lipgloss.NewStyle(),
		winning: lipgloss.NewStyle().Reverse(true),
		last:    lipgloss.NewStyle().Underline(true),
	}
	if color {
		t.title = t.title.Foreground(lipgloss.Color("229"))
		t.frame = t.frame.Foreground(lipgloss.Color("240"))
		t.dim = t.dim.Foreground(lipgloss.Color("241"))
		t.message = t.message.Foreground(lipgloss.Color("208"))
	}
	return t
}

// player returns the style for p's tokens and name.
func (t theme) player(p player.Player) lipgloss.Style {
	s := lipgloss.NewStyle().Bold(true)
	if t.color {
		s = s.Foreground(style.PlayerColor(p))
	}
	return s
}

// cell renders one board cell, padded to cellWidth.
func (t theme) cell(tok board.Token, winning, last bool) string {
	if tok.IsEmpty() {
		return t.dim.Render(" " + t.empty + " ")
	}
	s := t.player(tok.Owner())
	switch {
	case winning:
		s = s.Inherit(t.winning)
	case last:
		s = s.Inherit(t.last)
	}
	return " " + s.Render(style.Symbol(tok.Owner())) + " "
}

// render draws the whole game screen.
func (m Model) render() string {
	var sb strings.Builder
	b := m.ctrl.Board()

	title := fmt.Sprintf("CONNECT %d  ·  %dx%d", b.TokensToConnect(), b.Width(), b.Height())
	sb.WriteString(m.theme.title.Render(centerText(title, m.width)))
	sb.WriteString("\n\n")

	sb.WriteString(m.renderBoard())
	sb.WriteString("\n")

	sb.WriteString(m.renderPlayers())
	sb.WriteString("\n\n")

	sb.WriteString(m.status())
	sb.WriteString("\n")
	if m.message != "" {
		sb.WriteString(m.theme.message.Render(m.message))
	}
	sb.WriteString("\n\n")

	sb.WriteString(m.theme.dim.Render(m.help.View(m.keys)))
	return sb.String()
}

// renderBoard draws the cursor, the grid and the column numbers.
func (m Model) renderBoard() string {
	b := m.ctrl.Board()
	var sb strings.Builder

	// Cursor row
	sb.WriteString(" ")
	for col := 0; col < b.Width(); col++ {
		if col == m.cursor && m.ctrl.IsRunning() {
			marker := m.theme.player(m.ctrl.CurrentPlayer()).Render("v")
			sb.WriteString(" " + marker + " ")
		} else {
			sb.WriteString(strings.Repeat(" ", cellWidth))
		}
	}
	sb.WriteString("\n")

	for row := b.Height() - 1; row >= 0; row-- {
		sb.WriteString(m.theme.frame.Render("|"))
		for col := 0; col < b.Width(); col++ {
			tok, _ := b.Token(row, col)
			c := board.Cell{Row: row, Col: col}
			isLast := m.last != nil && *m.last == c
			sb.WriteString(m.theme.cell(tok, m.winning[c], isLast))
		}
		sb.WriteString(m.theme.frame.Render("|"))
		sb.WriteString("\n")
	}
	sb.WriteString(m.theme.frame.Render("+" + strings.Repeat("-", b.Width()*cellWidth) + "+"))
	sb.WriteString("\n ")

	for col := 0; col < b.Width(); col++ {
		sb.WriteString(m.theme.dim.Render(fmt.Sprintf("%-*s", cellWidth, fmt.Sprintf(" %d", col))))
	}
	sb.WriteString("\n")
	return sb.String()
}

// renderPlayers lists the players with their symbols, marking whose turn it is.
func (m Model) renderPlayers() string {
	parts := make([]string, 0, m.ctrl.NumPlayers())
	current := m.ctrl.CurrentPlayer()
	for _, p := range m.ctrl.Players() {
		marker := "  "
		if m.ctrl.IsRunning() && p.Equal(current) {
			marker = "> "
		}
		label := fmt.Sprintf("%s (%s, %s)", p.Name(), style.Symbol(p), p.Kind())
		parts = append(parts, marker+m.theme.player(p).Render(label))
	}
	return strings.Join(parts, "   ")
}

// status describes the state of the game.
func (m Model) status() string {
	switch m.ctrl.State() {
	case game.Won:
		w, _ := m.ctrl.Winner()
		return fmt.Sprintf("Congratulations, %s! You win! Press r for a new game.", m.theme.player(w).Render(w.Name()))
	case game.Draw:
		return "Congrat--. Oh, nobody won. Press r for a new game."
	}

	current := m.ctrl.CurrentPlayer()
	name := m.theme.player(current).Render(current.Name())
	if m.automated() {
		return fmt.Sprintf("%s is thinking...", name)
	}
	return fmt.Sprintf("%s's Turn!", name)
}

// centerText pads text to center it within width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}
