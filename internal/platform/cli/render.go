package cli

import (
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/connectn/internal/board"
	"github.com/vovakirdan/connectn/internal/platform/style"
	"github.com/vovakirdan/connectn/internal/player"
)

// HorizontalRule separates distinct steps of the game output.
var HorizontalRule = strings.Repeat("=", 32)

const (
	outerPadding = "   "
	innerPadding = " "
)

// Renderer draws boards and messages as text.
type Renderer struct {
	color       bool
	emptySymbol string
	lg          *lipgloss.Renderer
	normal      lipgloss.Style
	bold        lipgloss.Style
}

// NewRenderer creates a renderer writing for w. With color off no escape
// sequences are produced; with color on, lipgloss still drops them when w
// is not a terminal.
func NewRenderer(w io.Writer, color bool, emptySymbol string) *Renderer {
	if emptySymbol == "" {
		emptySymbol = "O"
	}
	lg := lipgloss.NewRenderer(w)
	return &Renderer{
		color:       color,
		emptySymbol: emptySymbol,
		lg:          lg,
		normal:      lg.NewStyle().Foreground(lipgloss.Color("7")),
		bold:        lg.NewStyle().Foreground(lipgloss.Color("15")).Bold(true),
	}
}

func (r *Renderer) paint(s lipgloss.Style, text string) string {
	if !r.color {
		return text
	}
	return s.Render(text)
}

// Token renders one cell.
func (r *Renderer) Token(t board.Token) string {
	if t.IsEmpty() {
		return r.paint(r.normal, r.emptySymbol)
	}
	owner := t.Owner()
	s := r.lg.NewStyle().Foreground(style.PlayerColor(owner)).Bold(true)
	return r.paint(s, style.Symbol(owner))
}

// Name renders a player's name in their colour.
func (r *Renderer) Name(p player.Player) string {
	return r.paint(r.lg.NewStyle().Foreground(style.PlayerColor(p)).Bold(true), p.Name())
}

// Bold renders emphasised text.
func (r *Renderer) Bold(text string) string {
	return r.paint(r.bold, text)
}

// Board renders the grid top row first, followed by the column numbers
// written vertically, one digit per line.
func (r *Renderer) Board(b *board.Board) string {
	var sb strings.Builder
	sb.WriteString(HorizontalRule)
	sb.WriteString("\n\n")

	for row := b.Height() - 1; row >= 0; row-- {
		sb.WriteString(outerPadding)
		for col := 0; col < b.Width(); col++ {
			tok, _ := b.Token(row, col)
			sb.WriteString(r.Token(tok))
			sb.WriteString(innerPadding)
		}
		sb.WriteString("\n")
	}
	sb.WriteString("\n")

	digits := len(strconv.Itoa(b.Width() - 1))
	for d := 0; d < digits; d++ {
		var line strings.Builder
		line.WriteString(outerPadding)
		for col := 0; col < b.Width(); col++ {
			num := strconv.Itoa(col)
			if d < len(num) {
				line.WriteByte(num[d])
			} else {
				line.WriteByte(' ')
			}
			line.WriteString(innerPadding)
		}
		sb.WriteString(r.Bold(line.String()))
		sb.WriteString("\n")
	}
	sb.WriteString("\n")
	return sb.String()
}
