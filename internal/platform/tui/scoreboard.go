package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/connectn/internal/storage"
)

// Scoreboard layout constants
const (
	maxResults = 100 // Max results and standings to load
)

// ResultSource is where the scoreboard reads recorded games from.
type ResultSource interface {
	RecentResults(limit int) ([]storage.Result, error)
	Leaderboard(limit int) ([]storage.Standing, error)
}

// ScoreboardView selects what the scoreboard shows.
type ScoreboardView int

const (
	ViewLeaderboard ScoreboardView = iota
	ViewRecent
)

// Title returns the heading of the view.
func (v ScoreboardView) Title() string {
	if v == ViewRecent {
		return "RECENT GAMES"
	}
	return "LEADERBOARD"
}

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Switch key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Switch, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Switch, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Switch: key.NewBinding(
			key.WithKeys("tab", "shift+tab", "left", "right"),
			key.WithHelp("tab", "switch view"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel is the Bubble Tea model for the results history screen.
type ScoreboardModel struct {
	source    ResultSource
	view      ScoreboardView
	results   []storage.Result
	standings []storage.Standing
	loadErr   error
	table     table.Model
	help      help.Model
	keys      ScoreboardKeyMap
	width     int
	height    int
	quitting  bool
}

// NewScoreboardModel creates a new scoreboard model.
func NewScoreboardModel(source ResultSource, width, height int) ScoreboardModel {
	h := help.New()
	h.ShowAll = false

	m := ScoreboardModel{
		source: source,
		view:   ViewLeaderboard,
		keys:   DefaultScoreboardKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}
	m.load()
	m.table = m.createTable()
	m.updateTableRows()
	return m
}

// load reads both views from the source.
func (m *ScoreboardModel) load() {
	m.results, m.standings, m.loadErr = nil, nil, nil
	if m.source == nil {
		return
	}
	if m.standings, m.loadErr = m.source.Leaderboard(maxResults); m.loadErr != nil {
		return
	}
	m.results, m.loadErr = m.source.RecentResults(maxResults)
}

// columns returns the table columns of the current view.
func (m *ScoreboardModel) columns() []table.Column {
	if m.view == ViewRecent {
		return []table.Column{
			{Title: "Date", Width: 13},
			{Title: "Board", Width: 9},
			{Title: "Players", Width: max(20, m.width-70)},
			{Title: "Result", Width: 18},
			{Title: "Moves", Width: 6},
		}
	}
	return []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Player", Width: max(16, m.width-50)},
		{Title: "Wins", Width: 6},
		{Title: "Draws", Width: 6},
		{Title: "Played", Width: 7},
	}
}

// createTable creates a new table with appropriate columns.
func (m *ScoreboardModel) createTable() table.Model {
	t := table.New(
		table.WithColumns(m.columns()),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 5)), // Leave room for header, help, and margins
	)

	// Table styles
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// Rows returns the table rows of the current view.
func (m ScoreboardModel) Rows() []table.Row {
	if m.view == ViewRecent {
		rows := make([]table.Row, len(m.results))
		for i, r := range m.results {
			rows[i] = table.Row{
				r.CreatedAt.Format("Jan 02 15:04"),
				fmt.Sprintf("%dx%d/%d", r.Width, r.Height, r.TokensToConnect),
				SeatNames(r.Players),
				ResultText(r),
				fmt.Sprintf("%d", r.Moves),
			}
		}
		return rows
	}

	rows := make([]table.Row, len(m.standings))
	for i, s := range m.standings {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			s.Name,
			fmt.Sprintf("%d", s.Wins),
			fmt.Sprintf("%d", s.Draws),
			fmt.Sprintf("%d", s.Played),
		}
	}
	return rows
}

// updateTableRows updates the table with the current view's rows.
func (m *ScoreboardModel) updateTableRows() {
	m.table.SetRows(m.Rows())

	// Reset cursor to top
	m.table.GotoTop()
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Switch):
			if m.view == ViewLeaderboard {
				m.view = ViewRecent
			} else {
				m.view = ViewLeaderboard
			}
			// Column sets differ, so rows are cleared before the swap
			m.table.SetRows(nil)
			m.table.SetColumns(m.columns())
			m.updateTableRows()
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			// Pass to table for scrolling
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	// Pass other messages to table
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	// Title
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)

	b.WriteString(titleStyle.Render(centerText(m.view.Title(), m.width)))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(tableStyle.Render(m.renderTableContent()))

	// Help bar
	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderTableContent renders the table or empty message.
func (m ScoreboardModel) renderTableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)

	if m.loadErr != nil {
		return emptyStyle.Render(fmt.Sprintf("Could not load results:\n%v", m.loadErr))
	}
	if len(m.table.Rows()) == 0 {
		return emptyStyle.Render("No games recorded yet.\nPlay a game to get on the board!")
	}
	return m.table.View()
}

// SeatNames joins the player names of a result.
func SeatNames(seats []storage.Seat) string {
	names := make([]string, len(seats))
	for i, s := range seats {
		names[i] = s.Name
	}
	return strings.Join(names, ", ")
}

// ResultText describes how a recorded game ended.
func ResultText(r storage.Result) string {
	switch r.Outcome {
	case storage.OutcomeWon:
		return r.Winner + " won"
	case storage.OutcomeDraw:
		return "draw"
	default:
		return "abandoned"
	}
}

// RunScoreboard runs the results history screen.
func RunScoreboard(source ResultSource, width, height int) error {
	model := NewScoreboardModel(source, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
