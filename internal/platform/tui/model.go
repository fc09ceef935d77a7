package tui

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/connectn/internal/ai"
	"github.com/vovakirdan/connectn/internal/board"
	"github.com/vovakirdan/connectn/internal/config"
	"github.com/vovakirdan/connectn/internal/game"
	"github.com/vovakirdan/connectn/internal/player"
	"github.com/vovakirdan/connectn/internal/storage"
)

// maxPolicyRetries bounds how often a policy may propose a full column.
const maxPolicyRetries = 1000

// Options configures the game screen.
type Options struct {
	Config   config.Config
	Seed     int64
	Color    bool
	Recorder storage.Recorder
	Logger   *log.Logger
}

// Model is the Bubble Tea model for a game of connectn.
type Model struct {
	ctrl     *game.Controller
	roster   *ai.Roster
	theme    theme
	keys     GameKeyMap
	help     help.Model
	recorder storage.Recorder
	log      *log.Logger
	delay    time.Duration

	cursor   int
	turn     int // Incremented on every applied move and restart
	last     *board.Cell
	winning  map[board.Cell]bool
	message  string
	recorded bool // Whether the current game has been recorded
	width    int
	height   int
	quitting bool
}

// NewModel creates the game model from the config.
func NewModel(opts Options) (Model, error) {
	cfg := opts.Config
	if err := cfg.Validate(); err != nil {
		return Model{}, err
	}
	b, err := cfg.NewBoard()
	if err != nil {
		return Model{}, err
	}
	players, err := cfg.BuildPlayers(player.NewSequence())
	if err != nil {
		return Model{}, err
	}
	ctrl, err := game.NewController(b, players)
	if err != nil {
		return Model{}, err
	}

	// Use time-based seed if not specified
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.ShowAll = false

	return Model{
		ctrl:     ctrl,
		roster:   ai.NewRoster(players, rand.New(rand.NewSource(seed))),
		theme:    newTheme(opts.Color, cfg.Display.Symbol()),
		keys:     DefaultGameKeyMap(),
		help:     h,
		recorder: opts.Recorder,
		log:      logger,
		delay:    cfg.AI.ThinkDelay(),
		cursor:   b.Width() / 2,
	}, nil
}

// Init schedules the first move when an automated player starts.
func (m Model) Init() tea.Cmd {
	return m.nextTurn()
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case thinkMsg:
		return m.handleThink(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.record()
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Restart):
		m.record()
		m.ctrl.Restart()
		m.turn++
		m.last = nil
		m.winning = nil
		m.recorded = false
		m.message = "New game."
		m.log.Info("game restarted")
		return m, m.nextTurn()
	}

	if !m.ctrl.IsRunning() || m.automated() {
		return m, nil
	}

	width := m.ctrl.Board().Width()
	switch {
	case key.Matches(msg, m.keys.Left):
		m.cursor = (m.cursor - 1 + width) % width
	case key.Matches(msg, m.keys.Right):
		m.cursor = (m.cursor + 1) % width
	case key.Matches(msg, m.keys.Drop):
		return m.drop(m.cursor)
	case key.Matches(msg, m.keys.Column):
		if col, ok := columnKey(msg); ok {
			return m.drop(col)
		}
	}
	return m, nil
}

// handleThink plays the automated player's move.
func (m Model) handleThink(msg thinkMsg) (tea.Model, tea.Cmd) {
	if msg.turn != m.turn || !m.ctrl.IsRunning() {
		return m, nil
	}
	current := m.ctrl.CurrentPlayer()
	policy, ok := m.roster.For(current)
	if !ok {
		return m, nil
	}

	for attempt := 0; attempt < maxPolicyRetries; attempt++ {
		col := policy.Decide(current, m.ctrl.Board())
		out, err := m.ctrl.Apply(col)
		if err != nil {
			m.log.Debug("policy move rejected", "player", current.Name(), "col", col, "err", err)
			continue
		}
		m.cursor = col
		return m.applied(out)
	}

	m.message = fmt.Sprintf("%s could not find an open column.", current.Name())
	return m, nil
}

// drop plays the human player's move into col.
func (m Model) drop(col int) (tea.Model, tea.Cmd) {
	out, err := m.ctrl.Apply(col)
	if err != nil {
		switch {
		case errors.Is(err, board.ErrInvalidColumn):
			m.message = fmt.Sprintf("There is no column %d.", col)
		case errors.Is(err, board.ErrFullColumn):
			m.message = fmt.Sprintf("Column %d is full.", col)
		default:
			m.message = err.Error()
		}
		return m, nil
	}
	m.cursor = col
	return m.applied(out)
}

// applied updates the view state after a successful move.
func (m Model) applied(out game.Outcome) (tea.Model, tea.Cmd) {
	m.turn++
	m.last = &board.Cell{Row: out.Row, Col: out.Col}
	m.message = ""
	m.log.Debug("move", "player", out.Player.Name(), "col", out.Col, "row", out.Row)

	switch out.State {
	case game.Won:
		m.winning = make(map[board.Cell]bool)
		for _, c := range m.ctrl.Board().WinningCells(out.Row, out.Col) {
			m.winning[c] = true
		}
		m.record()
		return m, nil
	case game.Draw:
		m.record()
		return m, nil
	}
	return m, m.nextTurn()
}

// nextTurn schedules the automated player's move, if it is their turn.
func (m Model) nextTurn() tea.Cmd {
	if !m.ctrl.IsRunning() || !m.automated() {
		return nil
	}
	return thinkCmd(m.delay, m.turn)
}

// automated reports whether the current player is played by a policy.
func (m Model) automated() bool {
	_, ok := m.roster.For(m.ctrl.CurrentPlayer())
	return ok
}

// record saves the current game once. Games without moves are not recorded.
func (m *Model) record() {
	if m.recorded || m.ctrl.Moves() == 0 {
		return
	}
	m.recorded = true

	r := storage.FromController(m.ctrl)
	m.log.Info("game finished", "outcome", r.Outcome, "winner", r.Winner, "moves", r.Moves)
	if m.recorder == nil {
		return
	}
	if _, err := m.recorder.SaveResult(r); err != nil {
		m.log.Warn("could not record result", "err", err)
	}
}

// Controller returns the controller driving the game.
func (m Model) Controller() *game.Controller {
	return m.ctrl
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return m.render()
}

// Run starts the Bubble Tea program with the game model.
func Run(opts Options) error {
	model, err := NewModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err = p.Run()
	return err
}
