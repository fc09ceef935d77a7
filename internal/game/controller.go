// Package game drives a match: it rotates players, applies moves to the
// board and decides when the match is won or drawn. It performs no I/O.
package game

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/connectn/internal/board"
	"github.com/vovakirdan/connectn/internal/player"
)

// MinPlayers is the smallest number of players a match accepts.
const MinPlayers = 2

var (
	ErrTooFewPlayers = fmt.Errorf("there must be at least %d players", MinPlayers)
	ErrGameOver      = errors.New("game is over")
)

// State is the phase of a match.
type State int

const (
	InProgress State = iota
	Won
	Draw
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case InProgress:
		return "in progress"
	case Won:
		return "won"
	case Draw:
		return "draw"
	default:
		return "unknown"
	}
}

// Outcome describes the result of one applied move.
type Outcome struct {
	State  State
	Player player.Player // Who moved
	Winner player.Player // player.None unless State is Won
	Row    int
	Col    int
}

// Controller owns the turn order of a match played on a board.
type Controller struct {
	board   *board.Board
	players []player.Player
	cursor  int
	state   State
	winner  player.Player
	moves   int
}

// NewController creates a controller for players taking turns on b,
// in the given order.
func NewController(b *board.Board, players []player.Player) (*Controller, error) {
	if len(players) < MinPlayers {
		return nil, fmt.Errorf("%w (got %d)", ErrTooFewPlayers, len(players))
	}
	if b == nil {
		return nil, errors.New("game: nil board")
	}

	ps := make([]player.Player, len(players))
	copy(ps, players)

	return &Controller{
		board:   b,
		players: ps,
		state:   InProgress,
		winner:  player.None,
	}, nil
}

// Board returns the board the controller plays on.
func (c *Controller) Board() *board.Board { return c.board }

// CurrentPlayer returns whose turn it is.
func (c *Controller) CurrentPlayer() player.Player {
	return c.players[c.cursor]
}

// Players returns a copy of the turn order.
func (c *Controller) Players() []player.Player {
	ps := make([]player.Player, len(c.players))
	copy(ps, c.players)
	return ps
}

// NumPlayers returns the number of players.
func (c *Controller) NumPlayers() int { return len(c.players) }

// IsRunning reports whether moves are still accepted.
func (c *Controller) IsRunning() bool { return c.state == InProgress }

// State returns the current phase of the match.
func (c *Controller) State() State { return c.state }

// Winner returns the winning player once the match is won.
func (c *Controller) Winner() (player.Player, bool) {
	return c.winner, c.state == Won
}

// Moves returns the number of moves applied since the match started.
func (c *Controller) Moves() int { return c.moves }

// Apply drops a token for the current player into col.
// A rejected move leaves the board and the turn unchanged, so the same
// player moves again.
func (c *Controller) Apply(col int) (Outcome, error) {
	if !c.IsRunning() {
		return Outcome{}, ErrGameOver
	}

	current := c.CurrentPlayer()
	row, err := c.board.Add(board.NewToken(current), col)
	if err != nil {
		return Outcome{}, err
	}
	c.moves++

	out := Outcome{
		State:  InProgress,
		Player: current,
		Winner: player.None,
		Row:    row,
		Col:    col,
	}

	won, err := c.board.IsWinningPosition(row, col)
	if err != nil {
		// Add just returned these coordinates
		return Outcome{}, fmt.Errorf("game: checking win at (%d, %d): %w", row, col, err)
	}

	switch {
	case won:
		c.state = Won
		c.winner = current
		out.State = Won
		out.Winner = current
	case c.board.NumTokens() >= c.board.MaxTokens():
		c.state = Draw
		out.State = Draw
	default:
		c.cursor = (c.cursor + 1) % len(c.players)
	}

	return out, nil
}

// Restart empties the board and hands the first turn back to the first player.
func (c *Controller) Restart() {
	c.board.Reset()
	c.cursor = 0
	c.state = InProgress
	c.winner = player.None
	c.moves = 0
}
