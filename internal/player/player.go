// Package player defines game participants and the sequence that numbers them.
package player

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyName is returned when a player is created with a blank name.
var ErrEmptyName = errors.New("a player cannot have an empty name")

// Player is an immutable game participant. Two players are equal when their
// ids match; names and kinds play no part in equality.
type Player struct {
	id   int
	name string
	kind Kind
}

// None owns every empty cell. Its id is never handed out by a Sequence.
var None = Player{id: -1, name: "Nobody", kind: Human}

// ID returns the player's sequence id.
func (p Player) ID() int { return p.id }

// Name returns the display name.
func (p Player) Name() string { return p.name }

// Kind returns who decides this player's moves.
func (p Player) Kind() Kind { return p.kind }

// IsNone reports whether p is the empty-cell sentinel.
func (p Player) IsNone() bool { return p.id == None.id }

// Equal reports whether p and other are the same player.
func (p Player) Equal(other Player) bool {
	return p.id == other.id
}

// String returns the display name.
func (p Player) String() string { return p.name }

// Sequence hands out player ids in creation order, starting at 0.
// One Sequence belongs to one game session; Reset it when a new game starts.
type Sequence struct {
	next int
}

// NewSequence creates a sequence starting at id 0.
func NewSequence() *Sequence {
	return &Sequence{}
}

// New creates a player with the next id.
// The name is trimmed and must not be empty.
func (s *Sequence) New(name string, kind Kind) (Player, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Player{}, ErrEmptyName
	}
	p := Player{id: s.next, name: name, kind: kind}
	s.next++
	return p, nil
}

// Anonymous creates a player named after its id ("Player 0", "Player 1", ...).
func (s *Sequence) Anonymous(kind Kind) Player {
	p := Player{id: s.next, name: fmt.Sprintf("Player %d", s.next), kind: kind}
	s.next++
	return p
}

// Peek returns the id the next player will receive.
func (s *Sequence) Peek() int {
	return s.next
}

// Reset restarts numbering at 0.
func (s *Sequence) Reset() {
	s.next = 0
}
