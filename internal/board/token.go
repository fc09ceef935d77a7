package board

import "github.com/vovakirdan/connectn/internal/player"

// Token is a single piece on the board. All of its meaning comes from its owner.
type Token struct {
	owner player.Player
}

// Empty is the token stored in unfilled slots.
var Empty = Token{owner: player.None}

// NewToken creates a token owned by p.
func NewToken(p player.Player) Token {
	return Token{owner: p}
}

// Owner returns the player owning this token (player.None for Empty).
func (t Token) Owner() player.Player {
	return t.owner
}

// IsEmpty reports whether the token marks an unfilled slot.
func (t Token) IsEmpty() bool {
	return t.owner.IsNone()
}

// Equal reports whether both tokens have the same owner.
func (t Token) Equal(other Token) bool {
	return t.owner.Equal(other.owner)
}
