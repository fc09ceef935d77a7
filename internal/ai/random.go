package ai

import (
	"math/rand"

	"github.com/vovakirdan/connectn/internal/board"
	"github.com/vovakirdan/connectn/internal/player"
)

// Random picks any column with equal probability, full or not.
type Random struct {
	rng *rand.Rand
}

// NewRandom creates a random policy.
func NewRandom(rng *rand.Rand) *Random {
	return &Random{rng: rng}
}

// Decide returns a column in [0, width).
func (r *Random) Decide(_ player.Player, b *board.Board) int {
	return r.rng.Intn(b.Width())
}
