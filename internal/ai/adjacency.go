package ai

import (
	"math/rand"

	"github.com/vovakirdan/connectn/internal/board"
	"github.com/vovakirdan/connectn/internal/player"
)

// FullColumnScore is the score of a column that cannot take a token.
// It is below every reachable score, so full columns lose to open ones.
const FullColumnScore = -1

// adjacencyRadius is the neighbourhood checked around the landing cell.
const adjacencyRadius = 1

// Adjacency prefers columns whose landing cell touches many of the player's
// own tokens. Ties are broken at random.
type Adjacency struct {
	rng *rand.Rand
}

// NewAdjacency creates an adjacency policy.
func NewAdjacency(rng *rand.Rand) *Adjacency {
	return &Adjacency{rng: rng}
}

// Decide returns a column with the highest score.
func (a *Adjacency) Decide(p player.Player, b *board.Board) int {
	scores := Scores(p, b)

	best := FullColumnScore
	var candidates []int
	for col, score := range scores {
		switch {
		case score > best:
			best = score
			candidates = append(candidates[:0], col)
		case score == best:
			candidates = append(candidates, col)
		}
	}
	return pick(a.rng, candidates)
}

// Scores returns the adjacency score of every column for p.
func Scores(p player.Player, b *board.Board) []int {
	scores := make([]int, b.Width())
	for col := range scores {
		scores[col] = scoreColumn(p, b, col)
	}
	return scores
}

// scoreColumn counts p's tokens in the 3x3 block centred on the cell a token
// dropped into col would land in. The landing cell itself is still empty.
func scoreColumn(p player.Player, b *board.Board, col int) int {
	row, err := b.NextRow(col)
	if err != nil {
		return FullColumnScore
	}

	score := 0
	for dr := -adjacencyRadius; dr <= adjacencyRadius; dr++ {
		for dc := -adjacencyRadius; dc <= adjacencyRadius; dc++ {
			r, c := row+dr, col+dc
			if !b.InBounds(r, c) {
				continue
			}
			if tok, _ := b.Token(r, c); tok.Owner().Equal(p) {
				score++
			}
		}
	}
	return score
}
