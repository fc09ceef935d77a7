// Package ai provides the decision policies that pick columns for automated
// players. Policies only read the board, except Lookahead which places and
// retracts trial tokens inside Decide.
package ai

import (
	"math/rand"

	"github.com/vovakirdan/connectn/internal/board"
	"github.com/vovakirdan/connectn/internal/player"
)

// Policy proposes a column for player p on board b.
type Policy interface {
	Decide(p player.Player, b *board.Board) int
}

// ForKind returns the policy that plays for the given kind.
// Human players have no policy.
func ForKind(kind player.Kind, rng *rand.Rand) (Policy, bool) {
	switch kind {
	case player.RandomAI:
		return NewRandom(rng), true
	case player.AdjacencyAI:
		return NewAdjacency(rng), true
	case player.LookaheadAI:
		return NewLookahead(rng), true
	default:
		return nil, false
	}
}

// Roster holds the policy for every automated player of a match.
type Roster struct {
	policies map[int]Policy
}

// NewRoster builds policies for the automated players. All policies share rng.
func NewRoster(players []player.Player, rng *rand.Rand) *Roster {
	r := &Roster{policies: make(map[int]Policy)}
	for _, p := range players {
		if pol, ok := ForKind(p.Kind(), rng); ok {
			r.policies[p.ID()] = pol
		}
	}
	return r
}

// For returns the policy for p, or false when p moves on human input.
func (r *Roster) For(p player.Player) (Policy, bool) {
	pol, ok := r.policies[p.ID()]
	return pol, ok
}

// pick returns a uniformly random element of cols.
func pick(rng *rand.Rand, cols []int) int {
	return cols[rng.Intn(len(cols))]
}

// openColumns lists the columns that can still take a token.
func openColumns(b *board.Board) []int {
	cols := make([]int, 0, b.Width())
	for col := 0; col < b.Width(); col++ {
		if !b.IsColumnFull(col) {
			cols = append(cols, col)
		}
	}
	return cols
}

// allColumns lists every column index of b.
func allColumns(b *board.Board) []int {
	cols := make([]int, b.Width())
	for i := range cols {
		cols[i] = i
	}
	return cols
}
