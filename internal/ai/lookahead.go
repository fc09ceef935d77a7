package ai

import (
	"math/rand"

	"github.com/vovakirdan/connectn/internal/board"
	"github.com/vovakirdan/connectn/internal/player"
)

// startThreshold is the shortest run Lookahead looks for.
const startThreshold = 2

// Lookahead keeps the columns whose placement forms the longest run for the
// player, raising the required run length one step at a time.
type Lookahead struct {
	rng *rand.Rand
}

// NewLookahead creates a lookahead policy.
func NewLookahead(rng *rand.Rand) *Lookahead {
	return &Lookahead{rng: rng}
}

// Decide returns a column from the last set of survivors.
// The board is mutated only by trial moves, each retracted before Decide returns.
func (l *Lookahead) Decide(p player.Player, b *board.Board) int {
	survivors := Candidates(p, b)
	if len(survivors) == 0 {
		return pick(l.rng, allColumns(b))
	}
	return pick(l.rng, survivors)
}

// Candidates returns the open columns that survive the highest run-length
// threshold any of them reaches. With no run possible it returns every open
// column; on a full board it returns nil.
func Candidates(p player.Player, b *board.Board) []int {
	survivors := openColumns(b)
	if len(survivors) == 0 {
		return nil
	}

	longest := max(b.Width(), b.Height())
	for threshold := startThreshold; threshold <= longest; threshold++ {
		passing := make([]int, 0, len(survivors))
		for _, col := range survivors {
			if formsRun(p, b, col, threshold) {
				passing = append(passing, col)
			}
		}
		if len(passing) == 0 {
			break
		}
		survivors = passing
	}
	return survivors
}

// formsRun reports whether dropping p's token into col creates a run of at
// least length tokens through the landing cell.
func formsRun(p player.Player, b *board.Board, col, length int) bool {
	ok, err := b.Trial(board.NewToken(p), col, func(row int) bool {
		for _, dir := range board.Directions {
			if b.CheckSequence(row, col, dir, length) {
				return true
			}
		}
		return false
	})
	return err == nil && ok
}
