package storage

import (
	"github.com/vovakirdan/connectn/internal/game"
)

// FromController builds the record of a match. A match that is still in
// progress is recorded as quit.
func FromController(ctrl *game.Controller) Result {
	b := ctrl.Board()
	r := Result{
		Width:           b.Width(),
		Height:          b.Height(),
		TokensToConnect: b.TokensToConnect(),
		Moves:           ctrl.Moves(),
	}
	winner, won := ctrl.Winner()
	for _, p := range ctrl.Players() {
		seat := Seat{Name: p.Name(), Kind: p.Kind().String()}
		if won && p.Equal(winner) {
			seat.Won = true
			r.Winner = p.Name()
		}
		r.Players = append(r.Players, seat)
	}

	switch ctrl.State() {
	case game.Won:
		r.Outcome = OutcomeWon
	case game.Draw:
		r.Outcome = OutcomeDraw
	default:
		r.Outcome = OutcomeQuit
	}
	return r
}
