package board

import (
	"errors"
	"testing"

	"github.com/vovakirdan/connectn/internal/player"
)

func testPlayers(t *testing.T) (player.Player, player.Player) {
	t.Helper()
	seq := player.NewSequence()
	alice, err := seq.New("Alice", player.Human)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	cyborg, err := seq.New("Cyborg", player.RandomAI)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	return alice, cyborg
}

func TestColumnFillsToCapacity(t *testing.T) {
	alice, _ := testPlayers(t)
	token := NewToken(alice)

	for _, height := range []int{1, 3, 6, 10} {
		c := NewColumn(height)
		for i := 0; i < height; i++ {
			if c.NextRow() != i {
				t.Errorf("height %d: NextRow() = %d before add %d", height, c.NextRow(), i)
			}
			row, err := c.Add(token)
			if err != nil {
				t.Fatalf("height %d: Add() #%d failed: %v", height, i, err)
			}
			if row != i {
				t.Errorf("height %d: Add() #%d returned row %d", height, i, row)
			}
		}
		if !c.IsFull() {
			t.Errorf("height %d: column should be full", height)
		}
		if _, err := c.Add(token); !errors.Is(err, ErrFullColumn) {
			t.Errorf("height %d: extra Add() error = %v, expected ErrFullColumn", height, err)
		}
		if c.Len() != height {
			t.Errorf("height %d: Len() = %d after failed add", height, c.Len())
		}
	}
}

func TestColumnTokenBounds(t *testing.T) {
	c := NewColumn(4)

	tests := []struct {
		row     int
		wantErr bool
	}{
		{-1, true},
		{0, false},
		{3, false},
		{4, true},
		{100, true},
	}

	for _, tc := range tests {
		_, err := c.Token(tc.row)
		if tc.wantErr && !errors.Is(err, ErrInvalidRow) {
			t.Errorf("Token(%d) error = %v, expected ErrInvalidRow", tc.row, err)
		}
		if !tc.wantErr && err != nil {
			t.Errorf("Token(%d) failed: %v", tc.row, err)
		}
	}
}

func TestColumnGravityOrder(t *testing.T) {
	alice, cyborg := testPlayers(t)
	c := NewColumn(3)

	c.Add(NewToken(alice))
	c.Add(NewToken(cyborg))

	bottom, _ := c.Token(0)
	middle, _ := c.Token(1)
	top, _ := c.Token(2)

	if !bottom.Owner().Equal(alice) {
		t.Error("row 0 should hold Alice's token")
	}
	if !middle.Owner().Equal(cyborg) {
		t.Error("row 1 should hold Cyborg's token")
	}
	if !top.IsEmpty() {
		t.Error("row 2 should be empty")
	}
}

func TestColumnResetIsIdempotent(t *testing.T) {
	alice, _ := testPlayers(t)
	c := NewColumn(4)
	c.Add(NewToken(alice))
	c.Add(NewToken(alice))

	for i := 0; i < 2; i++ {
		c.Reset()
		if c.Len() != 0 || c.NextRow() != 0 || c.IsFull() {
			t.Errorf("Reset() #%d: Len=%d NextRow=%d IsFull=%v", i+1, c.Len(), c.NextRow(), c.IsFull())
		}
		for row := 0; row < c.Height(); row++ {
			if tok, _ := c.Token(row); !tok.IsEmpty() {
				t.Errorf("Reset() #%d: row %d not empty", i+1, row)
			}
		}
	}
}

func TestColumnPopUndoesAdd(t *testing.T) {
	alice, _ := testPlayers(t)
	c := NewColumn(2)

	if _, ok := c.pop(); ok {
		t.Error("pop() on empty column should report false")
	}

	c.Add(NewToken(alice))
	tok, ok := c.pop()
	if !ok || !tok.Owner().Equal(alice) {
		t.Errorf("pop() = %v, %v", tok.Owner(), ok)
	}
	if c.Len() != 0 {
		t.Errorf("Len() = %d after pop, expected 0", c.Len())
	}
	if top, _ := c.Token(0); !top.IsEmpty() {
		t.Error("slot should be empty after pop")
	}
}

func TestTokenEquality(t *testing.T) {
	alice, cyborg := testPlayers(t)

	if !NewToken(alice).Equal(NewToken(alice)) {
		t.Error("tokens with the same owner should be equal")
	}
	if NewToken(alice).Equal(NewToken(cyborg)) {
		t.Error("tokens with different owners should differ")
	}
	if NewToken(alice).Equal(Empty) || Empty.Equal(NewToken(cyborg)) {
		t.Error("empty token should differ from owned tokens")
	}
	if !Empty.IsEmpty() || NewToken(alice).IsEmpty() {
		t.Error("IsEmpty() mismatch")
	}
}
