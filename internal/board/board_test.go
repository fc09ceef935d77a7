package board

import (
	"errors"
	"testing"

	"github.com/vovakirdan/connectn/internal/player"
)

const (
	testWidth   = 5
	testHeight  = 4
	testConnect = 4
)

func newTestBoard(t *testing.T) *Board {
	t.Helper()
	b, err := New(testWidth, testHeight, testConnect)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	return b
}

func mustAdd(t *testing.T, b *Board, p player.Player, cols ...int) {
	t.Helper()
	for _, col := range cols {
		if _, err := b.Add(NewToken(p), col); err != nil {
			t.Fatalf("Add(%s, %d) failed: %v", p.Name(), col, err)
		}
	}
}

func mustWin(t *testing.T, b *Board, row, col int) bool {
	t.Helper()
	won, err := b.IsWinningPosition(row, col)
	if err != nil {
		t.Fatalf("IsWinningPosition(%d, %d) failed: %v", row, col, err)
	}
	return won
}

func TestNewValidatesDimensions(t *testing.T) {
	tests := []struct {
		name                   string
		width, height, connect int
		wantErr                bool
	}{
		{"classic", 7, 6, 4, false},
		{"square minimum", 3, 3, 3, false},
		{"exact fit", 4, 4, 4, false},
		{"maximum run", 32, 32, 32, false},
		{"narrow", 3, 6, 4, true},
		{"short", 7, 3, 4, true},
		{"run too small", 7, 6, 2, true},
		{"run zero", 7, 6, 0, true},
		{"run too large", 40, 40, 33, true},
		{"negative width", -1, 6, 4, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b, err := New(tc.width, tc.height, tc.connect)
			if tc.wantErr {
				if !errors.Is(err, ErrInvalidDimensions) {
					t.Errorf("New() error = %v, expected ErrInvalidDimensions", err)
				}
				if b != nil {
					t.Error("New() should not return a board on error")
				}
				return
			}
			if err != nil {
				t.Fatalf("New() failed: %v", err)
			}
			if b.Width() != tc.width || b.Height() != tc.height || b.TokensToConnect() != tc.connect {
				t.Errorf("accessors = %d x %d / %d", b.Width(), b.Height(), b.TokensToConnect())
			}
			if b.MaxTokens() != tc.width*tc.height {
				t.Errorf("MaxTokens() = %d, expected %d", b.MaxTokens(), tc.width*tc.height)
			}
			if b.NumTokens() != 0 {
				t.Errorf("NumTokens() = %d on a new board", b.NumTokens())
			}
		})
	}
}

func TestGetToken(t *testing.T) {
	alice, cyborg := testPlayers(t)
	b := newTestBoard(t)

	mustAdd(t, b, alice, 1)
	if tok, _ := b.Token(0, 1); !tok.Equal(NewToken(alice)) {
		t.Error("(0,1) should be Alice's")
	}

	mustAdd(t, b, cyborg, 1)
	if tok, _ := b.Token(0, 1); tok.Equal(NewToken(cyborg)) {
		t.Error("(0,1) should still be Alice's")
	}
	if tok, _ := b.Token(1, 1); !tok.Equal(NewToken(cyborg)) {
		t.Error("(1,1) should be Cyborg's")
	}

	mustAdd(t, b, cyborg, 2)
	if tok, _ := b.Token(2, 0); !tok.IsEmpty() {
		t.Error("(2,0) should be empty")
	}
	if tok, _ := b.Token(0, 2); !tok.Equal(NewToken(cyborg)) {
		t.Error("(0,2) should be Cyborg's")
	}
}

func TestTokenBounds(t *testing.T) {
	b := newTestBoard(t)

	tests := []struct {
		row, col int
		want     error
	}{
		{0, -1, ErrInvalidColumn},
		{0, testWidth, ErrInvalidColumn},
		{-1, 0, ErrInvalidRow},
		{testHeight, 0, ErrInvalidRow},
		{0, 0, nil},
		{testHeight - 1, testWidth - 1, nil},
	}

	for _, tc := range tests {
		_, err := b.Token(tc.row, tc.col)
		if tc.want == nil && err != nil {
			t.Errorf("Token(%d, %d) failed: %v", tc.row, tc.col, err)
		}
		if tc.want != nil && !errors.Is(err, tc.want) {
			t.Errorf("Token(%d, %d) error = %v, expected %v", tc.row, tc.col, err, tc.want)
		}
	}
}

func TestAddRejectsBadMoves(t *testing.T) {
	alice, _ := testPlayers(t)
	b := newTestBoard(t)

	for _, col := range []int{-1, testWidth, testWidth + 1} {
		if _, err := b.Add(NewToken(alice), col); !errors.Is(err, ErrInvalidColumn) {
			t.Errorf("Add(col=%d) error = %v, expected ErrInvalidColumn", col, err)
		}
	}

	mustAdd(t, b, alice, 0, 0, 0, 0)
	if _, err := b.Add(NewToken(alice), 0); !errors.Is(err, ErrFullColumn) {
		t.Errorf("Add() into full column error = %v, expected ErrFullColumn", err)
	}
	if b.NumTokens() != testHeight {
		t.Errorf("NumTokens() = %d, rejected moves must not count", b.NumTokens())
	}
	if !b.IsColumnFull(0) || b.IsColumnFull(1) {
		t.Error("IsColumnFull() mismatch")
	}
	if _, err := b.NextRow(0); !errors.Is(err, ErrFullColumn) {
		t.Errorf("NextRow(full) error = %v", err)
	}
	if row, err := b.NextRow(1); err != nil || row != 0 {
		t.Errorf("NextRow(1) = %d, %v", row, err)
	}
}

func TestIsWinningPositionBounds(t *testing.T) {
	b := newTestBoard(t)

	bad := []struct{ row, col int }{
		{-1, 0}, {testHeight, 0}, {0, -1}, {0, testWidth},
	}
	for _, c := range bad {
		if _, err := b.IsWinningPosition(c.row, c.col); err == nil {
			t.Errorf("IsWinningPosition(%d, %d) should fail", c.row, c.col)
		}
	}
}

func TestEmptyCellsNeverWin(t *testing.T) {
	b := newTestBoard(t)
	for row := 0; row < testHeight; row++ {
		for col := 0; col < testWidth; col++ {
			if mustWin(t, b, row, col) {
				t.Errorf("empty cell (%d, %d) reported a win", row, col)
			}
		}
	}
}

func TestHorizontalRun(t *testing.T) {
	alice, cyborg := testPlayers(t)
	b := newTestBoard(t)

	mustAdd(t, b, alice, 0, 1, 2, 3)

	for col := 0; col < 4; col++ {
		if !mustWin(t, b, 0, col) {
			t.Errorf("(0, %d) should be winning", col)
		}
		if !b.CheckHorizontal(0, col) {
			t.Errorf("CheckHorizontal(0, %d) should be true", col)
		}
	}
	if mustWin(t, b, 0, 4) {
		t.Error("(0, 4) should not be winning")
	}

	// A broken second row does not win
	mustAdd(t, b, alice, 0)
	mustAdd(t, b, cyborg, 1, 2, 3)
	for col := 0; col < 4; col++ {
		if b.CheckHorizontal(1, col) {
			t.Errorf("CheckHorizontal(1, %d) should be false", col)
		}
	}
}

func TestVerticalRun(t *testing.T) {
	alice, cyborg := testPlayers(t)
	b := newTestBoard(t)

	mustAdd(t, b, alice, 0, 0, 0, 0)
	for row := 0; row < 4; row++ {
		if !mustWin(t, b, row, 0) {
			t.Errorf("(%d, 0) should be winning", row)
		}
	}

	mustAdd(t, b, alice, 2)
	mustAdd(t, b, cyborg, 2, 2, 2)
	for row := 0; row < 4; row++ {
		if b.CheckVertical(row, 2) {
			t.Errorf("CheckVertical(%d, 2) should be false", row)
		}
	}
}

func TestFullBoardSingleOwner(t *testing.T) {
	alice, _ := testPlayers(t)
	b := newTestBoard(t)

	for col := 0; col < testWidth; col++ {
		for row := 0; row < testHeight; row++ {
			mustAdd(t, b, alice, col)
		}
	}

	if !b.IsFull() {
		t.Error("board should be full")
	}
	for row := 0; row < testHeight; row++ {
		for col := 0; col < testWidth; col++ {
			if !mustWin(t, b, row, col) {
				t.Errorf("(%d, %d) should be winning on a single-owner board", row, col)
			}
		}
	}
}

func TestPatternWithoutRuns(t *testing.T) {
	alice, cyborg := testPlayers(t)
	b := newTestBoard(t)

	// Rows alternate and columns come in pairs, so no line holds more than
	// two equal tokens in a row.
	owner := func(row, col int) player.Player {
		if (row+col/2)%2 == 0 {
			return alice
		}
		return cyborg
	}
	for col := 0; col < testWidth; col++ {
		for row := 0; row < testHeight; row++ {
			mustAdd(t, b, owner(row, col), col)
		}
	}

	for row := 0; row < testHeight; row++ {
		for col := 0; col < testWidth; col++ {
			if mustWin(t, b, row, col) {
				t.Errorf("(%d, %d) should not be winning", row, col)
			}
		}
	}
}

func TestPositiveDiagonal(t *testing.T) {
	alice, cyborg := testPlayers(t)
	b := newTestBoard(t)

	//    AC
	//   ACA
	//  ACAC
	// AAACA
	mustAdd(t, b, alice, 0)
	mustAdd(t, b, alice, 1, 1)
	mustAdd(t, b, alice, 2)
	mustAdd(t, b, cyborg, 2)
	mustAdd(t, b, alice, 2)
	mustAdd(t, b, cyborg, 3)
	mustAdd(t, b, alice, 3)
	mustAdd(t, b, cyborg, 3)
	mustAdd(t, b, alice, 3)
	mustAdd(t, b, alice, 4)
	mustAdd(t, b, cyborg, 4)
	mustAdd(t, b, alice, 4)
	mustAdd(t, b, cyborg, 4)

	for i := 0; i < 4; i++ {
		if !b.CheckPositiveDiagonal(i, i) {
			t.Errorf("CheckPositiveDiagonal(%d, %d) should be true", i, i)
		}
		if !mustWin(t, b, i, i) {
			t.Errorf("(%d, %d) should be winning", i, i)
		}
		if b.CheckPositiveDiagonal(i, i+1) {
			t.Errorf("CheckPositiveDiagonal(%d, %d) should be false", i, i+1)
		}
	}
}

func TestNegativeDiagonal(t *testing.T) {
	alice, cyborg := testPlayers(t)
	b := newTestBoard(t)

	// CA
	// ACA
	// CACA
	// ACAAA
	mustAdd(t, b, alice, 0)
	mustAdd(t, b, cyborg, 0)
	mustAdd(t, b, alice, 0)
	mustAdd(t, b, cyborg, 0)
	mustAdd(t, b, cyborg, 1)
	mustAdd(t, b, alice, 1)
	mustAdd(t, b, cyborg, 1)
	mustAdd(t, b, alice, 1)
	mustAdd(t, b, alice, 2)
	mustAdd(t, b, cyborg, 2)
	mustAdd(t, b, alice, 2)
	mustAdd(t, b, alice, 3, 3)
	mustAdd(t, b, alice, 4)

	winning := []Cell{{3, 1}, {2, 2}, {1, 3}, {0, 4}}
	for _, c := range winning {
		if !b.CheckNegativeDiagonal(c.Row, c.Col) {
			t.Errorf("CheckNegativeDiagonal(%d, %d) should be true", c.Row, c.Col)
		}
		if !mustWin(t, b, c.Row, c.Col) {
			t.Errorf("(%d, %d) should be winning", c.Row, c.Col)
		}
	}

	losing := []Cell{{3, 0}, {2, 1}, {1, 2}, {0, 3}}
	for _, c := range losing {
		if b.CheckNegativeDiagonal(c.Row, c.Col) {
			t.Errorf("CheckNegativeDiagonal(%d, %d) should be false", c.Row, c.Col)
		}
	}
}

func TestDiagonalBuiltInAnyOrder(t *testing.T) {
	alice, cyborg := testPlayers(t)

	// Fill columns right to left so the last token is the bottom of the run.
	b := newTestBoard(t)
	mustAdd(t, b, cyborg, 3, 3, 3)
	mustAdd(t, b, alice, 3)
	mustAdd(t, b, cyborg, 2, 2)
	mustAdd(t, b, alice, 2)
	mustAdd(t, b, cyborg, 1)
	mustAdd(t, b, alice, 1)
	mustAdd(t, b, alice, 0)

	for i := 0; i < 4; i++ {
		if !mustWin(t, b, i, i) {
			t.Errorf("(%d, %d) should be winning", i, i)
		}
	}
}

func TestCheckSequenceShorterRuns(t *testing.T) {
	alice, _ := testPlayers(t)
	b := newTestBoard(t)
	mustAdd(t, b, alice, 1, 2)

	if !b.CheckSequence(0, 1, Horizontal, 2) {
		t.Error("run of 2 should be found from the left end")
	}
	if !b.CheckSequence(0, 2, Horizontal, 2) {
		t.Error("run of 2 should be found from the right end")
	}
	if b.CheckSequence(0, 1, Horizontal, 3) {
		t.Error("run of 3 should not be found")
	}
	if b.CheckSequence(-1, 0, Horizontal, 2) || b.CheckSequence(0, 9, Horizontal, 2) {
		t.Error("out-of-bounds anchors should report false")
	}
}

func TestWinningCells(t *testing.T) {
	alice, _ := testPlayers(t)
	b := newTestBoard(t)

	if cells := b.WinningCells(0, 0); cells != nil {
		t.Errorf("WinningCells() on empty board = %v", cells)
	}

	mustAdd(t, b, alice, 1, 2, 3, 4)
	cells := b.WinningCells(0, 3)
	if len(cells) != testConnect {
		t.Fatalf("WinningCells() returned %d cells", len(cells))
	}
	for i, c := range cells {
		if c.Row != 0 || c.Col != i+1 {
			t.Errorf("cell %d = %+v, expected (0, %d)", i, c, i+1)
		}
	}
}

func TestTrialRestoresBoard(t *testing.T) {
	alice, cyborg := testPlayers(t)
	b := newTestBoard(t)
	mustAdd(t, b, alice, 0, 1, 2)
	mustAdd(t, b, cyborg, 2)

	before := snapshot(b)
	count := b.NumTokens()

	won, err := b.Trial(NewToken(alice), 3, func(row int) bool {
		if row != 0 {
			t.Errorf("trial landed on row %d, expected 0", row)
		}
		if b.NumTokens() != count+1 {
			t.Errorf("NumTokens() during trial = %d", b.NumTokens())
		}
		ok, _ := b.IsWinningPosition(row, 3)
		return ok
	})
	if err != nil {
		t.Fatalf("Trial() failed: %v", err)
	}
	if !won {
		t.Error("trial in column 3 should complete Alice's run")
	}

	if b.NumTokens() != count {
		t.Errorf("NumTokens() = %d after trial, expected %d", b.NumTokens(), count)
	}
	if after := snapshot(b); after != before {
		t.Errorf("board changed by trial:\n%s\nvs\n%s", before, after)
	}
	if row, _ := b.NextRow(3); row != 0 {
		t.Errorf("NextRow(3) = %d after trial", row)
	}
}

func TestTrialIntoFullColumn(t *testing.T) {
	alice, _ := testPlayers(t)
	b := newTestBoard(t)
	mustAdd(t, b, alice, 0, 0, 0, 0)

	called := false
	_, err := b.Trial(NewToken(alice), 0, func(int) bool {
		called = true
		return true
	})
	if !errors.Is(err, ErrFullColumn) {
		t.Errorf("Trial() error = %v, expected ErrFullColumn", err)
	}
	if called {
		t.Error("callback must not run for a rejected trial")
	}
	if b.NumTokens() != 4 {
		t.Errorf("NumTokens() = %d", b.NumTokens())
	}
}

func TestResetIsIdempotent(t *testing.T) {
	alice, _ := testPlayers(t)
	b := newTestBoard(t)
	mustAdd(t, b, alice, 0, 1, 1, 4)

	b.Reset()
	once := snapshot(b)
	b.Reset()
	twice := snapshot(b)

	if once != twice {
		t.Error("second Reset() changed the board")
	}
	if b.NumTokens() != 0 {
		t.Errorf("NumTokens() = %d after Reset()", b.NumTokens())
	}
	for row := 0; row < testHeight; row++ {
		for col := 0; col < testWidth; col++ {
			if tok, _ := b.Token(row, col); !tok.IsEmpty() {
				t.Errorf("(%d, %d) not empty after Reset()", row, col)
			}
		}
	}
}

// snapshot renders owner ids top row first; '.' marks empty cells.
func snapshot(b *Board) string {
	out := make([]byte, 0, (b.Width()+1)*b.Height())
	for row := b.Height() - 1; row >= 0; row-- {
		for col := 0; col < b.Width(); col++ {
			tok, _ := b.Token(row, col)
			if tok.IsEmpty() {
				out = append(out, '.')
			} else {
				out = append(out, byte('0'+tok.Owner().ID()))
			}
		}
		out = append(out, '\n')
	}
	return string(out)
}
