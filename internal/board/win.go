package board

// Direction is the step between neighbouring cells of a line.
type Direction struct {
	DRow int
	DCol int
}

// The four line families a run can lie on.
var (
	Vertical         = Direction{DRow: 1, DCol: 0}
	Horizontal       = Direction{DRow: 0, DCol: 1}
	PositiveDiagonal = Direction{DRow: 1, DCol: 1}  // "/"
	NegativeDiagonal = Direction{DRow: 1, DCol: -1} // "\"
)

// Directions lists every direction IsWinningPosition checks, in order.
var Directions = []Direction{Vertical, Horizontal, PositiveDiagonal, NegativeDiagonal}

// IsWinningPosition reports whether the token at (row, col) is part of a run
// of at least TokensToConnect tokens in any direction. Empty cells never win.
func (b *Board) IsWinningPosition(row, col int) (bool, error) {
	if err := b.checkColumn(col); err != nil {
		return false, err
	}
	if _, err := b.columns[col].Token(row); err != nil {
		return false, err
	}

	for _, dir := range Directions {
		if b.CheckSequence(row, col, dir, b.tokensToConnect) {
			return true, nil
		}
	}
	return false, nil
}

// CheckVertical reports a winning run through (row, col) along a column.
func (b *Board) CheckVertical(row, col int) bool {
	return b.CheckSequence(row, col, Vertical, b.tokensToConnect)
}

// CheckHorizontal reports a winning run through (row, col) along a row.
func (b *Board) CheckHorizontal(row, col int) bool {
	return b.CheckSequence(row, col, Horizontal, b.tokensToConnect)
}

// CheckPositiveDiagonal reports a winning run through (row, col) rising to the right.
func (b *Board) CheckPositiveDiagonal(row, col int) bool {
	return b.CheckSequence(row, col, PositiveDiagonal, b.tokensToConnect)
}

// CheckNegativeDiagonal reports a winning run through (row, col) rising to the left.
func (b *Board) CheckNegativeDiagonal(row, col int) bool {
	return b.CheckSequence(row, col, NegativeDiagonal, b.tokensToConnect)
}

// CheckSequence reports whether the anchor cell (row, col) belongs to
// length consecutive cells along dir that all hold the anchor's token.
// Out-of-bounds or empty anchors report false.
func (b *Board) CheckSequence(row, col int, dir Direction, length int) bool {
	_, ok := b.findWindow(row, col, dir, length)
	return ok
}

// findWindow tries every window of length cells along dir that contains the
// anchor, starting length-1 steps behind it and ending on the anchor itself.
// It returns the first cell of the first window whose cells are all in
// bounds and equal to the anchor token.
func (b *Board) findWindow(row, col int, dir Direction, length int) (Cell, bool) {
	if length <= 0 || !b.InBounds(row, col) {
		return Cell{}, false
	}
	anchor := b.at(row, col)
	if anchor.IsEmpty() {
		return Cell{}, false
	}

	for back := length - 1; back >= 0; back-- {
		start := Cell{Row: row - dir.DRow*back, Col: col - dir.DCol*back}
		if b.windowMatches(start, dir, length, anchor) {
			return start, true
		}
	}
	return Cell{}, false
}

// windowMatches checks one window; any out-of-bounds cell disqualifies it.
func (b *Board) windowMatches(start Cell, dir Direction, length int, anchor Token) bool {
	for step := 0; step < length; step++ {
		r := start.Row + dir.DRow*step
		c := start.Col + dir.DCol*step
		if !b.InBounds(r, c) || !b.at(r, c).Equal(anchor) {
			return false
		}
	}
	return true
}

// WinningCells returns the cells of the first winning window through
// (row, col), or nil when the cell is not part of one.
func (b *Board) WinningCells(row, col int) []Cell {
	for _, dir := range Directions {
		start, ok := b.findWindow(row, col, dir, b.tokensToConnect)
		if !ok {
			continue
		}
		cells := make([]Cell, b.tokensToConnect)
		for i := range cells {
			cells[i] = Cell{Row: start.Row + dir.DRow*i, Col: start.Col + dir.DCol*i}
		}
		return cells
	}
	return nil
}
