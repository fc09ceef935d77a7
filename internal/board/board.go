// Package board implements the gravity-fill grid and the run scanner that
// decides whether a cell is part of a winning line.
package board

import (
	"errors"
	"fmt"
)

// Limits on the run length required to win.
const (
	MinTokensToConnect = 3
	MaxTokensToConnect = 32
)

var (
	ErrInvalidDimensions = errors.New("invalid board dimensions")
	ErrInvalidColumn     = errors.New("column is out of bounds")
	ErrInvalidRow        = errors.New("row is out of bounds")
	ErrFullColumn        = errors.New("column is full")
)

// Cell addresses one slot of the board. Row 0 is the bottom.
type Cell struct {
	Row int
	Col int
}

// Board is a width x height grid stored as columns.
type Board struct {
	width           int
	height          int
	tokensToConnect int
	columns         []*Column
	numTokens       int
}

// ValidateDimensions checks board settings without allocating anything.
func ValidateDimensions(width, height, tokensToConnect int) error {
	switch {
	case tokensToConnect < MinTokensToConnect:
		return fmt.Errorf("%w: tokens to connect cannot be less than %d (got %d)",
			ErrInvalidDimensions, MinTokensToConnect, tokensToConnect)
	case tokensToConnect > MaxTokensToConnect:
		return fmt.Errorf("%w: tokens to connect cannot be more than %d (got %d)",
			ErrInvalidDimensions, MaxTokensToConnect, tokensToConnect)
	case width < tokensToConnect:
		return fmt.Errorf("%w: the width (%d) must be at least the number of tokens to connect (%d)",
			ErrInvalidDimensions, width, tokensToConnect)
	case height < tokensToConnect:
		return fmt.Errorf("%w: the height (%d) must be at least the number of tokens to connect (%d)",
			ErrInvalidDimensions, height, tokensToConnect)
	}
	return nil
}

// New creates an empty board.
func New(width, height, tokensToConnect int) (*Board, error) {
	if err := ValidateDimensions(width, height, tokensToConnect); err != nil {
		return nil, err
	}

	b := &Board{
		width:           width,
		height:          height,
		tokensToConnect: tokensToConnect,
		columns:         make([]*Column, width),
	}
	for i := range b.columns {
		b.columns[i] = NewColumn(height)
	}
	return b, nil
}

// Width returns the number of columns.
func (b *Board) Width() int { return b.width }

// Height returns the number of rows.
func (b *Board) Height() int { return b.height }

// TokensToConnect returns the run length needed to win.
func (b *Board) TokensToConnect() int { return b.tokensToConnect }

// NumTokens returns how many tokens have been placed.
func (b *Board) NumTokens() int { return b.numTokens }

// MaxTokens returns the board's capacity (width * height).
func (b *Board) MaxTokens() int { return b.width * b.height }

// IsFull reports whether every slot is taken.
func (b *Board) IsFull() bool { return b.numTokens >= b.MaxTokens() }

// InBounds reports whether (row, col) addresses a slot on the board.
func (b *Board) InBounds(row, col int) bool {
	return row >= 0 && row < b.height && col >= 0 && col < b.width
}

func (b *Board) checkColumn(col int) error {
	if col < 0 || col >= b.width {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrInvalidColumn, col, b.width)
	}
	return nil
}

// at returns the token at an in-bounds cell.
func (b *Board) at(row, col int) Token {
	return b.columns[col].tokens[row]
}

// Token returns the token at (row, col).
func (b *Board) Token(row, col int) (Token, error) {
	if err := b.checkColumn(col); err != nil {
		return Empty, err
	}
	return b.columns[col].Token(row)
}

// NextRow returns the row a token dropped into col would land in.
func (b *Board) NextRow(col int) (int, error) {
	if err := b.checkColumn(col); err != nil {
		return 0, err
	}
	c := b.columns[col]
	if c.IsFull() {
		return 0, fmt.Errorf("column %d: %w", col, ErrFullColumn)
	}
	return c.NextRow(), nil
}

// IsColumnFull reports whether col cannot take another token.
// Out-of-range columns count as full.
func (b *Board) IsColumnFull(col int) bool {
	if col < 0 || col >= b.width {
		return true
	}
	return b.columns[col].IsFull()
}

// Add drops t into col and returns the row it landed in.
// It does not check for a win; call IsWinningPosition with the result.
func (b *Board) Add(t Token, col int) (int, error) {
	if err := b.checkColumn(col); err != nil {
		return 0, err
	}
	row, err := b.columns[col].Add(t)
	if err != nil {
		return 0, fmt.Errorf("column %d: %w", col, err)
	}
	b.numTokens++
	return row, nil
}

// Trial drops t into col, calls fn with the landing row and removes the
// token again before returning fn's result. The board is left exactly as it
// was found.
func (b *Board) Trial(t Token, col int, fn func(row int) bool) (bool, error) {
	row, err := b.Add(t, col)
	if err != nil {
		return false, err
	}
	defer b.retract(col)
	return fn(row), nil
}

// retract undoes the most recent Add on col.
func (b *Board) retract(col int) {
	if _, ok := b.columns[col].pop(); ok {
		b.numTokens--
	}
}

// Reset empties every column.
func (b *Board) Reset() {
	for _, c := range b.columns {
		c.Reset()
	}
	b.numTokens = 0
}
