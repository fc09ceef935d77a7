package board

import "fmt"

// Column is a fixed-height stack of tokens filled from the bottom (row 0).
// Filled slots are always contiguous from row 0.
type Column struct {
	tokens []Token
	count  int
}

// NewColumn creates an empty column with the given height.
func NewColumn(height int) *Column {
	c := &Column{tokens: make([]Token, height)}
	c.Reset()
	return c
}

// Height returns the maximum number of tokens the column can hold.
func (c *Column) Height() int {
	return len(c.tokens)
}

// Len returns the number of tokens currently in the column.
func (c *Column) Len() int {
	return c.count
}

// IsFull reports whether no slot remains.
func (c *Column) IsFull() bool {
	return c.count >= len(c.tokens)
}

// NextRow returns the row the next Add would use.
// When the column is full it returns Height(); check IsFull first.
func (c *Column) NextRow() int {
	return c.count
}

// Token returns the token at row, or Empty for an unfilled slot.
func (c *Column) Token(row int) (Token, error) {
	if row < 0 || row >= len(c.tokens) {
		return Empty, fmt.Errorf("%w: %d not in [0, %d)", ErrInvalidRow, row, len(c.tokens))
	}
	return c.tokens[row], nil
}

// Add places t in the lowest empty slot and returns its row.
func (c *Column) Add(t Token) (int, error) {
	if c.IsFull() {
		return 0, ErrFullColumn
	}
	row := c.count
	c.tokens[row] = t
	c.count++
	return row, nil
}

// pop removes the top token. It undoes exactly one Add.
func (c *Column) pop() (Token, bool) {
	if c.count == 0 {
		return Empty, false
	}
	c.count--
	t := c.tokens[c.count]
	c.tokens[c.count] = Empty
	return t, true
}

// Reset empties every slot.
func (c *Column) Reset() {
	for i := range c.tokens {
		c.tokens[i] = Empty
	}
	c.count = 0
}
