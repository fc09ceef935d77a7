package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrUnrecognizedCommand is returned for input that is neither a column
// number nor a known command.
var ErrUnrecognizedCommand = errors.New("misunderstood input")

// Action is what a line of turn input asks for.
type Action int

const (
	ActionDrop    Action = iota // Drop a token into Command.Column
	ActionQuit                  // Q
	ActionHelp                  // H
	ActionDisplay               // D
)

// Command is one parsed line of turn input.
type Command struct {
	Action Action
	Column int
}

// ParseCommand parses a column number or one of Q, H, D (any case).
// Column numbers are not range checked here; the board rejects them.
func ParseCommand(input string) (Command, error) {
	s := strings.TrimSpace(input)
	if col, err := strconv.Atoi(s); err == nil {
		return Command{Action: ActionDrop, Column: col}, nil
	}

	switch strings.ToUpper(s) {
	case "Q":
		return Command{Action: ActionQuit}, nil
	case "H":
		return Command{Action: ActionHelp}, nil
	case "D":
		return Command{Action: ActionDisplay}, nil
	}
	return Command{}, fmt.Errorf("%w: %q", ErrUnrecognizedCommand, s)
}

// HelpText lists the turn commands.
const HelpText = `Actions: #: Adds a token to the specified column.
         H: Displays this help message.
         D: Displays the current state of the board.
         Q: Quits the game.`
