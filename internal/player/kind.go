package player

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownKind is returned when a player kind name cannot be parsed.
var ErrUnknownKind = errors.New("unknown player kind")

// Kind describes who decides a player's moves.
type Kind int

const (
	Human       Kind = iota // Moves come from the presentation layer
	RandomAI                // Uniformly random column
	AdjacencyAI             // Greedy 3x3 neighbourhood scorer
	LookaheadAI             // Run-length threshold filter
)

// Kinds lists every player kind in display order.
var Kinds = []Kind{Human, RandomAI, AdjacencyAI, LookaheadAI}

// String returns the name used in config files and prompts.
func (k Kind) String() string {
	switch k {
	case Human:
		return "human"
	case RandomAI:
		return "random"
	case AdjacencyAI:
		return "adjacency"
	case LookaheadAI:
		return "lookahead"
	default:
		return "unknown"
	}
}

// IsAutomated reports whether moves for this kind come from a decision policy.
func (k Kind) IsAutomated() bool {
	return k != Human
}

// ParseKind converts a kind name (case-insensitive) to a Kind.
// A few short aliases are accepted for prompt input.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "human", "h":
		return Human, nil
	case "random", "r":
		return RandomAI, nil
	case "adjacency", "simple", "a":
		return AdjacencyAI, nil
	case "lookahead", "intelligent", "l":
		return LookaheadAI, nil
	}
	return Human, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// KindNames returns the names of all kinds joined with "/".
func KindNames() string {
	names := make([]string, len(Kinds))
	for i, k := range Kinds {
		names[i] = k.String()
	}
	return strings.Join(names, "/")
}
