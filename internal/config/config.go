// Package config provides YAML-based configuration loading for connectn:
// board dimensions, the default line-up of players, display options, AI pacing
// and the results database.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/vovakirdan/connectn/internal/board"
	"github.com/vovakirdan/connectn/internal/game"
	"github.com/vovakirdan/connectn/internal/player"
)

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config contains all settings for a connectn session.
type Config struct {
	Board   BoardConfig    `yaml:"board"`
	Players []PlayerConfig `yaml:"players"`
	Display DisplayConfig  `yaml:"display"`
	AI      AIConfig       `yaml:"ai"`
	Storage StorageConfig  `yaml:"storage"`
}

// BoardConfig defines the grid and the run length needed to win.
type BoardConfig struct {
	Width           int `yaml:"width"`
	Height          int `yaml:"height"`
	TokensToConnect int `yaml:"tokens_to_connect"`
}

// PlayerConfig defines one seat. An empty name becomes "Player N".
type PlayerConfig struct {
	Name string `yaml:"name"`
	Kind string `yaml:"kind"` // human, random, adjacency or lookahead
}

// ParsedKind returns the player kind. An empty kind means human.
func (p PlayerConfig) ParsedKind() (player.Kind, error) {
	if strings.TrimSpace(p.Kind) == "" {
		return player.Human, nil
	}
	return player.ParseKind(p.Kind)
}

// DisplayConfig defines how boards are drawn.
type DisplayConfig struct {
	Color       bool   `yaml:"color"`
	EmptySymbol string `yaml:"empty_symbol"`
}

// AIConfig defines automated player pacing.
type AIConfig struct {
	ThinkDelayMS int `yaml:"think_delay_ms"` // pause before an AI move in the TUI
}

// StorageConfig defines where finished games are recorded.
type StorageConfig struct {
	Path    string `yaml:"path"`
	Enabled bool   `yaml:"enabled"`
}

// ThinkDelay returns the AI pause as a duration.
func (a AIConfig) ThinkDelay() time.Duration {
	return time.Duration(a.ThinkDelayMS) * time.Millisecond
}

// Symbol returns the empty-cell symbol, falling back to the default.
func (d DisplayConfig) Symbol() string {
	if strings.TrimSpace(d.EmptySymbol) == "" {
		return DefaultEmptySymbol
	}
	return d.EmptySymbol
}

// Validate checks that a game can be built from the config.
func (c Config) Validate() error {
	b := c.Board
	if err := board.ValidateDimensions(b.Width, b.Height, b.TokensToConnect); err != nil {
		return fmt.Errorf("%w: board: %w", ErrInvalidConfig, err)
	}
	if len(c.Players) < game.MinPlayers {
		return fmt.Errorf("%w: %d players configured, need at least %d",
			ErrInvalidConfig, len(c.Players), game.MinPlayers)
	}
	seen := make(map[string]int, len(c.Players))
	for i, p := range c.Players {
		if _, err := p.ParsedKind(); err != nil {
			return fmt.Errorf("%w: players[%d]: %w", ErrInvalidConfig, i, err)
		}
		key := NameKey(p.Name)
		if key == "" {
			continue
		}
		if j, ok := seen[key]; ok {
			return fmt.Errorf("%w: players[%d]: name %q already used by players[%d]",
				ErrInvalidConfig, i, p.Name, j)
		}
		seen[key] = i
	}
	if c.AI.ThinkDelayMS < 0 {
		return fmt.Errorf("%w: ai.think_delay_ms must not be negative", ErrInvalidConfig)
	}
	return nil
}

// NameKey normalises a player name for uniqueness checks. Names differing
// only in case or surrounding space are the same player.
func NameKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// BuildPlayers creates the configured players from seq, in order.
func (c Config) BuildPlayers(seq *player.Sequence) ([]player.Player, error) {
	players := make([]player.Player, 0, len(c.Players))
	for i, pc := range c.Players {
		kind, err := pc.ParsedKind()
		if err != nil {
			return nil, fmt.Errorf("players[%d]: %w", i, err)
		}
		if strings.TrimSpace(pc.Name) == "" {
			players = append(players, seq.Anonymous(kind))
			continue
		}
		p, err := seq.New(pc.Name, kind)
		if err != nil {
			return nil, fmt.Errorf("players[%d]: %w", i, err)
		}
		players = append(players, p)
	}
	return players, nil
}

// NewBoard creates an empty board with the configured dimensions.
func (c Config) NewBoard() (*board.Board, error) {
	return board.New(c.Board.Width, c.Board.Height, c.Board.TokensToConnect)
}
