package config

import (
	_ "embed"
)

//go:embed defaults/connectn.yaml
var defaultYAML []byte

// DefaultEmptySymbol marks an empty cell on the text board.
const DefaultEmptySymbol = "O"

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Board: BoardConfig{
			Width:           7,
			Height:          6,
			TokensToConnect: 4,
		},
		Players: []PlayerConfig{
			{Name: "Player 1", Kind: "human"},
			{Name: "Computer", Kind: "adjacency"},
		},
		Display: DisplayConfig{
			Color:       true,
			EmptySymbol: DefaultEmptySymbol,
		},
		AI: AIConfig{
			ThinkDelayMS: 400,
		},
		Storage: StorageConfig{
			Path:    "~/.connectn/results.db",
			Enabled: true,
		},
	}
}

// DefaultYAML returns the embedded default config file.
func DefaultYAML() []byte {
	return defaultYAML
}
