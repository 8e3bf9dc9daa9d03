package config

import (
	_ "embed"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultTetrisConfig returns the default game configuration.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Timing: Timing{
			InitialDelayMS: 1000,
			DelayFactor:    0.8,
			MinDelayMS:     1,
			LevelUp:        20,
		},
		Layout: Layout{
			Playfield: Position{X: 30, Y: 1},
			Help:      Position{X: 58, Y: 1},
			Score:     Position{X: 1, Y: 2},
			Next:      Position{X: 14, Y: 11},
			GameOver:  Position{X: 1, Y: FieldHeight + 3},
		},
		Display: Display{
			Color:    true,
			ShowHelp: true,
			ShowNext: true,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultTetrisYAML
}
