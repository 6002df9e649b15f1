package config

import (
	_ "embed"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultTetrisConfig returns the default game configuration.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Board: BoardConfig{
			Width:  10,
			Height: 20,
		},
		Timing: TimingConfig{
			FPS:               30,
			InitialGravityMs:  500,
			MinGravityMs:      100,
			GravityDecreaseMs: 50,
		},
		Scoring: ScoringConfig{
			LinesPerLevel:   10,
			LevelMultiplier: 1,
			Points:          [5]int{0, 100, 300, 500, 800},
		},
	}
}
