package tetris

import "time"

// Config is the static configuration consumed by the simulation: board
// dimensions, frame rate, gravity schedule and scoring table. Values come
// from the platform layer; the core does not care where they originate.
type Config struct {
	Width  int // Playable columns (sentinel column excluded)
	Height int // Rows

	FPS int // Target frames per second for the loop

	InitialGravity  time.Duration // Fall interval at level 1
	MinGravity      time.Duration // Floor for the fall interval
	GravityDecrease time.Duration // Interval reduction per level gained

	LinesPerLevel   int    // Lines cleared per level advance
	LevelMultiplier int    // Level score multiplier
	Points          [5]int // Base points indexed by lines cleared in one lock
}

// DefaultConfig returns the classic 10x20 game.
func DefaultConfig() Config {
	return Config{
		Width:           10,
		Height:          20,
		FPS:             30,
		InitialGravity:  500 * time.Millisecond,
		MinGravity:      100 * time.Millisecond,
		GravityDecrease: 50 * time.Millisecond,
		LinesPerLevel:   10,
		LevelMultiplier: 1,
		Points:          [5]int{0, 100, 300, 500, 800},
	}
}

// stride is the flat-index distance between vertically adjacent cells.
func (c Config) stride() int {
	return c.Width + 1
}
