// Package config provides YAML-based configuration loading for the game.
package config

import (
	"fmt"
	"time"

	"github.com/nuno-faria/tetris/internal/tetris"
)

// TetrisConfig contains all tunable parameters of the game.
type TetrisConfig struct {
	Board   BoardConfig   `yaml:"board"`
	Timing  TimingConfig  `yaml:"timing"`
	Scoring ScoringConfig `yaml:"scoring"`
}

// BoardConfig defines the playfield dimensions.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// TimingConfig defines the frame rate and gravity progression.
// Gravity intervals are millisecond integers so the YAML stays plain numbers.
type TimingConfig struct {
	FPS               int `yaml:"fps"`
	InitialGravityMs  int `yaml:"initial_gravity_ms"`
	MinGravityMs      int `yaml:"min_gravity_ms"`
	GravityDecreaseMs int `yaml:"gravity_decrease_ms"`
}

// ScoringConfig defines points, level progression and the speed curve.
type ScoringConfig struct {
	LinesPerLevel   int    `yaml:"lines_per_level"`
	LevelMultiplier int    `yaml:"level_multiplier"`
	Points          [5]int `yaml:"points"`
}

// Validate checks the config for values the engine cannot run with.
func (c TetrisConfig) Validate() error {
	if c.Board.Width < 4 {
		return fmt.Errorf("config: board width %d is below the piece box size", c.Board.Width)
	}
	if c.Board.Height < 4 {
		return fmt.Errorf("config: board height %d is below the piece box size", c.Board.Height)
	}
	if c.Timing.FPS <= 0 {
		return fmt.Errorf("config: fps must be positive, got %d", c.Timing.FPS)
	}
	if c.Timing.InitialGravityMs <= 0 || c.Timing.MinGravityMs <= 0 {
		return fmt.Errorf("config: gravity intervals must be positive")
	}
	if c.Timing.MinGravityMs > c.Timing.InitialGravityMs {
		return fmt.Errorf("config: min gravity %dms exceeds initial gravity %dms",
			c.Timing.MinGravityMs, c.Timing.InitialGravityMs)
	}
	if c.Scoring.LinesPerLevel <= 0 {
		return fmt.Errorf("config: lines_per_level must be positive, got %d", c.Scoring.LinesPerLevel)
	}
	return nil
}

// Engine converts the loaded config into the simulation's parameter set.
func (c TetrisConfig) Engine() tetris.Config {
	return tetris.Config{
		Width:           c.Board.Width,
		Height:          c.Board.Height,
		FPS:             c.Timing.FPS,
		InitialGravity:  time.Duration(c.Timing.InitialGravityMs) * time.Millisecond,
		MinGravity:      time.Duration(c.Timing.MinGravityMs) * time.Millisecond,
		GravityDecrease: time.Duration(c.Timing.GravityDecreaseMs) * time.Millisecond,
		LinesPerLevel:   c.Scoring.LinesPerLevel,
		LevelMultiplier: c.Scoring.LevelMultiplier,
		Points:          c.Scoring.Points,
	}
}
