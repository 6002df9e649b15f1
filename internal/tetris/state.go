package tetris

import (
	"math/rand"
	"time"
)

// Status tracks how the active piece finished the previous frame.
type Status int

const (
	// StatusNormal means nothing is pending for the next frame.
	StatusNormal Status = iota
	// StatusJustMoved marks a committed downward move (natural or
	// commanded); the next frame must check for lock and respawn.
	StatusJustMoved
	// StatusSpawnPending marks a frame that already decided to lock; the
	// next frame merges the piece into the board and spawns the queued one.
	StatusSpawnPending
)

// String returns a human-readable name for the status.
func (s Status) String() string {
	switch s {
	case StatusNormal:
		return "normal"
	case StatusJustMoved:
		return "just-moved"
	case StatusSpawnPending:
		return "spawn-pending"
	default:
		return "unknown"
	}
}

// Piece is the active piece state: catalog identity plus the cumulative
// linear displacement from the canonical spawn position. Absolute cells
// are catalog offsets plus Origin.
type Piece struct {
	Shape  Shape
	Rot    int
	Origin int
	Status Status
}

// State is the complete simulation state for one frame. Step replaces it
// wholesale every frame instead of mutating fields in place.
type State struct {
	Frame   uint64
	Board   Board
	Score   int
	Lines   int
	Gravity time.Duration
	Active  Piece
	Next    Shape

	// MaxDrop is how far the active piece can still fall. -1 immediately
	// after a spawn is the game-over signal; it is also the ghost offset
	// and the distance a hard drop on the next frame will consume.
	MaxDrop int

	GameOver bool
	Paused   bool

	LastDrop  time.Time // Last committed downward movement
	LastInput time.Time // Timestamp of the last processed input record
	LastFrame time.Time // Last frame boundary
}

// Level returns the current level, advancing every LinesPerLevel cleared
// lines and starting at 1.
func (s State) Level(cfg Config) int {
	return s.Lines/cfg.LinesPerLevel + 1
}

// Game owns one run of the simulation: the immutable catalog, the seeded
// random source feeding the next-piece queue, and the current State.
type Game struct {
	cfg     Config
	catalog *Catalog
	rng     *rand.Rand
	state   State
}

// NewGame starts a run with an empty board, a random first and next piece,
// and zero score. The seed makes runs reproducible.
func NewGame(cfg Config, seed int64, now time.Time) *Game {
	g := &Game{
		cfg:     cfg,
		catalog: NewCatalog(cfg.Width),
		rng:     rand.New(rand.NewSource(seed)),
	}

	first := Shape(g.rng.Intn(ShapeCount))
	g.state = State{
		Board:     NewBoard(cfg.Width, cfg.Height),
		Gravity:   cfg.InitialGravity,
		Active:    Piece{Shape: first},
		Next:      nextShape(g.rng, first),
		LastDrop:  now,
		LastFrame: now,
	}
	g.state.MaxDrop = dropDistance(g.catalog, g.state.Board, g.state.Active)
	return g
}

// Config returns the configuration the game was built with.
func (g *Game) Config() Config {
	return g.cfg
}

// State returns the most recently resolved state.
func (g *Game) State() State {
	return g.state
}
