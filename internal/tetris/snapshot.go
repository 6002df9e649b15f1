package tetris

import "time"

// Snapshot captures the resolved state of a frame for determinism testing
// and replay comparison.
type Snapshot struct {
	Frame    uint64
	Score    int
	Lines    int
	Level    int
	Gravity  time.Duration
	Shape    Shape
	Rot      int
	Origin   int
	Status   Status
	MaxDrop  int
	Next     Shape
	GameOver bool
	Paused   bool
}

// Snapshot returns the current frame's snapshot.
func (g *Game) Snapshot() Snapshot {
	s := g.state
	return Snapshot{
		Frame:    s.Frame,
		Score:    s.Score,
		Lines:    s.Lines,
		Level:    s.Level(g.cfg),
		Gravity:  s.Gravity,
		Shape:    s.Active.Shape,
		Rot:      s.Active.Rot,
		Origin:   s.Active.Origin,
		Status:   s.Active.Status,
		MaxDrop:  s.MaxDrop,
		Next:     s.Next,
		GameOver: s.GameOver,
		Paused:   s.Paused,
	}
}
