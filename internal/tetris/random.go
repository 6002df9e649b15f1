package tetris

import "math/rand"

// nextShape draws the upcoming shape. One uniform draw, plus a single
// unconditional redraw when the draw matches the shape leaving play:
// repeats still happen, but at 1/49 instead of 1/7.
func nextShape(rng *rand.Rand, leaving Shape) Shape {
	s := Shape(rng.Intn(ShapeCount))
	if s != leaving {
		return s
	}
	return Shape(rng.Intn(ShapeCount))
}
