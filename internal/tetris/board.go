// Package tetris implements the falling-block simulation core: a packed
// board with sentinel cells, the piece catalog, the per-frame movement
// resolver, scoring, and a renderer. The simulation is a whole-state
// transition: each frame derives a new State from the previous one, a single
// input snapshot, and the current time, so observers only ever see fully
// resolved frames.
package tetris

// Board is a flat cell-occupancy container. Each row holds width playable
// cells followed by one permanently occupied sentinel cell, so collisions
// with the right edge (and, through index wrap, the left edge) reduce to
// plain value lookups. Length is always height*(width+1).
type Board []bool

// NewBoard returns an empty board with every sentinel cell pre-occupied.
func NewBoard(width, height int) Board {
	stride := width + 1
	b := make(Board, height*stride)
	for row := 0; row < height; row++ {
		b[row*stride+width] = true
	}
	return b
}

// Collides reports whether any of the absolute cell indices falls outside
// the board or lands on an occupied cell. Sentinel cells are always
// occupied, which turns horizontal wraps into ordinary occupancy hits;
// negative indices guard rotation at the top edge.
func (b Board) Collides(cells [4]int) bool {
	for _, idx := range cells {
		if idx < 0 || idx >= len(b) || b[idx] {
			return true
		}
	}
	return false
}

// Lock returns a new board with the given cells marked occupied.
// It does not clear lines.
func (b Board) Lock(cells [4]int) Board {
	next := make(Board, len(b))
	copy(next, b)
	for _, idx := range cells {
		next[idx] = true
	}
	return next
}

// ClearLines removes every complete row and prepends that many fresh empty
// rows, preserving total height and relative order of the surviving rows.
// A row is complete when all of its width+1 cells are occupied; the sentinel
// is always occupied, so the all-true test is exactly the completeness check
// for the playable cells. Returns the new board and the number of rows
// removed. When nothing is complete the input board is returned unchanged.
func (b Board) ClearLines(width int) (Board, int) {
	stride := width + 1
	height := len(b) / stride

	kept := make([][]bool, 0, height)
	for row := 0; row < height; row++ {
		line := b[row*stride : (row+1)*stride]
		full := true
		for _, cell := range line {
			if !cell {
				full = false
				break
			}
		}
		if !full {
			kept = append(kept, line)
		}
	}

	cleared := height - len(kept)
	if cleared == 0 {
		return b, 0
	}

	next := NewBoard(width, height)
	base := cleared * stride
	for i, line := range kept {
		copy(next[base+i*stride:], line)
	}
	return next, cleared
}
