package tetris

// dropDistance returns how many rows the piece can fall from its current
// position before colliding. The counter starts at -1 and increments while
// each successive position is collision-free, so a piece whose current
// position already collides yields -1 — which right after a spawn is the
// sole game-over predicate. The value doubles as the ghost-piece offset and
// the hard-drop distance.
func dropDistance(c *Catalog, b Board, p Piece) int {
	d := -1
	for {
		cells := c.Cells(p.Shape, p.Rot, p.Origin+(d+1)*c.stride)
		if b.Collides(cells) {
			return d
		}
		d++
	}
}
