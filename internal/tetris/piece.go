package tetris

// Shape identifies one of the 7 tetrominoes.
type Shape int

const (
	ShapeI Shape = iota
	ShapeO
	ShapeT
	ShapeS
	ShapeZ
	ShapeJ
	ShapeL

	// ShapeCount is the number of distinct tetrominoes.
	ShapeCount = 7
	// RotationCount is the number of discrete rotations per shape.
	RotationCount = 4
)

// String returns the conventional one-letter name of the shape.
func (s Shape) String() string {
	switch s {
	case ShapeI:
		return "I"
	case ShapeO:
		return "O"
	case ShapeT:
		return "T"
	case ShapeS:
		return "S"
	case ShapeZ:
		return "Z"
	case ShapeJ:
		return "J"
	case ShapeL:
		return "L"
	default:
		return "?"
	}
}

// shapeCells holds the (row, col) cells of every shape at every rotation
// inside a 4x4 box. Every rotation touches row 0, so a freshly spawned
// piece sits flush with the top of the board and an unobstructed drop
// distance is exactly height minus the piece height.
var shapeCells = [ShapeCount][RotationCount][4][2]int{
	ShapeI: {
		{{0, 0}, {0, 1}, {0, 2}, {0, 3}},
		{{0, 1}, {1, 1}, {2, 1}, {3, 1}},
		{{0, 0}, {0, 1}, {0, 2}, {0, 3}},
		{{0, 1}, {1, 1}, {2, 1}, {3, 1}},
	},
	ShapeO: {
		{{0, 1}, {0, 2}, {1, 1}, {1, 2}},
		{{0, 1}, {0, 2}, {1, 1}, {1, 2}},
		{{0, 1}, {0, 2}, {1, 1}, {1, 2}},
		{{0, 1}, {0, 2}, {1, 1}, {1, 2}},
	},
	ShapeT: {
		{{0, 0}, {0, 1}, {0, 2}, {1, 1}},
		{{0, 1}, {1, 0}, {1, 1}, {2, 1}},
		{{0, 1}, {1, 0}, {1, 1}, {1, 2}},
		{{0, 0}, {1, 0}, {1, 1}, {2, 0}},
	},
	ShapeS: {
		{{0, 1}, {0, 2}, {1, 0}, {1, 1}},
		{{0, 0}, {1, 0}, {1, 1}, {2, 1}},
		{{0, 1}, {0, 2}, {1, 0}, {1, 1}},
		{{0, 0}, {1, 0}, {1, 1}, {2, 1}},
	},
	ShapeZ: {
		{{0, 0}, {0, 1}, {1, 1}, {1, 2}},
		{{0, 1}, {1, 0}, {1, 1}, {2, 0}},
		{{0, 0}, {0, 1}, {1, 1}, {1, 2}},
		{{0, 1}, {1, 0}, {1, 1}, {2, 0}},
	},
	ShapeJ: {
		{{0, 0}, {1, 0}, {1, 1}, {1, 2}},
		{{0, 0}, {0, 1}, {1, 0}, {2, 0}},
		{{0, 0}, {0, 1}, {0, 2}, {1, 2}},
		{{0, 1}, {1, 1}, {2, 0}, {2, 1}},
	},
	ShapeL: {
		{{0, 2}, {1, 0}, {1, 1}, {1, 2}},
		{{0, 0}, {1, 0}, {2, 0}, {2, 1}},
		{{0, 0}, {0, 1}, {0, 2}, {1, 0}},
		{{0, 0}, {0, 1}, {1, 1}, {2, 1}},
	},
}

// Catalog maps (shape, rotation) to the 4 relative cell offsets in the flat
// board indexing scheme, anchored at the canonical spawn column
// (width-4)/2. Built once per board width and immutable afterwards; the
// absolute cell of a piece is catalog offset plus the piece's origin
// displacement.
type Catalog struct {
	width   int
	stride  int
	offsets [ShapeCount][RotationCount][4]int
}

// NewCatalog builds the offset table for the given board width.
func NewCatalog(width int) *Catalog {
	stride := width + 1
	spawnCol := (width - 4) / 2
	c := &Catalog{width: width, stride: stride}
	for s := range shapeCells {
		for r := range shapeCells[s] {
			for i, cell := range shapeCells[s][r] {
				c.offsets[s][r][i] = cell[0]*stride + cell[1] + spawnCol
			}
		}
	}
	return c
}

// Cells returns the absolute cell indices of a piece displaced by origin
// from its canonical spawn position.
func (c *Catalog) Cells(shape Shape, rot, origin int) [4]int {
	var out [4]int
	for i, off := range c.offsets[shape][rot] {
		out[i] = off + origin
	}
	return out
}

// Preview renders the rotation-0 cells of a shape into a 2x4 occupancy
// grid for the next-piece preview. All spawn rotations fit in two rows.
func Preview(shape Shape) [2][4]bool {
	var grid [2][4]bool
	for _, cell := range shapeCells[shape][0] {
		if cell[0] < 2 {
			grid[cell[0]][cell[1]] = true
		}
	}
	return grid
}
