package engine

// Board capacity. Every round uses an active W×H rectangle inside it.
const (
	MaxWidth  = 60
	MaxHeight = 40
)

// Board is the minefield grid.
// Storage is allocated once at full capacity; only the first W*H cells,
// laid out row-major (index = y*W + x), belong to the active rectangle.
type Board struct {
	W     int
	H     int
	cells []Cell
}

// NewBoard creates a board with the given active rectangle.
// Dimensions are clamped to [1, MaxWidth] and [1, MaxHeight].
func NewBoard(w, h int) *Board {
	b := &Board{cells: make([]Cell, 0, MaxWidth*MaxHeight)}
	b.Reset(w, h)
	return b
}

// Reset resizes the active rectangle and clears every cell in it.
func (b *Board) Reset(w, h int) {
	b.W = clamp(w, 1, MaxWidth)
	b.H = clamp(h, 1, MaxHeight)
	b.cells = b.cells[:b.W*b.H]
	clear(b.cells)
}

// index converts a coordinate to a flat array index.
func (b *Board) index(c Coord) int {
	return c.Y*b.W + c.X
}

// coord converts a flat array index back to a coordinate.
func (b *Board) coord(i int) Coord {
	return Coord{X: i % b.W, Y: i / b.W}
}

// InBounds returns true if the coordinate is inside the active rectangle.
func (b *Board) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < b.W && c.Y >= 0 && c.Y < b.H
}

// Cell returns a copy of the cell at c.
// Returns the zero Cell if out of bounds.
func (b *Board) Cell(c Coord) Cell {
	if !b.InBounds(c) {
		return Cell{}
	}
	return b.cells[b.index(c)]
}

// at returns a pointer to the cell at c. Caller checks bounds.
func (b *Board) at(c Coord) *Cell {
	return &b.cells[b.index(c)]
}

// Neighbors returns the in-bounds Moore neighbours of c.
func (b *Board) Neighbors(c Coord) []Coord {
	out := make([]Coord, 0, len(mooreOffsets))
	for _, d := range mooreOffsets {
		n := c.Add(d)
		if b.InBounds(n) {
			out = append(out, n)
		}
	}
	return out
}

// countNeighbors counts Moore neighbours of c matching pred.
func (b *Board) countNeighbors(c Coord, pred func(Cell) bool) int {
	n := 0
	for _, d := range mooreOffsets {
		nc := c.Add(d)
		if b.InBounds(nc) && pred(b.cells[b.index(nc)]) {
			n++
		}
	}
	return n
}

// Count returns how many cells in the active rectangle match pred.
func (b *Board) Count(pred func(Cell) bool) int {
	n := 0
	for _, cell := range b.cells {
		if pred(cell) {
			n++
		}
	}
	return n
}

// Cells returns a row-major copy of the active rectangle.
func (b *Board) Cells() []Cell {
	out := make([]Cell, len(b.cells))
	copy(out, b.cells)
	return out
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	clone := &Board{W: b.W, H: b.H, cells: make([]Cell, len(b.cells), cap(b.cells))}
	copy(clone.cells, b.cells)
	return clone
}

// Area returns the number of cells in the active rectangle.
func (b *Board) Area() int {
	return b.W * b.H
}

func isMine(c Cell) bool     { return c.Mine }
func isFlagged(c Cell) bool  { return c.Flagged }
func isRevealed(c Cell) bool { return c.Revealed }

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
