package engine

// Coord is a cell position on the board. X is the column, Y is the row.
type Coord struct {
	X, Y int
}

// C is shorthand for Coord{X: x, Y: y}.
func C(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// mooreOffsets lists the eight neighbour offsets in row-major order.
var mooreOffsets = [8]Coord{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// Add returns the coordinate offset by d.
func (c Coord) Add(d Coord) Coord {
	return Coord{X: c.X + d.X, Y: c.Y + d.Y}
}

// Adjacent reports whether o lies in the Moore neighbourhood of c,
// c itself included.
func (c Coord) Adjacent(o Coord) bool {
	dx := c.X - o.X
	dy := c.Y - o.Y
	return dx >= -1 && dx <= 1 && dy >= -1 && dy <= 1
}
