package engine

// Cell is a single square of the minefield.
// A cell is never Revealed and Flagged at the same time.
type Cell struct {
	Revealed bool
	Flagged  bool
	Mine     bool

	// NeighborMines counts mines in the Moore neighbourhood.
	// Only meaningful once mines have been placed for the round.
	NeighborMines int
}

// Hidden reports whether the cell can still be revealed by a direct click.
func (c Cell) Hidden() bool {
	return !c.Revealed && !c.Flagged
}

// Numbered reports whether the cell is a revealed safe cell with at least
// one adjacent mine.
func (c Cell) Numbered() bool {
	return c.Revealed && !c.Mine && c.NeighborMines > 0
}
