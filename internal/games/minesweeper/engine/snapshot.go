package engine

import "time"

// Snapshot captures the complete session state for rendering, logging and
// determinism tests.
type Snapshot struct {
	State      State
	Difficulty Difficulty
	FlagCount  int
	GameOver   bool
	PlayerWon  bool
	FirstClick bool
	Elapsed    time.Duration
	Cells      []Cell // Row-major, Difficulty.Width per row
}

// Snapshot returns a copy of the current session state.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		State:      s.state,
		Difficulty: s.difficulty,
		FlagCount:  s.engine.FlagCount(),
		GameOver:   s.engine.GameOver(),
		PlayerWon:  s.engine.PlayerWon(),
		FirstClick: s.engine.FirstClick(),
		Elapsed:    s.Elapsed(),
		Cells:      s.engine.Board().Cells(),
	}
}

// Cell returns the snapshot cell at c, or the zero Cell if out of range.
func (sn Snapshot) Cell(c Coord) Cell {
	w, h := sn.Difficulty.Width, sn.Difficulty.Height
	if c.X < 0 || c.X >= w || c.Y < 0 || c.Y >= h {
		return Cell{}
	}
	return sn.Cells[c.Y*w+c.X]
}

// String renders the board as text, one row per line:
// '#' hidden, 'F' flag, '*' mine, '.' empty, '1'..'8' counts.
func (sn Snapshot) String() string {
	w, h := sn.Difficulty.Width, sn.Difficulty.Height
	buf := make([]byte, 0, (w+1)*h)
	for y := 0; y < h; y++ {
		if y > 0 {
			buf = append(buf, '\n')
		}
		for x := 0; x < w; x++ {
			buf = append(buf, cellGlyph(sn.Cells[y*w+x]))
		}
	}
	return string(buf)
}

func cellGlyph(c Cell) byte {
	switch {
	case c.Flagged:
		return 'F'
	case !c.Revealed:
		return '#'
	case c.Mine:
		return '*'
	case c.NeighborMines == 0:
		return '.'
	default:
		return byte('0' + c.NeighborMines)
	}
}
