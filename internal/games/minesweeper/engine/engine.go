// Package engine implements the Minesweeper board rules and the session
// state machine that drives them. It has no I/O and no Bubble Tea
// dependency; presentation layers read state and push actions.
package engine

import (
	"math/rand"
	"time"
)

// SafeZoneSize is the largest possible first-click safe zone
// (the clicked cell plus its eight neighbours).
const SafeZoneSize = 9

// RevealResult describes what a reveal or chord did to the board.
type RevealResult struct {
	Opened    int  // Cells newly revealed, excluding the mine layout shown on loss
	Detonated bool // A mine was revealed
}

// ChordResult extends RevealResult with whether the chord condition held.
type ChordResult struct {
	RevealResult
	Chorded bool
}

// Engine owns one board and the per-round bookkeeping around it.
type Engine struct {
	board      *Board
	rng        *rand.Rand
	flagCount  int
	gameOver   bool
	playerWon  bool
	firstClick bool
	detonated  Coord
	hasBlast   bool
}

// NewEngine creates an engine with a 9×9 empty board.
// A nil rng is replaced with a time-seeded source.
func NewEngine(rng *rand.Rand) *Engine {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	e := &Engine{
		board: NewBoard(9, 9),
		rng:   rng,
	}
	e.ResetBoard(9, 9)
	return e
}

// ResetBoard clears the active rectangle and every per-round counter.
func (e *Engine) ResetBoard(width, height int) {
	e.board.Reset(width, height)
	e.flagCount = 0
	e.gameOver = false
	e.playerWon = false
	e.firstClick = true
	e.hasBlast = false
	e.detonated = Coord{}
}

// PlaceMines lays out mines uniformly at random outside the 3×3 safe zone
// centred on safe, then computes neighbour counts.
//
// Sampling is rejection-based over the whole board. The requested count is
// capped at the number of eligible cells, so the loop always terminates;
// difficulty validation keeps real counts well below that cap.
// Returns the number of mines placed.
func (e *Engine) PlaceMines(safe Coord, mines int) int {
	b := e.board
	for i := range b.cells {
		b.cells[i].Mine = false
		b.cells[i].NeighborMines = 0
	}

	eligible := 0
	for i := range b.cells {
		if !safe.Adjacent(b.coord(i)) {
			eligible++
		}
	}
	mines = clamp(mines, 0, eligible)

	placed := 0
	for placed < mines {
		c := Coord{X: e.rng.Intn(b.W), Y: e.rng.Intn(b.H)}
		if safe.Adjacent(c) {
			continue
		}
		cell := b.at(c)
		if cell.Mine {
			continue
		}
		cell.Mine = true
		placed++
	}

	for i := range b.cells {
		if b.cells[i].Mine {
			continue
		}
		b.cells[i].NeighborMines = b.countNeighbors(b.coord(i), isMine)
	}

	e.firstClick = false
	return placed
}

// LoadLayout places mines at fixed coordinates instead of sampling them,
// then computes neighbour counts. Out-of-bounds entries are skipped.
// Used for reproducing known boards.
func (e *Engine) LoadLayout(mines []Coord) {
	b := e.board
	for i := range b.cells {
		b.cells[i].Mine = false
		b.cells[i].NeighborMines = 0
	}
	for _, c := range mines {
		if b.InBounds(c) {
			b.at(c).Mine = true
		}
	}
	for i := range b.cells {
		if !b.cells[i].Mine {
			b.cells[i].NeighborMines = b.countNeighbors(b.coord(i), isMine)
		}
	}
	e.firstClick = false
}

// RevealCell opens the cell at c.
//
// Out-of-bounds, revealed and flagged cells are ignored, as is every cell
// once the round is over. A mine ends the
// round and exposes every mine. A zero cell opens its connected zero region
// and that region's numbered border using an explicit stack; cells are
// marked revealed when pushed so none is visited twice.
func (e *Engine) RevealCell(c Coord) RevealResult {
	var res RevealResult
	if e.gameOver || !e.open(c, &res) {
		return res
	}
	if res.Detonated || e.board.Cell(c).NeighborMines > 0 {
		return res
	}

	stack := []Coord{c}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for _, n := range e.board.Neighbors(cur) {
			if !e.open(n, &res) {
				continue
			}
			if res.Detonated {
				return res
			}
			if e.board.Cell(n).NeighborMines == 0 {
				stack = append(stack, n)
			}
		}
	}
	return res
}

// open reveals a single cell and reports whether it changed.
func (e *Engine) open(c Coord, res *RevealResult) bool {
	if !e.board.InBounds(c) {
		return false
	}
	cell := e.board.at(c)
	if cell.Revealed || cell.Flagged {
		return false
	}
	cell.Revealed = true
	res.Opened++
	if cell.Mine {
		res.Detonated = true
		e.detonate(c)
	}
	return true
}

// detonate ends the round as a loss and shows the full mine layout.
func (e *Engine) detonate(at Coord) {
	e.gameOver = true
	e.playerWon = false
	e.detonated = at
	e.hasBlast = true
	for i := range e.board.cells {
		if e.board.cells[i].Mine {
			e.board.cells[i].Revealed = true
			e.board.cells[i].Flagged = false
		}
	}
	e.flagCount = e.board.Count(isFlagged)
}

// ToggleFlag flips the flag on a hidden cell and keeps the flag counter in
// step. Revealed and out-of-bounds cells are ignored, and nothing changes
// after the round is over.
func (e *Engine) ToggleFlag(c Coord) (flagged, changed bool) {
	if e.gameOver || !e.board.InBounds(c) {
		return false, false
	}
	cell := e.board.at(c)
	if cell.Revealed {
		return false, false
	}
	cell.Flagged = !cell.Flagged
	if cell.Flagged {
		e.flagCount++
	} else {
		e.flagCount--
	}
	return cell.Flagged, true
}

// ChordReveal opens every unflagged hidden neighbour of a revealed numbered
// cell whose flagged neighbour count equals its number. It stops at the
// first detonation; the loss still exposes every mine.
func (e *Engine) ChordReveal(c Coord) ChordResult {
	var res ChordResult
	if e.gameOver {
		return res
	}
	cell := e.board.Cell(c)
	if !cell.Numbered() {
		return res
	}
	if e.board.countNeighbors(c, isFlagged) != cell.NeighborMines {
		return res
	}
	res.Chorded = true

	for _, n := range e.board.Neighbors(c) {
		if !e.board.Cell(n).Hidden() {
			continue
		}
		r := e.RevealCell(n)
		res.Opened += r.Opened
		if r.Detonated {
			res.Detonated = true
			return res
		}
	}
	return res
}

// CheckForWin ends the round as a win when every safe cell is revealed.
// Does nothing once the round is over, so a loss is never overwritten.
func (e *Engine) CheckForWin() bool {
	if e.gameOver {
		return false
	}
	for _, cell := range e.board.cells {
		if !cell.Mine && !cell.Revealed {
			return false
		}
	}
	e.gameOver = true
	e.playerWon = true
	return true
}

// Board returns the engine's board. Callers must treat it as read-only.
func (e *Engine) Board() *Board { return e.board }

// Cell returns a copy of the cell at c.
func (e *Engine) Cell(c Coord) Cell { return e.board.Cell(c) }

// FlagCount returns the number of flagged cells.
func (e *Engine) FlagCount() int { return e.flagCount }

// GameOver reports whether the round has ended.
func (e *Engine) GameOver() bool { return e.gameOver }

// PlayerWon reports whether the round ended in a win.
func (e *Engine) PlayerWon() bool { return e.playerWon }

// FirstClick reports whether mines are still to be placed this round.
func (e *Engine) FirstClick() bool { return e.firstClick }

// Detonated returns the mine that ended the round, if any.
func (e *Engine) Detonated() (Coord, bool) { return e.detonated, e.hasBlast }
