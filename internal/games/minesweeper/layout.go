package minesweeper

import (
	"github.com/vovakirdan/tui-minesweeper/internal/core"
	"github.com/vovakirdan/tui-minesweeper/internal/games/minesweeper/engine"
)

// Each board column takes two screen columns: the glyph and a padding column.
const cellPitch = 2

// Rows reserved around the board box: title above, status bar below.
const (
	titleRows  = 1
	statusRows = 1
)

// Overlay box size for the end-of-round banner.
const (
	overlayW = 26
	overlayH = 6
)

const playAgainLabel = "[ Play Again ]"

// Layout maps between board coordinates and screen cells.
type Layout struct {
	Box       core.Rect // Board frame including its border
	Title     int       // Row of the difficulty title
	Status    int       // Row of the status bar
	Overlay   core.Rect // End-of-round banner
	Banner    core.Rect // Text area inside the banner border
	PlayAgain core.Rect // Clickable "Play Again" label inside the banner
	Fits      bool      // The board fits the screen

	boardW, boardH int
}

// MinScreen returns the smallest screen that can show a w×h board.
func MinScreen(w, h int) (int, int) {
	return w*cellPitch + 3, h + 2 + titleRows + statusRows
}

// NewLayout centres a w×h board on a screenW×screenH screen.
func NewLayout(screenW, screenH, w, h int) Layout {
	minW, minH := MinScreen(w, h)
	l := Layout{
		boardW: w,
		boardH: h,
		Fits:   screenW >= minW && screenH >= minH,
	}

	boxW, boxH := minW, h+2
	x := (screenW - boxW) / 2
	y := (screenH-minH)/2 + titleRows
	l.Box = core.NewRect(core.Max(x, 0), core.Max(y, titleRows), boxW, boxH)
	l.Title = l.Box.Y - 1
	l.Status = l.Box.Bottom()

	l.Overlay = l.Box.Centered(overlayW, overlayH)
	l.Banner = l.Overlay.Inset(1)
	n := len(playAgainLabel)
	l.PlayAgain = core.NewRect(l.Banner.X+(l.Banner.W-n)/2, l.Banner.Y+2, n, 1)
	return l
}

// CellOrigin returns the screen position of the glyph for board cell c.
func (l Layout) CellOrigin(c engine.Coord) (int, int) {
	return l.Box.X + 2 + c.X*cellPitch, l.Box.Y + 1 + c.Y
}

// CellAt maps a screen position to a board cell. Clicks on the border,
// on the padding column between cells and outside the board are rejected.
func (l Layout) CellAt(x, y int) (engine.Coord, bool) {
	dx := x - (l.Box.X + 2)
	dy := y - (l.Box.Y + 1)
	if dx < 0 || dy < 0 || dx%cellPitch != 0 {
		return engine.Coord{}, false
	}
	c := engine.C(dx/cellPitch, dy)
	if c.X >= l.boardW || c.Y >= l.boardH {
		return engine.Coord{}, false
	}
	return c, true
}
