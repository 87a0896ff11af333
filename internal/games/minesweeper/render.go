package minesweeper

import (
	"fmt"

	"github.com/vovakirdan/tui-minesweeper/internal/core"
	"github.com/vovakirdan/tui-minesweeper/internal/games/minesweeper/engine"
)

// Glyphs used on the board.
const (
	glyphHidden    = '■'
	glyphFlag      = 'F'
	glyphMine      = '*'
	glyphWrongFlag = 'x'
	glyphEmpty     = ' '
)

// numberColors colours neighbour counts 1..8.
var numberColors = [9]core.Color{
	1: core.ColorBlue,
	2: core.ColorGreen,
	3: core.ColorRed,
	4: core.ColorNavy,
	5: core.ColorMaroon,
	6: core.ColorBrown,
	7: core.ColorDefault,
	8: core.ColorDarkGray,
}

// Render draws the board, its status bar and any end-of-round banner.
// Nothing is drawn while the session is in the menu.
func (g *Game) Render(dst *core.Screen) {
	if g.session.State() == engine.StateMenu {
		return
	}
	if !g.layout.Fits {
		g.renderTooSmall(dst)
		return
	}

	g.renderTitle(dst)
	dst.DrawBox(g.layout.Box, core.ColorGray)
	g.renderCells(dst)
	g.renderStatus(dst)

	if g.session.State().Over() {
		g.renderOverlay(dst)
	}
}

func (g *Game) renderTitle(dst *core.Screen) {
	dst.DrawTextCentered(g.layout.Title, g.session.Difficulty().Name, core.ColorCyan)
}

func (g *Game) renderCells(dst *core.Screen) {
	b := g.session.Board()
	over := g.session.State().Over()
	blast, hasBlast := g.session.Engine().Detonated()

	for y := 0; y < b.H; y++ {
		for x := 0; x < b.W; x++ {
			c := engine.C(x, y)
			cell := cellStyle(b.Cell(c), over)
			if hasBlast && c == blast {
				cell.Color = core.ColorBrightRed
				cell.Attr |= core.AttrReverse
			}
			if !over && c == g.cursor {
				cell.Attr |= core.AttrReverse
			}
			sx, sy := g.layout.CellOrigin(c)
			dst.SetCell(sx, sy, cell)
		}
	}
}

// cellStyle picks the glyph and colour for one board cell.
func cellStyle(c engine.Cell, over bool) core.Cell {
	switch {
	case c.Flagged && over && !c.Mine:
		return core.Cell{Rune: glyphWrongFlag, Color: core.ColorRed}
	case c.Flagged:
		return core.Cell{Rune: glyphFlag, Color: core.ColorMaroon, Attr: core.AttrBold}
	case !c.Revealed:
		return core.Cell{Rune: glyphHidden, Color: core.ColorGray}
	case c.Mine:
		return core.Cell{Rune: glyphMine, Color: core.ColorRed, Attr: core.AttrBold}
	case c.NeighborMines == 0:
		return core.Cell{Rune: glyphEmpty}
	default:
		return core.Cell{Rune: rune('0' + c.NeighborMines), Color: numberColors[c.NeighborMines]}
	}
}

func (g *Game) renderStatus(dst *core.Screen) {
	d := g.session.Difficulty()
	secs := int(g.session.Elapsed().Seconds())
	status := fmt.Sprintf("Flags: %d/%d   Time: %03d", g.session.FlagCount(), d.Mines, secs)
	dst.DrawTextCentered(g.layout.Status, status, core.ColorWhite)
}

func (g *Game) renderOverlay(dst *core.Screen) {
	o := g.layout.Overlay
	dst.DrawRect(o, ' ')

	title, color := "Game Over!", core.ColorBrightRed
	if g.session.State() == engine.StateWon {
		title, color = "You Win!", core.ColorGreen
	}
	dst.DrawBox(o, color)
	in := g.layout.Banner
	drawCenteredIn(dst, in, in.Y, title, color)
	drawCenteredIn(dst, in, in.Y+1, fmt.Sprintf("Time: %ds", int(g.session.Elapsed().Seconds())), core.ColorWhite)
	dst.DrawTextColor(g.layout.PlayAgain.X, g.layout.PlayAgain.Y, playAgainLabel, core.ColorYellow)
	drawCenteredIn(dst, in, in.Y+3, "r: replay  esc: menu", core.ColorGray)
}

func (g *Game) renderTooSmall(dst *core.Screen) {
	d := g.session.Difficulty()
	w, h := MinScreen(d.Width, d.Height)
	mid := dst.Height() / 2
	dst.DrawTextCentered(mid-1, "Terminal too small", core.ColorYellow)
	dst.DrawTextCentered(mid, fmt.Sprintf("%s needs %dx%d", d.Name, w, h), core.ColorGray)
	dst.DrawTextCentered(mid+1, fmt.Sprintf("current %dx%d", dst.Width(), dst.Height()), core.ColorGray)
}

// drawCenteredIn draws text centred horizontally within r.
func drawCenteredIn(dst *core.Screen, r core.Rect, y int, text string, c core.Color) {
	n := len([]rune(text))
	dst.DrawTextColor(r.X+(r.W-n)/2, y, text, c)
}
