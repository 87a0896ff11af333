package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Palette used by the board and its overlays.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightBlue
	ColorNavy
	ColorMaroon
	ColorBrown
	ColorGray
	ColorDarkGray
)

// Attr is a set of text attributes applied on top of a color.
type Attr uint8

const (
	AttrNone    Attr = 0
	AttrBold    Attr = 1 << iota // Heavier glyph
	AttrReverse                  // Swap foreground and background (cursor)
)

// Has reports whether all bits of flag are set.
func (a Attr) Has(flag Attr) bool {
	return a&flag == flag
}
