package core

// Color represents a foreground color for a screen cell.
// Values map to ANSI 256-color codes in the terminal host.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorOrange
	ColorGray
)

// BrickPalette cycles per brick row, top to bottom.
var BrickPalette = []Color{
	ColorRed,
	ColorOrange,
	ColorYellow,
	ColorGreen,
	ColorCyan,
	ColorBlue,
	ColorMagenta,
}

// RowColor returns the palette color for a brick row.
func RowColor(row int) Color {
	if row < 0 {
		row = -row
	}
	return BrickPalette[row%len(BrickPalette)]
}
