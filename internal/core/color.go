package core

// Color represents a foreground color for a screen cell.
// The platform maps each value to a terminal style.
type Color uint8

// Predefined colors for interface elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorCyan
	ColorGray
	ColorBrightWhite
)

// Tile colors, one per tile value tier.
const (
	ColorTileEmpty Color = iota + 32
	ColorTile2
	ColorTile4
	ColorTile8
	ColorTile16
	ColorTile32
	ColorTile64
	ColorTile128
	ColorTile256
	ColorTile512
	ColorTile1024
	ColorTile2048
	ColorTileSuper // Anything above 2048
)

// TileColor returns the color tier for a tile value.
// Zero maps to ColorTileEmpty.
func TileColor(value int) Color {
	if value <= 0 {
		return ColorTileEmpty
	}
	c := ColorTile2
	for v := 2; v < value; v *= 2 {
		if c == ColorTileSuper {
			break
		}
		c++
	}
	return c
}
