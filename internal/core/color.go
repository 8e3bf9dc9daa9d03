package core

import "math/rand"

// Color is one of the seven basic ANSI colors.
// The numeric value is the digit used in the SGR sequence (ESC[3<n>m).
type Color uint8

// Palette colors, numbered as the terminal numbers them.
const (
	ColorRed Color = iota + 1
	ColorGreen
	ColorYellow
	ColorBlue
	ColorFuchsia
	ColorCyan
	ColorWhite
)

// Palette lists every color a piece can be drawn with.
var Palette = []Color{
	ColorRed,
	ColorGreen,
	ColorYellow,
	ColorBlue,
	ColorFuchsia,
	ColorCyan,
	ColorWhite,
}

// RandomColor picks a palette color uniformly.
func RandomColor(rng *rand.Rand) Color {
	return Palette[rng.Intn(len(Palette))]
}

// code returns the SGR digit, falling back to white for unknown values.
func (c Color) code() uint8 {
	if c < ColorRed || c > ColorWhite {
		return uint8(ColorWhite)
	}
	return uint8(c)
}

// String returns the color name.
func (c Color) String() string {
	switch c {
	case ColorRed:
		return "red"
	case ColorGreen:
		return "green"
	case ColorYellow:
		return "yellow"
	case ColorBlue:
		return "blue"
	case ColorFuchsia:
		return "fuchsia"
	case ColorCyan:
		return "cyan"
	case ColorWhite:
		return "white"
	default:
		return "unknown"
	}
}
