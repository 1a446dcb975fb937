package core

// Color identifies a foreground color for a screen cell. The platform layer
// decides how each value maps onto actual terminal colors, so the palette
// can stay semantic here.
type Color uint8

// Basic ANSI colors plus the handful of extended hues the renderer needs
// for the sky, the pipes and the bird.
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
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
	ColorSky
	ColorLeaf
	ColorSoil
	ColorGold
)
