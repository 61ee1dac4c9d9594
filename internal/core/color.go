package core

// Color represents a foreground color for a screen cell.
// The platform maps each value onto an ANSI 256-color code.
type Color uint8

// Predefined colors used by the theme palettes.
const (
	ColorDefault Color = iota
	ColorBlack
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
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorOrangeRed
	ColorGold
	ColorPink
	ColorHotPink
	ColorBrown
	ColorNavy
	ColorPurple
	ColorDarkGreen
	ColorSkyBlue
	ColorSteelBlue
	ColorAquamarine
	ColorPaleGreen
	ColorGray
)

var colorNames = [...]string{
	ColorDefault:      "default",
	ColorBlack:        "black",
	ColorRed:          "red",
	ColorGreen:        "green",
	ColorYellow:       "yellow",
	ColorBlue:         "blue",
	ColorMagenta:      "magenta",
	ColorCyan:         "cyan",
	ColorWhite:        "white",
	ColorBrightRed:    "bright-red",
	ColorBrightGreen:  "bright-green",
	ColorBrightYellow: "bright-yellow",
	ColorBrightCyan:   "bright-cyan",
	ColorBrightWhite:  "bright-white",
	ColorOrange:       "orange",
	ColorOrangeRed:    "orange-red",
	ColorGold:         "gold",
	ColorPink:         "pink",
	ColorHotPink:      "hot-pink",
	ColorBrown:        "brown",
	ColorNavy:         "navy",
	ColorPurple:       "purple",
	ColorDarkGreen:    "dark-green",
	ColorSkyBlue:      "sky-blue",
	ColorSteelBlue:    "steel-blue",
	ColorAquamarine:   "aquamarine",
	ColorPaleGreen:    "pale-green",
	ColorGray:         "gray",
}

func (c Color) String() string {
	if int(c) < len(colorNames) {
		return colorNames[c]
	}
	return "unknown"
}
