package config

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Theme selects a colour palette. Themes are purely cosmetic.
type Theme int

const (
	ThemeClassic Theme = iota
	ThemeNeon
	ThemeSunset
	ThemeOcean
	ThemeForest
)

// Themes lists every theme in cycling order.
var Themes = []Theme{ThemeClassic, ThemeNeon, ThemeSunset, ThemeOcean, ThemeForest}

// String returns the theme name.
func (t Theme) String() string {
	switch t {
	case ThemeClassic:
		return "CLASSIC"
	case ThemeNeon:
		return "NEON"
	case ThemeSunset:
		return "SUNSET"
	case ThemeOcean:
		return "OCEAN"
	case ThemeForest:
		return "FOREST"
	default:
		return "UNKNOWN"
	}
}

// Next returns the following theme, wrapping around.
func (t Theme) Next() Theme {
	return Themes[(int(t)+1)%len(Themes)]
}

// Prev returns the preceding theme, wrapping around.
func (t Theme) Prev() Theme {
	n := len(Themes)
	return Themes[(int(t)-1+n)%n]
}

// ParseTheme converts a case-insensitive name to a Theme.
func ParseTheme(s string) (Theme, error) {
	for _, t := range Themes {
		if strings.EqualFold(s, t.String()) {
			return t, nil
		}
	}
	return ThemeClassic, fmt.Errorf("config: unknown theme %q", s)
}

// ThemeProfile is the palette of a theme, one colour per role.
type ThemeProfile struct {
	Background core.Color
	Player     core.Color
	Enemy      core.Color
	Bullet     core.Color
	Text       core.Color
	Accent     core.Color
}

// Colors returns every role colour, background first.
func (p ThemeProfile) Colors() []core.Color {
	return []core.Color{p.Background, p.Player, p.Enemy, p.Bullet, p.Text, p.Accent}
}

var palettes = map[Theme]ThemeProfile{
	ThemeClassic: {
		Background: core.ColorBlack,
		Player:     core.ColorBrightGreen,
		Enemy:      core.ColorBrightRed,
		Bullet:     core.ColorBrightYellow,
		Text:       core.ColorBrightWhite,
		Accent:     core.ColorBrightCyan,
	},
	ThemeNeon: {
		Background: core.ColorNavy,
		Player:     core.ColorBrightCyan,
		Enemy:      core.ColorMagenta,
		Bullet:     core.ColorBrightYellow,
		Text:       core.ColorBrightCyan,
		Accent:     core.ColorPink,
	},
	ThemeSunset: {
		Background: core.ColorPurple,
		Player:     core.ColorOrange,
		Enemy:      core.ColorOrangeRed,
		Bullet:     core.ColorGold,
		Text:       core.ColorBrightWhite,
		Accent:     core.ColorHotPink,
	},
	ThemeOcean: {
		Background: core.ColorBlue,
		Player:     core.ColorSkyBlue,
		Enemy:      core.ColorSteelBlue,
		Bullet:     core.ColorBrightWhite,
		Text:       core.ColorBrightWhite,
		Accent:     core.ColorAquamarine,
	},
	ThemeForest: {
		Background: core.ColorDarkGreen,
		Player:     core.ColorGreen,
		Enemy:      core.ColorBrown,
		Bullet:     core.ColorBrightYellow,
		Text:       core.ColorPaleGreen,
		Accent:     core.ColorGold,
	},
}

// PaletteFor returns the palette of a theme, falling back to Classic.
func PaletteFor(t Theme) ThemeProfile {
	if p, ok := palettes[t]; ok {
		return p
	}
	return palettes[ThemeClassic]
}
