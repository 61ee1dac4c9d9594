package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// ansi256 maps core.Color to ANSI 256-color codes.
var ansi256 = map[core.Color]lipgloss.Color{
	core.ColorBlack:        lipgloss.Color("0"),
	core.ColorRed:          lipgloss.Color("1"),
	core.ColorGreen:        lipgloss.Color("2"),
	core.ColorYellow:       lipgloss.Color("3"),
	core.ColorBlue:         lipgloss.Color("4"),
	core.ColorMagenta:      lipgloss.Color("5"),
	core.ColorCyan:         lipgloss.Color("6"),
	core.ColorWhite:        lipgloss.Color("7"),
	core.ColorBrightRed:    lipgloss.Color("9"),
	core.ColorBrightGreen:  lipgloss.Color("10"),
	core.ColorBrightYellow: lipgloss.Color("11"),
	core.ColorBrightCyan:   lipgloss.Color("14"),
	core.ColorBrightWhite:  lipgloss.Color("15"),
	core.ColorOrange:       lipgloss.Color("208"),
	core.ColorOrangeRed:    lipgloss.Color("202"),
	core.ColorGold:         lipgloss.Color("220"),
	core.ColorPink:         lipgloss.Color("218"),
	core.ColorHotPink:      lipgloss.Color("205"),
	core.ColorBrown:        lipgloss.Color("130"),
	core.ColorNavy:         lipgloss.Color("17"),
	core.ColorPurple:       lipgloss.Color("54"),
	core.ColorDarkGreen:    lipgloss.Color("22"),
	core.ColorSkyBlue:      lipgloss.Color("117"),
	core.ColorSteelBlue:    lipgloss.Color("67"),
	core.ColorAquamarine:   lipgloss.Color("122"),
	core.ColorPaleGreen:    lipgloss.Color("120"),
	core.ColorGray:         lipgloss.Color("245"),
}

// Styles builds and caches lipgloss styles for one output.
// Each SSH session gets its own renderer so colour detection follows the
// client's terminal rather than the server's.
type Styles struct {
	renderer *lipgloss.Renderer
	cache    map[[2]core.Color]lipgloss.Style
}

// NewStyles creates a style set bound to the given renderer.
// A nil renderer uses lipgloss' default.
func NewStyles(r *lipgloss.Renderer) *Styles {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return &Styles{
		renderer: r,
		cache:    make(map[[2]core.Color]lipgloss.Style),
	}
}

// Renderer returns the underlying lipgloss renderer.
func (s *Styles) Renderer() *lipgloss.Renderer {
	return s.renderer
}

// Cell returns the style for a foreground on a background.
// core.ColorDefault leaves that side untouched.
func (s *Styles) Cell(fg, bg core.Color) lipgloss.Style {
	k := [2]core.Color{fg, bg}
	if st, ok := s.cache[k]; ok {
		return st
	}
	st := s.renderer.NewStyle()
	if c, ok := ansi256[fg]; ok {
		st = st.Foreground(c)
	}
	if c, ok := ansi256[bg]; ok {
		st = st.Background(c)
	}
	s.cache[k] = st
	return st
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
// Every cell is painted on bg.
func RenderScreen(s *core.Screen, styles *Styles, bg core.Color) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			run.Reset()
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(styles.Cell(startColor, bg).Render(run.String()))
		}
	}
	return sb.String()
}
