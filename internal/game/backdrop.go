package game

import (
	"math/rand"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Shape of a backdrop decoration.
type Shape int

const (
	ShapeCircle Shape = iota
	ShapeStar
	ShapeTriangle
	ShapeRect
)

var shapes = []Shape{ShapeCircle, ShapeStar, ShapeTriangle, ShapeRect}

func (s Shape) String() string {
	switch s {
	case ShapeCircle:
		return "circle"
	case ShapeStar:
		return "star"
	case ShapeTriangle:
		return "triangle"
	case ShapeRect:
		return "rect"
	default:
		return "unknown"
	}
}

// Decoration is one purely cosmetic shape painted behind the playfield.
type Decoration struct {
	X, Y  float64
	Size  float64
	Shape Shape
	Color core.Color
}

// NewBackdrop scatters decorations over the world using the palette's
// foreground colours.
func NewBackdrop(cfg config.InvadersConfig, palette config.ThemeProfile, rng *rand.Rand) []Decoration {
	colors := []core.Color{palette.Player, palette.Enemy, palette.Bullet, palette.Text, palette.Accent}

	decor := make([]Decoration, cfg.Backdrop.Elements)
	for i := range decor {
		decor[i] = Decoration{
			X:     rng.Float64() * cfg.World.Width,
			Y:     rng.Float64() * cfg.World.Height,
			Size:  float64(randInt(rng, cfg.Backdrop.MinSize, cfg.Backdrop.MaxSize)),
			Shape: shapes[rng.Intn(len(shapes))],
			Color: colors[rng.Intn(len(colors))],
		}
	}
	return decor
}
