package game

import (
	"math/rand"

	"github.com/vovakirdan/tui-invaders/internal/config"
)

// Swarm is the grid of living aliens, moved and flipped as a unit.
type Swarm struct {
	Aliens    []Alien
	BaseSpeed float64 // Grows by the configured increment on every level clear
	Direction float64 // +1 moving right, -1 moving left

	cfg config.AlienConfig
}

// NewSwarm creates an empty swarm moving right at the configured base speed.
func NewSwarm(cfg config.AlienConfig) *Swarm {
	return &Swarm{
		BaseSpeed: cfg.BaseSpeed,
		Direction: 1,
		cfg:       cfg,
	}
}

// Populate replaces the aliens with a full rows x cols grid.
// Speed and direction are left untouched.
func (s *Swarm) Populate(p config.DifficultyProfile, rng *rand.Rand) {
	s.Aliens = make([]Alien, 0, p.AlienCount())
	for row := range p.AlienRows {
		for col := range p.AlienCols {
			s.Aliens = append(s.Aliens, Alien{
				X:    s.cfg.OriginX + float64(col)*s.cfg.SpacingX,
				Y:    s.cfg.OriginY + float64(row)*s.cfg.SpacingY,
				Kind: alienKinds[rng.Intn(len(alienKinds))],
			})
		}
	}
}

// Advance moves every alien sideways by BaseSpeed*mult in the current direction.
// If any alien ends up touching either edge of a field of the given width, the
// direction flips once and the whole swarm steps down. Reports whether it flipped.
func (s *Swarm) Advance(mult, width float64) bool {
	dx := s.BaseSpeed * mult * s.Direction
	right := width - s.cfg.Width

	crossed := false
	for i := range s.Aliens {
		s.Aliens[i].X += dx
		if x := s.Aliens[i].X; x <= 0 || x >= right {
			crossed = true
		}
	}

	if !crossed {
		return false
	}
	s.Direction = -s.Direction
	for i := range s.Aliens {
		s.Aliens[i].Y += s.cfg.DescendStep
	}
	return true
}

// Reached reports whether any alien is at or below line.
func (s *Swarm) Reached(line float64) bool {
	for _, a := range s.Aliens {
		if a.Y >= line {
			return true
		}
	}
	return false
}

// Empty reports whether every alien has been destroyed.
func (s *Swarm) Empty() bool {
	return len(s.Aliens) == 0
}
