// Package game implements the invaders engine: entity simulation, collision
// resolution, the session record and the state machine that ties them together.
// It is pure logic driven one tick at a time; rendering and input live in the
// platform layer.
package game

import "github.com/vovakirdan/tui-invaders/internal/core"

// AlienKind selects an alien's look. It has no gameplay effect.
type AlienKind int

const (
	AlienUFO AlienKind = iota
	AlienShip
	AlienFighter
)

var alienKinds = []AlienKind{AlienUFO, AlienShip, AlienFighter}

func (k AlienKind) String() string {
	switch k {
	case AlienUFO:
		return "ufo"
	case AlienShip:
		return "ship"
	case AlienFighter:
		return "fighter"
	default:
		return "unknown"
	}
}

// ObstacleKind selects an obstacle's look.
type ObstacleKind int

const (
	ObstacleAsteroid ObstacleKind = iota
	ObstacleEnemy
)

var obstacleKinds = []ObstacleKind{ObstacleAsteroid, ObstacleEnemy}

func (k ObstacleKind) String() string {
	switch k {
	case ObstacleAsteroid:
		return "asteroid"
	case ObstacleEnemy:
		return "enemy"
	default:
		return "unknown"
	}
}

// Player is the ship at the bottom of the field.
type Player struct {
	X, Y  float64 // Top-left corner
	W, H  float64
	Speed float64 // Units per tick while a direction is held
}

// Rect returns the player's hitbox.
func (p Player) Rect() core.Rect {
	return core.NewRect(p.X, p.Y, p.W, p.H)
}

// Alien is one member of the swarm. Position is the top-left corner.
type Alien struct {
	X, Y float64
	Kind AlienKind
}

// Rect returns the alien's hitbox for the given alien size.
func (a Alien) Rect(w, h float64) core.Rect {
	return core.NewRect(a.X, a.Y, w, h)
}

// Bullet is a player shot travelling upward. Position is the top-left corner.
type Bullet struct {
	X, Y float64
}

// Rect returns the bullet's hitbox for the given bullet size.
func (b Bullet) Rect(w, h float64) core.Rect {
	return core.NewRect(b.X, b.Y, w, h)
}

// Obstacle falls from the top of the field. Position is its centre.
type Obstacle struct {
	X, Y  float64
	Speed float64 // Units per tick, downward
	Size  float64 // Half-extent of the hitbox
	Kind  ObstacleKind
	Tint  core.Color // Enemy colour of the theme active at spawn time
}

// Rect returns the obstacle's hitbox, a square of side 2*Size around the centre.
func (o Obstacle) Rect() core.Rect {
	return core.CenteredRect(o.X, o.Y, o.Size)
}
