package game

import "github.com/vovakirdan/tui-invaders/internal/config"

// Outcome is the result of one collision pass.
type Outcome struct {
	AlienHits    int
	ObstacleHits int
	Points       int
	PlayerHit    bool // The ship overlapped an obstacle
}

// Hits returns the total number of targets destroyed.
func (o Outcome) Hits() int {
	return o.AlienHits + o.ObstacleHits
}

// Detector resolves overlaps between the simulation's entities.
type Detector struct {
	bulletW, bulletH float64
	alienW, alienH   float64

	// Scratch sets reused across ticks
	spentBullets map[int]struct{}
	hitTargets   map[int]struct{}
}

// NewDetector creates a detector for the configured entity sizes.
func NewDetector(cfg config.InvadersConfig) *Detector {
	return &Detector{
		bulletW:      cfg.Bullets.Width,
		bulletH:      cfg.Bullets.Height,
		alienW:       cfg.Aliens.Width,
		alienH:       cfg.Aliens.Height,
		spentBullets: make(map[int]struct{}),
		hitTargets:   make(map[int]struct{}),
	}
}

// Resolve runs bullet vs alien, then bullet vs obstacle, then player vs obstacle.
// Each bullet destroys at most one target and each target absorbs at most one
// bullet. Destroyed entities are removed after the scan.
func (d *Detector) Resolve(sim *Simulation, profile config.DifficultyProfile) Outcome {
	var out Outcome

	aliens := sim.Swarm.Aliens
	out.AlienHits = d.scan(sim.Bullets, len(aliens), func(b Bullet, i int) bool {
		return b.Rect(d.bulletW, d.bulletH).Intersects(aliens[i].Rect(d.alienW, d.alienH))
	})
	sim.Swarm.Aliens = compact(aliens, d.hitTargets)
	sim.Bullets = compact(sim.Bullets, d.spentBullets)

	obstacles := sim.Obstacles
	out.ObstacleHits = d.scan(sim.Bullets, len(obstacles), func(b Bullet, i int) bool {
		return b.Rect(d.bulletW, d.bulletH).Intersects(obstacles[i].Rect())
	})
	sim.Obstacles = compact(obstacles, d.hitTargets)
	sim.Bullets = compact(sim.Bullets, d.spentBullets)

	out.Points = out.AlienHits*profile.AlienPoints() + out.ObstacleHits*profile.ObstaclePoints()

	ship := sim.Player.Rect()
	for _, o := range sim.Obstacles {
		if ship.Intersects(o.Rect()) {
			out.PlayerHit = true
			break
		}
	}
	return out
}

// scan pairs bullets with the first overlapping live target and records both
// in the scratch sets. Returns the number of pairs.
func (d *Detector) scan(bullets []Bullet, targets int, overlaps func(Bullet, int) bool) int {
	clear(d.spentBullets)
	clear(d.hitTargets)

	hits := 0
	for bi, b := range bullets {
		for ti := range targets {
			if _, gone := d.hitTargets[ti]; gone {
				continue
			}
			if overlaps(b, ti) {
				d.spentBullets[bi] = struct{}{}
				d.hitTargets[ti] = struct{}{}
				hits++
				break
			}
		}
	}
	return hits
}

// compact drops the marked indices, preserving order.
func compact[T any](items []T, marked map[int]struct{}) []T {
	if len(marked) == 0 {
		return items
	}
	kept := items[:0]
	for i, it := range items {
		if _, drop := marked[i]; drop {
			continue
		}
		kept = append(kept, it)
	}
	return kept
}
