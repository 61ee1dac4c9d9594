package game

import (
	"math/rand"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// TickReport summarises one simulation update.
type TickReport struct {
	Landed  bool // An alien reached the danger line
	Flipped bool // The swarm reversed direction and stepped down
	Spawned int  // Obstacles spawned this tick
}

// Simulation owns every moving entity of a session.
// Collections are only mutated by Update, Fire and the collision pass.
type Simulation struct {
	Player    Player
	Swarm     *Swarm
	Bullets   []Bullet
	Obstacles []Obstacle

	cfg        config.InvadersConfig
	profile    config.DifficultyProfile
	rng        *rand.Rand
	spawnTimer int
	tint       core.Color
}

// NewSimulation creates a simulation with a seeded RNG. Call Reset before use.
func NewSimulation(cfg config.InvadersConfig, seed int64) *Simulation {
	return &Simulation{
		cfg:     cfg,
		profile: config.ProfileFor(config.DifficultyMedium),
		rng:     rand.New(rand.NewSource(seed)),
		Swarm:   NewSwarm(cfg.Aliens),
	}
}

// Reset starts a fresh session: player centred, collections emptied,
// spawn timer zeroed and a new swarm at base speed moving right.
func (s *Simulation) Reset(profile config.DifficultyProfile) {
	s.profile = profile
	s.Player = Player{
		X:     s.cfg.World.Width/2 - s.cfg.Player.Width/2,
		Y:     s.cfg.World.Height - s.cfg.Player.BottomOffset,
		W:     s.cfg.Player.Width,
		H:     s.cfg.Player.Height,
		Speed: s.cfg.Player.Speed,
	}
	s.Bullets = s.Bullets[:0]
	s.Obstacles = s.Obstacles[:0]
	s.spawnTimer = 0

	s.Swarm = NewSwarm(s.cfg.Aliens)
	s.Swarm.Populate(profile, s.rng)
}

// SetTint sets the colour given to obstacles spawned from now on.
func (s *Simulation) SetTint(c core.Color) {
	s.tint = c
}

// Profile returns the difficulty profile of the current session.
func (s *Simulation) Profile() config.DifficultyProfile {
	return s.profile
}

// Fire spawns a bullet at the ship's muzzle.
func (s *Simulation) Fire() {
	s.Bullets = append(s.Bullets, Bullet{
		X: s.Player.X + s.cfg.Player.MuzzleOffset,
		Y: s.Player.Y,
	})
}

// Update advances the world one tick: player, bullets, swarm, obstacles.
func (s *Simulation) Update(held core.Held) TickReport {
	var report TickReport

	s.movePlayer(held)
	s.moveBullets()

	report.Flipped = s.Swarm.Advance(s.profile.AlienSpeedMultiplier, s.cfg.World.Width)
	report.Landed = s.Swarm.Reached(s.cfg.World.DangerLine())

	report.Spawned = s.updateObstacles()
	return report
}

// LevelUp repopulates the swarm for the current difficulty and speeds it up.
// Direction carries over from the cleared swarm.
func (s *Simulation) LevelUp() {
	s.Swarm.BaseSpeed += s.cfg.Aliens.SpeedIncrement
	s.Swarm.Populate(s.profile, s.rng)
}

func (s *Simulation) movePlayer(held core.Held) {
	dx := float64(held.Dir()) * s.Player.Speed
	s.Player.X = core.ClampF(s.Player.X+dx, 0, s.cfg.World.Width-s.Player.W)
}

func (s *Simulation) moveBullets() {
	kept := s.Bullets[:0]
	for _, b := range s.Bullets {
		b.Y -= s.cfg.Bullets.Speed
		if b.Y < 0 {
			continue
		}
		kept = append(kept, b)
	}
	s.Bullets = kept
}

func (s *Simulation) updateObstacles() int {
	spawned := 0
	s.spawnTimer++
	if s.spawnTimer >= s.profile.ObstacleSpawnRate {
		s.spawnTimer = 0
		s.Obstacles = append(s.Obstacles, s.newObstacle())
		spawned++
	}

	kept := s.Obstacles[:0]
	for _, o := range s.Obstacles {
		o.Y += o.Speed
		if o.Y > s.cfg.World.Height {
			continue
		}
		kept = append(kept, o)
	}
	s.Obstacles = kept
	return spawned
}

func (s *Simulation) newObstacle() Obstacle {
	oc := s.cfg.Obstacles
	width := int(s.cfg.World.Width)
	return Obstacle{
		X:     float64(randInt(s.rng, oc.MarginX, width-oc.MarginX)),
		Y:     oc.SpawnY,
		Speed: float64(randInt(s.rng, oc.MinSpeed, oc.MaxSpeed)) * s.profile.AlienSpeedMultiplier,
		Size:  float64(randInt(s.rng, oc.MinSize, oc.MaxSize)),
		Kind:  obstacleKinds[s.rng.Intn(len(obstacleKinds))],
		Tint:  s.tint,
	}
}

// randInt returns a uniform integer in [lo, hi].
func randInt(rng *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.Intn(hi-lo+1)
}
