package game

import (
	"slices"
	"time"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/scoreboard"
)

// Geometry carries the world dimensions a renderer needs to scale entities.
type Geometry struct {
	Width, Height    float64
	DangerLine       float64
	AlienW, AlienH   float64
	BulletW, BulletH float64
}

// Snapshot is the read-only view of one tick handed to the renderer.
// Every slice is a copy; modifying a snapshot never affects the game.
type Snapshot struct {
	State         State
	MenuIndex     int
	SettingsIndex int
	Leaderboard   []scoreboard.Entry

	Player    Player
	Aliens    []Alien
	Bullets   []Bullet
	Obstacles []Obstacle

	Score        int
	HighScore    int
	NewHighScore bool // The current session beat the previous best
	Level        int
	Elapsed      time.Duration
	BulletsFired int
	Hits         int
	Accuracy     float64

	Difficulty config.Difficulty
	Theme      config.Theme
	Palette    config.ThemeProfile
	Backdrop   []Decoration
	World      Geometry
}

// InPlay reports whether the snapshot shows the playfield.
func (s Snapshot) InPlay() bool {
	return s.State == StatePlaying || s.State == StatePaused || s.State == StateGameOver
}

// Snapshot captures the current state.
func (m *Machine) Snapshot() Snapshot {
	now := m.now()
	cfg := m.cfg

	snap := Snapshot{
		State:         m.state,
		MenuIndex:     m.menuIndex,
		SettingsIndex: m.settingsIndex,
		Leaderboard:   slices.Clone(m.board),

		Player:    m.sim.Player,
		Aliens:    slices.Clone(m.sim.Swarm.Aliens),
		Bullets:   slices.Clone(m.sim.Bullets),
		Obstacles: slices.Clone(m.sim.Obstacles),

		Score:        m.session.Score,
		HighScore:    max(m.store.HighScore(), m.session.Score),
		NewHighScore: m.session.Score > 0 && m.session.Score > m.bestAtStart,
		Level:        m.session.Level,
		Elapsed:      m.session.Elapsed(now),
		BulletsFired: m.session.BulletsFired,
		Hits:         m.session.Hits,
		Accuracy:     m.session.Accuracy(),

		Difficulty: m.difficulty,
		Theme:      m.theme,
		Palette:    config.PaletteFor(m.theme),
		Backdrop:   slices.Clone(m.backdrop),
		World: Geometry{
			Width:      cfg.World.Width,
			Height:     cfg.World.Height,
			DangerLine: cfg.World.DangerLine(),
			AlienW:     cfg.Aliens.Width,
			AlienH:     cfg.Aliens.Height,
			BulletW:    cfg.Bullets.Width,
			BulletH:    cfg.Bullets.Height,
		},
	}
	return snap
}
