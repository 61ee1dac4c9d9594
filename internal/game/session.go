package game

import (
	"time"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/scoreboard"
)

// Session is the record of one play-through, from start to game over or restart.
type Session struct {
	Score        int
	BulletsFired int
	Hits         int
	Level        int
	StartedAt    time.Time
	EndedAt      time.Time // Zero while the session is live
	Difficulty   config.Difficulty
	Theme        config.Theme

	started   bool
	finalized bool
}

// newSession starts a session at level 1.
func newSession(d config.Difficulty, th config.Theme, now time.Time) Session {
	return Session{
		Level:      1,
		StartedAt:  now,
		Difficulty: d,
		Theme:      th,
		started:    true,
	}
}

// Accuracy returns the hit percentage of the session.
func (s Session) Accuracy() float64 {
	return float64(s.Hits) / float64(max(s.BulletsFired, 1)) * 100
}

// Elapsed returns the wall-clock duration of the session, frozen once it ends.
func (s Session) Elapsed(now time.Time) time.Duration {
	if !s.started {
		return 0
	}
	if !s.EndedAt.IsZero() {
		now = s.EndedAt
	}
	return now.Sub(s.StartedAt)
}

// Result converts the session into its persisted form.
func (s Session) Result(now time.Time) scoreboard.Result {
	return scoreboard.Result{
		Score:        s.Score,
		Elapsed:      s.Elapsed(now),
		BulletsFired: s.BulletsFired,
		Hits:         s.Hits,
		Level:        s.Level,
		Difficulty:   s.Difficulty.String(),
	}
}
