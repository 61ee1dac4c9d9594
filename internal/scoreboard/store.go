package scoreboard

import (
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

// History is implemented by backends that keep every finished session.
type History interface {
	AppendHistory(e Entry) error
	Stats() ([]Stats, error)
}

// Stats aggregates recorded sessions for one difficulty.
type Stats struct {
	Difficulty  string
	Sessions    int
	BestScore   int
	AvgScore    float64
	AvgAccuracy float64
	BestLevel   int
	TotalTime   int // Seconds
	LastPlayed  string
}

// Store is the best-effort facade over a Backend.
// Read failures yield defaults and write failures are logged and dropped,
// so persistence trouble never interrupts play. A nil backend keeps
// everything in memory. Safe for concurrent use.
type Store struct {
	mu        sync.Mutex
	backend   Backend
	logger    *log.Logger
	now       func() time.Time
	highScore int
	board     []Entry
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for swallowed persistence errors.
func WithLogger(l *log.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithClock overrides the clock used to stamp leaderboard entries.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// NewStore wraps a backend and loads the persisted records.
func NewStore(backend Backend, opts ...Option) *Store {
	s := &Store{
		backend: backend,
		logger:  log.New(io.Discard),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.LoadHighScore()
	s.LoadLeaderboard()
	return s
}

// LoadHighScore reads the persisted high score. Missing or corrupt data reads as 0.
// The cached value never decreases.
func (s *Store) LoadHighScore() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.backend != nil {
		v, err := s.backend.ReadHighScore()
		if err != nil {
			s.logger.Debug("high score unavailable, using default", "err", err)
		}
		s.highScore = max(s.highScore, v)
	}
	return s.highScore
}

// SaveHighScore persists v if it beats the current high score.
func (s *Store) SaveHighScore(v int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.raiseHighScore(v)
}

// raiseHighScore stores v when it beats the cached high score. Callers hold mu.
func (s *Store) raiseHighScore(v int) {
	if v <= s.highScore {
		return
	}
	s.highScore = v
	if s.backend == nil {
		return
	}
	if err := s.backend.WriteHighScore(v); err != nil {
		s.logger.Warn("cannot save high score", "score", v, "err", err)
	}
}

// LoadLeaderboard reads the persisted leaderboard, re-sorted and capped.
// Missing or corrupt data reads as an empty board.
func (s *Store) LoadLeaderboard() []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.backend != nil {
		entries, err := s.backend.ReadLeaderboard()
		if err != nil {
			s.logger.Debug("leaderboard unavailable, using default", "err", err)
			entries = nil
		}
		s.board = Normalize(entries)
	}
	return cloneEntries(s.board)
}

// SaveLeaderboard replaces the leaderboard.
func (s *Store) SaveLeaderboard(entries []Entry) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.board = Normalize(cloneEntries(entries))
	s.writeLeaderboard()
}

// RecordSession inserts a finished session into the leaderboard and raises the
// high score if beaten. Returns the updated leaderboard.
func (s *Store) RecordSession(r Result) []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()

	e := NewEntry(r, s.now())
	if e.Score > 0 {
		s.board = Insert(s.board, e)
		s.writeLeaderboard()
	}

	if h, ok := s.backend.(History); ok {
		if err := h.AppendHistory(e); err != nil {
			s.logger.Warn("cannot record session history", "err", err)
		}
	}

	s.raiseHighScore(r.Score)

	s.logger.Info("session recorded",
		"score", r.Score, "level", r.Level, "difficulty", r.Difficulty,
		"accuracy", e.Accuracy, "time", e.Time)

	return cloneEntries(s.board)
}

// HighScore returns the cached high score.
func (s *Store) HighScore() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.highScore
}

// Leaderboard returns a copy of the cached leaderboard.
func (s *Store) Leaderboard() []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneEntries(s.board)
}

// Stats returns per-difficulty session statistics.
// ok is false when the backend keeps no history.
func (s *Store) Stats() (stats []Stats, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	h, ok := s.backend.(History)
	if !ok {
		return nil, false
	}
	stats, err := h.Stats()
	if err != nil {
		s.logger.Warn("cannot read session stats", "err", err)
	}
	return stats, true
}

// Close releases the backend.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.backend == nil {
		return nil
	}
	return s.backend.Close()
}

func (s *Store) writeLeaderboard() {
	if s.backend == nil {
		return
	}
	if err := s.backend.WriteLeaderboard(s.board); err != nil {
		s.logger.Warn("cannot save leaderboard", "err", err)
	}
}
