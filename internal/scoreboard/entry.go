// Package scoreboard persists the high score and the capped leaderboard.
// It is pure data access: the engine decides when a session ends, this package
// only records it.
package scoreboard

import (
	"sort"
	"time"
)

const (
	// MaxEntries caps the leaderboard length.
	MaxEntries = 10

	// DateLayout is the format of Entry.Date.
	DateLayout = "2006-01-02 15:04"
)

// Entry is one leaderboard row. Immutable once recorded.
type Entry struct {
	Score      int     `json:"score"`
	Time       int     `json:"time"`     // Seconds played
	Accuracy   float64 `json:"accuracy"` // Percentage, 0-100
	Level      int     `json:"level"`
	Difficulty string  `json:"difficulty"`
	Date       string  `json:"date"`
}

// Result is the final state of a finished session.
type Result struct {
	Score        int
	Elapsed      time.Duration
	BulletsFired int
	Hits         int
	Level        int
	Difficulty   string
}

// Accuracy returns the hit percentage; zero shots count as one to avoid dividing by zero.
func (r Result) Accuracy() float64 {
	return float64(r.Hits) / float64(max(r.BulletsFired, 1)) * 100
}

// NewEntry builds the leaderboard row for a result stamped at the given time.
func NewEntry(r Result, at time.Time) Entry {
	return Entry{
		Score:      r.Score,
		Time:       int(r.Elapsed / time.Second),
		Accuracy:   r.Accuracy(),
		Level:      r.Level,
		Difficulty: r.Difficulty,
		Date:       at.Format(DateLayout),
	}
}

// Insert returns a new leaderboard with e added.
// Entries without points are not recorded. The result is sorted by score
// descending (ties keep their earlier position) and capped at MaxEntries.
func Insert(board []Entry, e Entry) []Entry {
	next := make([]Entry, 0, len(board)+1)
	next = append(next, board...)
	if e.Score > 0 {
		next = append(next, e)
	}
	return Normalize(next)
}

// Normalize sorts entries by score descending and truncates to MaxEntries.
// The input slice is reordered in place.
func Normalize(entries []Entry) []Entry {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Score > entries[j].Score
	})
	if len(entries) > MaxEntries {
		entries = entries[:MaxEntries]
	}
	return entries
}

// cloneEntries copies a leaderboard so callers never share backing arrays.
func cloneEntries(entries []Entry) []Entry {
	out := make([]Entry, len(entries))
	copy(out, entries)
	return out
}
