package scoreboard

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// File names used by the json backend.
const (
	HighScoreFile   = "high_score.json"
	LeaderboardFile = "leaderboard.json"
)

type highScoreRecord struct {
	HighScore int `json:"high_score"`
}

// jsonBackend keeps each record in its own JSON file.
type jsonBackend struct {
	dir string
}

func init() {
	Register("json", func(dir string) (Backend, error) {
		return NewJSONBackend(dir), nil
	})
}

// NewJSONBackend returns a backend writing high_score.json and leaderboard.json in dir.
func NewJSONBackend(dir string) Backend {
	return &jsonBackend{dir: dir}
}

func (b *jsonBackend) ReadHighScore() (int, error) {
	var rec highScoreRecord
	if err := b.read(HighScoreFile, &rec); err != nil {
		return 0, err
	}
	return rec.HighScore, nil
}

func (b *jsonBackend) WriteHighScore(value int) error {
	return b.write(HighScoreFile, highScoreRecord{HighScore: value})
}

func (b *jsonBackend) ReadLeaderboard() ([]Entry, error) {
	var entries []Entry
	if err := b.read(LeaderboardFile, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (b *jsonBackend) WriteLeaderboard(entries []Entry) error {
	if entries == nil {
		entries = []Entry{}
	}
	return b.write(LeaderboardFile, entries)
}

func (b *jsonBackend) Close() error {
	return nil
}

func (b *jsonBackend) read(name string, v any) error {
	data, err := os.ReadFile(filepath.Join(b.dir, name))
	if err != nil {
		return fmt.Errorf("scoreboard: cannot read %s: %w", name, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("scoreboard: cannot decode %s: %w", name, err)
	}
	return nil
}

// write replaces the file atomically so a crash never leaves half a record.
func (b *jsonBackend) write(name string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("scoreboard: cannot encode %s: %w", name, err)
	}

	tmp, err := os.CreateTemp(b.dir, name+".*.tmp")
	if err != nil {
		return fmt.Errorf("scoreboard: cannot write %s: %w", name, err)
	}
	tmpName := tmp.Name()

	_, werr := tmp.Write(append(data, '\n'))
	cerr := tmp.Close()
	if err := errors.Join(werr, cerr); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("scoreboard: cannot write %s: %w", name, err)
	}

	if err := os.Rename(tmpName, filepath.Join(b.dir, name)); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("scoreboard: cannot replace %s: %w", name, err)
	}
	return nil
}
