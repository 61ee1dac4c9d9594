package scoreboard

import (
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// DatabaseFile is the file name used by the sqlite backend.
const DatabaseFile = "scores.db"

// sqliteBackend stores records in a single SQLite database.
// Besides the high score and leaderboard it keeps a history of every
// recorded session, which feeds Stats.
type sqliteBackend struct {
	db *sql.DB
}

func init() {
	Register("sqlite", func(dir string) (Backend, error) {
		return OpenSQLite(filepath.Join(dir, DatabaseFile))
	})
}

// OpenSQLite opens or creates the database at path and runs migrations.
func OpenSQLite(path string) (Backend, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("scoreboard: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("scoreboard: cannot connect to database: %w", err)
	}

	b := &sqliteBackend{db: db}
	if err := b.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("scoreboard: migration failed: %w", err)
	}
	return b, nil
}

func (b *sqliteBackend) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS high_score (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			value INTEGER NOT NULL
		);

		CREATE TABLE IF NOT EXISTS leaderboard (
			position INTEGER PRIMARY KEY,
			score INTEGER NOT NULL,
			time_secs INTEGER NOT NULL,
			accuracy REAL NOT NULL,
			level INTEGER NOT NULL,
			difficulty TEXT NOT NULL,
			date TEXT NOT NULL
		);

		CREATE TABLE IF NOT EXISTS sessions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			score INTEGER NOT NULL,
			time_secs INTEGER NOT NULL,
			accuracy REAL NOT NULL,
			level INTEGER NOT NULL,
			difficulty TEXT NOT NULL,
			date TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_sessions_difficulty ON sessions(difficulty);
	`

	_, err := b.db.Exec(schema)
	return err
}

func (b *sqliteBackend) ReadHighScore() (int, error) {
	var value int
	err := b.db.QueryRow("SELECT value FROM high_score WHERE id = 1").Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("scoreboard: cannot query high score: %w", err)
	}
	return value, nil
}

func (b *sqliteBackend) WriteHighScore(value int) error {
	_, err := b.db.Exec(
		`INSERT INTO high_score (id, value) VALUES (1, ?)
		 ON CONFLICT(id) DO UPDATE SET value = excluded.value`,
		value,
	)
	if err != nil {
		return fmt.Errorf("scoreboard: cannot save high score: %w", err)
	}
	return nil
}

func (b *sqliteBackend) ReadLeaderboard() ([]Entry, error) {
	rows, err := b.db.Query(
		`SELECT score, time_secs, accuracy, level, difficulty, date
		 FROM leaderboard
		 ORDER BY position`,
	)
	if err != nil {
		return nil, fmt.Errorf("scoreboard: cannot query leaderboard: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.Score, &e.Time, &e.Accuracy, &e.Level, &e.Difficulty, &e.Date); err != nil {
			return nil, fmt.Errorf("scoreboard: cannot scan row: %w", err)
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("scoreboard: row iteration error: %w", err)
	}
	return entries, nil
}

// WriteLeaderboard replaces the whole table in one transaction.
func (b *sqliteBackend) WriteLeaderboard(entries []Entry) error {
	tx, err := b.db.Begin()
	if err != nil {
		return fmt.Errorf("scoreboard: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // No-op after commit

	if _, err := tx.Exec("DELETE FROM leaderboard"); err != nil {
		return fmt.Errorf("scoreboard: cannot clear leaderboard: %w", err)
	}

	for i, e := range entries {
		_, err := tx.Exec(
			`INSERT INTO leaderboard (position, score, time_secs, accuracy, level, difficulty, date)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			i, e.Score, e.Time, e.Accuracy, e.Level, e.Difficulty, e.Date,
		)
		if err != nil {
			return fmt.Errorf("scoreboard: cannot save leaderboard entry: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("scoreboard: cannot commit leaderboard: %w", err)
	}
	return nil
}

// AppendHistory records a finished session, including ones that never
// reached the leaderboard.
func (b *sqliteBackend) AppendHistory(e Entry) error {
	_, err := b.db.Exec(
		`INSERT INTO sessions (score, time_secs, accuracy, level, difficulty, date)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		e.Score, e.Time, e.Accuracy, e.Level, e.Difficulty, e.Date,
	)
	if err != nil {
		return fmt.Errorf("scoreboard: cannot save session: %w", err)
	}
	return nil
}

// Stats aggregates the session history per difficulty.
func (b *sqliteBackend) Stats() ([]Stats, error) {
	rows, err := b.db.Query(
		`SELECT difficulty, COUNT(*), MAX(score), AVG(score), AVG(accuracy), MAX(level), SUM(time_secs), MAX(date)
		 FROM sessions
		 GROUP BY difficulty
		 ORDER BY difficulty`,
	)
	if err != nil {
		return nil, fmt.Errorf("scoreboard: cannot query stats: %w", err)
	}
	defer rows.Close()

	var stats []Stats
	for rows.Next() {
		var s Stats
		if err := rows.Scan(&s.Difficulty, &s.Sessions, &s.BestScore, &s.AvgScore,
			&s.AvgAccuracy, &s.BestLevel, &s.TotalTime, &s.LastPlayed); err != nil {
			return nil, fmt.Errorf("scoreboard: cannot scan stats row: %w", err)
		}
		stats = append(stats, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("scoreboard: row iteration error: %w", err)
	}
	return stats, nil
}

func (b *sqliteBackend) Close() error {
	if b.db != nil {
		return b.db.Close()
	}
	return nil
}
