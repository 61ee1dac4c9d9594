package scoreboard

import (
	"bytes"
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func sampleBoard() []Entry {
	return []Entry{
		{Score: 450, Time: 95, Accuracy: 62.5, Level: 3, Difficulty: "HARD", Date: "2024-05-01 21:14"},
		{Score: 120, Time: 30, Accuracy: 100.0 / 3, Level: 1, Difficulty: "EASY", Date: "2024-05-02 08:00"},
	}
}

func TestBackendsRegistered(t *testing.T) {
	names := Backends()
	if !slices.Equal(names, []string{"json", "sqlite"}) {
		t.Errorf("Backends() = %v, expected [json sqlite]", names)
	}
	if !Exists("json") || Exists("redis") {
		t.Error("Exists() reports the wrong set of backends")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("registering json twice should panic")
		}
	}()
	Register("json", nil)
}

func TestOpenBackendUnknown(t *testing.T) {
	if _, err := OpenBackend("redis", t.TempDir()); err == nil {
		t.Error("OpenBackend(redis) should fail")
	}
}

func TestOpenBackendCreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	b, err := OpenBackend("json", dir)
	if err != nil {
		t.Fatalf("OpenBackend() failed: %v", err)
	}
	defer b.Close()

	if _, err := os.Stat(dir); err != nil {
		t.Errorf("data directory not created: %v", err)
	}
}

func TestBackendRoundTrip(t *testing.T) {
	for _, name := range Backends() {
		t.Run(name, func(t *testing.T) {
			b, err := OpenBackend(name, t.TempDir())
			if err != nil {
				t.Fatalf("OpenBackend() failed: %v", err)
			}
			defer b.Close()

			if err := b.WriteHighScore(450); err != nil {
				t.Fatalf("WriteHighScore() failed: %v", err)
			}
			if err := b.WriteHighScore(500); err != nil {
				t.Fatalf("WriteHighScore() failed: %v", err)
			}
			hs, err := b.ReadHighScore()
			if err != nil || hs != 500 {
				t.Errorf("ReadHighScore() = %d, %v, expected 500", hs, err)
			}

			board := sampleBoard()
			if err := b.WriteLeaderboard(board); err != nil {
				t.Fatalf("WriteLeaderboard() failed: %v", err)
			}
			got, err := b.ReadLeaderboard()
			if err != nil {
				t.Fatalf("ReadLeaderboard() failed: %v", err)
			}
			if !slices.Equal(got, board) {
				t.Errorf("ReadLeaderboard() = %+v, expected %+v", got, board)
			}

			// Replacing shrinks the board
			if err := b.WriteLeaderboard(board[:1]); err != nil {
				t.Fatalf("WriteLeaderboard() failed: %v", err)
			}
			got, _ = b.ReadLeaderboard()
			if len(got) != 1 {
				t.Errorf("len(leaderboard) = %d after replace, expected 1", len(got))
			}
		})
	}
}

func TestSQLiteEmptyDatabase(t *testing.T) {
	b, err := OpenBackend("sqlite", t.TempDir())
	if err != nil {
		t.Fatalf("OpenBackend() failed: %v", err)
	}
	defer b.Close()

	hs, err := b.ReadHighScore()
	if err != nil || hs != 0 {
		t.Errorf("ReadHighScore() = %d, %v, expected 0, nil", hs, err)
	}
	board, err := b.ReadLeaderboard()
	if err != nil || len(board) != 0 {
		t.Errorf("ReadLeaderboard() = %v, %v, expected empty", board, err)
	}
}

func TestSQLiteHistoryStats(t *testing.T) {
	b, err := OpenBackend("sqlite", t.TempDir())
	if err != nil {
		t.Fatalf("OpenBackend() failed: %v", err)
	}
	defer b.Close()

	h, ok := b.(History)
	if !ok {
		t.Fatal("sqlite backend should keep history")
	}
	for _, e := range []Entry{
		{Score: 100, Time: 20, Accuracy: 50, Level: 1, Difficulty: "EASY", Date: "2024-01-01 10:00"},
		{Score: 300, Time: 40, Accuracy: 70, Level: 2, Difficulty: "EASY", Date: "2024-01-02 10:00"},
		{Score: 0, Time: 5, Accuracy: 0, Level: 1, Difficulty: "HARD", Date: "2024-01-03 10:00"},
	} {
		if err := h.AppendHistory(e); err != nil {
			t.Fatalf("AppendHistory() failed: %v", err)
		}
	}

	stats, err := h.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("len(stats) = %d, expected 2", len(stats))
	}

	easy := stats[0]
	if easy.Difficulty != "EASY" || easy.Sessions != 2 || easy.BestScore != 300 {
		t.Errorf("EASY stats = %+v", easy)
	}
	if easy.AvgScore != 200 || easy.TotalTime != 60 || easy.BestLevel != 2 {
		t.Errorf("EASY aggregates = %+v", easy)
	}
	if easy.LastPlayed != "2024-01-02 10:00" {
		t.Errorf("LastPlayed = %q, expected 2024-01-02 10:00", easy.LastPlayed)
	}
}

func TestJSONFileFormat(t *testing.T) {
	dir := t.TempDir()
	b := NewJSONBackend(dir)

	if err := b.WriteHighScore(42); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(filepath.Join(dir, HighScoreFile))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(data, []byte(`"high_score": 42`)) {
		t.Errorf("high score file = %s", data)
	}

	if err := b.WriteLeaderboard(nil); err != nil {
		t.Fatal(err)
	}
	data, _ = os.ReadFile(filepath.Join(dir, LeaderboardFile))
	if string(bytes.TrimSpace(data)) != "[]" {
		t.Errorf("empty leaderboard file = %q, expected []", data)
	}

	// No temp files left behind
	matches, _ := filepath.Glob(filepath.Join(dir, "*.tmp"))
	if len(matches) != 0 {
		t.Errorf("temp files left behind: %v", matches)
	}
}

func TestJSONCorruptFiles(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, HighScoreFile), []byte("{not json"), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, LeaderboardFile), []byte(`{"score": 1}`), 0o600); err != nil {
		t.Fatal(err)
	}

	b := NewJSONBackend(dir)
	if _, err := b.ReadHighScore(); err == nil {
		t.Error("ReadHighScore() should fail on corrupt file")
	}
	if _, err := b.ReadLeaderboard(); err == nil {
		t.Error("ReadLeaderboard() should fail when the file is not a list")
	}
}
