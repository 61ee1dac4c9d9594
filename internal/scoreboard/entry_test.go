package scoreboard

import (
	"math"
	"testing"
	"time"
)

func TestResultAccuracy(t *testing.T) {
	tests := []struct {
		name        string
		fired, hits int
		expected    float64
	}{
		{"no shots", 0, 0, 0},
		{"half", 10, 5, 50},
		{"perfect", 4, 4, 100},
		{"one of three", 3, 1, 33.333333},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := Result{BulletsFired: tc.fired, Hits: tc.hits}
			if got := r.Accuracy(); math.Abs(got-tc.expected) > 1e-6 {
				t.Errorf("Accuracy() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestNewEntry(t *testing.T) {
	at := time.Date(2024, 3, 9, 17, 5, 42, 0, time.Local)
	r := Result{
		Score:        120,
		Elapsed:      30*time.Second + 900*time.Millisecond,
		BulletsFired: 8,
		Hits:         6,
		Level:        1,
		Difficulty:   "EASY",
	}

	e := NewEntry(r, at)
	expected := Entry{Score: 120, Time: 30, Accuracy: 75, Level: 1, Difficulty: "EASY", Date: "2024-03-09 17:05"}
	if e != expected {
		t.Errorf("NewEntry() = %+v, expected %+v", e, expected)
	}
}

func TestInsertSkipsZeroScore(t *testing.T) {
	board := []Entry{{Score: 40}}
	got := Insert(board, Entry{Score: 0})
	if len(got) != 1 || got[0].Score != 40 {
		t.Errorf("Insert(score 0) = %+v, expected board unchanged", got)
	}
}

func TestInsertSortsAndCaps(t *testing.T) {
	var board []Entry
	for s := 100; s <= 1000; s += 100 {
		board = Insert(board, Entry{Score: s})
	}
	if len(board) != MaxEntries {
		t.Fatalf("len(board) = %d, expected %d", len(board), MaxEntries)
	}

	// Below the lowest score on a full board: no change
	got := Insert(board, Entry{Score: 50})
	if len(got) != MaxEntries {
		t.Errorf("len = %d, expected %d", len(got), MaxEntries)
	}
	for i, e := range got {
		if e != board[i] {
			t.Errorf("entry %d = %+v, expected %+v", i, e, board[i])
		}
	}

	// A new best pushes out the lowest
	got = Insert(board, Entry{Score: 1500})
	if got[0].Score != 1500 {
		t.Errorf("top score = %d, expected 1500", got[0].Score)
	}
	if last := got[len(got)-1].Score; last != 200 {
		t.Errorf("lowest score = %d, expected 200", last)
	}

	for i := 1; i < len(got); i++ {
		if got[i-1].Score < got[i].Score {
			t.Errorf("board not sorted at %d: %d < %d", i, got[i-1].Score, got[i].Score)
		}
	}
}

func TestInsertDoesNotAliasInput(t *testing.T) {
	board := make([]Entry, 2, 4)
	board[0] = Entry{Score: 30}
	board[1] = Entry{Score: 20}

	_ = Insert(board, Entry{Score: 90})
	if board[0].Score != 30 || board[1].Score != 20 {
		t.Errorf("Insert() modified its input: %+v", board)
	}
}

func TestInsertTiesKeepOrder(t *testing.T) {
	board := []Entry{{Score: 50, Date: "first"}}
	got := Insert(board, Entry{Score: 50, Date: "second"})
	if got[0].Date != "first" || got[1].Date != "second" {
		t.Errorf("tied entries reordered: %+v", got)
	}
}
