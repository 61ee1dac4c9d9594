package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-invaders/internal/scoreboard"
)

func TestLeaderboardTableRows(t *testing.T) {
	lt := newLeaderboardTable(100, 30)
	lt.SetEntries([]scoreboard.Entry{
		{Score: 420, Time: 95, Accuracy: 80, Level: 3, Difficulty: "HARD", Date: "2024-06-01 12:30"},
		{Score: 120, Time: 30, Accuracy: 50, Level: 1, Difficulty: "EASY", Date: "2024-06-01 12:00"},
	})

	view := lt.View(lipgloss.DefaultRenderer(), 420)
	for _, want := range []string{"LEADERBOARD", "High score: 420", "#1", "420", "01:35", "80.0%", "HARD", "2024-06-01 12:30"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestLeaderboardTableNarrow(t *testing.T) {
	lt := newLeaderboardTable(60, 30)
	if lt.cols != 6 {
		t.Fatalf("cols = %d, expected the date column dropped", lt.cols)
	}
	lt.SetEntries([]scoreboard.Entry{{Score: 10, Difficulty: "EASY", Date: "2024-06-01 12:00"}})

	if view := lt.View(lipgloss.DefaultRenderer(), 10); strings.Contains(view, "2024-06-01") {
		t.Error("narrow table should not show dates")
	}

	lt.Resize(100, 30)
	if lt.cols != 7 {
		t.Errorf("cols = %d after widening, expected 7", lt.cols)
	}
}

func TestLeaderboardTableEmpty(t *testing.T) {
	lt := newLeaderboardTable(100, 30)
	if view := lt.View(lipgloss.DefaultRenderer(), 0); !strings.Contains(view, "No scores yet") {
		t.Errorf("empty view = %q", view)
	}
}

func TestCenterText(t *testing.T) {
	tests := []struct {
		text     string
		width    int
		expected string
	}{
		{"abc", 9, "   abc"},
		{"abc", 3, "abc"},
		{"abcdef", 4, "abcdef"},
	}
	for _, tc := range tests {
		if got := centerText(tc.text, tc.width); got != tc.expected {
			t.Errorf("centerText(%q, %d) = %q, expected %q", tc.text, tc.width, got, tc.expected)
		}
	}
}
