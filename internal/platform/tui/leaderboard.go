package tui

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-invaders/internal/scoreboard"
)

// leaderboardTable wraps a bubbles table showing the saved leaderboard.
type leaderboardTable struct {
	table   table.Model
	entries []scoreboard.Entry
	cols    int // Visible columns
	width   int
	height  int
}

func newLeaderboardTable(width, height int) leaderboardTable {
	lt := leaderboardTable{width: width, height: height}
	lt.table = lt.createTable()
	return lt
}

// createTable creates a new table sized for the current window.
func (lt *leaderboardTable) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 5},
		{Title: "Score", Width: 8},
		{Title: "Time", Width: 6},
		{Title: "Acc", Width: 7},
		{Title: "Lvl", Width: 4},
		{Title: "Diff", Width: 7},
		{Title: "Date", Width: 16},
	}

	// Drop the date column when the terminal is too narrow
	if lt.width < 70 {
		columns = columns[:len(columns)-1]
	}
	lt.cols = len(columns)

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(lt.height-8, 3)), // Leave room for title, help and margins
	)

	// Table styles
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// SetEntries replaces the rows when the board changed.
func (lt *leaderboardTable) SetEntries(entries []scoreboard.Entry) {
	if slices.Equal(entries, lt.entries) {
		return
	}
	lt.entries = slices.Clone(entries)
	lt.updateRows()
}

// Resize rebuilds the table for a new window size.
func (lt *leaderboardTable) Resize(width, height int) {
	lt.width, lt.height = width, height
	lt.table = lt.createTable()
	lt.updateRows()
}

func (lt *leaderboardTable) updateRows() {
	rows := make([]table.Row, len(lt.entries))
	for i, e := range lt.entries {
		row := table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%d", e.Score),
			formatClock(time.Duration(e.Time) * time.Second),
			fmt.Sprintf("%.1f%%", e.Accuracy),
			fmt.Sprintf("%d", e.Level),
			e.Difficulty,
			e.Date,
		}
		rows[i] = row[:lt.cols]
	}
	lt.table.SetRows(rows)

	// Reset cursor to top
	lt.table.GotoTop()
}

// Update scrolls the table.
func (lt *leaderboardTable) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	lt.table, cmd = lt.table.Update(msg)
	return cmd
}

// View renders the titled table.
func (lt *leaderboardTable) View(r *lipgloss.Renderer, highScore int) string {
	var b strings.Builder

	titleStyle := r.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	b.WriteString(centerText(titleStyle.Render("LEADERBOARD"), lt.width))
	b.WriteString("\n")
	b.WriteString(centerText(fmt.Sprintf("High score: %d", highScore), lt.width))
	b.WriteString("\n\n")

	tableStyle := r.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	var content string
	if len(lt.entries) == 0 {
		content = r.NewStyle().
			Foreground(lipgloss.Color("241")).
			Render("No scores yet. Finish a game to get on the board!")
	} else {
		content = lt.table.View()
	}

	b.WriteString(lipgloss.PlaceHorizontal(lt.width, lipgloss.Center, tableStyle.Render(content)))
	return b.String()
}

// centerText centers text within the given width.
func centerText(text string, width int) string {
	textLen := lipgloss.Width(text)
	if textLen >= width {
		return text
	}
	padding := (width - textLen) / 2
	return strings.Repeat(" ", padding) + text
}
