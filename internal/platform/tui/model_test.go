package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/game"
)

func newTestModel(t *testing.T, opts Options) Model {
	t.Helper()
	cfg := core.RuntimeConfig{ScreenW: 100, ScreenH: 30, TickRate: 60, Seed: 3}
	return NewModel(newDrawMachine(t), cfg, opts)
}

// send feeds messages through Update and returns the final model and command.
func send(t *testing.T, m Model, msgs ...tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		m = next.(Model)
	}
	return m, cmd
}

func TestModelStartsGame(t *testing.T) {
	m := newTestModel(t, Options{})
	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyEnter}, TickMsg{})

	if m.snap.State != game.StatePlaying {
		t.Errorf("State = %v, expected PLAYING", m.snap.State)
	}
	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}
	if len(m.frame.Actions) != 0 {
		t.Errorf("frame not cleared after tick: %v", m.frame.Actions)
	}
}

func TestModelHeldMovement(t *testing.T) {
	m := newTestModel(t, Options{})
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter}, TickMsg{})
	startX := m.snap.Player.X

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyRight}, TickMsg{}, TickMsg{})
	if got := m.snap.Player.X; got != startX+12 {
		t.Errorf("Player.X = %v after two held ticks, expected %v", got, startX+12)
	}
}

func TestModelMovementNotHeldOnMenu(t *testing.T) {
	m := newTestModel(t, Options{})
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyRight})

	if got := m.held.tick(); got != 0 {
		t.Errorf("held = %v on the menu, expected nothing", got)
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t, Options{})
	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}, TickMsg{})

	if !m.quitting {
		t.Fatal("model should be quitting")
	}
	if cmd == nil {
		t.Fatal("expected a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("command is not tea.Quit")
	}
	if m.View() != "" {
		t.Error("View() should be empty once quitting")
	}
}

func TestModelResize(t *testing.T) {
	m := newTestModel(t, Options{})
	m, _ = send(t, m, tea.WindowSizeMsg{Width: 60, Height: 20})

	if m.screen.Width() != 60 || m.screen.Height() != 19 {
		t.Errorf("screen = %dx%d, expected 60x19", m.screen.Width(), m.screen.Height())
	}
}

func TestModelViewPerState(t *testing.T) {
	m := newTestModel(t, Options{})
	if !strings.Contains(m.View(), "Start Game") {
		t.Error("menu view missing")
	}

	// Menu -> Leaderboard
	m, _ = send(t, m,
		tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyEnter},
		TickMsg{},
	)
	if m.snap.State != game.StateLeaderboard {
		t.Fatalf("State = %v, expected LEADERBOARD", m.snap.State)
	}
	if view := m.View(); !strings.Contains(view, "LEADERBOARD") || !strings.Contains(view, "No scores yet") {
		t.Errorf("leaderboard view = %q", view)
	}
}

func TestModelHelpToggle(t *testing.T) {
	m := newTestModel(t, Options{})
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}})
	if !m.help.ShowAll {
		t.Error("? should expand the help")
	}
}

func TestModelScreenshot(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "screenshots")
	m := newTestModel(t, Options{ScreenshotDir: dir})
	send(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})

	files, err := filepath.Glob(filepath.Join(dir, "invaders_*.txt"))
	if err != nil || len(files) != 1 {
		t.Fatalf("screenshots = %v (err %v), expected one file", files, err)
	}
	data, err := os.ReadFile(files[0])
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "Start Game") {
		t.Error("screenshot does not contain the menu")
	}
}

func TestModelScreenshotDisabled(t *testing.T) {
	m := newTestModel(t, Options{})
	// Must not write anywhere or panic
	send(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
}
