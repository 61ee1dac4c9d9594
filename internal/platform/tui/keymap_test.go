package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/game"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyMapAction(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected core.Action
	}{
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp},
		{"k", runeKey('k'), core.ActionUp},
		{"arrow down", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown},
		{"arrow left", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{"l", runeKey('l'), core.ActionRight},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionCancel},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionFire},
		{"p", runeKey('p'), core.ActionPause},
		{"r", runeKey('r'), core.ActionRestart},
		{"q", runeKey('q'), core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"unbound", runeKey('z'), core.ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := keys.Action(tc.msg); got != tc.expected {
				t.Errorf("Action(%q) = %v, expected %v", tc.msg.String(), got, tc.expected)
			}
		})
	}
}

func TestForStateHasHelp(t *testing.T) {
	keys := DefaultKeyMap()
	states := []game.State{
		game.StateMenu, game.StateSettings, game.StateLeaderboard,
		game.StatePlaying, game.StatePaused, game.StateGameOver,
	}
	for _, s := range states {
		h := keys.ForState(s)
		if len(h.ShortHelp()) == 0 || len(h.FullHelp()) == 0 {
			t.Errorf("ForState(%v) has no bindings", s)
		}
	}
}

func TestHoldTicksFor(t *testing.T) {
	tests := []struct {
		rate, expected int
	}{
		{0, 4},
		{30, 4},
		{60, 7},
		{120, 15},
	}
	for _, tc := range tests {
		if got := holdTicksFor(tc.rate); got != tc.expected {
			t.Errorf("holdTicksFor(%d) = %d, expected %d", tc.rate, got, tc.expected)
		}
	}
}

func TestHeldInputExpires(t *testing.T) {
	h := newHeldInput(30) // hold for 4 ticks
	h.press(core.ActionLeft)

	for i := range 4 {
		if got := h.tick(); got != core.HeldLeft {
			t.Fatalf("tick %d = %v, expected HeldLeft", i, got)
		}
	}
	if got := h.tick(); got != 0 {
		t.Errorf("tick after expiry = %v, expected nothing held", got)
	}
}

func TestHeldInputRepeatRefreshes(t *testing.T) {
	h := newHeldInput(30)
	h.press(core.ActionRight)
	h.tick()
	h.tick()
	h.tick()
	h.press(core.ActionRight)

	for i := range 4 {
		if got := h.tick(); got != core.HeldRight {
			t.Fatalf("tick %d after repeat = %v, expected HeldRight", i, got)
		}
	}
}

func TestHeldInputOppositeReleases(t *testing.T) {
	h := newHeldInput(60)
	h.press(core.ActionLeft)
	h.press(core.ActionRight)

	if got := h.tick(); got != core.HeldRight {
		t.Errorf("tick = %v, expected only HeldRight", got)
	}

	h.release()
	if got := h.tick(); got != 0 {
		t.Errorf("tick after release = %v, expected nothing held", got)
	}
}

func TestHeldInputIgnoresOtherActions(t *testing.T) {
	h := newHeldInput(60)
	h.press(core.ActionFire)
	h.press(core.ActionUp)
	if got := h.tick(); got != 0 {
		t.Errorf("tick = %v, expected nothing held", got)
	}
}
