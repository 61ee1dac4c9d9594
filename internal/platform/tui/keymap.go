package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/game"
)

// KeyMap defines the key bindings for the whole game.
type KeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	Confirm    key.Binding
	Cancel     key.Binding
	Fire       key.Binding
	Pause      key.Binding
	Restart    key.Binding
	Quit       key.Binding
	Screenshot key.Binding
	Help       key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "right"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "menu"),
		),
		Fire: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "fire"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
	}
}

// Action translates a key message to a game action.
// Returns core.ActionNone for keys with no game meaning.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Up):
		return core.ActionUp
	case key.Matches(msg, k.Down):
		return core.ActionDown
	case key.Matches(msg, k.Left):
		return core.ActionLeft
	case key.Matches(msg, k.Right):
		return core.ActionRight
	case key.Matches(msg, k.Confirm):
		return core.ActionConfirm
	case key.Matches(msg, k.Cancel):
		return core.ActionCancel
	case key.Matches(msg, k.Fire):
		return core.ActionFire
	case key.Matches(msg, k.Pause):
		return core.ActionPause
	case key.Matches(msg, k.Restart):
		return core.ActionRestart
	}
	return core.ActionNone
}

// stateKeys is the help.KeyMap shown for one screen.
type stateKeys struct {
	short []key.Binding
	full  [][]key.Binding
}

func (s stateKeys) ShortHelp() []key.Binding  { return s.short }
func (s stateKeys) FullHelp() [][]key.Binding { return s.full }

// ForState returns the bindings worth showing on the given screen.
func (k KeyMap) ForState(s game.State) help.KeyMap {
	switch s {
	case game.StateMenu:
		return stateKeys{
			short: []key.Binding{k.Up, k.Down, k.Confirm, k.Quit},
			full:  [][]key.Binding{{k.Up, k.Down, k.Confirm}, {k.Screenshot, k.Quit}},
		}
	case game.StateSettings:
		return stateKeys{
			short: []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Cancel},
			full:  [][]key.Binding{{k.Up, k.Down, k.Left, k.Right}, {k.Confirm, k.Cancel, k.Quit}},
		}
	case game.StateLeaderboard:
		return stateKeys{
			short: []key.Binding{k.Up, k.Down, k.Cancel, k.Quit},
			full:  [][]key.Binding{{k.Up, k.Down}, {k.Cancel, k.Screenshot, k.Quit}},
		}
	case game.StatePaused:
		return stateKeys{
			short: []key.Binding{k.Pause, k.Restart, k.Cancel, k.Quit},
			full:  [][]key.Binding{{k.Pause, k.Restart, k.Cancel}, {k.Screenshot, k.Quit}},
		}
	case game.StateGameOver:
		return stateKeys{
			short: []key.Binding{k.Restart, k.Cancel, k.Quit},
			full:  [][]key.Binding{{k.Restart, k.Cancel}, {k.Screenshot, k.Quit}},
		}
	default:
		return stateKeys{
			short: []key.Binding{k.Left, k.Right, k.Fire, k.Pause, k.Help},
			full: [][]key.Binding{
				{k.Left, k.Right, k.Fire},
				{k.Pause, k.Restart, k.Cancel},
				{k.Screenshot, k.Quit},
			},
		}
	}
}

// heldInput emulates key-held state. Terminals report presses and auto-repeats
// but never releases, so a direction counts as held for a few ticks after each
// press and each repeat refreshes it.
type heldInput struct {
	left, right int // Ticks remaining
	hold        int
}

// holdTicksFor returns how long a single press keeps a direction held.
func holdTicksFor(tickRate int) int {
	return max(4, tickRate/8)
}

func newHeldInput(tickRate int) heldInput {
	return heldInput{hold: holdTicksFor(tickRate)}
}

// press refreshes the held direction for a Left or Right action.
// Pressing one direction releases the other.
func (h *heldInput) press(a core.Action) {
	switch a {
	case core.ActionLeft:
		h.left, h.right = h.hold, 0
	case core.ActionRight:
		h.left, h.right = 0, h.hold
	}
}

// release drops both directions.
func (h *heldInput) release() {
	h.left, h.right = 0, 0
}

// tick returns the held signal for this tick and counts it down.
func (h *heldInput) tick() core.Held {
	var held core.Held
	if h.left > 0 {
		held |= core.HeldLeft
		h.left--
	}
	if h.right > 0 {
		held |= core.HeldRight
		h.right--
	}
	return held
}
