package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/game"
)

// Options tunes a Model.
type Options struct {
	ScreenshotDir string             // Where ctrl+s writes; empty disables screenshots
	Renderer      *lipgloss.Renderer // Output renderer; nil uses the default
}

// Model is the Bubble Tea model that drives one game.
type Model struct {
	machine  *game.Machine
	screen   *core.Screen
	styles   *Styles
	keys     KeyMap
	help     help.Model
	board    leaderboardTable
	held     heldInput
	frame    core.InputFrame
	config   core.RuntimeConfig
	snap     game.Snapshot
	shotDir  string
	quitting bool
}

// NewModel creates a new Bubble Tea model around the given machine.
func NewModel(machine *game.Machine, cfg core.RuntimeConfig, opts Options) Model {
	h := help.New()
	h.ShowAll = false
	h.Width = cfg.ScreenW

	m := Model{
		machine: machine,
		screen:  core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-1, 1)), // Last row is the help bar
		styles:  NewStyles(opts.Renderer),
		keys:    DefaultKeyMap(),
		help:    h,
		board:   newLeaderboardTable(cfg.ScreenW, cfg.ScreenH),
		held:    newHeldInput(cfg.TickRate),
		frame:   core.NewInputFrame(),
		config:  cfg,
		snap:    machine.Snapshot(),
		shotDir: opts.ScreenshotDir,
	}
	m.board.SetEntries(m.snap.Leaderboard)
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey queues the key's action for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	var cmd tea.Cmd
	if m.snap.State == game.StateLeaderboard {
		cmd = m.board.Update(msg)
	}

	a := m.keys.Action(msg)
	m.frame.Set(a)
	if m.snap.State == game.StatePlaying {
		m.held.press(a)
	}
	return m, cmd
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-1, 1))
	m.board.Resize(msg.Width, msg.Height)
	m.help.Width = msg.Width
	return m, nil
}

// handleTick advances the game by one tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.frame.Hold(m.held.tick())
	m.snap = m.machine.Step(m.frame)

	// Clear input for next frame
	m.frame.Clear()
	if m.snap.State != game.StatePlaying {
		m.held.release()
	}

	if m.machine.Done() {
		m.quitting = true
		return m, tea.Quit
	}

	m.board.SetEntries(m.snap.Leaderboard)

	// Continue ticking
	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	if m.shotDir == "" {
		return
	}

	Draw(m.screen, m.snap)

	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(m.shotDir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("invaders_%s.txt", timestamp)
	path := filepath.Join(m.shotDir, filename)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	helpStyle := m.styles.Renderer().NewStyle().Foreground(lipgloss.Color("241"))
	helpLine := helpStyle.Render(m.help.View(m.keys.ForState(m.snap.State)))

	if m.snap.State == game.StateLeaderboard {
		return m.board.View(m.styles.Renderer(), m.snap.HighScore) + "\n" + helpLine
	}

	Draw(m.screen, m.snap)
	return RenderScreen(m.screen, m.styles, m.snap.Palette.Background) + "\n" + helpLine
}

// Run starts the Bubble Tea program for the given machine and blocks until
// the player quits. Any unfinished session is recorded on the way out.
func Run(machine *game.Machine, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(machine, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	machine.Finalize()
	return err
}
