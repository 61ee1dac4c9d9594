package game

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/scoreboard"
)

// State is the current screen of the game.
type State int

const (
	StateMenu State = iota
	StateSettings
	StateLeaderboard
	StatePlaying
	StatePaused
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateMenu:
		return "MENU"
	case StateSettings:
		return "SETTINGS"
	case StateLeaderboard:
		return "LEADERBOARD"
	case StatePlaying:
		return "PLAYING"
	case StatePaused:
		return "PAUSED"
	case StateGameOver:
		return "GAME_OVER"
	default:
		return "UNKNOWN"
	}
}

// Menu and settings entries, in display order.
var (
	MenuItems     = []string{"Start Game", "Settings", "Leaderboard", "Quit"}
	SettingsItems = []string{"Theme", "Difficulty", "Back"}
)

const (
	menuStart = iota
	menuSettings
	menuLeaderboard
	menuQuit
)

const (
	settingsTheme = iota
	settingsDifficulty
	settingsBack
)

// Scoreboard is the persistence the machine records finished sessions into.
type Scoreboard interface {
	HighScore() int
	Leaderboard() []scoreboard.Entry
	RecordSession(r scoreboard.Result) []scoreboard.Entry
}

type transitionKey struct {
	state  State
	action core.Action
}

type transitionFunc func(m *Machine)

// transitions is the complete table of state changes. Any (state, action)
// pair not listed is ignored.
var transitions map[transitionKey]transitionFunc

func init() {
	transitions = map[transitionKey]transitionFunc{
		{StateMenu, core.ActionUp}:      func(m *Machine) { m.menuIndex = wrap(m.menuIndex-1, len(MenuItems)) },
		{StateMenu, core.ActionDown}:    func(m *Machine) { m.menuIndex = wrap(m.menuIndex+1, len(MenuItems)) },
		{StateMenu, core.ActionConfirm}: (*Machine).menuConfirm,

		{StateSettings, core.ActionUp}:      func(m *Machine) { m.settingsIndex = wrap(m.settingsIndex-1, len(SettingsItems)) },
		{StateSettings, core.ActionDown}:    func(m *Machine) { m.settingsIndex = wrap(m.settingsIndex+1, len(SettingsItems)) },
		{StateSettings, core.ActionLeft}:    func(m *Machine) { m.cycleSetting(-1) },
		{StateSettings, core.ActionRight}:   func(m *Machine) { m.cycleSetting(1) },
		{StateSettings, core.ActionConfirm}: (*Machine).settingsConfirm,
		{StateSettings, core.ActionCancel}:  (*Machine).toMenu,

		{StateLeaderboard, core.ActionCancel}: (*Machine).toMenu,

		{StatePlaying, core.ActionFire}:    (*Machine).fire,
		{StatePlaying, core.ActionPause}:   func(m *Machine) { m.state = StatePaused },
		{StatePlaying, core.ActionRestart}: (*Machine).restart,
		{StatePlaying, core.ActionCancel}:  (*Machine).toMenu,

		{StatePaused, core.ActionPause}:   func(m *Machine) { m.state = StatePlaying },
		{StatePaused, core.ActionRestart}: (*Machine).restart,
		{StatePaused, core.ActionCancel}:  (*Machine).toMenu,

		{StateGameOver, core.ActionRestart}: (*Machine).restart,
		{StateGameOver, core.ActionCancel}:  (*Machine).toMenu,
	}

	for _, s := range []State{StateMenu, StateSettings, StateLeaderboard, StatePlaying, StatePaused, StateGameOver} {
		transitions[transitionKey{s, core.ActionQuit}] = (*Machine).quit
	}
}

// Machine is the game: it owns the simulation, the live session and the
// current screen, and advances them one tick per Step.
type Machine struct {
	cfg      config.InvadersConfig
	store    Scoreboard
	logger   *log.Logger
	now      func() time.Time
	rng      *rand.Rand
	sim      *Simulation
	detector *Detector

	state         State
	menuIndex     int
	settingsIndex int
	difficulty    config.Difficulty
	theme         config.Theme
	backdrop      []Decoration
	board         []scoreboard.Entry

	session     Session
	bestAtStart int // High score when the current session began
	done        bool
}

// Option configures a Machine.
type Option func(*machineOptions)

type machineOptions struct {
	seed       int64
	now        func() time.Time
	difficulty config.Difficulty
	theme      config.Theme
	logger     *log.Logger
}

// WithSeed seeds every random choice of the machine.
func WithSeed(seed int64) Option {
	return func(o *machineOptions) { o.seed = seed }
}

// WithClock overrides the wall clock used for session timing.
func WithClock(now func() time.Time) Option {
	return func(o *machineOptions) { o.now = now }
}

// WithDifficulty sets the initially selected difficulty.
func WithDifficulty(d config.Difficulty) Option {
	return func(o *machineOptions) { o.difficulty = d }
}

// WithTheme sets the initially selected theme.
func WithTheme(t config.Theme) Option {
	return func(o *machineOptions) { o.theme = t }
}

// WithLogger sets the logger for session events.
func WithLogger(l *log.Logger) Option {
	return func(o *machineOptions) { o.logger = l }
}

// NewMachine creates a machine on the menu screen.
// A nil store keeps scores in memory only.
func NewMachine(cfg config.InvadersConfig, store Scoreboard, opts ...Option) *Machine {
	o := machineOptions{
		seed:       time.Now().UnixNano(),
		now:        time.Now,
		difficulty: config.DifficultyMedium,
		theme:      config.ThemeClassic,
		logger:     log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(&o)
	}
	if store == nil {
		store = scoreboard.NewStore(nil)
	}

	m := &Machine{
		cfg:        cfg,
		store:      store,
		logger:     o.logger,
		now:        o.now,
		rng:        rand.New(rand.NewSource(o.seed)),
		sim:        NewSimulation(cfg, o.seed),
		detector:   NewDetector(cfg),
		state:      StateMenu,
		difficulty: o.difficulty,
		theme:      o.theme,
		board:      store.Leaderboard(),
	}
	m.sim.Reset(config.ProfileFor(m.difficulty))
	m.applyTheme()
	return m
}

// Step runs one tick: queued actions in order, then the simulation if playing.
func (m *Machine) Step(frame core.InputFrame) Snapshot {
	for _, a := range frame.Actions {
		if m.done {
			break
		}
		m.Handle(a)
	}

	if m.state == StatePlaying && !m.done {
		m.tick(frame.Held)
	}
	return m.Snapshot()
}

// Handle applies a single action through the transition table.
// Actions with no meaning in the current state are ignored.
func (m *Machine) Handle(a core.Action) {
	if fn, ok := transitions[transitionKey{m.state, a}]; ok {
		fn(m)
	}
}

// State returns the current screen.
func (m *Machine) State() State {
	return m.state
}

// Done reports whether the player asked to quit.
func (m *Machine) Done() bool {
	return m.done
}

// Session returns a copy of the current session record.
func (m *Machine) Session() Session {
	return m.session
}

// Difficulty returns the selected difficulty.
func (m *Machine) Difficulty() config.Difficulty {
	return m.difficulty
}

// Theme returns the selected theme.
func (m *Machine) Theme() config.Theme {
	return m.theme
}

// Simulation exposes the entity simulation.
func (m *Machine) Simulation() *Simulation {
	return m.sim
}

// Finalize records the session once. The store raises the high score.
// Sessions that never started or were already recorded are left alone.
func (m *Machine) Finalize() {
	if !m.session.started || m.session.finalized {
		return
	}
	now := m.now()
	m.session.finalized = true
	if m.session.EndedAt.IsZero() {
		m.session.EndedAt = now
	}

	r := m.session.Result(now)
	m.board = m.store.RecordSession(r)

	m.logger.Info("session finalized",
		"score", r.Score, "level", r.Level, "difficulty", r.Difficulty,
		"fired", r.BulletsFired, "hits", r.Hits, "elapsed", r.Elapsed.Round(time.Second))
}

func (m *Machine) tick(held core.Held) {
	report := m.sim.Update(held)
	if report.Landed {
		m.gameOver("swarm landed")
		return
	}

	out := m.detector.Resolve(m.sim, m.sim.Profile())
	m.session.Score += out.Points
	m.session.Hits += out.Hits()

	if out.PlayerHit {
		m.gameOver("ship destroyed")
		return
	}

	if m.sim.Swarm.Empty() {
		m.session.Level++
		m.sim.LevelUp()
		m.logger.Debug("level cleared", "level", m.session.Level, "speed", m.sim.Swarm.BaseSpeed)
	}
}

func (m *Machine) gameOver(reason string) {
	m.state = StateGameOver
	m.logger.Debug("game over", "reason", reason, "score", m.session.Score)
	m.Finalize()
}

func (m *Machine) startSession() {
	// A session abandoned from the menu is recorded when the next one starts
	m.Finalize()

	m.session = newSession(m.difficulty, m.theme, m.now())
	m.bestAtStart = m.store.HighScore()
	m.sim.Reset(config.ProfileFor(m.difficulty))
	m.state = StatePlaying
}

func (m *Machine) restart() {
	m.Finalize()
	m.startSession()
}

func (m *Machine) quit() {
	m.Finalize()
	m.done = true
}

func (m *Machine) toMenu() {
	m.state = StateMenu
}

func (m *Machine) fire() {
	m.sim.Fire()
	m.session.BulletsFired++
}

func (m *Machine) menuConfirm() {
	switch m.menuIndex {
	case menuStart:
		m.startSession()
	case menuSettings:
		m.state = StateSettings
	case menuLeaderboard:
		m.board = m.store.Leaderboard()
		m.state = StateLeaderboard
	case menuQuit:
		m.quit()
	}
}

func (m *Machine) settingsConfirm() {
	if m.settingsIndex == settingsBack {
		m.toMenu()
		return
	}
	m.cycleSetting(1)
}

func (m *Machine) cycleSetting(step int) {
	switch m.settingsIndex {
	case settingsTheme:
		if step > 0 {
			m.theme = m.theme.Next()
		} else {
			m.theme = m.theme.Prev()
		}
		m.applyTheme()
	case settingsDifficulty:
		if step > 0 {
			m.difficulty = m.difficulty.Next()
		} else {
			m.difficulty = m.difficulty.Prev()
		}
	}
}

// applyTheme regenerates the backdrop and retints future obstacles.
func (m *Machine) applyTheme() {
	palette := config.PaletteFor(m.theme)
	m.backdrop = NewBackdrop(m.cfg, palette, m.rng)
	m.sim.SetTint(palette.Enemy)
}

func wrap(i, n int) int {
	return (i%n + n) % n
}
