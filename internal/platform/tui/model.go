package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/bricktoy/internal/core"
	"github.com/vovakirdan/bricktoy/internal/registry"
	"github.com/vovakirdan/bricktoy/internal/storage"
)

// FinishFunc is called with every finished run and the result of saving it.
// err is nil when no store is configured.
type FinishFunc func(run storage.Run, err error)

// Model is the Bubble Tea model for playing one game.
type Model struct {
	game     registry.Game
	screen   *core.Screen
	store    *storage.Store
	config   core.RuntimeConfig
	keys     KeyMap
	help     help.Model
	held     *HeldKeys
	pulse    core.InputFrame // One-shot actions for the next tick
	state    core.GameState
	started  time.Time
	onFinish FinishFunc
	quitting bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	return Model{
		game:    game,
		screen:  core.NewScreen(cfg.ScreenW, playHeight(cfg.ScreenH)),
		store:   store,
		config:  cfg,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		held:    NewHeldKeys(DefaultHoldTicks),
		pulse:   core.NewInputFrame(),
		started: time.Now(),
	}
}

// OnFinish registers a callback for finished runs.
func (m Model) OnFinish(fn FinishFunc) Model {
	m.onFinish = fn
	return m
}

// playHeight leaves the last row for the help footer.
func playHeight(h int) int {
	return core.Max(h-1, 1)
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, playHeight(msg.Height))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Action(msg)

	switch {
	case action == core.ActionQuit:
		m.finishRun()
		m.quitting = true
		return m, tea.Quit
	case isDirection(action):
		m.held.Press(action)
	case action != core.ActionNone:
		m.pulse.Set(action)
	}
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.pulse.Has(core.ActionRestart) {
		m.finishRun()
		m.game.Reset(m.config)
		m.state = m.game.State()
		m.held.Release()
		m.pulse.Clear()
		m.started = time.Now()
		return m, tickCmd(m.config.TickRate)
	}

	in := m.held.Frame()
	if m.pulse.Has(core.ActionPause) {
		in.Set(core.ActionPause)
	}
	m.pulse.Clear()

	result := m.game.Step(in)
	m.state = result.State

	return m, tickCmd(m.config.TickRate)
}

// finishRun saves the current run if it advanced at all.
func (m *Model) finishRun() {
	state := m.game.State()
	if state.Ticks == 0 {
		return
	}

	run := storage.Run{
		GameID:     m.game.ID(),
		Ticks:      int64(state.Ticks),
		Collisions: state.Score,
		Duration:   time.Since(m.started),
	}

	var err error
	if m.store != nil {
		run.ID, err = m.store.SaveRun(run)
	}
	if m.onFinish != nil {
		m.onFinish(run, err)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program for game and blocks until the player quits.
// onFinish runs while the alternate screen is still active, so it must not
// write to the terminal.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, onFinish FinishFunc) error {
	model := NewModel(game, store, cfg).OnFinish(onFinish)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
