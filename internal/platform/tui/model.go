package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/registry"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

// Env carries the services shared by every screen of a session.
// All fields are optional.
type Env struct {
	Store   *storage.Store
	Palette Palette
	Logger  *log.Logger
	Player  string // Name recorded with journalled runs
}

// withDefaults fills unset fields.
func (e Env) withDefaults() Env {
	if e.Palette.styles == nil {
		e.Palette = DefaultPalette()
	}
	if e.Logger == nil {
		e.Logger = log.New(io.Discard)
	}
	return e
}

// Model is the Bubble Tea model for playing one game.
// It quits the program on back or quit; SessionModel inspects
// BackToMenu and IsQuitting to route instead.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	env        Env
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
	backToMenu bool
	journalled bool // Current run is already stored
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, env Env, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		env:        env.withDefaults(),
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.env.Logger.Debug("game started", "game", m.game.ID(), "seed", m.config.Seed)
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

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	switch {
	case isQuit:
		m.journalAbandoned()
		m.quitting = true
		return m, tea.Quit

	case action == core.ActionBack:
		m.journalAbandoned()
		m.backToMenu = true
		return m, tea.Quit

	case action == core.ActionRestart:
		m.restart()
		return m, nil

	case action != core.ActionNone:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if r, ok := m.game.(registry.Resizable); ok {
		r.Resize(msg.Width, msg.Height)
		return m, nil
	}

	// Games without resize support start over with the new dimensions
	if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	switch {
	case m.gameState.GameOver && !m.journalled:
		m.journal(true)
	case !m.gameState.GameOver && m.journalled:
		// An undo reopened a finished run
		m.journalled = false
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// restart abandons the current run and starts a new one with a fresh seed.
func (m *Model) restart() {
	m.journalAbandoned()

	m.config.Seed = time.Now().UnixNano()
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	m.journalled = false
	m.inputFrame.Clear()
	m.env.Logger.Debug("game restarted", "game", m.game.ID(), "seed", m.config.Seed)
}

// journalAbandoned stores a run that ends without reaching game over.
// Runs without any input are not worth keeping.
func (m *Model) journalAbandoned() {
	rec, ok := m.game.(registry.Recordable)
	if !ok || m.journalled || rec.Record().Inputs == "" {
		return
	}
	m.journal(false)
}

// journal stores the current run once. Failures are logged, play continues.
func (m *Model) journal(finished bool) {
	m.journalled = true

	rec, ok := m.game.(registry.Recordable)
	if !ok || m.env.Store == nil {
		return
	}

	run := rec.Record()
	runID, err := m.env.Store.SaveRun(storage.RunEntry{
		GameID:   m.game.ID(),
		Player:   m.env.Player,
		Seed:     run.Seed,
		Inputs:   run.Inputs,
		Score:    run.Score,
		MaxTile:  run.MaxTile,
		Moves:    run.Moves,
		Finished: run.Finished,
	})
	if err != nil {
		m.env.Logger.Error("cannot journal run", "err", err)
		return
	}

	m.env.Logger.Info("run journalled",
		"run", runID,
		"finished", finished,
		"score", run.Score,
		"max_tile", run.MaxTile,
		"moves", run.Moves,
	)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.env.Logger.Warn("cannot save screenshot", "err", err)
		return
	}
	dir := filepath.Join(home, ".t2048", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.env.Logger.Warn("cannot save screenshot", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.env.Logger.Warn("cannot save screenshot", "err", err)
		return
	}
	m.env.Logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return m.env.Palette.Render(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts a Bubble Tea program playing the given game.
func Run(game registry.Game, env Env, cfg core.RuntimeConfig) error {
	model := NewModel(game, env, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
