package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/registry"
)

// sessionScreen is the screen a session is currently showing.
type sessionScreen int

const (
	screenMenu sessionScreen = iota
	screenGame
	screenRuns
)

// SessionModel manages the full session flow: menu -> game or runs -> menu.
// It is the top-level model for SSH sessions and the local menu command.
// Child models quit the program when left; the session swallows those
// commands and routes to the next screen instead.
type SessionModel struct {
	env      Env
	config   core.RuntimeConfig
	screen   sessionScreen
	menu     MenuModel
	game     *Model
	runs     *RunsModel
	quitting bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(env Env, cfg core.RuntimeConfig) SessionModel {
	env = env.withDefaults()
	return SessionModel{
		env:    env,
		config: cfg,
		menu:   NewMenuModel(env, cfg),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window resize globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.screen {
	case screenGame:
		return m.updateGame(msg)
	case screenRuns:
		return m.updateRuns(msg)
	default:
		return m.updateMenu(msg)
	}
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	selected := m.menu.Selected()
	if selected == nil {
		return m, cmd
	}

	switch selected.Choice {
	case MenuNewGame:
		return m.startGame()
	case MenuRecentRuns:
		runs := NewRunsModel(m.env, m.config.ScreenW, m.config.ScreenH)
		m.runs = &runs
		m.screen = screenRuns
		return m, m.runs.Init()
	}

	return m, nil
}

// startGame creates a fresh game with a new seed.
func (m SessionModel) startGame() (tea.Model, tea.Cmd) {
	game, err := registry.Create(t2048.GameID)
	if err != nil {
		m.env.Logger.Error("cannot create game", "err", err)
		m.menu = NewMenuModel(m.env, m.config)
		return m, nil
	}

	cfg := m.config
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	// Every later game from this session gets a fresh seed
	m.config.Seed = 0

	gameModel := NewModel(game, m.env, cfg)
	m.game = &gameModel
	m.screen = screenGame

	return m, m.game.Init()
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.game.Update(msg)
	if gameModel, ok := newModel.(Model); ok {
		m.game = &gameModel
	}

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.game.BackToMenu() {
		return m.backToMenu()
	}

	return m, cmd
}

// updateRuns handles updates when browsing runs.
func (m SessionModel) updateRuns(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.runs.Update(msg)
	if runsModel, ok := newModel.(RunsModel); ok {
		m.runs = &runsModel
	}

	if m.runs.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.runs.IsGoingBack() {
		return m.backToMenu()
	}

	return m, cmd
}

// backToMenu returns to a fresh menu, dropping the child screen.
func (m SessionModel) backToMenu() (tea.Model, tea.Cmd) {
	m.game = nil
	m.runs = nil
	m.screen = screenMenu
	m.menu = NewMenuModel(m.env, m.config)
	return m, m.menu.Init()
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.screen {
	case screenGame:
		return m.game.View()
	case screenRuns:
		return m.runs.View()
	default:
		return m.menu.View()
	}
}

// RunSession runs a full menu session in the local terminal.
func RunSession(env Env, cfg core.RuntimeConfig) error {
	p := tea.NewProgram(
		NewSessionModel(env, cfg),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
