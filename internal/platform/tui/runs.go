package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

// Runs browser layout constants
const (
	minWidthForPreview = 90  // Minimum width to show the board preview
	maxRuns            = 100 // Max runs to load
)

// RunsKeyMap defines the key bindings for the runs browser.
type RunsKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Delete key.Binding
	Back   key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k RunsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Delete, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k RunsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Delete},
		{k.Back, k.Quit},
	}
}

// DefaultRunsKeyMap returns default key bindings.
func DefaultRunsKeyMap() RunsKeyMap {
	return RunsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d", "delete"),
			key.WithHelp("d", "delete run"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// RunsModel is the Bubble Tea model for browsing journalled runs.
type RunsModel struct {
	env         Env
	runs        []storage.RunEntry
	loadErr     error
	table       table.Model
	help        help.Model
	keys        RunsKeyMap
	width       int
	height      int
	quitting    bool
	goingBack   bool
	showPreview bool
}

// NewRunsModel creates a new runs browser and loads the latest runs.
func NewRunsModel(env Env, width, height int) RunsModel {
	h := help.New()
	h.ShowAll = false
	h.Width = width

	m := RunsModel{
		env:         env.withDefaults(),
		keys:        DefaultRunsKeyMap(),
		help:        h,
		width:       width,
		height:      height,
		showPreview: width >= minWidthForPreview,
	}

	m.table = m.createTable()
	m.loadRuns()

	return m
}

// createTable creates a new table with appropriate columns.
func (m *RunsModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "When", Width: 16},
		{Title: "Player", Width: 10},
		{Title: "Score", Width: 8},
		{Title: "Best", Width: 6},
		{Title: "Moves", Width: 6},
		{Title: "Status", Width: 8},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)), // Leave room for header, help, and margins
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("#f9f6f2")).
		Background(lipgloss.Color("#f67c5f")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// loadRuns reloads the most recent runs from the store.
func (m *RunsModel) loadRuns() {
	m.runs = nil
	m.loadErr = nil

	if m.env.Store != nil {
		runs, err := m.env.Store.RecentRuns(maxRuns)
		if err != nil {
			m.env.Logger.Error("cannot load runs", "err", err)
			m.loadErr = err
		} else {
			m.runs = runs
		}
	}

	m.updateTableRows()
}

// updateTableRows updates the table with the loaded runs.
func (m *RunsModel) updateTableRows() {
	rows := make([]table.Row, len(m.runs))
	for i, r := range m.runs {
		status := "left"
		if r.Finished {
			status = "over"
		}
		player := r.Player
		if player == "" {
			player = "-"
		}
		rows[i] = table.Row{
			humanize.Time(r.CreatedAt),
			player,
			humanize.Comma(int64(r.Score)),
			strconv.Itoa(r.MaxTile),
			strconv.Itoa(r.Moves),
			status,
		}
	}
	m.table.SetRows(rows)

	if m.table.Cursor() >= len(rows) {
		m.table.GotoTop()
	}
}

// Init initializes the runs model.
func (m RunsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the runs browser.
func (m RunsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Delete):
			m.deleteSelected()
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showPreview = m.width >= minWidthForPreview
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// deleteSelected removes the run under the cursor.
func (m *RunsModel) deleteSelected() {
	run := m.Selected()
	if run == nil || m.env.Store == nil {
		return
	}
	if err := m.env.Store.DeleteRun(run.RunID); err != nil {
		m.env.Logger.Error("cannot delete run", "run", run.RunID, "err", err)
		return
	}
	m.env.Logger.Info("run deleted", "run", run.RunID)
	m.loadRuns()
}

// Selected returns the run under the cursor, or nil if there are none.
func (m RunsModel) Selected() *storage.RunEntry {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.runs) {
		return nil
	}
	return &m.runs[i]
}

// View renders the runs browser.
func (m RunsModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#edc22e")).
		MarginBottom(1)
	b.WriteString(titleStyle.Render(centerText("RECENT RUNS", m.width)))
	b.WriteString("\n\n")

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	tableBox := boxStyle.Render(m.renderTableContent())
	if m.showPreview && len(m.runs) > 0 {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tableBox, "  ", boxStyle.Render(m.renderPreview())))
	} else {
		b.WriteString(tableBox)
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderTableContent renders the table or an empty message.
func (m RunsModel) renderTableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)

	switch {
	case m.env.Store == nil:
		return emptyStyle.Render("Run journal unavailable.")
	case m.loadErr != nil:
		return emptyStyle.Render("Could not load runs:\n" + m.loadErr.Error())
	case len(m.runs) == 0:
		return emptyStyle.Render("No runs recorded yet.\nPlay a game to start the journal!")
	}

	return m.table.View()
}

// renderPreview replays the selected run and shows where it ended.
func (m RunsModel) renderPreview() string {
	run := m.Selected()
	if run == nil {
		return ""
	}

	engine, err := t2048.Replay(run.Seed, run.Inputs)
	if err != nil {
		return fmt.Sprintf("Cannot replay run:\n%v", err)
	}

	return fmt.Sprintf("Run %s\n\n%sScore: %s",
		shortID(run.RunID),
		t2048.FormatBoard(engine.Board()),
		humanize.Comma(int64(engine.Score())),
	)
}

// shortID returns the first block of a UUID.
func shortID(id string) string {
	if i := strings.IndexByte(id, '-'); i > 0 {
		return id[:i]
	}
	return id
}

// IsGoingBack returns true if user wants to go back to menu.
func (m RunsModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m RunsModel) IsQuitting() bool {
	return m.quitting
}
