package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-paddle/internal/game"
	"github.com/vovakirdan/tui-paddle/internal/storage"
)

const maxBoardRuns = 100 // Max runs to load into the board

// BoardKeyMap defines the key bindings for the run board.
type BoardKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k BoardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k BoardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Quit}}
}

// DefaultBoardKeyMap returns default key bindings.
func DefaultBoardKeyMap() BoardKeyMap {
	return BoardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// BoardModel is the Bubble Tea model for the best-time board: the persisted
// best survival time plus the most recent runs.
type BoardModel struct {
	store    *storage.Store
	gameID   string
	best     int
	runs     []storage.RunEntry
	table    table.Model
	help     help.Model
	keys     BoardKeyMap
	width    int
	height   int
	quitting bool
}

// NewBoardModel creates a new board model.
func NewBoardModel(store *storage.Store, gameID string, width, height int) BoardModel {
	m := BoardModel{
		store:  store,
		gameID: gameID,
		keys:   DefaultBoardKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}

	m.table = m.createTable()
	m.load()
	return m
}

func (m *BoardModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Time", Width: 8},
		{Title: "Date", Width: 18},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-7, 3)),
	)

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

// load pulls the best time and recent runs from storage.
func (m *BoardModel) load() {
	if m.store == nil {
		return
	}

	if best, err := m.store.BestTime(m.gameID); err == nil {
		m.best = best
	}

	runs, err := m.store.RecentRuns(m.gameID, maxBoardRuns)
	if err != nil {
		return
	}
	m.runs = runs

	rows := make([]table.Row, 0, len(runs))
	for i, r := range runs {
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", i+1),
			game.FormatTime(r.Seconds),
			r.CreatedAt.Format("2006-01-02 15:04"),
		})
	}
	m.table.SetRows(rows)
}

// Init implements tea.Model.
func (m BoardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the board.
func (m BoardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table.SetHeight(max(m.height-7, 3))
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the board.
func (m BoardModel) View() string {
	if m.quitting {
		return ""
	}

	title := lipgloss.NewStyle().Bold(true).Render("Paddle - Best Times")
	best := fmt.Sprintf("Best: %s  (%d runs recorded)", game.FormatTime(m.best), len(m.runs))

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		best,
		"",
		m.table.View(),
		"",
		m.help.View(m.keys),
	)
}

// RunBoard starts the interactive board program.
func RunBoard(store *storage.Store, gameID string, width, height int) error {
	model := NewBoardModel(store, gameID, width, height)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
