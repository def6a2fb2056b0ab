package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-paddle/internal/audio"
	"github.com/vovakirdan/tui-paddle/internal/core"
	"github.com/vovakirdan/tui-paddle/internal/game"
	"github.com/vovakirdan/tui-paddle/internal/storage"
	"github.com/vovakirdan/tui-paddle/internal/timebase"
)

// Model is the Bubble Tea model running the paddle session.
type Model struct {
	game      *game.Game
	screen    *core.Screen
	store     *storage.Store
	player    audio.Player
	config    core.RuntimeConfig
	keys      *KeyTracker
	gate      *timebase.FrameGate
	gameState core.GameState
	quitting  bool
	runSaved  bool // Whether the finished run has been written to storage
}

// NewModel creates a new Bubble Tea model for the given session.
func NewModel(g *game.Game, store *storage.Store, player audio.Player, cfg core.RuntimeConfig, restartHoldMs int) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if player == nil {
		player = audio.NullPlayer{}
	}

	return Model{
		game:   g,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:  store,
		player: player,
		config: cfg,
		keys:   NewKeyTracker(cfg.TickRate, restartHoldMs),
		gate:   timebase.NewFrameGate(cfg.TickRate, nil),
	}
}

// Init initializes the model and starts the tick loop.
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
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		m.quitting = true
		return m, tea.Quit
	case "ctrl+s":
		m.saveScreenshot()
		return m, nil
	}

	m.keys.KeyDown(msg.String())
	return m, nil
}

// handleResize processes window resize events. The field geometry depends on
// the screen size, so a resize returns the session to the title screen.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	m.game.Reset(m.config)
	m.keys.Release()
	m.runSaved = false

	return m, nil
}

// handleTick processes simulation ticks. The frame gate caps the simulation
// at one step per interval even when tick messages arrive bunched together.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if !m.gate.Ready() {
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.keys.Frame())
	m.gameState = result.State

	for _, cue := range result.Cues {
		m.player.Play(cue)
	}

	// Save the run once per game over (best-effort)
	if m.gameState.GameOver {
		if !m.runSaved && m.gameState.Final > 0 && m.store != nil {
			//nolint:errcheck // Best-effort save, game continues regardless
			m.store.SaveRun(m.game.ID(), m.gameState.Final)
		}
		m.runSaved = true
	} else {
		m.runSaved = false
	}

	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".paddle", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program for the given session.
func Run(g *game.Game, store *storage.Store, player audio.Player, cfg core.RuntimeConfig, restartHoldMs int) error {
	model := NewModel(g, store, player, cfg, restartHoldMs)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
