package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-dodger/internal/core"
)

// Game is what the platform loop drives. Games contain pure logic with no
// Bubble Tea dependency; the platform handles input mapping, timing and
// rendering.
type Game interface {
	// ID returns a unique identifier for this game.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes or resets the game state.
	// The RuntimeConfig provides screen dimensions and RNG seed.
	Reset(cfg core.RuntimeConfig)

	// Resize adapts the game to a new screen size without restarting it.
	Resize(width, height int)

	// Step advances the simulation by one fixed tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current game state into the provided screen buffer.
	Render(dst *core.Screen)

	// State returns the current game state.
	State() core.GameState
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       Game
	screen     *core.Screen
	renderer   *ScreenRenderer
	keys       *KeyMapper
	logger     *log.Logger
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game. A nil
// renderer uses the default lipgloss output; a nil logger discards.
func NewModel(game Game, cfg core.RuntimeConfig, renderer *lipgloss.Renderer, logger *log.Logger) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	game.Reset(cfg)

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		renderer:   NewScreenRenderer(renderer),
		keys:       NewKeyMapper(),
		logger:     logger,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		gameState:  game.State(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.logger.Info("game started", "game", m.game.ID(), "seed", m.config.Seed,
		"width", m.config.ScreenW, "height", m.config.ScreenH)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.inputFrame.SetPointer(msg.X, msg.Y)
		return m, nil

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

	// Esc is queued as Back; the game decides on the next tick whether it
	// closes an overlay or quits.
	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		return m.quit()
	}
	return m, nil
}

// quit stops the program.
func (m Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	m.logger.Info("game quit", "game", m.game.ID(), "score", m.gameState.Score)
	return m, tea.Quit
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.game.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	wasOver := m.gameState.GameOver

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	if result.Quit {
		return m.quit()
	}

	if m.gameState.GameOver && !wasOver {
		m.logger.Info("run finished", "game", m.game.ID(), "score", m.gameState.Score)
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the current screen as plain text under
// ~/.dodger/screenshots.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}
	dir := filepath.Join(home, ".dodger", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot not saved", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return m.renderer.Render(m.screen)
}

// State returns the last state reported by the game.
func (m Model) State() core.GameState {
	return m.gameState
}

// ProgramOptions are the Bubble Tea options every game program runs with.
// All-motion mouse reporting lets the player follow the pointer without a
// button held.
func ProgramOptions() []tea.ProgramOption {
	return []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	}
}

// Run starts the Bubble Tea program for the given game and blocks until
// the player quits.
func Run(game Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, cfg, nil, logger)

	p := tea.NewProgram(model, ProgramOptions()...)
	_, err := p.Run()
	return err
}
