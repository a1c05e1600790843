package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-pacman/internal/core"
	"github.com/vovakirdan/tui-pacman/internal/registry"
	"github.com/vovakirdan/tui-pacman/internal/storage"
)

// Options tunes the game host.
type Options struct {
	Logger        *log.Logger
	HoldTicks     int    // Ticks a direction stays held after a press
	ScreenshotDir string // Defaults to ~/.arcade/screenshots
	ShowHelp      bool   // Draw the key help bar below the game
}

// progress is implemented by games that track levels and ticks.
type progress interface {
	Level() int
	Ticks() uint64
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	opts       Options
	logger     *log.Logger
	keyMapper  *KeyMapper
	keys       *HeldKeys
	help       help.Model
	runID      string
	gameState  core.GameState
	quitting   bool
	scoreSaved bool // Whether score has been saved for current game over
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	m := Model{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:     store,
		config:    cfg,
		opts:      opts,
		keyMapper: NewKeyMapper(),
		keys:      NewHeldKeys(opts.HoldTicks),
		help:      help.New(),
	}
	m.screen.Resize(cfg.ScreenW, m.boardHeight())
	m.help.Width = cfg.ScreenW
	m.startRun()
	return m
}

// startRun resets the game under a fresh run ID.
func (m *Model) startRun() {
	m.runID = uuid.NewString()
	m.logger = m.opts.Logger.With("run_id", m.runID)
	if lg, ok := m.game.(registry.Loggable); ok {
		lg.SetLogger(m.logger)
	}

	m.game.Reset(m.config)
	m.gameState = m.game.State()
	m.scoreSaved = false
	m.keys.Release()
}

// Init starts the tick loop. The game was reset by NewModel.
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

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keyMapper.IsScreenshot(msg) {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		m.logger.Info("quit", "score", m.gameState.Score)
		return m, tea.Quit
	}

	m.keys.Press(action)
	return m, nil
}

// handleResize processes window resize events. The game keeps its state;
// it renders a notice while the window is too small.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, m.boardHeight())
	m.help.Width = msg.Width
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	frame := m.keys.Frame()

	// Restart is handled here so every episode gets its own seed and run ID
	if frame.Has(core.ActionRestart) {
		m.logger.Info("restart", "score", m.gameState.Score)
		m.config.Seed = time.Now().UnixNano()
		m.startRun()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(frame)
	m.gameState = result.State

	if m.gameState.GameOver && !m.scoreSaved {
		m.saveScore()
		m.scoreSaved = true
	}

	return m, tickCmd(m.config.TickRate)
}

// saveScore records the finished episode. Storage failures are logged and
// never interrupt play.
func (m *Model) saveScore() {
	if m.store == nil || m.gameState.Score <= 0 {
		return
	}

	rec := storage.ScoreRecord{
		RunID:  m.runID,
		GameID: m.game.ID(),
		Score:  m.gameState.Score,
		Level:  1,
		Seed:   m.config.Seed,
	}
	if p, ok := m.game.(progress); ok {
		rec.Level = p.Level()
		rec.Ticks = p.Ticks()
	}

	if _, err := m.store.SaveScore(rec); err != nil {
		m.logger.Warn("could not save score", "error", err)
		return
	}
	m.logger.Info("score saved", "game", rec.GameID, "score", rec.Score, "level", rec.Level)
}

// saveScreenshot saves the current screen to a text file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := m.opts.ScreenshotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			m.logger.Warn("could not save screenshot", "error", err)
			return
		}
		dir = filepath.Join(home, ".arcade", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// boardHeight is the screen height left for the game once the help bar is drawn.
func (m Model) boardHeight() int {
	if m.opts.ShowHelp && m.config.ScreenH > 1 {
		return m.config.ScreenH - 1
	}
	return m.config.ScreenH
}

// RunID returns the identifier of the current episode.
func (m Model) RunID() string {
	return m.runID
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	view := RenderScreen(m.screen)
	if m.opts.ShowHelp {
		view += "\n" + helpStyle.Render(m.help.View(m.keyMapper.Keys()))
	}
	return view
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, store, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
