package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tanks/internal/core"
	"github.com/vovakirdan/tui-tanks/internal/storage"
)

// Options tunes a Model beyond its game and runtime config.
type Options struct {
	// Player names scores saved to the store.
	Player string
	// Logger receives run lifecycle messages. Nil discards them.
	Logger *log.Logger
	// HoldTicks is how long a key press counts as held.
	HoldTicks int
}

// Model is the Bubble Tea model for one player's game.
type Model struct {
	game       Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	player     string
	logger     *log.Logger
	keys       KeyMap
	held       *HeldInput
	help       help.Model
	gameState  core.GameState
	board      ScoreboardModel
	showBoard  bool
	quitting   bool
	scoreSaved bool // Whether the score has been saved for this game over
}

// helpRows is the space reserved under the game for the help bar.
const helpRows = 1

// NewModel creates a new Bubble Tea model for the given game.
// A nil store disables the leaderboard.
func NewModel(game Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return Model{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-helpRows, 1)),
		store:  store,
		config: cfg,
		player: opts.Player,
		logger: logger,
		keys:   DefaultKeyMap(),
		held:   NewHeldInput(opts.HoldTicks),
		help:   help.New(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Info("run started", "seed", m.config.Seed, "player", m.player)
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
	if key.Matches(msg, m.keys.ForceQuit) {
		m.quitting = true
		return m, tea.Quit
	}

	if m.showBoard {
		var cmd tea.Cmd
		m.board, cmd = m.board.Update(msg)
		if m.board.Closed() {
			m.showBoard = false
		}
		return m, cmd
	}

	if key.Matches(msg, m.keys.Leaderboard) && m.store != nil {
		m.board = NewScoreboardModel(m.store, m.config.ScreenW, m.config.ScreenH)
		m.showBoard = true
		m.held.Release()
		return m, nil
	}

	m.held.Press(m.keys.Action(msg))
	return m, nil
}

// handleResize keeps the game running; the renderer follows the player.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-helpRows, 1))
	m.help.Width = msg.Width

	if m.showBoard {
		m.board, _ = m.board.Update(msg)
	}
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.showBoard {
		// The leaderboard pauses the run without entering the paused state.
		return m, tickCmd(m.config.TickRate)
	}

	prev := m.gameState
	result := m.game.Step(m.held.Frame())
	m.gameState = result.State

	if m.gameState.Quit {
		m.logger.Info("player quit", "score", m.gameState.Score)
		m.quitting = true
		return m, tea.Quit
	}

	if prev.GameOver && !m.gameState.GameOver {
		m.logger.Info("run restarted")
		m.scoreSaved = false
	}

	// Save score on game over (once)
	if m.gameState.GameOver && !m.scoreSaved {
		m.saveScore()
		m.scoreSaved = true
	}

	return m, tickCmd(m.config.TickRate)
}

// framer is implemented by games that expose their frame counter.
type framer interface {
	Frames() int
}

func (m Model) saveScore() {
	m.logger.Info("game over", "score", m.gameState.Score)
	if m.store == nil || m.gameState.Score <= 0 {
		return
	}

	frames := 0
	if f, ok := m.game.(framer); ok {
		frames = f.Frames()
	}
	if _, err := m.store.SaveScore(m.player, m.gameState.Score, frames); err != nil {
		m.logger.Warn("could not save score", "error", err)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.showBoard {
		return m.board.View()
	}

	m.game.Render(m.screen)

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Quitting reports whether the model has asked the program to exit.
func (m Model) Quitting() bool {
	return m.quitting
}

// Run starts the Bubble Tea program with the given model.
func Run(game Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, store, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
