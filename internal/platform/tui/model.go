package tui

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/touch-breakout/internal/config"
	"github.com/vovakirdan/touch-breakout/internal/core"
	"github.com/vovakirdan/touch-breakout/internal/games/breakout"
	"github.com/vovakirdan/touch-breakout/internal/storage"
)

// Env is shared by every screen of one terminal session.
type Env struct {
	Config config.BreakoutConfig
	Store  *storage.Store // Nil disables the journal
	Logger *log.Logger
	Source string // Journal source tag: terminal, ssh
}

func (e Env) logger() *log.Logger {
	if e.Logger == nil {
		return log.New(io.Discard)
	}
	return e.Logger
}

// GameModel is the Bubble Tea model for the game screen. It owns the game
// loop and drives it with a tea.Tick chain.
type GameModel struct {
	game      *breakout.Game
	ticks     *tickChain
	recorder  *storage.Recorder
	logger    *log.Logger
	screen    *core.Screen
	config    core.RuntimeConfig
	keyMapper *KeyMapper
	frame     core.InputFrame

	paused     bool
	quitting   bool
	backToHome bool
}

// NewGameModel creates the game screen and starts a session.
func NewGameModel(env Env, cfg core.RuntimeConfig) (GameModel, error) {
	logger := env.logger()
	if cfg.TickRate <= 0 {
		cfg.TickRate = env.Config.Physics.TickRate
	}

	ticks := newTickChain(cfg.TickRate)
	listeners := []breakout.Listener{breakout.LogListener(logger)}

	var recorder *storage.Recorder
	if env.Store != nil {
		recorder = storage.NewRecorder(env.Store, logger, env.Source)
		listeners = append(listeners, recorder)
	}

	game := breakout.New(env.Config,
		breakout.WithTickSource(ticks),
		breakout.WithListener(breakout.Listeners(listeners...)),
	)

	m := GameModel{
		game:      game,
		ticks:     ticks,
		recorder:  recorder,
		logger:    logger,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:    cfg,
		keyMapper: NewKeyMapper(),
		frame:     core.NewInputFrame(),
	}
	if err := m.start(); err != nil {
		return GameModel{}, err
	}
	return m, nil
}

// start begins a new session and journals it.
func (m *GameModel) start() error {
	if err := m.game.Start(); err != nil {
		return fmt.Errorf("tui: cannot start game: %w", err)
	}
	m.paused = false
	m.frame.Clear()
	if m.recorder != nil {
		m.recorder.Begin(m.game)
	}
	m.logger.Info("game started", "session", m.game.Session().ID)
	return nil
}

// abandon closes an unfinished session in the journal.
func (m *GameModel) abandon() {
	if m.recorder != nil {
		m.recorder.Abandon()
	}
}

// Init issues the first tick of the session started in NewGameModel.
func (m GameModel) Init() tea.Cmd {
	return m.ticks.pending()
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.abandon()
		m.game.StopGame()
		m.quitting = true
		return m, tea.Quit
	}

	running := m.game.Phase() == breakout.PhaseRunning

	switch action {
	case core.ActionLeft, core.ActionRight:
		if running && !m.paused {
			m.frame.Set(action)
		}

	case core.ActionPause:
		if running {
			m.paused = !m.paused
			if m.paused {
				m.ticks.Stop()
			} else {
				m.ticks.Start()
			}
			return m, m.ticks.pending()
		}

	case core.ActionRestart, core.ActionConfirm:
		if !running {
			if err := m.start(); err != nil {
				m.logger.Error("could not restart", "error", err)
			}
			return m, m.ticks.pending()
		}

	case core.ActionBack:
		if !running || m.paused {
			m.abandon()
			m.game.StopGame()
			m.backToHome = true
		}
	}

	return m, nil
}

// handleMouse turns pointer motion into a paddle drag. The cell column is
// mapped to the center of its span in playfield units.
func (m GameModel) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.paused || m.game.Phase() != breakout.PhaseRunning || m.screen.Width() <= 0 {
		return m, nil
	}

	switch msg.Action {
	case tea.MouseActionMotion, tea.MouseActionPress:
		m.frame.Drag(m.cellToField(msg.X))
	}
	return m, nil
}

func (m GameModel) cellToField(x int) float64 {
	return (float64(x) + 0.5) * m.game.Geometry().ScreenW / float64(m.screen.Width())
}

// handleTick processes simulation ticks.
func (m GameModel) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if !m.ticks.accept(msg) {
		return m, nil
	}

	m.game.Tick(m.frame)
	m.frame.Clear()

	// The game stops the chain itself when the session ends
	return m, m.ticks.next()
}

// View renders the game.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	if m.paused {
		drawPaused(m.screen)
	}
	return RenderScreen(m.screen)
}

// Game returns the underlying game loop.
func (m GameModel) Game() *breakout.Game {
	return m.game
}

// Paused reports whether the game is paused.
func (m GameModel) Paused() bool {
	return m.paused
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToHome returns true if user requested to go back to the home screen.
func (m GameModel) BackToHome() bool {
	return m.backToHome
}

// Config returns the current runtime config (may have been updated by resize).
func (m GameModel) Config() core.RuntimeConfig {
	return m.config
}
