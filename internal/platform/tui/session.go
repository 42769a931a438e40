package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/touch-breakout/internal/core"
)

// screenID names the screen a session is showing.
type screenID int

const (
	screenHome screenID = iota
	screenGame
	screenJournal
)

// SessionModel manages the full terminal flow: home -> game -> home and
// home -> journal -> home. It is the top-level model for local play and
// for every SSH connection.
type SessionModel struct {
	env      Env
	config   core.RuntimeConfig
	current  screenID
	menu     MenuModel
	game     *GameModel
	journal  *JournalModel
	quitting bool
}

// NewSessionModel creates a new session on the home screen.
func NewSessionModel(env Env, cfg core.RuntimeConfig) SessionModel {
	return SessionModel{
		env:    env,
		config: cfg,
		menu:   NewMenuModel(env.Store, cfg),
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

	switch m.current {
	case screenGame:
		return m.updateGame(msg)
	case screenJournal:
		return m.updateJournal(msg)
	default:
		return m.updateMenu(msg)
	}
}

// updateMenu handles updates on the home screen.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	switch m.menu.Selected() {
	case HomeQuit:
		m.quitting = true
		return m, tea.Quit

	case HomeNewGame:
		gameModel, err := NewGameModel(m.env, m.config)
		if err != nil {
			m.env.logger().Error("could not start game", "error", err)
			m.menu = NewMenuModel(m.env.Store, m.config)
			return m, nil
		}
		m.game = &gameModel
		m.current = screenGame
		return m, m.game.Init()

	case HomeJournal:
		journal := NewJournalModel(m.env.Store, m.config.ScreenW, m.config.ScreenH)
		m.journal = &journal
		m.current = screenJournal
		return m, m.journal.Init()
	}

	return m, cmd
}

// updateGame handles updates on the game screen.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.game.Update(msg)
	if gameModel, ok := newModel.(GameModel); ok {
		m.game = &gameModel
	}

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.game.BackToHome() {
		m.goHome()
		return m, m.menu.Init()
	}

	return m, cmd
}

// updateJournal handles updates on the journal screen.
func (m SessionModel) updateJournal(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.journal.Update(msg)
	if journal, ok := newModel.(JournalModel); ok {
		m.journal = &journal
	}

	if m.journal.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.journal.IsGoingBack() {
		m.goHome()
		return m, m.menu.Init()
	}

	return m, cmd
}

func (m *SessionModel) goHome() {
	m.current = screenHome
	m.game = nil
	m.journal = nil
	m.menu = NewMenuModel(m.env.Store, m.config)
}

// View renders the current screen.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.current {
	case screenGame:
		return m.game.View()
	case screenJournal:
		return m.journal.View()
	default:
		return m.menu.View()
	}
}

// Shutdown abandons an unfinished game. Hosts call it when the program
// ends without the player quitting, e.g. a dropped SSH connection.
func (m SessionModel) Shutdown() {
	if m.game != nil {
		m.game.abandon()
		m.game.game.StopGame()
	}
}

// Run starts a local terminal session and blocks until the player quits.
func Run(env Env, cfg core.RuntimeConfig) error {
	p := tea.NewProgram(
		NewSessionModel(env, cfg),
		tea.WithAltScreen(),      // Use alternate screen buffer
		tea.WithMouseAllMotion(), // Pointer motion drives the paddle
	)

	final, err := p.Run()
	if sm, ok := final.(SessionModel); ok {
		sm.Shutdown()
	}
	return err
}
