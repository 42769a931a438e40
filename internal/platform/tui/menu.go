package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/touch-breakout/internal/core"
	"github.com/vovakirdan/touch-breakout/internal/storage"
)

// HomeChoice is what the player picked on the home screen.
type HomeChoice int

const (
	HomeNone HomeChoice = iota
	HomeNewGame
	HomeJournal
	HomeQuit
)

// MenuItem represents a selectable home screen entry.
type MenuItem struct {
	Choice HomeChoice
	Title  string
}

var homeItems = []MenuItem{
	{Choice: HomeNewGame, Title: "New Game"},
	{Choice: HomeJournal, Title: "Journal"},
	{Choice: HomeQuit, Title: "Quit"},
}

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("208"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// MenuModel is the Bubble Tea model for the home screen.
type MenuModel struct {
	items     []MenuItem
	cursor    int
	width     int
	height    int
	store     *storage.Store
	config    core.RuntimeConfig
	keyMapper *KeyMapper
	quitting  bool
	selected  HomeChoice
}

// NewMenuModel creates a new home screen model.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	return MenuModel{
		items:     homeItems,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		store:     store,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		m.selected = HomeQuit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		m.choose(m.items[m.cursor].Choice)

	case MenuActionJournal:
		m.choose(HomeJournal)
	}

	return m, nil
}

// handleMouse selects an item on click. Items are drawn one per line
// starting at itemsTop.
func (m MenuModel) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	i := msg.Y - itemsTop
	if i >= 0 && i < len(m.items) {
		m.cursor = i
		m.choose(m.items[i].Choice)
	}
	return m, nil
}

func (m *MenuModel) choose(c HomeChoice) {
	m.selected = c
	if c == HomeQuit {
		m.quitting = true
	}
}

// itemsTop is the screen line of the first menu item in View.
const itemsTop = 6

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("B R E A K O U T"), m.width, len("B R E A K O U T")))
	b.WriteString("\n\n")

	subtitle := "Clear the wall. Keep the ball alive."
	b.WriteString(centerText(dimStyle.Render(subtitle), m.width, len(subtitle)))
	b.WriteString("\n\n\n")

	for i, item := range m.items {
		line := "  " + item.Title
		styled := line
		if i == m.cursor {
			line = "> " + item.Title
			styled = selectedStyle.Render(line)
		}
		b.WriteString(centerText(styled, m.width, len(line)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if summary := m.journalSummary(); summary != "" {
		b.WriteString(centerText(dimStyle.Render(summary), m.width, len(summary)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Select  |  Tab: Journal  |  Q: Quit"
	b.WriteString(centerText(controls, m.width, len(controls)))
	b.WriteString("\n")

	return b.String()
}

// journalSummary returns a one-line journal digest, or "" without a store.
func (m MenuModel) journalSummary() string {
	if m.store == nil {
		return ""
	}
	stats, err := m.store.GetStats()
	if err != nil || stats.Sessions == 0 {
		return ""
	}
	return fmt.Sprintf("%d sessions  |  %d boards cleared  |  %d bricks destroyed",
		stats.Sessions, stats.BoardsCleared, stats.BricksDestroyed)
}

// Selected returns the player's choice, or HomeNone.
func (m MenuModel) Selected() HomeChoice {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within the given width. visible is the printed
// length of text, which differs from len(text) once styles are applied.
func centerText(text string, width, visible int) string {
	if visible >= width {
		return text
	}
	padding := (width - visible) / 2
	return strings.Repeat(" ", padding) + text
}
