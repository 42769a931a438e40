package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/touch-breakout/internal/storage"
)

// Journal layout constants
const (
	maxSessions    = 100 // Max sessions to load
	journalChrome  = 8   // Lines used by title, stats, help, and borders
	minTableHeight = 3
)

// JournalKeyMap defines the key bindings for the journal viewer.
type JournalKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Open   key.Binding
	Back   key.Binding
	Reload key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k JournalKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Open, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k JournalKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Open},
		{k.Reload, k.Back, k.Quit},
	}
}

// DefaultJournalKeyMap returns default key bindings.
func DefaultJournalKeyMap() JournalKeyMap {
	return JournalKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "events"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Reload: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "reload"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// JournalModel is the Bubble Tea model for the session journal. It lists
// recent sessions; Enter drills into one session's events.
type JournalModel struct {
	store    *storage.Store
	sessions []storage.SessionRecord
	events   []storage.EventRecord
	stats    *storage.Stats
	loadErr  error

	// detail is the session whose events are shown; empty in list mode.
	detail string

	table     table.Model
	help      help.Model
	keys      JournalKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewJournalModel creates a new journal viewer.
func NewJournalModel(store *storage.Store, width, height int) JournalModel {
	h := help.New()
	h.ShowAll = false
	h.Width = width

	m := JournalModel{
		store:  store,
		keys:   DefaultJournalKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.loadSessions()
	return m
}

func (m JournalModel) tableHeight() int {
	return max(m.height-journalChrome, minTableHeight)
}

// createTable creates the table for the current mode.
func (m *JournalModel) createTable() table.Model {
	var columns []table.Column
	if m.detail == "" {
		columns = []table.Column{
			{Title: "Started", Width: 14},
			{Title: "Source", Width: 9},
			{Title: "Outcome", Width: 10},
			{Title: "Score", Width: 6},
			{Title: "Bricks", Width: 7},
			{Title: "Grid", Width: 6},
		}
	} else {
		columns = []table.Column{
			{Title: "#", Width: 5},
			{Title: "Tick", Width: 8},
			{Title: "Event", Width: 16},
			{Title: "Detail", Width: 14},
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(m.tableHeight()),
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

// loadSessions loads recent sessions and the journal totals.
func (m *JournalModel) loadSessions() {
	m.sessions, m.stats, m.loadErr = nil, nil, nil
	if m.store != nil {
		m.sessions, m.loadErr = m.store.RecentSessions(maxSessions)
		if m.loadErr == nil {
			m.stats, m.loadErr = m.store.GetStats()
		}
	}
	m.updateTableRows()
}

// loadEvents loads the events of one session.
func (m *JournalModel) loadEvents(sessionID string) {
	m.events, m.loadErr = m.store.SessionEvents(sessionID)
	m.updateTableRows()
}

// updateTableRows fills the table for the current mode.
func (m *JournalModel) updateTableRows() {
	var rows []table.Row
	if m.detail == "" {
		rows = make([]table.Row, len(m.sessions))
		for i, s := range m.sessions {
			rows[i] = table.Row{
				s.StartedAt.Format("Jan 02 15:04"),
				s.Source,
				s.Outcome,
				fmt.Sprintf("%d", s.FinalScore),
				fmt.Sprintf("%d", s.BricksDestroyed),
				fmt.Sprintf("%dx%d", s.Rows, s.Cols),
			}
		}
	} else {
		rows = make([]table.Row, len(m.events))
		for i, ev := range m.events {
			rows[i] = table.Row{
				fmt.Sprintf("%d", ev.Seq),
				fmt.Sprintf("%d", ev.Tick),
				ev.Kind,
				eventDetail(ev),
			}
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

func eventDetail(ev storage.EventRecord) string {
	switch ev.Kind {
	case storage.KindBrickDestroyed:
		return fmt.Sprintf("row %d col %d", ev.Row, ev.Col)
	case storage.KindLifeLost:
		return fmt.Sprintf("%d lives left", ev.Value)
	default:
		return fmt.Sprintf("score %d", ev.Value)
	}
}

// Init initializes the journal model.
func (m JournalModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the journal.
func (m JournalModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, nil

		case key.Matches(msg, m.keys.Back):
			if m.detail != "" {
				m.detail = ""
				m.table = m.createTable()
				m.updateTableRows()
				return m, nil
			}
			m.goingBack = true
			return m, nil

		case key.Matches(msg, m.keys.Open):
			if m.detail == "" && m.store != nil && len(m.sessions) > 0 {
				m.detail = m.sessions[m.table.Cursor()].ID
				m.table = m.createTable()
				m.loadEvents(m.detail)
			}
			return m, nil

		case key.Matches(msg, m.keys.Reload):
			if m.detail == "" {
				m.loadSessions()
			} else {
				m.loadEvents(m.detail)
			}
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the journal.
func (m JournalModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	title := "JOURNAL"
	if m.detail != "" {
		title = "JOURNAL - " + shortID(m.detail)
	}
	b.WriteString(centerText(titleStyle.Render(title), m.width, len(title)))
	b.WriteString("\n\n")

	if m.stats != nil && m.detail == "" {
		line := fmt.Sprintf("%d sessions  |  %d game over  |  %d cleared  |  %d abandoned",
			m.stats.Sessions, m.stats.GamesOver, m.stats.BoardsCleared, m.stats.Abandoned)
		b.WriteString(centerText(dimStyle.Render(line), m.width, len(line)))
		b.WriteString("\n")
	}

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(tableStyle.Render(m.renderTableContent()))

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderTableContent renders the table or an explanatory message.
func (m JournalModel) renderTableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)

	switch {
	case m.store == nil:
		return emptyStyle.Render("The journal is disabled.")
	case m.loadErr != nil:
		return emptyStyle.Render("Could not read the journal:\n" + m.loadErr.Error())
	case m.detail == "" && len(m.sessions) == 0:
		return emptyStyle.Render("No sessions recorded yet.\nPlay a game to start the journal!")
	case m.detail != "" && len(m.events) == 0:
		return emptyStyle.Render("This session has no events.")
	}

	return m.table.View()
}

// shortID trims a UUID to its first block for display.
func shortID(id string) string {
	if i := strings.IndexByte(id, '-'); i > 0 {
		return id[:i]
	}
	return id
}

// IsGoingBack returns true if user wants to go back to the home screen.
func (m JournalModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m JournalModel) IsQuitting() bool {
	return m.quitting
}

// RunJournal runs the journal viewer as its own program.
func RunJournal(store *storage.Store, width, height int) error {
	p := tea.NewProgram(
		journalProgram{NewJournalModel(store, width, height)},
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}

// journalProgram quits the program when the embedded viewer is done.
type journalProgram struct {
	JournalModel
}

func (p journalProgram) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := p.JournalModel.Update(msg)
	if jm, ok := next.(JournalModel); ok {
		p.JournalModel = jm
	}
	if p.IsQuitting() || p.IsGoingBack() {
		return p, tea.Quit
	}
	return p, cmd
}
