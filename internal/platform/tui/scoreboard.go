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

	"github.com/vovakirdan/cookie-crunch/internal/games/crunch"
	"github.com/vovakirdan/cookie-crunch/internal/games/crunch/levels"
	"github.com/vovakirdan/cookie-crunch/internal/storage"
)

const (
	minWidthForSidebar = 80 // Narrower terminals get a tab strip instead
	sidebarWidth       = 28
	maxScores          = 100 // Rows loaded per tab
)

var (
	boardTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	boardFrameStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	boardActiveStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	boardTabStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")).Padding(0, 1)
	boardEmptyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true).Padding(2, 4)
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	NextTab key.Binding
	PrevTab key.Binding
	Back    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextTab, k.PrevTab, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextTab, k.PrevTab},
		{k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab/→", "next level"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab/←", "prev level"),
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

// ScoreTab is one filter of the scoreboard: a game mode and optionally a level.
type ScoreTab struct {
	Title   string
	GameID  string
	LevelID string // Empty matches every level
}

// ScoreTabs lists the scoreboard filters for the given levels.
func ScoreTabs(lvls []levels.Level) []ScoreTab {
	tabs := make([]ScoreTab, 0, len(lvls)+2)
	tabs = append(tabs, ScoreTab{Title: "All levels", GameID: crunch.ID})
	for _, lvl := range lvls {
		tabs = append(tabs, ScoreTab{Title: lvl.Title(), GameID: crunch.ID, LevelID: lvl.ID})
	}
	tabs = append(tabs, ScoreTab{Title: "Endless", GameID: crunch.EndlessID})
	return tabs
}

// ScoreboardModel is the Bubble Tea model for the scoreboard screen.
type ScoreboardModel struct {
	tabs      []ScoreTab
	tabCursor int
	store     *storage.Store
	scores    []storage.ScoreEntry
	progress  map[string]storage.LevelProgress
	table     table.Model
	help      help.Model
	keys      ScoreboardKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewScoreboardModel creates a scoreboard with one tab per level plus the
// overall and endless tabs.
func NewScoreboardModel(store *storage.Store, lvls []levels.Level, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		tabs:   ScoreTabs(lvls),
		store:  store,
		keys:   DefaultScoreboardKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	if store != nil {
		// Missing progress only hides the cleared marks
		m.progress, _ = store.Progress()
	}

	m.table = m.newTable()
	m.loadScores()
	return m
}

func (m ScoreboardModel) wide() bool {
	return m.width >= minWidthForSidebar
}

func (m *ScoreboardModel) newTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Score", Width: 8},
		{Title: "Moves", Width: 6},
		{Title: "Level", Width: 10},
		{Title: "Date", Width: 14},
	}

	room := m.width - 4
	if m.wide() {
		room -= sidebarWidth + 3
	}
	if room > 54 {
		columns[3].Width = min(room-44, 20)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-9, 3)),
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

// loadScores reloads the rows of the current tab.
func (m *ScoreboardModel) loadScores() {
	m.scores = nil
	if m.store != nil {
		tab := m.tabs[m.tabCursor]
		if scores, err := m.store.TopScores(tab.GameID, tab.LevelID, maxScores); err == nil {
			m.scores = scores
		}
	}

	rows := make([]table.Row, len(m.scores))
	for i, s := range m.scores {
		level := s.LevelID
		if level == "" {
			level = "-"
		}
		rows[i] = table.Row{
			"#" + strconv.Itoa(i+1),
			strconv.Itoa(s.Score),
			strconv.Itoa(s.MovesUsed),
			level,
			s.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// summary describes the current tab: the best run and, for a level, whether
// it has been cleared.
func (m ScoreboardModel) summary() string {
	tab := m.tabs[m.tabCursor]
	if len(m.scores) == 0 {
		return ""
	}
	parts := []string{fmt.Sprintf("%d runs shown", len(m.scores)), fmt.Sprintf("best %d", m.scores[0].Score)}
	if tab.LevelID != "" && tab.GameID == crunch.ID {
		if m.progress[tab.LevelID].Cleared {
			parts = append(parts, "cleared")
		} else {
			parts = append(parts, "not cleared yet")
		}
	}
	return strings.Join(parts, "  ·  ")
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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

		case key.Matches(msg, m.keys.NextTab):
			m.tabCursor = (m.tabCursor + 1) % len(m.tabs)
			m.loadScores()
			return m, nil

		case key.Matches(msg, m.keys.PrevTab):
			m.tabCursor = (m.tabCursor + len(m.tabs) - 1) % len(m.tabs)
			m.loadScores()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.newTable()
		m.loadScores()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(boardTitleStyle.Render("HIGH SCORES - "+m.tabs[m.tabCursor].Title), m.width))
	b.WriteString("\n")
	b.WriteString(centerText(menuMutedStyle.Render(m.summary()), m.width))
	b.WriteString("\n\n")

	if m.wide() {
		b.WriteString(m.renderWide())
	} else {
		b.WriteString(m.renderNarrow())
	}

	b.WriteString("\n")
	b.WriteString(menuMutedStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// renderWide puts the tab list in a sidebar next to the table.
func (m ScoreboardModel) renderWide() string {
	var side strings.Builder
	side.WriteString("Levels\n")
	side.WriteString(strings.Repeat("-", sidebarWidth-4))
	side.WriteString("\n")

	for i, tab := range m.tabs {
		name := truncate(tab.Title, sidebarWidth-8)
		mark := " "
		if tab.LevelID != "" && m.progress[tab.LevelID].Cleared {
			mark = menuClearedStyle.Render("*")
		}
		if i == m.tabCursor {
			side.WriteString(boardActiveStyle.Render("> "+name) + " " + mark)
		} else {
			side.WriteString("  " + name + " " + mark)
		}
		side.WriteString("\n")
	}

	sidebar := boardFrameStyle.Width(sidebarWidth).Render(side.String())
	return lipgloss.JoinHorizontal(lipgloss.Top, sidebar, "  ", boardFrameStyle.Render(m.tableView()))
}

// renderNarrow puts a tab strip above the table.
func (m ScoreboardModel) renderNarrow() string {
	tabs := make([]string, len(m.tabs))
	for i, tab := range m.tabs {
		name := truncate(tab.Title, 10)
		if i == m.tabCursor {
			tabs[i] = boardTabStyle.Render(name)
		} else {
			tabs[i] = menuMutedStyle.Render(" " + name + " ")
		}
	}

	strip := strings.Join(tabs, " ")
	if lipgloss.Width(strip) > m.width-4 {
		strip = "< " + m.tabs[m.tabCursor].Title + " >"
	}
	return centerText(strip, m.width) + "\n\n" + centerText(boardFrameStyle.Render(m.tableView()), m.width)
}

func (m ScoreboardModel) tableView() string {
	if len(m.scores) == 0 {
		return boardEmptyStyle.Render("No scores recorded yet.\nFinish a level to set a high score!")
	}
	return m.table.View()
}

// truncate shortens s to at most n runes, marking the cut with a dot.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "."
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunScoreboard(store *storage.Store, lvls []levels.Level, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(NewScoreboardModel(store, lvls, width, height), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(ScoreboardModel)
	return ok && m.IsGoingBack(), nil
}
