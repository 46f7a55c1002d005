// Package dashboard provides the Bubble Tea progress dashboard.
package dashboard

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/spellsan/spellsan/internal/model"
	"github.com/spellsan/spellsan/internal/report"
	"github.com/spellsan/spellsan/internal/store"
)

const (
	tabOverview = iota
	tabLetters
	tabSessions
)

var (
	activeNavStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F0F0F0")).
			Bold(true).
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#C89A3A"))
	inactiveNavStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#B0B0B0")).
				Padding(0, 1).
				Border(lipgloss.RoundedBorder(), true).
				BorderForeground(lipgloss.Color("#4A4A4A"))
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
)

type refreshMsg struct{}

// Model implements the Bubble Tea progress dashboard. It subscribes to the
// store and refreshes whenever progress is saved elsewhere in the process.
type Model struct {
	store   *store.Store
	corpus  []string
	updates chan struct{}

	rep report.Report

	tabs      []string
	activeTab int
	viewports []viewport.Model
	sessions  table.Model

	width  int
	height int
}

// NewModel constructs a dashboard model.
func NewModel(st *store.Store, corpus []string) *Model {
	m := &Model{
		store:   st,
		corpus:  corpus,
		updates: st.Subscribe(),
		tabs:    []string{"Overview", "Letters", "Sessions"},
	}
	m.viewports = []viewport.Model{viewport.New(0, 0), viewport.New(0, 0)}
	m.sessions = table.New(
		table.WithColumns(sessionColumns(0)),
		table.WithFocused(true),
	)
	m.refresh()
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return m.waitForUpdate()
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		m.renderTabs()
		return m, nil
	case refreshMsg:
		m.refresh()
		return m, m.waitForUpdate()
	case tea.KeyMsg:
		switch {
		case msg.Type == tea.KeyCtrlC || msg.String() == "q":
			m.store.Unsubscribe(m.updates)
			return m, tea.Quit
		case msg.String() == "tab" || msg.String() == "right" || msg.String() == "l":
			m.activeTab = (m.activeTab + 1) % len(m.tabs)
			return m, nil
		case msg.String() == "shift+tab" || msg.String() == "left" || msg.String() == "h":
			m.activeTab = (m.activeTab + len(m.tabs) - 1) % len(m.tabs)
			return m, nil
		case msg.String() == "r":
			m.refresh()
			return m, nil
		}
		return m.forwardKey(msg)
	default:
		return m, nil
	}
}

// View implements tea.Model.
func (m *Model) View() string {
	nav := m.renderNav()
	var body string
	switch m.activeTab {
	case tabSessions:
		body = m.sessions.View()
	default:
		body = m.viewports[m.activeTab].View()
	}
	help := headerStyle.Render("tab: switch  r: refresh  q: quit")
	return nav + "\n" + body + "\n" + help
}

func (m *Model) forwardKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	if m.activeTab == tabSessions {
		m.sessions, cmd = m.sessions.Update(msg)
		return m, cmd
	}
	m.viewports[m.activeTab], cmd = m.viewports[m.activeTab].Update(msg)
	return m, cmd
}

// refresh reloads the record and re-renders every tab.
func (m *Model) refresh() {
	record := m.store.Load(context.Background())
	m.rep = report.Build(record, m.corpus)
	m.renderTabs()
}

func (m *Model) waitForUpdate() tea.Cmd {
	return func() tea.Msg {
		<-m.updates
		return refreshMsg{}
	}
}

func (m *Model) layout() {
	bodyHeight := m.height - 4
	if bodyHeight < 1 {
		bodyHeight = 1
	}
	width := m.width
	if width < 1 {
		width = 1
	}
	for i := range m.viewports {
		m.viewports[i].Width = width
		m.viewports[i].Height = bodyHeight
	}
	m.sessions.SetColumns(sessionColumns(width))
	m.sessions.SetHeight(bodyHeight)
}

func (m *Model) renderTabs() {
	var overview bytes.Buffer
	if err := report.RenderSummary(&overview, m.rep.Record); err != nil {
		overview.WriteString(fmt.Sprintf("render error: %v", err))
	}
	if err := report.RenderTrend(&overview, m.rep.Record, m.width); err != nil {
		overview.WriteString(fmt.Sprintf("render error: %v", err))
	}
	m.viewports[tabOverview].SetContent(overview.String())

	var letters bytes.Buffer
	if err := report.RenderLetterTable(&letters, m.rep.Letters); err != nil {
		letters.WriteString(fmt.Sprintf("render error: %v", err))
	}
	m.viewports[tabLetters].SetContent(letters.String())

	m.sessions.SetRows(sessionRows(m.rep.Record))
}

func (m *Model) renderNav() string {
	parts := make([]string, len(m.tabs))
	for i, tab := range m.tabs {
		if i == m.activeTab {
			parts[i] = activeNavStyle.Render(tab)
		} else {
			parts[i] = inactiveNavStyle.Render(tab)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func sessionColumns(width int) []table.Column {
	dateWidth := 16
	modeWidth := 14
	numWidth := 8
	if width > 0 {
		remaining := width - dateWidth - modeWidth - 4*numWidth - 6
		if remaining > 0 {
			modeWidth += remaining
		}
	}
	return []table.Column{
		{Title: "Date", Width: dateWidth},
		{Title: "Mode", Width: modeWidth},
		{Title: "Words", Width: numWidth},
		{Title: "Correct", Width: numWidth},
		{Title: "Accuracy", Width: numWidth},
		{Title: "Minutes", Width: numWidth},
	}
}

func sessionRows(record model.Record) []table.Row {
	history := record.SessionHistory
	rows := make([]table.Row, 0, len(history))
	for i := len(history) - 1; i >= 0; i-- {
		s := history[i]
		mode := string(s.Mode)
		if s.Mode == model.ModeAlphabet && s.Alphabet != "" {
			mode = fmt.Sprintf("%s (%s)", mode, strings.ToUpper(s.Alphabet))
		}
		rows = append(rows, table.Row{
			s.Date.Local().Format("2006-01-02 15:04"),
			mode,
			fmt.Sprintf("%d", s.WordsAttempted),
			fmt.Sprintf("%d", s.CorrectAnswers),
			fmt.Sprintf("%d%%", s.Accuracy),
			fmt.Sprintf("%d", s.Duration),
		})
	}
	return rows
}
