// Package tui provides the Bubble Tea practice interface.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/spellsan/spellsan/internal/model"
	"github.com/spellsan/spellsan/internal/progress"
	"github.com/spellsan/spellsan/internal/scramble"
)

const feedbackDelay = 2 * time.Second

type phase int

const (
	phaseAsking phase = iota
	phaseFeedback
	phaseComplete
)

type countdownMsg struct{}

type autosaveMsg struct{}

type advanceMsg struct{}

var (
	titleStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	scrambledStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)
	correctStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#52C41A"))
	incorrectStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	timerStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	urgentStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F")).Bold(true)
	footerStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
)

// Model implements the Bubble Tea practice UI.
type Model struct {
	cfg       model.Config
	tracker   *progress.Tracker
	scrambler *scramble.Scrambler

	sessionID string
	startTime time.Time
	words     []string
	index     int
	scrambled string
	input     textinput.Model
	timeLeft  int
	phase     phase
	feedback  string
	lastWrong bool

	wordsCorrect   []string
	wordsIncorrect []string

	record model.Record

	width  int
	height int
}

// NewModel constructs a practice TUI model and marks the session as started.
func NewModel(cfg model.Config, tracker *progress.Tracker, scrambler *scramble.Scrambler, words []string) *Model {
	input := textinput.New()
	input.Placeholder = "type the word"
	input.CharLimit = 64
	input.Focus()

	m := &Model{
		cfg:       cfg,
		tracker:   tracker,
		scrambler: scrambler,
		words:     words,
		input:     input,
		startTime: time.Now(),
	}
	m.sessionID = tracker.StartSession(context.Background())
	m.record = tracker.Load(context.Background())
	m.presentWord()
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.scheduleCountdown(), m.scheduleAutosave())
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case countdownMsg:
		return m.handleCountdown()
	case autosaveMsg:
		if m.phase != phaseComplete {
			m.finalize()
			return m, m.scheduleAutosave()
		}
		return m, nil
	case advanceMsg:
		if m.phase == phaseFeedback {
			m.nextWord()
			return m, m.scheduleCountdown()
		}
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	default:
		return m, nil
	}
}

// View implements tea.Model.
func (m *Model) View() string {
	var b strings.Builder
	if m.phase == phaseComplete {
		b.WriteString(m.renderSummary())
	} else {
		b.WriteString(m.renderPrompt())
	}
	content := b.String()
	footer := footerStyle.Render(m.renderFooter())
	if m.width == 0 || m.height == 0 {
		return content + "\n" + footer
	}
	bodyHeight := m.height - 1
	body := lipgloss.Place(m.width, bodyHeight, lipgloss.Center, lipgloss.Center, content)
	footerLine := lipgloss.Place(m.width, 1, lipgloss.Center, lipgloss.Center, footer)
	return body + "\n" + footerLine
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		m.finalize()
		return m, tea.Quit
	case tea.KeyEnter:
		switch m.phase {
		case phaseAsking:
			m.submitAnswer()
			if m.phase == phaseFeedback {
				return m, m.scheduleAdvance()
			}
			return m, nil
		case phaseComplete:
			return m, tea.Quit
		default:
			return m, nil
		}
	default:
		if m.phase != phaseAsking {
			return m, nil
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
}

func (m *Model) handleCountdown() (tea.Model, tea.Cmd) {
	if m.phase != phaseAsking {
		return m, nil
	}
	m.timeLeft--
	if m.timeLeft > 0 {
		return m, m.scheduleCountdown()
	}
	// Out of time counts as a miss.
	m.recordOutcome(false)
	m.feedback = fmt.Sprintf("Time's up! The word was: %s", m.currentWord())
	m.lastWrong = true
	m.phase = phaseFeedback
	return m, m.scheduleAdvance()
}

func (m *Model) submitAnswer() {
	word := m.currentWord()
	guess := strings.TrimSpace(m.input.Value())
	if guess == "" {
		return
	}
	isCorrect := strings.EqualFold(guess, word)
	m.recordOutcome(isCorrect)
	if isCorrect {
		m.feedback = "Correct! Well done!"
		m.lastWrong = false
	} else {
		m.feedback = fmt.Sprintf("Incorrect. The correct spelling is: %s", word)
		m.lastWrong = true
	}
	m.phase = phaseFeedback
}

func (m *Model) recordOutcome(isCorrect bool) {
	word := m.currentWord()
	if isCorrect {
		m.wordsCorrect = model.AddWord(m.wordsCorrect, word)
	} else {
		m.wordsIncorrect = model.AddWord(m.wordsIncorrect, word)
	}
	m.record = m.tracker.RecordAnswer(context.Background(), word, isCorrect)
}

func (m *Model) nextWord() {
	m.index++
	if m.index >= len(m.words) {
		m.finalize()
		m.phase = phaseComplete
		return
	}
	m.presentWord()
}

func (m *Model) presentWord() {
	m.phase = phaseAsking
	m.feedback = ""
	m.timeLeft = m.cfg.TimerSeconds
	m.scrambled = m.scrambler.Scramble(m.currentWord())
	m.input.SetValue("")
	m.input.Focus()
}

func (m *Model) currentWord() string {
	if m.index >= len(m.words) {
		return ""
	}
	return m.words[m.index]
}

// finalize records the session under its fixed ID; repeated calls (autosave,
// completion, quit) update the same session record.
func (m *Model) finalize() {
	attempted := len(m.wordsCorrect) + len(m.wordsIncorrect)
	if attempted == 0 {
		return
	}
	m.record = m.tracker.RecordSession(context.Background(), model.Session{
		ID:             m.sessionID,
		Mode:           m.cfg.Mode,
		Alphabet:       m.cfg.Letter,
		WordsAttempted: attempted,
		CorrectAnswers: len(m.wordsCorrect),
		StartTime:      m.startTime,
		EndTime:        time.Now(),
		WordsCorrect:   m.wordsCorrect,
		WordsIncorrect: m.wordsIncorrect,
	})
}

func (m *Model) renderPrompt() string {
	var b strings.Builder
	title := "Unscramble and spell the word"
	if m.cfg.Mode == model.ModeAlphabet && m.cfg.Letter != "" {
		title = fmt.Sprintf("%s (letter %s)", title, strings.ToUpper(m.cfg.Letter))
	}
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n\n")
	b.WriteString(scrambledStyle.Render(spaceOut(m.scrambled)))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	if m.phase == phaseFeedback {
		style := correctStyle
		if m.lastWrong {
			style = incorrectStyle
		}
		b.WriteString(style.Render(m.feedback))
	} else {
		style := timerStyle
		if m.timeLeft <= 10 {
			style = urgentStyle
		}
		b.WriteString(style.Render(fmt.Sprintf("%ds remaining", m.timeLeft)))
	}
	return b.String()
}

func (m *Model) renderSummary() string {
	attempted := len(m.wordsCorrect) + len(m.wordsIncorrect)
	accuracy := model.RoundPct(len(m.wordsCorrect), attempted)
	lines := []string{
		titleStyle.Render("Session complete"),
		"",
		fmt.Sprintf("Words attempted: %d", attempted),
		fmt.Sprintf("Correct: %d", len(m.wordsCorrect)),
		fmt.Sprintf("Accuracy: %d%%", accuracy),
		fmt.Sprintf("Streak: %d day(s)", m.record.Streak),
		"",
		footerStyle.Render("Press Enter to exit"),
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderFooter() string {
	segments := []string{
		fmt.Sprintf("Word %d/%d", min(m.index+1, len(m.words)), len(m.words)),
		fmt.Sprintf("Correct %d", len(m.wordsCorrect)),
		fmt.Sprintf("Streak %d", m.record.Streak),
		fmt.Sprintf("Today %d", m.record.PracticeToday),
		fmt.Sprintf("Avg %d%%", m.record.AverageAccuracy),
	}
	return strings.Join(segments, "  ")
}

func (m *Model) scheduleCountdown() tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg { return countdownMsg{} })
}

func (m *Model) scheduleAutosave() tea.Cmd {
	interval := time.Duration(m.cfg.SaveSeconds) * time.Second
	if interval <= 0 {
		interval = 10 * time.Second
	}
	return tea.Tick(interval, func(time.Time) tea.Msg { return autosaveMsg{} })
}

func (m *Model) scheduleAdvance() tea.Cmd {
	return tea.Tick(feedbackDelay, func(time.Time) tea.Msg { return advanceMsg{} })
}

func spaceOut(word string) string {
	runes := []rune(word)
	parts := make([]string, len(runes))
	for i, r := range runes {
		parts[i] = string(r)
	}
	return strings.Join(parts, " ")
}
