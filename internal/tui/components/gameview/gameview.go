package gameview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"daydesk/internal/game"
	"daydesk/internal/storage"
)

var (
	wordStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true)

	goodStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("82"))

	badStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	timerLowStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)
)

type Model struct {
	store      storage.Provider
	difficulty game.Difficulty
	session    *game.Session
	input      textinput.Model
	feedback   string
	good       bool
}

func New(store storage.Provider) Model {
	ti := textinput.New()
	ti.Placeholder = "your guess"
	ti.CharLimit = 16

	return Model{
		store:      store,
		difficulty: game.Medium,
		input:      ti,
	}
}

func (m Model) Active() bool {
	return m.session != nil && m.session.Active
}

// Tick advances the round clock one second.
func (m *Model) Tick() {
	if m.session == nil || !m.session.Active {
		return
	}
	if !m.session.Tick() {
		m.feedback = "Time's up!"
		m.good = false
		m.input.Blur()
	}
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	if !m.Active() {
		switch keyMsg.String() {
		case "1":
			m.difficulty = game.Easy
		case "2":
			m.difficulty = game.Medium
		case "3":
			m.difficulty = game.Hard
		case "s", "enter":
			m.session = game.NewSession(m.store, m.difficulty)
			m.session.Start()
			m.feedback = ""
			m.input.SetValue("")
			return m, m.input.Focus()
		}
		return m, nil
	}

	switch keyMsg.String() {
	case "enter":
		result := m.session.Guess(m.input.Value())
		m.input.SetValue("")
		if result.Correct {
			m.feedback = fmt.Sprintf("Correct! +%d points", result.Points)
			m.good = true
		} else {
			m.feedback = "Not quite, try again."
			m.good = false
		}
		return m, nil
	case "ctrl+s":
		m.session.Skip()
		m.feedback = "Word skipped (-5s)"
		m.good = false
		return m, nil
	case "ctrl+l":
		m.feedback = fmt.Sprintf("Letters: %s (-3s)", m.session.LetterHint())
		m.good = true
		return m, nil
	case "esc":
		m.session.End()
		m.input.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	var b strings.Builder

	if !m.Active() {
		b.WriteString("Word Scramble\n\n")
		b.WriteString(fmt.Sprintf("Difficulty: %s  (press 1 easy, 2 medium, 3 hard)\n", m.difficulty))
		b.WriteString("Press s to start a 60 second round.\n\n")
		if m.session != nil {
			summary := m.session.Summary()
			b.WriteString(fmt.Sprintf("Last round: %d points, %d words\n\n", summary.Score, summary.WordsCompleted))
		}
		b.WriteString(m.viewHighScores())
		return b.String()
	}

	timer := fmt.Sprintf("%ds", m.session.TimeLeft)
	if m.session.TimeLeft <= 10 {
		timer = timerLowStyle.Render(timer)
	}
	b.WriteString(fmt.Sprintf("Time: %s   Score: %d   Words: %d\n\n",
		timer, m.session.Score, m.session.WordsCompleted))
	b.WriteString(wordStyle.Render(m.session.Word()))
	b.WriteString("\n")
	b.WriteString(hintStyle.Render("Hint: " + m.session.Hint()))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	if m.feedback != "" {
		if m.good {
			b.WriteString(goodStyle.Render(m.feedback))
		} else {
			b.WriteString(badStyle.Render(m.feedback))
		}
		b.WriteString("\n")
	}
	b.WriteString(hintStyle.Render("enter guess • ctrl+s skip • ctrl+l letter hint • esc end round"))
	return b.String()
}

func (m Model) viewHighScores() string {
	data := m.store.GetGameData()
	if len(data.HighScores) == 0 {
		return "No high scores yet."
	}

	var b strings.Builder
	b.WriteString("High scores:\n")
	for i, hs := range data.HighScores {
		if i >= 5 {
			break
		}
		b.WriteString(fmt.Sprintf("  %d. %d pts (%d words, %s)\n",
			i+1, hs.Score, hs.WordsCompleted, hs.Date.Format("Jan 2")))
	}
	return b.String()
}
