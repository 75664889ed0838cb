// Package tui renders the interactive focus-session countdown and the
// session stats chart.
package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// SessionDuration is the length of one focus session.
const SessionDuration = 25 * time.Minute

// Outcome reports how a focus session ended.
type Outcome int

const (
	OutcomeCompleted Outcome = iota
	OutcomeCancelled
)

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

type sessionModel struct {
	description string
	remaining   time.Duration
	sessionEnd  time.Time
	outcome     Outcome
	finished    bool
}

func newSessionModel(description string) sessionModel {
	return sessionModel{
		description: description,
		remaining:   SessionDuration,
		sessionEnd:  time.Now().Add(SessionDuration),
	}
}

func (m sessionModel) Init() tea.Cmd {
	return tea.Batch(tick(), m.windowTitle())
}

func (m sessionModel) windowTitle() tea.Cmd {
	return tea.SetWindowTitle(fmt.Sprintf("🍅 %s - %s", formatCountdown(m.remaining), m.description))
}

func (m sessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		m.remaining = time.Until(m.sessionEnd)
		if m.remaining <= 0 {
			m.remaining = 0
			m.finished = true
			m.outcome = OutcomeCompleted
			return m, tea.Sequence(tea.SetWindowTitle(""), tea.Quit)
		}
		return m, tea.Batch(tick(), m.windowTitle())

	case tea.KeyMsg:
		if key.Matches(msg, keys.Stop) || key.Matches(msg, keys.Quit) {
			m.finished = true
			m.outcome = OutcomeCancelled
			return m, tea.Sequence(tea.SetWindowTitle(""), tea.Quit)
		}
	}
	return m, nil
}

func (m sessionModel) View() string {
	if m.finished {
		return ""
	}
	countdown := timerStyle.Render(formatCountdown(m.remaining))
	desc := titleStyle.Render(m.description)
	help := mutedStyle.Render("x: cancel")

	return panelStyle.Render(
		lipgloss.JoinVertical(lipgloss.Center, countdown, desc, "", help),
	)
}

func formatCountdown(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	m := int(d.Minutes())
	s := int(d.Seconds()) % 60
	return fmt.Sprintf("%02d:%02d", m, s)
}

// RunSession runs the countdown for the given task until it finishes or
// the user cancels. It holds no state of its own; recording the outcome is
// the caller's job.
func RunSession(description string) (Outcome, error) {
	p := tea.NewProgram(newSessionModel(description))
	out, err := p.Run()
	if err != nil {
		return OutcomeCancelled, fmt.Errorf("run session: %w", err)
	}
	m, ok := out.(sessionModel)
	if !ok || !m.finished {
		return OutcomeCancelled, nil
	}
	return m.outcome, nil
}
