package chat

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"qajudge/internal/conversation"
)

const inputHeight = 3

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		taCmd tea.Cmd
		vpCmd tea.Cmd
		spCmd tea.Cmd
	)

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = msg.Width - 4
		m.viewport.Height = msg.Height - inputHeight - 7
		if m.viewport.Height < 3 {
			m.viewport.Height = 3
		}
		m.textarea.SetWidth(msg.Width - 4)
		m.ready = true
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			_ = m.log.Sync()
			return m, tea.Quit

		case "enter":
			return m.handleSubmit()

		case "tab":
			if n := m.store.Len(); n > 0 {
				m.selected = (m.selected + 1) % n
				m.refresh()
			}
			return m, nil

		case "shift+tab":
			if n := m.store.Len(); n > 0 {
				m.selected = (m.selected - 1 + n) % n
				m.refresh()
			}
			return m, nil

		case "alt+j":
			return m.toggleSection(conversation.SectionJudge), nil
		case "alt+m":
			return m.toggleSection(conversation.SectionMetrics), nil
		case "alt+a":
			return m.toggleSection(conversation.SectionAnalysis), nil

		case "pgup", "pgdown":
			m.viewport, vpCmd = m.viewport.Update(msg)
			return m, vpCmd

		case "up":
			if m.textarea.Value() == "" && len(m.inputHistory) > 0 {
				if m.historyIndex > 0 {
					m.historyIndex--
				}
				m.textarea.SetValue(m.inputHistory[m.historyIndex])
				return m, nil
			}

		case "down":
			if m.historyIndex < len(m.inputHistory) {
				m.historyIndex++
				if m.historyIndex == len(m.inputHistory) {
					m.textarea.Reset()
				} else {
					m.textarea.SetValue(m.inputHistory[m.historyIndex])
				}
				return m, nil
			}
		}

	case recordMsg:
		// Exactly one completion per submission clears the flag.
		m.isLoading = false
		m.errMsg = ""
		m.store.Prepend(*msg.rec)
		m.selected = 0
		m.textarea.Reset() // input cleared on success only
		m.refresh()
		m.viewport.GotoTop()
		return m, nil

	case submitErrMsg:
		m.isLoading = false
		m.errMsg = msg.err.Error()
		m.log.Warn("submission surfaced error", zap.String("session", m.sessionID))
		m.refresh()
		return m, nil

	case submitSkippedMsg:
		m.isLoading = false
		return m, nil

	case spinner.TickMsg:
		m.spinner, spCmd = m.spinner.Update(msg)
		return m, spCmd
	}

	m.textarea, taCmd = m.textarea.Update(msg)
	m.viewport, vpCmd = m.viewport.Update(msg)
	return m, tea.Batch(taCmd, vpCmd)
}

// handleSubmit validates the input and dispatches the evaluation request.
// Empty or whitespace-only input is silently ignored; a pending request
// blocks re-submission.
func (m Model) handleSubmit() (tea.Model, tea.Cmd) {
	if m.isLoading {
		return m, nil
	}

	input := strings.TrimSpace(m.textarea.Value())
	if input == "" {
		return m, nil
	}

	// New action replaces any visible error.
	m.errMsg = ""
	m.isLoading = true

	if len(m.inputHistory) == 0 || m.inputHistory[len(m.inputHistory)-1] != input {
		m.inputHistory = append(m.inputHistory, input)
	}
	m.historyIndex = len(m.inputHistory)

	m.refresh()
	return m, tea.Batch(m.spinner.Tick, m.submit(input))
}

func (m Model) toggleSection(section conversation.Section) Model {
	all := m.store.All()
	if m.selected < 0 || m.selected >= len(all) {
		return m
	}
	rec := all[m.selected]
	if rec.Evaluation == nil {
		return m
	}
	// Metrics can only be toggled when the record has metrics at all; the
	// section is omitted outright otherwise.
	if section == conversation.SectionMetrics && rec.Evaluation.MetricsSummary == nil {
		return m
	}
	m.disclosure.Toggle(rec.ID, section)
	m.refresh()
	return m
}

// refresh re-renders the history into the viewport.
func (m *Model) refresh() {
	m.viewport.SetContent(m.renderHistory())
}
