package chat

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	header := m.renderHeader()
	content := m.styles.Content.Render(m.viewport.View())

	inputStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.styles.Theme.Accent).
		Padding(0, 1)
	inputArea := inputStyle.Render(m.textarea.View())

	parts := []string{header}
	if m.errMsg != "" {
		parts = append(parts, m.styles.Error.Render("✗ "+m.errMsg))
	}
	parts = append(parts, content, inputArea, m.renderFooter())

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) renderHeader() string {
	title := m.styles.Header.Render(" qajudge ")
	badge := m.styles.Badge.Render("LLM-as-a-Judge")

	var status string
	if m.isLoading {
		status = lipgloss.JoinHorizontal(lipgloss.Center,
			m.spinner.View(), " ", m.styles.Muted.Render("Evaluating..."))
	} else {
		status = m.styles.Success.Render("Ready")
	}

	line := lipgloss.JoinHorizontal(lipgloss.Center, title, " ", badge, "  ", status)
	return lipgloss.JoinVertical(lipgloss.Left, line, m.styles.RenderDivider(m.width))
}

func (m Model) renderFooter() string {
	hotkeys := "Enter: evaluate | Tab: next card | Alt+J/M/A: judge/metrics/analysis | PgUp/PgDn: scroll | Esc: quit"
	timestamp := time.Now().Format("15:04")
	return m.styles.Footer.Render(fmt.Sprintf("%s | %s", timestamp, hotkeys))
}
