package chat

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"qajudge/cmd/qajudge/ui"
	"qajudge/internal/conversation"
	"qajudge/internal/markup"
)

// Placeholder strings applied at render time when the backend omitted a
// text field. The stored payload itself is never normalized.
const (
	noReasoning      = "No reasoning provided"
	noInterpretation = "No interpretation provided"
)

const scoreBarWidth = 20

// sectionOpen reports whether a record's section should render expanded.
type sectionOpen func(recordID int64, section conversation.Section) bool

func allOpen(int64, conversation.Section) bool { return true }

// renderHistory assembles the full transcript, newest record first.
func (m Model) renderHistory() string {
	all := m.store.All()
	if len(all) == 0 {
		return m.renderWelcome()
	}

	var sb strings.Builder
	for i, rec := range all {
		sb.WriteString(renderRecord(rec, m.disclosure.IsOpen, m.styles, i == m.selected))
		sb.WriteString("\n")
	}
	return sb.String()
}

func (m Model) renderWelcome() string {
	st := m.styles
	lines := []string{
		st.Title.Render("No evaluations yet"),
		st.Muted.Render("Ask a question to see the AI evaluation in action."),
		"",
		st.Bold.Render("Try these example questions:"),
		st.Muted.Render("  • How do I optimize React component performance?"),
		st.Muted.Render("  • Explain blockchain technology to a beginner"),
		st.Muted.Render("  • What are the latest advancements in AI?"),
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// RenderRecord renders one record with every section expanded. Used by the
// one-shot ask command, where there is no disclosure state to consult.
func RenderRecord(rec conversation.EvaluationRecord, st ui.Styles) string {
	return renderRecord(rec, allOpen, st, false)
}

// renderRecord composes the per-record card: question, formatted answer,
// and, when an evaluation exists, the verdict plus the disclosure
// sections.
func renderRecord(rec conversation.EvaluationRecord, open sectionOpen, st ui.Styles, selected bool) string {
	var sb strings.Builder

	marker := "  "
	questionStyle := st.Bold.Foreground(st.Theme.Primary)
	if selected {
		marker = st.Prompt.Render("▶ ")
	}
	sb.WriteString(marker + questionStyle.Render("Question") + "  " +
		st.Muted.Render(rec.CreatedAt.Format("2006-01-02 15:04:05")) + "\n")
	sb.WriteString(st.Body.Render(rec.Question) + "\n\n")

	sb.WriteString(st.Bold.Foreground(st.Theme.Accent).Render("AI Answer") + "\n")
	sb.WriteString(ui.RenderMarkup(markup.Format(rec.Answer), st) + "\n")

	sb.WriteString(renderEvaluation(rec, open, st))

	return sb.String()
}

// renderEvaluation renders the verdict banner, the overall score, and the
// three collapsible sections. The record's evaluation may be nil: that is
// the partial-evaluation case and renders as the error verdict with no
// detail sections.
func renderEvaluation(rec conversation.EvaluationRecord, open sectionOpen, st ui.Styles) string {
	ev := rec.Evaluation
	if ev == nil {
		var sb strings.Builder
		sb.WriteString("\n" + st.Error.Render("⚠ Evaluation Error") + "\n")
		sb.WriteString(st.Muted.Render("Could not complete the evaluation") + "\n")
		return sb.String()
	}

	var sb strings.Builder
	sb.WriteString("\n")

	switch ev.Quality {
	case conversation.QualityGood:
		sb.WriteString(st.Success.Render("✓ High Quality Answer") + "\n")
		sb.WriteString(st.Muted.Render("This answer meets high standards for accuracy and usefulness") + "\n")
	case conversation.QualityBad:
		sb.WriteString(st.Warning.Render("⚠ Low Quality Answer") + "\n")
		sb.WriteString(st.Muted.Render("This answer needs improvement in several areas") + "\n")
	default:
		sb.WriteString(st.Error.Render("⚠ Evaluation Error") + "\n")
		sb.WriteString(st.Muted.Render("Could not complete the evaluation") + "\n")
	}

	sb.WriteString(st.Bold.Render("Overall Score") + "  " + ui.ScoreBar(ev.Score, 10, scoreBarWidth, st) + "\n")

	sb.WriteString(renderJudgeSection(rec, ev, open, st))
	if ev.MetricsSummary != nil {
		sb.WriteString(renderMetricsSection(rec, ev.MetricsSummary, open, st))
	}
	sb.WriteString(renderAnalysisSection(rec, ev, open, st))

	return sb.String()
}

func sectionHeader(title, hotkey string, isOpen bool, st ui.Styles) string {
	indicator := "[+]"
	if isOpen {
		indicator = "[-]"
	}
	return st.Muted.Render(indicator) + " " + st.Bold.Render(title) + " " +
		st.Muted.Render("("+hotkey+")") + "\n"
}

func renderJudgeSection(rec conversation.EvaluationRecord, ev *conversation.Evaluation, open sectionOpen, st ui.Styles) string {
	isOpen := open(rec.ID, conversation.SectionJudge)
	out := sectionHeader("LLM Judge Assessment", "Alt+J", isOpen, st)
	if !isOpen {
		return out
	}

	var sb strings.Builder
	sb.WriteString(out)

	reasoning := ev.Reasoning
	if reasoning == "" {
		reasoning = noReasoning
	}
	sb.WriteString("    " + st.Subtitle.Render("Evaluation Reasoning") + "\n")
	sb.WriteString("    " + st.Body.Render(reasoning) + "\n")

	grid := []struct {
		label string
		value float64
	}{
		{"Content Depth", ev.ContentDepth},
		{"Clarity", ev.Clarity},
		{"Actionability", ev.Actionability},
		{"Comprehensiveness", ev.Comprehensiveness},
	}
	for _, row := range grid {
		sb.WriteString("    " + padLabel(row.label) + ui.ScoreBar(row.value, 10, scoreBarWidth, st) + "\n")
	}
	return sb.String()
}

func renderMetricsSection(rec conversation.EvaluationRecord, ms *conversation.MetricsSummary, open sectionOpen, st ui.Styles) string {
	isOpen := open(rec.ID, conversation.SectionMetrics)
	out := sectionHeader("Objective NLP Metrics", "Alt+M", isOpen, st)
	if !isOpen {
		return out
	}

	var sb strings.Builder
	sb.WriteString(out)

	gauges := []struct {
		label string
		value float64
	}{
		{"ROUGE-1", ms.Rouge1FMeasure},
		{"ROUGE-L", ms.RougeLFMeasure},
		{"BLEU", ms.BleuScore},
		{"Similarity", ms.OverallSimilarity},
	}
	for _, g := range gauges {
		sb.WriteString("    " + ui.MetricGauge(g.value, g.label, st) + "\n")
	}

	interpretation := ms.Interpretation
	if interpretation == "" {
		interpretation = noInterpretation
	}
	sb.WriteString("    " + st.Subtitle.Render("Interpretation") + "\n")
	sb.WriteString("    " + st.Body.Render(interpretation) + "\n")
	return sb.String()
}

func renderAnalysisSection(rec conversation.EvaluationRecord, ev *conversation.Evaluation, open sectionOpen, st ui.Styles) string {
	isOpen := open(rec.ID, conversation.SectionAnalysis)
	out := sectionHeader("Strengths & Improvements", "Alt+A", isOpen, st)
	if !isOpen {
		return out
	}

	var sb strings.Builder
	sb.WriteString(out)

	if len(ev.Strengths) > 0 {
		sb.WriteString("    " + st.Success.Render("Identified Strengths") + "\n")
		for _, s := range ev.Strengths {
			sb.WriteString("      • " + st.Body.Render(s) + "\n")
		}
	}
	if len(ev.MissingElements) > 0 {
		sb.WriteString("    " + st.Warning.Render("Suggested Improvements") + "\n")
		for _, s := range ev.MissingElements {
			sb.WriteString("      • " + st.Body.Render(s) + "\n")
		}
	}
	return sb.String()
}

func padLabel(label string) string {
	const width = 19
	if len(label) >= width {
		return label + " "
	}
	return label + strings.Repeat(" ", width-len(label))
}
