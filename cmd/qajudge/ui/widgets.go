package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"qajudge/internal/score"
)

// TierColor maps a classifier tier to its display color.
func TierColor(t score.Tier) lipgloss.Color {
	switch t {
	case score.TierExcellent:
		return TierExcellentColor
	case score.TierGood:
		return TierGoodColor
	case score.TierAverage:
		return TierAverageColor
	default:
		return TierPoorColor
	}
}

// ScoreBar renders a horizontal bar for a score out of max, colored by
// tier, with the raw value alongside. Width is the bar width in cells.
func ScoreBar(value, max float64, width int, s Styles) string {
	if width < 4 {
		width = 4
	}
	pct, tier := score.Classify(value, max)
	filled := int(pct / 100 * float64(width))
	if filled < 0 {
		filled = 0
	}
	if filled > width {
		filled = width
	}

	fill := lipgloss.NewStyle().Foreground(TierColor(tier)).Render(strings.Repeat("█", filled))
	rest := s.Muted.Render(strings.Repeat("░", width-filled))
	label := s.Muted.Render(fmt.Sprintf(" %g/%g", value, max))
	return fill + rest + label
}

// MetricGauge renders a labelled percentage for a fraction in [0,1],
// colored by tier.
func MetricGauge(value float64, label string, s Styles) string {
	pct, tier := score.Classify(value, 1)
	pctStr := lipgloss.NewStyle().
		Foreground(TierColor(tier)).
		Bold(true).
		Render(fmt.Sprintf("%5.1f%%", pct))
	return fmt.Sprintf("%s %s", pctStr, s.Muted.Render(label))
}
