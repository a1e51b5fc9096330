package ui

import (
	"strings"
	"testing"

	"qajudge/internal/score"
)

func TestScoreBar(t *testing.T) {
	styles := DefaultStyles()
	bar := ScoreBar(8, 10, 10, styles)

	t.Logf("bar:\n%q", bar)

	if !strings.Contains(bar, "8/10") {
		t.Error("bar missing value label")
	}
	if strings.Count(bar, "█") != 8 {
		t.Errorf("expected 8 filled cells, got %d", strings.Count(bar, "█"))
	}
	if strings.Count(bar, "░") != 2 {
		t.Errorf("expected 2 empty cells, got %d", strings.Count(bar, "░"))
	}
}

func TestScoreBar_Zero(t *testing.T) {
	bar := ScoreBar(0, 10, 10, DefaultStyles())
	if strings.Contains(bar, "█") {
		t.Error("zero score should have no filled cells")
	}
}

func TestMetricGauge(t *testing.T) {
	out := MetricGauge(0.715, "ROUGE-1", DefaultStyles())
	if !strings.Contains(out, "71.5%") {
		t.Errorf("gauge missing percentage: %q", out)
	}
	if !strings.Contains(out, "ROUGE-1") {
		t.Error("gauge missing label")
	}
}

func TestTierColor_CoversAllTiers(t *testing.T) {
	tiers := []score.Tier{score.TierExcellent, score.TierGood, score.TierAverage, score.TierPoor}
	seen := map[string]bool{}
	for _, tier := range tiers {
		seen[string(TierColor(tier))] = true
	}
	if len(seen) != 4 {
		t.Errorf("expected 4 distinct tier colors, got %d", len(seen))
	}
}
