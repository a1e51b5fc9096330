// Package score classifies numeric quality scores into discrete tiers.
package score

// Tier is a discrete quality bucket derived from a percentage.
type Tier string

const (
	TierExcellent Tier = "excellent"
	TierGood      Tier = "good"
	TierAverage   Tier = "average"
	TierPoor      Tier = "poor"
)

// Classify normalizes value against max and buckets the result. Thresholds
// are evaluated high to low, first match wins: excellent >=70%, good >=50%,
// average >=30%, else poor. The same thresholds serve raw scores out of an
// explicit max (judge scores out of 10) and fractions already in [0,1]
// (NLP metrics, max=1). Callers guarantee max > 0.
func Classify(value, max float64) (float64, Tier) {
	pct := value / max * 100
	switch {
	case pct >= 70:
		return pct, TierExcellent
	case pct >= 50:
		return pct, TierGood
	case pct >= 30:
		return pct, TierAverage
	default:
		return pct, TierPoor
	}
}
