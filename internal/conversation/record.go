// Package conversation holds the session's evaluation history: the record
// data model, the append-at-head store, and per-record disclosure state.
package conversation

import "time"

// Quality is the backend's coarse verdict on an answer.
type Quality string

const (
	QualityGood Quality = "GOOD"
	QualityBad  Quality = "BAD"
)

// EvaluationRecord is one submitted question with its returned answer and
// optional evaluation. Records are immutable once created.
type EvaluationRecord struct {
	// ID is assigned at creation from the wall clock (unix millis).
	// Records are created serially from a single input flow, so this is
	// monotonic for the session.
	ID         int64
	Question   string
	Answer     string
	Evaluation *Evaluation
	CreatedAt  time.Time
}

// Evaluation is the structured judgment for an answer. A nil Evaluation on
// a record means the backend could not produce one; the presentation layer
// renders that as the error verdict tier. Numeric fields default to zero
// and text fields to placeholders at render time only — the wire payload is
// kept verbatim.
type Evaluation struct {
	Quality           Quality         `json:"quality"`
	Score             float64         `json:"score"`
	ContentDepth      float64         `json:"content_depth"`
	Clarity           float64         `json:"clarity"`
	Actionability     float64         `json:"actionability"`
	Comprehensiveness float64         `json:"comprehensiveness"`
	Reasoning         string          `json:"reasoning"`
	Strengths         []string        `json:"strengths"`
	MissingElements   []string        `json:"missing_elements"`
	MetricsSummary    *MetricsSummary `json:"metrics_summary"`
}

// MetricsSummary carries the objective NLP metrics, each a fraction in [0,1].
type MetricsSummary struct {
	Rouge1FMeasure    float64 `json:"rouge1_fmeasure"`
	RougeLFMeasure    float64 `json:"rougeL_fmeasure"`
	BleuScore         float64 `json:"bleu_score"`
	OverallSimilarity float64 `json:"overall_similarity"`
	Interpretation    string  `json:"interpretation"`
}
