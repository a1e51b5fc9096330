package conversation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rec(id int64, question string) EvaluationRecord {
	return EvaluationRecord{
		ID:        id,
		Question:  question,
		CreatedAt: time.UnixMilli(id),
	}
}

func TestStore_PrependOrdering(t *testing.T) {
	s := NewStore()
	s.Prepend(rec(1, "Q1"))
	s.Prepend(rec(2, "Q2"))

	all := s.All()
	require.Len(t, all, 2)
	assert.Equal(t, "Q2", all[0].Question)
	assert.Equal(t, "Q1", all[1].Question)
}

func TestStore_Empty(t *testing.T) {
	s := NewStore()
	assert.Empty(t, s.All())
	assert.Equal(t, 0, s.Len())
}

func TestStore_AllIsStableSnapshot(t *testing.T) {
	s := NewStore()
	s.Prepend(rec(1, "Q1"))

	before := s.All()
	s.Prepend(rec(2, "Q2"))

	// The earlier snapshot is unaffected by later prepends.
	require.Len(t, before, 1)
	assert.Equal(t, "Q1", before[0].Question)
	assert.Equal(t, 2, s.Len())
}

func TestDisclosure_ToggleIsOwnInverse(t *testing.T) {
	d := NewDisclosure()
	assert.False(t, d.IsOpen(1, SectionJudge))

	d.Toggle(1, SectionJudge)
	assert.True(t, d.IsOpen(1, SectionJudge), "first toggle reveals")

	d.Toggle(1, SectionJudge)
	assert.False(t, d.IsOpen(1, SectionJudge), "second toggle restores")
}

func TestDisclosure_SectionsAreIndependent(t *testing.T) {
	d := NewDisclosure()
	d.Toggle(1, SectionJudge)

	assert.True(t, d.IsOpen(1, SectionJudge))
	assert.False(t, d.IsOpen(1, SectionMetrics), "sibling section untouched")
	assert.False(t, d.IsOpen(1, SectionAnalysis), "sibling section untouched")
	assert.False(t, d.IsOpen(2, SectionJudge), "same section on another record untouched")
}
