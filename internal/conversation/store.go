package conversation

// Store is the append-only, reverse-chronological history of evaluation
// records for one session. Prepend is the only mutation; records are never
// edited or removed, and history does not survive the process.
//
// All state mutation happens on the single Bubble Tea update loop, so the
// store needs no locking.
type Store struct {
	// Stored oldest-first so Prepend is an O(1) amortized append.
	records []EvaluationRecord
}

// NewStore returns an empty history.
func NewStore() *Store {
	return &Store{}
}

// Prepend inserts a record at the head (newest position). Never fails.
func (s *Store) Prepend(rec EvaluationRecord) {
	s.records = append(s.records, rec)
}

// All returns the history newest-first. Records are immutable, so callers
// may hold the returned slice across updates; it reflects the history at
// call time.
func (s *Store) All() []EvaluationRecord {
	out := make([]EvaluationRecord, len(s.records))
	for i, rec := range s.records {
		out[len(s.records)-1-i] = rec
	}
	return out
}

// Len reports the number of records.
func (s *Store) Len() int {
	return len(s.records)
}
