package catalog

import (
	"errors"
	"sync/atomic"

	"mufasa/fitness-brain/internal/domain"
)

// ErrExerciseNotFound is returned by Lookup for unknown identifiers.
var ErrExerciseNotFound = errors.New("exercise not found")

// snapshot is an immutable view of a loaded catalog.
type snapshot struct {
	records []domain.ExerciseRecord
	byID    map[string]int // identifier -> position in records
}

// Index is an in-memory, queryable view over the exercise catalog.
// Load swaps the whole catalog at once; readers never observe a partial catalog.
type Index struct {
	current atomic.Pointer[snapshot]
}

// NewIndex creates an empty catalog index.
func NewIndex() *Index {
	idx := &Index{}
	idx.current.Store(&snapshot{byID: map[string]int{}})
	return idx
}

// Load replaces the catalog with the given records.
// Records without an identifier stay searchable but are not reachable through Lookup;
// for duplicate identifiers the last record wins the lookup slot.
func (i *Index) Load(records []domain.ExerciseRecord) {
	snap := &snapshot{
		records: make([]domain.ExerciseRecord, len(records)),
		byID:    make(map[string]int, len(records)),
	}
	copy(snap.records, records)
	for pos, rec := range snap.records {
		if rec.ID == "" {
			continue
		}
		snap.byID[rec.ID] = pos
	}
	i.current.Store(snap)
}

// Lookup returns the record with the given identifier.
func (i *Index) Lookup(id string) (domain.ExerciseRecord, error) {
	snap := i.current.Load()
	pos, ok := snap.byID[id]
	if !ok {
		return domain.ExerciseRecord{}, ErrExerciseNotFound
	}
	return snap.records[pos], nil
}

// All returns a copy of the full record list in catalog order.
func (i *Index) All() []domain.ExerciseRecord {
	snap := i.current.Load()
	out := make([]domain.ExerciseRecord, len(snap.records))
	copy(out, snap.records)
	return out
}

// Len returns the number of records, including those without an identifier.
func (i *Index) Len() int {
	return len(i.current.Load().records)
}
