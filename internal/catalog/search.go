package catalog

import (
	"strings"

	"mufasa/fitness-brain/internal/domain"
)

// Facets narrow a search. Empty fields are ignored; set fields must match exactly
// (case-insensitive). Muscle matches either the primary or the secondary muscles.
type Facets struct {
	Category  string
	Equipment string
	Muscle    string
}

func normalize(v string) string {
	return strings.ToLower(strings.TrimSpace(v))
}

// Search returns, in catalog order, the records that match the free-text query
// and all the given facets. No match is an empty result, not an error.
func (i *Index) Search(query string, facets Facets) []domain.ExerciseRecord {
	snap := i.current.Load()

	q := normalize(query)
	category := normalize(facets.Category)
	equipment := normalize(facets.Equipment)
	muscle := normalize(facets.Muscle)

	out := make([]domain.ExerciseRecord, 0)
	for _, rec := range snap.records {
		if q != "" && !matchesQuery(rec, q) {
			continue
		}
		if category != "" && normalize(rec.Category) != category {
			continue
		}
		if equipment != "" && normalize(rec.Equipment) != equipment {
			continue
		}
		if muscle != "" && !hasMuscle(rec, muscle) {
			continue
		}
		out = append(out, rec)
	}
	return out
}

func matchesQuery(rec domain.ExerciseRecord, q string) bool {
	fields := []string{rec.Name, rec.ID, rec.Category, rec.Equipment, rec.Force, rec.Mechanic}
	for _, f := range fields {
		if strings.Contains(normalize(f), q) {
			return true
		}
	}
	for _, m := range rec.PrimaryMuscles {
		if strings.Contains(normalize(m), q) {
			return true
		}
	}
	for _, m := range rec.SecondaryMuscles {
		if strings.Contains(normalize(m), q) {
			return true
		}
	}
	return false
}

func hasMuscle(rec domain.ExerciseRecord, muscle string) bool {
	for _, m := range rec.PrimaryMuscles {
		if normalize(m) == muscle {
			return true
		}
	}
	for _, m := range rec.SecondaryMuscles {
		if normalize(m) == muscle {
			return true
		}
	}
	return false
}
