package catalog_test

import (
	"testing"

	"mufasa/fitness-brain/internal/catalog"
	"mufasa/fitness-brain/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog() []domain.ExerciseRecord {
	return []domain.ExerciseRecord{
		{
			ID:               "Pushups",
			Name:             "Pushups",
			Category:         "strength",
			Equipment:        "body only",
			Force:            "push",
			Mechanic:         "compound",
			PrimaryMuscles:   []string{"chest"},
			SecondaryMuscles: []string{"shoulders", "triceps"},
		},
		{
			ID:               "Bent_Over_Barbell_Row",
			Name:             "Bent Over Barbell Row",
			Category:         "strength",
			Equipment:        "barbell",
			Force:            "pull",
			PrimaryMuscles:   []string{"middle back"},
			SecondaryMuscles: []string{"biceps", "lats"},
		},
		{
			ID:             "Goblet_Squat",
			Name:           "Goblet Squat",
			Category:       "strength",
			Equipment:      "kettlebells",
			PrimaryMuscles: []string{"quadriceps"},
		},
		{
			ID:             "Childs_Pose",
			Name:           "Child's Pose",
			Category:       "stretching",
			Equipment:      "body only",
			PrimaryMuscles: []string{"lower back"},
		},
		{
			// no identifier: searchable, not reachable by id
			Name:           "Wall Sit",
			Category:       "strength",
			Equipment:      "body only",
			PrimaryMuscles: []string{"quadriceps"},
		},
	}
}

func TestIndex_EmptyByDefault(t *testing.T) {
	idx := catalog.NewIndex()
	assert.Equal(t, 0, idx.Len())
	assert.Empty(t, idx.All())

	_, err := idx.Lookup("Pushups")
	assert.ErrorIs(t, err, catalog.ErrExerciseNotFound)
}

func TestIndex_LoadAndLookup(t *testing.T) {
	idx := catalog.NewIndex()
	idx.Load(testCatalog())

	assert.Equal(t, 5, idx.Len())

	rec, err := idx.Lookup("Goblet_Squat")
	require.NoError(t, err)
	assert.Equal(t, "Goblet Squat", rec.Name)

	_, err = idx.Lookup("")
	assert.ErrorIs(t, err, catalog.ErrExerciseNotFound)
}

func TestIndex_DuplicateIDs(t *testing.T) {
	idx := catalog.NewIndex()
	idx.Load([]domain.ExerciseRecord{
		{ID: "dup", Name: "First"},
		{ID: "dup", Name: "Second"},
	})

	assert.Equal(t, 2, idx.Len())
	rec, err := idx.Lookup("dup")
	require.NoError(t, err)
	assert.Equal(t, "Second", rec.Name)
}

func TestIndex_LoadReplacesCatalog(t *testing.T) {
	idx := catalog.NewIndex()
	idx.Load(testCatalog())
	idx.Load([]domain.ExerciseRecord{{ID: "only", Name: "Only"}})

	assert.Equal(t, 1, idx.Len())
	_, err := idx.Lookup("Pushups")
	assert.ErrorIs(t, err, catalog.ErrExerciseNotFound)
}

func TestIndex_LoadCopiesInput(t *testing.T) {
	records := testCatalog()
	idx := catalog.NewIndex()
	idx.Load(records)

	records[0].Name = "changed"
	rec, err := idx.Lookup("Pushups")
	require.NoError(t, err)
	assert.Equal(t, "Pushups", rec.Name)
}
