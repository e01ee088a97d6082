// Package workout builds a day's workout session out of the exercise catalog.
package workout

import (
	"fmt"
	"strings"
	"time"

	"mufasa/fitness-brain/internal/assessment"
	"mufasa/fitness-brain/internal/catalog"
	"mufasa/fitness-brain/internal/domain"

	"github.com/google/uuid"
)

const (
	// SourceExerciseDB tags sessions generated from the exercise catalog.
	SourceExerciseDB = "exercise_db_v1"

	defaultCoachingFocus = "brace first; slow reps; knees track; control lowering"

	strengthSets    = 3
	strengthReps    = "10–12"
	strengthRestSec = 60
	finisherReps    = "60–90 sec"
	finisherSlot    = "F1"
)

// Searcher is the part of the catalog the generator queries.
type Searcher interface {
	Search(query string, facets catalog.Facets) []domain.ExerciseRecord
}

// Policy controls exercise selection for one generated workout.
type Policy struct {
	EquipmentAllowed []string             // empty means domain.DefaultEquipment()
	Selector         Selector             // nil means uniform random
	Status           domain.SessionStatus // planned or in_progress; anything else means planned
}

// strengthPool describes one strength slot: which exercises qualify,
// the form cue and the literal used when nothing qualifies.
type strengthPool struct {
	slot     string
	muscles  []string // primary-muscle predicate, nil accepts any
	cue      string
	fallback domain.ExerciseRecord
}

var strengthPools = []strengthPool{
	{
		slot:     "A1",
		muscles:  []string{"chest", "shoulders", "triceps"},
		cue:      "Brace first. Smooth reps.",
		fallback: domain.ExerciseRecord{ID: "push-up", Name: "Push-Up", Equipment: domain.EquipmentBodyOnly},
	},
	{
		slot:     "A2",
		muscles:  []string{"back", "lats", "biceps"},
		cue:      "Pull elbows back, no shrug.",
		fallback: domain.ExerciseRecord{ID: "row", Name: "Row (band/backpack)", Equipment: domain.EquipmentBands},
	},
	{
		slot:     "A3",
		cue:      "Control the lowering.",
		fallback: domain.ExerciseRecord{ID: "dumbbell-curl", Name: "Dumbbell Curl", Equipment: domain.EquipmentDumbbell},
	},
	{
		slot:     "A4",
		muscles:  []string{"quadriceps", "glutes", "hamstrings"},
		cue:      "Knees over toes, chest tall.",
		fallback: domain.ExerciseRecord{ID: "bodyweight-squat", Name: "Bodyweight Squat", Equipment: domain.EquipmentBodyOnly},
	},
}

var finisherFallback = domain.ExerciseRecord{ID: "child-pose", Name: "Child's Pose", Equipment: domain.EquipmentBodyOnly}

func warmup() []domain.Drill {
	return []domain.Drill{
		{Name: "Cat-cow", Sets: 1, Reps: "x10"},
		{Name: "Hip circles", Sets: 1, Reps: "x10/side"},
		{Name: "Ankle rocks", Sets: 1, Reps: "x10/side"},
		{Name: "Arm swings", Sets: 1, Reps: "x20"},
	}
}

// Generator creates workout sessions. It only reads the catalog.
type Generator struct {
	catalog Searcher
	now     func() time.Time
	newID   func(date time.Time) string
}

// Option configures a Generator.
type Option func(*Generator)

// WithClock sets the clock used for the session date and timestamps.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) {
		g.now = now
	}
}

// WithIDFunc sets how session identifiers are made.
func WithIDFunc(newID func(date time.Time) string) Option {
	return func(g *Generator) {
		g.newID = newID
	}
}

// NewGenerator creates a Generator over the given catalog.
func NewGenerator(c Searcher, opts ...Option) *Generator {
	g := &Generator{
		catalog: c,
		now:     time.Now,
		newID: func(date time.Time) string {
			return fmt.Sprintf("workout_%s_%s", domain.DateKey(date), uuid.NewString())
		},
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate builds today's workout for the profile. It never fails: every slot
// falls back to a literal exercise when the catalog has nothing suitable.
func (g *Generator) Generate(profile *domain.Profile, findings domain.AssessmentFindings, policy Policy) *domain.WorkoutSession {
	selector := policy.Selector
	if selector == nil {
		selector = NewRandomSelector(0)
	}
	allowed := policy.EquipmentAllowed
	if len(allowed) == 0 {
		allowed = domain.DefaultEquipment()
	}
	// A new session is never completed: that needs a completion time.
	status := policy.Status
	if status != domain.StatusInProgress {
		status = domain.StatusPlanned
	}

	strengthCandidates := g.catalog.Search("", catalog.Facets{Category: domain.CategoryStrength})

	strength := make([]domain.Slot, 0, len(strengthPools))
	for _, p := range strengthPools {
		pool := filterPool(strengthCandidates, allowed, p.muscles)
		ex, ok := selector.Pick(pool)
		if !ok {
			ex = p.fallback
		}
		strength = append(strength, newSlot(p.slot, ex, strengthSets, strengthReps, strengthRestSec, p.cue))
	}

	stretches := g.catalog.Search("", catalog.Facets{
		Category:  domain.CategoryStretching,
		Equipment: domain.EquipmentBodyOnly,
	})
	finisher, ok := selector.Pick(stretches)
	if !ok {
		finisher = finisherFallback
	}

	now := g.now()
	date := domain.DateOnly(now)
	return &domain.WorkoutSession{
		ID:              g.newID(date),
		Date:            date,
		Status:          status,
		Source:          SourceExerciseDB,
		ProfileSnapshot: profile.Snapshot(),
		Blocks: domain.SessionBlocks{
			Warmup:     warmup(),
			Corrective: assessment.CorrectivesFor(findings),
			Strength:   strength,
			Finisher:   []domain.Slot{newSlot(finisherSlot, finisher, 1, finisherReps, 0, "")},
		},
		Current:       domain.Pointer{Block: domain.BlockStrength, Slot: strengthPools[0].slot, SetIndex: 1},
		CoachingFocus: defaultCoachingFocus,
		CreatedAt:     now.UTC(),
	}
}

func newSlot(slot string, ex domain.ExerciseRecord, sets int, reps string, rest int, cue string) domain.Slot {
	return domain.Slot{
		Slot:       slot,
		ExerciseID: ex.ID,
		Name:       ex.Name,
		Equipment:  ex.Equipment,
		Sets:       sets,
		Reps:       reps,
		RestSec:    rest,
		Cue:        cue,
		Performed:  []domain.SetResult{},
	}
}

// filterPool keeps candidates with allowed equipment whose primary muscles
// contain one of the given muscle tags.
func filterPool(candidates []domain.ExerciseRecord, equipment, muscles []string) []domain.ExerciseRecord {
	out := make([]domain.ExerciseRecord, 0)
	for _, ex := range candidates {
		if !containsFold(equipment, ex.Equipment) {
			continue
		}
		if len(muscles) > 0 && !targetsAny(ex.PrimaryMuscles, muscles) {
			continue
		}
		out = append(out, ex)
	}
	return out
}

func containsFold(list []string, v string) bool {
	v = strings.TrimSpace(v)
	for _, item := range list {
		if strings.EqualFold(strings.TrimSpace(item), v) {
			return true
		}
	}
	return false
}

func targetsAny(primary, muscles []string) bool {
	for _, m := range primary {
		m = strings.ToLower(m)
		for _, t := range muscles {
			if strings.Contains(m, t) {
				return true
			}
		}
	}
	return false
}
