package workout

import (
	"math/rand/v2"

	"mufasa/fitness-brain/internal/domain"
)

// Selector picks one exercise out of a candidate pool.
// It reports false when it cannot pick (empty pool).
type Selector interface {
	Pick(pool []domain.ExerciseRecord) (domain.ExerciseRecord, bool)
}

// SelectorFunc adapts a plain function to the Selector interface.
type SelectorFunc func(pool []domain.ExerciseRecord) (domain.ExerciseRecord, bool)

func (f SelectorFunc) Pick(pool []domain.ExerciseRecord) (domain.ExerciseRecord, bool) {
	return f(pool)
}

type randomSelector struct {
	rnd *rand.Rand
}

// NewRandomSelector picks uniformly at random. A zero seed uses the
// runtime's random source; any other seed gives a repeatable sequence.
func NewRandomSelector(seed uint64) Selector {
	if seed == 0 {
		return &randomSelector{}
	}
	return &randomSelector{rnd: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (s *randomSelector) Pick(pool []domain.ExerciseRecord) (domain.ExerciseRecord, bool) {
	if len(pool) == 0 {
		return domain.ExerciseRecord{}, false
	}
	if s.rnd == nil {
		return pool[rand.IntN(len(pool))], true
	}
	return pool[s.rnd.IntN(len(pool))], true
}

// FirstSelector always picks the first candidate.
var FirstSelector = SelectorFunc(func(pool []domain.ExerciseRecord) (domain.ExerciseRecord, bool) {
	if len(pool) == 0 {
		return domain.ExerciseRecord{}, false
	}
	return pool[0], true
})
