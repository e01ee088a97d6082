package domain

import (
	"fmt"
	"slices"
	"time"
)

// Block names used by the session's current pointer.
const (
	BlockWarmup     = "warmup"
	BlockCorrective = "corrective"
	BlockStrength   = "strength"
	BlockFinisher   = "finisher"
)

// WorkoutSession is one day's concrete, generated workout with its lifecycle status.
type WorkoutSession struct {
	ID              string          `json:"id"`
	Date            time.Time       `json:"date"` // Calendar day the session is for
	Status          SessionStatus   `json:"status"`
	CompletedAt     *time.Time      `json:"completedAt"` // nil until completed
	Source          string          `json:"source,omitempty"`
	ProfileSnapshot ProfileSnapshot `json:"profileSnapshot"`
	Blocks          SessionBlocks   `json:"blocks"`
	Current         Pointer         `json:"current"`
	CoachingFocus   string          `json:"coachingFocus,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
}

// SessionBlocks are the four blocks of a generated workout.
type SessionBlocks struct {
	Warmup     []Drill `json:"warmup"`
	Corrective []Drill `json:"corrective"`
	Strength   []Slot  `json:"strength"`
	Finisher   []Slot  `json:"finisher"`
}

// Drill is a fixed, non-catalog exercise prescription (warm-up and correctives).
type Drill struct {
	Name    string `json:"name"`
	Sets    int    `json:"sets"`
	Reps    string `json:"reps"`
	RestSec int    `json:"restSec"`
	Cue     string `json:"cue,omitempty"`
}

// Slot binds one catalog exercise to a prescription and its performance log.
type Slot struct {
	Slot       string      `json:"slot,omitempty"` // e.g., "A1"
	ExerciseID string      `json:"id,omitempty"`
	Name       string      `json:"name"`
	Equipment  string      `json:"equipment,omitempty"`
	Sets       int         `json:"sets"`
	Reps       string      `json:"reps"`
	RestSec    int         `json:"restSec"`
	Cue        string      `json:"cue,omitempty"`
	Performed  []SetResult `json:"performed"`
}

// SetResult is one performed set.
type SetResult struct {
	Set    int       `json:"set"`
	Reps   int       `json:"reps"`
	Weight float64   `json:"weight,omitempty"`
	Notes  string    `json:"notes,omitempty"`
	At     time.Time `json:"at"`
}

// Pointer marks where coaching should resume: block, slot and 1-based set index.
type Pointer struct {
	Block    string `json:"block"`
	Slot     string `json:"slot"`
	SetIndex int    `json:"setIndex"`
}

// IsCompleted reports whether the session reached its final state.
func (s *WorkoutSession) IsCompleted() bool {
	return s != nil && s.Status == StatusCompleted
}

// Clone returns a deep copy so callers can change it without touching the original.
func (s *WorkoutSession) Clone() *WorkoutSession {
	if s == nil {
		return nil
	}
	c := *s
	if s.CompletedAt != nil {
		at := *s.CompletedAt
		c.CompletedAt = &at
	}
	c.ProfileSnapshot.Injuries = slices.Clone(s.ProfileSnapshot.Injuries)
	c.Blocks.Warmup = slices.Clone(s.Blocks.Warmup)
	c.Blocks.Corrective = slices.Clone(s.Blocks.Corrective)
	c.Blocks.Strength = cloneSlots(s.Blocks.Strength)
	c.Blocks.Finisher = cloneSlots(s.Blocks.Finisher)
	return &c
}

func cloneSlots(in []Slot) []Slot {
	if in == nil {
		return nil
	}
	out := make([]Slot, len(in))
	for i, sl := range in {
		out[i] = sl
		out[i].Performed = slices.Clone(sl.Performed)
	}
	return out
}

// slotsFor returns the slots of a slotted block.
func (s *WorkoutSession) slotsFor(block string) []Slot {
	switch block {
	case BlockStrength:
		return s.Blocks.Strength
	case BlockFinisher:
		return s.Blocks.Finisher
	}
	return nil
}

// RecordSet appends a performed set to the slot under the current pointer and
// moves the pointer forward: next set, then next slot, then the finisher.
func (s *WorkoutSession) RecordSet(result SetResult) error {
	if s.IsCompleted() {
		return fmt.Errorf("record set on completed session %q: %w", s.ID, ErrInvalidState)
	}
	slots := s.slotsFor(s.Current.Block)
	idx := -1
	for i := range slots {
		if slots[i].Slot == s.Current.Slot {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("no slot %q in block %q: %w", s.Current.Slot, s.Current.Block, ErrInvalidState)
	}

	if s.Current.SetIndex < 1 {
		s.Current.SetIndex = 1
	}
	sets := max(slots[idx].Sets, 1)
	if s.Current.SetIndex > sets {
		return fmt.Errorf("all sets of %q already logged: %w", s.Current.Slot, ErrInvalidState)
	}
	result.Set = s.Current.SetIndex
	slots[idx].Performed = append(slots[idx].Performed, result)

	if s.Current.SetIndex < sets {
		s.Current.SetIndex++
		return nil
	}
	if idx+1 < len(slots) {
		s.Current = Pointer{Block: s.Current.Block, Slot: slots[idx+1].Slot, SetIndex: 1}
		return nil
	}
	if s.Current.Block == BlockStrength && len(s.Blocks.Finisher) > 0 {
		s.Current = Pointer{Block: BlockFinisher, Slot: s.Blocks.Finisher[0].Slot, SetIndex: 1}
		return nil
	}
	// Past the last set of the workout.
	s.Current.SetIndex = sets + 1
	return nil
}

// AllSetsLogged reports whether the pointer has moved past the last set.
func (s *WorkoutSession) AllSetsLogged() bool {
	if s == nil {
		return false
	}
	for _, sl := range s.slotsFor(s.Current.Block) {
		if sl.Slot == s.Current.Slot {
			return s.Current.SetIndex > max(sl.Sets, 1)
		}
	}
	return false
}
