package domain_test

import (
	"testing"
	"time"

	"mufasa/fitness-brain/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionStatus_CanAdvanceTo(t *testing.T) {
	tests := []struct {
		from, to domain.SessionStatus
		want     bool
	}{
		{domain.StatusPlanned, domain.StatusPlanned, true},
		{domain.StatusPlanned, domain.StatusInProgress, true},
		{domain.StatusPlanned, domain.StatusCompleted, true},
		{domain.StatusInProgress, domain.StatusCompleted, true},
		{domain.StatusInProgress, domain.StatusPlanned, false},
		{domain.StatusCompleted, domain.StatusInProgress, false},
		{domain.StatusCompleted, domain.StatusCompleted, true},
	}
	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanAdvanceTo(tt.to))
		})
	}
	assert.False(t, domain.SessionStatus("paused").Valid())
}

func twoSlotSession() *domain.WorkoutSession {
	return &domain.WorkoutSession{
		ID:     "w1",
		Status: domain.StatusInProgress,
		Blocks: domain.SessionBlocks{
			Strength: []domain.Slot{
				{Slot: "A1", Name: "Push-Up", Sets: 2},
				{Slot: "A2", Name: "Row", Sets: 1},
			},
			Finisher: []domain.Slot{{Slot: "F1", Name: "Child's Pose", Sets: 1}},
		},
		Current: domain.Pointer{Block: domain.BlockStrength, Slot: "A1", SetIndex: 1},
	}
}

func TestRecordSet_AdvancesPointer(t *testing.T) {
	s := twoSlotSession()

	require.NoError(t, s.RecordSet(domain.SetResult{Reps: 12}))
	assert.Equal(t, domain.Pointer{Block: domain.BlockStrength, Slot: "A1", SetIndex: 2}, s.Current)

	require.NoError(t, s.RecordSet(domain.SetResult{Reps: 10}))
	assert.Equal(t, domain.Pointer{Block: domain.BlockStrength, Slot: "A2", SetIndex: 1}, s.Current)

	require.NoError(t, s.RecordSet(domain.SetResult{Reps: 8, Weight: 20}))
	assert.Equal(t, domain.Pointer{Block: domain.BlockFinisher, Slot: "F1", SetIndex: 1}, s.Current)

	assert.False(t, s.AllSetsLogged())
	require.NoError(t, s.RecordSet(domain.SetResult{Reps: 1}))
	assert.Equal(t, domain.Pointer{Block: domain.BlockFinisher, Slot: "F1", SetIndex: 2}, s.Current)
	assert.True(t, s.AllSetsLogged())

	err := s.RecordSet(domain.SetResult{Reps: 1})
	assert.ErrorIs(t, err, domain.ErrInvalidState)
	assert.Equal(t, domain.Pointer{Block: domain.BlockFinisher, Slot: "F1", SetIndex: 2}, s.Current)

	a1 := s.Blocks.Strength[0].Performed
	require.Len(t, a1, 2)
	assert.Equal(t, 1, a1[0].Set)
	assert.Equal(t, 2, a1[1].Set)
	assert.Equal(t, 12, a1[0].Reps)
	assert.Len(t, s.Blocks.Finisher[0].Performed, 1)
}

func TestRecordSet_Rejected(t *testing.T) {
	completed := twoSlotSession()
	completed.Status = domain.StatusCompleted
	assert.ErrorIs(t, completed.RecordSet(domain.SetResult{Reps: 5}), domain.ErrInvalidState)

	lost := twoSlotSession()
	lost.Current = domain.Pointer{Block: domain.BlockWarmup, Slot: "W1", SetIndex: 1}
	assert.ErrorIs(t, lost.RecordSet(domain.SetResult{Reps: 5}), domain.ErrInvalidState)
}

func TestClone_IsDeep(t *testing.T) {
	at := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	s := twoSlotSession()
	s.CompletedAt = &at
	s.ProfileSnapshot.Injuries = []string{"shoulder"}
	require.NoError(t, s.RecordSet(domain.SetResult{Reps: 12}))

	c := s.Clone()
	require.Equal(t, s, c)

	c.Blocks.Strength[0].Performed[0].Reps = 99
	c.Blocks.Strength[0].Name = "changed"
	c.ProfileSnapshot.Injuries[0] = "knee"
	*c.CompletedAt = at.Add(time.Hour)

	assert.Equal(t, 12, s.Blocks.Strength[0].Performed[0].Reps)
	assert.Equal(t, "Push-Up", s.Blocks.Strength[0].Name)
	assert.Equal(t, "shoulder", s.ProfileSnapshot.Injuries[0])
	assert.Equal(t, at, *s.CompletedAt)

	var nilSession *domain.WorkoutSession
	assert.Nil(t, nilSession.Clone())
}

func TestDateHelpers(t *testing.T) {
	local := time.FixedZone("UTC-5", -5*3600)
	ts := time.Date(2024, 3, 9, 22, 15, 0, 0, local)

	assert.Equal(t, "2024-03-09", domain.DateKey(ts))
	assert.Equal(t, time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC), domain.DateOnly(ts))

	d, err := domain.ParseDate("2024-02-29")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), d)

	_, err = domain.ParseDate("29/02/2024")
	assert.Error(t, err)
}

func TestProfileSnapshot_NilProfile(t *testing.T) {
	var p *domain.Profile
	assert.Equal(t, domain.ProfileSnapshot{Injuries: []string{}}, p.Snapshot())
}
