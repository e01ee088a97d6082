package session_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"mufasa/fitness-brain/internal/domain"
	"mufasa/fitness-brain/internal/repository"
	"mufasa/fitness-brain/internal/repository/memory"
	"mufasa/fitness-brain/internal/repository/mocks"
	"mufasa/fitness-brain/internal/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const user = "rashad"

var (
	t0 = time.Date(2024, 1, 3, 9, 0, 0, 0, time.UTC)
	t1 = t0.Add(time.Hour)
)

type clock struct{ now time.Time }

func (c *clock) Now() time.Time { return c.now }

func newManager() (*session.Manager, *memory.KVStore, *clock) {
	store := memory.NewKVStore()
	c := &clock{now: t0}
	return session.NewManager(store, session.WithClock(c.Now)), store, c
}

func newSession(id string, date time.Time) *domain.WorkoutSession {
	return &domain.WorkoutSession{
		ID:     id,
		Date:   domain.DateOnly(date),
		Status: domain.StatusPlanned,
		Blocks: domain.SessionBlocks{
			Strength: []domain.Slot{
				{Slot: "A1", Name: "Push-Up", Sets: 2, Performed: []domain.SetResult{}},
				{Slot: "A2", Name: "Row", Sets: 1, Performed: []domain.SetResult{}},
			},
			Finisher: []domain.Slot{{Slot: "F1", Name: "Child's Pose", Sets: 1, Performed: []domain.SetResult{}}},
		},
		Current: domain.Pointer{Block: domain.BlockStrength, Slot: "A1", SetIndex: 1},
	}
}

func TestSetActive_IsIdempotent(t *testing.T) {
	ctx := context.Background()
	m, _, _ := newManager()
	s := newSession("w1", t0)

	_, err := m.SetActive(ctx, user, s)
	require.NoError(t, err)
	_, err = m.SetActive(ctx, user, s)
	require.NoError(t, err)

	history, err := m.History(ctx, user)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "w1", history[0].ID)

	active, err := m.Active(ctx, user)
	require.NoError(t, err)
	assert.Equal(t, s, active)
}

func TestSetActive_NewestFirstAndReplaceInPlace(t *testing.T) {
	ctx := context.Background()
	m, _, _ := newManager()

	for _, id := range []string{"w1", "w2", "w3"} {
		_, err := m.SetActive(ctx, user, newSession(id, t0))
		require.NoError(t, err)
	}
	updated := newSession("w2", t0)
	updated.Status = domain.StatusInProgress
	_, err := m.SetActive(ctx, user, updated)
	require.NoError(t, err)

	history, err := m.History(ctx, user)
	require.NoError(t, err)
	var ids []string
	for _, s := range history {
		ids = append(ids, s.ID)
	}
	assert.Equal(t, []string{"w3", "w2", "w1"}, ids)
	assert.Equal(t, domain.StatusInProgress, history[1].Status)

	active, _ := m.Active(ctx, user)
	assert.Equal(t, "w2", active.ID)
}

func TestSetActive_HistoryIsBounded(t *testing.T) {
	ctx := context.Background()
	m, _, _ := newManager()

	for i := range session.MaxHistory + 5 {
		_, err := m.SetActive(ctx, user, newSession(fmt.Sprintf("w%03d", i), t0))
		require.NoError(t, err)
	}

	history, err := m.History(ctx, user)
	require.NoError(t, err)
	require.Len(t, history, session.MaxHistory)
	assert.Equal(t, fmt.Sprintf("w%03d", session.MaxHistory+4), history[0].ID)
	assert.Equal(t, "w005", history[len(history)-1].ID)
}

func TestSetActive_Rejected(t *testing.T) {
	ctx := context.Background()
	m, _, _ := newManager()

	_, err := m.SetActive(ctx, user, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidState)

	_, err = m.SetActive(ctx, user, newSession("", t0))
	assert.ErrorIs(t, err, domain.ErrInvalidState)

	bad := newSession("w1", t0)
	bad.Status = "paused"
	_, err = m.SetActive(ctx, user, bad)
	assert.ErrorIs(t, err, domain.ErrInvalidState)

	s := newSession("w1", t0)
	started, err := m.Start(ctx, user, s)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusInProgress, started.Status)
	assert.Equal(t, domain.StatusPlanned, s.Status, "caller's session is not modified")

	_, err = m.SetActive(ctx, user, s)
	assert.ErrorIs(t, err, domain.ErrInvalidState, "in_progress -> planned")
}

func TestComplete_KeepsFirstTimestamp(t *testing.T) {
	ctx := context.Background()
	m, _, c := newManager()
	s := newSession("w1", t0)

	first, err := m.Complete(ctx, user, s)
	require.NoError(t, err)
	require.NotNil(t, first.CompletedAt)
	assert.Equal(t, t0, *first.CompletedAt)
	assert.Equal(t, domain.StatusCompleted, first.Status)

	c.now = t1
	second, err := m.Complete(ctx, user, s)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, second.Status)
	assert.Equal(t, t0, *second.CompletedAt)

	history, _ := m.History(ctx, user)
	require.Len(t, history, 1)
	assert.Equal(t, t0, *history[0].CompletedAt)
}

func TestComplete_FreezesSession(t *testing.T) {
	ctx := context.Background()
	m, _, _ := newManager()

	done, err := m.Complete(ctx, user, newSession("w1", t0))
	require.NoError(t, err)

	tampered := done.Clone()
	tampered.Blocks.Strength[0].Name = "Changed"
	tampered.ProfileSnapshot.Name = "Someone else"
	got, err := m.SetActive(ctx, user, tampered)
	require.NoError(t, err)
	assert.Equal(t, "Push-Up", got.Blocks.Strength[0].Name)
	assert.Empty(t, got.ProfileSnapshot.Name)

	_, err = m.Start(ctx, user, done)
	require.NoError(t, err, "starting a completed session is a no-op")

	reopened := done.Clone()
	reopened.Status = domain.StatusInProgress
	_, err = m.SetActive(ctx, user, reopened)
	assert.ErrorIs(t, err, domain.ErrInvalidState)
}

func TestComplete_WithoutIdentifier(t *testing.T) {
	m, _, _ := newManager()
	_, err := m.Complete(context.Background(), user, newSession("", t0))
	assert.ErrorIs(t, err, domain.ErrInvalidState)
	_, err = m.Complete(context.Background(), user, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidState)
}

func TestMarkDay(t *testing.T) {
	ctx := context.Background()
	m, _, _ := newManager()
	monday := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	_, err := m.SetActive(ctx, user, newSession("mon", monday))
	require.NoError(t, err)
	_, err = m.SetActive(ctx, user, newSession("tue", monday.AddDate(0, 0, 1)))
	require.NoError(t, err)

	got, err := m.MarkDay(ctx, user, monday.Add(20*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, "mon", got.ID)
	assert.True(t, got.IsCompleted())

	got, err = m.MarkDay(ctx, user, monday.AddDate(0, 0, 1))
	require.NoError(t, err)
	assert.Equal(t, "tue", got.ID)

	_, err = m.MarkDay(ctx, user, monday.AddDate(0, 0, 5))
	assert.ErrorIs(t, err, session.ErrSessionNotFound)
}

func TestLogSet(t *testing.T) {
	ctx := context.Background()
	m, _, _ := newManager()

	_, err := m.LogSet(ctx, user, domain.SetResult{Reps: 10})
	assert.ErrorIs(t, err, session.ErrSessionNotFound)

	_, err = m.SetActive(ctx, user, newSession("w1", t0))
	require.NoError(t, err)

	got, err := m.LogSet(ctx, user, domain.SetResult{Reps: 10, Weight: 12.5})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusInProgress, got.Status)
	assert.Equal(t, domain.Pointer{Block: domain.BlockStrength, Slot: "A1", SetIndex: 2}, got.Current)
	require.Len(t, got.Blocks.Strength[0].Performed, 1)
	assert.Equal(t, domain.SetResult{Set: 1, Reps: 10, Weight: 12.5, At: t0}, got.Blocks.Strength[0].Performed[0])

	history, _ := m.History(ctx, user)
	require.Len(t, history, 1)
	assert.Len(t, history[0].Blocks.Strength[0].Performed, 1)

	_, err = m.Complete(ctx, user, got)
	require.NoError(t, err)
	_, err = m.LogSet(ctx, user, domain.SetResult{Reps: 8})
	assert.ErrorIs(t, err, domain.ErrInvalidState)
}

func TestLogSet_StopsAfterLastSet(t *testing.T) {
	ctx := context.Background()
	m, _, _ := newManager()

	_, err := m.SetActive(ctx, user, newSession("w1", t0))
	require.NoError(t, err)

	// A1 x2, A2 x1, F1 x1
	for range 4 {
		_, err = m.LogSet(ctx, user, domain.SetResult{Reps: 10})
		require.NoError(t, err)
	}
	_, err = m.LogSet(ctx, user, domain.SetResult{Reps: 10})
	assert.ErrorIs(t, err, domain.ErrInvalidState)

	active, err := m.Active(ctx, user)
	require.NoError(t, err)
	assert.True(t, active.AllSetsLogged())
	assert.Len(t, active.Blocks.Finisher[0].Performed, 1)
}

func TestCorruptStateDegrades(t *testing.T) {
	ctx := context.Background()
	m, store, _ := newManager()

	require.NoError(t, store.Write(ctx, user+":"+session.ActiveKey, []byte(`{not json`)))
	require.NoError(t, store.Write(ctx, user+":"+session.HistoryKey, []byte(`{"id": 5}`)))

	active, err := m.Active(ctx, user)
	require.NoError(t, err)
	assert.Nil(t, active)

	history, err := m.History(ctx, user)
	require.NoError(t, err)
	assert.Empty(t, history)

	_, err = m.SetActive(ctx, user, newSession("w1", t0))
	require.NoError(t, err)
	history, _ = m.History(ctx, user)
	assert.Len(t, history, 1)
}

func TestHistory_SkipsNullEntries(t *testing.T) {
	ctx := context.Background()
	m, store, _ := newManager()
	require.NoError(t, store.Write(ctx, user+":"+session.HistoryKey, []byte(`[null, {"id":"w1","status":"planned"}, {"status":"planned"}]`)))

	history, err := m.History(ctx, user)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "w1", history[0].ID)
}

func TestUsersAreIsolated(t *testing.T) {
	ctx := context.Background()
	m, _, _ := newManager()

	_, err := m.SetActive(ctx, "alice", newSession("w1", t0))
	require.NoError(t, err)

	active, err := m.Active(ctx, "bob")
	require.NoError(t, err)
	assert.Nil(t, active)
}

func TestReset(t *testing.T) {
	ctx := context.Background()
	m, _, _ := newManager()
	_, err := m.SetActive(ctx, user, newSession("w1", t0))
	require.NoError(t, err)

	require.NoError(t, m.Reset(ctx, user))

	active, _ := m.Active(ctx, user)
	assert.Nil(t, active)
	history, _ := m.History(ctx, user)
	assert.Empty(t, history)
}

func TestStoreFailuresPropagate(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	store := mocks.NewMockKVStore(ctrl)
	m := session.NewManager(store)
	boom := errors.New("connection reset")

	store.EXPECT().Read(gomock.Any(), user+":"+session.HistoryKey).Return(nil, repository.ErrNotFound)
	store.EXPECT().Read(gomock.Any(), user+":"+session.ActiveKey).Return(nil, repository.ErrNotFound)
	store.EXPECT().Write(gomock.Any(), user+":"+session.ActiveKey, gomock.Any()).Return(boom)

	_, err := m.SetActive(ctx, user, newSession("w1", t0))
	assert.ErrorIs(t, err, boom)

	store.EXPECT().Read(gomock.Any(), user+":"+session.ActiveKey).Return(nil, boom)
	_, err = m.Active(ctx, user)
	assert.ErrorIs(t, err, boom)
}
