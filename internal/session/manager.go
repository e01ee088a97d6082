// Package session owns the active workout and the workout history of each user.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"mufasa/fitness-brain/internal/domain"
	"mufasa/fitness-brain/internal/repository"

	"github.com/sirupsen/logrus"
)

// Store keys, namespaced per user as "<user>:<key>".
const (
	ActiveKey  = "ACTIVE_WORKOUT_V1"
	HistoryKey = "WORKOUT_HISTORY_V1"

	// MaxHistory bounds the history log.
	MaxHistory = 90
)

var ErrSessionNotFound = errors.New("session not found")

// Manager is the only writer of the active-session slot and the history log.
// Every operation is a single read-modify-write against the store.
type Manager struct {
	store repository.KVStore
	now   func() time.Time
}

// Option configures a Manager.
type Option func(*Manager)

// WithClock sets the clock used for completion and set timestamps.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) {
		m.now = now
	}
}

// NewManager creates a Manager persisting into store.
func NewManager(store repository.KVStore, opts ...Option) *Manager {
	m := &Manager{store: store, now: time.Now}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func key(userID, name string) string {
	return userID + ":" + name
}

// Active returns the user's active session, or nil when there is none or
// the stored value cannot be read.
func (m *Manager) Active(ctx context.Context, userID string) (*domain.WorkoutSession, error) {
	return readJSON[*domain.WorkoutSession](ctx, m.store, key(userID, ActiveKey))
}

// History returns the user's sessions, newest first. Unreadable history is
// reported as empty.
func (m *Manager) History(ctx context.Context, userID string) ([]*domain.WorkoutSession, error) {
	raw, err := readJSON[[]*domain.WorkoutSession](ctx, m.store, key(userID, HistoryKey))
	if err != nil {
		return nil, err
	}
	history := make([]*domain.WorkoutSession, 0, len(raw))
	for _, s := range raw {
		if s != nil && s.ID != "" {
			history = append(history, s)
		}
	}
	return history, nil
}

// SetActive makes session the user's active session and upserts it into the
// history. A session whose stored copy is completed is frozen: the stored
// copy is kept and returned. Moving a session back to an earlier status
// fails with domain.ErrInvalidState.
func (m *Manager) SetActive(ctx context.Context, userID string, session *domain.WorkoutSession) (*domain.WorkoutSession, error) {
	if session == nil || session.ID == "" {
		return nil, fmt.Errorf("set active session without identifier: %w", domain.ErrInvalidState)
	}
	if !session.Status.Valid() {
		return nil, fmt.Errorf("set active session %q with status %q: %w", session.ID, session.Status, domain.ErrInvalidState)
	}

	history, err := m.History(ctx, userID)
	if err != nil {
		return nil, err
	}
	stored, err := m.find(ctx, userID, history, session.ID)
	if err != nil {
		return nil, err
	}

	next := session.Clone()
	if stored != nil {
		if !stored.Status.CanAdvanceTo(session.Status) {
			return nil, fmt.Errorf("session %q cannot go from %s to %s: %w", session.ID, stored.Status, session.Status, domain.ErrInvalidState)
		}
		if stored.IsCompleted() {
			next = stored
		}
	}

	if err := m.writeJSON(ctx, key(userID, ActiveKey), next); err != nil {
		return nil, err
	}
	if err := m.writeJSON(ctx, key(userID, HistoryKey), upsert(history, next)); err != nil {
		return nil, err
	}
	return next.Clone(), nil
}

// Start moves a planned session to in_progress and makes it active.
func (m *Manager) Start(ctx context.Context, userID string, session *domain.WorkoutSession) (*domain.WorkoutSession, error) {
	if session == nil {
		return nil, fmt.Errorf("start session: %w", domain.ErrInvalidState)
	}
	s := session.Clone()
	if s.Status == domain.StatusPlanned || s.Status == "" {
		s.Status = domain.StatusInProgress
	}
	return m.SetActive(ctx, userID, s)
}

// Complete marks the session completed and stamps the completion time.
// Completing an already completed session keeps the first timestamp.
func (m *Manager) Complete(ctx context.Context, userID string, session *domain.WorkoutSession) (*domain.WorkoutSession, error) {
	if session == nil || session.ID == "" {
		return nil, fmt.Errorf("complete session without identifier: %w", domain.ErrInvalidState)
	}
	s := session.Clone()
	if !s.IsCompleted() || s.CompletedAt == nil {
		now := m.now().UTC()
		s.Status = domain.StatusCompleted
		s.CompletedAt = &now
	}
	return m.SetActive(ctx, userID, s)
}

// MarkDay completes the session scheduled for the calendar day of date:
// the active session when it is for that day, otherwise the newest
// history entry for it.
func (m *Manager) MarkDay(ctx context.Context, userID string, date time.Time) (*domain.WorkoutSession, error) {
	dayKey := domain.DateKey(date)

	active, err := m.Active(ctx, userID)
	if err != nil {
		return nil, err
	}
	if active != nil && domain.DateKey(active.Date) == dayKey {
		return m.Complete(ctx, userID, active)
	}

	history, err := m.History(ctx, userID)
	if err != nil {
		return nil, err
	}
	for _, s := range history {
		if domain.DateKey(s.Date) == dayKey {
			return m.Complete(ctx, userID, s)
		}
	}
	return nil, fmt.Errorf("no session on %s: %w", dayKey, ErrSessionNotFound)
}

// LogSet records a performed set on the active session at its current
// pointer. A planned session is started by its first logged set.
func (m *Manager) LogSet(ctx context.Context, userID string, result domain.SetResult) (*domain.WorkoutSession, error) {
	active, err := m.Active(ctx, userID)
	if err != nil {
		return nil, err
	}
	if active == nil {
		return nil, fmt.Errorf("log set: no active session: %w", ErrSessionNotFound)
	}
	if result.At.IsZero() {
		result.At = m.now().UTC()
	}
	if err := active.RecordSet(result); err != nil {
		return nil, err
	}
	if active.Status == domain.StatusPlanned {
		active.Status = domain.StatusInProgress
	}
	return m.SetActive(ctx, userID, active)
}

// Reset clears the user's active session and history.
func (m *Manager) Reset(ctx context.Context, userID string) error {
	if err := m.writeJSON(ctx, key(userID, HistoryKey), []*domain.WorkoutSession{}); err != nil {
		return err
	}
	return m.writeJSON(ctx, key(userID, ActiveKey), nil)
}

// find returns the stored copy of a session: the history entry, or the
// active session when it is not in the history.
func (m *Manager) find(ctx context.Context, userID string, history []*domain.WorkoutSession, id string) (*domain.WorkoutSession, error) {
	for _, s := range history {
		if s.ID == id {
			return s, nil
		}
	}
	active, err := m.Active(ctx, userID)
	if err != nil {
		return nil, err
	}
	if active != nil && active.ID == id {
		return active, nil
	}
	return nil, nil
}

// upsert replaces the entry with the same identifier in place, or puts the
// session first, and truncates to MaxHistory.
func upsert(history []*domain.WorkoutSession, s *domain.WorkoutSession) []*domain.WorkoutSession {
	out := make([]*domain.WorkoutSession, 0, len(history)+1)
	replaced := false
	for _, h := range history {
		if h.ID == s.ID {
			out = append(out, s)
			replaced = true
			continue
		}
		out = append(out, h)
	}
	if !replaced {
		out = append([]*domain.WorkoutSession{s}, out...)
	}
	if len(out) > MaxHistory {
		out = out[:MaxHistory]
	}
	return out
}

// readJSON decodes the value under k. A missing or corrupt value yields the
// zero value; only store failures are returned.
func readJSON[T any](ctx context.Context, store repository.KVStore, k string) (T, error) {
	var zero T
	data, err := store.Read(ctx, k)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return zero, nil
		}
		return zero, fmt.Errorf("read %s: %w", k, err)
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		logrus.WithField("key", k).Warnf("discarding unreadable stored value: %v", err)
		return zero, nil
	}
	return v, nil
}

func (m *Manager) writeJSON(ctx context.Context, k string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", k, err)
	}
	if err := m.store.Write(ctx, k, data); err != nil {
		return fmt.Errorf("write %s: %w", k, err)
	}
	return nil
}
