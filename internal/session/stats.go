package session

import (
	"context"
	"math"
	"time"

	"mufasa/fitness-brain/internal/domain"
)

// Stats is the weekly rollup shown on the dashboard.
type Stats struct {
	WeekStart   time.Time `json:"week_start"`
	Planned     int       `json:"planned"`
	Completed   int       `json:"completed"`
	Consistency int       `json:"consistency"` // percent, 0 when nothing was planned
}

// WeekStart returns the Monday that starts the week containing ref.
func WeekStart(ref time.Time) time.Time {
	day := domain.DateOnly(ref)
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}

// WeeklyStats counts the sessions dated within the Monday-start week that
// contains ref. Every such session counts as planned.
func WeeklyStats(history []*domain.WorkoutSession, ref time.Time) Stats {
	start := WeekStart(ref)
	end := start.AddDate(0, 0, 7)

	st := Stats{WeekStart: start}
	for _, s := range history {
		if s == nil {
			continue
		}
		d := domain.DateOnly(s.Date)
		if d.Before(start) || !d.Before(end) {
			continue
		}
		st.Planned++
		if s.IsCompleted() {
			st.Completed++
		}
	}
	if st.Planned > 0 {
		st.Consistency = int(math.Round(100 * float64(st.Completed) / float64(st.Planned)))
	}
	return st
}

// WeeklyStats computes the rollup over the user's stored history.
func (m *Manager) WeeklyStats(ctx context.Context, userID string, ref time.Time) (Stats, error) {
	history, err := m.History(ctx, userID)
	if err != nil {
		return Stats{}, err
	}
	return WeeklyStats(history, ref), nil
}

// CompletedDates returns the calendar days that have a completed session.
func CompletedDates(history []*domain.WorkoutSession) map[string]bool {
	out := make(map[string]bool)
	for _, s := range history {
		if s.IsCompleted() {
			out[domain.DateKey(s.Date)] = true
		}
	}
	return out
}
