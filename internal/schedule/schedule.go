// Package schedule maps a multi-week program onto consecutive calendar dates.
package schedule

import (
	"cmp"
	"slices"
	"strings"
	"time"

	"mufasa/fitness-brain/internal/domain"
)

// Schedule is the flattened, date-ordered view of a program.
// It is built in full by Build and never changed afterwards.
type Schedule struct {
	entries []domain.ScheduleEntry
	byDate  map[string]int
}

// Build flattens the program starting at start, one calendar day per training
// day. Weeks are ordered by week number and days by day index (stable for
// ties). Gaps in day indices do not skip dates. A nil program or one without
// a plan yields an empty schedule.
func Build(program *domain.Program, start time.Time) *Schedule {
	s := &Schedule{byDate: make(map[string]int)}
	if program == nil || len(program.Plan) == 0 {
		s.entries = []domain.ScheduleEntry{}
		return s
	}

	weeks := slices.Clone(program.Plan)
	slices.SortStableFunc(weeks, func(a, b domain.WeekPlan) int {
		return cmp.Compare(a.Week, b.Week)
	})

	s.entries = make([]domain.ScheduleEntry, 0, program.DayCount())
	cursor := domain.DateOnly(start)
	for _, w := range weeks {
		days := slices.Clone(w.Days)
		slices.SortStableFunc(days, func(a, b domain.DayPlan) int {
			return cmp.Compare(a.DayIndex, b.DayIndex)
		})
		for _, d := range days {
			s.byDate[domain.DateKey(cursor)] = len(s.entries)
			s.entries = append(s.entries, domain.ScheduleEntry{
				Date:     cursor,
				Week:     w.Week,
				DayIndex: d.DayIndex,
				Label:    d.Label,
				Focus:    d.Focus,
				Summary:  FormatDaySummary(d),
			})
			cursor = cursor.AddDate(0, 0, 1)
		}
	}
	return s
}

// Entries returns a copy of the schedule entries in date order.
func (s *Schedule) Entries() []domain.ScheduleEntry {
	return slices.Clone(s.entries)
}

// Len returns the number of scheduled days.
func (s *Schedule) Len() int {
	return len(s.entries)
}

// EntryForDate returns the entry scheduled on the calendar day of date.
func (s *Schedule) EntryForDate(date time.Time) (domain.ScheduleEntry, bool) {
	i, ok := s.byDate[domain.DateKey(date)]
	if !ok {
		return domain.ScheduleEntry{}, false
	}
	return s.entries[i], true
}

// Next returns the first entry on or after from. When the whole program lies
// in the past the first entry is returned. It reports false only for an
// empty schedule.
func (s *Schedule) Next(from time.Time) (domain.ScheduleEntry, bool) {
	if len(s.entries) == 0 {
		return domain.ScheduleEntry{}, false
	}
	day := domain.DateOnly(from)
	i, _ := slices.BinarySearchFunc(s.entries, day, func(e domain.ScheduleEntry, t time.Time) int {
		return e.Date.Compare(t)
	})
	if i == len(s.entries) {
		i = 0
	}
	return s.entries[i], true
}

// FormatDaySummary renders a training day as the human-readable card text:
// a bold label line, then one section per block with bulleted items.
func FormatDaySummary(d domain.DayPlan) string {
	lines := make([]string, 0, 1+3*len(d.Blocks))
	header := "**" + d.Label + "**"
	if d.Focus != "" {
		header += " — " + d.Focus
	}
	lines = append(lines, header)

	for _, b := range d.Blocks {
		lines = append(lines, "", strings.ToUpper(b.Type)+": "+b.Description)
		for _, it := range b.Items {
			lines = append(lines, " • "+it)
		}
	}
	return strings.Join(lines, "\n")
}
