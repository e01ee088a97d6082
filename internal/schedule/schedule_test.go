package schedule_test

import (
	"testing"
	"time"

	"mufasa/fitness-brain/internal/domain"
	"mufasa/fitness-brain/internal/schedule"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func pushPullProgram() *domain.Program {
	return &domain.Program{
		Plan: []domain.WeekPlan{{
			Week: 1,
			Days: []domain.DayPlan{
				{DayIndex: 2, Label: "Pull", Focus: "back"},
				{DayIndex: 1, Label: "Push", Focus: "chest", Blocks: []domain.Block{
					{Type: "strength", Description: "3x10", Items: []string{"Bench", "Dip"}},
				}},
			},
		}},
	}
}

func TestBuild_PushPullExample(t *testing.T) {
	s := schedule.Build(pushPullProgram(), day(2024, 1, 1))

	entries := s.Entries()
	require.Len(t, entries, 2)

	assert.Equal(t, day(2024, 1, 1), entries[0].Date)
	assert.Equal(t, 1, entries[0].Week)
	assert.Equal(t, 1, entries[0].DayIndex)
	assert.Equal(t, "Push", entries[0].Label)
	assert.Equal(t, "**Push** — chest\n\nSTRENGTH: 3x10\n • Bench\n • Dip", entries[0].Summary)

	assert.Equal(t, day(2024, 1, 2), entries[1].Date)
	assert.Equal(t, "Pull", entries[1].Label)
	assert.Equal(t, "**Pull** — back", entries[1].Summary)
}

func TestBuild_OrderingAndGaps(t *testing.T) {
	program := &domain.Program{
		Plan: []domain.WeekPlan{
			{Week: 2, Days: []domain.DayPlan{{DayIndex: 5, Label: "W2D5"}, {DayIndex: 1, Label: "W2D1"}}},
			{Week: 1, Days: []domain.DayPlan{{DayIndex: 3, Label: "W1D3"}, {DayIndex: 1, Label: "W1D1a"}, {DayIndex: 1, Label: "W1D1b"}}},
			{Week: 3},
		},
	}
	start := day(2024, 2, 27)

	s := schedule.Build(program, start)
	require.Equal(t, program.DayCount(), s.Len())

	var labels []string
	for i, e := range s.Entries() {
		labels = append(labels, e.Label)
		// one day per entry, crossing the leap day
		assert.Equal(t, start.AddDate(0, 0, i), e.Date)

		got, ok := s.EntryForDate(e.Date)
		require.True(t, ok)
		assert.Equal(t, e, got)
	}
	assert.Equal(t, []string{"W1D1a", "W1D1b", "W1D3", "W2D1", "W2D5"}, labels)
}

func TestBuild_DoesNotReorderProgram(t *testing.T) {
	program := pushPullProgram()
	schedule.Build(program, day(2024, 1, 1))
	assert.Equal(t, "Pull", program.Plan[0].Days[0].Label)
}

func TestBuild_StartTimeIsTruncated(t *testing.T) {
	s := schedule.Build(pushPullProgram(), time.Date(2024, 1, 1, 23, 59, 0, 0, time.UTC))

	e, ok := s.EntryForDate(time.Date(2024, 1, 2, 8, 0, 0, 0, time.UTC))
	require.True(t, ok)
	assert.Equal(t, "Pull", e.Label)
}

func TestBuild_Empty(t *testing.T) {
	for name, p := range map[string]*domain.Program{
		"nil":     nil,
		"no plan": {Title: "Empty"},
	} {
		t.Run(name, func(t *testing.T) {
			s := schedule.Build(p, day(2024, 1, 1))
			assert.Equal(t, 0, s.Len())
			assert.NotNil(t, s.Entries())
			assert.Empty(t, s.Entries())

			_, ok := s.EntryForDate(day(2024, 1, 1))
			assert.False(t, ok)
			_, ok = s.Next(day(2024, 1, 1))
			assert.False(t, ok)
		})
	}
}

func TestEntryForDate_Unscheduled(t *testing.T) {
	s := schedule.Build(pushPullProgram(), day(2024, 1, 1))
	_, ok := s.EntryForDate(day(2024, 1, 3))
	assert.False(t, ok)
}

func TestNext(t *testing.T) {
	s := schedule.Build(pushPullProgram(), day(2024, 1, 1))

	tests := []struct {
		name string
		from time.Time
		want string
	}{
		{"before start", day(2023, 12, 25), "Push"},
		{"on a scheduled day", day(2024, 1, 2), "Pull"},
		{"past the end", day(2024, 3, 1), "Push"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, ok := s.Next(tt.from)
			require.True(t, ok)
			assert.Equal(t, tt.want, e.Label)
		})
	}
}

func TestFormatDaySummary_BlockWithoutDescription(t *testing.T) {
	got := schedule.FormatDaySummary(domain.DayPlan{
		Label:  "Mobility",
		Focus:  "hips",
		Blocks: []domain.Block{{Type: "Mobility"}},
	})
	assert.Equal(t, "**Mobility** — hips\n\nMOBILITY: ", got)
}
