// internal/domain/training_plan.go
package domain

import (
	"time"
)

// Program is a multi-week training plan authored by the coaching brain.
// Programs are read-only inputs to the scheduler.
type Program struct {
	ID          string     `bson:"_id,omitempty" json:"id,omitempty" toml:"id"`
	UserID      string     `bson:"userId" json:"user_id,omitempty" toml:"user_id"`
	Title       string     `bson:"title,omitempty" json:"title,omitempty" toml:"title"`
	Goal        string     `bson:"goal,omitempty" json:"goal,omitempty" toml:"goal"`
	Weeks       int        `bson:"weeks,omitempty" json:"weeks,omitempty" toml:"weeks"`
	DaysPerWeek int        `bson:"daysPerWeek,omitempty" json:"days_per_week,omitempty" toml:"days_per_week"`
	Plan        []WeekPlan `bson:"plan,omitempty" json:"plan,omitempty" toml:"plan"`
	StartDate   *time.Time `bson:"startDate,omitempty" json:"start_date,omitempty" toml:"start_date"` // Optional anchor for Week 1 / Day 1
	CreatedAt   time.Time  `bson:"createdAt" json:"created_at,omitempty" toml:"-"`
}

// WeekPlan groups the training days of one program week (1-based).
type WeekPlan struct {
	Week int       `bson:"week" json:"week" toml:"week"`
	Days []DayPlan `bson:"days,omitempty" json:"days,omitempty" toml:"days"`
}

// DayPlan is a single training day within a week.
type DayPlan struct {
	DayIndex int     `bson:"dayIndex" json:"day_index" toml:"day_index"` // 1-based within the week
	Label    string  `bson:"label" json:"label" toml:"label"`            // e.g., "Push Day"
	Focus    string  `bson:"focus,omitempty" json:"focus,omitempty" toml:"focus"`
	Blocks   []Block `bson:"blocks,omitempty" json:"blocks,omitempty" toml:"blocks"`
}

// Block is one section of a training day (warm-up, strength, mobility...).
type Block struct {
	Type        string   `bson:"type" json:"type" toml:"type"`
	Description string   `bson:"description,omitempty" json:"description,omitempty" toml:"description"`
	Items       []string `bson:"items,omitempty" json:"items,omitempty" toml:"items"`
}

// DayCount returns the number of training days across all weeks.
func (p *Program) DayCount() int {
	if p == nil {
		return 0
	}
	n := 0
	for _, w := range p.Plan {
		n += len(w.Days)
	}
	return n
}
