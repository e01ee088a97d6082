package domain

import "time"

// DateLayout is the calendar-date format used for keys and display.
const DateLayout = "2006-01-02"

// ScheduleEntry is one program day mapped onto a calendar date.
type ScheduleEntry struct {
	Date     time.Time `json:"date"`
	Week     int       `json:"week"`
	DayIndex int       `json:"day_index"`
	Label    string    `json:"label"`
	Focus    string    `json:"focus"`
	Summary  string    `json:"summary"`
}

// DateOnly truncates t to midnight UTC of its calendar day (in t's own location).
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DateKey formats the calendar day of t as YYYY-MM-DD.
func DateKey(t time.Time) string {
	return DateOnly(t).Format(DateLayout)
}

// ParseDate parses a YYYY-MM-DD calendar date.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, time.UTC)
}
