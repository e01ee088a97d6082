package domain

// Profile holds what the coaching brain knows about a user.
type Profile struct {
	UserID      string   `bson:"_id" json:"user_id"`
	Name        string   `bson:"name" json:"name"`
	Goal        string   `bson:"goal,omitempty" json:"goal,omitempty"`
	Injuries    []string `bson:"injuries,omitempty" json:"injuries,omitempty"`
	DaysPerWeek int      `bson:"daysPerWeek,omitempty" json:"days_per_week,omitempty"` // Training frequency target
}

// ProfileSnapshot is the part of a profile frozen into a session at generation time.
type ProfileSnapshot struct {
	Name     string   `json:"name"`
	Goal     string   `json:"goal"`
	Injuries []string `json:"injuries"`
}

// Snapshot captures the name, goal and injuries of the profile.
// A nil profile yields an empty snapshot.
func (p *Profile) Snapshot() ProfileSnapshot {
	if p == nil {
		return ProfileSnapshot{Injuries: []string{}}
	}
	injuries := make([]string, len(p.Injuries))
	copy(injuries, p.Injuries)
	return ProfileSnapshot{
		Name:     p.Name,
		Goal:     p.Goal,
		Injuries: injuries,
	}
}

// AssessmentFindings are free-text findings of a movement assessment
// (e.g., "knee valgus on left", "excessive forward trunk lean").
type AssessmentFindings []string
