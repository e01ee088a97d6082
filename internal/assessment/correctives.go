// Package assessment turns movement-assessment findings into corrective drills.
package assessment

import (
	"strings"

	"mufasa/fitness-brain/internal/domain"
)

// Corrective drills prescribed by the rule table.
var (
	KneeTracking = domain.Drill{Name: "Lateral band walks", Sets: 2, Reps: "x12/side", RestSec: 30, Cue: "Knees track over toes."}
	CoreBracing  = domain.Drill{Name: "Dead bug", Sets: 2, Reps: "x8/side", RestSec: 30, Cue: "Ribs down. Slow."}
	Breathing    = domain.Drill{Name: "90/90 breathing", Sets: 2, Reps: "x5 breaths", RestSec: 15, Cue: "Exhale fully. Brace gently."}
)

type rule struct {
	keywords []string
	drill    domain.Drill
}

// Rules are independent: every rule whose keyword appears in any finding adds its drill.
var rules = []rule{
	{keywords: []string{"valgus"}, drill: KneeTracking},
	{keywords: []string{"trunk", "lean"}, drill: CoreBracing},
}

// CorrectivesFor maps findings to corrective drills. When no rule fires the
// default breathing/bracing drill is returned.
func CorrectivesFor(findings domain.AssessmentFindings) []domain.Drill {
	text := strings.ToLower(strings.Join(findings, " "))

	out := make([]domain.Drill, 0, len(rules))
	for _, r := range rules {
		for _, kw := range r.keywords {
			if strings.Contains(text, kw) {
				out = append(out, r.drill)
				break
			}
		}
	}
	if len(out) == 0 {
		out = append(out, Breathing)
	}
	return out
}
