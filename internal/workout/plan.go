package workout

import (
	"fmt"
	"strings"

	"mufasa/fitness-brain/internal/domain"
)

// RenderPlan formats a session as the plain-text plan shown to the user.
func RenderPlan(s *domain.WorkoutSession, daysPerWeek int) string {
	if daysPerWeek <= 0 {
		daysPerWeek = 4
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Today's Program (%s)\n", domain.DateKey(s.Date))
	fmt.Fprintf(&b, "Schedule: %d days/week\n\n", daysPerWeek)

	b.WriteString("Warm-up:\n")
	for _, d := range s.Blocks.Warmup {
		fmt.Fprintf(&b, "- %s %s\n", d.Name, d.Reps)
	}

	b.WriteString("\nCorrective:\n")
	for _, d := range s.Blocks.Corrective {
		fmt.Fprintf(&b, "- %s — %d×%s\n", d.Name, d.Sets, d.Reps)
	}

	b.WriteString("\nStrength (3 rounds):\n")
	for _, sl := range s.Blocks.Strength {
		fmt.Fprintf(&b, "%s) %s — %d sets × %s | rest %ds\n", sl.Slot, sl.Name, sl.Sets, sl.Reps, sl.RestSec)
	}

	b.WriteString("\nFinisher:\n")
	for _, sl := range s.Blocks.Finisher {
		fmt.Fprintf(&b, "- %s — %s\n", sl.Name, sl.Reps)
	}

	if s.CoachingFocus != "" {
		fmt.Fprintf(&b, "\nCoach focus: %s", s.CoachingFocus)
	}
	return b.String()
}
