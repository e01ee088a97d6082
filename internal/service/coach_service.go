package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"mufasa/fitness-brain/internal/domain"

	log "github.com/sirupsen/logrus"
)

// CoachClient asks the external coaching service for text.
type CoachClient interface {
	Enabled() bool
	Ask(ctx context.Context, userID, message string) string
}

// --- Service Interface ---
type CoachService interface {
	Ask(ctx context.Context, userID, question string) (string, error)
}

// --- Service Implementation ---

// coachService implements the CoachService interface.
type coachService struct {
	client   CoachClient
	workouts WorkoutService
}

// NewCoachService creates a new instance of coachService.
func NewCoachService(client CoachClient, workouts WorkoutService) CoachService {
	return &coachService{client: client, workouts: workouts}
}

// Ask forwards the question to the coaching service together with a short
// description of the user's active workout and week. An unavailable coach
// answers with empty text.
func (s *coachService) Ask(ctx context.Context, userID, question string) (string, error) {
	question = strings.TrimSpace(question)
	if userID == "" || question == "" {
		return "", ErrValidationFailed
	}
	if s.client == nil || !s.client.Enabled() {
		return "", nil
	}
	return s.client.Ask(ctx, userID, s.withContext(ctx, userID, question)), nil
}

func (s *coachService) withContext(ctx context.Context, userID, question string) string {
	var lines []string

	active, err := s.workouts.GetActiveWorkout(ctx, userID)
	switch {
	case err == nil:
		lines = append(lines, describeSession(active))
	case !errors.Is(err, ErrNoActiveSession):
		log.WithError(err).Warn("coach: active workout unavailable")
	}

	stats, err := s.workouts.GetWeeklyStats(ctx, userID)
	if err != nil {
		log.WithError(err).Warn("coach: weekly stats unavailable")
	} else if stats.Planned > 0 {
		lines = append(lines, fmt.Sprintf("This week: %d/%d workouts completed (%d%%).", stats.Completed, stats.Planned, stats.Consistency))
	}

	if len(lines) == 0 {
		return question
	}
	return question + "\n\n" + strings.Join(lines, "\n")
}

func describeSession(s *domain.WorkoutSession) string {
	line := fmt.Sprintf("Active workout %s is %s", domain.DateKey(s.Date), s.Status)
	if s.Status == domain.StatusInProgress && s.Current.Slot != "" && !s.AllSetsLogged() {
		line += fmt.Sprintf(", at %s set %d", s.Current.Slot, s.Current.SetIndex)
	}
	return line + "."
}
