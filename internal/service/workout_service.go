package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"mufasa/fitness-brain/internal/domain"
	"mufasa/fitness-brain/internal/repository"
	"mufasa/fitness-brain/internal/session"
	"mufasa/fitness-brain/internal/workout"

	log "github.com/sirupsen/logrus"
)

// --- Error Definitions ---
var (
	ErrNoActiveSession = errors.New("no active workout session")
	ErrSessionNotFound = errors.New("no workout session for that date")
)

// WorkoutGenerator builds a new session from the catalog.
type WorkoutGenerator interface {
	Generate(profile *domain.Profile, findings domain.AssessmentFindings, policy workout.Policy) *domain.WorkoutSession
}

// --- Service Interface ---
type WorkoutService interface {
	GenerateWorkout(ctx context.Context, userID string, findings domain.AssessmentFindings) (*domain.WorkoutSession, error)
	GetActiveWorkout(ctx context.Context, userID string) (*domain.WorkoutSession, error)
	StartWorkout(ctx context.Context, userID string) (*domain.WorkoutSession, error)
	LogSet(ctx context.Context, userID string, result domain.SetResult) (*domain.WorkoutSession, error)
	CompleteWorkout(ctx context.Context, userID string) (*domain.WorkoutSession, error)
	MarkDayComplete(ctx context.Context, userID string, date time.Time) (*domain.WorkoutSession, error)
	GetHistory(ctx context.Context, userID string) ([]*domain.WorkoutSession, error)
	GetWeeklyStats(ctx context.Context, userID string) (session.Stats, error)
	ResetWorkouts(ctx context.Context, userID string) error
}

// --- Service Implementation ---

// workoutService implements the WorkoutService interface.
type workoutService struct {
	profileRepo repository.ProfileRepository
	generator   WorkoutGenerator
	sessions    *session.Manager
	policy      workout.Policy
	now         func() time.Time
}

// NewWorkoutService creates a new instance of workoutService. The policy is
// applied to every generated workout.
func NewWorkoutService(
	profileRepo repository.ProfileRepository,
	generator WorkoutGenerator,
	sessions *session.Manager,
	policy workout.Policy,
	now func() time.Time,
) WorkoutService {
	if now == nil {
		now = time.Now
	}
	return &workoutService{
		profileRepo: profileRepo,
		generator:   generator,
		sessions:    sessions,
		policy:      policy,
		now:         now,
	}
}

// GenerateWorkout creates today's workout for the user and makes it the
// active session. A user without a profile gets an anonymous snapshot.
func (s *workoutService) GenerateWorkout(ctx context.Context, userID string, findings domain.AssessmentFindings) (*domain.WorkoutSession, error) {
	if userID == "" {
		return nil, ErrValidationFailed
	}
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("load profile: %w", err)
		}
		profile = nil
	}

	generated := s.generator.Generate(profile, findings, s.policy)
	active, err := s.sessions.SetActive(ctx, userID, generated)
	if err != nil {
		return nil, err
	}
	log.WithFields(log.Fields{"user": userID, "session": active.ID}).Info("workout generated")
	return active, nil
}

// GetActiveWorkout returns the active session.
func (s *workoutService) GetActiveWorkout(ctx context.Context, userID string) (*domain.WorkoutSession, error) {
	active, err := s.sessions.Active(ctx, userID)
	if err != nil {
		return nil, err
	}
	if active == nil {
		return nil, ErrNoActiveSession
	}
	return active, nil
}

// StartWorkout moves the active session to in_progress.
func (s *workoutService) StartWorkout(ctx context.Context, userID string) (*domain.WorkoutSession, error) {
	active, err := s.GetActiveWorkout(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.sessions.Start(ctx, userID, active)
}

// LogSet records a performed set on the active session.
func (s *workoutService) LogSet(ctx context.Context, userID string, result domain.SetResult) (*domain.WorkoutSession, error) {
	updated, err := s.sessions.LogSet(ctx, userID, result)
	if err != nil {
		if errors.Is(err, session.ErrSessionNotFound) {
			return nil, ErrNoActiveSession
		}
		return nil, err
	}
	return updated, nil
}

// CompleteWorkout completes the active session.
func (s *workoutService) CompleteWorkout(ctx context.Context, userID string) (*domain.WorkoutSession, error) {
	active, err := s.GetActiveWorkout(ctx, userID)
	if err != nil {
		return nil, err
	}
	done, err := s.sessions.Complete(ctx, userID, active)
	if err != nil {
		return nil, err
	}
	log.WithFields(log.Fields{"user": userID, "session": done.ID}).Info("workout completed")
	return done, nil
}

// MarkDayComplete completes the session generated for the given date.
func (s *workoutService) MarkDayComplete(ctx context.Context, userID string, date time.Time) (*domain.WorkoutSession, error) {
	done, err := s.sessions.MarkDay(ctx, userID, date)
	if err != nil {
		if errors.Is(err, session.ErrSessionNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	return done, nil
}

// GetHistory returns the user's sessions, newest first.
func (s *workoutService) GetHistory(ctx context.Context, userID string) ([]*domain.WorkoutSession, error) {
	return s.sessions.History(ctx, userID)
}

// GetWeeklyStats summarizes the current Monday-start week.
func (s *workoutService) GetWeeklyStats(ctx context.Context, userID string) (session.Stats, error) {
	return s.sessions.WeeklyStats(ctx, userID, s.now())
}

// ResetWorkouts clears the active session and the history.
func (s *workoutService) ResetWorkouts(ctx context.Context, userID string) error {
	if err := s.sessions.Reset(ctx, userID); err != nil {
		return err
	}
	log.WithField("user", userID).Info("workout state reset")
	return nil
}
