package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"mufasa/fitness-brain/internal/domain"
	"mufasa/fitness-brain/internal/program"
	"mufasa/fitness-brain/internal/repository"
	"mufasa/fitness-brain/internal/schedule"

	log "github.com/sirupsen/logrus"
)

// --- Error Definitions ---
var (
	ErrProgramNotFound  = errors.New("program not found")
	ErrNoScheduledDays  = errors.New("program has no scheduled days")
	ErrProgramForbidden = errors.New("program belongs to another user")
)

// --- Service Interface ---
type ProgramService interface {
	ImportProgram(ctx context.Context, userID, path string) (*domain.Program, error)
	GetLatestProgram(ctx context.Context, userID string) (*domain.Program, error)
	GetProgram(ctx context.Context, userID, programID string) (*domain.Program, error)
	LoadSchedule(ctx context.Context, userID string) (*schedule.Schedule, error)
	Today(ctx context.Context, userID string) (domain.ScheduleEntry, error)
}

// --- Service Implementation ---

// programService implements the ProgramService interface.
type programService struct {
	programRepo repository.ProgramRepository
	now         func() time.Time
}

// NewProgramService creates a new instance of programService.
func NewProgramService(programRepo repository.ProgramRepository, now func() time.Time) ProgramService {
	if now == nil {
		now = time.Now
	}
	return &programService{programRepo: programRepo, now: now}
}

// ImportProgram parses a program file (JSON or TOML) and stores it for the user.
func (s *programService) ImportProgram(ctx context.Context, userID, path string) (*domain.Program, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, ErrValidationFailed
	}
	p, err := program.ParseFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidationFailed, err)
	}
	now := s.now()
	p.UserID = userID
	p.CreatedAt = now.UTC()
	if p.StartDate == nil {
		// Week 1 Day 1 is the user's calendar day of the import.
		day := domain.DateOnly(now)
		p.StartDate = &day
	}

	id, err := s.programRepo.Create(ctx, p)
	if err != nil {
		return nil, err
	}
	p.ID = id
	log.WithFields(log.Fields{"user": userID, "program": id, "days": p.DayCount()}).Info("program imported")
	return p, nil
}

// GetLatestProgram returns the most recently stored program of the user.
func (s *programService) GetLatestProgram(ctx context.Context, userID string) (*domain.Program, error) {
	p, err := s.programRepo.GetLatestByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProgramNotFound
		}
		return nil, err
	}
	return p, nil
}

// GetProgram returns a specific program, checking that it belongs to the user.
func (s *programService) GetProgram(ctx context.Context, userID, programID string) (*domain.Program, error) {
	p, err := s.programRepo.GetByID(ctx, programID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProgramNotFound
		}
		return nil, err
	}
	if p.UserID != userID {
		return nil, ErrProgramForbidden
	}
	return p, nil
}

// LoadSchedule builds the calendar of the user's latest program. Week 1
// Day 1 falls on the program's start date, else on the local day it was
// created. Only a program with neither is anchored at today.
func (s *programService) LoadSchedule(ctx context.Context, userID string) (*schedule.Schedule, error) {
	p, err := s.GetLatestProgram(ctx, userID)
	if err != nil {
		return nil, err
	}
	var start time.Time
	switch {
	case p.StartDate != nil:
		start = *p.StartDate
	case !p.CreatedAt.IsZero():
		start = p.CreatedAt.In(s.now().Location())
	default:
		start = s.now()
		log.WithFields(log.Fields{"user": userID, "program": p.ID}).Debug("program has no start date, anchoring at today")
	}
	return schedule.Build(p, start), nil
}

// Today returns the entry scheduled for today, or the next scheduled day
// when today is a rest day or outside the program.
func (s *programService) Today(ctx context.Context, userID string) (domain.ScheduleEntry, error) {
	sched, err := s.LoadSchedule(ctx, userID)
	if err != nil {
		return domain.ScheduleEntry{}, err
	}
	today := s.now()
	if entry, ok := sched.EntryForDate(today); ok {
		return entry, nil
	}
	if entry, ok := sched.Next(today); ok {
		return entry, nil
	}
	return domain.ScheduleEntry{}, ErrNoScheduledDays
}
