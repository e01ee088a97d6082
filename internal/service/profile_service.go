package service

import (
	"context"
	"errors"
	"strings"

	"mufasa/fitness-brain/internal/domain"
	"mufasa/fitness-brain/internal/repository"
)

// --- Error Definitions ---
var (
	ErrProfileNotFound = errors.New("profile not found")
)

// --- Service Interface ---
type ProfileService interface {
	GetProfile(ctx context.Context, userID string) (*domain.Profile, error)
	SaveProfile(ctx context.Context, profile *domain.Profile) (*domain.Profile, error)
}

// --- Service Implementation ---

// profileService implements the ProfileService interface.
type profileService struct {
	profileRepo repository.ProfileRepository
}

// NewProfileService creates a new instance of profileService.
func NewProfileService(profileRepo repository.ProfileRepository) ProfileService {
	return &profileService{profileRepo: profileRepo}
}

// GetProfile retrieves the profile of a user.
func (s *profileService) GetProfile(ctx context.Context, userID string) (*domain.Profile, error) {
	if userID == "" {
		return nil, ErrValidationFailed
	}
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return profile, nil
}

// SaveProfile validates and stores a profile, replacing any previous one.
func (s *profileService) SaveProfile(ctx context.Context, profile *domain.Profile) (*domain.Profile, error) {
	if profile == nil || strings.TrimSpace(profile.UserID) == "" {
		return nil, ErrValidationFailed
	}
	if profile.DaysPerWeek < 0 || profile.DaysPerWeek > 7 {
		return nil, ErrValidationFailed
	}
	p := *profile
	p.UserID = strings.TrimSpace(p.UserID)
	p.Injuries = cleanList(p.Injuries)

	if err := s.profileRepo.Upsert(ctx, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// cleanList trims entries and drops empty ones.
func cleanList(in []string) []string {
	var out []string
	for _, v := range in {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
