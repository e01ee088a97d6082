package memory

import (
	"context"
	"slices"
	"sync"

	"mufasa/fitness-brain/internal/domain"
	"mufasa/fitness-brain/internal/repository"
)

// ProfileRepository keeps one profile per user.
type ProfileRepository struct {
	mu       sync.RWMutex
	profiles map[string]domain.Profile
}

var _ repository.ProfileRepository = (*ProfileRepository)(nil)

func NewProfileRepository() *ProfileRepository {
	return &ProfileRepository{profiles: make(map[string]domain.Profile)}
}

func (r *ProfileRepository) GetByUserID(_ context.Context, userID string) (*domain.Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.profiles[userID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	p.Injuries = slices.Clone(p.Injuries)
	return &p, nil
}

func (r *ProfileRepository) Upsert(_ context.Context, profile *domain.Profile) error {
	if profile == nil || profile.UserID == "" {
		return repository.ErrInvalidInput
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	p := *profile
	p.Injuries = slices.Clone(p.Injuries)
	r.profiles[p.UserID] = p
	return nil
}
