package memory

import (
	"context"
	"sync"

	"mufasa/fitness-brain/internal/domain"
	"mufasa/fitness-brain/internal/repository"

	"github.com/google/uuid"
)

// ProgramRepository keeps programs in insertion order.
type ProgramRepository struct {
	mu       sync.RWMutex
	programs []domain.Program
}

var _ repository.ProgramRepository = (*ProgramRepository)(nil)

func NewProgramRepository() *ProgramRepository {
	return &ProgramRepository{}
}

func (r *ProgramRepository) Create(_ context.Context, program *domain.Program) (string, error) {
	if program == nil || program.UserID == "" {
		return "", repository.ErrInvalidInput
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	p := *program
	p.ID = uuid.NewString()
	r.programs = append(r.programs, p)
	return p.ID, nil
}

func (r *ProgramRepository) GetByID(_ context.Context, id string) (*domain.Program, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.programs {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, repository.ErrNotFound
}

// GetLatestByUser returns the program created last; ties on CreatedAt go to
// the later insert.
func (r *ProgramRepository) GetLatestByUser(_ context.Context, userID string) (*domain.Program, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var latest *domain.Program
	for i := range r.programs {
		p := r.programs[i]
		if p.UserID != userID {
			continue
		}
		if latest == nil || !p.CreatedAt.Before(latest.CreatedAt) {
			latest = &p
		}
	}
	if latest == nil {
		return nil, repository.ErrNotFound
	}
	return latest, nil
}
