package repository

import (
	"context"

	"mufasa/fitness-brain/internal/domain"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks mufasa/fitness-brain/internal/repository KVStore,ProgramRepository,ProfileRepository,ExerciseRepository

// Error constants for repository layer
var (
	ErrNotFound     = RepositoryError("not found")
	ErrUpdateFailed = RepositoryError("update failed")
	ErrInvalidInput = RepositoryError("invalid input")
)

// RepositoryError helps distinguish repository errors
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// KVStore is a string-keyed store of opaque JSON documents.
// Read returns ErrNotFound for a key that was never written.
type KVStore interface {
	Read(ctx context.Context, key string) ([]byte, error)
	Write(ctx context.Context, key string, value []byte) error
}

// ProgramRepository defines the interface for interacting with program data.
type ProgramRepository interface {
	Create(ctx context.Context, program *domain.Program) (string, error)
	GetByID(ctx context.Context, id string) (*domain.Program, error)
	GetLatestByUser(ctx context.Context, userID string) (*domain.Program, error) // Newest program wins
}

// ProfileRepository defines the interface for interacting with user profiles.
type ProfileRepository interface {
	GetByUserID(ctx context.Context, userID string) (*domain.Profile, error)
	Upsert(ctx context.Context, profile *domain.Profile) error
}

// ExerciseRepository defines the interface for interacting with the exercise catalog collection.
type ExerciseRepository interface {
	ListAll(ctx context.Context) ([]domain.ExerciseRecord, error)
	ReplaceAll(ctx context.Context, records []domain.ExerciseRecord) error
}
