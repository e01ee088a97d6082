package catalog

import (
	"context"
	"fmt"
	"io"
	"os"

	"mufasa/fitness-brain/internal/domain"
)

// Source supplies the full exercise list in one shot.
type Source interface {
	Records(ctx context.Context) ([]domain.ExerciseRecord, error)
}

// ObjectReader reads a whole object from object storage.
type ObjectReader interface {
	GetObject(ctx context.Context, objectKey string) (io.ReadCloser, error)
}

// ExerciseLister lists every exercise stored in a repository.
type ExerciseLister interface {
	ListAll(ctx context.Context) ([]domain.ExerciseRecord, error)
}

// FileSource reads the exercise index from a local JSON file.
type FileSource struct {
	Path string
}

func (s FileSource) Records(_ context.Context) ([]domain.ExerciseRecord, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("read exercise index %s: %w", s.Path, err)
	}
	return Decode(data)
}

// ObjectSource reads the exercise index from an object in the bucket.
type ObjectSource struct {
	Storage   ObjectReader
	ObjectKey string
}

func (s ObjectSource) Records(ctx context.Context) ([]domain.ExerciseRecord, error) {
	body, err := s.Storage.GetObject(ctx, s.ObjectKey)
	if err != nil {
		return nil, fmt.Errorf("get exercise index %s: %w", s.ObjectKey, err)
	}
	defer body.Close()

	data, err := io.ReadAll(body)
	if err != nil {
		return nil, fmt.Errorf("read exercise index %s: %w", s.ObjectKey, err)
	}
	return Decode(data)
}

// RepositorySource reads the catalog from the exercises collection.
type RepositorySource struct {
	Repo ExerciseLister
}

func (s RepositorySource) Records(ctx context.Context) ([]domain.ExerciseRecord, error) {
	return s.Repo.ListAll(ctx)
}
