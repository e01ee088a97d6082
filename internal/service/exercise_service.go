package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path"

	"mufasa/fitness-brain/internal/catalog"
	"mufasa/fitness-brain/internal/domain"
	"mufasa/fitness-brain/internal/repository"
	"mufasa/fitness-brain/internal/storage"

	log "github.com/sirupsen/logrus"
	"go.uber.org/multierr"
)

// --- Error Definitions ---
var (
	ErrExerciseNotFound = errors.New("exercise not found")
	ErrValidationFailed = errors.New("validation failed")
)

// --- Service Interface ---
type ExerciseService interface {
	Search(query string, facets catalog.Facets) []domain.ExerciseRecord
	GetExercise(id string) (*domain.ExerciseRecord, error)
	ImageURLs(ctx context.Context, id string) ([]string, error)
	ImportCatalog(ctx context.Context, source catalog.Source) (int, error)
}

// --- Service Implementation ---

// exerciseService implements the ExerciseService interface.
type exerciseService struct {
	index        *catalog.Index
	exerciseRepo repository.ExerciseRepository // optional publish target
	objects      storage.ObjectStorage         // optional publish target and image host
	objectKey    string
}

// NewExerciseService creates a new instance of exerciseService. The
// repository and object storage may be nil when not configured.
func NewExerciseService(index *catalog.Index, exerciseRepo repository.ExerciseRepository, objects storage.ObjectStorage, objectKey string) ExerciseService {
	return &exerciseService{
		index:        index,
		exerciseRepo: exerciseRepo,
		objects:      objects,
		objectKey:    objectKey,
	}
}

// Search queries the loaded catalog. An unloaded catalog matches nothing.
func (s *exerciseService) Search(query string, facets catalog.Facets) []domain.ExerciseRecord {
	return s.index.Search(query, facets)
}

// GetExercise retrieves a single exercise from the loaded catalog.
func (s *exerciseService) GetExercise(id string) (*domain.ExerciseRecord, error) {
	rec, err := s.index.Lookup(id)
	if err != nil {
		if errors.Is(err, catalog.ErrExerciseNotFound) {
			return nil, ErrExerciseNotFound
		}
		return nil, err
	}
	return &rec, nil
}

// ImageURLs returns viewable URLs for the exercise images: presigned
// download URLs when the images live in object storage, the stored paths
// otherwise.
func (s *exerciseService) ImageURLs(ctx context.Context, id string) ([]string, error) {
	rec, err := s.GetExercise(id)
	if err != nil {
		return nil, err
	}
	urls := make([]string, 0, len(rec.Images))
	for _, img := range rec.Images {
		if s.objects == nil {
			urls = append(urls, img)
			continue
		}
		url, err := s.objects.GeneratePresignedDownloadURL(ctx, path.Join("images", img), 0)
		if err != nil {
			return nil, err
		}
		urls = append(urls, url)
	}
	return urls, nil
}

// ImportCatalog reads a catalog from source, loads it and publishes it to
// the configured exercise collection and object storage. The catalog is
// loaded even when publishing fails; publish errors are returned combined.
func (s *exerciseService) ImportCatalog(ctx context.Context, source catalog.Source) (int, error) {
	records, err := source.Records(ctx)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrValidationFailed, err)
	}
	s.index.Load(records)
	log.WithField("exercises", len(records)).Info("catalog imported")

	var publishErr error
	if s.exerciseRepo != nil {
		publishErr = multierr.Append(publishErr, s.exerciseRepo.ReplaceAll(ctx, records))
	}
	if s.objects != nil {
		data, err := catalog.Encode(records)
		if err != nil {
			publishErr = multierr.Append(publishErr, err)
		} else {
			publishErr = multierr.Append(publishErr, s.objects.PutObject(ctx, s.objectKey, bytes.NewReader(data), "application/json"))
		}
	}
	return len(records), publishErr
}
