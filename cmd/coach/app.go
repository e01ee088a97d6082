package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"mufasa/fitness-brain/internal/catalog"
	"mufasa/fitness-brain/internal/coach"
	"mufasa/fitness-brain/internal/config"
	"mufasa/fitness-brain/internal/logging"
	"mufasa/fitness-brain/internal/repository"
	"mufasa/fitness-brain/internal/repository/memory"
	"mufasa/fitness-brain/internal/repository/mongo"
	"mufasa/fitness-brain/internal/service"
	"mufasa/fitness-brain/internal/session"
	"mufasa/fitness-brain/internal/storage"
	"mufasa/fitness-brain/internal/workout"

	log "github.com/sirupsen/logrus"
	mongodrv "go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/multierr"
)

const defaultCatalogLoadTimeout = 10 * time.Second

// app holds the wired services for one command invocation.
type app struct {
	cfg config.Config

	index *catalog.Index

	exerciseService service.ExerciseService
	profileService  service.ProfileService
	programService  service.ProgramService
	workoutService  service.WorkoutService
	coachService    service.CoachService

	closers []io.Closer
}

type closerFunc func() error

func (f closerFunc) Close() error { return f() }

func newApp(ctx context.Context, cfg config.Config) (*app, error) {
	a := &app{cfg: cfg, index: catalog.NewIndex()}

	a.closers = append(a.closers, logging.Setup(logging.LoggerSetupParams{
		LogFileName:   cfg.Log.File,
		LogToStdout:   cfg.Log.Stdout,
		LogLevel:      cfg.Log.Level,
		LogFormatJSON: cfg.Log.JSON,
	}))

	// --- Repositories ---
	var (
		kv           repository.KVStore
		programRepo  repository.ProgramRepository
		profileRepo  repository.ProfileRepository
		exerciseRepo repository.ExerciseRepository
	)
	switch cfg.Storage.Driver {
	case config.StorageDriverMongo:
		client, err := mongo.ConnectDB(ctx, cfg.Database.URI)
		if err != nil {
			return nil, a.fail(fmt.Errorf("connect to MongoDB: %w", err))
		}
		a.closers = append(a.closers, closerFunc(func() error { return mongo.DisconnectDB(client) }))
		db := client.Database(cfg.Database.Name)
		ensureIndexes(ctx, db)

		kv = mongo.NewMongoKVStore(db)
		programRepo = mongo.NewMongoProgramRepository(db)
		profileRepo = mongo.NewMongoProfileRepository(db)
		exerciseRepo = mongo.NewMongoExerciseRepository(db)
	case config.StorageDriverMemory:
		log.Warn("memory storage: sessions, programs and profiles last for this process only")
		kv = memory.NewKVStore()
		programRepo = memory.NewProgramRepository()
		profileRepo = memory.NewProfileRepository()
	default:
		return nil, a.fail(fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver))
	}

	// --- Object storage ---
	var objects storage.ObjectStorage
	if cfg.S3.BucketName != "" {
		s3Storage, err := storage.NewS3Storage(ctx, cfg.S3)
		if err != nil {
			return nil, a.fail(fmt.Errorf("initialize S3 storage: %w", err))
		}
		objects = s3Storage
	}

	// --- Catalog ---
	source, err := catalogSource(cfg.Catalog, objects, exerciseRepo)
	if err != nil {
		return nil, a.fail(err)
	}
	loadTimeout := cfg.Catalog.LoadTimeout
	if loadTimeout <= 0 {
		loadTimeout = defaultCatalogLoadTimeout
	}
	if _, err := loadCatalog(ctx, catalog.NewLoader(source, a.index), loadTimeout); err != nil {
		return nil, a.fail(err)
	}

	// --- Services ---
	policy := workout.Policy{EquipmentAllowed: cfg.Generator.Equipment}
	if cfg.Generator.Seed != 0 {
		policy.Selector = workout.NewRandomSelector(cfg.Generator.Seed)
	}
	sessions := session.NewManager(kv)
	coachClient := coach.NewClient(coach.Config{
		BaseURL:   cfg.Coach.BaseURL,
		Timeout:   cfg.Coach.Timeout,
		CacheSize: cfg.Coach.CacheSize,
		CacheTTL:  cfg.Coach.CacheTTL,
	}, nil)

	a.exerciseService = service.NewExerciseService(a.index, exerciseRepo, objects, cfg.Catalog.ObjectKey)
	a.profileService = service.NewProfileService(profileRepo)
	a.programService = service.NewProgramService(programRepo, time.Now)
	a.workoutService = service.NewWorkoutService(profileRepo, workout.NewGenerator(a.index), sessions, policy, time.Now)
	a.coachService = service.NewCoachService(coachClient, a.workoutService)
	return a, nil
}

// loadCatalog waits up to timeout for the catalog. The load itself is not
// bound to the wait: a late catalog still lands in the index, and the
// returned channel closes when it does.
func loadCatalog(ctx context.Context, loader *catalog.Loader, timeout time.Duration) (<-chan struct{}, error) {
	loaded := loader.LoadAsync(context.WithoutCancel(ctx))
	wait := time.NewTimer(timeout)
	defer wait.Stop()
	select {
	case <-loaded:
	case <-wait.C:
		log.Warnf("exercise catalog still loading after %s, continuing without it", timeout)
	case <-ctx.Done():
		return loaded, ctx.Err()
	}
	return loaded, nil
}

func ensureIndexes(ctx context.Context, db *mongodrv.Database) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	mongo.EnsureIndexes(ctx, db)
}

// catalogSource picks where the exercise index is read from.
func catalogSource(cfg config.CatalogConfig, objects storage.ObjectStorage, exerciseRepo repository.ExerciseRepository) (catalog.Source, error) {
	switch cfg.Source {
	case config.CatalogSourceFile:
		return catalog.FileSource{Path: cfg.Path}, nil
	case config.CatalogSourceS3:
		if objects == nil {
			return nil, fmt.Errorf("catalog source %q needs s3.bucket_name", cfg.Source)
		}
		return catalog.ObjectSource{Storage: objects, ObjectKey: cfg.ObjectKey}, nil
	case config.CatalogSourceMongo:
		if exerciseRepo == nil {
			return nil, fmt.Errorf("catalog source %q needs the mongo storage driver", cfg.Source)
		}
		return catalog.RepositorySource{Repo: exerciseRepo}, nil
	default:
		return nil, fmt.Errorf("unknown catalog source %q", cfg.Source)
	}
}

func (a *app) fail(err error) error {
	if cerr := a.Close(); cerr != nil {
		return multierr.Append(err, cerr)
	}
	return err
}

// Close releases resources in reverse order of acquisition.
func (a *app) Close() error {
	var err error
	for i := len(a.closers) - 1; i >= 0; i-- {
		err = multierr.Append(err, a.closers[i].Close())
	}
	a.closers = nil
	return err
}
