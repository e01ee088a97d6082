package mongo

import (
	"context"

	"mufasa/fitness-brain/internal/domain"
	"mufasa/fitness-brain/internal/repository"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const exerciseCollectionName = "exercises"

// mongoExerciseRepository implements repository.ExerciseRepository
type mongoExerciseRepository struct {
	collection *mongo.Collection
}

// NewMongoExerciseRepository creates a new Exercise repository backed by MongoDB.
func NewMongoExerciseRepository(db *mongo.Database) repository.ExerciseRepository {
	return &mongoExerciseRepository{
		collection: db.Collection(exerciseCollectionName),
	}
}

// ListAll returns the whole catalog in insertion order.
func (r *mongoExerciseRepository) ListAll(ctx context.Context) ([]domain.ExerciseRecord, error) {
	var records []domain.ExerciseRecord
	findOptions := options.Find().SetSort(bson.D{{Key: "$natural", Value: 1}})

	cursor, err := r.collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	if err = cursor.Err(); err != nil {
		return nil, err
	}
	if records == nil {
		records = []domain.ExerciseRecord{}
	}
	return records, nil
}

// ReplaceAll swaps the stored catalog for records.
// Records sharing an ID collapse to the last one.
func (r *mongoExerciseRepository) ReplaceAll(ctx context.Context, records []domain.ExerciseRecord) error {
	if _, err := r.collection.DeleteMany(ctx, bson.M{}); err != nil {
		return err
	}

	docs := make([]interface{}, 0, len(records))
	seen := make(map[string]int, len(records))
	for _, rec := range records {
		if rec.ID != "" {
			if i, ok := seen[rec.ID]; ok {
				docs[i] = rec
				continue
			}
			seen[rec.ID] = len(docs)
		}
		docs = append(docs, rec)
	}
	if len(docs) == 0 {
		return nil
	}
	_, err := r.collection.InsertMany(ctx, docs, options.InsertMany().SetOrdered(true))
	return err
}

// EnsureExerciseIndexes creates necessary indexes for the exercises collection.
func EnsureExerciseIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "category", Value: 1}, {Key: "equipment", Value: 1}},
			Options: options.Index(),
		},
	}

	if _, err := collection.Indexes().CreateMany(ctx, indexes); err != nil {
		logrus.WithField("collection", collection.Name()).Warnf("failed to create indexes: %v", err)
	}
}
