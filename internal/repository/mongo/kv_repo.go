// internal/repository/mongo/kv_repo.go
package mongo

import (
	"context"
	"errors"
	"time"

	"mufasa/fitness-brain/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const kvCollectionName = "kv"

// kvDocument stores one opaque JSON value under its key.
type kvDocument struct {
	Key       string    `bson:"_id"`
	Value     string    `bson:"value"`
	UpdatedAt time.Time `bson:"updatedAt"`
}

// mongoKVStore implements repository.KVStore
type mongoKVStore struct {
	collection *mongo.Collection
}

// NewMongoKVStore creates a key-value store backed by the "kv" collection.
func NewMongoKVStore(db *mongo.Database) repository.KVStore {
	return &mongoKVStore{
		collection: db.Collection(kvCollectionName),
	}
}

// Read returns the value stored under key.
func (r *mongoKVStore) Read(ctx context.Context, key string) ([]byte, error) {
	var doc kvDocument
	err := r.collection.FindOne(ctx, bson.M{"_id": key}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return []byte(doc.Value), nil
}

// Write replaces (or creates) the value stored under key.
func (r *mongoKVStore) Write(ctx context.Context, key string, value []byte) error {
	if key == "" {
		return errors.New("key is required for write")
	}
	doc := kvDocument{
		Key:       key,
		Value:     string(value),
		UpdatedAt: time.Now().UTC(),
	}
	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": key}, doc, options.Replace().SetUpsert(true))
	return err
}
