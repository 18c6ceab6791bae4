package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/dmitrymomot/authstate/core/kv"
)

const collectionName = "kv_records"

type record struct {
	Key   string `bson:"_id"`
	Value []byte `bson:"value"`
}

// Store implements kv.Store on a MongoDB collection, one document per record.
type Store struct {
	collection *mongo.Collection
}

// NewStore wraps a database handle from an established client.
func NewStore(db *mongo.Database) *Store {
	return &Store{collection: db.Collection(collectionName)}
}

// Get returns the value stored under key, or kv.ErrNotFound.
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, kv.ErrEmptyKey
	}

	var rec record
	err := s.collection.FindOne(ctx, bson.M{"_id": key}).Decode(&rec)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, kv.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return rec.Value, nil
}

// Set stores value under key, replacing any previous value.
func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	if key == "" {
		return kv.ErrEmptyKey
	}

	_, err := s.collection.ReplaceOne(ctx,
		bson.M{"_id": key},
		record{Key: key, Value: value},
		options.Replace().SetUpsert(true),
	)
	return err
}

// Delete removes the value stored under key. Missing keys are ignored.
func (s *Store) Delete(ctx context.Context, key string) error {
	if key == "" {
		return kv.ErrEmptyKey
	}

	_, err := s.collection.DeleteOne(ctx, bson.M{"_id": key})
	return err
}
