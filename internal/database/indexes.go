package database

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// EnsureIndexes creates the lookup indexes the hot paths depend on. These are
// deliberately non-unique: api-key uniqueness is enforced by the datastore's
// serialized generate-and-check loop, not by a storage constraint.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	indexes := []struct {
		collection string
		keys       bson.D
	}{
		{"users", bson.D{{Key: "apiKey", Value: 1}}},
		{"users", bson.D{{Key: "email", Value: 1}}},
		{"steps", bson.D{{Key: "challengeId", Value: 1}}},
	}

	for _, idx := range indexes {
		_, err := db.Collection(idx.collection).Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys: idx.keys,
		})
		if err != nil {
			return fmt.Errorf("failed to create index on %s: %w", idx.collection, err)
		}
	}
	return nil
}
