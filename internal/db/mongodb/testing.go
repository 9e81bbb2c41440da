package mongodb

import "go.mongodb.org/mongo-driver/mongo"

// NewStoreForTest creates a Store bound to the provided collection (test-only).
func NewStoreForTest(coll *mongo.Collection) *Store {
	return &Store{coll: coll}
}
