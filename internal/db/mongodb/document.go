package mongodb

import (
	"context"
	"errors"
	"sort"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/kailas-cloud/searchspeed/internal/db"
)

// InsertDocument appends the document with _id set to doc.ID.
func (s *Store) InsertDocument(ctx context.Context, doc *db.Document) error {
	if doc.ID == "" {
		return errors.New("document id is required")
	}
	if len(doc.Strings)+len(doc.Numbers) == 0 {
		return errors.New("document " + doc.ID + " has no fields")
	}

	if _, err := s.coll.InsertOne(ctx, toBSON(doc)); err != nil {
		return &db.Error{Op: db.OpInsertOne, Err: err}
	}
	return nil
}

// DeleteAll removes every document of the collection.
func (s *Store) DeleteAll(ctx context.Context) (int, error) {
	res, err := s.coll.DeleteMany(ctx, bson.D{})
	if err != nil {
		return 0, &db.Error{Op: db.OpDeleteMany, Err: err}
	}
	return int(res.DeletedCount), nil
}

// CountDocuments counts every document of the collection; the index is not involved.
func (s *Store) CountDocuments(ctx context.Context, _ string) (int, error) {
	n, err := s.coll.CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, &db.Error{Op: db.OpCountDocuments, Err: err}
	}
	return int(n), nil
}

// toBSON renders the document with a stable field order: _id, strings, numbers.
func toBSON(doc *db.Document) bson.D {
	out := make(bson.D, 0, 1+len(doc.Strings)+len(doc.Numbers))
	out = append(out, bson.E{Key: "_id", Value: doc.ID})

	for _, k := range sortedKeys(doc.Strings) {
		out = append(out, bson.E{Key: k, Value: doc.Strings[k]})
	}
	for _, k := range sortedKeys(doc.Numbers) {
		out = append(out, bson.E{Key: k, Value: doc.Numbers[k]})
	}
	return out
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
