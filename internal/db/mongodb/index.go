package mongodb

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/kailas-cloud/searchspeed/internal/db"
)

// CreateIndex creates an Atlas Search index with static mappings built from the definition.
// Atlas builds the index asynchronously; queries may miss documents until it is READY.
func (s *Store) CreateIndex(ctx context.Context, def *db.IndexDefinition) error {
	definition, err := buildSearchDefinition(def)
	if err != nil {
		return err
	}

	model := mongo.SearchIndexModel{
		Definition: definition,
		Options:    options.SearchIndexes().SetName(def.Name),
	}
	if _, err := s.coll.SearchIndexes().CreateOne(ctx, model); err != nil {
		if hasCode(err, codeIndexAlreadyExists) {
			return db.ErrIndexExists
		}
		return &db.Error{Op: db.OpCreateSearchIndex, Err: err}
	}
	return nil
}

// DropIndex removes an Atlas Search index by name.
func (s *Store) DropIndex(ctx context.Context, name string) error {
	if err := s.coll.SearchIndexes().DropOne(ctx, name); err != nil {
		if hasCode(err, codeIndexNotFound) {
			return db.ErrIndexNotFound
		}
		return &db.Error{Op: db.OpDropSearchIndex, Err: err}
	}
	return nil
}

// IndexExists lists search indexes filtered by name.
func (s *Store) IndexExists(ctx context.Context, name string) (bool, error) {
	cur, err := s.coll.SearchIndexes().List(ctx, options.SearchIndexes().SetName(name))
	if err != nil {
		return false, &db.Error{Op: db.OpListSearchIndexes, Err: err}
	}
	defer func() { _ = cur.Close(ctx) }()

	found := cur.Next(ctx)
	if err := cur.Err(); err != nil {
		return false, &db.Error{Op: db.OpListSearchIndexes, Err: err}
	}
	return found, nil
}

// buildSearchDefinition maps index fields to Atlas Search field types:
// TEXT -> string, TAG -> token, NUMERIC -> number.
func buildSearchDefinition(idx *db.IndexDefinition) (bson.D, error) {
	if idx.Name == "" {
		return nil, errors.New("index name is required")
	}
	if len(idx.Fields) == 0 {
		return nil, errors.New("at least one field is required")
	}

	fields := make(bson.D, 0, len(idx.Fields))
	for i := range idx.Fields {
		f := &idx.Fields[i]
		if f.Name == "" {
			return nil, errors.New("field name is required")
		}

		var mapping bson.D
		switch f.Type {
		case db.IndexFieldText:
			mapping = bson.D{{Key: "type", Value: "string"}}
		case db.IndexFieldTag:
			mapping = bson.D{{Key: "type", Value: "token"}}
		case db.IndexFieldNumeric:
			mapping = bson.D{{Key: "type", Value: "number"}}
		default:
			return nil, errors.New("unknown field type")
		}
		fields = append(fields, bson.E{Key: f.Name, Value: mapping})
	}

	return bson.D{
		{Key: "mappings", Value: bson.D{
			{Key: "dynamic", Value: false},
			{Key: "fields", Value: fields},
		}},
	}, nil
}
