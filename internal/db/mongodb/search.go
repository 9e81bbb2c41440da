package mongodb

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/kailas-cloud/searchspeed/internal/db"
)

// SearchText runs an aggregation with a $search text stage followed by a $project
// exclusion of ExcludeFields. Limit is ignored: the pipeline carries no $limit stage.
func (s *Store) SearchText(ctx context.Context, q *db.TextQuery) (*db.SearchResult, error) {
	if q.IndexName == "" {
		return nil, fmt.Errorf("index name is required")
	}
	if q.Field == "" {
		return nil, fmt.Errorf("field is required")
	}
	if strings.TrimSpace(q.Query) == "" {
		return nil, fmt.Errorf("query is required")
	}

	cur, err := s.coll.Aggregate(ctx, buildSearchPipeline(q))
	if err != nil {
		return nil, &db.Error{Op: db.OpAggregate, Err: err}
	}
	defer func() { _ = cur.Close(ctx) }()

	var entries []db.SearchEntry
	for cur.Next(ctx) {
		var doc bson.M
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode hit: %w", err)
		}
		entries = append(entries, toEntry(doc))
	}
	if err := cur.Err(); err != nil {
		return nil, &db.Error{Op: db.OpAggregate, Err: err}
	}

	res := &db.SearchResult{Total: len(entries), Entries: entries}
	res.StripFields(q.ExcludeFields)
	return res, nil
}

func buildSearchPipeline(q *db.TextQuery) mongo.Pipeline {
	pipe := mongo.Pipeline{
		{{Key: "$search", Value: bson.D{
			{Key: "index", Value: q.IndexName},
			{Key: "text", Value: bson.D{
				{Key: "query", Value: q.Query},
				{Key: "path", Value: q.Field},
			}},
		}}},
	}

	if len(q.ExcludeFields) > 0 {
		project := make(bson.D, 0, len(q.ExcludeFields))
		for _, f := range q.ExcludeFields {
			project = append(project, bson.E{Key: f, Value: 0})
		}
		pipe = append(pipe, bson.D{{Key: "$project", Value: project}})
	}

	return pipe
}

func toEntry(doc bson.M) db.SearchEntry {
	entry := db.SearchEntry{Fields: make(map[string]string, len(doc))}
	for k, v := range doc {
		if k == "_id" {
			entry.Key = stringify(v)
			continue
		}
		entry.Fields[k] = stringify(v)
	}
	return entry
}

func stringify(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case primitive.ObjectID:
		return t.Hex()
	case int32:
		return strconv.FormatInt(int64(t), 10)
	case int64:
		return strconv.FormatInt(t, 10)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	case primitive.DateTime:
		return strconv.FormatInt(int64(t), 10)
	case nil:
		return ""
	default:
		return fmt.Sprint(t)
	}
}
