package redis

import (
	"context"
	"fmt"
	"sort"
	"strconv"

	"github.com/kailas-cloud/searchspeed/internal/db"
)

// delBatchSize bounds the number of keys per DEL during DeleteAll.
const delBatchSize = 100

// InsertDocument stores the document as a hash under prefix+ID.
func (s *Store) InsertDocument(ctx context.Context, doc *db.Document) error {
	if doc.ID == "" {
		return fmt.Errorf("document id is required")
	}

	fields := make(map[string]string, len(doc.Strings)+len(doc.Numbers))
	for k, v := range doc.Strings {
		fields[k] = v
	}
	for k, v := range doc.Numbers {
		fields[k] = strconv.FormatInt(v, 10)
	}
	if len(fields) == 0 {
		return fmt.Errorf("document %s has no fields", doc.ID)
	}

	names := make([]string, 0, len(fields))
	for k := range fields {
		names = append(names, k)
	}
	sort.Strings(names)

	key := s.prefix + doc.ID
	cmd := s.b().Hset().Key(key).FieldValue()
	for _, k := range names {
		cmd = cmd.FieldValue(k, fields[k])
	}
	if err := s.do(ctx, cmd.Build()).Error(); err != nil {
		return &db.Error{Op: db.OpHSet, Err: fmt.Errorf("key %s: %w", key, err)}
	}
	return nil
}

// DeleteAll removes every key under the store prefix and returns how many were deleted.
func (s *Store) DeleteAll(ctx context.Context) (int, error) {
	keys, err := s.scan(ctx, s.prefix+"*")
	if err != nil {
		return 0, err
	}

	deleted := 0
	for start := 0; start < len(keys); start += delBatchSize {
		end := min(start+delBatchSize, len(keys))
		cmd := s.b().Del().Key(keys[start:end]...).Build()
		n, err := s.do(ctx, cmd).AsInt64()
		if err != nil {
			return deleted, &db.Error{Op: db.OpDel, Err: err}
		}
		deleted += int(n)
	}
	return deleted, nil
}

// CountDocuments returns the number of documents covered by the index via FT.SEARCH with LIMIT 0 0.
func (s *Store) CountDocuments(ctx context.Context, index string) (int, error) {
	cmd := s.b().Arbitrary("FT.SEARCH").Args(index, "*", "LIMIT", "0", "0").Build()
	raw, err := s.do(ctx, cmd).ToArray()
	if err != nil {
		return 0, &db.Error{Op: db.OpSearch, Err: err}
	}
	if len(raw) == 0 {
		return 0, nil
	}
	total, err := raw[0].AsInt64()
	if err != nil {
		return 0, fmt.Errorf("parse count: %w", err)
	}
	return int(total), nil
}

// scan iterates keys matching a pattern.
func (s *Store) scan(ctx context.Context, pattern string) ([]string, error) {
	var keys []string
	var cursor uint64

	for {
		cmd := s.b().Scan().Cursor(cursor).Match(pattern).Count(100).Build()
		res, err := s.do(ctx, cmd).AsScanEntry()
		if err != nil {
			return nil, &db.Error{Op: db.OpScan, Err: err}
		}
		keys = append(keys, res.Elements...)
		cursor = res.Cursor
		if cursor == 0 {
			break
		}
	}

	return keys, nil
}
