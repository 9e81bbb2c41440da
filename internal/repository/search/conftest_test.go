package search

import (
	"context"

	"github.com/kailas-cloud/searchspeed/internal/db"
)

const (
	testIndex  = "large_doc_test"
	testPrefix = "test:speed_test:"
)

// mockStore implements the consumer interface for tests.
type mockStore struct {
	searchTextFn func(ctx context.Context, q *db.TextQuery) (*db.SearchResult, error)
}

func (m *mockStore) SearchText(ctx context.Context, q *db.TextQuery) (*db.SearchResult, error) {
	if m.searchTextFn != nil {
		return m.searchTextFn(ctx, q)
	}
	return &db.SearchResult{}, nil
}
