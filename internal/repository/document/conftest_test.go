package document

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
	insertFn      func(ctx context.Context, doc *db.Document) error
	deleteAllFn   func(ctx context.Context) (int, error)
	countFn       func(ctx context.Context, index string) (int, error)
	createIndexFn func(ctx context.Context, def *db.IndexDefinition) error
	indexExistsFn func(ctx context.Context, name string) (bool, error)
	dropIndexFn   func(ctx context.Context, name string) error
}

func (m *mockStore) InsertDocument(ctx context.Context, doc *db.Document) error {
	if m.insertFn != nil {
		return m.insertFn(ctx, doc)
	}
	return nil
}

func (m *mockStore) DeleteAll(ctx context.Context) (int, error) {
	if m.deleteAllFn != nil {
		return m.deleteAllFn(ctx)
	}
	return 0, nil
}

func (m *mockStore) CountDocuments(ctx context.Context, index string) (int, error) {
	if m.countFn != nil {
		return m.countFn(ctx, index)
	}
	return 0, nil
}

func (m *mockStore) CreateIndex(ctx context.Context, def *db.IndexDefinition) error {
	if m.createIndexFn != nil {
		return m.createIndexFn(ctx, def)
	}
	return nil
}

func (m *mockStore) IndexExists(ctx context.Context, name string) (bool, error) {
	if m.indexExistsFn != nil {
		return m.indexExistsFn(ctx, name)
	}
	return false, nil
}

func (m *mockStore) DropIndex(ctx context.Context, name string) error {
	if m.dropIndexFn != nil {
		return m.dropIndexFn(ctx, name)
	}
	return nil
}
