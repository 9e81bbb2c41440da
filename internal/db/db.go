package db

import (
	"context"
	"time"
)

// Store is the main database facade combining all sub-interfaces.
//
//nolint:interfacebloat // facade; consumers use narrow sub-interfaces (ISP)
type Store interface {
	Pinger
	DocumentStore
	IndexManager
	Searcher
	Close()
	WaitForReady(ctx context.Context, timeout time.Duration) error
}

// Pinger checks database connectivity.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Document is a store-agnostic document. A store is bound to a single collection,
// so ID is unique only within it.
type Document struct {
	ID      string
	Strings map[string]string
	Numbers map[string]int64
}

// DocumentStore appends, counts and bulk-deletes documents of the bound collection.
type DocumentStore interface {
	InsertDocument(ctx context.Context, doc *Document) error
	DeleteAll(ctx context.Context) (int, error)
	CountDocuments(ctx context.Context, index string) (int, error)
}

// IndexManager provides full-text index lifecycle operations.
type IndexManager interface {
	CreateIndex(ctx context.Context, def *IndexDefinition) error
	DropIndex(ctx context.Context, name string) error
	IndexExists(ctx context.Context, name string) (bool, error)
}

// Searcher provides full-text search over an index.
type Searcher interface {
	SearchText(ctx context.Context, q *TextQuery) (*SearchResult, error)
}
