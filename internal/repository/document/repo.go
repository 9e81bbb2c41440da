package document

import (
	"context"
	"errors"
	"fmt"

	"github.com/kailas-cloud/searchspeed/internal/db"
	domdoc "github.com/kailas-cloud/searchspeed/internal/domain/document"
)

// store is the consumer interface for document and index operations (ISP).
type store interface {
	InsertDocument(ctx context.Context, doc *db.Document) error
	DeleteAll(ctx context.Context) (int, error)
	CountDocuments(ctx context.Context, index string) (int, error)
	CreateIndex(ctx context.Context, def *db.IndexDefinition) error
	IndexExists(ctx context.Context, name string) (bool, error)
	DropIndex(ctx context.Context, name string) error
}

// Repo implements usecase/benchmark.DocumentRepository.
type Repo struct {
	store  store
	index  string
	prefix string
}

// New creates a document repository bound to one text index.
// prefix is the key prefix the index covers; empty for stores scoped by collection.
func New(s store, index, prefix string) *Repo {
	return &Repo{store: s, index: index, prefix: prefix}
}

// Insert appends the document. Every call stores a new document.
func (r *Repo) Insert(ctx context.Context, doc *domdoc.Document) error {
	if err := r.store.InsertDocument(ctx, toRecord(doc)); err != nil {
		return fmt.Errorf("insert document %s: %w", doc.ID(), err)
	}
	return nil
}

// DeleteAll removes every document of the collection and returns how many were removed.
func (r *Repo) DeleteAll(ctx context.Context) (int, error) {
	n, err := r.store.DeleteAll(ctx)
	if err != nil {
		return n, fmt.Errorf("delete all documents: %w", err)
	}
	return n, nil
}

// Count returns the number of documents in the collection.
func (r *Repo) Count(ctx context.Context) (int, error) {
	n, err := r.store.CountDocuments(ctx, r.index)
	if err != nil {
		return 0, fmt.Errorf("count documents %s: %w", r.index, err)
	}
	return n, nil
}

// EnsureIndex creates the text index unless it already exists.
// Reports whether this call created it.
func (r *Repo) EnsureIndex(ctx context.Context) (bool, error) {
	exists, err := r.store.IndexExists(ctx, r.index)
	if err != nil {
		return false, fmt.Errorf("check index %s: %w", r.index, err)
	}
	if exists {
		return false, nil
	}

	def, err := r.IndexDefinition()
	if err != nil {
		return false, err
	}
	if err := r.store.CreateIndex(ctx, def); err != nil {
		if errors.Is(err, db.ErrIndexExists) {
			return false, nil
		}
		return false, fmt.Errorf("create index %s: %w", r.index, err)
	}
	return true, nil
}

// DropIndex removes the text index, leaving stored documents in place.
// Reports whether an index was there to drop.
func (r *Repo) DropIndex(ctx context.Context) (bool, error) {
	if err := r.store.DropIndex(ctx, r.index); err != nil {
		if errors.Is(err, db.ErrIndexNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("drop index %s: %w", r.index, err)
	}
	return true, nil
}

// IndexDefinition returns the schema of the text index: key is full-text,
// the rest is bookkeeping.
func (r *Repo) IndexDefinition() (*db.IndexDefinition, error) {
	b := db.NewIndex(r.index).
		Text(domdoc.FieldKey).
		Tag(domdoc.FieldRunID).
		Numeric(domdoc.FieldSizeBytes).
		Numeric(domdoc.FieldCreatedAt)
	if r.prefix != "" {
		b = b.Prefix(r.prefix)
	}

	def, err := b.Build()
	if err != nil {
		return nil, fmt.Errorf("index definition %s: %w", r.index, err)
	}
	return def, nil
}

func toRecord(doc *domdoc.Document) *db.Document {
	return &db.Document{
		ID: doc.ID(),
		Strings: map[string]string{
			domdoc.FieldKey:   doc.Key(),
			domdoc.FieldRunID: doc.RunID(),
		},
		Numbers: map[string]int64{
			domdoc.FieldSizeBytes: int64(doc.SizeBytes()),
			domdoc.FieldCreatedAt: doc.CreatedAt().UnixMilli(),
		},
	}
}
