package benchmark

import (
	"context"
	"time"

	domdoc "github.com/kailas-cloud/searchspeed/internal/domain/document"
	"github.com/kailas-cloud/searchspeed/internal/domain/search/request"
	"github.com/kailas-cloud/searchspeed/internal/domain/search/result"
)

// DocumentRepository defines the storage contract for benchmark documents.
type DocumentRepository interface {
	Insert(ctx context.Context, doc *domdoc.Document) error
	DeleteAll(ctx context.Context) (int, error)
	Count(ctx context.Context) (int, error)
	EnsureIndex(ctx context.Context) (bool, error)
	DropIndex(ctx context.Context) (bool, error)
}

// SearchRepository runs the timed full-text query.
type SearchRepository interface {
	Search(ctx context.Context, req request.Request) ([]result.Result, error)
}

// Generator produces the text blob.
type Generator interface {
	Blob(n int) string
}

// Reporter receives the human-readable progress of a run, in order.
type Reporter interface {
	CorpusSize(n uint64)
	Inserted()
	TimerStarted()
	Querying()
	Results(hits []result.Result)
	TimerEnded()
	Elapsed(d time.Duration)
}
