package benchmark

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	domdoc "github.com/kailas-cloud/searchspeed/internal/domain/document"
	"github.com/kailas-cloud/searchspeed/internal/domain/search/request"
	"github.com/kailas-cloud/searchspeed/internal/domain/search/result"
	logpkg "github.com/kailas-cloud/searchspeed/internal/logger"
	"github.com/kailas-cloud/searchspeed/internal/metrics"
)

// Options configures a single run.
type Options struct {
	Paragraphs  int
	Query       string
	MaxResults  int
	Cleanup     bool
	CreateIndex bool
	// RecreateIndex drops the index before ensuring it. Implies CreateIndex.
	RecreateIndex bool
}

// Report is the outcome of a run.
type Report struct {
	RunID        string
	DocumentID   string
	SizeBytes    uint64
	Deleted      int
	IndexDropped bool
	IndexCreated bool
	Hits         []result.Result
	Elapsed      time.Duration
	// Count is the number of documents in the collection after the search, -1 if unknown.
	Count int
}

// Service runs the insert-then-search latency benchmark.
type Service struct {
	docs   DocumentRepository
	search SearchRepository
	gen    Generator
	out    Reporter
	now    func() time.Time
}

// New creates a benchmark service. The logger is taken from the run context.
func New(docs DocumentRepository, search SearchRepository, gen Generator, out Reporter) *Service {
	return &Service{
		docs:   docs,
		search: search,
		gen:    gen,
		out:    out,
		now:    time.Now,
	}
}

// Run generates the blob, inserts it as one document and times a single search over it.
// Only the search call is timed.
func (s *Service) Run(ctx context.Context, opts Options) (*Report, error) {
	req, err := request.New(opts.Query, domdoc.FieldKey, opts.MaxResults, domdoc.FieldKey)
	if err != nil {
		return nil, fmt.Errorf("build search request: %w", err)
	}

	rep := &Report{RunID: uuid.NewString(), Count: -1}
	ctx = logpkg.WithFields(ctx, zap.String("run_id", rep.RunID))
	log := logpkg.FromContext(ctx)

	if err := s.prepare(ctx, log, opts, rep); err != nil {
		return nil, err
	}

	blob := s.gen.Blob(opts.Paragraphs)
	rep.SizeBytes = uint64(len(blob))
	metrics.CorpusBytes.Set(float64(rep.SizeBytes))
	s.out.CorpusSize(rep.SizeBytes)
	log.Debug("Corpus generated",
		zap.Int("paragraphs", opts.Paragraphs),
		zap.Uint64("size_bytes", rep.SizeBytes),
	)

	doc, err := domdoc.New(rep.RunID, blob, s.now())
	if err != nil {
		return nil, fmt.Errorf("new document: %w", err)
	}
	if err := s.docs.Insert(ctx, &doc); err != nil {
		return nil, fmt.Errorf("insert: %w", err)
	}
	rep.DocumentID = doc.ID()
	metrics.DocumentsInsertedTotal.Inc()
	s.out.Inserted()

	s.out.TimerStarted()
	s.out.Querying()
	start := time.Now()
	hits, err := s.search.Search(ctx, req)
	rep.Elapsed = time.Since(start)
	if err != nil {
		return nil, fmt.Errorf("search %q: %w", req.Query(), err)
	}
	rep.Hits = hits

	metrics.SearchDuration.Observe(rep.Elapsed.Seconds())
	metrics.SearchHits.Set(float64(len(hits)))

	s.out.Results(hits)
	s.out.TimerEnded()
	s.out.Elapsed(rep.Elapsed)

	log.Info("Search completed",
		zap.String("query", req.Query()),
		zap.Int("hits", len(hits)),
		zap.Duration("elapsed", rep.Elapsed),
	)

	n, err := s.docs.Count(ctx)
	if err != nil {
		log.Warn("Count documents failed", zap.Error(err))
		return rep, nil
	}
	rep.Count = n
	log.Info("Collection size", zap.Int("documents", n))

	return rep, nil
}

// prepare runs the opt-in cleanup, index drop and index creation steps.
func (s *Service) prepare(ctx context.Context, log *zap.Logger, opts Options, rep *Report) error {
	if opts.Cleanup {
		n, err := s.docs.DeleteAll(ctx)
		if err != nil {
			return fmt.Errorf("cleanup: %w", err)
		}
		rep.Deleted = n
		log.Info("Collection cleaned up", zap.Int("deleted", n))
	}

	if opts.RecreateIndex {
		dropped, err := s.docs.DropIndex(ctx)
		if err != nil {
			return fmt.Errorf("drop index: %w", err)
		}
		rep.IndexDropped = dropped
		log.Info("Text index dropped", zap.Bool("existed", dropped))
	}

	if opts.CreateIndex || opts.RecreateIndex {
		created, err := s.docs.EnsureIndex(ctx)
		if err != nil {
			return fmt.Errorf("ensure index: %w", err)
		}
		rep.IndexCreated = created
		if created {
			log.Warn("Text index created, it may not be queryable until the store finishes building it")
		}
	}
	return nil
}
