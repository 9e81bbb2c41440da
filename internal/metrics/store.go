package metrics

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/kailas-cloud/searchspeed/internal/db"
)

var dbOperationDuration = prometheus.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: "searchspeed",
		Name:      "db_operation_duration_seconds",
		Help:      "Store operation duration in seconds",
		Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
	},
	[]string{"driver", "op", "status"},
)

// InstrumentedStore wraps db.Store and records the duration of every store call.
type InstrumentedStore struct {
	inner  db.Store
	driver string
}

// NewInstrumentedStore wraps a store. driver labels the recorded series.
func NewInstrumentedStore(inner db.Store, driver string) *InstrumentedStore {
	return &InstrumentedStore{inner: inner, driver: driver}
}

func (s *InstrumentedStore) observe(op string, start time.Time, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	dbOperationDuration.WithLabelValues(s.driver, op, status).Observe(time.Since(start).Seconds())
}

// Ping proxies to the inner store.
func (s *InstrumentedStore) Ping(ctx context.Context) error {
	start := time.Now()
	err := s.inner.Ping(ctx)
	s.observe("ping", start, err)
	return err //nolint:wrapcheck // decorator
}

// InsertDocument proxies to the inner store.
func (s *InstrumentedStore) InsertDocument(ctx context.Context, doc *db.Document) error {
	start := time.Now()
	err := s.inner.InsertDocument(ctx, doc)
	s.observe("insert", start, err)
	return err //nolint:wrapcheck // decorator
}

// DeleteAll proxies to the inner store.
func (s *InstrumentedStore) DeleteAll(ctx context.Context) (int, error) {
	start := time.Now()
	n, err := s.inner.DeleteAll(ctx)
	s.observe("delete_all", start, err)
	return n, err //nolint:wrapcheck // decorator
}

// CountDocuments proxies to the inner store.
func (s *InstrumentedStore) CountDocuments(ctx context.Context, index string) (int, error) {
	start := time.Now()
	n, err := s.inner.CountDocuments(ctx, index)
	s.observe("count", start, err)
	return n, err //nolint:wrapcheck // decorator
}

// CreateIndex proxies to the inner store.
func (s *InstrumentedStore) CreateIndex(ctx context.Context, def *db.IndexDefinition) error {
	start := time.Now()
	err := s.inner.CreateIndex(ctx, def)
	s.observe("create_index", start, err)
	return err //nolint:wrapcheck // decorator
}

// DropIndex proxies to the inner store.
func (s *InstrumentedStore) DropIndex(ctx context.Context, name string) error {
	start := time.Now()
	err := s.inner.DropIndex(ctx, name)
	s.observe("drop_index", start, err)
	return err //nolint:wrapcheck // decorator
}

// IndexExists proxies to the inner store.
func (s *InstrumentedStore) IndexExists(ctx context.Context, name string) (bool, error) {
	start := time.Now()
	ok, err := s.inner.IndexExists(ctx, name)
	s.observe("index_exists", start, err)
	return ok, err //nolint:wrapcheck // decorator
}

// SearchText proxies to the inner store.
func (s *InstrumentedStore) SearchText(ctx context.Context, q *db.TextQuery) (*db.SearchResult, error) {
	start := time.Now()
	res, err := s.inner.SearchText(ctx, q)
	s.observe("search", start, err)
	return res, err //nolint:wrapcheck // decorator
}

// WaitForReady proxies to the inner store.
func (s *InstrumentedStore) WaitForReady(ctx context.Context, timeout time.Duration) error {
	return s.inner.WaitForReady(ctx, timeout) //nolint:wrapcheck // decorator
}

// Close proxies to the inner store.
func (s *InstrumentedStore) Close() {
	s.inner.Close()
}
