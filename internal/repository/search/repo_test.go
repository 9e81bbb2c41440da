package search

import (
	"context"
	"errors"
	"testing"

	"github.com/kailas-cloud/searchspeed/internal/db"
	"github.com/kailas-cloud/searchspeed/internal/domain"
	domdoc "github.com/kailas-cloud/searchspeed/internal/domain/document"
	"github.com/kailas-cloud/searchspeed/internal/domain/search/request"
)

func mustRequest(t *testing.T, query string, exclude ...string) request.Request {
	t.Helper()
	req, err := request.New(query, domdoc.FieldKey, 0, exclude...)
	if err != nil {
		t.Fatalf("request.New: %v", err)
	}
	return req
}

func TestSearch_BuildsQuery(t *testing.T) {
	var got *db.TextQuery
	ms := &mockStore{searchTextFn: func(_ context.Context, q *db.TextQuery) (*db.SearchResult, error) {
		got = q
		return &db.SearchResult{}, nil
	}}
	repo := New(ms, testIndex, testPrefix)

	if _, err := repo.Search(context.Background(), mustRequest(t, "magnam", domdoc.FieldKey)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got.IndexName != testIndex {
		t.Errorf("index = %q", got.IndexName)
	}
	if got.Field != domdoc.FieldKey || got.Query != "magnam" {
		t.Errorf("field/query = %q/%q", got.Field, got.Query)
	}
	if got.Limit != request.DefaultLimit {
		t.Errorf("limit = %d, want %d", got.Limit, request.DefaultLimit)
	}
	want := []string{domdoc.FieldRunID, domdoc.FieldSizeBytes, domdoc.FieldCreatedAt}
	if len(got.ReturnFields) != len(want) {
		t.Fatalf("return fields = %v, want %v", got.ReturnFields, want)
	}
	for i := range want {
		if got.ReturnFields[i] != want[i] {
			t.Errorf("return fields[%d] = %q, want %q", i, got.ReturnFields[i], want[i])
		}
	}
	if len(got.ExcludeFields) != 1 || got.ExcludeFields[0] != domdoc.FieldKey {
		t.Errorf("exclude fields = %v", got.ExcludeFields)
	}
}

func TestSearch_TrimsPrefixAndDropsExcluded(t *testing.T) {
	ms := &mockStore{searchTextFn: func(_ context.Context, _ *db.TextQuery) (*db.SearchResult, error) {
		return &db.SearchResult{
			Total: 1,
			Entries: []db.SearchEntry{{
				Key: testPrefix + "doc-1",
				Fields: map[string]string{
					domdoc.FieldKey:   "lorem magnam",
					domdoc.FieldRunID: "run-1",
				},
			}},
		}, nil
	}}
	repo := New(ms, testIndex, testPrefix)

	results, err := repo.Search(context.Background(), mustRequest(t, "magnam", domdoc.FieldKey))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	if results[0].ID() != "doc-1" {
		t.Errorf("id = %q, want doc-1", results[0].ID())
	}
	if _, ok := results[0].Field(domdoc.FieldKey); ok {
		t.Error("key must be excluded from hits")
	}
	if v, _ := results[0].Field(domdoc.FieldRunID); v != "run-1" {
		t.Errorf("run_id = %q", v)
	}
}

func TestSearch_NoPrefix(t *testing.T) {
	ms := &mockStore{searchTextFn: func(_ context.Context, _ *db.TextQuery) (*db.SearchResult, error) {
		return &db.SearchResult{Total: 1, Entries: []db.SearchEntry{{Key: "65f0c0ffee"}}}, nil
	}}
	repo := New(ms, testIndex, "")

	results, err := repo.Search(context.Background(), mustRequest(t, "magnam"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if results[0].ID() != "65f0c0ffee" {
		t.Errorf("id = %q", results[0].ID())
	}
	if results[0].Fields() == nil {
		t.Error("fields must never be nil")
	}
}

func TestSearch_Empty(t *testing.T) {
	repo := New(&mockStore{}, testIndex, testPrefix)

	results, err := repo.Search(context.Background(), mustRequest(t, "magnam"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("expected 0 results, got %d", len(results))
	}
}

func TestSearch_IndexNotFound(t *testing.T) {
	ms := &mockStore{searchTextFn: func(_ context.Context, _ *db.TextQuery) (*db.SearchResult, error) {
		return nil, db.ErrIndexNotFound
	}}
	repo := New(ms, testIndex, testPrefix)

	_, err := repo.Search(context.Background(), mustRequest(t, "magnam"))
	if !errors.Is(err, domain.ErrIndexNotFound) {
		t.Fatalf("expected domain.ErrIndexNotFound, got %v", err)
	}
}

func TestSearch_StoreError(t *testing.T) {
	ms := &mockStore{searchTextFn: func(_ context.Context, _ *db.TextQuery) (*db.SearchResult, error) {
		return nil, &db.Error{Op: db.OpAggregate, Err: errors.New("boom")}
	}}
	repo := New(ms, testIndex, testPrefix)

	_, err := repo.Search(context.Background(), mustRequest(t, "magnam"))
	var dbErr *db.Error
	if !errors.As(err, &dbErr) {
		t.Fatalf("expected wrapped *db.Error, got %v", err)
	}
	if errors.Is(err, domain.ErrIndexNotFound) {
		t.Error("generic store error must not map to ErrIndexNotFound")
	}
}
