package search

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/kailas-cloud/searchspeed/internal/db"
	"github.com/kailas-cloud/searchspeed/internal/domain"
	domdoc "github.com/kailas-cloud/searchspeed/internal/domain/document"
	"github.com/kailas-cloud/searchspeed/internal/domain/search/request"
	"github.com/kailas-cloud/searchspeed/internal/domain/search/result"
)

// store is the consumer interface for search operations (ISP).
type store interface {
	SearchText(ctx context.Context, q *db.TextQuery) (*db.SearchResult, error)
}

// Repo implements usecase/benchmark.SearchRepository.
type Repo struct {
	store  store
	index  string
	prefix string
}

// New creates a search repository over one text index.
// prefix is trimmed from hit keys so results carry bare document IDs.
func New(s store, index, prefix string) *Repo {
	return &Repo{store: s, index: index, prefix: prefix}
}

// Search runs one full-text query. Excluded fields never reach the results.
func (r *Repo) Search(ctx context.Context, req request.Request) ([]result.Result, error) {
	q := &db.TextQuery{
		IndexName:     r.index,
		Field:         req.Field(),
		Query:         req.Query(),
		ReturnFields:  returnFields(&req),
		ExcludeFields: req.Exclude(),
		Limit:         req.Limit(),
	}

	sr, err := r.store.SearchText(ctx, q)
	if err != nil {
		if errors.Is(err, db.ErrIndexNotFound) {
			return nil, fmt.Errorf("search %s: %w", r.index, domain.ErrIndexNotFound)
		}
		return nil, fmt.Errorf("search %s: %w", r.index, err)
	}

	results := make([]result.Result, 0, len(sr.Entries))
	for i := range sr.Entries {
		e := &sr.Entries[i]
		for _, name := range req.Exclude() {
			delete(e.Fields, name)
		}
		results = append(results, result.New(strings.TrimPrefix(e.Key, r.prefix), e.Fields))
	}
	return results, nil
}

// returnFields lists the stored fields minus the excluded ones.
func returnFields(req *request.Request) []string {
	fields := make([]string, 0, len(domdoc.Fields))
	for _, f := range domdoc.Fields {
		if !req.Excludes(f) {
			fields = append(fields, f)
		}
	}
	return fields
}
