package request

import (
	"fmt"
	"strings"

	"github.com/kailas-cloud/searchspeed/internal/domain"
)

// Search parameter limits.
const (
	// MaxQueryLength is the maximum allowed search query length.
	MaxQueryLength = 4096
	// DefaultLimit matches the RediSearch MAXSEARCHRESULTS default.
	DefaultLimit = 10000
)

// Request is a validated full-text query over one field.
type Request struct {
	query   string
	field   string
	limit   int
	exclude []string
}

// New validates and normalizes search parameters. Limit defaults to DefaultLimit.
// Exclude lists the fields omitted from hits; the searched field may be among them.
func New(query, field string, limit int, exclude ...string) (Request, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return Request{}, fmt.Errorf("%w: query is required", domain.ErrInvalidQuery)
	}
	if len(query) > MaxQueryLength {
		return Request{}, fmt.Errorf("%w: query too long (max %d chars)", domain.ErrInvalidQuery, MaxQueryLength)
	}
	if field == "" {
		return Request{}, fmt.Errorf("%w: field is required", domain.ErrInvalidQuery)
	}
	if limit <= 0 {
		limit = DefaultLimit
	}

	return Request{
		query:   query,
		field:   field,
		limit:   limit,
		exclude: append([]string(nil), exclude...),
	}, nil
}

// Query returns the search term.
func (r *Request) Query() string { return r.query }

// Field returns the searched field.
func (r *Request) Field() string { return r.field }

// Limit returns the result cap for stores that need one.
func (r *Request) Limit() int { return r.limit }

// Exclude returns the fields projected out of hits.
func (r *Request) Exclude() []string { return r.exclude }

// Excludes reports whether name is projected out.
func (r *Request) Excludes(name string) bool {
	for _, e := range r.exclude {
		if e == name {
			return true
		}
	}
	return false
}
