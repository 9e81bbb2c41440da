package db

// TextQuery is the input for a full-text search over a single field.
type TextQuery struct {
	IndexName string
	Field     string
	Query     string
	// ReturnFields lists the fields to load for stores that project by inclusion (Redis RETURN).
	ReturnFields []string
	// ExcludeFields lists the fields to drop for stores that project by exclusion (Mongo $project).
	// Every store also strips them from parsed entries.
	ExcludeFields []string
	// Limit caps the number of entries for stores that require one. Zero means the store default.
	Limit int
}

// SearchResult is the output of a search operation.
type SearchResult struct {
	Total   int
	Entries []SearchEntry
}

// SearchEntry is a single document hit from a search.
type SearchEntry struct {
	Key    string
	Fields map[string]string
}

// StripFields removes the named fields from every entry.
func (r *SearchResult) StripFields(names []string) {
	if len(names) == 0 {
		return
	}
	for i := range r.Entries {
		for _, name := range names {
			delete(r.Entries[i].Fields, name)
		}
	}
}
