package result

// Result is a single search hit with projected fields.
type Result struct {
	id     string
	fields map[string]string
}

// New creates a search result.
func New(id string, fields map[string]string) Result {
	if fields == nil {
		fields = map[string]string{}
	}
	return Result{id: id, fields: fields}
}

// ID returns the document identifier.
func (r *Result) ID() string { return r.id }

// Fields returns the projected document fields.
func (r *Result) Fields() map[string]string { return r.fields }

// Field returns a single projected field.
func (r *Result) Field(name string) (string, bool) {
	v, ok := r.fields[name]
	return v, ok
}
