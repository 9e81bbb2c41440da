package document

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/kailas-cloud/searchspeed/internal/domain"
)

// Field names of a stored document. Only Key is searched; the rest is bookkeeping.
const (
	FieldKey       = "key"
	FieldRunID     = "run_id"
	FieldSizeBytes = "size_bytes"
	FieldCreatedAt = "created_at"
)

// Fields lists every stored field name, Key first.
var Fields = []string{FieldKey, FieldRunID, FieldSizeBytes, FieldCreatedAt}

// Document is the benchmark document: one large text blob under Key.
type Document struct {
	id        string
	runID     string
	key       string
	createdAt time.Time
}

// New creates a Document with a fresh random ID. Key must be non-empty.
func New(runID, key string, createdAt time.Time) (Document, error) {
	if runID == "" {
		return Document{}, fmt.Errorf("%w: run ID is required", domain.ErrInvalidDocument)
	}
	if key == "" {
		return Document{}, fmt.Errorf("%w: key is required", domain.ErrInvalidDocument)
	}
	return Document{
		id:        uuid.NewString(),
		runID:     runID,
		key:       key,
		createdAt: createdAt,
	}, nil
}

// ID returns the document identifier.
func (d *Document) ID() string { return d.id }

// RunID returns the identifier of the run that produced the document.
func (d *Document) RunID() string { return d.runID }

// Key returns the text blob.
func (d *Document) Key() string { return d.key }

// CreatedAt returns the creation time.
func (d *Document) CreatedAt() time.Time { return d.createdAt }

// SizeBytes returns the byte length of the text blob.
func (d *Document) SizeBytes() int { return len(d.key) }
