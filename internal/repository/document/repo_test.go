package document

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/kailas-cloud/searchspeed/internal/db"
	domdoc "github.com/kailas-cloud/searchspeed/internal/domain/document"
)

func TestInsert_MapsFields(t *testing.T) {
	ms := &mockStore{}
	repo := New(ms, testIndex, testPrefix)

	doc, err := domdoc.New("run-1", "lorem magnam", time.UnixMilli(1700000000000))
	if err != nil {
		t.Fatalf("domdoc.New: %v", err)
	}

	var got *db.Document
	ms.insertFn = func(_ context.Context, d *db.Document) error {
		got = d
		return nil
	}

	if err := repo.Insert(context.Background(), &doc); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != doc.ID() {
		t.Errorf("ID = %q, want %q", got.ID, doc.ID())
	}
	if got.Strings[domdoc.FieldKey] != "lorem magnam" {
		t.Errorf("key = %q", got.Strings[domdoc.FieldKey])
	}
	if got.Strings[domdoc.FieldRunID] != "run-1" {
		t.Errorf("run_id = %q", got.Strings[domdoc.FieldRunID])
	}
	if got.Numbers[domdoc.FieldSizeBytes] != 12 {
		t.Errorf("size_bytes = %d, want 12", got.Numbers[domdoc.FieldSizeBytes])
	}
	if got.Numbers[domdoc.FieldCreatedAt] != 1700000000000 {
		t.Errorf("created_at = %d", got.Numbers[domdoc.FieldCreatedAt])
	}
}

func TestInsert_NoDedup(t *testing.T) {
	ms := &mockStore{}
	repo := New(ms, testIndex, testPrefix)

	ids := map[string]bool{}
	ms.insertFn = func(_ context.Context, d *db.Document) error {
		ids[d.ID] = true
		return nil
	}

	for range 2 {
		doc, _ := domdoc.New("run-1", "same text", time.Now())
		if err := repo.Insert(context.Background(), &doc); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if len(ids) != 2 {
		t.Errorf("expected 2 distinct documents, got %d", len(ids))
	}
}

func TestInsert_StoreError(t *testing.T) {
	ms := &mockStore{}
	repo := New(ms, testIndex, testPrefix)
	ms.insertFn = func(_ context.Context, _ *db.Document) error {
		return &db.Error{Op: db.OpHSet, Err: errors.New("boom")}
	}

	doc, _ := domdoc.New("run-1", "x", time.Now())
	err := repo.Insert(context.Background(), &doc)

	var dbErr *db.Error
	if !errors.As(err, &dbErr) {
		t.Fatalf("expected wrapped *db.Error, got %v", err)
	}
	if dbErr.Op != db.OpHSet {
		t.Errorf("op = %q", dbErr.Op)
	}
}

func TestDeleteAll(t *testing.T) {
	ms := &mockStore{}
	repo := New(ms, testIndex, testPrefix)
	ms.deleteAllFn = func(_ context.Context) (int, error) { return 4, nil }

	n, err := repo.DeleteAll(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 4 {
		t.Errorf("expected 4, got %d", n)
	}
}

func TestDeleteAll_PartialError(t *testing.T) {
	ms := &mockStore{}
	repo := New(ms, testIndex, testPrefix)
	ms.deleteAllFn = func(_ context.Context) (int, error) {
		return 100, &db.Error{Op: db.OpDel, Err: errors.New("conn reset")}
	}

	n, err := repo.DeleteAll(context.Background())
	if err == nil {
		t.Fatal("expected error")
	}
	if n != 100 {
		t.Errorf("expected partial count 100, got %d", n)
	}
}

func TestCount_UsesIndex(t *testing.T) {
	ms := &mockStore{}
	repo := New(ms, testIndex, testPrefix)
	ms.countFn = func(_ context.Context, index string) (int, error) {
		if index != testIndex {
			t.Errorf("index = %q, want %q", index, testIndex)
		}
		return 2, nil
	}

	n, err := repo.Count(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 2 {
		t.Errorf("expected 2, got %d", n)
	}
}

func TestEnsureIndex_AlreadyExists(t *testing.T) {
	ms := &mockStore{}
	repo := New(ms, testIndex, testPrefix)
	ms.indexExistsFn = func(_ context.Context, _ string) (bool, error) { return true, nil }
	ms.createIndexFn = func(_ context.Context, _ *db.IndexDefinition) error {
		t.Error("CreateIndex must not be called")
		return nil
	}

	created, err := repo.EnsureIndex(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created {
		t.Error("expected created=false")
	}
}

func TestEnsureIndex_Creates(t *testing.T) {
	ms := &mockStore{}
	repo := New(ms, testIndex, testPrefix)

	var def *db.IndexDefinition
	ms.createIndexFn = func(_ context.Context, d *db.IndexDefinition) error {
		def = d
		return nil
	}

	created, err := repo.EnsureIndex(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !created {
		t.Error("expected created=true")
	}
	if def.Name != testIndex {
		t.Errorf("name = %q", def.Name)
	}
	if len(def.Prefixes) != 1 || def.Prefixes[0] != testPrefix {
		t.Errorf("prefixes = %v", def.Prefixes)
	}
	if def.Fields[0].Name != domdoc.FieldKey || def.Fields[0].Type != db.IndexFieldText {
		t.Errorf("fields[0] = %+v, want key TEXT", def.Fields[0])
	}
}

func TestEnsureIndex_CreateRace(t *testing.T) {
	ms := &mockStore{}
	repo := New(ms, testIndex, testPrefix)
	ms.createIndexFn = func(_ context.Context, _ *db.IndexDefinition) error {
		return &db.Error{Op: db.OpCreateIndex, Err: db.ErrIndexExists}
	}

	created, err := repo.EnsureIndex(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created {
		t.Error("expected created=false")
	}
}

func TestEnsureIndex_ExistsCheckError(t *testing.T) {
	ms := &mockStore{}
	repo := New(ms, testIndex, testPrefix)
	ms.indexExistsFn = func(_ context.Context, _ string) (bool, error) {
		return false, errors.New("timeout")
	}

	if _, err := repo.EnsureIndex(context.Background()); err == nil {
		t.Fatal("expected error")
	}
}

func TestIndexDefinition_WithoutPrefix(t *testing.T) {
	repo := New(&mockStore{}, testIndex, "")

	def, err := repo.IndexDefinition()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(def.Prefixes) != 0 {
		t.Errorf("expected no prefixes, got %v", def.Prefixes)
	}
	if len(def.Fields) != len(domdoc.Fields) {
		t.Fatalf("fields = %+v, want %v", def.Fields, domdoc.Fields)
	}
	for i := range def.Fields {
		if def.Fields[i].Name != domdoc.Fields[i] {
			t.Errorf("fields[%d] = %q, want %q", i, def.Fields[i].Name, domdoc.Fields[i])
		}
	}
	if def.StorageType != db.StorageHash {
		t.Errorf("storage = %q, want %q", def.StorageType, db.StorageHash)
	}
}

func TestIndexDefinition_InvalidName(t *testing.T) {
	repo := New(&mockStore{}, "bad name!", testPrefix)
	if _, err := repo.IndexDefinition(); err == nil {
		t.Fatal("expected error for invalid index name")
	}
}

func TestDropIndex(t *testing.T) {
	var dropped string
	ms := &mockStore{dropIndexFn: func(_ context.Context, name string) error {
		dropped = name
		return nil
	}}
	repo := New(ms, testIndex, testPrefix)

	ok, err := repo.DropIndex(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Error("expected index to be reported as dropped")
	}
	if dropped != testIndex {
		t.Errorf("dropped = %q, want %q", dropped, testIndex)
	}
}

func TestDropIndex_NotFound(t *testing.T) {
	ms := &mockStore{dropIndexFn: func(_ context.Context, _ string) error {
		return db.ErrIndexNotFound
	}}
	repo := New(ms, testIndex, testPrefix)

	ok, err := repo.DropIndex(context.Background())
	if err != nil {
		t.Fatalf("missing index must not fail, got %v", err)
	}
	if ok {
		t.Error("expected dropped=false for a missing index")
	}
}

func TestDropIndex_StoreError(t *testing.T) {
	ms := &mockStore{dropIndexFn: func(_ context.Context, _ string) error {
		return &db.Error{Op: db.OpDropIndex, Err: errors.New("boom")}
	}}
	repo := New(ms, testIndex, testPrefix)

	_, err := repo.DropIndex(context.Background())
	var dbErr *db.Error
	if !errors.As(err, &dbErr) || dbErr.Op != db.OpDropIndex {
		t.Fatalf("expected wrapped drop error, got %v", err)
	}
}
