package db

import "errors"

// Sentinel errors for database operations.
var (
	ErrIndexNotFound = errors.New("db: index not found")
	ErrIndexExists   = errors.New("db: index already exists")
)

// Op constants name the store command for error context. Redis ops use the
// command name, Mongo ops the driver method.
const (
	OpCreateIndex = "FT.CREATE"
	OpDropIndex   = "FT.DROPINDEX"
	OpIndexInfo   = "FT.INFO"
	OpSearch      = "FT.SEARCH"
	OpDel         = "DEL"
	OpHSet        = "HSET"
	OpScan        = "SCAN"

	OpInsertOne         = "insertOne"
	OpDeleteMany        = "deleteMany"
	OpCountDocuments    = "countDocuments"
	OpAggregate         = "aggregate"
	OpCreateSearchIndex = "createSearchIndexes"
	OpDropSearchIndex   = "dropSearchIndex"
	OpListSearchIndexes = "listSearchIndexes"
)

// Error wraps an underlying error with the operation name for diagnostics.
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string { return e.Op + ": " + e.Err.Error() }
func (e *Error) Unwrap() error { return e.Err }
