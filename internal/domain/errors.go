package domain

import "errors"

var (
	// ErrInvalidDocument signals a document that cannot be stored.
	ErrInvalidDocument = errors.New("invalid document")
	// ErrInvalidQuery signals a search request that cannot be executed.
	ErrInvalidQuery = errors.New("invalid query")
	// ErrIndexNotFound signals a search against a missing text index.
	ErrIndexNotFound = errors.New("text index not found")
)
