package vecrank

import "errors"

var (
	// ErrNoProvider is returned by text operations on an Index built without an embedding provider
	ErrNoProvider = errors.New("no embedding provider configured")

	// ErrEmptyEmbedding is returned when adding a sample without an embedding
	ErrEmptyEmbedding = errors.New("sample embedding is empty")
)
