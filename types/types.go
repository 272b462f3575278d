// Package types holds the vectors, samples and interfaces shared by the
// vecrank packages.
package types

import (
	"context"
	"encoding/json"
	"math"
	"slices"
)

// Vector is a fixed-dimension embedding. The dimension is implied by its length.
type Vector = []float64

// Sample is a labeled embedding together with arbitrary caller data.
type Sample[V any] struct {
	Label     string `json:"label,omitempty"`
	Embedding Vector `json:"embedding"`
	Value     V      `json:"value"`
}

// Clone returns a copy of s whose embedding does not share memory with s.
// Value is copied by assignment, so maps, slices and pointers inside it stay
// shared with s.
func (s Sample[V]) Clone() Sample[V] {
	s.Embedding = slices.Clone(s.Embedding)
	return s
}

// ScoreKind tells whether a score is a similarity (higher is better) or a
// distance (lower is better).
type ScoreKind int

const (
	ScoreSimilarity ScoreKind = iota + 1
	ScoreDistance
)

func (k ScoreKind) String() string {
	switch k {
	case ScoreSimilarity:
		return "similarity"
	case ScoreDistance:
		return "distance"
	default:
		return "unknown"
	}
}

// Better reports whether score a ranks strictly ahead of score b. NaN ranks
// behind every other score.
func (k ScoreKind) Better(a, b float64) bool {
	if math.IsNaN(a) || math.IsNaN(b) {
		return !math.IsNaN(a) && math.IsNaN(b)
	}
	if k == ScoreDistance {
		return a < b
	}
	return a > b
}

// Passes reports whether score is good enough for threshold: score >= threshold
// for similarities, score <= threshold for distances.
func (k ScoreKind) Passes(score, threshold float64) bool {
	if k == ScoreDistance {
		return score <= threshold
	}
	return score >= threshold
}

// Score is a single tagged metric value.
type Score struct {
	Kind  ScoreKind
	Value float64
}

// Similarity returns the value if the score is similarity-typed.
func (s Score) Similarity() (float64, bool) {
	if s.Kind != ScoreSimilarity {
		return 0, false
	}
	return s.Value, true
}

// Distance returns the value if the score is distance-typed.
func (s Score) Distance() (float64, bool) {
	if s.Kind != ScoreDistance {
		return 0, false
	}
	return s.Value, true
}

// ScoredSample is a copy of a Sample augmented with exactly one score.
type ScoredSample[V any] struct {
	Sample[V]
	Score Score
}

type scoredSampleJSON[V any] struct {
	Label           string   `json:"label,omitempty"`
	Embedding       Vector   `json:"embedding"`
	Value           V        `json:"value"`
	SimilarityScore *float64 `json:"similarityScore,omitempty"`
	Distance        *float64 `json:"distance,omitempty"`
}

// MarshalJSON flattens the sample and emits either "similarityScore" or
// "distance", never both.
func (s ScoredSample[V]) MarshalJSON() ([]byte, error) {
	out := scoredSampleJSON[V]{
		Label:     s.Label,
		Embedding: s.Embedding,
		Value:     s.Value,
	}
	v := s.Score.Value
	switch s.Score.Kind {
	case ScoreSimilarity:
		out.SimilarityScore = &v
	case ScoreDistance:
		out.Distance = &v
	}
	return json.Marshal(out)
}

// SampleStore defines the interface for in-memory sample backends.
type SampleStore[K comparable, V any] interface {
	// Set stores a sample under key, replacing any previous one
	Set(ctx context.Context, key K, sample Sample[V]) error

	// Get retrieves a sample by key
	Get(ctx context.Context, key K) (Sample[V], bool, error)

	// Delete removes a sample by key
	Delete(ctx context.Context, key K) error

	// Contains checks if a key exists without touching eviction state
	Contains(ctx context.Context, key K) (bool, error)

	// Flush removes every sample
	Flush(ctx context.Context) error

	// Len returns the number of stored samples
	Len(ctx context.Context) (int, error)

	// Keys returns all keys in a stable, backend-defined order
	Keys(ctx context.Context) ([]K, error)

	// Range calls fn for every sample in Keys order without touching eviction
	// state, stopping early when fn returns false
	Range(ctx context.Context, fn func(key K, sample Sample[V]) bool) error

	// Close releases resources held by the backend
	Close() error
}

// BackendConfig provides configuration options for backends
type BackendConfig struct {
	// Capacity bounds the number of samples; eviction policy depends on the backend.
	Capacity int

	// OnEvict, if set, is called with the key of every sample evicted for capacity.
	OnEvict func(key any)
}

// BackendType represents the type of sample backend
type BackendType string

const (
	BackendLRU  BackendType = "lru"
	BackendFIFO BackendType = "fifo"
	BackendLFU  BackendType = "lfu"
)

// EmbeddingProvider defines the interface all embedding providers must satisfy.
type EmbeddingProvider interface {
	// EmbedText turns a piece of text into its embedding vector.
	EmbedText(ctx context.Context, text string) (Vector, error)
	// Close frees any resources held by the provider.
	Close()
}

// ProviderType represents the type of embedding provider
type ProviderType string

const (
	ProviderOpenAI ProviderType = "openai"
	ProviderGemini ProviderType = "gemini"
)
