// Package vecrank keeps labeled embeddings in memory and ranks them against
// a query vector by cosine similarity, Euclidean distance or Manhattan distance.
package vecrank

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/botirk38/vecrank/options"
	"github.com/botirk38/vecrank/ranking"
	"github.com/botirk38/vecrank/types"
	"github.com/botirk38/vecrank/vecmath"
	"github.com/google/uuid"
)

// Index is a keyed collection of samples answering nearest-neighbour queries.
// It is safe for concurrent use.
type Index[V any] struct {
	// mu serializes writes so every stored embedding shares one dimension
	mu       sync.Mutex
	backend  types.SampleStore[string, V]
	provider types.EmbeddingProvider
	logger   *slog.Logger
	defaults ranking.Options
}

// TextItem is a sample to be embedded from text in batch operations.
type TextItem[V any] struct {
	Key   string
	Label string
	Text  string
	Value V
}

// New creates an Index with functional options. Without options it stores
// samples in an LRU of options.DefaultCapacity and has no embedding provider.
func New[V any](opts ...options.Option[V]) (*Index[V], error) {
	cfg := options.NewConfig[V]()

	if err := cfg.Apply(opts...); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	idx := &Index[V]{
		provider: cfg.Provider,
		logger:   cfg.Logger,
		defaults: cfg.Ranking,
	}

	backend, err := cfg.NewBackend(idx.onEvict)
	if err != nil {
		return nil, err
	}
	idx.backend = backend
	return idx, nil
}

func (idx *Index[V]) onEvict(key any) {
	idx.logger.Debug("sample evicted", "key", key)
}

// Add stores a copy of sample under key and returns the key. An empty key is
// replaced by a random UUID. The embedding must match the dimension of the
// samples already stored.
func (idx *Index[V]) Add(ctx context.Context, key string, sample types.Sample[V]) (string, error) {
	if len(sample.Embedding) == 0 {
		return "", ErrEmptyEmbedding
	}
	if key == "" {
		key = uuid.NewString()
	}

	idx.mu.Lock()
	defer idx.mu.Unlock()

	if err := idx.checkDimension(ctx, key, len(sample.Embedding)); err != nil {
		return "", err
	}
	if err := idx.backend.Set(ctx, key, sample.Clone()); err != nil {
		return "", err
	}

	idx.logger.Debug("sample added", "key", key, "label", sample.Label, "dim", len(sample.Embedding))
	return key, nil
}

// checkDimension compares dim with any stored sample other than key.
func (idx *Index[V]) checkDimension(ctx context.Context, key string, dim int) error {
	want := -1
	err := idx.backend.Range(ctx, func(k string, s types.Sample[V]) bool {
		if k == key {
			return true
		}
		want = len(s.Embedding)
		return false
	})
	if err != nil {
		return err
	}
	if want >= 0 && want != dim {
		return fmt.Errorf("add %q: %w", key, types.DimensionError(dim, want))
	}
	return nil
}

// AddText embeds text with the configured provider and stores the result.
func (idx *Index[V]) AddText(ctx context.Context, key, label, text string, value V) (string, error) {
	embedding, err := idx.embed(ctx, text)
	if err != nil {
		return "", err
	}
	return idx.Add(ctx, key, types.Sample[V]{Label: label, Embedding: embedding, Value: value})
}

// AddTextBatch embeds and stores items in order, stopping at the first error.
// It returns the keys stored so far.
func (idx *Index[V]) AddTextBatch(ctx context.Context, items []TextItem[V]) ([]string, error) {
	keys := make([]string, 0, len(items))
	for _, item := range items {
		key, err := idx.AddText(ctx, item.Key, item.Label, item.Text, item.Value)
		if err != nil {
			return keys, err
		}
		keys = append(keys, key)
	}
	return keys, nil
}

func (idx *Index[V]) embed(ctx context.Context, text string) (types.Vector, error) {
	if idx.provider == nil {
		return nil, ErrNoProvider
	}
	embedding, err := idx.provider.EmbedText(ctx, text)
	if err != nil {
		idx.logger.Warn("embedding failed", "error", err, "text_len", len(text))
		return nil, fmt.Errorf("embed text: %w", err)
	}
	return embedding, nil
}

// Get retrieves a copy of the sample stored under key.
func (idx *Index[V]) Get(ctx context.Context, key string) (types.Sample[V], bool, error) {
	sample, found, err := idx.backend.Get(ctx, key)
	if err != nil || !found {
		return types.Sample[V]{}, false, err
	}
	return sample.Clone(), true, nil
}

// Contains checks for key presence without affecting eviction order.
func (idx *Index[V]) Contains(ctx context.Context, key string) (bool, error) {
	return idx.backend.Contains(ctx, key)
}

// Delete removes the sample stored under key.
func (idx *Index[V]) Delete(ctx context.Context, key string) error {
	return idx.backend.Delete(ctx, key)
}

// DeleteBatch removes every key, joining the errors of failed deletes.
func (idx *Index[V]) DeleteBatch(ctx context.Context, keys []string) error {
	var errs []error
	for _, key := range keys {
		if err := idx.backend.Delete(ctx, key); err != nil {
			errs = append(errs, fmt.Errorf("delete %q: %w", key, err))
		}
	}
	return errors.Join(errs...)
}

// Len returns the number of stored samples.
func (idx *Index[V]) Len(ctx context.Context) (int, error) {
	return idx.backend.Len(ctx)
}

// Flush removes every sample.
func (idx *Index[V]) Flush(ctx context.Context) error {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	return idx.backend.Flush(ctx)
}

// Samples returns copies of the stored samples in the backend's key order.
func (idx *Index[V]) Samples(ctx context.Context) ([]types.Sample[V], error) {
	samples, err := idx.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	for i := range samples {
		samples[i] = samples[i].Clone()
	}
	return samples, nil
}

// snapshot lists stored samples without copying their embeddings.
func (idx *Index[V]) snapshot(ctx context.Context) ([]types.Sample[V], error) {
	var samples []types.Sample[V]
	err := idx.backend.Range(ctx, func(_ string, s types.Sample[V]) bool {
		samples = append(samples, s)
		return true
	})
	if err != nil {
		return nil, err
	}
	if samples == nil {
		samples = []types.Sample[V]{}
	}
	return samples, nil
}

// Centroid returns the mean of every stored embedding, or an empty vector
// when the index is empty.
func (idx *Index[V]) Centroid(ctx context.Context) (types.Vector, error) {
	samples, err := idx.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	vectors := make([]types.Vector, len(samples))
	for i, s := range samples {
		vectors[i] = s.Embedding
	}
	return vecmath.Mean(vectors)
}

// FindNearest ranks stored samples against query. The index's default
// ranking options are applied first, then opts.
func (idx *Index[V]) FindNearest(ctx context.Context, query types.Vector, opts ...ranking.Option) ([]types.ScoredSample[V], error) {
	return idx.rank(ctx, query, false, opts)
}

// RankAll scores every stored sample against query, best first.
func (idx *Index[V]) RankAll(ctx context.Context, query types.Vector, opts ...ranking.Option) ([]types.ScoredSample[V], error) {
	return idx.rank(ctx, query, true, opts)
}

// FindNearestText embeds text and runs FindNearest with the result.
func (idx *Index[V]) FindNearestText(ctx context.Context, text string, opts ...ranking.Option) ([]types.ScoredSample[V], error) {
	query, err := idx.embed(ctx, text)
	if err != nil {
		return nil, err
	}
	return idx.FindNearest(ctx, query, opts...)
}

func (idx *Index[V]) rank(ctx context.Context, query types.Vector, all bool, opts []ranking.Option) ([]types.ScoredSample[V], error) {
	o, err := ranking.Apply(append([]ranking.Option{ranking.WithOptions(idx.defaults)}, opts...)...)
	if err != nil {
		return nil, err
	}

	samples, err := idx.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return ranking.Rank(query, samples, o, all)
}

// Close closes the underlying backend and provider.
func (idx *Index[V]) Close() error {
	if idx.provider != nil {
		idx.provider.Close()
	}
	return idx.backend.Close()
}
