package inmemory

import (
	"context"
	"sync"

	"github.com/botirk38/vecrank/types"
	lru "github.com/hashicorp/golang-lru/v2"
)

// LRUBackend implements SampleStore using LRU eviction policy
type LRUBackend[K comparable, V any] struct {
	mu      *sync.RWMutex
	cache   *lru.Cache[K, types.Sample[V]]
	onEvict func(key any)
}

// NewLRUBackend creates a new LRU backend. Capacity must be positive.
func NewLRUBackend[K comparable, V any](config types.BackendConfig) (*LRUBackend[K, V], error) {
	lruCache, err := lru.New[K, types.Sample[V]](config.Capacity)
	if err != nil {
		return nil, err
	}

	return &LRUBackend[K, V]{
		mu:      &sync.RWMutex{},
		cache:   lruCache,
		onEvict: config.OnEvict,
	}, nil
}

// Set stores a sample, evicting the least recently used one when full
func (b *LRUBackend[K, V]) Set(ctx context.Context, key K, sample types.Sample[V]) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	// Add only reports that something was evicted, so remember the victim first
	oldest, _, hasOldest := b.cache.GetOldest()
	if evicted := b.cache.Add(key, sample); evicted && hasOldest && b.onEvict != nil {
		b.onEvict(oldest)
	}
	return nil
}

// Get retrieves a sample and marks it as recently used
func (b *LRUBackend[K, V]) Get(ctx context.Context, key K) (types.Sample[V], bool, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if sample, ok := b.cache.Get(key); ok {
		return sample, true, nil
	}
	return types.Sample[V]{}, false, nil
}

// Delete removes a sample
func (b *LRUBackend[K, V]) Delete(ctx context.Context, key K) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.cache.Remove(key)
	return nil
}

// Contains checks if a key exists without updating recency
func (b *LRUBackend[K, V]) Contains(ctx context.Context, key K) (bool, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return b.cache.Contains(key), nil
}

// Flush removes every sample
func (b *LRUBackend[K, V]) Flush(ctx context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.cache.Purge()
	return nil
}

// Len returns the number of stored samples
func (b *LRUBackend[K, V]) Len(ctx context.Context) (int, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return b.cache.Len(), nil
}

// Keys returns all keys from least to most recently used
func (b *LRUBackend[K, V]) Keys(ctx context.Context) ([]K, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return b.cache.Keys(), nil
}

// Range visits samples from least to most recently used without updating recency
func (b *LRUBackend[K, V]) Range(ctx context.Context, fn func(key K, sample types.Sample[V]) bool) error {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, key := range b.cache.Keys() {
		sample, ok := b.cache.Peek(key)
		if !ok {
			continue
		}
		if !fn(key, sample) {
			break
		}
	}
	return nil
}

// Close closes the LRU backend (no-op for in-memory)
func (b *LRUBackend[K, V]) Close() error {
	return nil
}
