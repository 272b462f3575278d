package inmemory

import (
	"context"
	"slices"
	"sync"

	"github.com/botirk38/vecrank/types"
)

// FIFOBackend implements SampleStore using FIFO (First In, First Out) eviction policy
type FIFOBackend[K comparable, V any] struct {
	mu       *sync.RWMutex
	samples  map[K]types.Sample[V]
	queue    []K
	capacity int
	onEvict  func(key any)
}

// NewFIFOBackend creates a new FIFO backend. A non-positive capacity means unbounded.
func NewFIFOBackend[K comparable, V any](config types.BackendConfig) (*FIFOBackend[K, V], error) {
	return &FIFOBackend[K, V]{
		mu:       &sync.RWMutex{},
		samples:  make(map[K]types.Sample[V]),
		queue:    make([]K, 0, max(config.Capacity, 0)),
		capacity: config.Capacity,
		onEvict:  config.OnEvict,
	}, nil
}

// Set stores a sample, evicting the oldest insertion when full
func (b *FIFOBackend[K, V]) Set(ctx context.Context, key K, sample types.Sample[V]) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	// Updating keeps the original insertion position
	if _, exists := b.samples[key]; exists {
		b.samples[key] = sample
		return nil
	}

	if b.capacity > 0 && len(b.samples) >= b.capacity {
		oldestKey := b.queue[0]
		b.queue = b.queue[1:]
		delete(b.samples, oldestKey)
		if b.onEvict != nil {
			b.onEvict(oldestKey)
		}
	}

	b.samples[key] = sample
	b.queue = append(b.queue, key)
	return nil
}

// Get retrieves a sample
func (b *FIFOBackend[K, V]) Get(ctx context.Context, key K) (types.Sample[V], bool, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	sample, ok := b.samples[key]
	return sample, ok, nil
}

// Delete removes a sample
func (b *FIFOBackend[K, V]) Delete(ctx context.Context, key K) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, exists := b.samples[key]; !exists {
		return nil
	}

	delete(b.samples, key)
	if i := slices.Index(b.queue, key); i >= 0 {
		b.queue = slices.Delete(b.queue, i, i+1)
	}
	return nil
}

// Contains checks if a key exists
func (b *FIFOBackend[K, V]) Contains(ctx context.Context, key K) (bool, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	_, exists := b.samples[key]
	return exists, nil
}

// Flush removes every sample
func (b *FIFOBackend[K, V]) Flush(ctx context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.samples = make(map[K]types.Sample[V])
	b.queue = make([]K, 0, max(b.capacity, 0))
	return nil
}

// Len returns the number of stored samples
func (b *FIFOBackend[K, V]) Len(ctx context.Context) (int, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return len(b.samples), nil
}

// Keys returns all keys in insertion order
func (b *FIFOBackend[K, V]) Keys(ctx context.Context) ([]K, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return slices.Clone(b.queue), nil
}

// Range visits samples in insertion order
func (b *FIFOBackend[K, V]) Range(ctx context.Context, fn func(key K, sample types.Sample[V]) bool) error {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, key := range b.queue {
		if !fn(key, b.samples[key]) {
			break
		}
	}
	return nil
}

// Close closes the FIFO backend (no-op for in-memory)
func (b *FIFOBackend[K, V]) Close() error {
	return nil
}
