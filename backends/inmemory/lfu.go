package inmemory

import (
	"context"
	"slices"
	"sync"

	"github.com/botirk38/vecrank/types"
)

// lfuEntry wraps a sample with frequency tracking
type lfuEntry[V any] struct {
	sample    types.Sample[V]
	frequency int
}

// LFUBackend implements SampleStore using LFU (Least Frequently Used) eviction policy.
// Frequency ties are broken by evicting the oldest insertion.
type LFUBackend[K comparable, V any] struct {
	mu       *sync.RWMutex
	entries  map[K]*lfuEntry[V]
	order    []K
	capacity int
	onEvict  func(key any)
}

// NewLFUBackend creates a new LFU backend. A non-positive capacity means unbounded.
func NewLFUBackend[K comparable, V any](config types.BackendConfig) (*LFUBackend[K, V], error) {
	return &LFUBackend[K, V]{
		mu:       &sync.RWMutex{},
		entries:  make(map[K]*lfuEntry[V]),
		capacity: config.Capacity,
		onEvict:  config.OnEvict,
	}, nil
}

// Set stores a sample. Updating an existing key counts as a use.
func (b *LFUBackend[K, V]) Set(ctx context.Context, key K, sample types.Sample[V]) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if existing, exists := b.entries[key]; exists {
		existing.sample = sample
		existing.frequency++
		return nil
	}

	if b.capacity > 0 && len(b.entries) >= b.capacity {
		b.evictLFU()
	}

	b.entries[key] = &lfuEntry[V]{sample: sample, frequency: 1}
	b.order = append(b.order, key)
	return nil
}

// evictLFU removes the least frequently used entry
func (b *LFUBackend[K, V]) evictLFU() {
	victim := -1
	for i, key := range b.order {
		if victim < 0 || b.entries[key].frequency < b.entries[b.order[victim]].frequency {
			victim = i
		}
	}
	if victim < 0 {
		return
	}

	key := b.order[victim]
	delete(b.entries, key)
	b.order = slices.Delete(b.order, victim, victim+1)
	if b.onEvict != nil {
		b.onEvict(key)
	}
}

// Get retrieves a sample and increments its frequency
func (b *LFUBackend[K, V]) Get(ctx context.Context, key K) (types.Sample[V], bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if entry, ok := b.entries[key]; ok {
		entry.frequency++
		return entry.sample, true, nil
	}
	return types.Sample[V]{}, false, nil
}

// Delete removes a sample
func (b *LFUBackend[K, V]) Delete(ctx context.Context, key K) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, exists := b.entries[key]; !exists {
		return nil
	}
	delete(b.entries, key)
	if i := slices.Index(b.order, key); i >= 0 {
		b.order = slices.Delete(b.order, i, i+1)
	}
	return nil
}

// Contains checks if a key exists without incrementing frequency
func (b *LFUBackend[K, V]) Contains(ctx context.Context, key K) (bool, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	_, exists := b.entries[key]
	return exists, nil
}

// Flush removes every sample
func (b *LFUBackend[K, V]) Flush(ctx context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.entries = make(map[K]*lfuEntry[V])
	b.order = nil
	return nil
}

// Len returns the number of stored samples
func (b *LFUBackend[K, V]) Len(ctx context.Context) (int, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return len(b.entries), nil
}

// Keys returns all keys in insertion order
func (b *LFUBackend[K, V]) Keys(ctx context.Context) ([]K, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return slices.Clone(b.order), nil
}

// Range visits samples in insertion order without incrementing frequency
func (b *LFUBackend[K, V]) Range(ctx context.Context, fn func(key K, sample types.Sample[V]) bool) error {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, key := range b.order {
		if !fn(key, b.entries[key].sample) {
			break
		}
	}
	return nil
}

// Close closes the LFU backend (no-op for in-memory)
func (b *LFUBackend[K, V]) Close() error {
	return nil
}
