// Package backends builds the in-memory sample stores used by an Index.
package backends

import (
	"errors"
	"fmt"

	"github.com/botirk38/vecrank/backends/inmemory"
	"github.com/botirk38/vecrank/types"
)

var ErrUnsupportedBackend = errors.New("unsupported backend type")

// BackendFactory creates sample backends based on type and configuration
type BackendFactory[K comparable, V any] struct{}

// NewBackend creates a new sample backend of the specified type
func (f *BackendFactory[K, V]) NewBackend(backendType types.BackendType, config types.BackendConfig) (types.SampleStore[K, V], error) {
	switch backendType {
	case types.BackendLRU:
		return NewLRUBackend[K, V](config)
	case types.BackendFIFO:
		return NewFIFOBackend[K, V](config)
	case types.BackendLFU:
		return NewLFUBackend[K, V](config)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedBackend, backendType)
	}
}

// NewLRUBackend creates a new LRU backend
func NewLRUBackend[K comparable, V any](config types.BackendConfig) (types.SampleStore[K, V], error) {
	backend, err := inmemory.NewLRUBackend[K, V](config)
	if err != nil {
		return nil, fmt.Errorf("lru backend: %w", err)
	}
	return backend, nil
}

// NewFIFOBackend creates a new FIFO backend
func NewFIFOBackend[K comparable, V any](config types.BackendConfig) (types.SampleStore[K, V], error) {
	return inmemory.NewFIFOBackend[K, V](config)
}

// NewLFUBackend creates a new LFU backend
func NewLFUBackend[K comparable, V any](config types.BackendConfig) (types.SampleStore[K, V], error) {
	return inmemory.NewLFUBackend[K, V](config)
}
