// Package options provides functional options for configuring Index instances.
package options

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/botirk38/vecrank/backends"
	"github.com/botirk38/vecrank/providers"
	"github.com/botirk38/vecrank/providers/gemini"
	"github.com/botirk38/vecrank/providers/openai"
	"github.com/botirk38/vecrank/ranking"
	"github.com/botirk38/vecrank/types"
)

// DefaultCapacity bounds the default LRU sample store
const DefaultCapacity = 10000

// Option represents a configuration option for an Index
type Option[V any] func(*Config[V]) error

// Config holds the configuration for building an Index
type Config[V any] struct {
	// Backend, when set, is used as is. Otherwise a store of BackendType
	// and Capacity is built by NewBackend.
	Backend     types.SampleStore[string, V]
	BackendType types.BackendType
	Capacity    int

	// Provider is optional; without one only vector queries work.
	Provider types.EmbeddingProvider

	Logger *slog.Logger

	// Ranking holds the defaults applied before per-query options.
	Ranking ranking.Options
}

// NewConfig creates a new configuration with default values
func NewConfig[V any]() *Config[V] {
	return &Config[V]{
		BackendType: types.BackendLRU,
		Capacity:    DefaultCapacity,
		Logger:      slog.New(slog.DiscardHandler),
	}
}

// Apply applies all the given options to the config
func (c *Config[V]) Apply(opts ...Option[V]) error {
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return err
		}
	}
	return nil
}

// Validate checks if the configuration is valid
func (c *Config[V]) Validate() error {
	if c.Backend == nil && c.BackendType == "" {
		return errors.New("backend is required - use WithLRUBackend, WithCustomBackend, etc.")
	}
	if c.Backend == nil && c.BackendType == types.BackendLRU && c.Capacity <= 0 {
		return fmt.Errorf("%w: LRU capacity must be positive, got %d", types.ErrInvalidOption, c.Capacity)
	}
	if c.Logger == nil {
		return errors.New("logger cannot be nil")
	}
	return nil
}

// NewBackend returns the configured backend, building one from BackendType
// and Capacity when none was supplied. onEvict is only wired into built stores.
func (c *Config[V]) NewBackend(onEvict func(key any)) (types.SampleStore[string, V], error) {
	if c.Backend != nil {
		return c.Backend, nil
	}
	factory := &backends.BackendFactory[string, V]{}
	return factory.NewBackend(c.BackendType, types.BackendConfig{
		Capacity: c.Capacity,
		OnEvict:  onEvict,
	})
}

func withBackend[V any](backendType types.BackendType, capacity int) Option[V] {
	return func(cfg *Config[V]) error {
		if capacity < 0 {
			return fmt.Errorf("%w: capacity must be non-negative, got %d", types.ErrInvalidOption, capacity)
		}
		cfg.Backend = nil
		cfg.BackendType = backendType
		cfg.Capacity = capacity
		return nil
	}
}

// WithLRUBackend sets up an LRU in-memory backend
func WithLRUBackend[V any](capacity int) Option[V] {
	return withBackend[V](types.BackendLRU, capacity)
}

// WithFIFOBackend sets up a FIFO in-memory backend. Zero capacity is unbounded.
func WithFIFOBackend[V any](capacity int) Option[V] {
	return withBackend[V](types.BackendFIFO, capacity)
}

// WithLFUBackend sets up an LFU in-memory backend. Zero capacity is unbounded.
func WithLFUBackend[V any](capacity int) Option[V] {
	return withBackend[V](types.BackendLFU, capacity)
}

// WithCustomBackend allows using a pre-configured backend
func WithCustomBackend[V any](backend types.SampleStore[string, V]) Option[V] {
	return func(cfg *Config[V]) error {
		if backend == nil {
			return errors.New("backend cannot be nil")
		}
		cfg.Backend = backend
		return nil
	}
}

// WithOpenAIProvider sets up OpenAI embedding provider
func WithOpenAIProvider[V any](apiKey string, model ...string) Option[V] {
	return func(cfg *Config[V]) error {
		config := openai.OpenAIConfig{
			APIKey: apiKey,
		}
		if len(model) > 0 {
			config.Model = model[0]
		}

		provider, err := openai.NewOpenAIProvider(config)
		if err != nil {
			return err
		}
		cfg.Provider = provider
		return nil
	}
}

// WithGeminiProvider sets up Gemini embedding provider
func WithGeminiProvider[V any](apiKey string, model ...string) Option[V] {
	return func(cfg *Config[V]) error {
		config := gemini.GeminiConfig{
			APIKey: apiKey,
		}
		if len(model) > 0 {
			config.Model = model[0]
		}

		provider, err := gemini.NewGeminiProvider(context.Background(), config)
		if err != nil {
			return err
		}
		cfg.Provider = provider
		return nil
	}
}

// WithProvider sets up an embedding provider by type
func WithProvider[V any](providerType types.ProviderType, config providers.ProviderConfig) Option[V] {
	return func(cfg *Config[V]) error {
		provider, err := providers.NewProvider(context.Background(), providerType, config)
		if err != nil {
			return err
		}
		cfg.Provider = provider
		return nil
	}
}

// WithCustomProvider allows using a pre-configured embedding provider
func WithCustomProvider[V any](provider types.EmbeddingProvider) Option[V] {
	return func(cfg *Config[V]) error {
		if provider == nil {
			return errors.New("provider cannot be nil")
		}
		cfg.Provider = provider
		return nil
	}
}

// WithLogger sets the structured logger
func WithLogger[V any](logger *slog.Logger) Option[V] {
	return func(cfg *Config[V]) error {
		if logger == nil {
			return errors.New("logger cannot be nil")
		}
		cfg.Logger = logger
		return nil
	}
}

// WithRankingOptions sets the default ranking options of every query
func WithRankingOptions[V any](opts ...ranking.Option) Option[V] {
	return func(cfg *Config[V]) error {
		for _, opt := range opts {
			if err := opt(&cfg.Ranking); err != nil {
				return err
			}
		}
		return nil
	}
}

// WithRankingYAML loads default ranking options from YAML, see ranking.LoadOptions
func WithRankingYAML[V any](data []byte) Option[V] {
	return func(cfg *Config[V]) error {
		loaded, err := ranking.LoadOptions(data)
		if err != nil {
			return err
		}
		return ranking.WithOptions(loaded)(&cfg.Ranking)
	}
}
