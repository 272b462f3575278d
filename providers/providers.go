// Package providers builds embedding providers by type.
package providers

import (
	"context"
	"errors"
	"fmt"

	"github.com/botirk38/vecrank/providers/gemini"
	"github.com/botirk38/vecrank/providers/openai"
	"github.com/botirk38/vecrank/types"
)

// ErrUnsupportedProvider is returned for an unknown provider type
var ErrUnsupportedProvider = errors.New("unsupported provider type")

// ProviderConfig holds the settings common to every provider.
// Empty fields fall back to each provider's defaults.
type ProviderConfig struct {
	APIKey     string
	BaseURL    string
	Model      string
	Dimensions int
}

// NewProvider creates an embedding provider of the given type
func NewProvider(ctx context.Context, providerType types.ProviderType, config ProviderConfig) (types.EmbeddingProvider, error) {
	switch providerType {
	case types.ProviderOpenAI:
		return NewOpenAIProvider(openai.OpenAIConfig{
			APIKey:     config.APIKey,
			BaseURL:    config.BaseURL,
			Model:      config.Model,
			Dimensions: config.Dimensions,
		})
	case types.ProviderGemini:
		return NewGeminiProvider(ctx, gemini.GeminiConfig{
			APIKey:     config.APIKey,
			BaseURL:    config.BaseURL,
			Model:      config.Model,
			Dimensions: config.Dimensions,
		})
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedProvider, providerType)
	}
}

// NewOpenAIProvider creates a new OpenAI provider
func NewOpenAIProvider(config openai.OpenAIConfig) (types.EmbeddingProvider, error) {
	p, err := openai.NewOpenAIProvider(config)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// NewGeminiProvider creates a new Gemini provider
func NewGeminiProvider(ctx context.Context, config gemini.GeminiConfig) (types.EmbeddingProvider, error) {
	p, err := gemini.NewGeminiProvider(ctx, config)
	if err != nil {
		return nil, err
	}
	return p, nil
}
