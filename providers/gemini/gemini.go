// Package gemini embeds text with the Gemini API.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/botirk38/vecrank/types"
	"google.golang.org/genai"
)

const DefaultGeminiModel = "text-embedding-004"

var (
	// ErrMissingAPIKey is returned when no API key is configured or found in the environment
	ErrMissingAPIKey = errors.New("Gemini API key is required")

	// ErrEmptyText is returned when asked to embed empty or blank text
	ErrEmptyText = errors.New("cannot embed empty text")

	// ErrNoEmbedding is returned when the API answers without values
	ErrNoEmbedding = errors.New("no embedding returned by Gemini")
)

// GeminiProvider uses the Gemini API to embed text.
type GeminiProvider struct {
	client     *genai.Client
	model      string
	dimensions int32
	taskType   string
}

// GeminiConfig provides configuration options for the Gemini embedding provider
type GeminiConfig struct {
	APIKey  string
	BaseURL string
	Model   string

	// Dimensions truncates the output embedding. Zero keeps the model default.
	Dimensions int

	// TaskType hints the intended use, e.g. "RETRIEVAL_QUERY" or "SEMANTIC_SIMILARITY".
	TaskType string
}

// NewGeminiProvider creates an embedding provider for Gemini. The API key
// falls back to GEMINI_API_KEY, then GOOGLE_API_KEY.
func NewGeminiProvider(ctx context.Context, config GeminiConfig) (*GeminiProvider, error) {
	apiKey := config.APIKey
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey == "" {
		apiKey = os.Getenv("GOOGLE_API_KEY")
	}
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	if config.Dimensions < 0 {
		return nil, fmt.Errorf("%w: dimensions must be non-negative, got %d", types.ErrInvalidOption, config.Dimensions)
	}

	model := config.Model
	if model == "" {
		model = DefaultGeminiModel
	}

	clientConfig := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}
	if config.BaseURL != "" {
		clientConfig.HTTPOptions = genai.HTTPOptions{BaseURL: config.BaseURL}
	}

	client, err := genai.NewClient(ctx, clientConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &GeminiProvider{
		client:     client,
		model:      model,
		dimensions: int32(config.Dimensions),
		taskType:   config.TaskType,
	}, nil
}

// Model returns the embedding model name.
func (p *GeminiProvider) Model() string {
	return p.model
}

// EmbedText sends the embedding request to Gemini and widens the result to float64.
func (p *GeminiProvider) EmbedText(ctx context.Context, text string) (types.Vector, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyText
	}

	var cfg *genai.EmbedContentConfig
	if p.dimensions > 0 || p.taskType != "" {
		cfg = &genai.EmbedContentConfig{TaskType: p.taskType}
		if p.dimensions > 0 {
			cfg.OutputDimensionality = genai.Ptr(p.dimensions)
		}
	}

	resp, err := p.client.Models.EmbedContent(ctx, p.model, genai.Text(text), cfg)
	if err != nil {
		return nil, fmt.Errorf("gemini embed content: %w", err)
	}
	if resp == nil || len(resp.Embeddings) == 0 || resp.Embeddings[0] == nil || len(resp.Embeddings[0].Values) == 0 {
		return nil, ErrNoEmbedding
	}

	values := resp.Embeddings[0].Values
	vec := make(types.Vector, len(values))
	for i, v := range values {
		vec[i] = float64(v)
	}
	return vec, nil
}

func (p *GeminiProvider) Close() {}
