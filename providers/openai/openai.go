// Package openai embeds text with OpenAI's embeddings endpoint.
package openai

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/botirk38/vecrank/tokenizer"
	"github.com/botirk38/vecrank/types"
	openai "github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"
)

const (
	DefaultOpenAIModel = openai.EmbeddingModelTextEmbedding3Small

	// defaultMaxTokens is used for models missing from openAIModelLimits
	defaultMaxTokens = 8191
)

var (
	// ErrMissingAPIKey is returned when neither the config nor OPENAI_API_KEY carries a key
	ErrMissingAPIKey = errors.New("OpenAI API key is required")

	// ErrEmptyText is returned when asked to embed empty or blank text
	ErrEmptyText = errors.New("cannot embed empty text")

	// ErrInputTooLong is returned when text exceeds the model's token limit
	ErrInputTooLong = errors.New("input exceeds model token limit")

	// ErrNoEmbedding is returned when the API answers without data
	ErrNoEmbedding = errors.New("no embedding returned by OpenAI")
)

// openAIModelLimits maps embedding models to their maximum input tokens.
var openAIModelLimits = map[string]int{
	openai.EmbeddingModelTextEmbedding3Small: 8191,
	openai.EmbeddingModelTextEmbedding3Large: 8191,
	openai.EmbeddingModelTextEmbeddingAda002: 8191,
}

// OpenAIProvider uses OpenAI's API to embed text.
type OpenAIProvider struct {
	client     *openai.Client
	model      string
	dimensions int
	truncate   bool
	counter    *tokenizer.Counter
}

// OpenAIConfig provides configuration options for OpenAI embedding provider
type OpenAIConfig struct {
	APIKey  string
	BaseURL string
	OrgID   string
	Model   string

	// Dimensions asks text-embedding-3 models for shorter vectors. Zero keeps the model default.
	Dimensions int

	// Truncate cuts over-long input to the model limit instead of failing with ErrInputTooLong.
	Truncate bool
}

// NewOpenAIProvider creates an embedding provider for OpenAI.
func NewOpenAIProvider(config OpenAIConfig) (*OpenAIProvider, error) {
	apiKey := config.APIKey
	if apiKey == "" {
		apiKey = os.Getenv("OPENAI_API_KEY")
		if apiKey == "" {
			return nil, ErrMissingAPIKey
		}
	}

	model := config.Model
	if model == "" {
		model = DefaultOpenAIModel
	}

	if config.Dimensions < 0 {
		return nil, fmt.Errorf("%w: dimensions must be non-negative, got %d", types.ErrInvalidOption, config.Dimensions)
	}

	counter, err := tokenizer.NewCounter()
	if err != nil {
		return nil, err
	}

	opts := []option.RequestOption{option.WithAPIKey(apiKey), option.WithMaxRetries(0)}

	if config.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(config.BaseURL))
	}

	if config.OrgID != "" {
		opts = append(opts, option.WithOrganization(config.OrgID))
	}

	client := openai.NewClient(opts...)
	return &OpenAIProvider{
		client:     &client,
		model:      model,
		dimensions: config.Dimensions,
		truncate:   config.Truncate,
		counter:    counter,
	}, nil
}

// GetMaxTokens returns the input token limit of the configured model.
func (p *OpenAIProvider) GetMaxTokens() int {
	if limit, ok := openAIModelLimits[p.model]; ok {
		return limit
	}
	return defaultMaxTokens
}

// Model returns the embedding model name.
func (p *OpenAIProvider) Model() string {
	return p.model
}

// prepare validates text against the model's token limit.
func (p *OpenAIProvider) prepare(text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyText
	}

	limit := p.GetMaxTokens()
	if p.truncate {
		cut, _, err := p.counter.Truncate(text, limit)
		return cut, err
	}

	n, err := p.counter.CountTokens(text)
	if err != nil {
		return "", err
	}
	if n > limit {
		return "", fmt.Errorf("%w: %d tokens, %s accepts %d", ErrInputTooLong, n, p.model, limit)
	}
	return text, nil
}

// EmbedText sends the embedding request to OpenAI.
func (p *OpenAIProvider) EmbedText(ctx context.Context, text string) (types.Vector, error) {
	input, err := p.prepare(text)
	if err != nil {
		return nil, err
	}

	params := openai.EmbeddingNewParams{
		Model: openai.EmbeddingModel(p.model),
		Input: openai.EmbeddingNewParamsInputUnion{
			OfArrayOfStrings: []string{input},
		},
	}
	if p.dimensions > 0 {
		params.Dimensions = openai.Int(int64(p.dimensions))
	}

	resp, err := p.client.Embeddings.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("openai embeddings: %w", err)
	}
	if len(resp.Data) == 0 {
		return nil, ErrNoEmbedding
	}
	return resp.Data[0].Embedding, nil
}

func (p *OpenAIProvider) Close() {}
