package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProvider(t *testing.T, serverURL string, cfg GeminiConfig) *GeminiProvider {
	t.Helper()
	cfg.APIKey = "test-api-key"
	cfg.BaseURL = serverURL + "/"
	p, err := NewGeminiProvider(context.Background(), cfg)
	require.NoError(t, err)
	return p
}

func TestGeminiProvider_EmbedText(t *testing.T) {
	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		assert.True(t, strings.Contains(r.URL.Path, DefaultGeminiModel), "path %s", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"embeddings": []map[string]any{
				{"values": []float32{0.5, -0.25, 1}},
			},
		})
	}))
	defer server.Close()

	p := newTestProvider(t, server.URL, GeminiConfig{})
	vec, err := p.EmbedText(context.Background(), "hello world")
	require.NoError(t, err)
	assert.Equal(t, []float64{0.5, -0.25, 1}, vec)
	assert.Equal(t, 1, calls)
}

func TestGeminiProvider_EmptyText(t *testing.T) {
	p := &GeminiProvider{model: DefaultGeminiModel}
	_, err := p.EmbedText(context.Background(), " \n")
	assert.True(t, errors.Is(err, ErrEmptyText))
}

func TestGeminiProvider_NoEmbedding(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"embeddings": []}`))
	}))
	defer server.Close()

	p := newTestProvider(t, server.URL, GeminiConfig{})
	_, err := p.EmbedText(context.Background(), "nothing back")
	assert.True(t, errors.Is(err, ErrNoEmbedding))
}

func TestNewGeminiProvider_Config(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("GOOGLE_API_KEY", "")
	ctx := context.Background()

	_, err := NewGeminiProvider(ctx, GeminiConfig{})
	assert.True(t, errors.Is(err, ErrMissingAPIKey))

	t.Setenv("GOOGLE_API_KEY", "google-key")
	p, err := NewGeminiProvider(ctx, GeminiConfig{})
	require.NoError(t, err)
	assert.Equal(t, DefaultGeminiModel, p.Model())

	p, err = NewGeminiProvider(ctx, GeminiConfig{Model: "gemini-embedding-001"})
	require.NoError(t, err)
	assert.Equal(t, "gemini-embedding-001", p.Model())

	_, err = NewGeminiProvider(ctx, GeminiConfig{APIKey: "k", Dimensions: -3})
	assert.Error(t, err)
}
