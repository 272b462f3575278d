package vecrank

import (
	"context"
	"errors"
	"testing"

	"github.com/botirk38/vecrank/options"
	"github.com/botirk38/vecrank/ranking"
	"github.com/botirk38/vecrank/similarity"
	"github.com/botirk38/vecrank/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAsyncOperations(t *testing.T) {
	ctx := context.Background()

	t.Run("FindNearestAsync", func(t *testing.T) {
		idx := newCompassIndex(t)
		result := <-idx.FindNearestAsync(ctx, types.Vector{1, 1}, ranking.WithTopK(2))
		require.NoError(t, result.Error)
		assert.Equal(t, []string{"C", "A"}, labels(result.Matches))
	})

	t.Run("RankAllAsync", func(t *testing.T) {
		idx := newCompassIndex(t)
		result := <-idx.RankAllAsync(ctx, types.Vector{1, 0}, ranking.WithMethod(similarity.Euclidean))
		require.NoError(t, result.Error)
		assert.Equal(t, []string{"A", "C", "B"}, labels(result.Matches))
	})

	t.Run("ChannelClosedAfterResult", func(t *testing.T) {
		idx := newCompassIndex(t)
		ch := idx.RankAllAsync(ctx, types.Vector{1, 0, 0})
		result := <-ch
		assert.True(t, errors.Is(result.Error, types.ErrDimensionMismatch))
		_, open := <-ch
		assert.False(t, open)
	})

	t.Run("TextAsync", func(t *testing.T) {
		idx, err := New[string](options.WithCustomProvider[string](newMockProvider()))
		require.NoError(t, err)

		added := <-idx.AddTextAsync(ctx, "e", "east", "east", "E")
		require.NoError(t, added.Error)
		assert.Equal(t, "e", added.Key)

		result := <-idx.FindNearestTextAsync(ctx, "north-east")
		require.NoError(t, result.Error)
		assert.Equal(t, []string{"east"}, labels(result.Matches))
	})

	t.Run("TextAsyncWithoutProvider", func(t *testing.T) {
		idx, err := New[string]()
		require.NoError(t, err)

		result := <-idx.FindNearestTextAsync(ctx, "east")
		assert.True(t, errors.Is(result.Error, ErrNoProvider))
		added := <-idx.AddTextAsync(ctx, "", "east", "east", "E")
		assert.True(t, errors.Is(added.Error, ErrNoProvider))
	})

	t.Run("AddTextBatchAsync", func(t *testing.T) {
		idx, err := New[string](options.WithCustomProvider[string](newMockProvider()))
		require.NoError(t, err)

		items := []TextItem[string]{
			{Key: "e", Label: "east", Text: "east"},
			{Key: "n", Label: "north", Text: "north"},
			{Key: "w", Label: "west", Text: "west"},
			{Label: "ne", Text: "north-east"},
		}
		result := <-idx.AddTextBatchAsync(ctx, items)
		require.NoError(t, result.Error)
		require.Len(t, result.Keys, 4)
		assert.Equal(t, []string{"e", "n", "w"}, result.Keys[:3])
		assert.NotEmpty(t, result.Keys[3])

		n, err := idx.Len(ctx)
		require.NoError(t, err)
		assert.Equal(t, 4, n)
	})

	t.Run("AddTextBatchAsyncEmpty", func(t *testing.T) {
		idx, err := New[string]()
		require.NoError(t, err)
		result := <-idx.AddTextBatchAsync(ctx, nil)
		assert.NoError(t, result.Error)
		assert.Empty(t, result.Keys)
	})

	t.Run("AddTextBatchAsyncError", func(t *testing.T) {
		provider := newMockProvider()
		provider.shouldErr = true
		idx, err := New[string](options.WithCustomProvider[string](provider))
		require.NoError(t, err)

		result := <-idx.AddTextBatchAsync(ctx, []TextItem[string]{{Key: "a", Text: "east"}, {Key: "b", Text: "west"}})
		assert.Error(t, result.Error)
		assert.Equal(t, []string{"", ""}, result.Keys)
	})

	t.Run("ConcurrentQueries", func(t *testing.T) {
		idx := newCompassIndex(t)
		chans := make([]<-chan RankResult[string], 20)
		for i := range chans {
			chans[i] = idx.FindNearestAsync(ctx, types.Vector{0, 1})
		}
		for _, ch := range chans {
			result := <-ch
			require.NoError(t, result.Error)
			assert.Equal(t, []string{"B"}, labels(result.Matches))
		}
	})
}
