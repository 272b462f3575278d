package vecrank

import (
	"context"

	"github.com/botirk38/vecrank/ranking"
	"github.com/botirk38/vecrank/types"
)

// RankResult holds the result of an async ranking operation.
type RankResult[V any] struct {
	Matches []types.ScoredSample[V]
	Error   error
}

// FindNearestAsync runs FindNearest on a goroutine.
// Returns a channel that will receive the result when complete.
func (idx *Index[V]) FindNearestAsync(ctx context.Context, query types.Vector, opts ...ranking.Option) <-chan RankResult[V] {
	resultCh := make(chan RankResult[V], 1)
	go func() {
		defer close(resultCh)
		matches, err := idx.FindNearest(ctx, query, opts...)
		resultCh <- RankResult[V]{Matches: matches, Error: err}
	}()
	return resultCh
}

// RankAllAsync runs RankAll on a goroutine.
// Returns a channel that will receive the result when complete.
func (idx *Index[V]) RankAllAsync(ctx context.Context, query types.Vector, opts ...ranking.Option) <-chan RankResult[V] {
	resultCh := make(chan RankResult[V], 1)
	go func() {
		defer close(resultCh)
		matches, err := idx.RankAll(ctx, query, opts...)
		resultCh <- RankResult[V]{Matches: matches, Error: err}
	}()
	return resultCh
}

// FindNearestTextAsync embeds text and runs FindNearest on a goroutine.
// Returns a channel that will receive the result when complete.
func (idx *Index[V]) FindNearestTextAsync(ctx context.Context, text string, opts ...ranking.Option) <-chan RankResult[V] {
	resultCh := make(chan RankResult[V], 1)
	go func() {
		defer close(resultCh)
		matches, err := idx.FindNearestText(ctx, text, opts...)
		resultCh <- RankResult[V]{Matches: matches, Error: err}
	}()
	return resultCh
}

// AddResult holds the result of an async add operation.
type AddResult struct {
	Key   string
	Error error
}

// AddTextAsync embeds and stores a sample on a goroutine.
// Returns a channel that will receive the result when complete.
func (idx *Index[V]) AddTextAsync(ctx context.Context, key, label, text string, value V) <-chan AddResult {
	resultCh := make(chan AddResult, 1)
	go func() {
		defer close(resultCh)
		key, err := idx.AddText(ctx, key, label, text, value)
		resultCh <- AddResult{Key: key, Error: err}
	}()
	return resultCh
}

// BatchResult holds the result of an async batch operation. Keys are in
// item order; a failed item leaves an empty key.
type BatchResult struct {
	Keys  []string
	Error error
}

// AddTextBatchAsync embeds every item concurrently and stores the results.
// Returns a channel that will receive the result when complete.
func (idx *Index[V]) AddTextBatchAsync(ctx context.Context, items []TextItem[V]) <-chan BatchResult {
	resultCh := make(chan BatchResult, 1)
	go func() {
		defer close(resultCh)
		keys := make([]string, len(items))
		if len(items) == 0 {
			resultCh <- BatchResult{Keys: keys}
			return
		}

		type addResult struct {
			pos int
			key string
			err error
		}
		addCh := make(chan addResult, len(items))

		for i, item := range items {
			go func(pos int, it TextItem[V]) {
				key, err := idx.AddText(ctx, it.Key, it.Label, it.Text, it.Value)
				addCh <- addResult{pos: pos, key: key, err: err}
			}(i, item)
		}

		// Wait for all to complete
		var firstErr error
		for range items {
			result := <-addCh
			if result.err != nil {
				if firstErr == nil {
					firstErr = result.err
				}
				continue
			}
			keys[result.pos] = result.key
		}
		resultCh <- BatchResult{Keys: keys, Error: firstErr}
	}()
	return resultCh
}
