package types

import (
	"encoding/json"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreKind(t *testing.T) {
	t.Run("similarity prefers higher", func(t *testing.T) {
		assert.True(t, ScoreSimilarity.Better(0.9, 0.1))
		assert.False(t, ScoreSimilarity.Better(0.5, 0.5))
		assert.True(t, ScoreSimilarity.Passes(0.5, 0.5))
		assert.False(t, ScoreSimilarity.Passes(0.49, 0.5))
	})

	t.Run("distance prefers lower", func(t *testing.T) {
		assert.True(t, ScoreDistance.Better(0.1, 0.9))
		assert.False(t, ScoreDistance.Better(1, 1))
		assert.True(t, ScoreDistance.Passes(1, 1))
		assert.False(t, ScoreDistance.Passes(1.01, 1))
	})

	assert.Equal(t, "similarity", ScoreSimilarity.String())
	assert.Equal(t, "distance", ScoreDistance.String())
	assert.Equal(t, "unknown", ScoreKind(0).String())
}

func TestScoreAccessors(t *testing.T) {
	sim := Score{Kind: ScoreSimilarity, Value: 0.7}
	v, ok := sim.Similarity()
	assert.True(t, ok)
	assert.Equal(t, 0.7, v)
	_, ok = sim.Distance()
	assert.False(t, ok)

	dist := Score{Kind: ScoreDistance, Value: 3}
	_, ok = dist.Similarity()
	assert.False(t, ok)
	v, ok = dist.Distance()
	assert.True(t, ok)
	assert.Equal(t, 3.0, v)
}

func TestSampleClone(t *testing.T) {
	orig := Sample[string]{Label: "A", Embedding: Vector{1, 2}, Value: "meta"}
	c := orig.Clone()
	c.Embedding[0] = 99

	assert.Equal(t, 1.0, orig.Embedding[0])
	assert.Equal(t, "A", c.Label)
	assert.Equal(t, "meta", c.Value)
}

func TestScoredSampleMarshalJSON(t *testing.T) {
	t.Run("similarity", func(t *testing.T) {
		s := ScoredSample[string]{
			Sample: Sample[string]{Label: "C", Embedding: Vector{1, 1}, Value: "x"},
			Score:  Score{Kind: ScoreSimilarity, Value: 1},
		}
		data, err := json.Marshal(s)
		require.NoError(t, err)

		var out map[string]any
		require.NoError(t, json.Unmarshal(data, &out))
		assert.Equal(t, "C", out["label"])
		assert.Equal(t, 1.0, out["similarityScore"])
		assert.NotContains(t, out, "distance")
	})

	t.Run("distance zero is still emitted", func(t *testing.T) {
		s := ScoredSample[int]{
			Sample: Sample[int]{Label: "A", Embedding: Vector{1, 0}},
			Score:  Score{Kind: ScoreDistance, Value: 0},
		}
		data, err := json.Marshal(s)
		require.NoError(t, err)

		var out map[string]any
		require.NoError(t, json.Unmarshal(data, &out))
		assert.Equal(t, 0.0, out["distance"])
		assert.NotContains(t, out, "similarityScore")
	})
}

func TestDimensionError(t *testing.T) {
	err := DimensionError(3, 2)
	assert.True(t, errors.Is(err, ErrDimensionMismatch))
	assert.Contains(t, err.Error(), "3 vs 2")
}

func TestScoreKindNaN(t *testing.T) {
	nan := math.NaN()
	for _, kind := range []ScoreKind{ScoreSimilarity, ScoreDistance} {
		t.Run(kind.String(), func(t *testing.T) {
			assert.True(t, kind.Better(0, nan))
			assert.True(t, kind.Better(math.Inf(-1), nan))
			assert.True(t, kind.Better(math.Inf(1), nan))
			assert.False(t, kind.Better(nan, 0))
			assert.False(t, kind.Better(nan, nan))
			assert.False(t, kind.Passes(nan, 0))
		})
	}
}

func TestSampleCloneSharesValue(t *testing.T) {
	orig := Sample[map[string]int]{Embedding: Vector{1}, Value: map[string]int{"n": 1}}
	c := orig.Clone()
	c.Value["n"] = 2
	assert.Equal(t, 2, orig.Value["n"])
}
