// Package ranking scores a collection of samples against a query vector and
// returns them best match first.
package ranking

import (
	"fmt"
	"sort"

	"github.com/botirk38/vecrank/similarity"
	"github.com/botirk38/vecrank/types"
)

// plan is Options with every default resolved.
type plan struct {
	metric    similarity.Metric
	filter    bool
	threshold float64
	limit     int // < 0 means unbounded
}

func (o Options) resolve(all bool) (plan, error) {
	metric, err := similarity.Lookup(o.Method)
	if err != nil {
		return plan{}, err
	}

	p := plan{metric: metric, limit: -1}
	if all {
		return p, nil
	}

	if o.Threshold != nil {
		p.filter = true
		p.threshold = *o.Threshold
	}
	switch {
	case o.TopK != nil:
		p.limit = max(*o.TopK, 0)
	case !p.filter:
		p.limit = 1
	}
	return p, nil
}

// FindNearest returns the best matches for query among samples, filtered by
// the threshold and limited to top K. See Options for the defaults.
func FindNearest[V any](query types.Vector, samples []types.Sample[V], opts ...Option) ([]types.ScoredSample[V], error) {
	o, err := Apply(opts...)
	if err != nil {
		return nil, err
	}
	return Rank(query, samples, o, false)
}

// RankAll scores every sample against query and returns all of them sorted
// best match first. Threshold and TopK are ignored.
func RankAll[V any](query types.Vector, samples []types.Sample[V], opts ...Option) ([]types.ScoredSample[V], error) {
	o, err := Apply(opts...)
	if err != nil {
		return nil, err
	}
	return Rank(query, samples, o, true)
}

// Rank is the policy shared by FindNearest (all == false) and RankAll
// (all == true). Samples are never modified; every result holds its own copy
// of the embedding. Equal scores keep their input order.
func Rank[V any](query types.Vector, samples []types.Sample[V], o Options, all bool) ([]types.ScoredSample[V], error) {
	p, err := o.resolve(all)
	if err != nil {
		return nil, err
	}
	if p.limit == 0 {
		return []types.ScoredSample[V]{}, nil
	}

	kind := p.metric.Kind
	results := make([]types.ScoredSample[V], 0, len(samples))
	for i, s := range samples {
		score, err := p.metric.Func(query, s.Embedding)
		if err != nil {
			return nil, fmt.Errorf("sample %d (%q): %w", i, s.Label, err)
		}
		if p.filter && !kind.Passes(score, p.threshold) {
			continue
		}
		results = append(results, types.ScoredSample[V]{
			Sample: s.Clone(),
			Score:  types.Score{Kind: kind, Value: score},
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return kind.Better(results[i].Score.Value, results[j].Score.Value)
	})

	if p.limit > 0 && len(results) > p.limit {
		results = results[:p.limit]
	}
	return results, nil
}
