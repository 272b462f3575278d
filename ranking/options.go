package ranking

import (
	"fmt"
	"math"

	"github.com/botirk38/vecrank/similarity"
	"github.com/botirk38/vecrank/types"
)

// Options configures a ranking call. Nil fields are unset; defaults are
// resolved once at the start of each call:
//
//   - Method: similarity.DefaultMethod (cosine).
//   - TopK: FindNearest returns 1 result when Threshold is also unset and
//     every passing sample when only Threshold is set. RankAll ignores it.
//   - Threshold: no filtering. RankAll ignores it.
type Options struct {
	Method    similarity.Method
	TopK      *int
	Threshold *float64
}

// Option represents a configuration option for a ranking call
type Option func(*Options) error

// Apply builds Options from opts, stopping at the first invalid option.
func Apply(opts ...Option) (Options, error) {
	var o Options
	for _, opt := range opts {
		if err := opt(&o); err != nil {
			return Options{}, err
		}
	}
	return o, nil
}

// WithMethod selects the metric.
func WithMethod(m similarity.Method) Option {
	return func(o *Options) error {
		if _, err := similarity.Lookup(m); err != nil {
			return err
		}
		o.Method = m
		return nil
	}
}

// WithMethodName selects the metric by name, see similarity.ParseMethod.
func WithMethodName(name string) Option {
	return func(o *Options) error {
		m, err := similarity.ParseMethod(name)
		if err != nil {
			return err
		}
		o.Method = m
		return nil
	}
}

// WithTopK limits FindNearest to k results. k <= 0 yields no results.
func WithTopK(k int) Option {
	return func(o *Options) error {
		o.TopK = &k
		return nil
	}
}

// WithThreshold drops samples that do not reach t: similarity >= t or
// distance <= t depending on the metric.
func WithThreshold(t float64) Option {
	return func(o *Options) error {
		if math.IsNaN(t) {
			return fmt.Errorf("%w: threshold is NaN", types.ErrInvalidOption)
		}
		o.Threshold = &t
		return nil
	}
}

// WithOptions overlays the set fields of base.
func WithOptions(base Options) Option {
	return func(o *Options) error {
		if base.Method != "" {
			if err := WithMethod(base.Method)(o); err != nil {
				return err
			}
		}
		if base.TopK != nil {
			k := *base.TopK
			o.TopK = &k
		}
		if base.Threshold != nil {
			if err := WithThreshold(*base.Threshold)(o); err != nil {
				return err
			}
		}
		return nil
	}
}
