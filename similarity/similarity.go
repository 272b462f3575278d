// Package similarity provides the metrics used to compare embedding vectors
// and the table that maps a Method to its metric and ranking direction.
package similarity

import (
	"fmt"
	"strings"

	"github.com/botirk38/vecrank/types"
)

// Func computes a scalar relationship between two vectors of equal length.
// Vectors of different lengths are rejected with types.ErrDimensionMismatch.
type Func func(a, b types.Vector) (float64, error)

// Method names a metric.
type Method string

const (
	Cosine    Method = "cosine"
	Euclidean Method = "euclidean"
	Manhattan Method = "manhattan"
	Dot       Method = "dot"
	Pearson   Method = "pearson"
)

// DefaultMethod is used when no method is given.
const DefaultMethod = Cosine

// Metric is one entry of the metric table.
type Metric struct {
	Method Method
	Func   Func
	// Kind selects the score tag and the sort direction.
	Kind types.ScoreKind
}

var metrics = map[Method]Metric{
	Cosine:    {Method: Cosine, Func: CosineSimilarity, Kind: types.ScoreSimilarity},
	Euclidean: {Method: Euclidean, Func: EuclideanDistance, Kind: types.ScoreDistance},
	Manhattan: {Method: Manhattan, Func: ManhattanDistance, Kind: types.ScoreDistance},
	Dot:       {Method: Dot, Func: DotProduct, Kind: types.ScoreSimilarity},
	Pearson:   {Method: Pearson, Func: PearsonCorrelation, Kind: types.ScoreSimilarity},
}

// Methods returns every known method in a stable order.
func Methods() []Method {
	return []Method{Cosine, Euclidean, Manhattan, Dot, Pearson}
}

// ParseMethod resolves a method name. Matching ignores case and surrounding
// whitespace; the empty string yields DefaultMethod.
func ParseMethod(s string) (Method, error) {
	m := Method(strings.ToLower(strings.TrimSpace(s)))
	if m == "" {
		return DefaultMethod, nil
	}
	if _, ok := metrics[m]; !ok {
		return "", fmt.Errorf("%w: unknown method %q", types.ErrInvalidOption, s)
	}
	return m, nil
}

// UnmarshalText implements encoding.TextUnmarshaler so that decoded
// configuration is validated.
func (m *Method) UnmarshalText(text []byte) error {
	parsed, err := ParseMethod(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// Lookup returns the table entry for m. The zero Method resolves to DefaultMethod.
func Lookup(m Method) (Metric, error) {
	if m == "" {
		m = DefaultMethod
	}
	metric, ok := metrics[m]
	if !ok {
		return Metric{}, fmt.Errorf("%w: unknown method %q", types.ErrInvalidOption, string(m))
	}
	return metric, nil
}

func checkDims(name string, a, b types.Vector) error {
	if len(a) != len(b) {
		return fmt.Errorf("%s: %w", name, types.DimensionError(len(a), len(b)))
	}
	return nil
}
