package similarity

import (
	"math"

	"github.com/botirk38/vecrank/types"
)

// EuclideanDistance computes the straight-line (L2) distance between a and b.
// The result is 0 only for identical vectors.
func EuclideanDistance(a, b types.Vector) (float64, error) {
	if err := checkDims("euclidean distance", a, b); err != nil {
		return 0, err
	}

	var sum float64
	for i := range a {
		diff := a[i] - b[i]
		sum += diff * diff
	}

	return math.Sqrt(sum), nil
}
