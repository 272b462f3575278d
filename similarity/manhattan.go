package similarity

import (
	"math"

	"github.com/botirk38/vecrank/types"
)

// ManhattanDistance computes the L1 distance: the sum of absolute
// per-dimension differences.
func ManhattanDistance(a, b types.Vector) (float64, error) {
	if err := checkDims("manhattan distance", a, b); err != nil {
		return 0, err
	}

	var sum float64
	for i := range a {
		sum += math.Abs(a[i] - b[i])
	}

	return sum, nil
}
