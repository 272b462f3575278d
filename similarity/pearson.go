package similarity

import (
	"math"

	"github.com/botirk38/vecrank/types"
)

// PearsonCorrelation computes the Pearson correlation coefficient.
// Returns a value between -1 and 1, or 0 when either vector has no variance.
func PearsonCorrelation(a, b types.Vector) (float64, error) {
	if err := checkDims("pearson correlation", a, b); err != nil {
		return 0, err
	}
	if len(a) == 0 {
		return 0, nil
	}

	n := float64(len(a))

	var meanA, meanB float64
	for i := range a {
		meanA += a[i]
		meanB += b[i]
	}
	meanA /= n
	meanB /= n

	var numerator, sumSqA, sumSqB float64
	for i := range a {
		diffA := a[i] - meanA
		diffB := b[i] - meanB
		numerator += diffA * diffB
		sumSqA += diffA * diffA
		sumSqB += diffB * diffB
	}

	denominator := math.Sqrt(sumSqA * sumSqB)
	if denominator == 0 {
		return 0, nil
	}

	return numerator / denominator, nil
}
