package similarity

import "github.com/botirk38/vecrank/types"

// DotProduct computes the dot product between two vectors.
// No normalization is applied, so results depend on vector magnitudes.
func DotProduct(a, b types.Vector) (float64, error) {
	if err := checkDims("dot product", a, b); err != nil {
		return 0, err
	}

	var dot float64
	for i := range a {
		dot += a[i] * b[i]
	}

	return dot, nil
}
