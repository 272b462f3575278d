package similarity

import (
	"math"

	"github.com/botirk38/vecrank/types"
)

// CosineSimilarity computes dot(a,b) / (|a| * |b|), in [-1, 1].
// It returns 0 when either vector is all zeros.
func CosineSimilarity(a, b types.Vector) (float64, error) {
	if err := checkDims("cosine similarity", a, b); err != nil {
		return 0, err
	}

	// Cosine is scale invariant; dividing by the largest component keeps
	// the squares in range for very large or very small vectors.
	scaleA, scaleB := maxAbs(a), maxAbs(b)
	if scaleA == 0 || scaleB == 0 {
		return 0, nil
	}

	var dot, magA, magB float64
	for i := range a {
		x, y := a[i]/scaleA, b[i]/scaleB
		dot += x * y
		magA += x * x
		magB += y * y
	}

	sim := dot / (math.Sqrt(magA) * math.Sqrt(magB))
	if math.IsNaN(sim) {
		return sim, nil
	}
	return max(-1, min(1, sim)), nil
}

func maxAbs(v types.Vector) float64 {
	var m float64
	for _, x := range v {
		m = max(m, math.Abs(x))
	}
	return m
}
