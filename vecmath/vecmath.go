// Package vecmath provides vector utilities that work independently of the
// ranking engine: normalization, the unit-length check and centroids.
package vecmath

import (
	"fmt"
	"math"
	"slices"

	"github.com/botirk38/vecrank/types"
)

// DefaultEpsilon is the tolerance IsNormalized uses when none is given.
const DefaultEpsilon = 1e-6

func sumSquares(v types.Vector) float64 {
	var sum float64
	for _, x := range v {
		sum += x * x
	}
	return sum
}

// scaledNorm returns scale and ssq with |v| = scale * sqrt(ssq). Components
// are divided by the largest magnitude before squaring, so the norm neither
// overflows nor underflows for finite input. scale is 0 only for all-zero v.
func scaledNorm(v types.Vector) (scale, ssq float64) {
	for _, x := range v {
		scale = max(scale, math.Abs(x))
	}
	if scale == 0 || math.IsInf(scale, 1) {
		return scale, sumSquares(v)
	}
	for _, x := range v {
		r := x / scale
		ssq += r * r
	}
	return scale, ssq
}

// Magnitude computes the L2 norm of v.
func Magnitude(v types.Vector) float64 {
	scale, ssq := scaledNorm(v)
	if scale == 0 || math.IsInf(scale, 1) {
		return math.Sqrt(ssq)
	}
	return scale * math.Sqrt(ssq)
}

// Normalize returns a new vector with the direction of v and unit length.
// An all-zero vector comes back as an unmodified copy.
func Normalize(v types.Vector) types.Vector {
	scale, ssq := scaledNorm(v)
	if scale == 0 {
		if v == nil {
			return types.Vector{}
		}
		return slices.Clone(v)
	}

	norm := math.Sqrt(ssq)
	result := make(types.Vector, len(v))
	for i, x := range v {
		result[i] = x / scale / norm
	}
	return result
}

// IsNormalized reports whether the squared L2 norm of v is within epsilon of 1.
// The optional epsilon defaults to DefaultEpsilon. Zero and empty vectors are
// never normalized.
func IsNormalized(v types.Vector, epsilon ...float64) bool {
	eps := DefaultEpsilon
	if len(epsilon) > 0 {
		eps = epsilon[0]
	}
	return math.Abs(sumSquares(v)-1) <= eps
}

// Mean computes the per-dimension arithmetic mean (centroid) of vectors.
// An empty collection yields an empty vector. All vectors must share the
// dimension of the first one.
func Mean(vectors []types.Vector) (types.Vector, error) {
	if len(vectors) == 0 {
		return types.Vector{}, nil
	}

	dim := len(vectors[0])
	mean := make(types.Vector, dim)
	for i, v := range vectors {
		if len(v) != dim {
			return nil, fmt.Errorf("mean of vector %d: %w", i, types.DimensionError(len(v), dim))
		}
		for j, x := range v {
			mean[j] += x
		}
	}

	n := float64(len(vectors))
	for j := range mean {
		mean[j] /= n
	}
	return mean, nil
}
