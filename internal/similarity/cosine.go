// Package similarity compares embedding vectors.
package similarity

import (
	"errors"
	"fmt"
	"math"
)

// ErrDimensionMismatch is returned when two embeddings have different lengths.
// Embeddings of one model always share a dimension, so this is an upstream bug.
var ErrDimensionMismatch = errors.New("embedding dimension mismatch")

// DimensionMismatchError carries the offending lengths.
type DimensionMismatchError struct {
	Left  int
	Right int
}

func (e *DimensionMismatchError) Error() string {
	return fmt.Sprintf("%s: %d != %d", ErrDimensionMismatch, e.Left, e.Right)
}

func (e *DimensionMismatchError) Unwrap() error { return ErrDimensionMismatch }

// Cosine returns dot(a,b) / (|a|·|b|) in [-1, 1]. Vectors must have equal
// length; a zero-magnitude vector (including an empty one) yields 0.
func Cosine(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, &DimensionMismatchError{Left: len(a), Right: len(b)}
	}

	var dot, magA, magB float64
	for i := range a {
		dot += a[i] * b[i]
		magA += a[i] * a[i]
		magB += b[i] * b[i]
	}

	denom := math.Sqrt(magA) * math.Sqrt(magB)
	if denom == 0 || math.IsNaN(denom) || math.IsInf(denom, 0) {
		return 0, nil
	}

	sim := dot / denom
	if math.IsNaN(sim) {
		return 0, nil
	}
	return math.Max(-1, math.Min(1, sim)), nil
}

// ToPercent maps a similarity in [-1, 1] onto an integer in [0, 100].
func ToPercent(sim float64) int {
	if math.IsNaN(sim) {
		return 0
	}
	v := math.Round((sim + 1) / 2 * 100)
	return int(math.Max(0, math.Min(100, v)))
}

// Float32s widens an embedding as returned by most embedding APIs.
func Float32s(values []float32) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = float64(v)
	}
	return out
}
