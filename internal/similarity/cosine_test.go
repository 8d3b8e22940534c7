package similarity

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCosineIdentical(t *testing.T) {
	v := []float64{0.1, -2, 3.5, 4}
	sim, err := Cosine(v, v)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, sim, 1e-9)
}

func TestCosineOrthogonal(t *testing.T) {
	sim, err := Cosine([]float64{1, 0}, []float64{0, 1})
	require.NoError(t, err)
	assert.Equal(t, 0.0, sim)
}

func TestCosineOpposite(t *testing.T) {
	sim, err := Cosine([]float64{1, 2, 3}, []float64{-1, -2, -3})
	require.NoError(t, err)
	assert.InDelta(t, -1.0, sim, 1e-9)
}

func TestCosineZeroMagnitude(t *testing.T) {
	sim, err := Cosine([]float64{0, 0, 0}, []float64{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, 0.0, sim)

	sim, err = Cosine(nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 0.0, sim)
}

func TestCosineDimensionMismatch(t *testing.T) {
	_, err := Cosine([]float64{1, 2, 3}, []float64{1, 2})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDimensionMismatch))

	var mismatch *DimensionMismatchError
	require.True(t, errors.As(err, &mismatch))
	assert.Equal(t, 3, mismatch.Left)
	assert.Equal(t, 2, mismatch.Right)
	assert.Contains(t, err.Error(), "3 != 2")
}

func TestToPercent(t *testing.T) {
	tests := []struct {
		sim    float64
		expect int
	}{
		{sim: -1, expect: 0},
		{sim: 0, expect: 50},
		{sim: 1, expect: 100},
		{sim: 0.5, expect: 75},
		{sim: 1.0000001, expect: 100},
		{sim: -1.5, expect: 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expect, ToPercent(tt.sim), "ToPercent(%v)", tt.sim)
	}
}

func TestFloat32s(t *testing.T) {
	assert.Equal(t, []float64{0.5, -1}, Float32s([]float32{0.5, -1}))
	assert.Equal(t, []float64{}, Float32s(nil))
}
