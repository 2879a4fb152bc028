package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tollnet/matrix"
)

// TestRoundTo covers ties-to-even and passthrough cases.
func TestRoundTo(t *testing.T) {
	assert.Equal(t, 0.12, matrix.RoundTo(0.125, 2))
	assert.Equal(t, 1.2, matrix.RoundTo(1.25, 1))
	assert.Equal(t, 2.0, matrix.RoundTo(1.5, 0))
	assert.Equal(t, 1.234, matrix.RoundTo(1.234, -1))
	assert.True(t, math.IsNaN(matrix.RoundTo(math.NaN(), 2)))
}

// TestScaleConditional checks the strict '>' cut and that the input is untouched.
func TestScaleConditional(t *testing.T) {
	in := mustDense(t, [][]float64{{10, 30}, {20, 40}})

	out, err := matrix.ScaleConditional(in, 20, 0.5, 2)
	require.NoError(t, err)
	require.Equal(t, "[20, 15]\n[40, 20]\n", out.String())

	v, _ := in.At(0, 1)
	require.Equal(t, 30.0, v, "input must not be mutated")

	_, err = matrix.ScaleConditional(in, math.Inf(1), 1, 1)
	require.ErrorIs(t, err, matrix.ErrNaNInf)
	_, err = matrix.ScaleConditional(nil, 0, 1, 1)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestRound rejects negative precision.
func TestRound(t *testing.T) {
	_, err := matrix.Round(mustDense(t, [][]float64{{1}}), -1)
	require.ErrorIs(t, err, matrix.ErrBadPrecision)
}

// TestMultiplyConditional applies the vehicle-count rescale rule.
func TestMultiplyConditional(t *testing.T) {
	in := mustDense(t, [][]float64{{10, 25}, {20, 22}, {0, 18.75}})

	out, err := matrix.MultiplyConditional(in)
	require.NoError(t, err)

	want := [][]float64{{12.5, 18.8}, {25, 16.5}, {0, 23.4}}
	for i, row := range want {
		got, err := out.Row(i)
		require.NoError(t, err)
		assert.InDeltaSlice(t, row, got, 1e-12, "row %d", i)
	}
}
