package distance_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tollnet/distance"
	"github.com/katalvlaran/tollnet/matrix"
)

// TestUnrollBothDirections checks the single-edge round trip.
func TestUnrollBothDirections(t *testing.T) {
	m, err := distance.Build([]distance.Edge{{Start: 1, End: 2, Distance: 10}})
	require.NoError(t, err)

	recs, err := distance.Unroll(m)
	require.NoError(t, err)
	require.Equal(t, []distance.Record{
		{Start: 1, End: 2, Distance: 10},
		{Start: 2, End: 1, Distance: 10},
	}, recs)
}

// TestUnrollOrderAndCount checks row-major order and n×(n-1) records.
func TestUnrollOrderAndCount(t *testing.T) {
	m, err := distance.Build([]distance.Edge{
		{Start: 1, End: 2, Distance: 5},
		{Start: 2, End: 3, Distance: 6},
	})
	require.NoError(t, err)

	recs, err := distance.Unroll(m)
	require.NoError(t, err)
	require.Len(t, recs, 6)
	require.Equal(t, []distance.Record{
		{Start: 1, End: 2, Distance: 5},
		{Start: 1, End: 3, Distance: 0},
		{Start: 2, End: 1, Distance: 5},
		{Start: 2, End: 3, Distance: 6},
		{Start: 3, End: 1, Distance: 0},
		{Start: 3, End: 2, Distance: 6},
	}, recs)
}

// TestUnrollPositiveOnly drops zero-distance pairs on request.
func TestUnrollPositiveOnly(t *testing.T) {
	m, err := distance.Build([]distance.Edge{
		{Start: 1, End: 2, Distance: 5},
		{Start: 2, End: 3, Distance: 6},
	})
	require.NoError(t, err)

	recs, err := distance.Unroll(m, distance.WithPositiveOnly())
	require.NoError(t, err)
	require.Len(t, recs, 4)
	for _, r := range recs {
		require.Positive(t, r.Distance)
	}
}

// TestUnrollRejectsInvalid covers nil and non-distance matrices.
func TestUnrollRejectsInvalid(t *testing.T) {
	_, err := distance.Unroll(nil)
	require.ErrorIs(t, err, distance.ErrInvalidInput)

	d, err := matrix.NewDenseFrom([][]float64{{0, 1}, {2, 0}})
	require.NoError(t, err)
	m, err := distance.NewMatrix([]distance.ID{1, 2}, d)
	require.NoError(t, err)

	_, err = distance.Unroll(m)
	require.ErrorIs(t, err, matrix.ErrAsymmetry)
}
