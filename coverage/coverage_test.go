package coverage_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tollnet/coverage"
)

var days = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// fullWeek returns one interval per day covering 00:00:00–23:59:59.
func fullWeek(id, id2 int64) []coverage.Interval {
	out := make([]coverage.Interval, 0, len(days))
	for _, d := range days {
		out = append(out, coverage.Interval{
			ID: id, ID2: id2,
			StartDay: d, StartTime: "00:00:00",
			EndDay: d, EndTime: "23:59:59",
		})
	}

	return out
}

// TestCheckFullWeek reports complete coverage from daily intervals.
func TestCheckFullWeek(t *testing.T) {
	res, err := coverage.Check(fullWeek(1, 2))
	require.NoError(t, err)
	require.Equal(t, []coverage.Result{{Pair: coverage.Pair{ID: 1, ID2: 2}, Complete: true}}, res)
}

// TestCheckGap detects a single missing second.
func TestCheckGap(t *testing.T) {
	iv := fullWeek(1, 2)
	iv[3].EndTime = "23:59:58"

	res, err := coverage.Check(iv)
	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.False(t, res[0].Complete)
}

// TestCheckSingleSpan accepts one interval spanning the whole week.
func TestCheckSingleSpan(t *testing.T) {
	res, err := coverage.Check([]coverage.Interval{{
		ID: 5, ID2: 6,
		StartDay: "monday", StartTime: "00:00:00",
		EndDay: "SUNDAY", EndTime: "23:59:59",
	}})
	require.NoError(t, err)
	assert.True(t, res[0].Complete)
}

// TestCheckWrapAround handles an interval running from Sunday into Monday.
func TestCheckWrapAround(t *testing.T) {
	iv := []coverage.Interval{
		{ID: 1, ID2: 1, StartDay: "Monday", StartTime: "06:00:00", EndDay: "Sunday", EndTime: "21:59:59"},
		{ID: 1, ID2: 1, StartDay: "Sunday", StartTime: "22:00:00", EndDay: "Monday", EndTime: "05:59:59"},
	}
	res, err := coverage.Check(iv)
	require.NoError(t, err)
	assert.True(t, res[0].Complete)
}

// TestCheckOverlapsAndOrder handles overlaps, unordered rows and several pairs.
func TestCheckOverlapsAndOrder(t *testing.T) {
	iv := []coverage.Interval{
		{ID: 2, ID2: 1, StartDay: "Monday", StartTime: "00:00:00", EndDay: "Monday", EndTime: "12:00:00"},
		{ID: 1, ID2: 9, StartDay: "Wednesday", StartTime: "00:00:00", EndDay: "Sunday", EndTime: "23:59:59"},
		{ID: 1, ID2: 9, StartDay: "Monday", StartTime: "00:00:00", EndDay: "Thursday", EndTime: "08:00:00"},
	}
	res, err := coverage.Check(iv)
	require.NoError(t, err)
	require.Equal(t, []coverage.Result{
		{Pair: coverage.Pair{ID: 1, ID2: 9}, Complete: true},
		{Pair: coverage.Pair{ID: 2, ID2: 1}, Complete: false},
	}, res)

	m, err := coverage.CheckMap(iv)
	require.NoError(t, err)
	assert.Equal(t, map[coverage.Pair]bool{{ID: 1, ID2: 9}: true, {ID: 2, ID2: 1}: false}, m)
}

// TestCheckInvalid rejects unknown days and malformed times.
func TestCheckInvalid(t *testing.T) {
	_, err := coverage.Check([]coverage.Interval{{StartDay: "Funday", StartTime: "00:00:00", EndDay: "Monday", EndTime: "00:00:00"}})
	require.ErrorIs(t, err, coverage.ErrInvalidInterval)

	_, err = coverage.Check([]coverage.Interval{{StartDay: "Monday", StartTime: "00:00:00", EndDay: "Monday", EndTime: "24:00"}})
	require.ErrorIs(t, err, coverage.ErrInvalidInterval)

	res, err := coverage.Check(nil)
	require.NoError(t, err)
	assert.Empty(t, res)
}
