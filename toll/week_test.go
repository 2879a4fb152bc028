package toll_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tollnet/toll"
)

// TestWeekShape checks the count, the first window and the week's end.
func TestWeekShape(t *testing.T) {
	w := toll.Week()
	require.Len(t, w, toll.WindowsPerWeek)
	require.Equal(t, 672, toll.WindowsPerWeek)

	assert.Equal(t, toll.Window{
		StartDay: time.Monday, Start: 0,
		EndDay: time.Monday, End: toll.NewClock(0, 15, 0),
	}, w[0])

	last := w[len(w)-1]
	assert.Equal(t, time.Sunday, last.StartDay)
	assert.Equal(t, "23:45:00", last.Start.String())
	assert.Equal(t, time.Sunday, last.EndDay)
	assert.Equal(t, "23:59:59", last.End.String())
}

// TestWeekContiguous checks each window starts where the previous one ended,
// with the midnight window rolling into the next day.
func TestWeekContiguous(t *testing.T) {
	w := toll.Week()
	for k := 1; k < len(w); k++ {
		require.Equal(t, w[k-1].EndDay, w[k].StartDay, "window %d", k)
		require.Equal(t, w[k-1].End, w[k].Start, "window %d", k)
	}

	mondayLast := w[toll.WindowsPerDay-1]
	assert.Equal(t, time.Monday, mondayLast.StartDay)
	assert.Equal(t, time.Tuesday, mondayLast.EndDay)
	assert.Equal(t, toll.Clock(0), mondayLast.End)
}

// TestWeekPerDay checks every day starts exactly WindowsPerDay windows.
func TestWeekPerDay(t *testing.T) {
	perDay := make(map[time.Weekday]int)
	for _, w := range toll.Week() {
		perDay[w.StartDay]++
	}
	require.Len(t, perDay, 7)
	for d, n := range perDay {
		assert.Equal(t, toll.WindowsPerDay, n, d.String())
	}
}

// TestWeekIsCopy ensures callers cannot alter the shared week.
func TestWeekIsCopy(t *testing.T) {
	w := toll.Week()
	w[0].Start = toll.NewClock(12, 0, 0)
	require.Equal(t, toll.Clock(0), toll.Week()[0].Start)
}
