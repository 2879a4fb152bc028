package toll_test

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tollnet/toll"
)

// TestDiscountFactor walks the boundaries of the default schedule.
func TestDiscountFactor(t *testing.T) {
	cases := []struct {
		day   time.Weekday
		clock toll.Clock
		want  float64
	}{
		{time.Monday, toll.NewClock(0, 0, 0), 0.8},
		{time.Tuesday, toll.NewClock(9, 0, 0), 0.8},
		{time.Tuesday, toll.NewClock(9, 59, 59), 0.8},
		{time.Tuesday, toll.NewClock(10, 0, 0), 1.2},
		{time.Tuesday, toll.NewClock(11, 0, 0), 1.2},
		{time.Friday, toll.NewClock(17, 59, 59), 1.2},
		{time.Friday, toll.NewClock(18, 0, 0), 0.8},
		{time.Tuesday, toll.NewClock(19, 0, 0), 0.8},
		{time.Saturday, toll.NewClock(9, 0, 0), 0.7},
		{time.Saturday, toll.NewClock(12, 0, 0), 0.7},
		{time.Sunday, toll.EndOfDay, 0.7},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, toll.DiscountFactor(tc.day, tc.clock), "%s %s", tc.day, tc.clock)
	}
}

// TestScheduleCustom checks a non-default schedule is honoured.
func TestScheduleCustom(t *testing.T) {
	s := toll.Schedule{
		WeekdayMorning: 1, WeekdayDay: 2, WeekdayEvening: 3, Weekend: 4,
		DayStart: toll.NewClock(6, 0, 0), EveningStart: toll.NewClock(20, 0, 0),
	}
	require.NoError(t, s.Validate())
	assert.Equal(t, 1.0, s.Factor(time.Wednesday, toll.NewClock(5, 45, 0)))
	assert.Equal(t, 2.0, s.Factor(time.Wednesday, toll.NewClock(19, 45, 0)))
	assert.Equal(t, 3.0, s.Factor(time.Wednesday, toll.NewClock(20, 0, 0)))
	assert.Equal(t, 4.0, s.Factor(time.Sunday, toll.NewClock(20, 0, 0)))
}

// TestScheduleValidate rejects bad factors and inverted bands.
func TestScheduleValidate(t *testing.T) {
	require.NoError(t, toll.DefaultSchedule.Validate())

	s := toll.DefaultSchedule
	s.Weekend = -0.1
	require.ErrorIs(t, s.Validate(), toll.ErrInvalidInput)

	s = toll.DefaultSchedule
	s.WeekdayDay = math.NaN()
	require.ErrorIs(t, s.Validate(), toll.ErrInvalidInput)

	s = toll.DefaultSchedule
	s.DayStart, s.EveningStart = s.EveningStart, s.DayStart
	require.ErrorIs(t, s.Validate(), toll.ErrInvalidInput)
}
