// SPDX-License-Identifier: MIT

package toll

import (
	"fmt"
	"math"
	"time"
)

// Schedule maps a window start (weekday, time of day) to a discount factor.
//
//	weekday, start <  DayStart                 → WeekdayMorning
//	weekday, DayStart ≤ start < EveningStart   → WeekdayDay
//	weekday, start ≥ EveningStart              → WeekdayEvening
//	Saturday/Sunday, any time                  → Weekend
type Schedule struct {
	WeekdayMorning float64
	WeekdayDay     float64
	WeekdayEvening float64
	Weekend        float64
	DayStart       Clock
	EveningStart   Clock
}

// DefaultSchedule is the standard discount schedule.
var DefaultSchedule = Schedule{
	WeekdayMorning: 0.8,
	WeekdayDay:     1.2,
	WeekdayEvening: 0.8,
	Weekend:        0.7,
	DayStart:       NewClock(10, 0, 0),
	EveningStart:   NewClock(18, 0, 0),
}

// Factor returns the discount factor for a window starting at (day, start).
func (s Schedule) Factor(day time.Weekday, start Clock) float64 {
	if day == time.Saturday || day == time.Sunday {
		return s.Weekend
	}
	switch {
	case start < s.DayStart:
		return s.WeekdayMorning
	case start < s.EveningStart:
		return s.WeekdayDay
	default:
		return s.WeekdayEvening
	}
}

// Validate requires finite, non-negative factors and DayStart ≤ EveningStart.
func (s Schedule) Validate() error {
	for _, f := range [...]float64{s.WeekdayMorning, s.WeekdayDay, s.WeekdayEvening, s.Weekend} {
		if math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
			return fmt.Errorf("schedule factor %v: %w", f, ErrInvalidInput)
		}
	}
	if s.DayStart > s.EveningStart {
		return fmt.Errorf("schedule day start %s after evening start %s: %w", s.DayStart, s.EveningStart, ErrInvalidInput)
	}

	return nil
}

// DiscountFactor is DefaultSchedule.Factor.
func DiscountFactor(day time.Weekday, start Clock) float64 {
	return DefaultSchedule.Factor(day, start)
}
