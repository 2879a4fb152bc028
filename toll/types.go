// SPDX-License-Identifier: MIT

package toll

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/katalvlaran/tollnet/distance"
)

// Vehicle is a toll class. Classes are ordered; PerVehicle is indexed by them.
type Vehicle int

const (
	Moto Vehicle = iota
	Car
	RV
	Bus
	Truck

	// VehicleCount is the number of toll classes.
	VehicleCount = int(Truck) + 1
)

// Vehicles lists every class in canonical order.
var Vehicles = [VehicleCount]Vehicle{Moto, Car, RV, Bus, Truck}

var vehicleNames = [VehicleCount]string{"moto", "car", "rv", "bus", "truck"}

// String returns the lower-case class name ("moto", "car", ...).
func (v Vehicle) String() string {
	if v < 0 || int(v) >= VehicleCount {
		return fmt.Sprintf("vehicle(%d)", int(v))
	}

	return vehicleNames[v]
}

// ParseVehicle resolves a class name, case-insensitively.
// Errors: ErrUnknownVehicle.
func ParseVehicle(s string) (Vehicle, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range vehicleNames {
		if n == name {
			return Vehicle(i), nil
		}
	}

	return 0, fmt.Errorf("ParseVehicle(%q): %w", s, ErrUnknownVehicle)
}

// PerVehicle holds one value per class: base rates or computed tolls.
// It is a value type; copies are independent.
type PerVehicle [VehicleCount]float64

// Of returns the value for class v.
func (p PerVehicle) Of(v Vehicle) float64 { return p[v] }

// Rates are base per-distance toll rates by class.
type Rates = PerVehicle

// DefaultRates is the standard base-rate table.
var DefaultRates = Rates{
	Moto:  0.8,
	Car:   1.2,
	RV:    1.5,
	Bus:   2.2,
	Truck: 3.6,
}

// validateRates requires every rate to be finite and non-negative.
func validateRates(r Rates) error {
	for i, v := range r {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return fmt.Errorf("rate %s=%v: %w", Vehicle(i), v, ErrInvalidInput)
		}
	}

	return nil
}

// Clock is a time of day in whole seconds since midnight, [0, 86400).
type Clock int

const (
	secondsPerMinute = 60
	secondsPerHour   = 60 * secondsPerMinute
	secondsPerDay    = 24 * secondsPerHour

	clockLayout = "15:04:05"
)

// EndOfDay is 23:59:59, the last representable second of a day.
const EndOfDay = Clock(secondsPerDay - 1)

// NewClock builds a Clock from hour, minute and second. Out-of-range parts
// wrap modulo one day.
func NewClock(h, m, s int) Clock {
	c := (h*secondsPerHour + m*secondsPerMinute + s) % secondsPerDay
	if c < 0 {
		c += secondsPerDay
	}

	return Clock(c)
}

// ParseClock parses "HH:MM:SS".
// Errors: ErrInvalidInput on malformed input.
func ParseClock(s string) (Clock, error) {
	t, err := time.Parse(clockLayout, strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("ParseClock(%q): %v: %w", s, err, ErrInvalidInput)
	}

	return NewClock(t.Hour(), t.Minute(), t.Second()), nil
}

// Hour, Minute and Second split the clock into its parts.
func (c Clock) Hour() int   { return int(c) / secondsPerHour }
func (c Clock) Minute() int { return int(c) % secondsPerHour / secondsPerMinute }
func (c Clock) Second() int { return int(c) % secondsPerMinute }

// String formats the clock as HH:MM:SS.
func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", c.Hour(), c.Minute(), c.Second())
}

// Record is the toll for one edge during one 15-minute window.
type Record struct {
	Start     distance.ID
	End       distance.ID
	StartDay  time.Weekday
	StartTime Clock
	EndDay    time.Weekday
	EndTime   Clock
	Tolls     PerVehicle
}

// FlatRecord is the time-independent toll of one edge.
type FlatRecord struct {
	Start    distance.ID
	End      distance.ID
	Distance float64
	Tolls    PerVehicle
}
