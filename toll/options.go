// SPDX-License-Identifier: MIT

package toll

import (
	"runtime"

	"github.com/rs/zerolog"
)

// DefaultPrecision disables rounding: tolls are returned unrounded.
const DefaultPrecision = -1

// Internal panic messages (programmer errors in option constructors).
const (
	panicRatesInvalid     = "toll: WithRates: rates must be finite, non-negative"
	panicScheduleInvalid  = "toll: WithSchedule: invalid schedule"
	panicPrecisionInvalid = "toll: WithPrecision: decimals must be >= 0"
	panicWorkersInvalid   = "toll: WithWorkers: workers must be >= 1"
)

// Option configures a Calculator.
type Option func(*options)

type options struct {
	rates     Rates
	schedule  Schedule
	precision int
	workers   int
	logger    zerolog.Logger
}

// WithRates replaces DefaultRates. Panics on negative or non-finite rates.
func WithRates(r Rates) Option {
	if err := validateRates(r); err != nil {
		panic(panicRatesInvalid)
	}

	return func(o *options) { o.rates = r }
}

// WithSchedule replaces DefaultSchedule. Panics if s.Validate fails.
func WithSchedule(s Schedule) Option {
	if err := s.Validate(); err != nil {
		panic(panicScheduleInvalid)
	}

	return func(o *options) { o.schedule = s }
}

// WithPrecision rounds every toll to decimals places (ties to even).
// Panics when decimals < 0; omit the option to keep tolls unrounded.
func WithPrecision(decimals int) Option {
	if decimals < 0 {
		panic(panicPrecisionInvalid)
	}

	return func(o *options) { o.precision = decimals }
}

// WithWorkers bounds the number of goroutines expanding edges.
// Panics when n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicWorkersInvalid)
	}

	return func(o *options) { o.workers = n }
}

// WithLogger routes diagnostics to l. The default logger is disabled.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// gatherOptions applies user options on top of documented defaults.
func gatherOptions(user ...Option) options {
	o := options{
		rates:     DefaultRates,
		schedule:  DefaultSchedule,
		precision: DefaultPrecision,
		workers:   runtime.GOMAXPROCS(0),
		logger:    zerolog.Nop(),
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
