// SPDX-License-Identifier: MIT

package distance

import (
	"math"

	"github.com/rs/zerolog"
)

// DefaultTolerance is the relative half-width of the neighbor window:
// ids whose mean lies within ±10% of the reference mean are neighbors.
const DefaultTolerance = 0.10

// DefaultPositiveOnly keeps zero-distance cells in the unrolled output.
// Ids that share the label set but have no edge unroll as 0-distance pairs.
const DefaultPositiveOnly = false

const panicToleranceInvalid = "distance: WithTolerance: tolerance must be finite, non-negative"

// Option configures Build, Unroll and FindWithinThreshold.
type Option func(*options)

type options struct {
	tolerance    float64
	positiveOnly bool
	logger       zerolog.Logger
}

// WithTolerance sets the relative neighbor window used by FindWithinThreshold.
// Panics when t is negative or not finite (programmer error).
func WithTolerance(t float64) Option {
	if math.IsNaN(t) || math.IsInf(t, 0) || t < 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *options) { o.tolerance = t }
}

// WithPositiveOnly makes Unroll drop records whose distance is 0, i.e.
// id pairs without a direct edge.
func WithPositiveOnly() Option {
	return func(o *options) { o.positiveOnly = true }
}

// WithLogger routes debug diagnostics to l. The default logger is disabled.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// gatherOptions applies user options on top of documented defaults.
func gatherOptions(user ...Option) options {
	o := options{
		tolerance:    DefaultTolerance,
		positiveOnly: DefaultPositiveOnly,
		logger:       zerolog.Nop(),
	}
	for _, set := range user {
		set(&o) // last-writer-wins
	}

	return o
}
