// SPDX-License-Identifier: MIT

// Package matrix: numeric policy defaults (single source of truth).
package matrix

const (
	// DefaultEpsilon defines the non-negative tolerance used by structural
	// checks (symmetry, zero diagonal).
	DefaultEpsilon = 1e-9

	// DefaultValidateNaNInf toggles strict finite-value validation on Set.
	DefaultValidateNaNInf = true
)

// Conditional scaling defaults for vehicle-count matrices: values above the
// cut are discounted, the rest are marked up, and the result is rounded.
const (
	DefaultScaleCut       = 20.0
	DefaultScaleAbove     = 0.75
	DefaultScaleAtOrBelow = 1.25
	DefaultScalePrecision = 1
)
