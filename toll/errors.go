// SPDX-License-Identifier: MIT

package toll

import "errors"

var (
	// ErrInvalidInput indicates a negative or non-finite distance, rate or
	// factor, or a malformed clock string.
	ErrInvalidInput = errors.New("toll: invalid input")

	// ErrUnknownVehicle indicates an unrecognised vehicle class name.
	ErrUnknownVehicle = errors.New("toll: unknown vehicle class")
)
