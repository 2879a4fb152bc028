// SPDX-License-Identifier: MIT

package vehicle

import "errors"

var (
	// ErrEmptyTable indicates an operation that needs at least one row.
	ErrEmptyTable = errors.New("vehicle: empty table")

	// ErrNilPivot indicates a nil pivot was passed.
	ErrNilPivot = errors.New("vehicle: nil pivot")
)
