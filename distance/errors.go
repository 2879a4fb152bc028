// SPDX-License-Identifier: MIT

package distance

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput indicates malformed input: no edges, a negative or
	// non-finite distance, unsorted labels, or a nil matrix.
	ErrInvalidInput = errors.New("distance: invalid input")

	// ErrReferenceNotFound indicates that the reference id never appears as
	// a start id in the unrolled records.
	ErrReferenceNotFound = errors.New("distance: reference id not found")

	// ErrUndefinedReferenceMean indicates that the reference id has no
	// outgoing records to average, or that their mean is not a number.
	ErrUndefinedReferenceMean = errors.New("distance: reference mean is undefined")

	// ErrUnknownID is returned by Matrix lookups for ids outside the label set.
	ErrUnknownID = errors.New("distance: unknown id")
)

// distanceErrorf wraps err with an operation tag, keeping the sentinel for errors.Is.
func distanceErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
