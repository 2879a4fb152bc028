// SPDX-License-Identifier: MIT

package distance

import (
	"github.com/katalvlaran/tollnet/matrix"
)

// Unroll converts a distance matrix back into long-form records.
// Every ordered pair (i,j) with i≠j is emitted in row-major label order, so
// each undirected edge appears in both directions with the same value.
//
// Pairs without a direct edge carry distance 0 and are emitted too; pass
// WithPositiveOnly to drop them.
//
// Errors:
//   - ErrInvalidInput for a nil matrix.
//   - matrix.ErrAsymmetry / matrix.ErrNonZeroDiagonal (wrapped) when m does
//     not satisfy the distance-matrix invariants.
//
// Complexity:
//   - Time O(V²), Space O(V²).
func Unroll(m *Matrix, opts ...Option) ([]Record, error) {
	o := gatherOptions(opts...)

	if m == nil || m.mat == nil {
		return nil, distanceErrorf("Unroll: nil matrix", ErrInvalidInput)
	}
	if err := matrix.ValidateDistanceMatrix(m.mat, matrix.DefaultEpsilon); err != nil {
		return nil, distanceErrorf("Unroll", err)
	}

	n := len(m.ids)
	out := make([]Record, 0, n*(n-1))
	m.mat.Do(func(i, j int, v float64) bool {
		if i == j {
			return true
		}
		if o.positiveOnly && v == 0 {
			return true
		}
		out = append(out, Record{Start: m.ids[i], End: m.ids[j], Distance: v})
		return true
	})

	o.logger.Debug().
		Int("ids", n).
		Int("records", len(out)).
		Bool("positive_only", o.positiveOnly).
		Msg("distance matrix unrolled")

	return out, nil
}
