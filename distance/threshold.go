// SPDX-License-Identifier: MIT

package distance

import (
	"fmt"
	"math"
	"sort"
)

// Mean is the average outgoing distance of one start id.
type Mean struct {
	ID    ID
	Mean  float64
	Count int
}

// MeanDistances averages the outgoing distance of every start id.
// The result is sorted by ascending id. Complexity: O(R + V log V).
func MeanDistances(records []Record) []Mean {
	sums := make(map[ID]*Mean)
	for _, r := range records {
		acc, ok := sums[r.Start]
		if !ok {
			acc = &Mean{ID: r.Start}
			sums[r.Start] = acc
		}
		acc.Mean += r.Distance
		acc.Count++
	}

	out := make([]Mean, 0, len(sums))
	for _, acc := range sums {
		acc.Mean /= float64(acc.Count)
		out = append(out, *acc)
	}
	sort.Slice(out, func(a, b int) bool { return out[a].ID < out[b].ID })

	return out
}

// FindWithinThreshold returns the ids whose mean outgoing distance lies in
// the closed window [ref - ref·t, ref + ref·t], where ref is the mean outgoing
// distance of reference and t the tolerance (DefaultTolerance unless set
// with WithTolerance).
//
// Behavior highlights:
//   - Output is ascending with no duplicates.
//   - The reference id is always included (its mean equals itself).
//
// Errors:
//   - ErrReferenceNotFound when reference is never a start id.
//   - ErrUndefinedReferenceMean when reference has no outgoing records or
//     their mean is NaN.
//
// Complexity:
//   - Time O(R + V log V), Space O(V).
func FindWithinThreshold(records []Record, reference ID, opts ...Option) ([]ID, error) {
	o := gatherOptions(opts...)

	means := MeanDistances(records)
	pos := sort.Search(len(means), func(k int) bool { return means[k].ID >= reference })
	if pos == len(means) || means[pos].ID != reference {
		return nil, distanceErrorf(fmt.Sprintf("FindWithinThreshold: %d", reference), ErrReferenceNotFound)
	}
	ref := means[pos]
	if ref.Count == 0 || math.IsNaN(ref.Mean) {
		return nil, distanceErrorf(fmt.Sprintf("FindWithinThreshold: %d", reference), ErrUndefinedReferenceMean)
	}

	lo := ref.Mean - ref.Mean*o.tolerance
	hi := ref.Mean + ref.Mean*o.tolerance
	if lo > hi { // negative means invert the window
		lo, hi = hi, lo
	}

	out := make([]ID, 0, len(means))
	for _, m := range means {
		if m.ID == reference || (m.Mean >= lo && m.Mean <= hi) {
			out = append(out, m.ID)
		}
	}

	o.logger.Debug().
		Int64("reference", int64(reference)).
		Float64("reference_mean", ref.Mean).
		Float64("lower", lo).
		Float64("upper", hi).
		Int("matches", len(out)).
		Msg("threshold neighbors resolved")

	return out, nil
}
