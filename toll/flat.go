// SPDX-License-Identifier: MIT

package toll

import (
	"fmt"
	"math"

	"github.com/katalvlaran/tollnet/distance"
)

// FlatRates computes the time-independent toll of every record:
// toll[class] = distance × rates[class]. Output order follows input.
// Errors: ErrInvalidInput for a bad distance or rate.
// Complexity: O(R × classes).
func FlatRates(records []distance.Record, rates Rates) ([]FlatRecord, error) {
	if err := validateRates(rates); err != nil {
		return nil, fmt.Errorf("FlatRates: %w", err)
	}
	out := make([]FlatRecord, len(records))
	for k, r := range records {
		if math.IsNaN(r.Distance) || math.IsInf(r.Distance, 0) || r.Distance < 0 {
			return nil, fmt.Errorf("FlatRates: record %d distance %v: %w", k, r.Distance, ErrInvalidInput)
		}
		out[k] = FlatRecord{Start: r.Start, End: r.End, Distance: r.Distance}
		for v, rate := range rates {
			out[k].Tolls[v] = r.Distance * rate
		}
	}

	return out, nil
}
