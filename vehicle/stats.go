// SPDX-License-Identifier: MIT

package vehicle

import (
	"fmt"
	"sort"
)

// TypeCounts buckets every row's car count (see Classify) and counts the
// buckets. Buckets with no rows are absent from the map.
func TypeCounts(rows []Row) map[CarType]int {
	out := make(map[CarType]int, 3)
	for _, r := range rows {
		out[Classify(r.Car)]++
	}

	return out
}

// BusIndexes returns the ascending row indexes whose bus count exceeds
// BusFactor × mean(bus).
// Errors: ErrEmptyTable (the mean is undefined).
func BusIndexes(rows []Row) ([]int, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("BusIndexes: %w", ErrEmptyTable)
	}
	var sum float64
	for _, r := range rows {
		sum += r.Bus
	}
	limit := BusFactor * sum / float64(len(rows))

	out := make([]int, 0)
	for i, r := range rows {
		if r.Bus > limit {
			out = append(out, i)
		}
	}

	return out, nil
}

// FilterRoutes returns the sorted, unique routes that have at least one row
// with truck > TruckMin.
func FilterRoutes(rows []Row) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, r := range rows {
		if r.Truck <= TruckMin {
			continue
		}
		if _, ok := seen[r.Route]; ok {
			continue
		}
		seen[r.Route] = struct{}{}
		out = append(out, r.Route)
	}
	sort.Strings(out)

	return out
}
