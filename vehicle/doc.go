// SPDX-License-Identifier: MIT

// Package vehicle holds helpers over vehicle-count tables: one row per
// (id_1, id_2) observation with per-class counts and a route name.
//
//   - CarMatrix pivots car counts into an id_1 × id_2 matrix.
//   - TypeCounts buckets car counts into low / medium / high.
//   - BusIndexes finds rows with more than twice the mean bus count.
//   - FilterRoutes lists routes with any truck count above 7.
//   - MultiplyMatrix rescales a pivot (>20 ×0.75, else ×1.25, one decimal).
package vehicle
