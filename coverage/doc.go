// SPDX-License-Identifier: MIT

// Package coverage checks that a time-windowed dataset covers the whole
// canonical week for every (id, id_2) pair.
//
// A pair is complete when the union of its intervals covers every second
// from Monday 00:00:00 through Sunday 23:59:59. Interval ends are
// inclusive: "Monday 00:00:00 → Monday 23:59:59" covers all of Monday.
package coverage
