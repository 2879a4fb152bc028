// SPDX-License-Identifier: MIT

// Package toll computes vehicle tolls over unrolled distance records.
//
// Two calculations are offered:
//
//   - FlatRates: distance × base rate, one row per record.
//   - Calculator.Calculate: every record expanded into the 672 fifteen-minute
//     windows of a canonical week (Monday 00:00:00 … Sunday 23:59:59), each
//     priced with the discount factor of its start:
//
//	Mon–Fri  00:00–09:59:59  ×0.8
//	Mon–Fri  10:00–17:59:59  ×1.2
//	Mon–Fri  18:00–23:59:59  ×0.8
//	Sat–Sun  all day         ×0.7
//
// Base rates (DefaultRates): moto 0.8, car 1.2, rv 1.5, bus 2.2, truck 3.6.
//
// The week is a fixed enumeration of (day, slot) pairs (see Week), not a
// datetime walk. Edges are independent, so Calculate expands them on a
// bounded worker pool; output order is always input order.
//
// Tolls are unrounded unless WithPrecision is given.
package toll
