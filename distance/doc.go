// SPDX-License-Identifier: MIT

// Package distance builds, unrolls and queries toll-location distance matrices.
//
// Pipeline:
//
//	edges ──Build──▶ *Matrix ──Unroll──▶ []Record ──FindWithinThreshold──▶ []ID
//	                                          └──────▶ toll.Calculator
//
//   - Build: ids from both edge roles are sorted ascending and become the
//     row/column labels. Every edge is written in both directions (later
//     edges win for the same pair) and the diagonal is forced to 0. Pairs
//     without a direct edge stay 0; no shortest paths are computed.
//   - Unroll: every off-diagonal cell becomes a Record, both directions, in
//     row-major label order. Zero cells are kept unless WithPositiveOnly.
//   - FindWithinThreshold: ids whose mean outgoing distance is within
//     ±DefaultTolerance of the reference id's mean.
//
// Errors are package sentinels (ErrInvalidInput, ErrReferenceNotFound,
// ErrUndefinedReferenceMean, ErrUnknownID); match them with errors.Is.
//
// Usage:
//
//	m, err := distance.Build(edges)
//	recs, err := distance.Unroll(m)
//	ids, err := distance.FindWithinThreshold(recs, 1001400)
package distance
