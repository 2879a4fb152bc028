// SPDX-License-Identifier: MIT

// Package matrix offers the dense numeric storage behind tollnet's tables.
//
// The matrix package provides:
//
//   - Dense: a row-major float64 matrix with bounds-checked At/Set and a
//     finite-only numeric policy.
//   - Validators (ValidateSquare, ValidateSymmetric, ValidateZeroDiagonal,
//     ValidateDistanceMatrix) shared by every package that consumes a
//     distance matrix.
//   - Element-wise kernels (ScaleConditional, Round, MultiplyConditional)
//     used by vehicle-count tables.
//
// Row and column labels are not stored here; labeled tables
// (distance.Matrix, vehicle.Pivot) keep them next to a *Dense.
//
// All kernels return package sentinels (see errors.go) wrapped with a
// call-site tag; match them with errors.Is.
package matrix
