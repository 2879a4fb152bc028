// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide element-wise kernels (conditional scaling, rounding) used by
//     vehicle-count tables and toll amounts.
//   - Keep all loops deterministic and cache-friendly with Dense fast-paths.
//
// Determinism & Performance:
//   - Fixed loop orders (flat 0..n-1 on Dense, i→j otherwise).
//   - No hidden allocations beyond the output Dense; O(r*c) time and space.

package matrix

import (
	"fmt"
	"math"
)

// matrixErrorf wraps an underlying error with the given kernel tag.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// RoundTo rounds v to the given number of decimals, ties to even.
// decimals < 0 returns v unchanged.
func RoundTo(v float64, decimals int) float64 {
	if decimals < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	p := math.Pow(10, float64(decimals))

	return math.RoundToEven(v*p) / p
}

// ewMap copies X into a fresh Dense applying f to every element.
// Dense inputs take the flat-slice fast path.
func ewMap(tag string, X Matrix, f func(v float64) float64) (*Dense, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(tag, err)
	}
	r, c := X.Rows(), X.Cols()
	out, err := NewDense(r, c)
	if err != nil {
		return nil, matrixErrorf(tag, err)
	}

	// Dense fast-path: single pass over the flat row-major buffer.
	if d, ok := X.(*Dense); ok {
		var v float64
		for idx := range d.data {
			v = f(d.data[idx])
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, matrixErrorf(tag, ErrNaNInf)
			}
			out.data[idx] = v
		}
		return out, nil
	}

	// Generic fallback via At/Set (still deterministic).
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v, e := X.At(i, j)
			if e != nil {
				return nil, matrixErrorf(tag, e)
			}
			if e = out.Set(i, j, f(v)); e != nil {
				return nil, matrixErrorf(tag, e)
			}
		}
	}

	return out, nil
}

// ScaleConditional returns a copy of X where every entry strictly greater
// than cut is multiplied by above and every other entry by atOrBelow.
//
//	out[i,j] = X[i,j]*above      if X[i,j] > cut
//	out[i,j] = X[i,j]*atOrBelow  otherwise
//
// Errors: ErrNilMatrix, ErrNaNInf (non-finite factors or results).
// Complexity: Time O(r*c), Space O(r*c).
func ScaleConditional(X Matrix, cut, above, atOrBelow float64) (*Dense, error) {
	for _, f := range [...]float64{cut, above, atOrBelow} {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, matrixErrorf("ScaleConditional", ErrNaNInf)
		}
	}

	return ewMap("ScaleConditional", X, func(v float64) float64 {
		if v > cut {
			return v * above
		}
		return v * atOrBelow
	})
}

// Round returns a copy of X with every entry rounded to decimals (ties to even).
// Errors: ErrNilMatrix, ErrBadPrecision for decimals < 0.
// Complexity: Time O(r*c), Space O(r*c).
func Round(X Matrix, decimals int) (*Dense, error) {
	if decimals < 0 {
		return nil, matrixErrorf("Round", ErrBadPrecision)
	}

	return ewMap("Round", X, func(v float64) float64 { return RoundTo(v, decimals) })
}

// MultiplyConditional applies ScaleConditional with the package defaults
// (>20 → ×0.75, else ×1.25) and rounds the result to one decimal.
// Complexity: Time O(r*c), Space O(r*c).
func MultiplyConditional(X Matrix) (*Dense, error) {
	scaled, err := ScaleConditional(X, DefaultScaleCut, DefaultScaleAbove, DefaultScaleAtOrBelow)
	if err != nil {
		return nil, matrixErrorf("MultiplyConditional", err)
	}

	return Round(scaled, DefaultScalePrecision)
}
