// SPDX-License-Identifier: MIT

package vehicle

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/tollnet/matrix"
)

// Pivot is a labeled matrix: Rows are id_1 labels, Cols are id_2 labels,
// both ascending.
type Pivot struct {
	Rows []int64
	Cols []int64
	Mat  *matrix.Dense
}

// At returns the cell for (id1, id2) and whether both labels exist.
func (p *Pivot) At(id1, id2 int64) (float64, bool) {
	i := sort.Search(len(p.Rows), func(k int) bool { return p.Rows[k] >= id1 })
	j := sort.Search(len(p.Cols), func(k int) bool { return p.Cols[k] >= id2 })
	if i == len(p.Rows) || p.Rows[i] != id1 || j == len(p.Cols) || p.Cols[j] != id2 {
		return 0, false
	}
	v, err := p.Mat.At(i, j)

	return v, err == nil
}

// CarMatrix pivots car counts: index id_1, columns id_2. Duplicate
// (id_1, id_2) rows are averaged; missing cells are 0.
// Errors: ErrEmptyTable, matrix.ErrNaNInf for non-finite counts.
// Complexity: O(N log N + R×C).
func CarMatrix(rows []Row) (*Pivot, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("CarMatrix: %w", ErrEmptyTable)
	}

	rowIDs := uniqueSorted(rows, func(r Row) int64 { return r.ID1 })
	colIDs := uniqueSorted(rows, func(r Row) int64 { return r.ID2 })
	rowIdx, colIdx := indexOf(rowIDs), indexOf(colIDs)

	type cell struct{ i, j int }
	sums := make(map[cell]float64)
	counts := make(map[cell]int)
	for _, r := range rows {
		c := cell{rowIdx[r.ID1], colIdx[r.ID2]}
		sums[c] += r.Car
		counts[c]++
	}

	mat, err := matrix.NewDense(len(rowIDs), len(colIDs))
	if err != nil {
		return nil, fmt.Errorf("CarMatrix: %w", err)
	}
	for c, s := range sums {
		if err = mat.Set(c.i, c.j, s/float64(counts[c])); err != nil {
			return nil, fmt.Errorf("CarMatrix: %w", err)
		}
	}

	return &Pivot{Rows: rowIDs, Cols: colIDs, Mat: mat}, nil
}

// MultiplyMatrix returns a new pivot with matrix.MultiplyConditional applied.
// Errors: ErrNilPivot; matrix sentinels from the kernel.
func MultiplyMatrix(p *Pivot) (*Pivot, error) {
	if p == nil || p.Mat == nil {
		return nil, fmt.Errorf("MultiplyMatrix: %w", ErrNilPivot)
	}
	scaled, err := matrix.MultiplyConditional(p.Mat)
	if err != nil {
		return nil, fmt.Errorf("MultiplyMatrix: %w", err)
	}

	return &Pivot{
		Rows: append([]int64(nil), p.Rows...),
		Cols: append([]int64(nil), p.Cols...),
		Mat:  scaled,
	}, nil
}

func uniqueSorted(rows []Row, key func(Row) int64) []int64 {
	seen := make(map[int64]struct{}, len(rows))
	out := make([]int64, 0, len(rows))
	for _, r := range rows {
		k := key(r)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	sort.Slice(out, func(a, b int) bool { return out[a] < out[b] })

	return out
}

func indexOf(ids []int64) map[int64]int {
	idx := make(map[int64]int, len(ids))
	for i, id := range ids {
		idx[id] = i
	}

	return idx
}
