// SPDX-License-Identifier: MIT

package distance

import (
	"fmt"

	"github.com/katalvlaran/tollnet/matrix"
)

// ID identifies a toll location. Ids are ordered; matrix labels follow
// ascending ID order.
type ID int64

// Edge is a direct, bidirectional distance between two ids.
type Edge struct {
	Start    ID
	End      ID
	Distance float64
}

// Record is one unrolled off-diagonal cell of a distance matrix.
type Record struct {
	Start    ID
	End      ID
	Distance float64
}

// Matrix is a square, symmetric distance table labeled by ascending ids.
// It is immutable once built: accessors return copies.
type Matrix struct {
	ids   []ID          // ascending labels, len == mat.Rows()
	index map[ID]int    // id → row/col
	mat   *matrix.Dense // n×n distances, zero diagonal
}

// NewMatrix wraps an existing square matrix with labels.
// ids must be strictly ascending and match the matrix dimension. The values
// are copied; symmetry is not enforced here (Unroll validates it).
// Errors: ErrInvalidInput on label/shape mismatch, matrix sentinels on bad cells.
func NewMatrix(ids []ID, m matrix.Matrix) (*Matrix, error) {
	if err := matrix.ValidateSquare(m); err != nil {
		return nil, distanceErrorf("NewMatrix", err)
	}
	if len(ids) != m.Rows() {
		return nil, distanceErrorf(
			fmt.Sprintf("NewMatrix: %d ids for %d rows", len(ids), m.Rows()), ErrInvalidInput,
		)
	}
	for i := 1; i < len(ids); i++ {
		if ids[i-1] >= ids[i] {
			return nil, distanceErrorf(
				fmt.Sprintf("NewMatrix: ids not strictly ascending at %d", i), ErrInvalidInput,
			)
		}
	}

	n := len(ids)
	dense, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, distanceErrorf("NewMatrix", err)
	}
	var row []float64
	for i := 0; i < n; i++ {
		if row, err = rowOf(m, i); err != nil {
			return nil, distanceErrorf("NewMatrix", err)
		}
		for j, v := range row {
			if err = dense.Set(i, j, v); err != nil {
				return nil, distanceErrorf("NewMatrix", err)
			}
		}
	}

	return newLabeled(append([]ID(nil), ids...), dense), nil
}

// rowOf copies row i of m; Dense inputs copy the flat buffer directly.
func rowOf(m matrix.Matrix, i int) ([]float64, error) {
	if d, ok := m.(*matrix.Dense); ok {
		return d.Row(i)
	}
	row := make([]float64, m.Cols())
	var err error
	for j := range row {
		if row[j], err = m.At(i, j); err != nil {
			return nil, err
		}
	}

	return row, nil
}

// newLabeled assembles a Matrix from already validated labels and storage.
func newLabeled(ids []ID, mat *matrix.Dense) *Matrix {
	index := make(map[ID]int, len(ids))
	for i, id := range ids {
		index[id] = i
	}

	return &Matrix{ids: ids, index: index, mat: mat}
}

// Len returns the number of ids (matrix dimension).
func (m *Matrix) Len() int { return len(m.ids) }

// IDs returns a copy of the ascending labels.
func (m *Matrix) IDs() []ID { return append([]ID(nil), m.ids...) }

// Index returns the row/column of id and whether it is present.
func (m *Matrix) Index(id ID) (int, bool) {
	i, ok := m.index[id]
	return i, ok
}

// At returns the distance between a and b.
// Errors: ErrUnknownID if either id is not a label.
func (m *Matrix) At(a, b ID) (float64, error) {
	i, ok := m.index[a]
	if !ok {
		return 0, distanceErrorf(fmt.Sprintf("Matrix.At: %d", a), ErrUnknownID)
	}
	j, ok := m.index[b]
	if !ok {
		return 0, distanceErrorf(fmt.Sprintf("Matrix.At: %d", b), ErrUnknownID)
	}

	return m.mat.At(i, j)
}

// Dense returns a deep copy of the underlying storage.
func (m *Matrix) Dense() *matrix.Dense { return m.mat.Clone().(*matrix.Dense) }

// String renders the matrix with its labels, for diagnostics.
func (m *Matrix) String() string { return fmt.Sprintf("%v\n%s", m.ids, m.mat) }
