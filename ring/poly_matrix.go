package ring

import (
	"fmt"
)

// Matrix is a rows x cols matrix of polynomials of the same ring degree,
// stored column-major as a slice of column vectors. Like Poly, a Matrix is immutable.
type Matrix[T Element[T]] struct {
	degree int
	rows   int
	cols   []Vector[T]
}

// NewMatrix creates a rows x cols zero matrix of ring degree N.
func NewMatrix[T Element[T]](N, rows, cols int) (m Matrix[T]) {
	m.degree = N
	m.rows = rows
	m.cols = make([]Vector[T], cols)
	for j := range m.cols {
		m.cols[j] = NewVector[T](N, rows)
	}
	return
}

// NewMatrixFromColumns creates a matrix of ring degree N with the given number
// of rows from a slice of column vectors.
func NewMatrixFromColumns[T Element[T]](N, rows int, columns []Vector[T]) (Matrix[T], error) {
	for j := range columns {
		if err := checkDimension(MatrixRows, rows, columns[j].Len()); err != nil {
			return Matrix[T]{}, fmt.Errorf("cannot NewMatrixFromColumns: column %d: %w", j, err)
		}
		if err := checkDimension(RingDegree, N, columns[j].N()); err != nil {
			return Matrix[T]{}, fmt.Errorf("cannot NewMatrixFromColumns: column %d: %w", j, err)
		}
	}
	m := Matrix[T]{degree: N, rows: rows, cols: make([]Vector[T], len(columns))}
	copy(m.cols, columns)
	return m, nil
}

// NewMatrixFromRows creates a matrix of ring degree N from its entries given
// row by row: entries[r][c] is the entry at row r and column c.
func NewMatrixFromRows[T Element[T]](N int, entries [][]Poly[T]) (Matrix[T], error) {

	rows := len(entries)

	var cols int
	if rows > 0 {
		cols = len(entries[0])
	}

	for r := range entries {
		if err := checkDimension(MatrixCols, cols, len(entries[r])); err != nil {
			return Matrix[T]{}, fmt.Errorf("cannot NewMatrixFromRows: row %d: %w", r, err)
		}
	}

	columns := make([]Vector[T], cols)
	for c := range columns {
		polys := make([]Poly[T], rows)
		for r := range polys {
			polys[r] = entries[r][c]
		}
		var err error
		if columns[c], err = NewVectorFromPolys(N, polys); err != nil {
			return Matrix[T]{}, fmt.Errorf("cannot NewMatrixFromRows: column %d: %w", c, err)
		}
	}

	return Matrix[T]{degree: N, rows: rows, cols: columns}, nil
}

// N returns the ring degree of the entries.
func (m Matrix[T]) N() int {
	return m.degree
}

// Rows returns the number of rows.
func (m Matrix[T]) Rows() int {
	return m.rows
}

// Cols returns the number of columns.
func (m Matrix[T]) Cols() int {
	return len(m.cols)
}

// Column returns the j-th column.
func (m Matrix[T]) Column(j int) Vector[T] {
	return m.cols[j]
}

// At returns the entry at row r and column c.
func (m Matrix[T]) At(r, c int) Poly[T] {
	return m.cols[c].polys[r]
}

func (m Matrix[T]) checkShape(other Matrix[T]) error {
	if err := checkDimension(MatrixRows, m.rows, other.rows); err != nil {
		return err
	}
	if err := checkDimension(MatrixCols, m.Cols(), other.Cols()); err != nil {
		return err
	}
	return checkDimension(RingDegree, m.degree, other.degree)
}

// Add returns the entrywise sum m + other.
func (m Matrix[T]) Add(other Matrix[T]) (Matrix[T], error) {
	if err := m.checkShape(other); err != nil {
		return Matrix[T]{}, fmt.Errorf("cannot Add: %w", err)
	}
	sum := Matrix[T]{degree: m.degree, rows: m.rows, cols: make([]Vector[T], m.Cols())}
	for j := range sum.cols {
		var err error
		if sum.cols[j], err = m.cols[j].Add(other.cols[j]); err != nil {
			return Matrix[T]{}, fmt.Errorf("cannot Add: column %d: %w", j, err)
		}
	}
	return sum, nil
}

// Sub returns the entrywise difference m - other.
func (m Matrix[T]) Sub(other Matrix[T]) (Matrix[T], error) {
	if err := m.checkShape(other); err != nil {
		return Matrix[T]{}, fmt.Errorf("cannot Sub: %w", err)
	}
	diff := Matrix[T]{degree: m.degree, rows: m.rows, cols: make([]Vector[T], m.Cols())}
	for j := range diff.cols {
		var err error
		if diff.cols[j], err = m.cols[j].Sub(other.cols[j]); err != nil {
			return Matrix[T]{}, fmt.Errorf("cannot Sub: column %d: %w", j, err)
		}
	}
	return diff, nil
}

// MulByLeftVector returns the vector v^t * m of length Cols(), whose i-th
// entry is the dot product of v with the i-th column of m.
func (m Matrix[T]) MulByLeftVector(v Vector[T]) (Vector[T], error) {
	if err := checkDimension(MatrixRows, m.rows, v.Len()); err != nil {
		return Vector[T]{}, fmt.Errorf("cannot MulByLeftVector: %w", err)
	}
	if err := checkDimension(RingDegree, m.degree, v.N()); err != nil {
		return Vector[T]{}, fmt.Errorf("cannot MulByLeftVector: %w", err)
	}

	prod := Vector[T]{degree: m.degree, polys: make([]Poly[T], m.Cols())}
	for i := range prod.polys {
		var err error
		if prod.polys[i], err = v.DotProduct(m.cols[i]); err != nil {
			return Vector[T]{}, fmt.Errorf("cannot MulByLeftVector: column %d: %w", i, err)
		}
	}
	return prod, nil
}

// MulByRightVector returns the vector m * v of length Rows(), computed as
// the sum of the columns of m scaled by the entries of v.
func (m Matrix[T]) MulByRightVector(v Vector[T]) (Vector[T], error) {
	if err := checkDimension(MatrixCols, m.Cols(), v.Len()); err != nil {
		return Vector[T]{}, fmt.Errorf("cannot MulByRightVector: %w", err)
	}
	if err := checkDimension(RingDegree, m.degree, v.N()); err != nil {
		return Vector[T]{}, fmt.Errorf("cannot MulByRightVector: %w", err)
	}

	acc := NewVector[T](m.degree, m.rows)
	for j := range m.cols {
		scaled, err := m.cols[j].MulPoly(v.polys[j])
		if err != nil {
			return Vector[T]{}, fmt.Errorf("cannot MulByRightVector: column %d: %w", j, err)
		}
		if acc, err = acc.Add(scaled); err != nil {
			return Vector[T]{}, fmt.Errorf("cannot MulByRightVector: column %d: %w", j, err)
		}
	}
	return acc, nil
}

// Transpose returns the cols x rows matrix m^t.
func (m Matrix[T]) Transpose() Matrix[T] {
	t := Matrix[T]{degree: m.degree, rows: m.Cols(), cols: make([]Vector[T], m.rows)}
	for r := range t.cols {
		polys := make([]Poly[T], m.Cols())
		for c := range polys {
			polys[c] = m.cols[c].polys[r]
		}
		t.cols[r] = Vector[T]{degree: m.degree, polys: polys}
	}
	return t
}

// Equal returns true if m and other have the same shape and entries.
func (m Matrix[T]) Equal(other Matrix[T]) bool {
	if m.degree != other.degree || m.rows != other.rows || m.Cols() != other.Cols() {
		return false
	}
	for j := range m.cols {
		if !m.cols[j].Equal(other.cols[j]) {
			return false
		}
	}
	return true
}
