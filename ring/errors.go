package ring

import (
	"errors"
	"fmt"
)

var (
	// ErrDimensionMismatch is matched by every error caused by operands of incompatible shapes.
	ErrDimensionMismatch = errors.New("dimension mismatch")

	// ErrMalformedPolynomial is returned when the number of coefficients of a
	// polynomial differs from its ring degree.
	ErrMalformedPolynomial = errors.New("malformed polynomial")
)

// Dimension identifies the size in which two operands disagree.
type Dimension int

const (
	// RingDegree is the degree N of the polynomials.
	RingDegree = Dimension(iota)
	// VectorLength is the number of entries of a Vector.
	VectorLength
	// MatrixRows is the number of rows of a Matrix.
	MatrixRows
	// MatrixCols is the number of columns of a Matrix.
	MatrixCols
	// CoefficientCount is the number of coefficients stored by a Poly.
	CoefficientCount
)

func (d Dimension) String() string {
	switch d {
	case RingDegree:
		return "ring degree"
	case VectorLength:
		return "vector length"
	case MatrixRows:
		return "matrix rows"
	case MatrixCols:
		return "matrix cols"
	case CoefficientCount:
		return "coefficient count"
	default:
		return fmt.Sprintf("Dimension(%d)", int(d))
	}
}

// DimensionMismatchError reports the two conflicting sizes of an operation.
type DimensionMismatchError struct {
	Dimension Dimension
	Expected  int
	Actual    int
}

func (e *DimensionMismatchError) Error() string {
	return fmt.Sprintf("%s mismatch: %d != %d", e.Dimension, e.Expected, e.Actual)
}

// Is makes errors.Is(err, ErrDimensionMismatch) hold.
func (e *DimensionMismatchError) Is(target error) bool {
	return target == ErrDimensionMismatch
}

func checkDimension(d Dimension, expected, actual int) error {
	if expected != actual {
		return &DimensionMismatchError{Dimension: d, Expected: expected, Actual: actual}
	}
	return nil
}
