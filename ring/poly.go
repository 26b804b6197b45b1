package ring

import (
	"fmt"

	"github.com/tuneinsight/polyring/utils"
)

// Poly is an element of the ring T[X]/(X^N - 1): the coefficient at index i is
// the coefficient of X^i, and X^N = 1.
//
// A Poly is immutable: all operations return a newly allocated polynomial and
// never modify their receiver or operands.
type Poly[T Element[T]] struct {
	degree int
	coeffs []T
}

// NewPoly creates the zero polynomial of ring degree N.
func NewPoly[T Element[T]](N int) (pol Poly[T]) {
	pol.degree = N
	pol.coeffs = make([]T, N)
	z := zero[T]()
	for i := range pol.coeffs {
		pol.coeffs[i] = z
	}
	return
}

// NewPolyFromCoeffs creates a polynomial of ring degree len(coeffs).
// The coefficients are copied.
func NewPolyFromCoeffs[T Element[T]](coeffs []T) (pol Poly[T]) {
	pol.degree = len(coeffs)
	pol.coeffs = make([]T, len(coeffs))
	copy(pol.coeffs, coeffs)
	return
}

// N returns the ring degree of the polynomial.
func (p Poly[T]) N() int {
	return p.degree
}

// Coeff returns the coefficient of X^i.
func (p Poly[T]) Coeff(i int) T {
	return p.coeffs[i]
}

// Coeffs returns a copy of the coefficients.
func (p Poly[T]) Coeffs() []T {
	coeffs := make([]T, len(p.coeffs))
	copy(coeffs, p.coeffs)
	return coeffs
}

// CheckLength returns an error matching ErrMalformedPolynomial if the number
// of coefficients differs from the ring degree.
func (p Poly[T]) CheckLength() error {
	if err := checkDimension(CoefficientCount, p.degree, len(p.coeffs)); err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedPolynomial, err)
	}
	return nil
}

func (p Poly[T]) checkDegree(other Poly[T]) error {
	return checkDimension(RingDegree, p.degree, other.degree)
}

// Add returns p + other.
func (p Poly[T]) Add(other Poly[T]) (Poly[T], error) {
	if err := p.checkDegree(other); err != nil {
		return Poly[T]{}, fmt.Errorf("cannot Add: %w", err)
	}
	sum := Poly[T]{degree: p.degree, coeffs: make([]T, p.degree)}
	for i := range sum.coeffs {
		sum.coeffs[i] = p.coeffs[i].Add(other.coeffs[i])
	}
	return sum, nil
}

// Sub returns p - other.
func (p Poly[T]) Sub(other Poly[T]) (Poly[T], error) {
	if err := p.checkDegree(other); err != nil {
		return Poly[T]{}, fmt.Errorf("cannot Sub: %w", err)
	}
	diff := Poly[T]{degree: p.degree, coeffs: make([]T, p.degree)}
	for i := range diff.coeffs {
		diff.coeffs[i] = p.coeffs[i].Sub(other.coeffs[i])
	}
	return diff, nil
}

// Neg returns -p.
func (p Poly[T]) Neg() Poly[T] {
	z := zero[T]()
	neg := Poly[T]{degree: p.degree, coeffs: make([]T, p.degree)}
	for i := range neg.coeffs {
		neg.coeffs[i] = z.Sub(p.coeffs[i])
	}
	return neg
}

// MulScalar returns c * p.
func (p Poly[T]) MulScalar(c T) Poly[T] {
	prod := Poly[T]{degree: p.degree, coeffs: make([]T, p.degree)}
	for i := range prod.coeffs {
		prod.coeffs[i] = c.Mul(p.coeffs[i])
	}
	return prod
}

// Mul returns p * other mod X^N - 1, computed with the direct cyclic convolution
//
//	prod[i] = sum_{j<=i} p[j] * other[i-j] + sum_{j>i} p[j] * other[N+i-j].
//
// The second sum folds the terms of degree N+i back onto X^i.
func (p Poly[T]) Mul(other Poly[T]) (Poly[T], error) {
	if err := p.checkDegree(other); err != nil {
		return Poly[T]{}, fmt.Errorf("cannot Mul: %w", err)
	}

	N := p.degree
	a, b := p.coeffs, other.coeffs
	z := zero[T]()

	prod := Poly[T]{degree: N, coeffs: make([]T, N)}

	for i := 0; i < N; i++ {
		acc := z
		for j := 0; j <= i; j++ {
			acc = acc.Add(a[j].Mul(b[i-j]))
		}
		for j := i + 1; j < N; j++ {
			acc = acc.Add(a[j].Mul(b[N+i-j]))
		}
		prod.coeffs[i] = acc
	}

	return prod, nil
}

// MulByX returns X * p: the coefficients are shifted up by one
// and the coefficient of X^(N-1) wraps around to X^0.
func (p Poly[T]) MulByX() Poly[T] {
	return p.MulByMonomial(1)
}

// MulByMonomial returns X^k * p for any integer k.
func (p Poly[T]) MulByMonomial(k int) Poly[T] {
	return Poly[T]{degree: p.degree, coeffs: utils.RotateSlice(p.coeffs, -k)}
}

// Equal returns true if p and other have the same ring degree and coefficients.
func (p Poly[T]) Equal(other Poly[T]) bool {
	if p.degree != other.degree || len(p.coeffs) != len(other.coeffs) {
		return false
	}
	for i := range p.coeffs {
		if !p.coeffs[i].Equal(other.coeffs[i]) {
			return false
		}
	}
	return true
}
