package ring

import (
	"fmt"
)

// Vector is an ordered sequence of polynomials sharing the same ring degree.
// Like Poly, a Vector is immutable.
type Vector[T Element[T]] struct {
	degree int
	polys  []Poly[T]
}

// NewVector creates a vector of length zero polynomials of ring degree N.
func NewVector[T Element[T]](N, length int) (v Vector[T]) {
	v.degree = N
	v.polys = make([]Poly[T], length)
	for i := range v.polys {
		v.polys[i] = NewPoly[T](N)
	}
	return
}

// NewVectorFromPolys creates a vector of ring degree N from polys.
// It returns an error if a polynomial is not of ring degree N.
func NewVectorFromPolys[T Element[T]](N int, polys []Poly[T]) (Vector[T], error) {
	for i := range polys {
		if err := checkDimension(RingDegree, N, polys[i].N()); err != nil {
			return Vector[T]{}, fmt.Errorf("cannot NewVectorFromPolys: entry %d: %w", i, err)
		}
	}
	v := Vector[T]{degree: N, polys: make([]Poly[T], len(polys))}
	copy(v.polys, polys)
	return v, nil
}

// N returns the ring degree of the entries.
func (v Vector[T]) N() int {
	return v.degree
}

// Len returns the number of entries.
func (v Vector[T]) Len() int {
	return len(v.polys)
}

// At returns the i-th entry.
func (v Vector[T]) At(i int) Poly[T] {
	return v.polys[i]
}

// Polys returns a copy of the slice of entries.
func (v Vector[T]) Polys() []Poly[T] {
	polys := make([]Poly[T], len(v.polys))
	copy(polys, v.polys)
	return polys
}

func (v Vector[T]) checkShape(other Vector[T]) error {
	if err := checkDimension(VectorLength, v.Len(), other.Len()); err != nil {
		return err
	}
	return checkDimension(RingDegree, v.degree, other.degree)
}

// Add returns the entrywise sum v + other.
func (v Vector[T]) Add(other Vector[T]) (Vector[T], error) {
	if err := v.checkShape(other); err != nil {
		return Vector[T]{}, fmt.Errorf("cannot Add: %w", err)
	}
	sum := Vector[T]{degree: v.degree, polys: make([]Poly[T], v.Len())}
	for i := range sum.polys {
		var err error
		if sum.polys[i], err = v.polys[i].Add(other.polys[i]); err != nil {
			return Vector[T]{}, fmt.Errorf("cannot Add: entry %d: %w", i, err)
		}
	}
	return sum, nil
}

// Sub returns the entrywise difference v - other.
func (v Vector[T]) Sub(other Vector[T]) (Vector[T], error) {
	if err := v.checkShape(other); err != nil {
		return Vector[T]{}, fmt.Errorf("cannot Sub: %w", err)
	}
	diff := Vector[T]{degree: v.degree, polys: make([]Poly[T], v.Len())}
	for i := range diff.polys {
		var err error
		if diff.polys[i], err = v.polys[i].Sub(other.polys[i]); err != nil {
			return Vector[T]{}, fmt.Errorf("cannot Sub: entry %d: %w", i, err)
		}
	}
	return diff, nil
}

// MulPoly returns the vector whose i-th entry is p * v[i].
func (v Vector[T]) MulPoly(p Poly[T]) (Vector[T], error) {
	if err := checkDimension(RingDegree, v.degree, p.N()); err != nil {
		return Vector[T]{}, fmt.Errorf("cannot MulPoly: %w", err)
	}
	prod := Vector[T]{degree: v.degree, polys: make([]Poly[T], v.Len())}
	for i := range prod.polys {
		var err error
		if prod.polys[i], err = p.Mul(v.polys[i]); err != nil {
			return Vector[T]{}, fmt.Errorf("cannot MulPoly: entry %d: %w", i, err)
		}
	}
	return prod, nil
}

// DotProduct returns sum_i v[i] * other[i] as a polynomial of the shared ring degree.
func (v Vector[T]) DotProduct(other Vector[T]) (Poly[T], error) {
	if err := v.checkShape(other); err != nil {
		return Poly[T]{}, fmt.Errorf("cannot DotProduct: %w", err)
	}

	acc := NewPoly[T](v.degree)

	for i := range v.polys {

		prod, err := v.polys[i].Mul(other.polys[i])
		if err != nil {
			return Poly[T]{}, fmt.Errorf("cannot DotProduct: entry %d: %w", i, err)
		}

		if acc, err = acc.Add(prod); err != nil {
			return Poly[T]{}, fmt.Errorf("cannot DotProduct: entry %d: %w", i, err)
		}
	}

	return acc, nil
}

// Equal returns true if v and other have the same shape and entries.
func (v Vector[T]) Equal(other Vector[T]) bool {
	if v.degree != other.degree || v.Len() != other.Len() {
		return false
	}
	for i := range v.polys {
		if !v.polys[i].Equal(other.polys[i]) {
			return false
		}
	}
	return true
}
