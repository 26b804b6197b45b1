package ring

import (
	"github.com/tuneinsight/polyring/utils/sampling"
)

// Sampler draws polynomials, vectors and matrices with coefficients of type T
// from an explicit sampling.Source. A Sampler is not safe for concurrent use.
type Sampler[T Element[T]] struct {
	source *sampling.Source
	draw   func(s *sampling.Source) T
}

// NewSampler creates a new Sampler drawing each coefficient with draw.
func NewSampler[T Element[T]](source *sampling.Source, draw func(s *sampling.Source) T) *Sampler[T] {
	return &Sampler[T]{source: source, draw: draw}
}

// ReadElement draws a single coefficient.
func (s *Sampler[T]) ReadElement() T {
	return s.draw(s.source)
}

// ReadPolyNew draws a new polynomial of ring degree N.
func (s *Sampler[T]) ReadPolyNew(N int) Poly[T] {
	pol := Poly[T]{degree: N, coeffs: make([]T, N)}
	for i := range pol.coeffs {
		pol.coeffs[i] = s.draw(s.source)
	}
	return pol
}

// ReadVectorNew draws a new vector of the given length and ring degree N.
func (s *Sampler[T]) ReadVectorNew(N, length int) Vector[T] {
	v := Vector[T]{degree: N, polys: make([]Poly[T], length)}
	for i := range v.polys {
		v.polys[i] = s.ReadPolyNew(N)
	}
	return v
}

// ReadMatrixNew draws a new rows x cols matrix of ring degree N, column by column.
func (s *Sampler[T]) ReadMatrixNew(N, rows, cols int) Matrix[T] {
	m := Matrix[T]{degree: N, rows: rows, cols: make([]Vector[T], cols)}
	for j := range m.cols {
		m.cols[j] = s.ReadVectorNew(N, rows)
	}
	return m
}

// DrawFloat32 draws a uniform Float32 in [0, 1).
func DrawFloat32(s *sampling.Source) Float32 {
	return Float32(s.Float32())
}

// DrawFloat64 draws a uniform Float64 in [0, 1).
func DrawFloat64(s *sampling.Source) Float64 {
	return Float64(s.Float64())
}

// DrawModUint32 draws a uniform ModUint32 in [0, 2^32).
func DrawModUint32(s *sampling.Source) ModUint32 {
	return ModUint32{Value: s.Uint32()}
}

// DrawModUint64 draws a uniform ModUint64 in [0, 2^64).
func DrawModUint64(s *sampling.Source) ModUint64 {
	return ModUint64{Value: s.Uint64()}
}

// DrawModUint256 draws a uniform ModUint256 in [0, 2^256).
func DrawModUint256(s *sampling.Source) (x ModUint256) {
	for i := range x.Value {
		x.Value[i] = s.Uint64()
	}
	return
}

// DrawComplex returns a function drawing a Complex whose real and
// imaginary parts are drawn, in this order, with draw.
func DrawComplex[T Element[T]](draw func(s *sampling.Source) T) func(s *sampling.Source) Complex[T] {
	return func(s *sampling.Source) Complex[T] {
		re := draw(s)
		im := draw(s)
		return Complex[T]{Real: re, Imag: im}
	}
}
