package ring

import (
	"fmt"
	"math"
)

// Complex is a complex number whose real and imaginary parts are elements of type T.
// Arithmetic only relies on the ring operations of T, so that Complex can be
// instantiated over real scalars, modular integers or other Complex types.
type Complex[T Element[T]] struct {
	Real T
	Imag T
}

// NewComplex creates a new Complex from its real and imaginary parts.
func NewComplex[T Element[T]](re, im T) Complex[T] {
	return Complex[T]{Real: re, Imag: im}
}

// Zero returns (0, 0).
func (c Complex[T]) Zero() Complex[T] {
	return Complex[T]{Real: zero[T](), Imag: zero[T]()}
}

// One returns (1, 0).
func (c Complex[T]) One() Complex[T] {
	return Complex[T]{Real: one[T](), Imag: zero[T]()}
}

// Add returns c + d.
func (c Complex[T]) Add(d Complex[T]) Complex[T] {
	return Complex[T]{Real: c.Real.Add(d.Real), Imag: c.Imag.Add(d.Imag)}
}

// Sub returns c - d.
func (c Complex[T]) Sub(d Complex[T]) Complex[T] {
	return Complex[T]{Real: c.Real.Sub(d.Real), Imag: c.Imag.Sub(d.Imag)}
}

// Mul returns (a+bi)(c+di) = (ac-bd) + (ad+bc)i.
func (c Complex[T]) Mul(d Complex[T]) Complex[T] {
	return Complex[T]{
		Real: c.Real.Mul(d.Real).Sub(c.Imag.Mul(d.Imag)),
		Imag: c.Real.Mul(d.Imag).Add(c.Imag.Mul(d.Real)),
	}
}

// Abs returns T.Abs(real^2 + imag^2), that is the squared norm of c
// seen through the magnitude of T. See Modulus for the Euclidean norm.
func (c Complex[T]) Abs() float64 {
	return c.Real.Mul(c.Real).Add(c.Imag.Mul(c.Imag)).Abs()
}

// Modulus returns sqrt(c.Abs()), the Euclidean norm of c when T is a real scalar.
func (c Complex[T]) Modulus() float64 {
	return math.Sqrt(c.Abs())
}

// Conjugate returns real - imag*i.
func (c Complex[T]) Conjugate() Complex[T] {
	return Complex[T]{Real: c.Real, Imag: zero[T]().Sub(c.Imag)}
}

// Equal returns true if both parts are equal.
func (c Complex[T]) Equal(d Complex[T]) bool {
	return c.Real.Equal(d.Real) && c.Imag.Equal(d.Imag)
}

func innerCodec[T Element[T]]() Codec[T] {
	codec, ok := codecOf[T]()
	if !ok {
		var t T
		panic(fmt.Errorf("complex component of type %T does not comply to %T", t, new(Codec[T])))
	}
	return codec
}

// BinarySize returns twice the size of T.
// It panics if T does not implement Codec.
func (c Complex[T]) BinarySize() int {
	return 2 * innerCodec[T]().BinarySize()
}

// Encode writes the real part followed by the imaginary part on p.
// It panics if T does not implement Codec.
func (c Complex[T]) Encode(p []byte) {
	size := innerCodec[T]().BinarySize()
	any(c.Real).(Codec[T]).Encode(p[:size])
	any(c.Imag).(Codec[T]).Encode(p[size : 2*size])
}

// Decode reads a Complex from p.
// It panics if T does not implement Codec.
func (c Complex[T]) Decode(p []byte) Complex[T] {
	codec := innerCodec[T]()
	size := codec.BinarySize()
	return Complex[T]{Real: codec.Decode(p[:size]), Imag: codec.Decode(p[size : 2*size])}
}
