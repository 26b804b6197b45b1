package ring

// Element is the capability required of the coefficient type T of a Poly.
// Implementations are immutable values: every method returns a new value
// and leaves both its receiver and its operand untouched.
//
// Zero and One must not depend on the receiver, so that they can be
// called on the zero value of T.
type Element[T any] interface {
	// Zero returns the additive identity.
	Zero() T
	// One returns the multiplicative identity.
	One() T
	Add(other T) T
	Sub(other T) T
	Mul(other T) T
	// Abs returns a real magnitude, used for approximate comparisons only.
	Abs() float64
	// Equal returns true if both values are identical.
	Equal(other T) bool
}

// Codec is implemented by elements that have a fixed-size binary encoding.
// BinarySize must not depend on the receiver.
type Codec[T any] interface {
	BinarySize() int
	// Encode writes the element on p[:BinarySize()].
	Encode(p []byte)
	// Decode returns the element encoded on p[:BinarySize()].
	Decode(p []byte) T
}

func zero[T Element[T]]() T {
	var t T
	return t.Zero()
}

func one[T Element[T]]() T {
	var t T
	return t.One()
}

func codecOf[T any]() (c Codec[T], ok bool) {
	var t T
	c, ok = any(t).(Codec[T])
	return
}
