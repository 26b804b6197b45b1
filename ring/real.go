package ring

import (
	"encoding/binary"
	"math"

	"golang.org/x/exp/constraints"
)

// Float32 is a single precision real scalar.
type Float32 float32

// Float64 is a double precision real scalar.
type Float64 float64

func abs[F constraints.Float](x F) float64 {
	if x < 0 {
		return -float64(x)
	}
	return float64(x)
}

// Zero returns 0.
func (x Float32) Zero() Float32 { return 0 }

// One returns 1.
func (x Float32) One() Float32 { return 1 }

// Add returns x + y.
func (x Float32) Add(y Float32) Float32 { return x + y }

// Sub returns x - y.
func (x Float32) Sub(y Float32) Float32 { return x - y }

// Mul returns x * y.
func (x Float32) Mul(y Float32) Float32 {
	// The explicit conversion rounds the product and prevents fused multiply-add.
	return Float32(float32(x * y))
}

// Abs returns |x|.
func (x Float32) Abs() float64 { return abs(x) }

// Equal returns x == y.
func (x Float32) Equal(y Float32) bool { return x == y }

// BinarySize returns 4.
func (x Float32) BinarySize() int { return 4 }

// Encode writes the IEEE-754 bits of x on p in little-endian order.
func (x Float32) Encode(p []byte) {
	binary.LittleEndian.PutUint32(p, math.Float32bits(float32(x)))
}

// Decode reads a Float32 from p.
func (x Float32) Decode(p []byte) Float32 {
	return Float32(math.Float32frombits(binary.LittleEndian.Uint32(p)))
}

// Zero returns 0.
func (x Float64) Zero() Float64 { return 0 }

// One returns 1.
func (x Float64) One() Float64 { return 1 }

// Add returns x + y.
func (x Float64) Add(y Float64) Float64 { return x + y }

// Sub returns x - y.
func (x Float64) Sub(y Float64) Float64 { return x - y }

// Mul returns x * y.
func (x Float64) Mul(y Float64) Float64 {
	// The explicit conversion rounds the product and prevents fused multiply-add.
	return Float64(float64(x * y))
}

// Abs returns |x|.
func (x Float64) Abs() float64 { return abs(x) }

// Equal returns x == y.
func (x Float64) Equal(y Float64) bool { return x == y }

// BinarySize returns 8.
func (x Float64) BinarySize() int { return 8 }

// Encode writes the IEEE-754 bits of x on p in little-endian order.
func (x Float64) Encode(p []byte) {
	binary.LittleEndian.PutUint64(p, math.Float64bits(float64(x)))
}

// Decode reads a Float64 from p.
func (x Float64) Decode(p []byte) Float64 {
	return Float64(math.Float64frombits(binary.LittleEndian.Uint64(p)))
}
