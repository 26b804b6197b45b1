package ring

import (
	"encoding/binary"
	"math/big"
	"strconv"

	"github.com/holiman/uint256"
)

// ModUint32 is an integer modulo 2^32.
// Arithmetic wraps at the native 32-bit width.
type ModUint32 struct {
	Value uint32
}

// ModUint64 is an integer modulo 2^64.
// Arithmetic wraps at the native 64-bit width.
type ModUint64 struct {
	Value uint64
}

// ModUint256 is an integer modulo 2^256.
// Arithmetic wraps at 256 bits.
type ModUint256 struct {
	Value uint256.Int
}

// NewModUint32 creates a new ModUint32.
func NewModUint32(v uint32) ModUint32 {
	return ModUint32{Value: v}
}

// Zero returns 0.
func (x ModUint32) Zero() ModUint32 {
	return ModUint32{}
}

// One returns 1.
func (x ModUint32) One() ModUint32 {
	return ModUint32{Value: 1}
}

// Add returns x + y mod 2^32.
func (x ModUint32) Add(y ModUint32) ModUint32 {
	return ModUint32{Value: x.Value + y.Value}
}

// Sub returns x - y mod 2^32.
func (x ModUint32) Sub(y ModUint32) ModUint32 {
	return ModUint32{Value: x.Value - y.Value}
}

// Mul returns x * y mod 2^32.
func (x ModUint32) Mul(y ModUint32) ModUint32 {
	return ModUint32{Value: x.Value * y.Value}
}

// Abs returns the value of x as a float64.
func (x ModUint32) Abs() float64 {
	return float64(x.Value)
}

// Equal returns true if x and y store the same value.
func (x ModUint32) Equal(y ModUint32) bool {
	return x.Value == y.Value
}

// BinarySize returns 4.
func (x ModUint32) BinarySize() int {
	return 4
}

// Encode writes x on p in little-endian order.
func (x ModUint32) Encode(p []byte) {
	binary.LittleEndian.PutUint32(p, x.Value)
}

// Decode reads a ModUint32 from p.
func (x ModUint32) Decode(p []byte) ModUint32 {
	return ModUint32{Value: binary.LittleEndian.Uint32(p)}
}

func (x ModUint32) String() string {
	return strconv.FormatUint(uint64(x.Value), 10)
}

// NewModUint64 creates a new ModUint64.
func NewModUint64(v uint64) ModUint64 {
	return ModUint64{Value: v}
}

// Zero returns 0.
func (x ModUint64) Zero() ModUint64 {
	return ModUint64{}
}

// One returns 1.
func (x ModUint64) One() ModUint64 {
	return ModUint64{Value: 1}
}

// Add returns x + y mod 2^64.
func (x ModUint64) Add(y ModUint64) ModUint64 {
	return ModUint64{Value: x.Value + y.Value}
}

// Sub returns x - y mod 2^64.
func (x ModUint64) Sub(y ModUint64) ModUint64 {
	return ModUint64{Value: x.Value - y.Value}
}

// Mul returns x * y mod 2^64.
func (x ModUint64) Mul(y ModUint64) ModUint64 {
	return ModUint64{Value: x.Value * y.Value}
}

// Abs returns the value of x as a float64.
func (x ModUint64) Abs() float64 {
	return float64(x.Value)
}

// Equal returns true if x and y store the same value.
func (x ModUint64) Equal(y ModUint64) bool {
	return x.Value == y.Value
}

// BinarySize returns 8.
func (x ModUint64) BinarySize() int {
	return 8
}

// Encode writes x on p in little-endian order.
func (x ModUint64) Encode(p []byte) {
	binary.LittleEndian.PutUint64(p, x.Value)
}

// Decode reads a ModUint64 from p.
func (x ModUint64) Decode(p []byte) ModUint64 {
	return ModUint64{Value: binary.LittleEndian.Uint64(p)}
}

func (x ModUint64) String() string {
	return strconv.FormatUint(uint64(x.Value), 10)
}

// NewModUint256 creates a new ModUint256 from a uint64.
func NewModUint256(v uint64) (x ModUint256) {
	x.Value.SetUint64(v)
	return
}

// NewModUint256FromBig creates a new ModUint256 equal to v mod 2^256.
// Negative values are mapped to their class in [0, 2^256).
func NewModUint256FromBig(v *big.Int) (x ModUint256) {
	r := new(big.Int).Mod(v, new(big.Int).Lsh(big.NewInt(1), 256))
	x.Value.SetFromBig(r)
	return
}

// Zero returns 0.
func (x ModUint256) Zero() ModUint256 { return ModUint256{} }

// One returns 1.
func (x ModUint256) One() ModUint256 { return NewModUint256(1) }

// Add returns x + y mod 2^256.
func (x ModUint256) Add(y ModUint256) (z ModUint256) {
	z.Value.Add(&x.Value, &y.Value)
	return
}

// Sub returns x - y mod 2^256.
func (x ModUint256) Sub(y ModUint256) (z ModUint256) {
	z.Value.Sub(&x.Value, &y.Value)
	return
}

// Mul returns x * y mod 2^256.
func (x ModUint256) Mul(y ModUint256) (z ModUint256) {
	z.Value.Mul(&x.Value, &y.Value)
	return
}

// Abs returns the value of x as the nearest float64.
func (x ModUint256) Abs() float64 {
	f, _ := new(big.Float).SetInt(x.Value.ToBig()).Float64()
	return f
}

// Equal returns true if x and y store the same value.
func (x ModUint256) Equal(y ModUint256) bool { return x.Value.Eq(&y.Value) }

// Big returns x as a new big.Int.
func (x ModUint256) Big() *big.Int { return x.Value.ToBig() }

// BinarySize returns 32.
func (x ModUint256) BinarySize() int { return 32 }

// Encode writes x on p as 32 big-endian bytes.
func (x ModUint256) Encode(p []byte) {
	b := x.Value.Bytes32()
	copy(p, b[:])
}

// Decode reads a ModUint256 from 32 big-endian bytes.
func (x ModUint256) Decode(p []byte) (y ModUint256) {
	y.Value.SetBytes32(p[:32])
	return
}

func (x ModUint256) String() string { return x.Value.Dec() }
