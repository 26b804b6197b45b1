package ring

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func testIdentities[T Element[T]](t *testing.T, name string, values ...T) {
	t.Run("Identities/"+name, func(t *testing.T) {
		z, o := zero[T](), one[T]()
		for _, x := range values {
			require.True(t, x.Equal(x.Add(z)))
			require.True(t, x.Equal(z.Add(x)))
			require.True(t, x.Equal(x.Mul(o)))
			require.True(t, x.Equal(o.Mul(x)))
			require.True(t, z.Equal(x.Sub(x)))
			require.True(t, z.Equal(x.Mul(z)))
		}
	})
}

func testCodec[T interface {
	Element[T]
	Codec[T]
}](t *testing.T, name string, size int, values ...T) {
	t.Run("Codec/"+name, func(t *testing.T) {
		var codec T
		require.Equal(t, size, codec.BinarySize())
		for _, x := range values {
			p := make([]byte, size)
			x.Encode(p)
			require.True(t, x.Equal(codec.Decode(p)))
		}
	})
}

func TestElement(t *testing.T) {

	maxU256 := NewModUint256FromBig(big.NewInt(-1))

	testIdentities(t, "Float32", Float32(0), Float32(1.5), Float32(-3.25))
	testIdentities(t, "Float64", Float64(0), Float64(math.Pi), Float64(-1e300))
	testIdentities(t, "ModUint32", NewModUint32(0), NewModUint32(7), NewModUint32(math.MaxUint32))
	testIdentities(t, "ModUint64", NewModUint64(0), NewModUint64(7), NewModUint64(math.MaxUint64))
	testIdentities(t, "ModUint256", NewModUint256(0), NewModUint256(7), maxU256)
	testIdentities(t, "Complex[Float64]", NewComplex[Float64](1, 2), NewComplex[Float64](-0.5, 3))
	testIdentities(t, "Complex[ModUint32]", NewComplex(NewModUint32(3), NewModUint32(math.MaxUint32)))

	testCodec(t, "Float32", 4, Float32(0), Float32(1.5), Float32(float32(math.Inf(-1))))
	testCodec(t, "Float64", 8, Float64(math.SmallestNonzeroFloat64), Float64(-math.MaxFloat64))
	testCodec(t, "ModUint32", 4, NewModUint32(0), NewModUint32(0xdeadbeef))
	testCodec(t, "ModUint64", 8, NewModUint64(0), NewModUint64(0xdeadbeefcafebabe))
	testCodec(t, "ModUint256", 32, NewModUint256(0), NewModUint256(0xdeadbeef), maxU256)
	testCodec(t, "Complex[Float32]", 8, NewComplex[Float32](1, -2))
	testCodec(t, "Complex[ModUint256]", 64, NewComplex(maxU256, NewModUint256(5)))

	t.Run("Float/Abs", func(t *testing.T) {
		require.Equal(t, 2.5, Float32(-2.5).Abs())
		require.Equal(t, 2.5, Float64(2.5).Abs())
		require.Equal(t, 0.0, Float64(0).Abs())
	})

	t.Run("ModUint32/Wrapping", func(t *testing.T) {
		max := NewModUint32(math.MaxUint32)
		require.Equal(t, NewModUint32(0), max.Add(NewModUint32(1)))
		require.Equal(t, NewModUint32(1), max.Add(NewModUint32(2)))
		require.Equal(t, max, NewModUint32(0).Sub(NewModUint32(1)))
		require.Equal(t, NewModUint32(0), NewModUint32(1<<16).Mul(NewModUint32(1<<16)))
		require.Equal(t, NewModUint32(1), max.Mul(max))
		require.Equal(t, float64(math.MaxUint32), max.Abs())
		require.Equal(t, "4294967295", max.String())
	})

	t.Run("ModUint64/Wrapping", func(t *testing.T) {
		max := NewModUint64(math.MaxUint64)
		require.Equal(t, NewModUint64(0), max.Add(NewModUint64(1)))
		require.Equal(t, max, NewModUint64(0).Sub(NewModUint64(1)))
		require.Equal(t, NewModUint64(0), NewModUint64(1<<32).Mul(NewModUint64(1<<32)))
		require.Equal(t, NewModUint64(1), max.Mul(max))
		require.Equal(t, "18446744073709551615", max.String())
	})

	t.Run("ModUint256/Wrapping", func(t *testing.T) {
		modulus := new(big.Int).Lsh(big.NewInt(1), 256)

		require.True(t, NewModUint256(0).Equal(maxU256.Add(NewModUint256(1))))
		require.True(t, maxU256.Equal(NewModUint256(0).Sub(NewModUint256(1))))
		require.Equal(t, 0, new(big.Int).Sub(modulus, big.NewInt(1)).Cmp(maxU256.Big()))

		a := NewModUint256FromBig(new(big.Int).Lsh(big.NewInt(3), 200))
		b := NewModUint256FromBig(new(big.Int).Lsh(big.NewInt(5), 100))
		want := new(big.Int).Mul(a.Big(), b.Big())
		want.Mod(want, modulus)
		require.Equal(t, 0, want.Cmp(a.Mul(b).Big()))

		require.Equal(t, math.Ldexp(1, 256), maxU256.Abs())
		require.Equal(t, "12345", NewModUint256(12345).String())
	})

	t.Run("Complex/Arithmetic", func(t *testing.T) {
		x := NewComplex[Float64](1, 2)
		y := NewComplex[Float64](3, 4)

		require.Equal(t, NewComplex[Float64](4, 6), x.Add(y))
		require.Equal(t, NewComplex[Float64](-2, -2), x.Sub(y))
		require.Equal(t, NewComplex[Float64](-5, 10), x.Mul(y))
		require.Equal(t, NewComplex[Float64](1, -2), x.Conjugate())
		require.Equal(t, NewComplex[Float64](5, 0), x.Mul(x.Conjugate()))

		require.Equal(t, NewComplex[Float64](0, 0), x.Zero())
		require.Equal(t, NewComplex[Float64](1, 0), x.One())

		require.Equal(t, 25.0, y.Abs())
		require.Equal(t, 5.0, y.Modulus())

		i := NewComplex[Float64](0, 1)
		require.Equal(t, NewComplex[Float64](-1, 0), i.Mul(i))
	})

	t.Run("Complex/ModUint32", func(t *testing.T) {
		x := NewComplex(NewModUint32(math.MaxUint32), NewModUint32(1))
		require.Equal(t, NewComplex(NewModUint32(0), NewModUint32(2)), x.Add(NewComplex(NewModUint32(1), NewModUint32(1))))
		// (-1 + i)^2 = -2i
		require.Equal(t, NewComplex(NewModUint32(0), NewModUint32(math.MaxUint32-1)), x.Mul(x))
	})
}
