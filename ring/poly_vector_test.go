package ring

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func testVectorKnownAnswers[T Element[T]](t *testing.T, tc *testContext[T]) {

	poly1 := tc.poly(1, 2, 3, 4, 5, 6, 7, 8, 9, 10)
	poly2 := tc.poly(4, 5, 4, 8, 9, 1, 1, 1, 1, 3)

	v := must(NewVectorFromPolys(10, []Poly[T]{poly1, poly2}))
	w := must(NewVectorFromPolys(10, []Poly[T]{poly2, poly1}))

	t.Run(testString("Vector/Add/KnownAnswer", tc.name, 10), func(t *testing.T) {
		sum, err := v.Add(w)
		require.NoError(t, err)
		require.Equal(t, 2, sum.Len())
		require.Equal(t, 10, sum.N())
		want := tc.poly(5, 7, 7, 12, 14, 7, 8, 9, 10, 13)
		require.True(t, want.Equal(sum.At(0)))
		require.True(t, want.Equal(sum.At(1)))
	})

	t.Run(testString("Vector/DotProduct/KnownAnswer", tc.name, 10), func(t *testing.T) {
		dot, err := v.DotProduct(w)
		require.NoError(t, err)
		require.True(t, tc.poly(482, 456, 450, 364, 258, 312, 366, 420, 474, 488).Equal(dot))

		dot, err = v.DotProduct(v)
		require.NoError(t, err)
		require.True(t, tc.poly(354, 400, 451, 502, 522, 510, 486, 476, 397, 296).Equal(dot))
	})

	t.Run(testString("Vector/DotProduct/Empty", tc.name, 10), func(t *testing.T) {
		dot, err := NewVector[T](10, 0).DotProduct(NewVector[T](10, 0))
		require.NoError(t, err)
		require.True(t, NewPoly[T](10).Equal(dot))
	})

	t.Run(testString("Vector/MulPoly/KnownAnswer", tc.name, 10), func(t *testing.T) {
		prod, err := v.MulPoly(poly2)
		require.NoError(t, err)
		require.True(t, tc.poly(241, 228, 225, 182, 129, 156, 183, 210, 237, 244).Equal(prod.At(0)))
		require.True(t, tc.poly(89, 100, 126, 162, 177, 170, 161, 176, 132, 76).Equal(prod.At(1)))
	})

	t.Run(testString("Vector/NoAliasing", tc.name, 10), func(t *testing.T) {
		polys := []Poly[T]{poly1, poly2}
		u := must(NewVectorFromPolys(10, polys))
		polys[0] = poly2
		require.True(t, poly1.Equal(u.At(0)))

		out := u.Polys()
		out[1] = poly1
		require.True(t, poly2.Equal(u.At(1)))
	})
}

func testVectorProperties[T Element[T]](t *testing.T, tc *testContext[T], N int) {

	u := tc.sampler.ReadVectorNew(N, 3)
	v := tc.sampler.ReadVectorNew(N, 3)
	w := tc.sampler.ReadVectorNew(N, 3)
	p := tc.sampler.ReadPolyNew(N)

	t.Run(testString("Vector/Add/Commutative", tc.name, N), func(t *testing.T) {
		require.True(t, must(u.Add(v)).Equal(must(v.Add(u))))
	})

	t.Run(testString("Vector/Sub/Inverse", tc.name, N), func(t *testing.T) {
		require.True(t, NewVector[T](N, 3).Equal(must(u.Sub(u))))
	})

	t.Run(testString("Vector/DotProduct/Commutative", tc.name, N), func(t *testing.T) {
		tc.requirePolyEqual(t, must(u.DotProduct(v)), must(v.DotProduct(u)), tc.mulErr)
	})

	t.Run(testString("Vector/DotProduct/Distributive", tc.name, N), func(t *testing.T) {
		left := must(u.DotProduct(must(v.Add(w))))
		right := must(must(u.DotProduct(v)).Add(must(u.DotProduct(w))))
		tc.requirePolyEqual(t, left, right, tc.mulErr)
	})

	t.Run(testString("Vector/MulPoly/DotProduct", tc.name, N), func(t *testing.T) {
		left := must(must(u.MulPoly(p)).DotProduct(v))
		right := must(p.Mul(must(u.DotProduct(v))))
		tc.requirePolyEqual(t, left, right, tc.mulErr)
	})
}

func testVectorMatrixDimensionMismatch[T Element[T]](t *testing.T, tc *testContext[T]) {

	t.Run(testString("Vector/DimensionMismatch", tc.name, 10), func(t *testing.T) {

		v := tc.sampler.ReadVectorNew(10, 3)

		_, err := v.Add(tc.sampler.ReadVectorNew(10, 4))
		requireDimensionMismatch(t, err, VectorLength, 3, 4)

		_, err = v.Sub(tc.sampler.ReadVectorNew(14, 3))
		requireDimensionMismatch(t, err, RingDegree, 10, 14)

		dot, err := v.DotProduct(tc.sampler.ReadVectorNew(10, 2))
		requireDimensionMismatch(t, err, VectorLength, 3, 2)
		require.Equal(t, 0, dot.N())

		_, err = v.DotProduct(tc.sampler.ReadVectorNew(14, 3))
		requireDimensionMismatch(t, err, RingDegree, 10, 14)

		_, err = v.MulPoly(tc.sampler.ReadPolyNew(14))
		requireDimensionMismatch(t, err, RingDegree, 10, 14)

		_, err = NewVectorFromPolys(10, []Poly[T]{NewPoly[T](10), NewPoly[T](14)})
		requireDimensionMismatch(t, err, RingDegree, 10, 14)
		require.EqualError(t, err, "cannot NewVectorFromPolys: entry 1: ring degree mismatch: 10 != 14")
	})

	t.Run(testString("Matrix/DimensionMismatch", tc.name, 10), func(t *testing.T) {

		m := tc.sampler.ReadMatrixNew(10, 3, 2)

		_, err := m.Add(tc.sampler.ReadMatrixNew(10, 2, 2))
		requireDimensionMismatch(t, err, MatrixRows, 3, 2)

		_, err = m.Sub(tc.sampler.ReadMatrixNew(10, 3, 4))
		requireDimensionMismatch(t, err, MatrixCols, 2, 4)

		_, err = m.Add(tc.sampler.ReadMatrixNew(14, 3, 2))
		requireDimensionMismatch(t, err, RingDegree, 10, 14)

		prod, err := m.MulByLeftVector(tc.sampler.ReadVectorNew(10, 2))
		requireDimensionMismatch(t, err, MatrixRows, 3, 2)
		require.Equal(t, 0, prod.Len())

		_, err = m.MulByLeftVector(tc.sampler.ReadVectorNew(14, 3))
		requireDimensionMismatch(t, err, RingDegree, 10, 14)

		_, err = m.MulByRightVector(tc.sampler.ReadVectorNew(10, 3))
		requireDimensionMismatch(t, err, MatrixCols, 2, 3)

		_, err = NewMatrixFromColumns(10, 3, []Vector[T]{NewVector[T](10, 3), NewVector[T](10, 2)})
		requireDimensionMismatch(t, err, MatrixRows, 3, 2)

		_, err = NewMatrixFromColumns(10, 3, []Vector[T]{NewVector[T](14, 3)})
		requireDimensionMismatch(t, err, RingDegree, 10, 14)

		_, err = NewMatrixFromRows(10, [][]Poly[T]{
			{NewPoly[T](10), NewPoly[T](10)},
			{NewPoly[T](10)},
		})
		requireDimensionMismatch(t, err, MatrixCols, 2, 1)

		_, err = NewMatrixFromRows(10, [][]Poly[T]{
			{NewPoly[T](10), NewPoly[T](14)},
		})
		requireDimensionMismatch(t, err, RingDegree, 10, 14)
	})
}
