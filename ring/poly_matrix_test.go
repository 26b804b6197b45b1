package ring

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func (tc *testContext[T]) identity(N, n int) Matrix[T] {
	columns := make([]Vector[T], n)
	for j := range columns {
		columns[j] = NewVector[T](N, n)
		columns[j].polys[j].coeffs[0] = one[T]()
	}
	return must(NewMatrixFromColumns(N, n, columns))
}

func testMatrixKnownAnswers[T Element[T]](t *testing.T, tc *testContext[T]) {

	poly1 := tc.poly(1, 2, 3, 4, 5, 6, 7, 8, 9, 10)
	poly2 := tc.poly(4, 5, 4, 8, 9, 1, 1, 1, 1, 3)

	t.Run(testString("Matrix/NewMatrixFromRows", tc.name, 10), func(t *testing.T) {
		m, err := NewMatrixFromRows(10, [][]Poly[T]{
			{poly1, poly2, poly1},
			{poly2, poly2, poly1},
		})
		require.NoError(t, err)
		require.Equal(t, 2, m.Rows())
		require.Equal(t, 3, m.Cols())
		require.Equal(t, 10, m.N())
		require.True(t, poly2.Equal(m.At(1, 0)))
		require.True(t, poly1.Equal(m.At(0, 2)))
		require.True(t, poly2.Equal(m.Column(1).At(0)))

		mt := m.Transpose()
		require.Equal(t, 3, mt.Rows())
		require.Equal(t, 2, mt.Cols())
		require.True(t, poly2.Equal(mt.At(0, 1)))
		require.True(t, poly1.Equal(mt.At(2, 0)))
	})

	t.Run(testString("Matrix/MulByLeftVector/KnownAnswer", tc.name, 10), func(t *testing.T) {
		m := must(NewMatrixFromRows(10, [][]Poly[T]{
			{poly1, poly2},
			{poly2, poly1},
		}))
		v := must(NewVectorFromPolys(10, []Poly[T]{poly1, poly2}))

		prod, err := m.MulByLeftVector(v)
		require.NoError(t, err)
		require.Equal(t, m.Cols(), prod.Len())
		require.True(t, tc.poly(354, 400, 451, 502, 522, 510, 486, 476, 397, 296).Equal(prod.At(0)))
		require.True(t, tc.poly(482, 456, 450, 364, 258, 312, 366, 420, 474, 488).Equal(prod.At(1)))
	})

	t.Run(testString("Matrix/Identity", tc.name, 10), func(t *testing.T) {
		v := tc.sampler.ReadVectorNew(10, 4)
		I := tc.identity(10, 4)

		left, err := I.MulByLeftVector(v)
		require.NoError(t, err)
		require.True(t, v.Equal(left))

		right, err := I.MulByRightVector(v)
		require.NoError(t, err)
		require.True(t, v.Equal(right))

		require.True(t, I.Equal(I.Transpose()))
	})

	t.Run(testString("Matrix/Empty", tc.name, 10), func(t *testing.T) {
		m := NewMatrix[T](10, 0, 3)
		prod, err := m.MulByLeftVector(NewVector[T](10, 0))
		require.NoError(t, err)
		require.True(t, NewVector[T](10, 3).Equal(prod))

		m, err = NewMatrixFromRows[T](10, nil)
		require.NoError(t, err)
		require.Equal(t, 0, m.Rows())
		require.Equal(t, 0, m.Cols())
	})
}

func testMatrixProperties[T Element[T]](t *testing.T, tc *testContext[T], N int) {

	m1 := tc.sampler.ReadMatrixNew(N, 3, 4)
	m2 := tc.sampler.ReadMatrixNew(N, 3, 4)
	u := tc.sampler.ReadVectorNew(N, 3)
	v := tc.sampler.ReadVectorNew(N, 4)

	t.Run(testString("Matrix/Add/Commutative", tc.name, N), func(t *testing.T) {
		require.True(t, must(m1.Add(m2)).Equal(must(m2.Add(m1))))
	})

	t.Run(testString("Matrix/Sub/Inverse", tc.name, N), func(t *testing.T) {
		require.True(t, NewMatrix[T](N, 3, 4).Equal(must(m1.Sub(m1))))
	})

	t.Run(testString("Matrix/MulByLeftVector/Distributive", tc.name, N), func(t *testing.T) {
		left := must(must(m1.Add(m2)).MulByLeftVector(u))
		right := must(must(m1.MulByLeftVector(u)).Add(must(m2.MulByLeftVector(u))))
		require.Equal(t, 4, left.Len())
		tc.requireVectorEqual(t, left, right, tc.mulErr)
	})

	t.Run(testString("Matrix/MulByRightVector/Transpose", tc.name, N), func(t *testing.T) {
		right := must(m1.MulByRightVector(v))
		left := must(m1.Transpose().MulByLeftVector(v))
		require.Equal(t, 3, right.Len())
		tc.requireVectorEqual(t, left, right, tc.mulErr)
	})

	t.Run(testString("Matrix/Transpose/Involution", tc.name, N), func(t *testing.T) {
		require.True(t, m1.Equal(m1.Transpose().Transpose()))
	})
}
