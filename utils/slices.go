// Package utils implements generic helpers shared by the polyring packages.
package utils

import (
	"sort"

	"golang.org/x/exp/constraints"
)

// Alias1D returns true if x and y share the same base array.
// Taken from http://golang.org/src/pkg/math/big/nat.go#L340 .
func Alias1D[V any](x, y []V) bool {
	return cap(x) > 0 && cap(y) > 0 && &x[0:cap(x)][cap(x)-1] == &y[0:cap(y)][cap(y)-1]
}

// SortedKeys returns the keys of m in increasing order.
func SortedKeys[K constraints.Ordered, V any](m map[K]V) (keys []K) {
	keys = make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		return keys[i] < keys[j]
	})
	return
}

// RotateSlice returns a new slice corresponding to s rotated by k positions to the left.
// Negative values of k rotate to the right.
func RotateSlice[V any](s []V, k int) []V {

	ret := make([]V, len(s))

	if len(s) == 0 {
		return ret
	}

	k = k % len(s)
	if k < 0 {
		k = k + len(s)
	}

	copy(ret[:len(s)-k], s[k:])
	copy(ret[len(s)-k:], s[:k])

	return ret
}
