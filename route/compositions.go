// SPDX-License-Identifier: MIT
// Package: tcg/route
//
// compositions.go: ordered compositions of a non-negative integer.
//
// Order: lexicographic with the first part ascending, i.e. for (2, 2):
// [0 2], [1 1], [2 0]. Each yielded slice is freshly allocated.
//
// Edge cases:
//   - parts == 0, sum == 0 → exactly one empty composition.
//   - parts == 0, sum  > 0 → none.
//   - negative inputs      → none.

package route

import (
	"iter"
	"slices"
)

// Compositions yields every ordered way of writing sum as parts
// non-negative integers.
func Compositions(parts, sum int) iter.Seq[[]int] {
	return func(yield func([]int) bool) {
		if parts < 0 || sum < 0 {
			return
		}
		buf := make([]int, parts)
		compose(buf, 0, sum, yield)
	}
}

// compose fills buf[i:] with parts summing to rest. It returns false once
// the consumer stops.
func compose(buf []int, i, rest int, yield func([]int) bool) bool {
	switch {
	case i == len(buf):
		if rest != 0 {
			return true
		}
		return yield(slices.Clone(buf))
	case i == len(buf)-1:
		// The last part takes whatever is left.
		buf[i] = rest
		return yield(slices.Clone(buf))
	}
	for v := 0; v <= rest; v++ {
		buf[i] = v
		if !compose(buf, i+1, rest-v, yield) {
			return false
		}
	}
	return true
}

// Binomial returns C(n, k), or 0 when k is outside [0, n].
func Binomial(n, k int) int {
	if k < 0 || k > n {
		return 0
	}
	if k > n-k {
		k = n - k
	}
	c := 1
	for i := 1; i <= k; i++ {
		c = c * (n - k + i) / i
	}
	return c
}
